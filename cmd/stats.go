package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pourly/pourly/internal/catalog"
	"github.com/pourly/pourly/internal/mastery"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		st, repo, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tracker, err := mastery.NewTracker(ctx, st.MasteryStore(), cfg.Mastery)
		if err != nil {
			return err
		}

		heading := color.New(color.FgCyan, color.Bold)
		now := time.Now()

		var ids []string
		for _, it := range catalog.AllItems() {
			ids = append(ids, it.ID)
		}

		var seen int
		for _, id := range ids {
			if _, ok := tracker.Record(id); ok {
				seen++
			}
		}
		due := tracker.Due(ids, now)
		fragile := tracker.Fragile(ids)

		heading.Println("Mastery")
		fmt.Printf("  Items seen: %d/%d\n", seen, len(ids))
		fmt.Printf("  Due now: %d\n", len(due))
		fmt.Printf("  Fragile: %d\n", len(fragile))

		summaries, err := repo.RecentSummaries(ctx, 5)
		if err != nil {
			return fmt.Errorf("load summaries: %w", err)
		}
		if len(summaries) > 0 {
			fmt.Println()
			heading.Println("Recent sessions")
			for _, s := range summaries {
				fmt.Printf("  %-12s %2d/%2d correct, %3d xp, %.1fs\n",
					s.ModuleID, s.CorrectCount, s.ItemsAttempted, s.XPAwarded,
					float64(s.DurationMs)/1000)
			}
		}
		return nil
	},
}
