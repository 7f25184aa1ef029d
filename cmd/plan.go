package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pourly/pourly/internal/catalog"
	"github.com/pourly/pourly/internal/mastery"
	"github.com/pourly/pourly/internal/session"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a session plan for a module",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		st, repo, emitter, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		moduleID, _ := cmd.Flags().GetString("module")
		minutes, _ := cmd.Flags().GetInt("minutes")

		// Fall back to the stored placement for module and session length.
		if moduleID == "" || minutes == 0 {
			placed, err := repo.LatestPlacement(ctx)
			if err != nil {
				return fmt.Errorf("load placement: %w", err)
			}
			if placed == nil {
				return fmt.Errorf("no placement found; run `pourly place` first or pass --module and --minutes")
			}
			if moduleID == "" {
				moduleID = placed.StartModuleID
			}
			if minutes == 0 {
				minutes = placed.SessionMinutes
			}
		}

		tracker, err := mastery.NewTracker(ctx, st.MasteryStore(), cfg.Mastery)
		if err != nil {
			return err
		}

		mixer := session.NewMixer(catalog.DefaultPool(), cfg.Mixer)
		plan, err := mixer.Plan(moduleID, minutes, tracker.Snapshot())
		if err != nil {
			return err
		}

		if err := emitter.PlanBuilt(ctx, plan); err != nil {
			return fmt.Errorf("record plan: %w", err)
		}

		printPlan(plan)
		return nil
	},
}

func init() {
	planCmd.Flags().String("module", "", "Module to plan (defaults to placement start module)")
	planCmd.Flags().Int("minutes", 0, "Session length in minutes (defaults to placement session length)")
}

func printPlan(plan *session.Plan) {
	heading := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)

	heading.Printf("Session %s — %s\n", plan.SessionID, plan.ModuleID)
	dim.Printf("mix: %d current / %d review / %d older, ~%.1f min\n",
		plan.Mix.Current, plan.Mix.Review, plan.Mix.Older, plan.ExpectedMinutes)
	for i, it := range plan.Items {
		fmt.Printf("  %2d. %-14s %-6s %3ds\n", i+1, it.ID, it.ExerciseType, it.EstimatedSeconds)
	}
}
