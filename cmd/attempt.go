package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pourly/pourly/internal/catalog"
	"github.com/pourly/pourly/internal/mastery"
	"github.com/pourly/pourly/internal/session"
)

var attemptCmd = &cobra.Command{
	Use:   "attempt",
	Short: "Record an attempt against the current session plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sessionID, _ := cmd.Flags().GetString("session")
		itemID, _ := cmd.Flags().GetString("item")
		result, _ := cmd.Flags().GetString("result")
		ms, _ := cmd.Flags().GetInt64("ms")

		outcome := mastery.Outcome(result)
		if outcome != mastery.OutcomeCorrect && outcome != mastery.OutcomeIncorrect {
			return fmt.Errorf("result must be correct or incorrect, got %q", result)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		st, repo, emitter, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		planned, err := repo.PlanForSession(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("load plan: %w", err)
		}
		if planned == nil {
			return fmt.Errorf("no plan found for session %s", sessionID)
		}

		tracker, err := mastery.NewTracker(ctx, st.MasteryStore(), cfg.Mastery)
		if err != nil {
			return err
		}
		tracker.ArmPlan(planned.ItemIDs)

		rec, delta, err := tracker.OnAttempt(ctx, itemID, outcome, ms)
		if err != nil {
			return err
		}

		item, err := catalog.ByID(itemID)
		if err != nil {
			return err
		}

		attempt := session.Attempt{
			ItemID:        itemID,
			Outcome:       outcome,
			LatencyMs:     ms,
			StrengthDelta: delta,
			ExerciseType:  item.ExerciseType,
		}
		if err := emitter.AttemptRecorded(ctx, sessionID, attempt); err != nil {
			return fmt.Errorf("record attempt: %w", err)
		}

		fmt.Printf("%s: strength %d, due %s, lapses %d\n",
			itemID, rec.Strength, rec.DueAt.Format("2006-01-02"), rec.Lapses)
		return nil
	},
}

func init() {
	attemptCmd.Flags().String("session", "", "Session ID from `pourly plan`")
	attemptCmd.Flags().String("item", "", "Item ID being answered")
	attemptCmd.Flags().String("result", "", "Attempt result: correct or incorrect")
	attemptCmd.Flags().Int64("ms", 0, "Milliseconds to answer")
	_ = attemptCmd.MarkFlagRequired("session")
	_ = attemptCmd.MarkFlagRequired("item")
	_ = attemptCmd.MarkFlagRequired("result")
}
