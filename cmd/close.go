package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pourly/pourly/internal/catalog"
	"github.com/pourly/pourly/internal/mastery"
	"github.com/pourly/pourly/internal/session"
	"github.com/pourly/pourly/internal/store"
)

var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Close a session and record its summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sessionID, _ := cmd.Flags().GetString("session")

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

		plan, err := rebuildPlan(planned)
		if err != nil {
			return err
		}

		attemptEvents, err := repo.AttemptsForSession(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}
		attempts := make([]session.Attempt, 0, len(attemptEvents))
		for _, ev := range attemptEvents {
			attempts = append(attempts, session.Attempt{
				ItemID:        ev.ItemID,
				Outcome:       mastery.Outcome(ev.Result),
				LatencyMs:     ev.MsToAnswer,
				StrengthDelta: ev.StrengthDelta,
				ExerciseType:  catalog.ExerciseType(ev.ExerciseType),
			})
		}

		recorder := session.NewRecorder(cfg.XP)
		summary, err := recorder.Close(plan, attempts)
		if err != nil {
			return err
		}

		if err := emitter.SessionClosed(ctx, summary); err != nil {
			return fmt.Errorf("record summary: %w", err)
		}

		printSummary(summary)
		return nil
	},
}

func init() {
	closeCmd.Flags().String("session", "", "Session ID from `pourly plan`")
	_ = closeCmd.MarkFlagRequired("session")
}

// rebuildPlan restores a session plan from its persisted event form.
func rebuildPlan(data *store.PlanEventData) (*session.Plan, error) {
	items := make([]catalog.LessonItem, 0, len(data.ItemIDs))
	for _, id := range data.ItemIDs {
		item, err := catalog.ByID(id)
		if err != nil {
			return nil, fmt.Errorf("planned item no longer in catalog: %w", err)
		}
		items = append(items, item)
	}
	return &session.Plan{
		SessionID: data.SessionID,
		ModuleID:  data.ModuleID,
		Items:     items,
		Mix: session.Mix{
			Current: data.CurrentCount,
			Review:  data.ReviewCount,
			Older:   data.OlderCount,
		},
		ExpectedMinutes: data.ExpectedMinutes,
	}, nil
}

func printSummary(summary *session.Summary) {
	heading := color.New(color.FgGreen, color.Bold)

	heading.Println("Session complete")
	fmt.Printf("  Correct: %d/%d (%.0f%%)\n",
		summary.CorrectCount, summary.TotalCount, summary.Accuracy()*100)
	fmt.Printf("  XP: %d\n", summary.XPAwarded)
	fmt.Printf("  Mastery delta: %+d\n", summary.MasteryDelta)
	fmt.Printf("  Duration: %.1fs\n", float64(summary.DurationMs)/1000)
}
