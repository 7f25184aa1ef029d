package analytics

import (
	"context"
	"log/slog"

	"github.com/pourly/pourly/internal/placement"
	"github.com/pourly/pourly/internal/session"
	"github.com/pourly/pourly/internal/store"
)

// Emitter mirrors core result values to the analytics boundary. The core
// packages return pure values and know nothing about event transport; this
// adapter is the only place a plan, attempt, or summary becomes an event.
type Emitter struct {
	repo   store.EventRepo
	logger *slog.Logger
}

// NewEmitter creates an emitter writing to the given event repo.
func NewEmitter(repo store.EventRepo, logger *slog.Logger) *Emitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Emitter{repo: repo, logger: logger}
}

// PlanBuilt emits the scheduler plan event: module, bucket mix, and the
// expected minutes realized against the budget.
func (e *Emitter) PlanBuilt(ctx context.Context, plan *session.Plan) error {
	e.logger.Info("scheduler.plan",
		"session_id", plan.SessionID,
		"module_id", plan.ModuleID,
		"current", plan.Mix.Current,
		"review", plan.Mix.Review,
		"older", plan.Mix.Older,
		"expected_minutes", plan.ExpectedMinutes,
	)
	return e.repo.AppendPlanEvent(ctx, store.PlanEventData{
		SessionID:       plan.SessionID,
		ModuleID:        plan.ModuleID,
		ItemIDs:         plan.ItemIDs(),
		CurrentCount:    plan.Mix.Current,
		ReviewCount:     plan.Mix.Review,
		OlderCount:      plan.Mix.Older,
		ExpectedMinutes: plan.ExpectedMinutes,
	})
}

// AttemptRecorded emits one per-item attempt event, in attempt order.
func (e *Emitter) AttemptRecorded(ctx context.Context, sessionID string, attempt session.Attempt) error {
	e.logger.Info("item.attempt",
		"session_id", sessionID,
		"item_id", attempt.ItemID,
		"result", string(attempt.Outcome),
		"ms_to_answer", attempt.LatencyMs,
		"exercise_type", string(attempt.ExerciseType),
	)
	return e.repo.AppendAttemptEvent(ctx, store.AttemptEventData{
		SessionID:     sessionID,
		ItemID:        attempt.ItemID,
		Result:        string(attempt.Outcome),
		MsToAnswer:    attempt.LatencyMs,
		ExerciseType:  string(attempt.ExerciseType),
		StrengthDelta: attempt.StrengthDelta,
	})
}

// SessionClosed emits the lesson-complete event.
func (e *Emitter) SessionClosed(ctx context.Context, summary *session.Summary) error {
	e.logger.Info("lesson.complete",
		"session_id", summary.SessionID,
		"items_attempted", summary.TotalCount,
		"correct_count", summary.CorrectCount,
		"duration_ms", summary.DurationMs,
	)
	return e.repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:      summary.SessionID,
		ModuleID:       summary.ModuleID,
		ItemsAttempted: summary.TotalCount,
		CorrectCount:   summary.CorrectCount,
		XPAwarded:      summary.XPAwarded,
		MasteryDelta:   summary.MasteryDelta,
		DurationMs:     summary.DurationMs,
	})
}

// PlacementDone emits the placement event after the onboarding survey.
func (e *Emitter) PlacementDone(ctx context.Context, result placement.Result) error {
	spirits := make([]string, len(result.Spirits))
	for i, s := range result.Spirits {
		spirits[i] = string(s)
	}
	e.logger.Info("survey.placement",
		"level", string(result.Level),
		"track", string(result.Track),
		"session_minutes", result.SessionMinutes,
		"start_module_id", result.StartModuleID,
	)
	return e.repo.AppendPlacementEvent(ctx, store.PlacementEventData{
		Level:          string(result.Level),
		Track:          string(result.Track),
		Spirits:        spirits,
		SessionMinutes: result.SessionMinutes,
		StartModuleID:  result.StartModuleID,
	})
}
