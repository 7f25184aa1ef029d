package store

import "context"

// PlanEventData mirrors a session plan for the analytics boundary.
type PlanEventData struct {
	SessionID       string
	ModuleID        string
	ItemIDs         []string
	CurrentCount    int
	ReviewCount     int
	OlderCount      int
	ExpectedMinutes float64
}

// AttemptEventData captures a single per-item attempt, in attempt order.
type AttemptEventData struct {
	SessionID     string
	ItemID        string
	Result        string // "correct" or "incorrect"
	MsToAnswer    int64
	ExerciseType  string
	StrengthDelta int
}

// SessionEventData captures a closed session summary.
type SessionEventData struct {
	SessionID      string
	ModuleID       string
	ItemsAttempted int
	CorrectCount   int
	XPAwarded      int
	MasteryDelta   int
	DurationMs     int64
}

// PlacementEventData captures a placement result.
type PlacementEventData struct {
	Level          string
	Track          string
	Spirits        []string
	SessionMinutes int
	StartModuleID  string
}

// EventRepo provides append and query access to domain events. Events are
// append-only; every event carries a global sequence number shared across
// event types so cross-type ordering is preserved.
type EventRepo interface {
	AppendPlanEvent(ctx context.Context, data PlanEventData) error
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendPlacementEvent(ctx context.Context, data PlacementEventData) error

	// PlanForSession returns the plan event for a session, or nil if none.
	PlanForSession(ctx context.Context, sessionID string) (*PlanEventData, error)

	// AttemptsForSession returns the session's attempts in attempt order.
	AttemptsForSession(ctx context.Context, sessionID string) ([]AttemptEventData, error)

	// RecentSummaries returns the most recent closed sessions, newest first.
	RecentSummaries(ctx context.Context, limit int) ([]SessionEventData, error)

	// ItemAccuracy returns historical accuracy and attempt count for an item.
	ItemAccuracy(ctx context.Context, itemID string) (float64, int, error)

	// LatestPlacement returns the most recent placement event, or nil if none.
	LatestPlacement(ctx context.Context) (*PlacementEventData, error)
}
