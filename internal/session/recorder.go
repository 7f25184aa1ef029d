package session

import (
	"errors"
	"fmt"

	"github.com/pourly/pourly/internal/config"
	"github.com/pourly/pourly/internal/mastery"
)

// ErrOutsidePlan is returned when a session is closed with an attempt
// referencing an item absent from the plan. The caller must treat this as a
// programming error, not a user-facing one.
var ErrOutsidePlan = errors.New("attempt references item outside plan")

// Summary is the session's closing aggregation. Ephemeral output for the
// lesson-complete UI, mirrored to the analytics boundary.
type Summary struct {
	SessionID    string
	ModuleID     string
	CorrectCount int
	TotalCount   int
	XPAwarded    int
	MasteryDelta int
	DurationMs   int64
}

// Accuracy returns the session accuracy ratio.
func (s *Summary) Accuracy() float64 {
	if s.TotalCount == 0 {
		return 0
	}
	return float64(s.CorrectCount) / float64(s.TotalCount)
}

// Recorder aggregates attempt outcomes into a session summary. Pure
// aggregation: mastery deltas were already applied by the tracker during the
// session, the recorder only sums them for display. No side effects.
type Recorder struct {
	cfg config.XPConfig
}

// NewRecorder creates a recorder with the given XP award table.
func NewRecorder(cfg config.XPConfig) *Recorder {
	return &Recorder{cfg: cfg}
}

// Close validates the attempts against the plan and builds the summary.
// An unclosed session never produces a summary; partial mastery updates
// already applied remain durable regardless.
func (r *Recorder) Close(plan *Plan, attempts []Attempt) (*Summary, error) {
	summary := &Summary{
		SessionID:  plan.SessionID,
		ModuleID:   plan.ModuleID,
		TotalCount: len(attempts),
	}

	for _, a := range attempts {
		if !plan.Contains(a.ItemID) {
			return nil, fmt.Errorf("item %s: %w", a.ItemID, ErrOutsidePlan)
		}
		if a.Outcome == mastery.OutcomeCorrect {
			summary.CorrectCount++
		}
		summary.MasteryDelta += a.StrengthDelta
		summary.DurationMs += a.LatencyMs
	}

	summary.XPAwarded = r.xp(summary.CorrectCount, summary.TotalCount)
	return summary, nil
}

// xp awards a base per correct answer plus an accuracy bonus.
func (r *Recorder) xp(correct, total int) int {
	xp := correct * r.cfg.CorrectBase
	if total == 0 {
		return xp
	}
	accuracy := float64(correct) / float64(total)
	switch {
	case correct == total:
		xp += r.cfg.PerfectBonus
	case accuracy >= r.cfg.GreatThreshold:
		xp += r.cfg.GreatBonus
	}
	return xp
}
