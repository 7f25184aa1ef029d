package mastery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/pourly/pourly/internal/config"
	"github.com/pourly/pourly/internal/store"
)

// ErrOutsidePlan is returned for an attempt on an item absent from the armed
// session plan. The attempt is ignored and no record is mutated; applying
// mastery deltas for items never shown would corrupt the spacing schedule.
var ErrOutsidePlan = errors.New("attempt outside session plan")

// Tracker updates mastery records from attempt outcomes and answers due and
// fragile queries over the item pool. All record lifetime goes through the
// injected MasteryStore; the tracker holds the working copy.
type Tracker struct {
	records map[string]*Record
	store   store.MasteryStore
	cfg     config.MasteryConfig
	logger  *slog.Logger
	clock   func() time.Time

	// planItems, when non-nil, restricts which items may receive attempts.
	planItems map[string]bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source. Used in tests.
func WithClock(clock func() time.Time) Option {
	return func(t *Tracker) { t.clock = clock }
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) { t.logger = logger }
}

// NewTracker creates a tracker, loading existing records from the store.
func NewTracker(ctx context.Context, st store.MasteryStore, cfg config.MasteryConfig, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		records: make(map[string]*Record),
		store:   st,
		cfg:     cfg,
		logger:  slog.Default(),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}

	data, err := st.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load mastery records: %w", err)
	}
	for id, rd := range data {
		t.records[id] = &Record{
			ItemID:     rd.ItemID,
			Strength:   rd.Strength,
			LastSeenAt: rd.LastSeenAt,
			LastResult: Outcome(rd.LastResult),
			DueAt:      rd.DueAt,
			Lapses:     rd.Lapses,
		}
	}
	return t, nil
}

// ArmPlan restricts attempts to the given item set until DisarmPlan is
// called. Attempts for other items are rejected with ErrOutsidePlan.
func (t *Tracker) ArmPlan(itemIDs []string) {
	t.planItems = make(map[string]bool, len(itemIDs))
	for _, id := range itemIDs {
		t.planItems[id] = true
	}
}

// DisarmPlan removes the plan restriction.
func (t *Tracker) DisarmPlan() {
	t.planItems = nil
}

// OnAttempt applies one attempt outcome and persists the updated record.
// Returns the resulting record and the strength delta actually applied.
// Attempts must be applied in attempt order: each delta depends on the
// record state left by the previous attempt.
func (t *Tracker) OnAttempt(ctx context.Context, itemID string, outcome Outcome, latencyMs int64) (Record, int, error) {
	if t.planItems != nil && !t.planItems[itemID] {
		t.logger.Warn("ignoring attempt for item outside plan",
			"item_id", itemID, "result", string(outcome))
		return Record{}, 0, fmt.Errorf("item %s: %w", itemID, ErrOutsidePlan)
	}

	now := t.clock()
	rec, ok := t.records[itemID]
	if !ok {
		rec = &Record{ItemID: itemID}
		t.records[itemID] = rec
	}

	var delta int
	switch outcome {
	case OutcomeCorrect:
		if rec.Strength < t.cfg.StrengthCap {
			rec.Strength++
			delta = 1
		}
		rec.DueAt = now.AddDate(0, 0, t.intervalDays(rec.Strength))
	case OutcomeIncorrect:
		if rec.Strength > 0 {
			rec.Strength--
			delta = -1
		}
		rec.Lapses++
		rec.DueAt = now
	default:
		return Record{}, 0, fmt.Errorf("unknown outcome: %s", outcome)
	}

	rec.LastSeenAt = now
	rec.LastResult = outcome

	if err := t.store.Upsert(ctx, store.RecordData{
		ItemID:     rec.ItemID,
		Strength:   rec.Strength,
		LastSeenAt: rec.LastSeenAt,
		LastResult: string(rec.LastResult),
		DueAt:      rec.DueAt,
		Lapses:     rec.Lapses,
	}); err != nil {
		return Record{}, 0, fmt.Errorf("persist record %s: %w", itemID, err)
	}

	return *rec, delta, nil
}

// Due returns the subset of ids at or past their review date, sorted by
// item ID. Items with no record are always eligible and included.
func (t *Tracker) Due(itemIDs []string, now time.Time) []string {
	var due []string
	for _, id := range itemIDs {
		rec, ok := t.records[id]
		if !ok || rec.IsDue(now) {
			due = append(due, id)
		}
	}
	sort.Strings(due)
	return due
}

// Fragile returns the subset of ids with strength ≤ 1 whose most recent
// attempt was incorrect, sorted by item ID. Items never attempted are not
// fragile.
func (t *Tracker) Fragile(itemIDs []string) []string {
	var fragile []string
	for _, id := range itemIDs {
		if rec, ok := t.records[id]; ok && rec.IsFragile() {
			fragile = append(fragile, id)
		}
	}
	sort.Strings(fragile)
	return fragile
}

// Record returns the record for an item. The second return is false for
// items never attempted; callers treat those as the implicit "new" default.
func (t *Tracker) Record(itemID string) (Record, bool) {
	if rec, ok := t.records[itemID]; ok {
		return *rec, true
	}
	return Record{ItemID: itemID}, false
}

// Snapshot exports an immutable copy of all records for the session mixer.
func (t *Tracker) Snapshot() *Snapshot {
	records := make(map[string]Record, len(t.records))
	for id, rec := range t.records {
		records[id] = *rec
	}
	return &Snapshot{records: records}
}

// intervalDays returns the review interval for a strength bucket. Strengths
// past the end of the table use the last entry.
func (t *Tracker) intervalDays(strength int) int {
	table := t.cfg.IntervalsDays
	if len(table) == 0 {
		return 0
	}
	if strength >= len(table) {
		return table[len(table)-1]
	}
	return table[strength]
}
