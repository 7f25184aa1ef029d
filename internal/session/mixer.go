package session

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pourly/pourly/internal/catalog"
	"github.com/pourly/pourly/internal/config"
	"github.com/pourly/pourly/internal/mastery"
)

// Mixer builds a session plan from the item pool and a mastery snapshot.
type Mixer interface {
	// Plan composes a time-boxed item sequence for the module.
	Plan(moduleID string, sessionMinutes int, snap *mastery.Snapshot) (*Plan, error)
}

// ItemPool is the catalog surface the mixer reads. *catalog.Pool satisfies
// it; tests supply synthetic pools.
type ItemPool interface {
	ItemsFor(moduleID string) []catalog.LessonItem
	AllItems() []catalog.LessonItem
}

// DefaultMixer fills a second budget with three disjoint buckets — current,
// review, older — split by time rather than count, because exercise types
// vary in estimated duration.
type DefaultMixer struct {
	pool  ItemPool
	cfg   config.MixerConfig
	clock func() time.Time
}

// MixerOption configures a DefaultMixer.
type MixerOption func(*DefaultMixer)

// WithClock overrides the time source. Used in tests.
func WithClock(clock func() time.Time) MixerOption {
	return func(m *DefaultMixer) { m.clock = clock }
}

// NewMixer creates a mixer over the given item pool with the given bucket
// ratios.
func NewMixer(pool ItemPool, cfg config.MixerConfig, opts ...MixerOption) *DefaultMixer {
	m := &DefaultMixer{pool: pool, cfg: cfg, clock: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Plan builds the session plan. A sparse pool is never an error: if content
// cannot fill even half the budget the plan is still returned, short, with
// ExpectedMinutes under target as the signal.
func (m *DefaultMixer) Plan(moduleID string, sessionMinutes int, snap *mastery.Snapshot) (*Plan, error) {
	if sessionMinutes <= 0 {
		return nil, fmt.Errorf("session minutes must be positive, got %d", sessionMinutes)
	}

	now := m.clock()
	budget := float64(sessionMinutes * 60)

	currentCandidates := m.currentCandidates(moduleID, snap)
	reviewCandidates := m.reviewCandidates(snap, now)
	olderCandidates := m.olderCandidates(moduleID, snap)

	// Pass 1: fill each bucket against its own sub-budget.
	used := make(map[string]bool)
	current, currentRest := fillBucket(currentCandidates, m.cfg.CurrentRatio*budget, used)
	review, reviewRest := fillBucket(reviewCandidates, m.cfg.ReviewRatio*budget, used)
	older, olderRest := fillBucket(olderCandidates, m.cfg.OlderRatio*budget, used)

	// Pass 2: starved sub-budgets are donated rather than shrinking the
	// session, in fixed priority current > review > older.
	leftover := budget - spent(current) - spent(review) - spent(older)
	current, leftover = topUp(current, currentRest, leftover, used)
	review, leftover = topUp(review, reviewRest, leftover, used)
	older, _ = topUp(older, olderRest, leftover, used)

	items := interleave(current, review, older)

	total := 0
	for _, it := range items {
		total += it.EstimatedSeconds
	}

	return &Plan{
		SessionID: uuid.NewString(),
		ModuleID:  moduleID,
		Items:     items,
		Mix: Mix{
			Current: len(current),
			Review:  len(review),
			Older:   len(older),
		},
		ExpectedMinutes: float64(total) / 60.0,
	}, nil
}

// currentCandidates returns never-seen items from the active module.
// All candidates share strength 0, so catalog ID order decides.
func (m *DefaultMixer) currentCandidates(moduleID string, snap *mastery.Snapshot) []catalog.LessonItem {
	var candidates []catalog.LessonItem
	for _, it := range m.pool.ItemsFor(moduleID) {
		if !snap.Seen(it.ID) {
			candidates = append(candidates, it)
		}
	}
	return candidates // ItemsFor is already ID-sorted
}

// reviewCandidates returns due items with strength ≥ 1 from the whole pool.
func (m *DefaultMixer) reviewCandidates(snap *mastery.Snapshot, now time.Time) []catalog.LessonItem {
	var candidates []catalog.LessonItem
	for _, it := range m.pool.AllItems() {
		rec, seen := snap.Record(it.ID)
		if seen && rec.Strength >= 1 && rec.IsDue(now) {
			candidates = append(candidates, it)
		}
	}
	sortByEligibility(candidates, snap)
	return candidates
}

// olderCandidates returns fragile items from modules other than the active
// one.
func (m *DefaultMixer) olderCandidates(moduleID string, snap *mastery.Snapshot) []catalog.LessonItem {
	var candidates []catalog.LessonItem
	for _, it := range m.pool.AllItems() {
		if it.ModuleID != moduleID && snap.IsFragile(it.ID) {
			candidates = append(candidates, it)
		}
	}
	sortByEligibility(candidates, snap)
	return candidates
}

// sortByEligibility orders candidates lowest strength first, tie-broken by
// earliest due date, tie-broken by catalog ID for determinism.
func sortByEligibility(items []catalog.LessonItem, snap *mastery.Snapshot) {
	sort.Slice(items, func(i, j int) bool {
		ri, _ := snap.Record(items[i].ID)
		rj, _ := snap.Record(items[j].ID)
		if ri.Strength != rj.Strength {
			return ri.Strength < rj.Strength
		}
		if !ri.DueAt.Equal(rj.DueAt) {
			return ri.DueAt.Before(rj.DueAt)
		}
		return items[i].ID < items[j].ID
	})
}

// fillBucket greedily takes candidates in order until the next item would
// exceed the sub-budget. Returns the picks and the remaining candidates.
func fillBucket(candidates []catalog.LessonItem, subBudget float64, used map[string]bool) ([]catalog.LessonItem, []catalog.LessonItem) {
	var picks []catalog.LessonItem
	remaining := subBudget
	for i, it := range candidates {
		if used[it.ID] {
			continue
		}
		if float64(it.EstimatedSeconds) > remaining {
			return picks, candidates[i:]
		}
		picks = append(picks, it)
		used[it.ID] = true
		remaining -= float64(it.EstimatedSeconds)
	}
	return picks, nil
}

// topUp extends a bucket with its leftover candidates against the donated
// budget.
func topUp(picks, rest []catalog.LessonItem, donated float64, used map[string]bool) ([]catalog.LessonItem, float64) {
	for _, it := range rest {
		if used[it.ID] {
			continue
		}
		if float64(it.EstimatedSeconds) > donated {
			return picks, donated
		}
		picks = append(picks, it)
		used[it.ID] = true
		donated -= float64(it.EstimatedSeconds)
	}
	return picks, donated
}

// interleave merges the buckets round-robin instead of concatenating, so a
// session never front-loads all new material before review. The rotation is
// current, review, current, older, repeating; exhausted buckets are skipped.
func interleave(current, review, older []catalog.LessonItem) []catalog.LessonItem {
	rotation := []*[]catalog.LessonItem{&current, &review, &current, &older}
	total := len(current) + len(review) + len(older)
	items := make([]catalog.LessonItem, 0, total)

	for len(items) < total {
		progressed := false
		for _, bucket := range rotation {
			if len(*bucket) == 0 {
				continue
			}
			items = append(items, (*bucket)[0])
			*bucket = (*bucket)[1:]
			progressed = true
		}
		if !progressed {
			break
		}
	}
	return items
}

func spent(items []catalog.LessonItem) float64 {
	total := 0.0
	for _, it := range items {
		total += float64(it.EstimatedSeconds)
	}
	return total
}
