package session

import (
	"github.com/pourly/pourly/internal/catalog"
	"github.com/pourly/pourly/internal/mastery"
)

// Bucket is the reason an item was included in the plan.
type Bucket string

const (
	// BucketCurrent is never-seen material from the active module.
	BucketCurrent Bucket = "current"
	// BucketReview is previously learned material at or past its review date.
	BucketReview Bucket = "review"
	// BucketOlder is fragile material resurfaced from prior modules.
	BucketOlder Bucket = "older"
)

// Mix records how many items of each bucket made it into the plan.
type Mix struct {
	Current int
	Review  int
	Older   int
}

// Total returns the number of planned items across all buckets.
func (m Mix) Total() int {
	return m.Current + m.Review + m.Older
}

// Plan is the ordered item sequence for one lesson. Ephemeral: constructed
// fresh per lesson request and never persisted verbatim, only mirrored in
// reduced form to the analytics boundary.
type Plan struct {
	SessionID       string
	ModuleID        string
	Items           []catalog.LessonItem
	Mix             Mix
	ExpectedMinutes float64
}

// ItemIDs returns the planned item IDs in presentation order.
func (p *Plan) ItemIDs() []string {
	ids := make([]string, len(p.Items))
	for i, it := range p.Items {
		ids[i] = it.ID
	}
	return ids
}

// Contains reports whether the plan includes the item.
func (p *Plan) Contains(itemID string) bool {
	for _, it := range p.Items {
		if it.ID == itemID {
			return true
		}
	}
	return false
}

// Attempt is one reported answer, in attempt order. StrengthDelta is the
// delta the tracker already applied; the recorder only sums it.
type Attempt struct {
	ItemID        string
	Outcome       mastery.Outcome
	LatencyMs     int64
	StrengthDelta int
	ExerciseType  catalog.ExerciseType
}
