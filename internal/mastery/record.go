package mastery

import "time"

// Outcome is the result of a single attempt.
type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
)

// Record holds the spaced repetition state for a single lesson item.
// Strength moves by exactly ±1 per attempt, so drift is bounded and
// auditable. An item with no record is implicitly strength 0 and always
// eligible ("new").
type Record struct {
	ItemID     string
	Strength   int
	LastSeenAt time.Time
	LastResult Outcome
	DueAt      time.Time
	Lapses     int
}

// IsDue returns true if the item is at or past its review date.
func (r *Record) IsDue(now time.Time) bool {
	return !now.Before(r.DueAt)
}

// IsFragile returns true for low-strength items whose most recent attempt
// was incorrect. These form the "older-but-weak" pool the mixer resurfaces.
func (r *Record) IsFragile() bool {
	return r.Strength <= 1 && r.LastResult == OutcomeIncorrect
}
