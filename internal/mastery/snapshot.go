package mastery

import "time"

// Snapshot is an immutable view of mastery records taken at plan time.
// The mixer reads eligibility from the snapshot so a plan is a pure function
// of its inputs.
type Snapshot struct {
	records map[string]Record
}

// NewSnapshot builds a snapshot from a set of records. Used in tests; the
// tracker's Snapshot method is the production path.
func NewSnapshot(records map[string]Record) *Snapshot {
	copied := make(map[string]Record, len(records))
	for id, rec := range records {
		copied[id] = rec
	}
	return &Snapshot{records: copied}
}

// Record returns the record for an item and whether the item has ever been
// attempted.
func (s *Snapshot) Record(itemID string) (Record, bool) {
	rec, ok := s.records[itemID]
	if !ok {
		return Record{ItemID: itemID}, false
	}
	return rec, true
}

// Seen returns true if the item has a record.
func (s *Snapshot) Seen(itemID string) bool {
	_, ok := s.records[itemID]
	return ok
}

// Strength returns the item's strength, zero for unseen items.
func (s *Snapshot) Strength(itemID string) int {
	return s.records[itemID].Strength
}

// IsDue returns true if the item is at or past its review date. Unseen
// items are always due.
func (s *Snapshot) IsDue(itemID string, now time.Time) bool {
	rec, ok := s.records[itemID]
	if !ok {
		return true
	}
	return rec.IsDue(now)
}

// IsFragile returns true for seen items with strength ≤ 1 whose most recent
// attempt was incorrect.
func (s *Snapshot) IsFragile(itemID string) bool {
	rec, ok := s.records[itemID]
	return ok && rec.IsFragile()
}
