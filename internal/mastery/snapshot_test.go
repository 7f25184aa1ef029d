package mastery

import (
	"testing"
	"time"
)

func TestSnapshot_UnseenDefaults(t *testing.T) {
	snap := NewSnapshot(nil)
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	if snap.Seen("glass-001") {
		t.Error("Seen = true for empty snapshot")
	}
	if got := snap.Strength("glass-001"); got != 0 {
		t.Errorf("Strength = %d, want 0", got)
	}
	if !snap.IsDue("glass-001", now) {
		t.Error("IsDue = false; unseen items are always due")
	}
	if snap.IsFragile("glass-001") {
		t.Error("IsFragile = true; unseen items are never fragile")
	}
}

func TestSnapshot_CopiesInput(t *testing.T) {
	records := map[string]Record{
		"gin-001": {ItemID: "gin-001", Strength: 2},
	}
	snap := NewSnapshot(records)

	records["gin-001"] = Record{ItemID: "gin-001", Strength: 5}
	if got := snap.Strength("gin-001"); got != 2 {
		t.Errorf("Strength = %d, want 2; snapshot must not alias caller map", got)
	}
}

func TestSnapshot_Fragile(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	snap := NewSnapshot(map[string]Record{
		"a": {ItemID: "a", Strength: 1, LastResult: OutcomeIncorrect, DueAt: now},
		"b": {ItemID: "b", Strength: 2, LastResult: OutcomeIncorrect, DueAt: now},
		"c": {ItemID: "c", Strength: 1, LastResult: OutcomeCorrect, DueAt: now},
	})

	if !snap.IsFragile("a") {
		t.Error("a should be fragile: strength 1, last incorrect")
	}
	if snap.IsFragile("b") {
		t.Error("b should not be fragile: strength above threshold")
	}
	if snap.IsFragile("c") {
		t.Error("c should not be fragile: last attempt correct")
	}
}
