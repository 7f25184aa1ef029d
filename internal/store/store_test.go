package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestMasteryStore_Roundtrip(t *testing.T) {
	st := openTestStore(t)
	ms := st.MasteryStore()
	ctx := context.Background()

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	rec := RecordData{
		ItemID:     "glass-001",
		Strength:   3,
		LastSeenAt: now,
		LastResult: "correct",
		DueAt:      now.AddDate(0, 0, 7),
		Lapses:     2,
	}
	if err := ms.Upsert(ctx, rec); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	loaded, err := ms.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	got, ok := loaded["glass-001"]
	if !ok {
		t.Fatal("record not found after upsert")
	}
	if got.Strength != 3 || got.Lapses != 2 || got.LastResult != "correct" {
		t.Errorf("loaded = %+v", got)
	}
	if !got.LastSeenAt.Equal(now) {
		t.Errorf("LastSeenAt = %v, want %v", got.LastSeenAt, now)
	}
	if !got.DueAt.Equal(now.AddDate(0, 0, 7)) {
		t.Errorf("DueAt = %v", got.DueAt)
	}
}

func TestMasteryStore_UpsertReplaces(t *testing.T) {
	st := openTestStore(t)
	ms := st.MasteryStore()
	ctx := context.Background()
	now := time.Now().UTC()

	base := RecordData{ItemID: "gin-001", Strength: 1, LastSeenAt: now, LastResult: "correct", DueAt: now}
	if err := ms.Upsert(ctx, base); err != nil {
		t.Fatal(err)
	}
	base.Strength = 2
	base.Lapses = 1
	if err := ms.Upsert(ctx, base); err != nil {
		t.Fatal(err)
	}

	loaded, err := ms.LoadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 {
		t.Fatalf("len = %d, want 1", len(loaded))
	}
	if got := loaded["gin-001"]; got.Strength != 2 || got.Lapses != 1 {
		t.Errorf("loaded = %+v", got)
	}
}

func TestMasteryStore_Reset(t *testing.T) {
	st := openTestStore(t)
	ms := st.MasteryStore()
	ctx := context.Background()
	now := time.Now().UTC()

	for _, id := range []string{"a", "b"} {
		if err := ms.Upsert(ctx, RecordData{ItemID: id, LastSeenAt: now, LastResult: "correct", DueAt: now}); err != nil {
			t.Fatal(err)
		}
	}
	if err := ms.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	loaded, err := ms.LoadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 0 {
		t.Errorf("len = %d after reset, want 0", len(loaded))
	}
}

func TestEventRepo_PlanRoundtrip(t *testing.T) {
	st := openTestStore(t)
	repo, err := st.EventRepo()
	if err != nil {
		t.Fatalf("EventRepo: %v", err)
	}
	ctx := context.Background()

	data := PlanEventData{
		SessionID:       "sess-1",
		ModuleID:        "glassware-101",
		ItemIDs:         []string{"glass-001", "glass-002", "glass-003"},
		CurrentCount:    2,
		ReviewCount:     1,
		OlderCount:      0,
		ExpectedMinutes: 1.5,
	}
	if err := repo.AppendPlanEvent(ctx, data); err != nil {
		t.Fatalf("AppendPlanEvent: %v", err)
	}

	got, err := repo.PlanForSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("PlanForSession: %v", err)
	}
	if got == nil {
		t.Fatal("plan not found")
	}
	if got.ModuleID != data.ModuleID || got.ExpectedMinutes != data.ExpectedMinutes {
		t.Errorf("got %+v", got)
	}
	if len(got.ItemIDs) != 3 || got.ItemIDs[0] != "glass-001" {
		t.Errorf("ItemIDs = %v", got.ItemIDs)
	}

	missing, err := repo.PlanForSession(ctx, "no-such-session")
	if err != nil {
		t.Fatalf("PlanForSession: %v", err)
	}
	if missing != nil {
		t.Errorf("got %+v for unknown session, want nil", missing)
	}
}

func TestEventRepo_AttemptsInOrder(t *testing.T) {
	st := openTestStore(t)
	repo, err := st.EventRepo()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	for i, id := range []string{"glass-002", "glass-001", "glass-003"} {
		err := repo.AppendAttemptEvent(ctx, AttemptEventData{
			SessionID:     "sess-1",
			ItemID:        id,
			Result:        "correct",
			MsToAnswer:    int64(1000 + i),
			ExerciseType:  "mcq",
			StrengthDelta: 1,
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	attempts, err := repo.AttemptsForSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("AttemptsForSession: %v", err)
	}
	if len(attempts) != 3 {
		t.Fatalf("len = %d, want 3", len(attempts))
	}
	// Attempt order, not item ID order.
	want := []string{"glass-002", "glass-001", "glass-003"}
	for i, a := range attempts {
		if a.ItemID != want[i] {
			t.Errorf("attempts[%d] = %s, want %s", i, a.ItemID, want[i])
		}
	}
}

func TestEventRepo_ItemAccuracy(t *testing.T) {
	st := openTestStore(t)
	repo, err := st.EventRepo()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	results := []string{"correct", "incorrect", "correct", "correct"}
	for _, r := range results {
		err := repo.AppendAttemptEvent(ctx, AttemptEventData{
			SessionID: "s", ItemID: "gin-003", Result: r, ExerciseType: "mcq",
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	accuracy, total, err := repo.ItemAccuracy(ctx, "gin-003")
	if err != nil {
		t.Fatalf("ItemAccuracy: %v", err)
	}
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
	if accuracy != 0.75 {
		t.Errorf("accuracy = %.2f, want 0.75", accuracy)
	}

	_, total, err = repo.ItemAccuracy(ctx, "never-attempted")
	if err != nil {
		t.Fatalf("ItemAccuracy: %v", err)
	}
	if total != 0 {
		t.Errorf("total = %d for unattempted item, want 0", total)
	}
}

func TestEventRepo_RecentSummaries(t *testing.T) {
	st := openTestStore(t)
	repo, err := st.EventRepo()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID: string(rune('a' + i)), ModuleID: "mod",
			ItemsAttempted: i + 1, CorrectCount: i, XPAwarded: 10 * i,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	recent, err := repo.RecentSummaries(ctx, 2)
	if err != nil {
		t.Fatalf("RecentSummaries: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len = %d, want 2", len(recent))
	}
	// Newest first.
	if recent[0].SessionID != "d" || recent[1].SessionID != "c" {
		t.Errorf("order = %s, %s; want d, c", recent[0].SessionID, recent[1].SessionID)
	}
}

func TestEventRepo_LatestPlacement(t *testing.T) {
	st := openTestStore(t)
	repo, err := st.EventRepo()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	got, err := repo.LatestPlacement(ctx)
	if err != nil {
		t.Fatalf("LatestPlacement: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v before any placement, want nil", got)
	}

	first := PlacementEventData{Level: "beginner", Track: "alcoholic", Spirits: []string{"gin"}, SessionMinutes: 5, StartModuleID: "gin-essentials"}
	second := PlacementEventData{Level: "intermediate", Track: "low-abv", SessionMinutes: 8, StartModuleID: "spritz-lab"}
	if err := repo.AppendPlacementEvent(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendPlacementEvent(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, err = repo.LatestPlacement(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.StartModuleID != "spritz-lab" {
		t.Errorf("got %+v, want the retake result", got)
	}
}

func TestEventRepo_GlobalSequenceSpansTypes(t *testing.T) {
	st := openTestStore(t)
	repo, err := st.EventRepo()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := repo.AppendPlanEvent(ctx, PlanEventData{SessionID: "s", ModuleID: "m", ItemIDs: []string{"a"}}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendAttemptEvent(ctx, AttemptEventData{SessionID: "s", ItemID: "a", Result: "correct", ExerciseType: "mcq"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s", ModuleID: "m"}); err != nil {
		t.Fatal(err)
	}

	var planSeq, attemptSeq, sessionSeq int64
	if err := st.DB().Get(&planSeq, `SELECT sequence FROM plan_events`); err != nil {
		t.Fatal(err)
	}
	if err := st.DB().Get(&attemptSeq, `SELECT sequence FROM attempt_events`); err != nil {
		t.Fatal(err)
	}
	if err := st.DB().Get(&sessionSeq, `SELECT sequence FROM session_events`); err != nil {
		t.Fatal(err)
	}

	if !(planSeq < attemptSeq && attemptSeq < sessionSeq) {
		t.Errorf("sequence not increasing across types: plan=%d attempt=%d session=%d",
			planSeq, attemptSeq, sessionSeq)
	}
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	now := time.Now().UTC()

	st, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.MasteryStore().Upsert(context.Background(), RecordData{ItemID: "a", LastSeenAt: now, LastResult: "correct", DueAt: now}); err != nil {
		t.Fatal(err)
	}
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}

	st, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	loaded, err := st.MasteryStore().LoadAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := loaded["a"]; !ok {
		t.Error("record lost across reopen")
	}
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom", "pourly.db")
	t.Setenv("POURLY_DB", path)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != path {
		t.Errorf("path = %s, want %s", got, path)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("parent dir not created: %v", err)
	}
}
