package catalog

import (
	"sort"
	"testing"
)

func TestItemsFor_SortedAndScoped(t *testing.T) {
	items := ItemsFor("glassware-101")
	if len(items) == 0 {
		t.Fatal("no items for glassware-101")
	}
	for _, it := range items {
		if it.ModuleID != "glassware-101" {
			t.Errorf("item %s belongs to %s", it.ID, it.ModuleID)
		}
	}
	if !sort.SliceIsSorted(items, func(i, j int) bool { return items[i].ID < items[j].ID }) {
		t.Error("items not sorted by ID")
	}
}

func TestItemsFor_UnknownModule(t *testing.T) {
	if items := ItemsFor("no-such-module"); len(items) != 0 {
		t.Errorf("got %d items for unknown module", len(items))
	}
}

func TestAllItems_CoversEveryModule(t *testing.T) {
	byModule := make(map[string]int)
	for _, it := range AllItems() {
		byModule[it.ModuleID]++
	}
	for _, m := range Modules() {
		if byModule[m.ID] == 0 {
			t.Errorf("module %s has no items", m.ID)
		}
	}
}

func TestByID(t *testing.T) {
	it, err := ByID("gin-001")
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if it.ModuleID != "gin-essentials" {
		t.Errorf("ModuleID = %s, want gin-essentials", it.ModuleID)
	}

	if _, err := ByID("nope-999"); err == nil {
		t.Error("expected error for unknown item")
	}
}

func TestModuleByID(t *testing.T) {
	m, err := ModuleByID("spritz-lab")
	if err != nil {
		t.Fatalf("ModuleByID: %v", err)
	}
	if m.Track != TrackLowABV || m.Level != LevelIntermediate {
		t.Errorf("module = %+v", m)
	}

	if _, err := ModuleByID("nope"); err == nil {
		t.Error("expected error for unknown module")
	}
}

func TestStarterModule_AllPlacements(t *testing.T) {
	// Every (level, track) pair resolves to a real module of that track.
	for _, level := range []Level{LevelBeginner, LevelIntermediate, LevelAdvanced} {
		for _, track := range AllTracks() {
			id := StarterModule(level, track)
			m, err := ModuleByID(id)
			if err != nil {
				t.Errorf("starter for %s/%s: %v", level, track, err)
				continue
			}
			if m.Track != track {
				t.Errorf("starter %s for %s/%s is on track %s", id, level, track, m.Track)
			}
		}
	}
}

func TestStarterForSpirit(t *testing.T) {
	if id, ok := StarterForSpirit(SpiritGin); !ok || id != "gin-essentials" {
		t.Errorf("gin starter = %q, %v", id, ok)
	}
	if id, ok := StarterForSpirit(SpiritWhiskey); !ok || id != "whiskey-classics" {
		t.Errorf("whiskey starter = %q, %v", id, ok)
	}
	if _, ok := StarterForSpirit(SpiritRum); ok {
		t.Error("rum should have no dedicated starter")
	}
}

func TestNewPool_IsolatedFromInput(t *testing.T) {
	modules := []Module{{ID: "m", Track: TrackAlcoholic, Level: LevelBeginner, Title: "M"}}
	items := []LessonItem{{ID: "i-1", ModuleID: "m", Track: TrackAlcoholic, Difficulty: 1, EstimatedSeconds: 30, ExerciseType: ExerciseMCQ}}
	p := NewPool(modules, items)

	items[0].EstimatedSeconds = 999
	got, err := p.ByID("i-1")
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if got.EstimatedSeconds != 30 {
		t.Errorf("EstimatedSeconds = %d; pool must copy its input", got.EstimatedSeconds)
	}
}

func TestSeedItemIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, it := range AllItems() {
		if seen[it.ID] {
			t.Errorf("duplicate item ID %s", it.ID)
		}
		seen[it.ID] = true
	}
}
