package catalog

import (
	"fmt"
	"sort"
)

// Pool is an indexed, read-only view of the item catalog. Built once per
// content release; the scheduler treats it as a dependency boundary.
type Pool struct {
	modules  []Module
	items    []LessonItem
	byID     map[string]*LessonItem
	byModule map[string][]LessonItem
	moduleBy map[string]*Module
}

// pool is the package-level default, set by init() in seed.go.
var pool *Pool

// NewPool constructs a pool from catalog data. All slice lookups are sorted
// by catalog ID so selection downstream is deterministic.
func NewPool(modules []Module, items []LessonItem) *Pool {
	p := &Pool{
		modules:  make([]Module, len(modules)),
		items:    make([]LessonItem, len(items)),
		byID:     make(map[string]*LessonItem, len(items)),
		byModule: make(map[string][]LessonItem),
		moduleBy: make(map[string]*Module, len(modules)),
	}
	copy(p.modules, modules)
	copy(p.items, items)

	for i := range p.modules {
		p.moduleBy[p.modules[i].ID] = &p.modules[i]
	}
	for i := range p.items {
		p.byID[p.items[i].ID] = &p.items[i]
		p.byModule[p.items[i].ModuleID] = append(p.byModule[p.items[i].ModuleID], p.items[i])
	}
	for id := range p.byModule {
		sort.Slice(p.byModule[id], func(a, b int) bool {
			return p.byModule[id][a].ID < p.byModule[id][b].ID
		})
	}
	sort.Slice(p.modules, func(a, b int) bool {
		return p.modules[a].ID < p.modules[b].ID
	})
	sort.Slice(p.items, func(a, b int) bool {
		return p.items[a].ID < p.items[b].ID
	})
	return p
}

// DefaultPool returns the pool for the built-in seed catalog.
func DefaultPool() *Pool {
	return pool
}

// ItemsFor returns the items belonging to a module, sorted by item ID.
// Returns an empty slice for an unknown module.
func (p *Pool) ItemsFor(moduleID string) []LessonItem {
	items := p.byModule[moduleID]
	result := make([]LessonItem, len(items))
	copy(result, items)
	return result
}

// AllItems returns every item in the catalog, sorted by item ID.
func (p *Pool) AllItems() []LessonItem {
	result := make([]LessonItem, len(p.items))
	copy(result, p.items)
	return result
}

// ByID returns the item with the given ID.
func (p *Pool) ByID(itemID string) (LessonItem, error) {
	if it, ok := p.byID[itemID]; ok {
		return *it, nil
	}
	return LessonItem{}, fmt.Errorf("unknown item: %s", itemID)
}

// Modules returns all modules sorted by ID.
func (p *Pool) Modules() []Module {
	result := make([]Module, len(p.modules))
	copy(result, p.modules)
	return result
}

// ModuleByID returns the module with the given ID.
func (p *Pool) ModuleByID(moduleID string) (Module, error) {
	if m, ok := p.moduleBy[moduleID]; ok {
		return *m, nil
	}
	return Module{}, fmt.Errorf("unknown module: %s", moduleID)
}

// Package-level lookups against the default seed catalog.

// ItemsFor returns the seed catalog items for a module, sorted by item ID.
func ItemsFor(moduleID string) []LessonItem {
	return pool.ItemsFor(moduleID)
}

// AllItems returns every seed catalog item, sorted by item ID.
func AllItems() []LessonItem {
	return pool.AllItems()
}

// ByID returns the seed catalog item with the given ID.
func ByID(itemID string) (LessonItem, error) {
	return pool.ByID(itemID)
}

// Modules returns all seed catalog modules sorted by ID.
func Modules() []Module {
	return pool.Modules()
}

// ModuleByID returns the seed catalog module with the given ID.
func ModuleByID(moduleID string) (Module, error) {
	return pool.ModuleByID(moduleID)
}

// StarterModule resolves the starting module for a placement via the
// (level, track) lookup table. Falls back to the beginner module of the
// track if the pair has no entry.
func StarterModule(level Level, track Track) string {
	if id, ok := starterByLevelTrack[levelTrack{level, track}]; ok {
		return id
	}
	return starterByLevelTrack[levelTrack{LevelBeginner, track}]
}

// StarterForSpirit returns the dedicated starter module for a spirit focus,
// if one exists. A spirit starter overrides the generic (level, track) module.
func StarterForSpirit(s Spirit) (string, bool) {
	id, ok := starterBySpirit[s]
	return id, ok
}

// SpiritPriority returns spirits in the fixed order used to resolve which
// spirit starter wins when a learner selected several.
func SpiritPriority() []Spirit {
	return []Spirit{SpiritGin, SpiritWhiskey, SpiritRum, SpiritTequila, SpiritVodka}
}

type levelTrack struct {
	level Level
	track Track
}
