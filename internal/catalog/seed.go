package catalog

// Seed content for the current release. Item IDs are stable across releases;
// new content is appended, never renumbered.

func init() {
	pool = NewPool(seedModules(), seedItems())
}

// starterByLevelTrack maps a placement to its generic starting module.
var starterByLevelTrack = map[levelTrack]string{
	{LevelBeginner, TrackAlcoholic}:     "glassware-101",
	{LevelIntermediate, TrackAlcoholic}: "shaking-101",
	{LevelAdvanced, TrackAlcoholic}:     "advanced-balancing",
	{LevelBeginner, TrackLowABV}:        "aperitivo-hour",
	{LevelIntermediate, TrackLowABV}:    "spritz-lab",
	{LevelAdvanced, TrackLowABV}:        "amaro-depths",
	{LevelBeginner, TrackZeroProof}:     "zero-proof-foundations",
	{LevelIntermediate, TrackZeroProof}: "zero-proof-citrus",
	{LevelAdvanced, TrackZeroProof}:     "zero-proof-pantry",
}

// starterBySpirit maps a spirit focus to its dedicated starter module.
// Spirits without an entry fall through to the (level, track) table.
var starterBySpirit = map[Spirit]string{
	SpiritGin:     "gin-essentials",
	SpiritWhiskey: "whiskey-classics",
}

func seedModules() []Module {
	return []Module{
		{ID: "glassware-101", Track: TrackAlcoholic, Level: LevelBeginner, Title: "Glassware & Tools"},
		{ID: "gin-essentials", Track: TrackAlcoholic, Level: LevelBeginner, Title: "Gin Essentials"},
		{ID: "shaking-101", Track: TrackAlcoholic, Level: LevelIntermediate, Title: "Shaking & Straining"},
		{ID: "whiskey-classics", Track: TrackAlcoholic, Level: LevelIntermediate, Title: "Whiskey Classics"},
		{ID: "advanced-balancing", Track: TrackAlcoholic, Level: LevelAdvanced, Title: "Advanced Balancing"},
		{ID: "aperitivo-hour", Track: TrackLowABV, Level: LevelBeginner, Title: "Aperitivo Hour"},
		{ID: "spritz-lab", Track: TrackLowABV, Level: LevelIntermediate, Title: "Spritz Lab"},
		{ID: "amaro-depths", Track: TrackLowABV, Level: LevelAdvanced, Title: "Amaro Depths"},
		{ID: "zero-proof-foundations", Track: TrackZeroProof, Level: LevelBeginner, Title: "Zero-Proof Foundations"},
		{ID: "zero-proof-citrus", Track: TrackZeroProof, Level: LevelIntermediate, Title: "Citrus & Syrups"},
		{ID: "zero-proof-pantry", Track: TrackZeroProof, Level: LevelAdvanced, Title: "Pantry Mixology"},
	}
}

func item(id, moduleID string, track Track, diff, secs int, ex ExerciseType) LessonItem {
	return LessonItem{ID: id, ModuleID: moduleID, Track: track, Difficulty: diff, EstimatedSeconds: secs, ExerciseType: ex}
}

func seedItems() []LessonItem {
	var items []LessonItem

	// glassware-101
	items = append(items,
		item("glass-001", "glassware-101", TrackAlcoholic, 1, 20, ExerciseMCQ),
		item("glass-002", "glassware-101", TrackAlcoholic, 1, 20, ExerciseMCQ),
		item("glass-003", "glassware-101", TrackAlcoholic, 1, 30, ExerciseMCQ),
		item("glass-004", "glassware-101", TrackAlcoholic, 2, 45, ExerciseOrder),
		item("glass-005", "glassware-101", TrackAlcoholic, 2, 30, ExerciseMCQ),
		item("glass-006", "glassware-101", TrackAlcoholic, 2, 60, ExerciseShort),
		item("glass-007", "glassware-101", TrackAlcoholic, 3, 45, ExerciseOrder),
		item("glass-008", "glassware-101", TrackAlcoholic, 3, 60, ExerciseShort),
	)

	// gin-essentials
	items = append(items,
		item("gin-001", "gin-essentials", TrackAlcoholic, 1, 20, ExerciseMCQ),
		item("gin-002", "gin-essentials", TrackAlcoholic, 1, 30, ExerciseMCQ),
		item("gin-003", "gin-essentials", TrackAlcoholic, 2, 30, ExerciseMCQ),
		item("gin-004", "gin-essentials", TrackAlcoholic, 2, 45, ExerciseOrder),
		item("gin-005", "gin-essentials", TrackAlcoholic, 3, 60, ExerciseShort),
		item("gin-006", "gin-essentials", TrackAlcoholic, 3, 45, ExerciseOrder),
		item("gin-007", "gin-essentials", TrackAlcoholic, 4, 60, ExerciseShort),
	)

	// shaking-101
	items = append(items,
		item("shake-001", "shaking-101", TrackAlcoholic, 2, 30, ExerciseMCQ),
		item("shake-002", "shaking-101", TrackAlcoholic, 2, 30, ExerciseMCQ),
		item("shake-003", "shaking-101", TrackAlcoholic, 3, 45, ExerciseOrder),
		item("shake-004", "shaking-101", TrackAlcoholic, 3, 45, ExerciseOrder),
		item("shake-005", "shaking-101", TrackAlcoholic, 3, 60, ExerciseShort),
		item("shake-006", "shaking-101", TrackAlcoholic, 4, 60, ExerciseShort),
		item("shake-007", "shaking-101", TrackAlcoholic, 4, 90, ExerciseShort),
	)

	// whiskey-classics
	items = append(items,
		item("whisk-001", "whiskey-classics", TrackAlcoholic, 2, 30, ExerciseMCQ),
		item("whisk-002", "whiskey-classics", TrackAlcoholic, 3, 30, ExerciseMCQ),
		item("whisk-003", "whiskey-classics", TrackAlcoholic, 3, 45, ExerciseOrder),
		item("whisk-004", "whiskey-classics", TrackAlcoholic, 3, 60, ExerciseShort),
		item("whisk-005", "whiskey-classics", TrackAlcoholic, 4, 60, ExerciseShort),
		item("whisk-006", "whiskey-classics", TrackAlcoholic, 4, 90, ExerciseShort),
	)

	// advanced-balancing
	items = append(items,
		item("bal-001", "advanced-balancing", TrackAlcoholic, 3, 45, ExerciseMCQ),
		item("bal-002", "advanced-balancing", TrackAlcoholic, 4, 60, ExerciseOrder),
		item("bal-003", "advanced-balancing", TrackAlcoholic, 4, 60, ExerciseShort),
		item("bal-004", "advanced-balancing", TrackAlcoholic, 5, 90, ExerciseShort),
		item("bal-005", "advanced-balancing", TrackAlcoholic, 5, 90, ExerciseShort),
	)

	// aperitivo-hour
	items = append(items,
		item("aper-001", "aperitivo-hour", TrackLowABV, 1, 20, ExerciseMCQ),
		item("aper-002", "aperitivo-hour", TrackLowABV, 1, 30, ExerciseMCQ),
		item("aper-003", "aperitivo-hour", TrackLowABV, 2, 30, ExerciseMCQ),
		item("aper-004", "aperitivo-hour", TrackLowABV, 2, 45, ExerciseOrder),
		item("aper-005", "aperitivo-hour", TrackLowABV, 3, 60, ExerciseShort),
		item("aper-006", "aperitivo-hour", TrackLowABV, 3, 45, ExerciseOrder),
	)

	// spritz-lab
	items = append(items,
		item("spritz-001", "spritz-lab", TrackLowABV, 2, 30, ExerciseMCQ),
		item("spritz-002", "spritz-lab", TrackLowABV, 3, 45, ExerciseOrder),
		item("spritz-003", "spritz-lab", TrackLowABV, 3, 45, ExerciseOrder),
		item("spritz-004", "spritz-lab", TrackLowABV, 3, 60, ExerciseShort),
		item("spritz-005", "spritz-lab", TrackLowABV, 4, 60, ExerciseShort),
	)

	// amaro-depths
	items = append(items,
		item("amaro-001", "amaro-depths", TrackLowABV, 3, 45, ExerciseMCQ),
		item("amaro-002", "amaro-depths", TrackLowABV, 4, 60, ExerciseOrder),
		item("amaro-003", "amaro-depths", TrackLowABV, 4, 90, ExerciseShort),
		item("amaro-004", "amaro-depths", TrackLowABV, 5, 90, ExerciseShort),
	)

	// zero-proof-foundations
	items = append(items,
		item("zp-001", "zero-proof-foundations", TrackZeroProof, 1, 20, ExerciseMCQ),
		item("zp-002", "zero-proof-foundations", TrackZeroProof, 1, 20, ExerciseMCQ),
		item("zp-003", "zero-proof-foundations", TrackZeroProof, 1, 30, ExerciseMCQ),
		item("zp-004", "zero-proof-foundations", TrackZeroProof, 2, 30, ExerciseMCQ),
		item("zp-005", "zero-proof-foundations", TrackZeroProof, 2, 45, ExerciseOrder),
		item("zp-006", "zero-proof-foundations", TrackZeroProof, 2, 45, ExerciseOrder),
		item("zp-007", "zero-proof-foundations", TrackZeroProof, 3, 60, ExerciseShort),
		item("zp-008", "zero-proof-foundations", TrackZeroProof, 3, 60, ExerciseShort),
	)

	// zero-proof-citrus
	items = append(items,
		item("citrus-001", "zero-proof-citrus", TrackZeroProof, 2, 30, ExerciseMCQ),
		item("citrus-002", "zero-proof-citrus", TrackZeroProof, 2, 30, ExerciseMCQ),
		item("citrus-003", "zero-proof-citrus", TrackZeroProof, 3, 45, ExerciseOrder),
		item("citrus-004", "zero-proof-citrus", TrackZeroProof, 3, 60, ExerciseShort),
		item("citrus-005", "zero-proof-citrus", TrackZeroProof, 4, 60, ExerciseShort),
	)

	// zero-proof-pantry
	items = append(items,
		item("pantry-001", "zero-proof-pantry", TrackZeroProof, 3, 45, ExerciseMCQ),
		item("pantry-002", "zero-proof-pantry", TrackZeroProof, 4, 60, ExerciseOrder),
		item("pantry-003", "zero-proof-pantry", TrackZeroProof, 4, 90, ExerciseShort),
		item("pantry-004", "zero-proof-pantry", TrackZeroProof, 5, 90, ExerciseShort),
	)

	return items
}
