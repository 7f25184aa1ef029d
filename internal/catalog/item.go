package catalog

// Track represents a course content track.
type Track string

const (
	TrackAlcoholic Track = "alcoholic"
	TrackLowABV    Track = "low-abv"
	TrackZeroProof Track = "zero-proof"
)

// AllTracks returns all tracks in display order.
func AllTracks() []Track {
	return []Track{TrackAlcoholic, TrackLowABV, TrackZeroProof}
}

// TrackDisplayName returns a human-readable name for a track.
func TrackDisplayName(t Track) string {
	switch t {
	case TrackAlcoholic:
		return "Classic Cocktails"
	case TrackLowABV:
		return "Low-ABV"
	case TrackZeroProof:
		return "Zero-Proof"
	default:
		return string(t)
	}
}

// Level represents a learner placement level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Spirit identifies a spirit focus tag from the onboarding survey.
type Spirit string

const (
	SpiritGin     Spirit = "gin"
	SpiritWhiskey Spirit = "whiskey"
	SpiritRum     Spirit = "rum"
	SpiritTequila Spirit = "tequila"
	SpiritVodka   Spirit = "vodka"
)

// ExerciseType identifies how a lesson item is answered.
type ExerciseType string

const (
	ExerciseMCQ   ExerciseType = "mcq"
	ExerciseOrder ExerciseType = "order"
	ExerciseShort ExerciseType = "short"
)

// LessonItem is a single exercise in the content catalog. Catalog data is
// immutable and versioned with content releases; the scheduler never creates
// or destroys items.
type LessonItem struct {
	ID               string
	ModuleID         string
	Track            Track
	Difficulty       int // 1..5
	EstimatedSeconds int
	ExerciseType     ExerciseType
}

// Module is a themed group of lesson items.
type Module struct {
	ID    string
	Track Track
	Level Level
	Title string
}
