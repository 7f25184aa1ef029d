package placement

import "github.com/pourly/pourly/internal/catalog"

// Scoring tables. Each answer contributes weighted points to three
// independent scores: experience (drives level), preference (drives track),
// and interest tags (drives spirits). Options absent from a table score
// nothing.

// experienceWeights maps single-select options to experience points.
var experienceWeights = map[QuestionID]map[OptionID]int{
	QuestionExperience: {
		"none":           0,
		"curious":        1,
		"casual":         2,
		"home-bartender": 4,
		"professional":   6,
	},
	QuestionComfort: {
		"never-mixed":    0,
		"follow-recipes": 1,
		"freestyle":      3,
	},
}

// experienceScaleWeights maps scale questions to a per-step multiplier.
// A scale answer of v contributes (v-1) * weight points.
var experienceScaleWeights = map[QuestionID]int{
	QuestionFrequency: 1,
}

// trackContribution is one answer option's vote for a track.
type trackContribution struct {
	Track  catalog.Track
	Points int
}

// trackWeights maps options to track preference points.
var trackWeights = map[QuestionID]map[OptionID]trackContribution{
	QuestionTrackPref: {
		"alcoholic":  {catalog.TrackAlcoholic, 3},
		"low-abv":    {catalog.TrackLowABV, 3},
		"zero-proof": {catalog.TrackZeroProof, 3},
	},
	QuestionGoal: {
		"host-parties":  {catalog.TrackAlcoholic, 1},
		"cut-back":      {catalog.TrackLowABV, 1},
		"sober-curious": {catalog.TrackZeroProof, 2},
	},
}

// spiritOptions maps interest-tag options to spirit focuses.
var spiritOptions = map[OptionID]catalog.Spirit{
	"gin":     catalog.SpiritGin,
	"whiskey": catalog.SpiritWhiskey,
	"rum":     catalog.SpiritRum,
	"tequila": catalog.SpiritTequila,
	"vodka":   catalog.SpiritVodka,
}

// minutesByOption maps the time-availability answer to a session length.
// The discrete choices mirror the lesson player's supported budgets.
var minutesByOption = map[OptionID]int{
	"short":    3,
	"standard": 5,
	"relaxed":  8,
	"deep":     12,
}

// interludeByLevel is the short welcome line shown after placement.
var interludeByLevel = map[catalog.Level]string{
	catalog.LevelBeginner:     "Welcome behind the bar. We'll start with the fundamentals.",
	catalog.LevelIntermediate: "You know your way around a jigger. Let's sharpen technique.",
	catalog.LevelAdvanced:     "Straight to the deep end: balance, dilution, and structure.",
}

// maxExperienceScore is the highest attainable experience score, used to cut
// the level bands.
func maxExperienceScore() int {
	total := 0
	for _, options := range experienceWeights {
		best := 0
		for _, w := range options {
			if w > best {
				best = w
			}
		}
		total += best
	}
	for _, weight := range experienceScaleWeights {
		total += (scaleMax - scaleMin) * weight
	}
	return total
}

const (
	scaleMin = 1
	scaleMax = 5
)
