package placement

import (
	"github.com/pourly/pourly/internal/catalog"
	"github.com/pourly/pourly/internal/config"
)

// Result is the initial placement derived from onboarding survey answers.
// Produced once; recomputed only by an explicit retake.
type Result struct {
	Level          catalog.Level
	Track          catalog.Track
	Spirits        []catalog.Spirit
	SessionMinutes int
	StartModuleID  string
	Interlude      string
}

// Engine converts survey answers into an initial placement. Place is pure
// and total: any well-typed answer set produces a result, and unrecognized
// question or option IDs are no-ops on scoring, never errors.
type Engine struct {
	cfg config.PlacementConfig
}

// NewEngine creates a placement engine with the given level-band policy.
func NewEngine(cfg config.PlacementConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Place scores the answers and resolves the placement. Identical answers
// always yield an identical result.
func (e *Engine) Place(answers SurveyAnswers) Result {
	experience := 0
	trackScores := make(map[catalog.Track]int)
	spiritSet := make(map[catalog.Spirit]bool)
	minutes := e.cfg.DefaultSessionMinutes

	for _, qa := range answers {
		switch a := qa.Answer.(type) {
		case SingleSelect:
			experience += experienceWeights[qa.Question][a.Option]
			if tc, ok := trackWeights[qa.Question][a.Option]; ok {
				trackScores[tc.Track] += tc.Points
			}
			if qa.Question == QuestionTime {
				if m, ok := minutesByOption[a.Option]; ok {
					minutes = m
				}
			}
			if s, ok := spiritOptions[a.Option]; ok && qa.Question == QuestionSpirits {
				spiritSet[s] = true
			}
		case MultiSelect:
			for _, opt := range a.Options {
				if tc, ok := trackWeights[qa.Question][opt]; ok {
					trackScores[tc.Track] += tc.Points
				}
				if s, ok := spiritOptions[opt]; ok && qa.Question == QuestionSpirits {
					spiritSet[s] = true
				}
			}
		case Scale:
			if weight, ok := experienceScaleWeights[qa.Question]; ok {
				experience += (clampScale(a.Value) - scaleMin) * weight
			}
		}
	}

	level := e.levelFor(experience)
	track := pickTrack(trackScores)
	spirits := orderedSpirits(spiritSet)

	return Result{
		Level:          level,
		Track:          track,
		Spirits:        spirits,
		SessionMinutes: minutes,
		StartModuleID:  startModule(level, track, spirits),
		Interlude:      interludeByLevel[level],
	}
}

// levelFor cuts the experience score into level bands. Scores on a boundary
// resolve to the lower level; conservative placement avoids early
// frustration.
func (e *Engine) levelFor(score int) catalog.Level {
	maxScore := maxExperienceScore()
	if maxScore == 0 {
		return catalog.LevelBeginner
	}
	frac := float64(score) / float64(maxScore)
	switch {
	case frac <= e.cfg.BeginnerBand:
		return catalog.LevelBeginner
	case frac <= e.cfg.IntermediateBand:
		return catalog.LevelIntermediate
	default:
		return catalog.LevelAdvanced
	}
}

// pickTrack returns the highest-scoring track. Ties resolve in the fixed
// catalog track order, which also makes the no-signal default the first
// track.
func pickTrack(scores map[catalog.Track]int) catalog.Track {
	best := catalog.AllTracks()[0]
	bestScore := scores[best]
	for _, t := range catalog.AllTracks()[1:] {
		if scores[t] > bestScore {
			best = t
			bestScore = scores[t]
		}
	}
	return best
}

// orderedSpirits returns the selected spirits in fixed priority order.
func orderedSpirits(set map[catalog.Spirit]bool) []catalog.Spirit {
	var spirits []catalog.Spirit
	for _, s := range catalog.SpiritPriority() {
		if set[s] {
			spirits = append(spirits, s)
		}
	}
	return spirits
}

// startModule resolves the starting module. A spirit with a dedicated
// starter module wins over the generic (level, track) module, letting a
// learner who picked gin skip the generic glassware course.
func startModule(level catalog.Level, track catalog.Track, spirits []catalog.Spirit) string {
	for _, s := range spirits {
		if id, ok := catalog.StarterForSpirit(s); ok {
			return id
		}
	}
	return catalog.StarterModule(level, track)
}

func clampScale(v int) int {
	if v < scaleMin {
		return scaleMin
	}
	if v > scaleMax {
		return scaleMax
	}
	return v
}
