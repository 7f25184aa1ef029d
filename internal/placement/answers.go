package placement

// QuestionID identifies an onboarding survey question.
type QuestionID string

// OptionID identifies a selectable option within a question.
type OptionID string

// Survey question IDs known to the scoring tables. Answers referencing any
// other ID are ignored; unrecognized signals are not errors.
const (
	QuestionExperience QuestionID = "experience"
	QuestionComfort    QuestionID = "comfort"
	QuestionFrequency  QuestionID = "frequency"
	QuestionTrackPref  QuestionID = "track_pref"
	QuestionGoal       QuestionID = "goal"
	QuestionSpirits    QuestionID = "spirit_interest"
	QuestionTime       QuestionID = "time"
)

// Answer is a closed set of per-question answer shapes. Keeping the variants
// closed lets the scoring tables be checked at compile time instead of
// matching on free-form strings.
type Answer interface {
	isAnswer()
}

// SingleSelect is one chosen option.
type SingleSelect struct {
	Option OptionID
}

// MultiSelect is zero or more chosen options.
type MultiSelect struct {
	Options []OptionID
}

// Scale is a 1..5 rating. Out-of-range values are clamped, never rejected.
type Scale struct {
	Value int
}

func (SingleSelect) isAnswer() {}
func (MultiSelect) isAnswer()  {}
func (Scale) isAnswer()        {}

// QuestionAnswer pairs a question with its submitted answer.
type QuestionAnswer struct {
	Question QuestionID
	Answer   Answer
}

// SurveyAnswers is the ordered, immutable set of submitted answers.
type SurveyAnswers []QuestionAnswer
