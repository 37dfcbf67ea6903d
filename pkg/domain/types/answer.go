package types

// Answer represents a survey response value
type Answer string

const (
	AnswerYes           Answer = "yes"
	AnswerNo            Answer = "no"
	AnswerPartial       Answer = "partial"
	AnswerCompliant     Answer = "compliant"
	AnswerNonCompliant  Answer = "non-compliant"
	AnswerNotApplicable Answer = "n-a"
)

// AllAnswers returns all valid answer values
func AllAnswers() []Answer {
	return []Answer{
		AnswerYes,
		AnswerNo,
		AnswerPartial,
		AnswerCompliant,
		AnswerNonCompliant,
		AnswerNotApplicable,
	}
}

// IsValid checks if the answer is valid
func (a Answer) IsValid() bool {
	switch a {
	case AnswerYes, AnswerNo, AnswerPartial,
		AnswerCompliant, AnswerNonCompliant, AnswerNotApplicable:
		return true
	default:
		return false
	}
}

// IsAffirmative reports whether the answer indicates the control or
// condition in question is in place.
func (a Answer) IsAffirmative() bool {
	return a == AnswerYes || a == AnswerCompliant
}

// String returns the string representation of the answer
func (a Answer) String() string {
	return string(a)
}
