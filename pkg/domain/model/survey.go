package model

import (
	"time"

	"github.com/facilsec-lab/argus/pkg/domain/types"
)

// ResponseSet maps survey question IDs to their answers for one assessment
type ResponseSet map[types.QuestionID]types.Answer

// Answer returns the recorded answer for a question. A question that was
// never answered reads as AnswerNo: an absent control signal is treated
// the same as a missing control.
func (r ResponseSet) Answer(id types.QuestionID) types.Answer {
	if a, ok := r[id]; ok {
		return a
	}
	return types.AnswerNo
}

// Clone returns a copy of the response set
func (r ResponseSet) Clone() ResponseSet {
	cloned := make(ResponseSet, len(r))
	for k, v := range r {
		cloned[k] = v
	}
	return cloned
}

// SurveyResponses binds a response set to an assessment for persistence
type SurveyResponses struct {
	AssessmentID types.AssessmentID
	Responses    ResponseSet
	UpdatedAt    time.Time
}

// WeightedResponse pairs a survey answer with the control weight of its
// question from the control catalog. It is the input unit of the
// survey-fidelity effectiveness model.
type WeightedResponse struct {
	QuestionID types.QuestionID
	Answer     types.Answer
	Weight     float64
}
