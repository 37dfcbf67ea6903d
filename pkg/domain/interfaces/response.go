package interfaces

import (
	"context"

	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
)

type ResponseRepository interface {
	// Put stores the full response set of an assessment, replacing any
	// previously stored answers
	Put(ctx context.Context, assessmentID types.AssessmentID, responses model.ResponseSet) (*model.SurveyResponses, error)

	// Get retrieves the response set of an assessment. An assessment
	// without stored responses yields an empty set, not an error.
	Get(ctx context.Context, assessmentID types.AssessmentID) (*model.SurveyResponses, error)

	// Delete removes the response set of an assessment
	Delete(ctx context.Context, assessmentID types.AssessmentID) error
}
