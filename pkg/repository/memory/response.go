package memory

import (
	"context"
	"sync"
	"time"

	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
)

type responseRepository struct {
	mu        sync.RWMutex
	responses map[types.AssessmentID]*model.SurveyResponses
}

func newResponseRepository() *responseRepository {
	return &responseRepository{
		responses: make(map[types.AssessmentID]*model.SurveyResponses),
	}
}

func (r *responseRepository) Put(ctx context.Context, assessmentID types.AssessmentID, responses model.ResponseSet) (*model.SurveyResponses, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := &model.SurveyResponses{
		AssessmentID: assessmentID,
		Responses:    responses.Clone(),
		UpdatedAt:    time.Now().UTC(),
	}
	r.responses[assessmentID] = stored

	return &model.SurveyResponses{
		AssessmentID: stored.AssessmentID,
		Responses:    stored.Responses.Clone(),
		UpdatedAt:    stored.UpdatedAt,
	}, nil
}

func (r *responseRepository) Get(ctx context.Context, assessmentID types.AssessmentID) (*model.SurveyResponses, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.responses[assessmentID]
	if !exists {
		// No stored answers is an empty set, not an error
		return &model.SurveyResponses{
			AssessmentID: assessmentID,
			Responses:    model.ResponseSet{},
		}, nil
	}

	return &model.SurveyResponses{
		AssessmentID: stored.AssessmentID,
		Responses:    stored.Responses.Clone(),
		UpdatedAt:    stored.UpdatedAt,
	}, nil
}

func (r *responseRepository) Delete(ctx context.Context, assessmentID types.AssessmentID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.responses, assessmentID)
	return nil
}
