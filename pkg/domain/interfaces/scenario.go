package interfaces

import (
	"context"

	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
)

type ScenarioRepository interface {
	// Create creates a new risk scenario with auto-generated ID
	Create(ctx context.Context, scenario *model.RiskScenario) (*model.RiskScenario, error)

	// Get retrieves a scenario by ID
	Get(ctx context.Context, id int64) (*model.RiskScenario, error)

	// ListByAssessment retrieves all scenarios of an assessment
	ListByAssessment(ctx context.Context, assessmentID types.AssessmentID) ([]*model.RiskScenario, error)

	// Update updates an existing scenario
	Update(ctx context.Context, scenario *model.RiskScenario) (*model.RiskScenario, error)

	// Delete deletes a scenario by ID
	Delete(ctx context.Context, id int64) error
}
