package interfaces

import (
	"context"

	"github.com/facilsec-lab/argus/pkg/domain/model"
)

type ControlRepository interface {
	// Create creates a new control with auto-generated ID
	Create(ctx context.Context, control *model.Control) (*model.Control, error)

	// Get retrieves a control by ID
	Get(ctx context.Context, id int64) (*model.Control, error)

	// ListByScenario retrieves all controls of a scenario
	ListByScenario(ctx context.Context, scenarioID int64) ([]*model.Control, error)

	// Update updates an existing control
	Update(ctx context.Context, control *model.Control) (*model.Control, error)

	// Delete deletes a control by ID
	Delete(ctx context.Context, id int64) error
}
