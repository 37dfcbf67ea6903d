package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type controlRepository struct {
	mu       sync.RWMutex
	controls map[int64]*model.Control
	nextID   int64
}

func newControlRepository() *controlRepository {
	return &controlRepository{
		controls: make(map[int64]*model.Control),
		nextID:   1,
	}
}

func copyControl(c *model.Control) *model.Control {
	copied := *c
	return &copied
}

func (r *controlRepository) Create(ctx context.Context, control *model.Control) (*model.Control, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyControl(control)
	created.ID = r.nextID
	created.CreatedAt = now
	created.UpdatedAt = now
	r.nextID++

	r.controls[created.ID] = created
	return copyControl(created), nil
}

func (r *controlRepository) Get(ctx context.Context, id int64) (*model.Control, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	control, exists := r.controls[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "control not found", goerr.V("id", id))
	}

	return copyControl(control), nil
}

func (r *controlRepository) ListByScenario(ctx context.Context, scenarioID int64) ([]*model.Control, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var controls []*model.Control
	for _, control := range r.controls {
		if control.ScenarioID == scenarioID {
			controls = append(controls, copyControl(control))
		}
	}

	sort.Slice(controls, func(i, j int) bool {
		return controls[i].ID < controls[j].ID
	})

	return controls, nil
}

func (r *controlRepository) Update(ctx context.Context, control *model.Control) (*model.Control, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.controls[control.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "control not found", goerr.V("id", control.ID))
	}

	updated := copyControl(control)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.controls[updated.ID] = updated
	return copyControl(updated), nil
}

func (r *controlRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.controls[id]; !exists {
		return goerr.Wrap(ErrNotFound, "control not found", goerr.V("id", id))
	}

	delete(r.controls, id)
	return nil
}
