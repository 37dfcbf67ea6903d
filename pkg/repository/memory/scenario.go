package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type scenarioRepository struct {
	mu        sync.RWMutex
	scenarios map[int64]*model.RiskScenario
	nextID    int64
}

func newScenarioRepository() *scenarioRepository {
	return &scenarioRepository{
		scenarios: make(map[int64]*model.RiskScenario),
		nextID:    1,
	}
}

func copyScenario(s *model.RiskScenario) *model.RiskScenario {
	copied := *s
	return &copied
}

func (r *scenarioRepository) Create(ctx context.Context, scenario *model.RiskScenario) (*model.RiskScenario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyScenario(scenario)
	created.ID = r.nextID
	created.CreatedAt = now
	created.UpdatedAt = now
	r.nextID++

	r.scenarios[created.ID] = created
	return copyScenario(created), nil
}

func (r *scenarioRepository) Get(ctx context.Context, id int64) (*model.RiskScenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scenario, exists := r.scenarios[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "scenario not found", goerr.V("id", id))
	}

	return copyScenario(scenario), nil
}

func (r *scenarioRepository) ListByAssessment(ctx context.Context, assessmentID types.AssessmentID) ([]*model.RiskScenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var scenarios []*model.RiskScenario
	for _, scenario := range r.scenarios {
		if scenario.AssessmentID == assessmentID {
			scenarios = append(scenarios, copyScenario(scenario))
		}
	}

	sort.Slice(scenarios, func(i, j int) bool {
		return scenarios[i].ID < scenarios[j].ID
	})

	return scenarios, nil
}

func (r *scenarioRepository) Update(ctx context.Context, scenario *model.RiskScenario) (*model.RiskScenario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.scenarios[scenario.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "scenario not found", goerr.V("id", scenario.ID))
	}

	updated := copyScenario(scenario)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.scenarios[updated.ID] = updated
	return copyScenario(updated), nil
}

func (r *scenarioRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.scenarios[id]; !exists {
		return goerr.Wrap(ErrNotFound, "scenario not found", goerr.V("id", id))
	}

	delete(r.scenarios, id)
	return nil
}
