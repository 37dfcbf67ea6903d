package memory

import (
	"github.com/facilsec-lab/argus/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = goerr.New("not found")

// Memory is the in-memory repository backend, used for development and
// tests
type Memory struct {
	assessment *assessmentRepository
	scenario   *scenarioRepository
	control    *controlRepository
	response   *responseRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		assessment: newAssessmentRepository(),
		scenario:   newScenarioRepository(),
		control:    newControlRepository(),
		response:   newResponseRepository(),
	}
}

func (m *Memory) Assessment() interfaces.AssessmentRepository {
	return m.assessment
}

func (m *Memory) Scenario() interfaces.ScenarioRepository {
	return m.scenario
}

func (m *Memory) Control() interfaces.ControlRepository {
	return m.control
}

func (m *Memory) Response() interfaces.ResponseRepository {
	return m.response
}

// Close is a no-op for the in-memory backend
func (m *Memory) Close() error {
	return nil
}
