package model

import (
	"time"

	"github.com/facilsec-lab/argus/pkg/domain/types"
)

// Control represents a security control attached to a risk scenario.
// Effectiveness ratings are inputs to the scoring engine only; the
// engine never mutates a control.
//
// Existing controls carry Effectiveness (0-5) and no effect tag.
// Proposed controls carry TreatmentEffectiveness (0-5) and must declare
// PrimaryEffect.
type Control struct {
	ID           int64
	ScenarioID   int64
	AssessmentID types.AssessmentID
	Name         string
	Type         types.ControlType

	Effectiveness          int
	TreatmentEffectiveness int
	PrimaryEffect          types.PrimaryEffect

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Rating returns the effectiveness rating relevant to the control's type
func (c *Control) Rating() int {
	if c.Type == types.ControlTypeProposed {
		return c.TreatmentEffectiveness
	}
	return c.Effectiveness
}
