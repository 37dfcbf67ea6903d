package config

import (
	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
)

// Template routes an assessment template to its vertical adapter and
// scoring paradigm. The paradigm choice is made here, once, at template
// resolution; nothing downstream re-decides it.
type Template struct {
	ID       types.TemplateID
	Name     string
	Vertical types.Vertical
	Paradigm types.Paradigm
}

// ControlWeight assigns a survey question its weight in the
// survey-fidelity effectiveness model
type ControlWeight struct {
	QuestionID types.QuestionID
	Weight     float64
}

// ScoringConfig holds the compiled scoring catalog: template routing,
// the control weight catalog and threat reference data.
type ScoringConfig struct {
	Templates      []Template
	ControlWeights []ControlWeight
	Threats        []model.ThreatMetadata
}

// Template returns the template configuration for the given ID, or nil
// if the template is not in the catalog
func (c *ScoringConfig) Template(id types.TemplateID) *Template {
	for i := range c.Templates {
		if c.Templates[i].ID == id {
			return &c.Templates[i]
		}
	}
	return nil
}

// Threat returns the threat metadata for the given ID, or nil if the
// threat is not in the catalog
func (c *ScoringConfig) Threat(id types.ThreatID) *model.ThreatMetadata {
	for i := range c.Threats {
		if c.Threats[i].ID == id {
			return &c.Threats[i]
		}
	}
	return nil
}

// Weights returns the control weight catalog as a question ID lookup
func (c *ScoringConfig) Weights() map[types.QuestionID]float64 {
	weights := make(map[types.QuestionID]float64, len(c.ControlWeights))
	for _, cw := range c.ControlWeights {
		weights[cw.QuestionID] = cw.Weight
	}
	return weights
}
