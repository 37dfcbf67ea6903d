package config

import (
	"os"

	"github.com/facilsec-lab/argus/pkg/domain/model"
	domainConfig "github.com/facilsec-lab/argus/pkg/domain/model/config"
	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// ScoringCatalog represents the scoring catalog file: assessment
// templates, the control weight catalog and threat reference data
type ScoringCatalog struct {
	Templates      []TemplateEntry `toml:"template"`
	ControlWeights []WeightEntry   `toml:"control_weight"`
	Threats        []ThreatEntry   `toml:"threat"`
}

// TemplateEntry represents an assessment template configuration
type TemplateEntry struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	Vertical string `toml:"vertical"`
	Paradigm string `toml:"paradigm"`
}

// Validate checks if the TemplateEntry is valid
func (t *TemplateEntry) Validate() error {
	id := types.TemplateID(t.ID)
	if err := id.Validate(); err != nil {
		return goerr.Wrap(err, "invalid template ID")
	}
	if t.Name == "" {
		return goerr.New("template name is required", goerr.V("id", t.ID))
	}
	if !types.Vertical(t.Vertical).IsValid() {
		return goerr.New("invalid template vertical", goerr.V("id", t.ID), goerr.V("vertical", t.Vertical))
	}
	if !types.Paradigm(t.Paradigm).IsValid() {
		return goerr.New("invalid template paradigm", goerr.V("id", t.ID), goerr.V("paradigm", t.Paradigm))
	}
	return nil
}

// WeightEntry represents a survey question weight configuration
type WeightEntry struct {
	QuestionID string  `toml:"question_id"`
	Weight     float64 `toml:"weight"`
}

// Validate checks if the WeightEntry is valid
func (w *WeightEntry) Validate() error {
	id := types.QuestionID(w.QuestionID)
	if err := id.Validate(); err != nil {
		return goerr.Wrap(err, "invalid question ID")
	}
	if w.Weight <= 0 || w.Weight > 1 {
		return goerr.New("control weight must be in (0, 1]", goerr.V("question_id", w.QuestionID), goerr.V("weight", w.Weight))
	}
	return nil
}

// ThreatEntry represents a threat reference configuration
type ThreatEntry struct {
	ID            string `toml:"id"`
	Name          string `toml:"name"`
	Description   string `toml:"description"`
	TypicalImpact string `toml:"typical_impact"`
}

// Validate checks if the ThreatEntry is valid
func (t *ThreatEntry) Validate() error {
	id := types.ThreatID(t.ID)
	if err := id.Validate(); err != nil {
		return goerr.Wrap(err, "invalid threat ID")
	}
	if t.Name == "" {
		return goerr.New("threat name is required", goerr.V("id", t.ID))
	}
	if !types.ScaleLabel(t.TypicalImpact).IsValid() {
		return goerr.New("invalid typical impact label", goerr.V("id", t.ID), goerr.V("typical_impact", t.TypicalImpact))
	}
	return nil
}

// Validate checks if the ScoringCatalog is valid
func (s *ScoringCatalog) Validate() error {
	templateIDs := make(map[string]bool)
	for _, tmpl := range s.Templates {
		if err := tmpl.Validate(); err != nil {
			return goerr.Wrap(err, "invalid template")
		}
		if templateIDs[tmpl.ID] {
			return goerr.New("duplicate template ID", goerr.V("id", tmpl.ID))
		}
		templateIDs[tmpl.ID] = true
	}

	questionIDs := make(map[string]bool)
	for _, weight := range s.ControlWeights {
		if err := weight.Validate(); err != nil {
			return goerr.Wrap(err, "invalid control weight")
		}
		if questionIDs[weight.QuestionID] {
			return goerr.New("duplicate question ID", goerr.V("id", weight.QuestionID))
		}
		questionIDs[weight.QuestionID] = true
	}

	threatIDs := make(map[string]bool)
	for _, threat := range s.Threats {
		if err := threat.Validate(); err != nil {
			return goerr.Wrap(err, "invalid threat")
		}
		if threatIDs[threat.ID] {
			return goerr.New("duplicate threat ID", goerr.V("id", threat.ID))
		}
		threatIDs[threat.ID] = true
	}

	return nil
}

// LoadScoringCatalog loads the scoring catalog from a TOML file
func LoadScoringCatalog(path string) (*ScoringCatalog, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read catalog file", goerr.V("path", path))
	}

	var catalog ScoringCatalog
	if err := toml.Unmarshal(data, &catalog); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML catalog", goerr.V("path", path))
	}

	if err := catalog.Validate(); err != nil {
		return nil, goerr.Wrap(err, "catalog validation failed", goerr.V("path", path))
	}

	return &catalog, nil
}

// ToScoringConfig converts the catalog to the domain scoring configuration
func (s *ScoringCatalog) ToScoringConfig() *domainConfig.ScoringConfig {
	templates := make([]domainConfig.Template, len(s.Templates))
	for i, tmpl := range s.Templates {
		templates[i] = domainConfig.Template{
			ID:       types.TemplateID(tmpl.ID),
			Name:     tmpl.Name,
			Vertical: types.Vertical(tmpl.Vertical),
			Paradigm: types.Paradigm(tmpl.Paradigm),
		}
	}

	weights := make([]domainConfig.ControlWeight, len(s.ControlWeights))
	for i, weight := range s.ControlWeights {
		weights[i] = domainConfig.ControlWeight{
			QuestionID: types.QuestionID(weight.QuestionID),
			Weight:     weight.Weight,
		}
	}

	threats := make([]model.ThreatMetadata, len(s.Threats))
	for i, threat := range s.Threats {
		threats[i] = model.ThreatMetadata{
			ID:            types.ThreatID(threat.ID),
			Name:          threat.Name,
			Description:   threat.Description,
			TypicalImpact: types.ScaleLabel(threat.TypicalImpact),
		}
	}

	return &domainConfig.ScoringConfig{
		Templates:      templates,
		ControlWeights: weights,
		Threats:        threats,
	}
}

// Catalog holds the CLI flag pointing at the scoring catalog file
type Catalog struct {
	path string
}

// Flags returns CLI flags for catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Path to the scoring catalog TOML file",
			Sources:     cli.EnvVars("ARGUS_CATALOG"),
			Destination: &c.path,
		},
	}
}

// Path returns the configured catalog path
func (c *Catalog) Path() string {
	return c.path
}

// Configure loads and validates the catalog file and converts it to the
// domain scoring configuration
func (c *Catalog) Configure() (*domainConfig.ScoringConfig, error) {
	if c.path == "" {
		return nil, goerr.New("catalog is required")
	}

	catalog, err := LoadScoringCatalog(c.path)
	if err != nil {
		return nil, err
	}

	return catalog.ToScoringConfig(), nil
}
