package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/facilsec-lab/argus/pkg/cli/config"
	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.toml")
	err := os.WriteFile(path, []byte(content), 0644)
	gt.NoError(t, err).Required()
	return path
}

func TestLoadScoringCatalog(t *testing.T) {
	content := `
[[template]]
id = "retail-standard"
name = "Retail standard assessment"
vertical = "retail"
paradigm = "control-weighted"

[[template]]
id = "retail-survey"
name = "Retail survey assessment"
vertical = "retail"
paradigm = "survey-fidelity"

[[control_weight]]
question_id = "has-eas-system"
weight = 0.3

[[control_weight]]
question_id = "has-pos-cctv"
weight = 0.2

[[threat]]
id = "shoplifting"
name = "Shoplifting"
description = "Theft of merchandise by customers"
typical_impact = "low"

[[threat]]
id = "robbery"
name = "Robbery"
typical_impact = "high"
`

	catalog, err := config.LoadScoringCatalog(writeCatalog(t, content))
	gt.NoError(t, err).Required()

	gt.A(t, catalog.Templates).Length(2)
	gt.A(t, catalog.ControlWeights).Length(2)
	gt.A(t, catalog.Threats).Length(2)

	cfg := catalog.ToScoringConfig()

	tmpl := cfg.Template("retail-survey")
	gt.V(t, tmpl != nil).Equal(true)
	gt.V(t, tmpl.Vertical).Equal(types.VerticalRetail)
	gt.V(t, tmpl.Paradigm).Equal(types.ParadigmSurveyFidelity)

	threat := cfg.Threat("shoplifting")
	gt.V(t, threat != nil).Equal(true)
	gt.V(t, threat.TypicalImpact).Equal(types.ScaleLow)

	weights := cfg.Weights()
	gt.V(t, weights["has-eas-system"]).Equal(0.3)
	gt.V(t, weights["has-pos-cctv"]).Equal(0.2)
}

func TestLoadScoringCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown vertical",
			content: `
[[template]]
id = "datacenter-standard"
name = "Datacenter"
vertical = "datacenter"
paradigm = "control-weighted"
`,
		},
		{
			name: "unknown paradigm",
			content: `
[[template]]
id = "retail-standard"
name = "Retail"
vertical = "retail"
paradigm = "gut-feeling"
`,
		},
		{
			name: "duplicate template ID",
			content: `
[[template]]
id = "retail-standard"
name = "Retail"
vertical = "retail"
paradigm = "control-weighted"

[[template]]
id = "retail-standard"
name = "Duplicate"
vertical = "retail"
paradigm = "control-weighted"
`,
		},
		{
			name: "weight out of range",
			content: `
[[control_weight]]
question_id = "has-eas-system"
weight = 1.5
`,
		},
		{
			name: "zero weight",
			content: `
[[control_weight]]
question_id = "has-eas-system"
weight = 0.0
`,
		},
		{
			name: "malformed question ID",
			content: `
[[control_weight]]
question_id = "Has EAS?"
weight = 0.3
`,
		},
		{
			name: "invalid typical impact",
			content: `
[[threat]]
id = "robbery"
name = "Robbery"
typical_impact = "catastrophic"
`,
		},
		{
			name: "missing threat name",
			content: `
[[threat]]
id = "robbery"
typical_impact = "high"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadScoringCatalog(writeCatalog(t, tt.content))
			gt.Error(t, err)
		})
	}
}

func TestLoadScoringCatalog_NotFound(t *testing.T) {
	_, err := config.LoadScoringCatalog(filepath.Join(t.TempDir(), "missing.toml"))
	gt.Error(t, err)
}
