// Package vertical supplies per-facility-type scoring adapters. Each
// adapter contributes the vulnerability, likelihood and impact heuristics
// for its vertical; the combination arithmetic (likelihood x
// vulnerability x impact, compound reduction) is shared and lives in
// pkg/scoring.
package vertical

import (
	"math"

	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Adapter is the capability set every vertical implements. All
// operations are pure with respect to the given inputs.
type Adapter interface {
	// Vertical identifies the facility type this adapter serves
	Vertical() types.Vertical

	// CalculateVulnerability derives a 1-5 vulnerability score from
	// control-absence signals in the survey responses
	CalculateVulnerability(responses model.ResponseSet, threatID types.ThreatID) int

	// CalculateLikelihood derives a 1-5 likelihood score from historical
	// and contextual signals in the survey responses
	CalculateLikelihood(responses model.ResponseSet, threatID types.ThreatID) int

	// CalculateImpact derives a 1-5 impact score, starting from the
	// threat's typical impact and adjusted by vertical-specific
	// aggravating factors
	CalculateImpact(responses model.ResponseSet, threatID types.ThreatID, meta *model.ThreatMetadata) int

	// CalculateRisk combines the factors into an integer risk score
	CalculateRisk(likelihood, vulnerability, impact int, exposure, controlEffectiveness float64) int

	// GenerateRecommendations maps fired control-absence signals to fixed
	// recommendation text, in check order
	GenerateRecommendations(responses model.ResponseSet, threatID types.ThreatID, riskScore int) []string
}

// Threat types recognized by more than one vertical
const (
	ThreatInternalTheft types.ThreatID = "internal-theft"
)

// controlCheck pairs a control-presence question with the
// recommendation issued when the control is absent
type controlCheck struct {
	question       types.QuestionID
	recommendation string
}

var adapters = map[types.Vertical]Adapter{
	types.VerticalRetail:    &RetailAdapter{},
	types.VerticalWarehouse: &WarehouseAdapter{},
}

// For returns the adapter for the given vertical
func For(v types.Vertical) (Adapter, error) {
	adapter, ok := adapters[v]
	if !ok {
		return nil, goerr.New("no adapter registered for vertical", goerr.V("vertical", v))
	}
	return adapter, nil
}

// combineRisk is the shared likelihood x vulnerability x impact formula
// with a single multiplicative control-effectiveness discount. exposure
// is accepted for forward compatibility and currently unused.
func combineRisk(likelihood, vulnerability, impact int, _ float64, controlEffectiveness float64) int {
	if controlEffectiveness < 0 {
		controlEffectiveness = 0
	}
	if controlEffectiveness > 0.95 {
		controlEffectiveness = 0.95
	}

	inherent := float64(likelihood * vulnerability * impact)
	return int(math.Round(inherent * (1 - controlEffectiveness)))
}

// clampScore clamps a derived factor to the 1-5 scale
func clampScore(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}
