// Package scoring implements the risk scoring engine: fixed likelihood
// and impact scales, the compound control-reduction model, the current
// and residual risk calculators, and the survey-fidelity effectiveness
// model. Everything in this package is pure computation: no I/O, no
// shared state, deterministic for identical inputs.
package scoring

import (
	"math"

	"github.com/facilsec-lab/argus/pkg/domain/types"
)

// ScaleLevel pairs a scale label with its numeric value (1-5)
type ScaleLevel struct {
	Value int
	Label types.ScaleLabel
}

var scaleLevels = map[types.ScaleLabel]ScaleLevel{
	types.ScaleVeryLow:  {Value: 1, Label: types.ScaleVeryLow},
	types.ScaleLow:      {Value: 2, Label: types.ScaleLow},
	types.ScaleMedium:   {Value: 3, Label: types.ScaleMedium},
	types.ScaleHigh:     {Value: 4, Label: types.ScaleHigh},
	types.ScaleVeryHigh: {Value: 5, Label: types.ScaleVeryHigh},
}

// LikelihoodLevel returns the scale level for a likelihood label.
// An unrecognized label falls back to the lowest tier rather than
// failing: label validity is enforced at the configuration boundary,
// not here.
func LikelihoodLevel(label types.ScaleLabel) ScaleLevel {
	return lookupLevel(label)
}

// ImpactLevel returns the scale level for an impact label, with the
// same lowest-tier fallback as LikelihoodLevel
func ImpactLevel(label types.ScaleLabel) ScaleLevel {
	return lookupLevel(label)
}

func lookupLevel(label types.ScaleLabel) ScaleLevel {
	if level, ok := scaleLevels[label]; ok {
		return level
	}
	return scaleLevels[types.ScaleVeryLow]
}

// ClassifyRiskLevel maps a combined likelihood x impact score (1-25)
// to its qualitative risk level
func ClassifyRiskLevel(score int) types.RiskLevel {
	switch {
	case score <= 3:
		return types.RiskLevelVeryLow
	case score <= 6:
		return types.RiskLevelLow
	case score <= 12:
		return types.RiskLevelMedium
	case score <= 16:
		return types.RiskLevelHigh
	default:
		return types.RiskLevelCritical
	}
}

// ClampTier rounds a floating likelihood or impact value to its discrete
// scale tier, floored at 1 and capped at 5
func ClampTier(v float64) int {
	tier := int(math.Round(v))
	if tier < 1 {
		return 1
	}
	if tier > 5 {
		return 5
	}
	return tier
}
