package scoring

import (
	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
)

// effectivenessCap bounds the aggregate survey-fidelity effectiveness:
// risk can never be fully eliminated by controls.
const effectivenessCap = 0.95

// residualFloor keeps the survey-fidelity residual score from reading
// as exactly zero in reports.
const residualFloor = 0.1

// Fidelity returns the multiplier an answer contributes to its control
// weight: full credit for controls that are in place, half credit for
// partial implementation, none otherwise.
func Fidelity(a types.Answer) float64 {
	switch a {
	case types.AnswerYes, types.AnswerCompliant:
		return 1.0
	case types.AnswerPartial:
		return 0.5
	default:
		return 0.0
	}
}

// Effectiveness computes the aggregate control effectiveness of a set of
// weighted survey responses: the weight-by-fidelity sum, capped at 0.95.
// With no responses no controls are credited and the result is 0.
func Effectiveness(responses []model.WeightedResponse) float64 {
	var sum float64
	for _, r := range responses {
		sum += r.Weight * Fidelity(r.Answer)
	}
	if sum < 0 {
		return 0
	}
	if sum > effectivenessCap {
		return effectivenessCap
	}
	return sum
}

// FidelityResult is the outcome of the survey-fidelity scoring model
type FidelityResult struct {
	Effectiveness float64
	InherentScore float64
	ResidualScore float64
	Reduction     float64 // percent
}

// SurveyFidelityScore discounts an inherent risk score by the aggregate
// effectiveness of the given responses. The residual is floored at 0.1.
func SurveyFidelityScore(inherentScore float64, responses []model.WeightedResponse) FidelityResult {
	eff := Effectiveness(responses)

	residual := inherentScore * (1 - eff)
	if residual < residualFloor {
		residual = residualFloor
	}

	return FidelityResult{
		Effectiveness: eff,
		InherentScore: inherentScore,
		ResidualScore: residual,
		Reduction:     reductionPercent(inherentScore, residual),
	}
}
