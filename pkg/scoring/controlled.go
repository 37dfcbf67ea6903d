package scoring

import (
	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
)

// ControlledRisk is the result of applying a control set to a pair of
// likelihood/impact values. Exact figures keep full float precision for
// reporting; tier figures are rounded to the discrete 1-5 scale.
// Reduction percentages are computed from the exact figures.
type ControlledRisk struct {
	LikelihoodExact float64
	ImpactExact     float64
	Likelihood      int
	Impact          int
	Score           int
	Level           types.RiskLevel

	LikelihoodReduction float64 // percent
	ImpactReduction     float64 // percent
}

// CurrentRisk applies existing controls to the inherent likelihood and
// impact, producing the as-is risk position.
//
// Existing controls carry no effect-axis tag: every existing control
// with a positive effectiveness reduces likelihood only. Impact-side
// reduction for existing controls is reserved for a future effect tag,
// matching the asymmetry with proposed controls (see ResidualRisk).
func CurrentRisk(inherentLikelihood, inherentImpact int, existing []*model.Control) ControlledRisk {
	var likelihoodRatings, impactRatings []int
	for _, c := range existing {
		if c.Type != types.ControlTypeExisting {
			continue
		}
		if c.Effectiveness > 0 {
			likelihoodRatings = append(likelihoodRatings, c.Effectiveness)
		}
	}

	return applyReduction(float64(inherentLikelihood), float64(inherentImpact), likelihoodRatings, impactRatings)
}

// ResidualRisk applies proposed controls to the current (post-existing-
// control) likelihood and impact, producing the forward-looking risk
// position. Unlike existing controls, proposed controls must declare
// which axis they reduce via PrimaryEffect.
func ResidualRisk(currentLikelihood, currentImpact float64, proposed []*model.Control) ControlledRisk {
	var likelihoodRatings, impactRatings []int
	for _, c := range proposed {
		if c.Type != types.ControlTypeProposed {
			continue
		}
		if c.TreatmentEffectiveness <= 0 {
			continue
		}
		switch c.PrimaryEffect {
		case types.EffectReduceLikelihood:
			likelihoodRatings = append(likelihoodRatings, c.TreatmentEffectiveness)
		case types.EffectReduceImpact:
			impactRatings = append(impactRatings, c.TreatmentEffectiveness)
		}
	}

	return applyReduction(currentLikelihood, currentImpact, likelihoodRatings, impactRatings)
}

func applyReduction(likelihood, impact float64, likelihoodRatings, impactRatings []int) ControlledRisk {
	likelihoodExact := Reduce(likelihood, likelihoodRatings)
	impactExact := Reduce(impact, impactRatings)

	likelihoodTier := ClampTier(likelihoodExact)
	impactTier := ClampTier(impactExact)
	score := likelihoodTier * impactTier

	return ControlledRisk{
		LikelihoodExact:     likelihoodExact,
		ImpactExact:         impactExact,
		Likelihood:          likelihoodTier,
		Impact:              impactTier,
		Score:               score,
		Level:               ClassifyRiskLevel(score),
		LikelihoodReduction: reductionPercent(likelihood, likelihoodExact),
		ImpactReduction:     reductionPercent(impact, impactExact),
	}
}

// reductionPercent reports how far value fell from initial, in percent.
// Scale values are >= 1 in practice, but a zero initial yields 0 rather
// than dividing by zero.
func reductionPercent(initial, value float64) float64 {
	if initial == 0 {
		return 0
	}
	return (initial - value) / initial * 100
}
