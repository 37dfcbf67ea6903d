package scoring_test

import (
	"math"
	"testing"

	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/facilsec-lab/argus/pkg/scoring"
	"github.com/m-mizutani/gt"
)

func existingControl(effectiveness int) *model.Control {
	return &model.Control{
		Type:          types.ControlTypeExisting,
		Effectiveness: effectiveness,
	}
}

func proposedControl(effectiveness int, effect types.PrimaryEffect) *model.Control {
	return &model.Control{
		Type:                   types.ControlTypeProposed,
		TreatmentEffectiveness: effectiveness,
		PrimaryEffect:          effect,
	}
}

func TestCurrentRisk_NoControls(t *testing.T) {
	got := scoring.CurrentRisk(4, 5, nil)

	gt.V(t, got.LikelihoodExact).Equal(4.0)
	gt.V(t, got.ImpactExact).Equal(5.0)
	gt.V(t, got.Likelihood).Equal(4)
	gt.V(t, got.Impact).Equal(5)
	gt.V(t, got.Score).Equal(20)
	gt.V(t, got.Level).Equal(types.RiskLevelCritical)
	gt.V(t, got.LikelihoodReduction).Equal(0.0)
	gt.V(t, got.ImpactReduction).Equal(0.0)
}

func TestCurrentRisk_LikelihoodOnly(t *testing.T) {
	// Existing controls reduce likelihood only: impact stays inherent.
	controls := []*model.Control{existingControl(2), existingControl(3)}
	got := scoring.CurrentRisk(4, 5, controls)

	wantLikelihood := 4 * math.Pow(0.9, 5)
	gt.B(t, math.Abs(got.LikelihoodExact-wantLikelihood) < 1e-9).True()
	gt.V(t, got.ImpactExact).Equal(5.0)
	gt.V(t, got.Likelihood).Equal(2)
	gt.V(t, got.Impact).Equal(5)
	gt.V(t, got.Score).Equal(10)
	gt.V(t, got.Level).Equal(types.RiskLevelMedium)

	// Reduction percent is computed from the exact values
	wantReduction := (4 - wantLikelihood) / 4 * 100
	gt.B(t, math.Abs(got.LikelihoodReduction-wantReduction) < 1e-9).True()
	gt.V(t, got.ImpactReduction).Equal(0.0)
}

func TestCurrentRisk_IgnoresZeroAndProposed(t *testing.T) {
	controls := []*model.Control{
		existingControl(0),
		proposedControl(5, types.EffectReduceLikelihood),
	}
	got := scoring.CurrentRisk(3, 3, controls)

	gt.V(t, got.LikelihoodExact).Equal(3.0)
	gt.V(t, got.ImpactExact).Equal(3.0)
	gt.V(t, got.Score).Equal(9)
}

func TestCurrentRisk_TierFlooredAtOne(t *testing.T) {
	controls := []*model.Control{
		existingControl(5), existingControl(5), existingControl(5),
	}
	got := scoring.CurrentRisk(1, 1, controls)

	gt.B(t, got.LikelihoodExact < 1).True()
	gt.V(t, got.Likelihood).Equal(1)
	gt.V(t, got.Score).Equal(1)
	gt.V(t, got.Level).Equal(types.RiskLevelVeryLow)
}

func TestResidualRisk_PartitionsByPrimaryEffect(t *testing.T) {
	current := scoring.CurrentRisk(4, 5, []*model.Control{existingControl(2), existingControl(3)})

	proposed := []*model.Control{
		proposedControl(2, types.EffectReduceLikelihood),
		proposedControl(3, types.EffectReduceImpact),
	}
	got := scoring.ResidualRisk(current.LikelihoodExact, current.ImpactExact, proposed)

	wantLikelihood := current.LikelihoodExact * math.Pow(0.9, 2)
	wantImpact := 5 * math.Pow(0.9, 3)
	gt.B(t, math.Abs(got.LikelihoodExact-wantLikelihood) < 1e-9).True()
	gt.B(t, math.Abs(got.ImpactExact-wantImpact) < 1e-9).True()
	gt.V(t, got.Likelihood).Equal(2)
	gt.V(t, got.Impact).Equal(4)
	gt.V(t, got.Score).Equal(8)
	gt.V(t, got.Level).Equal(types.RiskLevelMedium)
}

func TestResidualRisk_IgnoresExistingAndUntagged(t *testing.T) {
	proposed := []*model.Control{
		existingControl(5),
		{Type: types.ControlTypeProposed, TreatmentEffectiveness: 3}, // no effect tag
	}
	got := scoring.ResidualRisk(3.0, 4.0, proposed)

	gt.V(t, got.LikelihoodExact).Equal(3.0)
	gt.V(t, got.ImpactExact).Equal(4.0)
}

func TestResidualRisk_ZeroDenominatorGuard(t *testing.T) {
	got := scoring.ResidualRisk(0, 0, []*model.Control{
		proposedControl(3, types.EffectReduceLikelihood),
	})
	gt.V(t, got.LikelihoodReduction).Equal(0.0)
	gt.V(t, got.ImpactReduction).Equal(0.0)
}

func TestControlledRisk_Deterministic(t *testing.T) {
	controls := []*model.Control{existingControl(1), existingControl(4)}
	first := scoring.CurrentRisk(5, 4, controls)
	for i := 0; i < 5; i++ {
		gt.V(t, scoring.CurrentRisk(5, 4, controls)).Equal(first)
	}
}
