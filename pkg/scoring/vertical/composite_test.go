package vertical_test

import (
	"testing"

	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/facilsec-lab/argus/pkg/scoring/vertical"
	"github.com/m-mizutani/gt"
)

func TestShrinkageScore_WorkedExample(t *testing.T) {
	// Shrinkage 3.5% -> 25 pts; no EAS (+15) and no POS CCTV (+10) with
	// LP staff present -> 25 gap pts; 2 high-value categories -> +4;
	// one prior robbery -> +8. Total 62 -> HIGH.
	p := &model.RetailProfile{
		ShrinkageRate:       3.5,
		HighValueCategories: 2,
		HasEAS:              false,
		HasPOSCCTV:          false,
		HasLPStaff:          true,
		HasCashDropSafe:     true,
		PriorRobberies:      1,
	}

	got := vertical.ShrinkageScore(p)
	gt.V(t, got.MetricPoints).Equal(25)
	gt.V(t, got.GapPoints).Equal(25)
	gt.V(t, got.BonusPoints).Equal(4)
	gt.V(t, got.IncidentPoints).Equal(8)
	gt.V(t, got.Total).Equal(62)
	gt.V(t, got.Level).Equal(types.CompositeLevelHigh)
}

func TestShrinkageScore_MetricBands(t *testing.T) {
	tests := []struct {
		rate float64
		want int
	}{
		{0.0, 0},
		{1.4, 0},
		{1.5, 10},
		{2.4, 10},
		{2.5, 25},
		{3.5, 25},
		{9.9, 25},
	}

	for _, tt := range tests {
		p := &model.RetailProfile{
			ShrinkageRate:   tt.rate,
			HasEAS:          true,
			HasPOSCCTV:      true,
			HasLPStaff:      true,
			HasCashDropSafe: true,
		}
		got := vertical.ShrinkageScore(p)
		gt.V(t, got.MetricPoints).Equal(tt.want)
	}
}

func TestShrinkageScore_GapCap(t *testing.T) {
	// All gaps fire: 15+10+10+5 = 40, capped at 25
	p := &model.RetailProfile{}
	got := vertical.ShrinkageScore(p)
	gt.V(t, got.GapPoints).Equal(25)
}

func TestShrinkageScore_BonusCap(t *testing.T) {
	p := &model.RetailProfile{
		HighValueCategories: 9,
		HasEAS:              true,
		HasPOSCCTV:          true,
		HasLPStaff:          true,
		HasCashDropSafe:     true,
	}
	got := vertical.ShrinkageScore(p)
	gt.V(t, got.BonusPoints).Equal(10)
}

func TestShrinkageScore_IncidentCap(t *testing.T) {
	p := &model.RetailProfile{
		PriorRobberies:     2,
		PriorBurglaries:    1,
		PriorInternalTheft: 3,
		HasEAS:             true,
		HasPOSCCTV:         true,
		HasLPStaff:         true,
		HasCashDropSafe:    true,
	}
	// 8+5+4 = 17, capped at 15
	got := vertical.ShrinkageScore(p)
	gt.V(t, got.IncidentPoints).Equal(15)
}

func TestCompositeLevel_Boundaries(t *testing.T) {
	// Exact threshold behavior: 24/25, 49/50, 74/75
	tests := []struct {
		total int
		want  types.CompositeLevel
	}{
		{0, types.CompositeLevelLow},
		{24, types.CompositeLevelLow},
		{25, types.CompositeLevelMedium},
		{49, types.CompositeLevelMedium},
		{50, types.CompositeLevelHigh},
		{74, types.CompositeLevelHigh},
		{75, types.CompositeLevelCritical},
		{100, types.CompositeLevelCritical},
	}

	spec := &vertical.CompositeSpec{
		MetricBands: []vertical.Band{{Points: 0}},
		GapCap:      100,
	}

	for _, tt := range tests {
		gaps := []vertical.GapPenalty{{Code: "x", Missing: true, Points: tt.total}}
		got := spec.Score(0, gaps, 0, nil)
		gt.V(t, got.Total).Equal(tt.total)
		gt.V(t, got.Level).Equal(tt.want)
	}
}

func TestCargoLossScore(t *testing.T) {
	p := &model.WarehouseProfile{
		LossRate:             1.0,
		HighValueSKUs:        2,
		HasPerimeterFencing:  true,
		HasCCTVCoverage:      false,
		HasGuardPatrol:       true,
		HasDockAccessControl: true,
		PriorCargoThefts:     1,
	}

	got := vertical.CargoLossScore(p)
	gt.V(t, got.MetricPoints).Equal(10)
	gt.V(t, got.GapPoints).Equal(10)
	gt.V(t, got.BonusPoints).Equal(6)
	gt.V(t, got.IncidentPoints).Equal(10)
	gt.V(t, got.Total).Equal(36)
	gt.V(t, got.Level).Equal(types.CompositeLevelMedium)
}
