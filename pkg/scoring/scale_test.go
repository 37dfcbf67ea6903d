package scoring_test

import (
	"testing"

	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/facilsec-lab/argus/pkg/scoring"
	"github.com/m-mizutani/gt"
)

func TestLikelihoodLevel(t *testing.T) {
	tests := []struct {
		label types.ScaleLabel
		value int
	}{
		{types.ScaleVeryLow, 1},
		{types.ScaleLow, 2},
		{types.ScaleMedium, 3},
		{types.ScaleHigh, 4},
		{types.ScaleVeryHigh, 5},
	}

	for _, tt := range tests {
		t.Run(tt.label.String(), func(t *testing.T) {
			level := scoring.LikelihoodLevel(tt.label)
			gt.V(t, level.Value).Equal(tt.value)
			gt.V(t, level.Label).Equal(tt.label)
		})
	}
}

func TestLikelihoodLevel_UnknownLabelFallsBack(t *testing.T) {
	level := scoring.LikelihoodLevel(types.ScaleLabel("catastrophic"))
	gt.V(t, level.Value).Equal(1)
	gt.V(t, level.Label).Equal(types.ScaleVeryLow)
}

func TestImpactLevel_UnknownLabelFallsBack(t *testing.T) {
	level := scoring.ImpactLevel(types.ScaleLabel(""))
	gt.V(t, level.Value).Equal(1)
}

func TestClassifyRiskLevel_Breakpoints(t *testing.T) {
	tests := []struct {
		score int
		want  types.RiskLevel
	}{
		{1, types.RiskLevelVeryLow},
		{3, types.RiskLevelVeryLow},
		{4, types.RiskLevelLow},
		{6, types.RiskLevelLow},
		{7, types.RiskLevelMedium},
		{12, types.RiskLevelMedium},
		{13, types.RiskLevelHigh},
		{16, types.RiskLevelHigh},
		{17, types.RiskLevelCritical},
		{25, types.RiskLevelCritical},
	}

	for _, tt := range tests {
		gt.V(t, scoring.ClassifyRiskLevel(tt.score)).Equal(tt.want)
	}
}

func TestClassifyRiskLevel_AllCells(t *testing.T) {
	// Every likelihood x impact cell must match the documented breakpoints
	for l := 1; l <= 5; l++ {
		for i := 1; i <= 5; i++ {
			score := l * i
			var want types.RiskLevel
			switch {
			case score <= 3:
				want = types.RiskLevelVeryLow
			case score <= 6:
				want = types.RiskLevelLow
			case score <= 12:
				want = types.RiskLevelMedium
			case score <= 16:
				want = types.RiskLevelHigh
			default:
				want = types.RiskLevelCritical
			}
			gt.V(t, scoring.ClassifyRiskLevel(score)).Equal(want)
		}
	}

	// Documented example: l=3, i=4 -> 12 -> Medium; 13 -> High
	gt.V(t, scoring.ClassifyRiskLevel(12)).Equal(types.RiskLevelMedium)
	gt.V(t, scoring.ClassifyRiskLevel(13)).Equal(types.RiskLevelHigh)
}

func TestClampTier(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.2, 1},
		{1.0, 1},
		{1.4, 1},
		{1.5, 2},
		{2.36, 2},
		{3.645, 4},
		{4.9, 5},
		{7.2, 5},
	}

	for _, tt := range tests {
		gt.V(t, scoring.ClampTier(tt.in)).Equal(tt.want)
	}
}
