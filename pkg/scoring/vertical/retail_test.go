package vertical_test

import (
	"testing"

	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/facilsec-lab/argus/pkg/scoring/vertical"
	"github.com/m-mizutani/gt"
)

func TestFor(t *testing.T) {
	retail, err := vertical.For(types.VerticalRetail)
	gt.NoError(t, err).Required()
	gt.V(t, retail.Vertical()).Equal(types.VerticalRetail)

	warehouse, err := vertical.For(types.VerticalWarehouse)
	gt.NoError(t, err).Required()
	gt.V(t, warehouse.Vertical()).Equal(types.VerticalWarehouse)

	_, err = vertical.For(types.Vertical("datacenter"))
	gt.Error(t, err)
}

func TestRetail_CalculateVulnerability(t *testing.T) {
	a := &vertical.RetailAdapter{}

	t.Run("all controls present stays at baseline", func(t *testing.T) {
		responses := model.ResponseSet{
			vertical.QRetailEAS:     types.AnswerYes,
			vertical.QRetailPOSCCTV: types.AnswerYes,
			vertical.QRetailLPStaff: types.AnswerYes,
		}
		gt.V(t, a.CalculateVulnerability(responses, vertical.ThreatShoplifting)).Equal(3)
	})

	t.Run("all controls missing raises vulnerability", func(t *testing.T) {
		// 3 missing controls x 2 points = 6; 6/3 = +2 over baseline
		gt.V(t, a.CalculateVulnerability(model.ResponseSet{}, vertical.ThreatShoplifting)).Equal(5)
	})

	t.Run("partial answers count as missing", func(t *testing.T) {
		responses := model.ResponseSet{
			vertical.QRetailEAS:     types.AnswerPartial,
			vertical.QRetailPOSCCTV: types.AnswerYes,
			vertical.QRetailLPStaff: types.AnswerYes,
		}
		// 1 missing x 2 = 2; 2/3 = 0 under integer division
		gt.V(t, a.CalculateVulnerability(responses, vertical.ThreatShoplifting)).Equal(3)
	})

	t.Run("clamped to 5", func(t *testing.T) {
		for _, threat := range []types.ThreatID{
			vertical.ThreatShoplifting, vertical.ThreatRobbery,
			vertical.ThreatBurglary, vertical.ThreatInternalTheft,
		} {
			v := a.CalculateVulnerability(model.ResponseSet{}, threat)
			gt.B(t, v >= 1 && v <= 5).True()
		}
	})
}

func TestRetail_CalculateLikelihood(t *testing.T) {
	a := &vertical.RetailAdapter{}

	t.Run("baseline without signals", func(t *testing.T) {
		gt.V(t, a.CalculateLikelihood(model.ResponseSet{}, vertical.ThreatShoplifting)).Equal(2)
	})

	t.Run("prior theft adds two", func(t *testing.T) {
		responses := model.ResponseSet{vertical.QRetailPriorTheft: types.AnswerYes}
		gt.V(t, a.CalculateLikelihood(responses, vertical.ThreatShoplifting)).Equal(4)
	})

	t.Run("prior robbery adds three", func(t *testing.T) {
		responses := model.ResponseSet{vertical.QRetailPriorRobbery: types.AnswerYes}
		gt.V(t, a.CalculateLikelihood(responses, vertical.ThreatRobbery)).Equal(5)
	})

	t.Run("clamped at five", func(t *testing.T) {
		responses := model.ResponseSet{
			vertical.QRetailPriorRobbery: types.AnswerYes,
			vertical.QRetailCashIntense:  types.AnswerYes,
			vertical.QRetailLateHours:    types.AnswerYes,
		}
		gt.V(t, a.CalculateLikelihood(responses, vertical.ThreatRobbery)).Equal(5)
	})
}

func TestRetail_CalculateImpact(t *testing.T) {
	a := &vertical.RetailAdapter{}
	meta := &model.ThreatMetadata{
		ID:            vertical.ThreatRobbery,
		TypicalImpact: types.ScaleHigh,
	}

	t.Run("typical impact as default", func(t *testing.T) {
		gt.V(t, a.CalculateImpact(model.ResponseSet{}, vertical.ThreatRobbery, meta)).Equal(4)
	})

	t.Run("high value goods bump", func(t *testing.T) {
		responses := model.ResponseSet{vertical.QRetailHighValue: types.AnswerYes}
		gt.V(t, a.CalculateImpact(responses, vertical.ThreatRobbery, meta)).Equal(5)
	})

	t.Run("bump clamped at five", func(t *testing.T) {
		veryHigh := &model.ThreatMetadata{TypicalImpact: types.ScaleVeryHigh}
		responses := model.ResponseSet{vertical.QRetailHighValue: types.AnswerYes}
		gt.V(t, a.CalculateImpact(responses, vertical.ThreatRobbery, veryHigh)).Equal(5)
	})

	t.Run("nil metadata falls back to lowest tier", func(t *testing.T) {
		gt.V(t, a.CalculateImpact(model.ResponseSet{}, vertical.ThreatRobbery, nil)).Equal(1)
	})

	t.Run("unknown label falls back to lowest tier", func(t *testing.T) {
		unknown := &model.ThreatMetadata{TypicalImpact: types.ScaleLabel("apocalyptic")}
		gt.V(t, a.CalculateImpact(model.ResponseSet{}, vertical.ThreatRobbery, unknown)).Equal(1)
	})
}

func TestRetail_CalculateRisk(t *testing.T) {
	a := &vertical.RetailAdapter{}

	t.Run("product of factors", func(t *testing.T) {
		gt.V(t, a.CalculateRisk(4, 3, 5, 0, 0)).Equal(60)
	})

	t.Run("control effectiveness discount", func(t *testing.T) {
		gt.V(t, a.CalculateRisk(4, 3, 5, 0, 0.5)).Equal(30)
	})

	t.Run("effectiveness clamped to cap", func(t *testing.T) {
		gt.V(t, a.CalculateRisk(4, 5, 5, 0, 2.0)).Equal(5)
	})

	t.Run("negative effectiveness clamped to zero", func(t *testing.T) {
		gt.V(t, a.CalculateRisk(2, 2, 2, 0, -1)).Equal(8)
	})

	t.Run("exposure accepted but unused", func(t *testing.T) {
		gt.V(t, a.CalculateRisk(3, 3, 3, 0.7, 0)).Equal(a.CalculateRisk(3, 3, 3, 0, 0))
	})
}

func TestRetail_GenerateRecommendations(t *testing.T) {
	a := &vertical.RetailAdapter{}

	t.Run("order matches check order", func(t *testing.T) {
		recs := a.GenerateRecommendations(model.ResponseSet{}, vertical.ThreatShoplifting, 10)
		gt.A(t, recs).Length(3)
		gt.V(t, recs[0]).Equal("Install electronic article surveillance (EAS) at store exits")
		gt.V(t, recs[1]).Equal("Extend CCTV coverage to all point-of-sale areas")
	})

	t.Run("present controls produce no recommendation", func(t *testing.T) {
		responses := model.ResponseSet{
			vertical.QRetailEAS:     types.AnswerYes,
			vertical.QRetailPOSCCTV: types.AnswerYes,
			vertical.QRetailLPStaff: types.AnswerYes,
		}
		recs := a.GenerateRecommendations(responses, vertical.ThreatShoplifting, 10)
		gt.A(t, recs).Length(0)
	})

	t.Run("high score adds review recommendation", func(t *testing.T) {
		responses := model.ResponseSet{
			vertical.QRetailEAS:     types.AnswerYes,
			vertical.QRetailPOSCCTV: types.AnswerYes,
			vertical.QRetailLPStaff: types.AnswerYes,
		}
		recs := a.GenerateRecommendations(responses, vertical.ThreatShoplifting, 60)
		gt.A(t, recs).Length(1)
	})

	t.Run("deterministic", func(t *testing.T) {
		first := a.GenerateRecommendations(model.ResponseSet{}, vertical.ThreatRobbery, 30)
		for i := 0; i < 5; i++ {
			gt.V(t, a.GenerateRecommendations(model.ResponseSet{}, vertical.ThreatRobbery, 30)).Equal(first)
		}
	})
}
