package vertical_test

import (
	"testing"

	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/facilsec-lab/argus/pkg/scoring/vertical"
	"github.com/m-mizutani/gt"
)

func TestWarehouse_CalculateVulnerability(t *testing.T) {
	a := &vertical.WarehouseAdapter{}

	t.Run("baseline with all controls", func(t *testing.T) {
		responses := model.ResponseSet{
			vertical.QWarehouseDockAccess: types.AnswerYes,
			vertical.QWarehouseCCTV:       types.AnswerYes,
			vertical.QWarehousePatrol:     types.AnswerYes,
		}
		gt.V(t, a.CalculateVulnerability(responses, vertical.ThreatCargoTheft)).Equal(3)
	})

	t.Run("warehouse divisor is steeper than retail", func(t *testing.T) {
		// 3 missing x 2 points = 6; 6/2 = +3 over baseline, clamped to 5
		gt.V(t, a.CalculateVulnerability(model.ResponseSet{}, vertical.ThreatCargoTheft)).Equal(5)
	})
}

func TestWarehouse_CalculateLikelihood(t *testing.T) {
	a := &vertical.WarehouseAdapter{}

	gt.V(t, a.CalculateLikelihood(model.ResponseSet{}, vertical.ThreatCargoTheft)).Equal(2)

	responses := model.ResponseSet{vertical.QWarehousePriorCargoTheft: types.AnswerYes}
	gt.V(t, a.CalculateLikelihood(responses, vertical.ThreatCargoTheft)).Equal(5)

	responses = model.ResponseSet{
		vertical.QWarehousePriorTrespass: types.AnswerYes,
		vertical.QWarehouseRemote:        types.AnswerYes,
	}
	gt.V(t, a.CalculateLikelihood(responses, vertical.ThreatTrespass)).Equal(5)
}

func TestWarehouse_InternalTheft(t *testing.T) {
	a := &vertical.WarehouseAdapter{}

	// The shared internal-theft threat resolves through the warehouse table
	gt.V(t, a.CalculateVulnerability(model.ResponseSet{}, vertical.ThreatInternalTheft)).Equal(5)

	responses := model.ResponseSet{
		vertical.QWarehouseDockAccess: types.AnswerYes,
		vertical.QWarehouseCCTV:       types.AnswerYes,
	}
	gt.V(t, a.CalculateVulnerability(responses, vertical.ThreatInternalTheft)).Equal(3)

	recs := a.GenerateRecommendations(model.ResponseSet{}, vertical.ThreatInternalTheft, 10)
	gt.A(t, recs).Length(2)
	gt.V(t, recs[0]).Equal("Fit badge-controlled access on all dock doors")
}

func TestWarehouse_Recommendations(t *testing.T) {
	a := &vertical.WarehouseAdapter{}

	recs := a.GenerateRecommendations(model.ResponseSet{}, vertical.ThreatTrespass, 10)
	gt.A(t, recs).Length(2)
	gt.V(t, recs[0]).Equal("Complete perimeter fencing with anti-climb topping")
}
