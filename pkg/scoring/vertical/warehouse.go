package vertical

import (
	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/facilsec-lab/argus/pkg/scoring"
)

// Survey question IDs for the warehouse vertical
const (
	QWarehouseFencing    types.QuestionID = "has-perimeter-fencing"
	QWarehouseCCTV       types.QuestionID = "has-cctv-coverage"
	QWarehousePatrol     types.QuestionID = "has-guard-patrol"
	QWarehouseDockAccess types.QuestionID = "has-dock-access-control"

	QWarehousePriorCargoTheft types.QuestionID = "prior-cargo-theft"
	QWarehousePriorTrespass   types.QuestionID = "prior-trespass"

	QWarehouseHighValue types.QuestionID = "high-value-inventory"
	QWarehouseRemote    types.QuestionID = "remote-location"
)

// Warehouse threat types
const (
	ThreatCargoTheft types.ThreatID = "cargo-theft"
	ThreatTrespass   types.ThreatID = "trespass"
)

const (
	warehouseVulnerabilityBaseline = 3
	warehouseLikelihoodBaseline    = 2

	warehouseRiskFactorWeight  = 2
	warehouseRiskFactorDivisor = 2
)

var warehouseControlChecks = map[types.ThreatID][]controlCheck{
	ThreatCargoTheft: {
		{QWarehouseDockAccess, "Fit badge-controlled access on all dock doors"},
		{QWarehouseCCTV, "Extend CCTV coverage to docks and staging areas"},
		{QWarehousePatrol, "Contract a recurring guard patrol for off-hours"},
	},
	ThreatTrespass: {
		{QWarehouseFencing, "Complete perimeter fencing with anti-climb topping"},
		{QWarehousePatrol, "Contract a recurring guard patrol for off-hours"},
	},
	ThreatInternalTheft: {
		{QWarehouseDockAccess, "Fit badge-controlled access on all dock doors"},
		{QWarehouseCCTV, "Extend CCTV coverage to docks and staging areas"},
	},
}

// WarehouseAdapter implements the scoring heuristics for warehouse and
// distribution facilities. Same shape as the retail adapter, different
// coefficients and trigger signals.
type WarehouseAdapter struct{}

var _ Adapter = &WarehouseAdapter{}

func (a *WarehouseAdapter) Vertical() types.Vertical {
	return types.VerticalWarehouse
}

func (a *WarehouseAdapter) CalculateVulnerability(responses model.ResponseSet, threatID types.ThreatID) int {
	riskFactors := 0
	for _, check := range warehouseControlChecks[threatID] {
		if !responses.Answer(check.question).IsAffirmative() {
			riskFactors += warehouseRiskFactorWeight
		}
	}

	return clampScore(warehouseVulnerabilityBaseline + riskFactors/warehouseRiskFactorDivisor)
}

func (a *WarehouseAdapter) CalculateLikelihood(responses model.ResponseSet, threatID types.ThreatID) int {
	likelihood := warehouseLikelihoodBaseline

	switch threatID {
	case ThreatCargoTheft, ThreatInternalTheft:
		if responses.Answer(QWarehousePriorCargoTheft).IsAffirmative() {
			likelihood += 3
		}
		if responses.Answer(QWarehouseHighValue).IsAffirmative() {
			likelihood++
		}
	case ThreatTrespass:
		if responses.Answer(QWarehousePriorTrespass).IsAffirmative() {
			likelihood += 2
		}
		if responses.Answer(QWarehouseRemote).IsAffirmative() {
			likelihood++
		}
	}

	return clampScore(likelihood)
}

func (a *WarehouseAdapter) CalculateImpact(responses model.ResponseSet, threatID types.ThreatID, meta *model.ThreatMetadata) int {
	impact := 1
	if meta != nil {
		impact = scoring.ImpactLevel(meta.TypicalImpact).Value
	}

	if responses.Answer(QWarehouseHighValue).IsAffirmative() {
		impact++
	}

	return clampScore(impact)
}

func (a *WarehouseAdapter) CalculateRisk(likelihood, vulnerability, impact int, exposure, controlEffectiveness float64) int {
	return combineRisk(likelihood, vulnerability, impact, exposure, controlEffectiveness)
}

func (a *WarehouseAdapter) GenerateRecommendations(responses model.ResponseSet, threatID types.ThreatID, riskScore int) []string {
	var recs []string
	for _, check := range warehouseControlChecks[threatID] {
		if !responses.Answer(check.question).IsAffirmative() {
			recs = append(recs, check.recommendation)
		}
	}

	if riskScore >= 60 {
		recs = append(recs, "Commission a full on-site security review; the combined risk score for this threat is in the critical band")
	}

	return recs
}
