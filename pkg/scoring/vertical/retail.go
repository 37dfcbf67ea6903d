package vertical

import (
	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/facilsec-lab/argus/pkg/scoring"
)

// Survey question IDs for the retail vertical
const (
	QRetailEAS          types.QuestionID = "has-eas-system"
	QRetailPOSCCTV      types.QuestionID = "has-pos-cctv"
	QRetailLPStaff      types.QuestionID = "has-lp-staff"
	QRetailCashDropSafe types.QuestionID = "has-cash-drop-safe"
	QRetailAlarm        types.QuestionID = "has-alarm-system"
	QRetailAccessCtl    types.QuestionID = "has-access-control"

	QRetailPriorTheft   types.QuestionID = "prior-theft-incident"
	QRetailPriorRobbery types.QuestionID = "prior-robbery-incident"

	QRetailHighValue   types.QuestionID = "high-value-goods"
	QRetailCashIntense types.QuestionID = "cash-intensive"
	QRetailLateHours   types.QuestionID = "late-hours"
)

// Retail threat types; internal theft is shared, see adapter.go
const (
	ThreatShoplifting types.ThreatID = "shoplifting"
	ThreatRobbery     types.ThreatID = "robbery"
	ThreatBurglary    types.ThreatID = "burglary"
)

const (
	retailVulnerabilityBaseline = 3
	retailLikelihoodBaseline    = 2

	// Each missing control contributes this many raw risk factor points;
	// the accumulated count is folded into the baseline by integer
	// division before clamping.
	retailRiskFactorWeight  = 2
	retailRiskFactorDivisor = 3
)

// retailControlChecks lists, per threat, the controls whose absence
// raises vulnerability. Order matters: recommendations follow it.
var retailControlChecks = map[types.ThreatID][]controlCheck{
	ThreatShoplifting: {
		{QRetailEAS, "Install electronic article surveillance (EAS) at store exits"},
		{QRetailPOSCCTV, "Extend CCTV coverage to all point-of-sale areas"},
		{QRetailLPStaff, "Staff dedicated loss prevention personnel during opening hours"},
	},
	ThreatRobbery: {
		{QRetailCashDropSafe, "Install a time-delay cash drop safe and keep till floats minimal"},
		{QRetailPOSCCTV, "Extend CCTV coverage to all point-of-sale areas"},
		{QRetailAlarm, "Install a monitored hold-up alarm with silent trigger at registers"},
	},
	ThreatBurglary: {
		{QRetailAlarm, "Install a monitored intruder alarm covering all entry points"},
		{QRetailAccessCtl, "Fit access control on stockroom and rear entrances"},
	},
	ThreatInternalTheft: {
		{QRetailAccessCtl, "Fit access control on stockroom and rear entrances"},
		{QRetailPOSCCTV, "Extend CCTV coverage to all point-of-sale areas"},
		{QRetailLPStaff, "Staff dedicated loss prevention personnel during opening hours"},
	},
}

// RetailAdapter implements the scoring heuristics for retail facilities
type RetailAdapter struct{}

var _ Adapter = &RetailAdapter{}

// Vertical identifies the facility type this adapter serves
func (a *RetailAdapter) Vertical() types.Vertical {
	return types.VerticalRetail
}

// CalculateVulnerability starts from the retail baseline and accumulates
// risk factor points for each relevant control that is absent, folding
// the raw count into the baseline by integer division.
func (a *RetailAdapter) CalculateVulnerability(responses model.ResponseSet, threatID types.ThreatID) int {
	riskFactors := 0
	for _, check := range retailControlChecks[threatID] {
		if !responses.Answer(check.question).IsAffirmative() {
			riskFactors += retailRiskFactorWeight
		}
	}

	return clampScore(retailVulnerabilityBaseline + riskFactors/retailRiskFactorDivisor)
}

// CalculateLikelihood starts from the retail baseline and adds fixed
// increments for historical and contextual signals.
func (a *RetailAdapter) CalculateLikelihood(responses model.ResponseSet, threatID types.ThreatID) int {
	likelihood := retailLikelihoodBaseline

	switch threatID {
	case ThreatRobbery:
		if responses.Answer(QRetailPriorRobbery).IsAffirmative() {
			likelihood += 3
		}
		if responses.Answer(QRetailCashIntense).IsAffirmative() {
			likelihood++
		}
		if responses.Answer(QRetailLateHours).IsAffirmative() {
			likelihood++
		}
	case ThreatShoplifting, ThreatBurglary, ThreatInternalTheft:
		if responses.Answer(QRetailPriorTheft).IsAffirmative() {
			likelihood += 2
		}
		if threatID == ThreatBurglary && responses.Answer(QRetailLateHours).IsAffirmative() {
			likelihood++
		}
	}

	return clampScore(likelihood)
}

// CalculateImpact starts from the threat's typical impact and bumps it
// by one tier when high-value goods are present.
func (a *RetailAdapter) CalculateImpact(responses model.ResponseSet, threatID types.ThreatID, meta *model.ThreatMetadata) int {
	impact := 1
	if meta != nil {
		impact = scoring.ImpactLevel(meta.TypicalImpact).Value
	}

	if responses.Answer(QRetailHighValue).IsAffirmative() {
		impact++
	}

	return clampScore(impact)
}

// CalculateRisk combines the factors via the shared formula
func (a *RetailAdapter) CalculateRisk(likelihood, vulnerability, impact int, exposure, controlEffectiveness float64) int {
	return combineRisk(likelihood, vulnerability, impact, exposure, controlEffectiveness)
}

// GenerateRecommendations maps each absent control to its fixed
// recommendation text, in check order. High scores add a closing review
// recommendation.
func (a *RetailAdapter) GenerateRecommendations(responses model.ResponseSet, threatID types.ThreatID, riskScore int) []string {
	var recs []string
	for _, check := range retailControlChecks[threatID] {
		if !responses.Answer(check.question).IsAffirmative() {
			recs = append(recs, check.recommendation)
		}
	}

	if riskScore >= 60 {
		recs = append(recs, "Commission a full on-site security review; the combined risk score for this threat is in the critical band")
	}

	return recs
}
