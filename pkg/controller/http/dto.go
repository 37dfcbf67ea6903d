package http

import (
	"time"

	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/facilsec-lab/argus/pkg/scoring"
	"github.com/facilsec-lab/argus/pkg/scoring/vertical"
	"github.com/facilsec-lab/argus/pkg/usecase"
)

type retailProfilePayload struct {
	AnnualRevenue       float64 `json:"annual_revenue"`
	ShrinkageRate       float64 `json:"shrinkage_rate"`
	HighValueCategories int     `json:"high_value_categories"`
	HasEAS              bool    `json:"has_eas"`
	HasPOSCCTV          bool    `json:"has_pos_cctv"`
	HasLPStaff          bool    `json:"has_lp_staff"`
	HasCashDropSafe     bool    `json:"has_cash_drop_safe"`
	PriorRobberies      int     `json:"prior_robberies"`
	PriorBurglaries     int     `json:"prior_burglaries"`
	PriorInternalTheft  int     `json:"prior_internal_theft"`
}

type warehouseProfilePayload struct {
	InventoryValue       float64 `json:"inventory_value"`
	LossRate             float64 `json:"loss_rate"`
	HighValueSKUs        int     `json:"high_value_skus"`
	HasPerimeterFencing  bool    `json:"has_perimeter_fencing"`
	HasCCTVCoverage      bool    `json:"has_cctv_coverage"`
	HasGuardPatrol       bool    `json:"has_guard_patrol"`
	HasDockAccessControl bool    `json:"has_dock_access_control"`
	PriorCargoThefts     int     `json:"prior_cargo_thefts"`
	PriorTrespasses      int     `json:"prior_trespasses"`
}

type assessmentPayload struct {
	ID           string    `json:"id,omitempty"`
	Name         string    `json:"name"`
	FacilityName string    `json:"facility_name,omitempty"`
	TemplateID   string    `json:"template_id"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`

	RetailProfile    *retailProfilePayload    `json:"retail_profile,omitempty"`
	WarehouseProfile *warehouseProfilePayload `json:"warehouse_profile,omitempty"`
}

func (p *assessmentPayload) toModel() *model.Assessment {
	assessment := &model.Assessment{
		ID:           types.AssessmentID(p.ID),
		Name:         p.Name,
		FacilityName: p.FacilityName,
		TemplateID:   types.TemplateID(p.TemplateID),
	}
	if rp := p.RetailProfile; rp != nil {
		assessment.RetailProfile = &model.RetailProfile{
			AnnualRevenue:       rp.AnnualRevenue,
			ShrinkageRate:       rp.ShrinkageRate,
			HighValueCategories: rp.HighValueCategories,
			HasEAS:              rp.HasEAS,
			HasPOSCCTV:          rp.HasPOSCCTV,
			HasLPStaff:          rp.HasLPStaff,
			HasCashDropSafe:     rp.HasCashDropSafe,
			PriorRobberies:      rp.PriorRobberies,
			PriorBurglaries:     rp.PriorBurglaries,
			PriorInternalTheft:  rp.PriorInternalTheft,
		}
	}
	if wp := p.WarehouseProfile; wp != nil {
		assessment.WarehouseProfile = &model.WarehouseProfile{
			InventoryValue:       wp.InventoryValue,
			LossRate:             wp.LossRate,
			HighValueSKUs:        wp.HighValueSKUs,
			HasPerimeterFencing:  wp.HasPerimeterFencing,
			HasCCTVCoverage:      wp.HasCCTVCoverage,
			HasGuardPatrol:       wp.HasGuardPatrol,
			HasDockAccessControl: wp.HasDockAccessControl,
			PriorCargoThefts:     wp.PriorCargoThefts,
			PriorTrespasses:      wp.PriorTrespasses,
		}
	}
	return assessment
}

func fromAssessment(a *model.Assessment) *assessmentPayload {
	payload := &assessmentPayload{
		ID:           a.ID.String(),
		Name:         a.Name,
		FacilityName: a.FacilityName,
		TemplateID:   a.TemplateID.String(),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	if rp := a.RetailProfile; rp != nil {
		payload.RetailProfile = &retailProfilePayload{
			AnnualRevenue:       rp.AnnualRevenue,
			ShrinkageRate:       rp.ShrinkageRate,
			HighValueCategories: rp.HighValueCategories,
			HasEAS:              rp.HasEAS,
			HasPOSCCTV:          rp.HasPOSCCTV,
			HasLPStaff:          rp.HasLPStaff,
			HasCashDropSafe:     rp.HasCashDropSafe,
			PriorRobberies:      rp.PriorRobberies,
			PriorBurglaries:     rp.PriorBurglaries,
			PriorInternalTheft:  rp.PriorInternalTheft,
		}
	}
	if wp := a.WarehouseProfile; wp != nil {
		payload.WarehouseProfile = &warehouseProfilePayload{
			InventoryValue:       wp.InventoryValue,
			LossRate:             wp.LossRate,
			HighValueSKUs:        wp.HighValueSKUs,
			HasPerimeterFencing:  wp.HasPerimeterFencing,
			HasCCTVCoverage:      wp.HasCCTVCoverage,
			HasGuardPatrol:       wp.HasGuardPatrol,
			HasDockAccessControl: wp.HasDockAccessControl,
			PriorCargoThefts:     wp.PriorCargoThefts,
			PriorTrespasses:      wp.PriorTrespasses,
		}
	}
	return payload
}

type scenarioPayload struct {
	ID           int64  `json:"id,omitempty"`
	AssessmentID string `json:"assessment_id,omitempty"`
	ThreatID     string `json:"threat_id"`
	AssetName    string `json:"asset_name,omitempty"`

	InherentLikelihood int `json:"inherent_likelihood"`
	InherentImpact     int `json:"inherent_impact"`
	Vulnerability      int `json:"vulnerability,omitempty"`
	InherentScore      int `json:"inherent_score,omitempty"`

	CurrentLikelihood float64 `json:"current_likelihood,omitempty"`
	CurrentImpact     float64 `json:"current_impact,omitempty"`
	CurrentLevel      string  `json:"current_level,omitempty"`

	ResidualLikelihood float64 `json:"residual_likelihood,omitempty"`
	ResidualImpact     float64 `json:"residual_impact,omitempty"`
	ResidualLevel      string  `json:"residual_level,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func fromScenario(s *model.RiskScenario) *scenarioPayload {
	return &scenarioPayload{
		ID:                 s.ID,
		AssessmentID:       s.AssessmentID.String(),
		ThreatID:           s.ThreatID.String(),
		AssetName:          s.AssetName,
		InherentLikelihood: s.InherentLikelihood,
		InherentImpact:     s.InherentImpact,
		Vulnerability:      s.Vulnerability,
		InherentScore:      s.InherentScore,
		CurrentLikelihood:  s.CurrentLikelihood,
		CurrentImpact:      s.CurrentImpact,
		CurrentLevel:       s.CurrentLevel.String(),
		ResidualLikelihood: s.ResidualLikelihood,
		ResidualImpact:     s.ResidualImpact,
		ResidualLevel:      s.ResidualLevel.String(),
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

type controlPayload struct {
	ID         int64  `json:"id,omitempty"`
	ScenarioID int64  `json:"scenario_id,omitempty"`
	Name       string `json:"name"`
	Type       string `json:"type"`

	Effectiveness          int    `json:"effectiveness,omitempty"`
	TreatmentEffectiveness int    `json:"treatment_effectiveness,omitempty"`
	PrimaryEffect          string `json:"primary_effect,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func fromControl(c *model.Control) *controlPayload {
	return &controlPayload{
		ID:                     c.ID,
		ScenarioID:             c.ScenarioID,
		Name:                   c.Name,
		Type:                   c.Type.String(),
		Effectiveness:          c.Effectiveness,
		TreatmentEffectiveness: c.TreatmentEffectiveness,
		PrimaryEffect:          c.PrimaryEffect.String(),
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}

type controlledRiskPayload struct {
	LikelihoodExact     float64 `json:"likelihood_exact"`
	ImpactExact         float64 `json:"impact_exact"`
	Likelihood          int     `json:"likelihood"`
	Impact              int     `json:"impact"`
	Score               int     `json:"score"`
	Level               string  `json:"level"`
	LikelihoodReduction float64 `json:"likelihood_reduction_pct"`
	ImpactReduction     float64 `json:"impact_reduction_pct"`
}

func fromControlledRisk(cr scoring.ControlledRisk) controlledRiskPayload {
	return controlledRiskPayload{
		LikelihoodExact:     cr.LikelihoodExact,
		ImpactExact:         cr.ImpactExact,
		Likelihood:          cr.Likelihood,
		Impact:              cr.Impact,
		Score:               cr.Score,
		Level:               cr.Level.String(),
		LikelihoodReduction: cr.LikelihoodReduction,
		ImpactReduction:     cr.ImpactReduction,
	}
}

type fidelityPayload struct {
	Effectiveness float64 `json:"effectiveness"`
	InherentScore float64 `json:"inherent_score"`
	ResidualScore float64 `json:"residual_score"`
	Reduction     float64 `json:"reduction_pct"`
}

type scenarioScorePayload struct {
	Scenario *scenarioPayload `json:"scenario"`

	Likelihood    int `json:"likelihood"`
	Vulnerability int `json:"vulnerability"`
	Impact        int `json:"impact"`
	InherentScore int `json:"inherent_score"`
	RiskScore     int `json:"risk_score"`

	Current  controlledRiskPayload `json:"current"`
	Residual controlledRiskPayload `json:"residual"`

	Fidelity *fidelityPayload `json:"fidelity,omitempty"`

	Recommendations []string `json:"recommendations"`
}

func fromScenarioScore(s *usecase.ScenarioScore) *scenarioScorePayload {
	payload := &scenarioScorePayload{
		Scenario:        fromScenario(s.Scenario),
		Likelihood:      s.Likelihood,
		Vulnerability:   s.Vulnerability,
		Impact:          s.Impact,
		InherentScore:   s.InherentScore,
		RiskScore:       s.RiskScore,
		Current:         fromControlledRisk(s.Current),
		Residual:        fromControlledRisk(s.Residual),
		Recommendations: s.Recommendations,
	}
	if s.Fidelity != nil {
		payload.Fidelity = &fidelityPayload{
			Effectiveness: s.Fidelity.Effectiveness,
			InherentScore: s.Fidelity.InherentScore,
			ResidualScore: s.Fidelity.ResidualScore,
			Reduction:     s.Fidelity.Reduction,
		}
	}
	return payload
}

type assessmentScorePayload struct {
	AssessmentID  string                  `json:"assessment_id"`
	TemplateID    string                  `json:"template_id"`
	Vertical      string                  `json:"vertical"`
	Paradigm      string                  `json:"paradigm"`
	Effectiveness float64                 `json:"effectiveness"`
	Scenarios     []*scenarioScorePayload `json:"scenarios"`
}

func fromAssessmentScore(s *usecase.AssessmentScore) *assessmentScorePayload {
	payload := &assessmentScorePayload{
		AssessmentID:  s.AssessmentID.String(),
		TemplateID:    s.TemplateID.String(),
		Vertical:      s.Vertical.String(),
		Paradigm:      s.Paradigm.String(),
		Effectiveness: s.Effectiveness,
		Scenarios:     make([]*scenarioScorePayload, len(s.Scenarios)),
	}
	for i, scenario := range s.Scenarios {
		payload.Scenarios[i] = fromScenarioScore(scenario)
	}
	return payload
}

type compositePayload struct {
	Total int    `json:"total"`
	Level string `json:"level"`

	MetricPoints   int `json:"metric_points"`
	GapPoints      int `json:"gap_points"`
	BonusPoints    int `json:"bonus_points"`
	IncidentPoints int `json:"incident_points"`
}

func fromComposite(c *vertical.CompositeResult) *compositePayload {
	return &compositePayload{
		Total:          c.Total,
		Level:          c.Level.String(),
		MetricPoints:   c.MetricPoints,
		GapPoints:      c.GapPoints,
		BonusPoints:    c.BonusPoints,
		IncidentPoints: c.IncidentPoints,
	}
}
