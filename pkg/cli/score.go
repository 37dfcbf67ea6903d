package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/facilsec-lab/argus/pkg/cli/config"
	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/facilsec-lab/argus/pkg/repository/memory"
	"github.com/facilsec-lab/argus/pkg/scoring"
	"github.com/facilsec-lab/argus/pkg/scoring/vertical"
	"github.com/facilsec-lab/argus/pkg/usecase"
	"github.com/facilsec-lab/argus/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// scoreInput is the one-shot assessment description read from the input
// file. It mirrors what the HTTP API would receive across several calls.
type scoreInput struct {
	Name             string                 `json:"name"`
	FacilityName     string                 `json:"facility_name,omitempty"`
	TemplateID       string                 `json:"template_id"`
	RetailProfile    *retailProfileInput    `json:"retail_profile,omitempty"`
	WarehouseProfile *warehouseProfileInput `json:"warehouse_profile,omitempty"`
	Responses        map[string]string      `json:"responses,omitempty"`
	Scenarios        []scenarioInput        `json:"scenarios"`
}

type retailProfileInput struct {
	AnnualRevenue       float64 `json:"annual_revenue,omitempty"`
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

type warehouseProfileInput struct {
	InventoryValue       float64 `json:"inventory_value,omitempty"`
	LossRate             float64 `json:"loss_rate"`
	HighValueSKUs        int     `json:"high_value_skus"`
	HasPerimeterFencing  bool    `json:"has_perimeter_fencing"`
	HasCCTVCoverage      bool    `json:"has_cctv_coverage"`
	HasGuardPatrol       bool    `json:"has_guard_patrol"`
	HasDockAccessControl bool    `json:"has_dock_access_control"`
	PriorCargoThefts     int     `json:"prior_cargo_thefts"`
	PriorTrespasses      int     `json:"prior_trespasses"`
}

type scenarioInput struct {
	ThreatID           string         `json:"threat_id"`
	AssetName          string         `json:"asset_name,omitempty"`
	InherentLikelihood int            `json:"inherent_likelihood,omitempty"`
	InherentImpact     int            `json:"inherent_impact,omitempty"`
	Vulnerability      int            `json:"vulnerability,omitempty"`
	Controls           []controlInput `json:"controls,omitempty"`
}

type controlInput struct {
	Name                   string `json:"name"`
	Type                   string `json:"type"`
	Effectiveness          int    `json:"effectiveness,omitempty"`
	TreatmentEffectiveness int    `json:"treatment_effectiveness,omitempty"`
	PrimaryEffect          string `json:"primary_effect,omitempty"`
}

type scoreOutput struct {
	AssessmentID  string           `json:"assessment_id"`
	TemplateID    string           `json:"template_id"`
	Vertical      string           `json:"vertical"`
	Paradigm      string           `json:"paradigm"`
	Effectiveness float64          `json:"effectiveness"`
	Scenarios     []scenarioOutput `json:"scenarios"`
	Composite     *compositeOutput `json:"composite,omitempty"`
}

type scenarioOutput struct {
	ID              int64           `json:"id"`
	ThreatID        string          `json:"threat_id"`
	AssetName       string          `json:"asset_name,omitempty"`
	Likelihood      int             `json:"likelihood"`
	Vulnerability   int             `json:"vulnerability"`
	Impact          int             `json:"impact"`
	InherentScore   int             `json:"inherent_score"`
	RiskScore       int             `json:"risk_score"`
	Current         *riskOutput     `json:"current,omitempty"`
	Residual        *riskOutput     `json:"residual,omitempty"`
	Fidelity        *fidelityOutput `json:"fidelity,omitempty"`
	Recommendations []string        `json:"recommendations,omitempty"`
}

type riskOutput struct {
	LikelihoodExact        float64 `json:"likelihood_exact"`
	ImpactExact            float64 `json:"impact_exact"`
	Likelihood             int     `json:"likelihood"`
	Impact                 int     `json:"impact"`
	Score                  int     `json:"score"`
	Level                  string  `json:"level"`
	LikelihoodReductionPct float64 `json:"likelihood_reduction_pct"`
	ImpactReductionPct     float64 `json:"impact_reduction_pct"`
}

type fidelityOutput struct {
	Effectiveness float64 `json:"effectiveness"`
	InherentScore float64 `json:"inherent_score"`
	ResidualScore float64 `json:"residual_score"`
	ReductionPct  float64 `json:"reduction_pct"`
}

type compositeOutput struct {
	Total          int    `json:"total"`
	Level          string `json:"level"`
	MetricPoints   int    `json:"metric_points"`
	GapPoints      int    `json:"gap_points"`
	BonusPoints    int    `json:"bonus_points"`
	IncidentPoints int    `json:"incident_points"`
}

func cmdScore() *cli.Command {
	var catalogCfg config.Catalog
	var inputPath string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Usage:       "Path to the assessment input JSON file",
			Required:    true,
			Sources:     cli.EnvVars("ARGUS_INPUT"),
			Destination: &inputPath,
		},
	}
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:  "score",
		Usage: "Score an assessment described by a JSON file and print the result",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			catalog, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load scoring catalog")
			}

			input, err := loadScoreInput(inputPath)
			if err != nil {
				return err
			}

			repo := memory.New()
			defer safe.Close(ctx, repo)

			uc := usecase.New(repo, usecase.WithCatalog(catalog))

			assessment, err := uc.Assessment.CreateAssessment(ctx, input.toAssessment())
			if err != nil {
				return goerr.Wrap(err, "failed to create assessment from input")
			}

			for _, sc := range input.Scenarios {
				scenario, err := uc.Assessment.AddScenario(ctx, &model.RiskScenario{
					AssessmentID:       assessment.ID,
					ThreatID:           types.ThreatID(sc.ThreatID),
					AssetName:          sc.AssetName,
					InherentLikelihood: sc.InherentLikelihood,
					InherentImpact:     sc.InherentImpact,
					Vulnerability:      sc.Vulnerability,
				})
				if err != nil {
					return goerr.Wrap(err, "failed to add scenario from input", goerr.V("threat_id", sc.ThreatID))
				}

				for _, ctrl := range sc.Controls {
					if _, err := uc.Assessment.AddControl(ctx, &model.Control{
						ScenarioID:             scenario.ID,
						Name:                   ctrl.Name,
						Type:                   types.ControlType(ctrl.Type),
						Effectiveness:          ctrl.Effectiveness,
						TreatmentEffectiveness: ctrl.TreatmentEffectiveness,
						PrimaryEffect:          types.PrimaryEffect(ctrl.PrimaryEffect),
					}); err != nil {
						return goerr.Wrap(err, "failed to add control from input", goerr.V("name", ctrl.Name))
					}
				}
			}

			if len(input.Responses) > 0 {
				responses := make(model.ResponseSet, len(input.Responses))
				for questionID, answer := range input.Responses {
					responses[types.QuestionID(questionID)] = types.Answer(answer)
				}
				if _, err := uc.Assessment.PutResponses(ctx, assessment.ID, responses); err != nil {
					return goerr.Wrap(err, "failed to store survey responses from input")
				}
			}

			result, err := uc.Score.ScoreAssessment(ctx, assessment.ID)
			if err != nil {
				return goerr.Wrap(err, "failed to score assessment")
			}

			output := toScoreOutput(result)
			if input.RetailProfile != nil || input.WarehouseProfile != nil {
				composite, err := uc.Score.CompositeScore(ctx, assessment.ID)
				if err != nil {
					return goerr.Wrap(err, "failed to compute composite score")
				}
				output.Composite = toCompositeOutput(composite)
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(output); err != nil {
				return goerr.Wrap(err, "failed to encode score output")
			}

			return nil
		},
	}
}

func loadScoreInput(path string) (*scoreInput, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read input file", goerr.V("path", path))
	}

	var input scoreInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, goerr.Wrap(err, "failed to parse input JSON", goerr.V("path", path))
	}

	if len(input.Scenarios) == 0 {
		return nil, goerr.New("input must describe at least one scenario", goerr.V("path", path))
	}

	return &input, nil
}

func (in *scoreInput) toAssessment() *model.Assessment {
	assessment := &model.Assessment{
		Name:         in.Name,
		FacilityName: in.FacilityName,
		TemplateID:   types.TemplateID(in.TemplateID),
	}

	if p := in.RetailProfile; p != nil {
		assessment.RetailProfile = &model.RetailProfile{
			AnnualRevenue:       p.AnnualRevenue,
			ShrinkageRate:       p.ShrinkageRate,
			HighValueCategories: p.HighValueCategories,
			HasEAS:              p.HasEAS,
			HasPOSCCTV:          p.HasPOSCCTV,
			HasLPStaff:          p.HasLPStaff,
			HasCashDropSafe:     p.HasCashDropSafe,
			PriorRobberies:      p.PriorRobberies,
			PriorBurglaries:     p.PriorBurglaries,
			PriorInternalTheft:  p.PriorInternalTheft,
		}
	}

	if p := in.WarehouseProfile; p != nil {
		assessment.WarehouseProfile = &model.WarehouseProfile{
			InventoryValue:       p.InventoryValue,
			LossRate:             p.LossRate,
			HighValueSKUs:        p.HighValueSKUs,
			HasPerimeterFencing:  p.HasPerimeterFencing,
			HasCCTVCoverage:      p.HasCCTVCoverage,
			HasGuardPatrol:       p.HasGuardPatrol,
			HasDockAccessControl: p.HasDockAccessControl,
			PriorCargoThefts:     p.PriorCargoThefts,
			PriorTrespasses:      p.PriorTrespasses,
		}
	}

	return assessment
}

func toScoreOutput(result *usecase.AssessmentScore) *scoreOutput {
	output := &scoreOutput{
		AssessmentID:  result.AssessmentID.String(),
		TemplateID:    result.TemplateID.String(),
		Vertical:      result.Vertical.String(),
		Paradigm:      result.Paradigm.String(),
		Effectiveness: result.Effectiveness,
		Scenarios:     make([]scenarioOutput, len(result.Scenarios)),
	}

	for i, sc := range result.Scenarios {
		out := scenarioOutput{
			ID:              sc.Scenario.ID,
			ThreatID:        sc.Scenario.ThreatID.String(),
			AssetName:       sc.Scenario.AssetName,
			Likelihood:      sc.Likelihood,
			Vulnerability:   sc.Vulnerability,
			Impact:          sc.Impact,
			InherentScore:   sc.InherentScore,
			RiskScore:       sc.RiskScore,
			Recommendations: sc.Recommendations,
		}

		if sc.Fidelity != nil {
			out.Fidelity = &fidelityOutput{
				Effectiveness: sc.Fidelity.Effectiveness,
				InherentScore: sc.Fidelity.InherentScore,
				ResidualScore: sc.Fidelity.ResidualScore,
				ReductionPct:  sc.Fidelity.Reduction,
			}
		} else {
			out.Current = toRiskOutput(sc.Current)
			out.Residual = toRiskOutput(sc.Residual)
		}

		output.Scenarios[i] = out
	}

	return output
}

func toRiskOutput(risk scoring.ControlledRisk) *riskOutput {
	return &riskOutput{
		LikelihoodExact:        risk.LikelihoodExact,
		ImpactExact:            risk.ImpactExact,
		Likelihood:             risk.Likelihood,
		Impact:                 risk.Impact,
		Score:                  risk.Score,
		Level:                  risk.Level.String(),
		LikelihoodReductionPct: risk.LikelihoodReduction,
		ImpactReductionPct:     risk.ImpactReduction,
	}
}

func toCompositeOutput(result *vertical.CompositeResult) *compositeOutput {
	return &compositeOutput{
		Total:          result.Total,
		Level:          result.Level.String(),
		MetricPoints:   result.MetricPoints,
		GapPoints:      result.GapPoints,
		BonusPoints:    result.BonusPoints,
		IncidentPoints: result.IncidentPoints,
	}
}
