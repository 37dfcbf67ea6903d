package usecase

import (
	"context"

	"github.com/facilsec-lab/argus/pkg/domain/interfaces"
	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/model/config"
	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/facilsec-lab/argus/pkg/scoring"
	"github.com/facilsec-lab/argus/pkg/scoring/vertical"
	"github.com/facilsec-lab/argus/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// ScoreUseCase runs scoring passes over assessments. The engine itself
// is pure; this layer resolves the template routing, loads the inputs,
// fans out over scenarios and persists the derived figures.
type ScoreUseCase struct {
	repo    interfaces.Repository
	catalog *config.ScoringConfig
}

func NewScoreUseCase(repo interfaces.Repository, catalog *config.ScoringConfig) *ScoreUseCase {
	return &ScoreUseCase{
		repo:    repo,
		catalog: catalog,
	}
}

// ScenarioScore is the scoring outcome for one risk scenario
type ScenarioScore struct {
	Scenario *model.RiskScenario

	Likelihood    int
	Vulnerability int
	Impact        int
	InherentScore int

	// RiskScore is the adapter's combined L x V x I score discounted by
	// the aggregate survey effectiveness
	RiskScore int

	Current  scoring.ControlledRisk
	Residual scoring.ControlledRisk

	// Fidelity is set only under the survey-fidelity paradigm
	Fidelity *scoring.FidelityResult

	Recommendations []string
}

// AssessmentScore is the outcome of a full scoring pass
type AssessmentScore struct {
	AssessmentID types.AssessmentID
	TemplateID   types.TemplateID
	Vertical     types.Vertical
	Paradigm     types.Paradigm

	// Effectiveness is the aggregate survey-derived control effectiveness
	// (0 to 0.95) applied by the adapters
	Effectiveness float64

	Scenarios []*ScenarioScore
}

// ScoreAssessment runs a full scoring pass: template routing, adapter
// selection, per-scenario scoring in parallel, and persistence of the
// derived figures. Scenarios are independent, so ordering of the pass
// does not affect the results.
func (uc *ScoreUseCase) ScoreAssessment(ctx context.Context, id types.AssessmentID) (*AssessmentScore, error) {
	assessment, err := uc.repo.Assessment().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get assessment for scoring")
	}

	tmpl := uc.catalog.Template(assessment.TemplateID)
	if tmpl == nil {
		return nil, goerr.New("template not found in scoring catalog",
			goerr.V("templateID", assessment.TemplateID))
	}

	adapter, err := vertical.For(tmpl.Vertical)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve vertical adapter")
	}

	stored, err := uc.repo.Response().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get survey responses")
	}
	responses := stored.Responses

	scenarios, err := uc.repo.Scenario().ListByAssessment(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list scenarios")
	}

	weighted := uc.weightedResponses(responses)
	effectiveness := scoring.Effectiveness(weighted)

	result := &AssessmentScore{
		AssessmentID:  id,
		TemplateID:    tmpl.ID,
		Vertical:      tmpl.Vertical,
		Paradigm:      tmpl.Paradigm,
		Effectiveness: effectiveness,
		Scenarios:     make([]*ScenarioScore, len(scenarios)),
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for i, scenario := range scenarios {
		eg.Go(func() error {
			score, err := uc.scoreScenario(egCtx, adapter, tmpl.Paradigm, responses, weighted, effectiveness, scenario)
			if err != nil {
				return goerr.Wrap(err, "failed to score scenario", goerr.V("scenarioID", scenario.ID))
			}
			result.Scenarios[i] = score
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("scored assessment",
		"assessment_id", id,
		"template_id", tmpl.ID,
		"paradigm", tmpl.Paradigm,
		"scenarios", len(scenarios),
		"effectiveness", effectiveness,
	)

	return result, nil
}

// ScoreScenario scores a single scenario under its assessment's template
// routing and persists the derived figures
func (uc *ScoreUseCase) ScoreScenario(ctx context.Context, scenarioID int64) (*ScenarioScore, error) {
	scenario, err := uc.repo.Scenario().Get(ctx, scenarioID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get scenario for scoring")
	}

	assessment, err := uc.repo.Assessment().Get(ctx, scenario.AssessmentID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get assessment for scenario")
	}

	tmpl := uc.catalog.Template(assessment.TemplateID)
	if tmpl == nil {
		return nil, goerr.New("template not found in scoring catalog",
			goerr.V("templateID", assessment.TemplateID))
	}

	adapter, err := vertical.For(tmpl.Vertical)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve vertical adapter")
	}

	stored, err := uc.repo.Response().Get(ctx, scenario.AssessmentID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get survey responses")
	}

	weighted := uc.weightedResponses(stored.Responses)
	effectiveness := scoring.Effectiveness(weighted)

	return uc.scoreScenario(ctx, adapter, tmpl.Paradigm, stored.Responses, weighted, effectiveness, scenario)
}

func (uc *ScoreUseCase) scoreScenario(ctx context.Context, adapter vertical.Adapter, paradigm types.Paradigm, responses model.ResponseSet, weighted []model.WeightedResponse, effectiveness float64, scenario *model.RiskScenario) (*ScenarioScore, error) {
	meta := uc.catalog.Threat(scenario.ThreatID)

	likelihood := scenario.InherentLikelihood
	if likelihood == 0 {
		likelihood = adapter.CalculateLikelihood(responses, scenario.ThreatID)
	}
	impact := scenario.InherentImpact
	if impact == 0 {
		impact = adapter.CalculateImpact(responses, scenario.ThreatID, meta)
	}
	vulnerability := scenario.Vulnerability
	if vulnerability == 0 {
		vulnerability = adapter.CalculateVulnerability(responses, scenario.ThreatID)
	}

	inherentScore := likelihood * impact
	riskScore := adapter.CalculateRisk(likelihood, vulnerability, impact, 0, effectiveness)

	score := &ScenarioScore{
		Scenario:      scenario,
		Likelihood:    likelihood,
		Vulnerability: vulnerability,
		Impact:        impact,
		InherentScore: inherentScore,
		RiskScore:     riskScore,
	}

	switch paradigm {
	case types.ParadigmSurveyFidelity:
		fidelity := scoring.SurveyFidelityScore(float64(inherentScore), weighted)
		score.Fidelity = &fidelity

		scenario.InherentLikelihood = likelihood
		scenario.InherentImpact = impact
		scenario.Vulnerability = vulnerability
		scenario.InherentScore = inherentScore
		scenario.CurrentLikelihood = float64(likelihood)
		scenario.CurrentImpact = float64(impact)
		scenario.CurrentLevel = scoring.ClassifyRiskLevel(inherentScore)
		scenario.ResidualLikelihood = float64(likelihood) * (1 - fidelity.Effectiveness)
		scenario.ResidualImpact = float64(impact)
		scenario.ResidualLevel = scoring.ClassifyRiskLevel(
			scoring.ClampTier(scenario.ResidualLikelihood) * scoring.ClampTier(scenario.ResidualImpact))

	default:
		controls, err := uc.repo.Control().ListByScenario(ctx, scenario.ID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list controls for scoring")
		}

		current := scoring.CurrentRisk(likelihood, impact, controls)
		residual := scoring.ResidualRisk(current.LikelihoodExact, current.ImpactExact, controls)
		score.Current = current
		score.Residual = residual

		scenario.InherentLikelihood = likelihood
		scenario.InherentImpact = impact
		scenario.Vulnerability = vulnerability
		scenario.InherentScore = inherentScore
		scenario.CurrentLikelihood = current.LikelihoodExact
		scenario.CurrentImpact = current.ImpactExact
		scenario.CurrentLevel = current.Level
		scenario.ResidualLikelihood = residual.LikelihoodExact
		scenario.ResidualImpact = residual.ImpactExact
		scenario.ResidualLevel = residual.Level
	}

	score.Recommendations = adapter.GenerateRecommendations(responses, scenario.ThreatID, riskScore)

	updated, err := uc.repo.Scenario().Update(ctx, scenario)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to persist scored scenario")
	}
	score.Scenario = updated

	return score, nil
}

// weightedResponses joins the control weight catalog with the stored
// answers. Every cataloged question contributes; an unanswered question
// reads as "no" and earns no credit.
func (uc *ScoreUseCase) weightedResponses(responses model.ResponseSet) []model.WeightedResponse {
	weighted := make([]model.WeightedResponse, 0, len(uc.catalog.ControlWeights))
	for _, cw := range uc.catalog.ControlWeights {
		weighted = append(weighted, model.WeightedResponse{
			QuestionID: cw.QuestionID,
			Answer:     responses.Answer(cw.QuestionID),
			Weight:     cw.Weight,
		})
	}
	return weighted
}
