package usecase

import (
	"context"

	"github.com/facilsec-lab/argus/pkg/domain/interfaces"
	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/model/config"
	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// AssessmentUseCase manages assessments, their scenarios and controls,
// and stored survey responses. Validation happens here, at the boundary;
// the scoring engine itself clamps rather than rejects.
type AssessmentUseCase struct {
	repo    interfaces.Repository
	catalog *config.ScoringConfig
}

func NewAssessmentUseCase(repo interfaces.Repository, catalog *config.ScoringConfig) *AssessmentUseCase {
	return &AssessmentUseCase{
		repo:    repo,
		catalog: catalog,
	}
}

func (uc *AssessmentUseCase) CreateAssessment(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error) {
	if assessment.Name == "" {
		return nil, goerr.New("assessment name is required")
	}
	if err := assessment.TemplateID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid template ID")
	}

	tmpl := uc.catalog.Template(assessment.TemplateID)
	if tmpl == nil {
		return nil, goerr.New("template not found in scoring catalog",
			goerr.V("templateID", assessment.TemplateID))
	}

	if err := uc.validateProfile(assessment, tmpl.Vertical); err != nil {
		return nil, err
	}

	created, err := uc.repo.Assessment().Create(ctx, assessment)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create assessment")
	}

	return created, nil
}

// validateProfile checks that the assessment carries exactly the profile
// its template's vertical expects
func (uc *AssessmentUseCase) validateProfile(assessment *model.Assessment, v types.Vertical) error {
	switch v {
	case types.VerticalRetail:
		if assessment.WarehouseProfile != nil {
			return goerr.New("warehouse profile given for retail template")
		}
		if assessment.RetailProfile != nil {
			if err := assessment.RetailProfile.Validate(); err != nil {
				return goerr.Wrap(err, "invalid retail profile")
			}
		}
	case types.VerticalWarehouse:
		if assessment.RetailProfile != nil {
			return goerr.New("retail profile given for warehouse template")
		}
		if assessment.WarehouseProfile != nil {
			if err := assessment.WarehouseProfile.Validate(); err != nil {
				return goerr.Wrap(err, "invalid warehouse profile")
			}
		}
	}
	return nil
}

func (uc *AssessmentUseCase) GetAssessment(ctx context.Context, id types.AssessmentID) (*model.Assessment, error) {
	assessment, err := uc.repo.Assessment().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get assessment")
	}

	return assessment, nil
}

func (uc *AssessmentUseCase) ListAssessments(ctx context.Context) ([]*model.Assessment, error) {
	assessments, err := uc.repo.Assessment().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list assessments")
	}

	return assessments, nil
}

func (uc *AssessmentUseCase) UpdateAssessment(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error) {
	if assessment.Name == "" {
		return nil, goerr.New("assessment name is required")
	}

	tmpl := uc.catalog.Template(assessment.TemplateID)
	if tmpl == nil {
		return nil, goerr.New("template not found in scoring catalog",
			goerr.V("templateID", assessment.TemplateID))
	}
	if err := uc.validateProfile(assessment, tmpl.Vertical); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Assessment().Update(ctx, assessment)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update assessment")
	}

	return updated, nil
}

// DeleteAssessment removes the assessment along with its scenarios,
// their controls, and any stored survey responses
func (uc *AssessmentUseCase) DeleteAssessment(ctx context.Context, id types.AssessmentID) error {
	scenarios, err := uc.repo.Scenario().ListByAssessment(ctx, id)
	if err != nil {
		return goerr.Wrap(err, "failed to list scenarios for deletion")
	}

	for _, scenario := range scenarios {
		if err := uc.DeleteScenario(ctx, scenario.ID); err != nil {
			return err
		}
	}

	if err := uc.repo.Response().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete survey responses")
	}

	if err := uc.repo.Assessment().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete assessment")
	}

	return nil
}

func (uc *AssessmentUseCase) AddScenario(ctx context.Context, scenario *model.RiskScenario) (*model.RiskScenario, error) {
	if err := scenario.ThreatID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid threat ID")
	}
	if uc.catalog.Threat(scenario.ThreatID) == nil {
		return nil, goerr.New("threat not found in scoring catalog",
			goerr.V("threatID", scenario.ThreatID))
	}
	if err := validateFactor("inherent likelihood", scenario.InherentLikelihood); err != nil {
		return nil, err
	}
	if err := validateFactor("inherent impact", scenario.InherentImpact); err != nil {
		return nil, err
	}
	if err := validateFactor("vulnerability", scenario.Vulnerability); err != nil {
		return nil, err
	}

	if _, err := uc.repo.Assessment().Get(ctx, scenario.AssessmentID); err != nil {
		return nil, goerr.Wrap(err, "assessment not found for scenario")
	}

	created, err := uc.repo.Scenario().Create(ctx, scenario)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create scenario")
	}

	return created, nil
}

func (uc *AssessmentUseCase) GetScenario(ctx context.Context, id int64) (*model.RiskScenario, error) {
	scenario, err := uc.repo.Scenario().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get scenario")
	}

	return scenario, nil
}

func (uc *AssessmentUseCase) ListScenarios(ctx context.Context, assessmentID types.AssessmentID) ([]*model.RiskScenario, error) {
	scenarios, err := uc.repo.Scenario().ListByAssessment(ctx, assessmentID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list scenarios")
	}

	return scenarios, nil
}

// DeleteScenario removes the scenario and its controls
func (uc *AssessmentUseCase) DeleteScenario(ctx context.Context, id int64) error {
	controls, err := uc.repo.Control().ListByScenario(ctx, id)
	if err != nil {
		return goerr.Wrap(err, "failed to list controls for deletion")
	}

	for _, control := range controls {
		if err := uc.repo.Control().Delete(ctx, control.ID); err != nil {
			return goerr.Wrap(err, "failed to delete control", goerr.V("controlID", control.ID))
		}
	}

	if err := uc.repo.Scenario().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete scenario")
	}

	return nil
}

func (uc *AssessmentUseCase) AddControl(ctx context.Context, control *model.Control) (*model.Control, error) {
	if control.Name == "" {
		return nil, goerr.New("control name is required")
	}
	if !control.Type.IsValid() {
		return nil, goerr.New("invalid control type", goerr.V("type", control.Type))
	}

	switch control.Type {
	case types.ControlTypeExisting:
		if err := validateRating("effectiveness", control.Effectiveness); err != nil {
			return nil, err
		}
		if control.PrimaryEffect != "" {
			return nil, goerr.New("existing controls must not declare a primary effect")
		}
	case types.ControlTypeProposed:
		if err := validateRating("treatment effectiveness", control.TreatmentEffectiveness); err != nil {
			return nil, err
		}
		if !control.PrimaryEffect.IsValid() {
			return nil, goerr.New("proposed controls must declare a primary effect",
				goerr.V("effect", control.PrimaryEffect))
		}
	}

	scenario, err := uc.repo.Scenario().Get(ctx, control.ScenarioID)
	if err != nil {
		return nil, goerr.Wrap(err, "scenario not found for control")
	}
	control.AssessmentID = scenario.AssessmentID

	created, err := uc.repo.Control().Create(ctx, control)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create control")
	}

	return created, nil
}

func (uc *AssessmentUseCase) ListControls(ctx context.Context, scenarioID int64) ([]*model.Control, error) {
	controls, err := uc.repo.Control().ListByScenario(ctx, scenarioID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list controls")
	}

	return controls, nil
}

func (uc *AssessmentUseCase) DeleteControl(ctx context.Context, id int64) error {
	if err := uc.repo.Control().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete control")
	}

	return nil
}

// PutResponses replaces the stored survey answer set of an assessment
func (uc *AssessmentUseCase) PutResponses(ctx context.Context, assessmentID types.AssessmentID, responses model.ResponseSet) (*model.SurveyResponses, error) {
	for questionID, answer := range responses {
		if err := questionID.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid question ID")
		}
		if !answer.IsValid() {
			return nil, goerr.New("invalid answer value",
				goerr.V("questionID", questionID), goerr.V("answer", answer))
		}
	}

	if _, err := uc.repo.Assessment().Get(ctx, assessmentID); err != nil {
		return nil, goerr.Wrap(err, "assessment not found for responses")
	}

	stored, err := uc.repo.Response().Put(ctx, assessmentID, responses)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to store survey responses")
	}

	return stored, nil
}

func (uc *AssessmentUseCase) GetResponses(ctx context.Context, assessmentID types.AssessmentID) (*model.SurveyResponses, error) {
	responses, err := uc.repo.Response().Get(ctx, assessmentID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get survey responses")
	}

	return responses, nil
}

// validateFactor accepts 0 as "unset": the scoring pass derives unset
// factors through the vertical adapter
func validateFactor(name string, v int) error {
	if v < 0 || v > 5 {
		return goerr.New(name+" must be 0 (unset) or 1-5", goerr.V("value", v))
	}
	return nil
}

func validateRating(name string, v int) error {
	if v < 0 || v > 5 {
		return goerr.New(name+" must be 0-5", goerr.V("value", v))
	}
	return nil
}
