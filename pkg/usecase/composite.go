package usecase

import (
	"context"

	"github.com/facilsec-lab/argus/pkg/domain/types"
	"github.com/facilsec-lab/argus/pkg/scoring/vertical"
	"github.com/m-mizutani/goerr/v2"
)

// CompositeScore computes the facility-level 0-100 rollup for an
// assessment from its vertical profile. It requires the profile matching
// the template's vertical to be present.
func (uc *ScoreUseCase) CompositeScore(ctx context.Context, id types.AssessmentID) (*vertical.CompositeResult, error) {
	assessment, err := uc.repo.Assessment().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get assessment for composite scoring")
	}

	tmpl := uc.catalog.Template(assessment.TemplateID)
	if tmpl == nil {
		return nil, goerr.New("template not found in scoring catalog",
			goerr.V("templateID", assessment.TemplateID))
	}

	switch tmpl.Vertical {
	case types.VerticalRetail:
		if assessment.RetailProfile == nil {
			return nil, goerr.New("retail profile is required for composite scoring",
				goerr.V("assessmentID", id))
		}
		result := vertical.ShrinkageScore(assessment.RetailProfile)
		return &result, nil

	case types.VerticalWarehouse:
		if assessment.WarehouseProfile == nil {
			return nil, goerr.New("warehouse profile is required for composite scoring",
				goerr.V("assessmentID", id))
		}
		result := vertical.CargoLossScore(assessment.WarehouseProfile)
		return &result, nil

	default:
		return nil, goerr.New("no composite scorer for vertical",
			goerr.V("vertical", tmpl.Vertical))
	}
}
