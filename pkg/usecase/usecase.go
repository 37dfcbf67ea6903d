package usecase

import (
	"github.com/facilsec-lab/argus/pkg/domain/interfaces"
	"github.com/facilsec-lab/argus/pkg/domain/model/config"
)

type UseCases struct {
	repo    interfaces.Repository
	catalog *config.ScoringConfig

	Assessment *AssessmentUseCase
	Score      *ScoreUseCase
}

type Option func(*UseCases)

// WithCatalog sets the scoring catalog used for template routing,
// control weights and threat reference data
func WithCatalog(catalog *config.ScoringConfig) Option {
	return func(uc *UseCases) {
		uc.catalog = catalog
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.catalog == nil {
		uc.catalog = &config.ScoringConfig{}
	}

	uc.Assessment = NewAssessmentUseCase(repo, uc.catalog)
	uc.Score = NewScoreUseCase(repo, uc.catalog)

	return uc
}
