package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/facilsec-lab/argus/pkg/domain/interfaces"
	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
)

func runScenarioRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns auto-increment IDs", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		s1, err := repo.Scenario().Create(ctx, &model.RiskScenario{
			AssessmentID:       "store-118-q3",
			ThreatID:           "shoplifting",
			AssetName:          "Sales floor inventory",
			InherentLikelihood: 4,
			InherentImpact:     3,
		})
		if err != nil {
			t.Fatalf("failed to create scenario: %v", err)
		}
		if s1.ID != 1 {
			t.Errorf("expected ID=1, got %d", s1.ID)
		}
		if s1.CreatedAt.IsZero() {
			t.Error("expected non-zero CreatedAt")
		}

		s2, err := repo.Scenario().Create(ctx, &model.RiskScenario{
			AssessmentID:       "store-118-q3",
			ThreatID:           "burglary",
			InherentLikelihood: 2,
			InherentImpact:     4,
		})
		if err != nil {
			t.Fatalf("failed to create scenario: %v", err)
		}
		if s2.ID != 2 {
			t.Errorf("expected ID=2, got %d", s2.ID)
		}
	})

	t.Run("Get round-trips scoring figures", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Scenario().Create(ctx, &model.RiskScenario{
			AssessmentID:       "store-118-q3",
			ThreatID:           "robbery",
			AssetName:          "Cash office",
			InherentLikelihood: 3,
			InherentImpact:     5,
			Vulnerability:      4,
			InherentScore:      15,
			CurrentLikelihood:  2.43,
			CurrentImpact:      5,
			CurrentLevel:       types.RiskLevelMedium,
			ResidualLikelihood: 1.96,
			ResidualImpact:     4.05,
			ResidualLevel:      types.RiskLevelMedium,
		})
		if err != nil {
			t.Fatalf("failed to create scenario: %v", err)
		}

		retrieved, err := repo.Scenario().Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get scenario: %v", err)
		}

		if retrieved.ThreatID != "robbery" {
			t.Errorf("expected threat 'robbery', got %s", retrieved.ThreatID)
		}
		if retrieved.Vulnerability != 4 {
			t.Errorf("expected vulnerability 4, got %d", retrieved.Vulnerability)
		}
		if retrieved.CurrentLikelihood != 2.43 {
			t.Errorf("expected current likelihood 2.43, got %v", retrieved.CurrentLikelihood)
		}
		if retrieved.ResidualLevel != types.RiskLevelMedium {
			t.Errorf("expected residual level Medium, got %s", retrieved.ResidualLevel)
		}
	})

	t.Run("Get returns ErrNotFound for missing scenario", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Scenario().Get(ctx, 99999)
		if err == nil {
			t.Error("expected error for non-existent scenario")
		}
		if !isNotFoundErr(err) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListByAssessment filters and orders by ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, spec := range []struct {
			assessmentID types.AssessmentID
			threatID     types.ThreatID
		}{
			{"site-a", "shoplifting"},
			{"site-b", "cargo-theft"},
			{"site-a", "burglary"},
		} {
			if _, err := repo.Scenario().Create(ctx, &model.RiskScenario{
				AssessmentID:       spec.assessmentID,
				ThreatID:           spec.threatID,
				InherentLikelihood: 2,
				InherentImpact:     2,
			}); err != nil {
				t.Fatalf("failed to create scenario: %v", err)
			}
		}

		scenarios, err := repo.Scenario().ListByAssessment(ctx, "site-a")
		if err != nil {
			t.Fatalf("failed to list scenarios: %v", err)
		}
		if len(scenarios) != 2 {
			t.Fatalf("expected 2 scenarios, got %d", len(scenarios))
		}
		if scenarios[0].ID >= scenarios[1].ID {
			t.Errorf("expected ascending ID order, got %d then %d", scenarios[0].ID, scenarios[1].ID)
		}
		for _, s := range scenarios {
			if s.AssessmentID != "site-a" {
				t.Errorf("unexpected assessment ID %s in list", s.AssessmentID)
			}
		}
	})

	t.Run("Update preserves CreatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Scenario().Create(ctx, &model.RiskScenario{
			AssessmentID:       "site-a",
			ThreatID:           "shoplifting",
			InherentLikelihood: 4,
			InherentImpact:     2,
		})
		if err != nil {
			t.Fatalf("failed to create scenario: %v", err)
		}

		time.Sleep(10 * time.Millisecond)

		modified := *created
		modified.CurrentLikelihood = 3.24
		modified.CurrentLevel = types.RiskLevelLow

		updated, err := repo.Scenario().Update(ctx, &modified)
		if err != nil {
			t.Fatalf("failed to update scenario: %v", err)
		}

		if updated.CurrentLikelihood != 3.24 {
			t.Errorf("expected current likelihood 3.24, got %v", updated.CurrentLikelihood)
		}
		if !updated.CreatedAt.Equal(created.CreatedAt) {
			t.Errorf("CreatedAt should not change, got %v", updated.CreatedAt)
		}
		if !updated.UpdatedAt.After(created.UpdatedAt) {
			t.Errorf("UpdatedAt should be after original, got %v", updated.UpdatedAt)
		}
	})

	t.Run("Delete removes scenario", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Scenario().Create(ctx, &model.RiskScenario{
			AssessmentID:       "site-a",
			ThreatID:           "trespass",
			InherentLikelihood: 2,
			InherentImpact:     1,
		})
		if err != nil {
			t.Fatalf("failed to create scenario: %v", err)
		}

		if err := repo.Scenario().Delete(ctx, created.ID); err != nil {
			t.Fatalf("failed to delete scenario: %v", err)
		}

		_, err = repo.Scenario().Get(ctx, created.ID)
		if !isNotFoundErr(err) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
	})
}

func TestMemoryScenarioRepository(t *testing.T) {
	runScenarioRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreScenarioRepository(t *testing.T) {
	runScenarioRepositoryTest(t, newFirestoreRepository)
}
