package repository_test

import (
	"context"
	"testing"

	"github.com/facilsec-lab/argus/pkg/domain/interfaces"
	"github.com/facilsec-lab/argus/pkg/domain/model"
	"github.com/facilsec-lab/argus/pkg/domain/types"
)

func runResponseRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Put stores and returns response set", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		stored, err := repo.Response().Put(ctx, "store-118-q3", model.ResponseSet{
			"has-eas-system":  types.AnswerYes,
			"has-pos-cctv":    types.AnswerPartial,
			"has-cash-office": types.AnswerNo,
		})
		if err != nil {
			t.Fatalf("failed to put responses: %v", err)
		}

		if stored.AssessmentID != "store-118-q3" {
			t.Errorf("expected assessment ID 'store-118-q3', got %s", stored.AssessmentID)
		}
		if len(stored.Responses) != 3 {
			t.Errorf("expected 3 answers, got %d", len(stored.Responses))
		}
		if stored.UpdatedAt.IsZero() {
			t.Error("expected non-zero UpdatedAt")
		}
	})

	t.Run("Get retrieves stored answers", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		if _, err := repo.Response().Put(ctx, "site-a", model.ResponseSet{
			"has-perimeter-fencing": types.AnswerCompliant,
			"has-guard-patrol":      types.AnswerNonCompliant,
		}); err != nil {
			t.Fatalf("failed to put responses: %v", err)
		}

		retrieved, err := repo.Response().Get(ctx, "site-a")
		if err != nil {
			t.Fatalf("failed to get responses: %v", err)
		}

		if retrieved.Responses.Answer("has-perimeter-fencing") != types.AnswerCompliant {
			t.Errorf("expected compliant, got %s", retrieved.Responses.Answer("has-perimeter-fencing"))
		}
		if retrieved.Responses.Answer("has-guard-patrol") != types.AnswerNonCompliant {
			t.Errorf("expected non-compliant, got %s", retrieved.Responses.Answer("has-guard-patrol"))
		}
	})

	t.Run("Get returns empty set when nothing stored", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		retrieved, err := repo.Response().Get(ctx, "never-surveyed")
		if err != nil {
			t.Fatalf("expected no error for missing responses, got %v", err)
		}
		if retrieved.AssessmentID != "never-surveyed" {
			t.Errorf("expected assessment ID 'never-surveyed', got %s", retrieved.AssessmentID)
		}
		if len(retrieved.Responses) != 0 {
			t.Errorf("expected empty response set, got %d answers", len(retrieved.Responses))
		}

		// Unanswered questions read as "no"
		if retrieved.Responses.Answer("has-eas-system") != types.AnswerNo {
			t.Errorf("expected default answer 'no', got %s", retrieved.Responses.Answer("has-eas-system"))
		}
	})

	t.Run("Put replaces the whole set", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		if _, err := repo.Response().Put(ctx, "site-a", model.ResponseSet{
			"has-eas-system": types.AnswerYes,
			"has-pos-cctv":   types.AnswerYes,
		}); err != nil {
			t.Fatalf("failed to put responses: %v", err)
		}

		if _, err := repo.Response().Put(ctx, "site-a", model.ResponseSet{
			"has-lp-staff": types.AnswerPartial,
		}); err != nil {
			t.Fatalf("failed to put responses: %v", err)
		}

		retrieved, err := repo.Response().Get(ctx, "site-a")
		if err != nil {
			t.Fatalf("failed to get responses: %v", err)
		}
		if len(retrieved.Responses) != 1 {
			t.Errorf("expected 1 answer after replacement, got %d", len(retrieved.Responses))
		}
		if retrieved.Responses.Answer("has-eas-system") != types.AnswerNo {
			t.Error("expected replaced question to read as default 'no'")
		}
	})

	t.Run("Delete clears stored answers", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		if _, err := repo.Response().Put(ctx, "site-a", model.ResponseSet{
			"has-eas-system": types.AnswerYes,
		}); err != nil {
			t.Fatalf("failed to put responses: %v", err)
		}

		if err := repo.Response().Delete(ctx, "site-a"); err != nil {
			t.Fatalf("failed to delete responses: %v", err)
		}

		retrieved, err := repo.Response().Get(ctx, "site-a")
		if err != nil {
			t.Fatalf("failed to get responses: %v", err)
		}
		if len(retrieved.Responses) != 0 {
			t.Errorf("expected empty response set after delete, got %d answers", len(retrieved.Responses))
		}
	})
}

func TestMemoryResponseRepository(t *testing.T) {
	runResponseRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreResponseRepository(t *testing.T) {
	runResponseRepositoryTest(t, newFirestoreRepository)
}
