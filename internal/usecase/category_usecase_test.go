package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
	"github.com/iho/fintrack/internal/usecase/mocks"
)

func newCategoryUseCase() (*usecase.CategoryUseCase, *mocks.MockCategoryRepository, *mocks.MockOperationRepository) {
	categories := mocks.NewMockCategoryRepository()
	operations := mocks.NewMockOperationRepository()
	factory := domain.NewFactory(mocks.NewMockIDGenerator())
	return usecase.NewCategoryUseCase(categories, operations, factory), categories, operations
}

func TestCategoryUseCase_Create(t *testing.T) {
	uc, _, _ := newCategoryUseCase()
	ctx := context.Background()

	if _, err := uc.Create(ctx, domain.CategoryIncome, "Salary"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// same type, case-insensitively equal name
	if _, err := uc.Create(ctx, domain.CategoryIncome, "salary"); !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}

	// same name under the other type is a different category
	if _, err := uc.Create(ctx, domain.CategoryExpense, "Salary"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCategoryUseCase_Rename(t *testing.T) {
	uc, categories, _ := newCategoryUseCase()
	ctx := context.Background()

	salary, err := uc.Create(ctx, domain.CategoryIncome, "Salary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Create(ctx, domain.CategoryIncome, "Bonus"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// identifier stays stable across rename
	if err := uc.Rename(ctx, salary.ID, "Wages"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, err := categories.Get(ctx, salary.ID)
	if err != nil {
		t.Fatalf("identifier changed across rename: %v", err)
	}
	if stored.Name != "Wages" || stored.Type != domain.CategoryIncome {
		t.Errorf("unexpected category after rename: %+v", stored)
	}

	// renaming onto another category of the same type conflicts
	if err := uc.Rename(ctx, salary.ID, "bonus"); !errors.Is(err, domain.ErrCategoryExists) {
		t.Errorf("expected ErrCategoryExists, got %v", err)
	}

	// renaming to the same name (case change only) is allowed
	if err := uc.Rename(ctx, salary.ID, "WAGES"); err != nil {
		t.Errorf("rename excluding self should not conflict: %v", err)
	}

	if err := uc.Rename(ctx, "missing", "X"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryUseCase_Delete(t *testing.T) {
	uc, _, operations := newCategoryUseCase()
	ctx := context.Background()

	category, err := uc.Create(ctx, domain.CategoryExpense, "Groceries")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	operations.Add(ctx, &domain.Operation{
		ID: "op-1", Type: domain.OperationExpense,
		AccountID: "acc-1", CategoryID: category.ID,
		Amount: decimal.NewFromInt(10),
	})
	if err := uc.Delete(ctx, category.ID); !errors.Is(err, domain.ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse, got %v", err)
	}

	operations.Remove(ctx, "op-1")
	if err := uc.Delete(ctx, category.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCategoryUseCase_List_FiltersByType(t *testing.T) {
	uc, _, _ := newCategoryUseCase()
	ctx := context.Background()

	uc.Create(ctx, domain.CategoryIncome, "Salary")
	uc.Create(ctx, domain.CategoryExpense, "Groceries")
	uc.Create(ctx, domain.CategoryExpense, "Transport")

	expense := domain.CategoryExpense
	filtered, err := uc.List(ctx, &expense)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 expense categories, got %d", len(filtered))
	}
	for _, c := range filtered {
		if c.Type != domain.CategoryExpense {
			t.Errorf("unexpected type in filtered list: %s", c.Type)
		}
	}
}
