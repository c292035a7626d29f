package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
	"github.com/iho/fintrack/internal/usecase/mocks"
)

func seedAnalytics(t *testing.T) (*usecase.AnalyticsUseCase, *mocks.MockCategoryRepository) {
	t.Helper()
	ctx := context.Background()

	categories := mocks.NewMockCategoryRepository()
	operations := mocks.NewMockOperationRepository()

	categories.Add(ctx, &domain.Category{ID: "cat-salary", Type: domain.CategoryIncome, Name: "Salary"})
	categories.Add(ctx, &domain.Category{ID: "cat-food", Type: domain.CategoryExpense, Name: "Groceries"})

	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }
	ops := []*domain.Operation{
		{ID: "op-1", Type: domain.OperationIncome, AccountID: "acc", CategoryID: "cat-salary", Amount: decimal.NewFromInt(1000), Date: day(2)},
		{ID: "op-2", Type: domain.OperationExpense, AccountID: "acc", CategoryID: "cat-food", Amount: decimal.NewFromInt(300), Date: day(5)},
		{ID: "op-3", Type: domain.OperationExpense, AccountID: "acc", CategoryID: "cat-food", Amount: decimal.NewFromInt(200), Date: day(10)},
		// outside any May 1-15 window
		{ID: "op-4", Type: domain.OperationIncome, AccountID: "acc", CategoryID: "cat-salary", Amount: decimal.NewFromInt(9999), Date: day(25)},
		// references a category that no longer exists
		{ID: "op-5", Type: domain.OperationExpense, AccountID: "acc", CategoryID: "cat-gone", Amount: decimal.NewFromInt(50), Date: day(7)},
	}
	for _, op := range ops {
		operations.Add(ctx, op)
	}

	return usecase.NewAnalyticsUseCase(operations, categories), categories
}

func TestAnalyticsUseCase_Diff(t *testing.T) {
	uc, _ := seedAnalytics(t)

	summary, err := uc.Diff(context.Background(),
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !summary.Income.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected income 1000, got %s", summary.Income)
	}
	if !summary.Expense.Equal(decimal.NewFromInt(550)) {
		t.Errorf("expected expense 550, got %s", summary.Expense)
	}
	if !summary.Net.Equal(decimal.NewFromInt(450)) {
		t.Errorf("expected net 450, got %s", summary.Net)
	}
}

func TestAnalyticsUseCase_GroupByCategory(t *testing.T) {
	uc, _ := seedAnalytics(t)

	rows, err := uc.GroupByCategory(context.Background(),
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// sorted descending by sum: Salary 1000, Groceries 500, (unknown) 50
	if rows[0].Name != "Salary" || !rows[0].Sum.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("row 0: %+v", rows[0])
	}
	if rows[1].Name != "Groceries" || !rows[1].Sum.Equal(decimal.NewFromInt(500)) {
		t.Errorf("row 1: %+v", rows[1])
	}
	if rows[2].Name != usecase.UnknownCategoryLabel || !rows[2].Sum.Equal(decimal.NewFromInt(50)) {
		t.Errorf("dangling reference should report under %q: %+v", usecase.UnknownCategoryLabel, rows[2])
	}
}

func TestAnalyticsUseCase_GroupByCategory_TypeFilter(t *testing.T) {
	uc, _ := seedAnalytics(t)

	expense := domain.CategoryExpense
	rows, err := uc.GroupByCategory(context.Background(),
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		&expense,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, row := range rows {
		if row.Name == "Salary" {
			t.Errorf("income category leaked through expense filter")
		}
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 expense rows, got %d", len(rows))
	}
}
