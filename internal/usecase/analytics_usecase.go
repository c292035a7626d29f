package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// UnknownCategoryLabel is reported for operations whose category no longer
// exists, so reporting stays resilient to dangling references.
const UnknownCategoryLabel = "(unknown)"

// AnalyticsUseCase computes read-only reports over the operation ledger.
type AnalyticsUseCase struct {
	operations OperationRepository
	categories CategoryRepository
}

// NewAnalyticsUseCase creates a new AnalyticsUseCase.
func NewAnalyticsUseCase(operations OperationRepository, categories CategoryRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		operations: operations,
		categories: categories,
	}
}

// FlowSummary holds period totals.
type FlowSummary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// Diff returns total income, total expense and their difference over
// operations dated in the inclusive range.
func (uc *AnalyticsUseCase) Diff(ctx context.Context, from, to time.Time) (FlowSummary, error) {
	operations, err := uc.operations.List(ctx)
	if err != nil {
		return FlowSummary{}, err
	}

	income, expense := decimal.Zero, decimal.Zero
	for _, op := range operations {
		if !op.InRange(&from, &to) {
			continue
		}
		switch op.Type {
		case domain.OperationIncome:
			income = income.Add(op.Amount)
		case domain.OperationExpense:
			expense = expense.Add(op.Amount)
		}
	}
	return FlowSummary{Income: income, Expense: expense, Net: income.Sub(expense)}, nil
}

// CategorySum is one row of a per-category breakdown.
type CategorySum struct {
	CategoryID string
	Name       string
	Sum        decimal.Decimal
}

// GroupByCategory returns, per category referenced by at least one matching
// operation, the category name and the sum of its operations in the
// inclusive range, sorted descending by sum. An optional type narrows the
// report to income or expense operations.
func (uc *AnalyticsUseCase) GroupByCategory(ctx context.Context, from, to time.Time, t *domain.CategoryType) ([]CategorySum, error) {
	operations, err := uc.operations.List(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, op := range operations {
		if !op.InRange(&from, &to) {
			continue
		}
		if t != nil && !op.Type.Matches(*t) {
			continue
		}
		if _, seen := sums[op.CategoryID]; !seen {
			order = append(order, op.CategoryID)
		}
		sums[op.CategoryID] = sums[op.CategoryID].Add(op.Amount)
	}

	rows := make([]CategorySum, 0, len(order))
	for _, id := range order {
		name, ok := names[id]
		if !ok {
			name = UnknownCategoryLabel
		}
		rows = append(rows, CategorySum{CategoryID: id, Name: name, Sum: sums[id]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Sum.GreaterThan(rows[j].Sum)
	})
	return rows, nil
}
