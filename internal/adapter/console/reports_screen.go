package console

import (
	"context"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
)

// ReportsScreen renders period totals and per-category breakdowns.
type ReportsScreen struct {
	io        *Console
	analytics *usecase.AnalyticsUseCase
}

func NewReportsScreen(io *Console, analytics *usecase.AnalyticsUseCase) *ReportsScreen {
	return &ReportsScreen{io: io, analytics: analytics}
}

func (s *ReportsScreen) Title() string { return "Reports" }

func (s *ReportsScreen) Show(ctx context.Context) error {
	for {
		choice, err := s.io.Choose(s.Title(), []string{
			"Income vs expense for a period", "Breakdown by category", "Back",
		})
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			err = s.diff(ctx)
		case 1:
			err = s.breakdown(ctx)
		case 2:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *ReportsScreen) diff(ctx context.Context) error {
	from, err := s.io.PromptDate("From")
	if err != nil {
		return err
	}
	to, err := s.io.PromptDate("To")
	if err != nil {
		return err
	}

	summary, err := s.analytics.Diff(ctx, from, to)
	if err != nil {
		return err
	}
	s.io.Table([]string{"INCOME", "EXPENSE", "NET"}, [][]string{{
		summary.Income.String(), summary.Expense.String(), summary.Net.String(),
	}})
	return nil
}

func (s *ReportsScreen) breakdown(ctx context.Context) error {
	from, err := s.io.PromptDate("From")
	if err != nil {
		return err
	}
	to, err := s.io.PromptDate("To")
	if err != nil {
		return err
	}

	var t *domain.CategoryType
	choice, err := s.io.Choose("Filter by type", []string{"All", "Income only", "Expense only"})
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		income := domain.CategoryIncome
		t = &income
	case 2:
		expense := domain.CategoryExpense
		t = &expense
	}

	rows, err := s.analytics.GroupByCategory(ctx, from, to, t)
	if err != nil {
		return err
	}
	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		table = append(table, []string{row.Name, row.Sum.String()})
	}
	s.io.Table([]string{"CATEGORY", "SUM"}, table)
	return nil
}
