package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

func TestParseOperationType(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.OperationType
		wantErr bool
	}{
		{input: "Income", want: domain.OperationIncome},
		{input: "income", want: domain.OperationIncome},
		{input: "EXPENSE", want: domain.OperationExpense},
		{input: "Transfer", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseOperationType(tt.input)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidType) {
					t.Fatalf("expected ErrInvalidType, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestOperationType_Matches(t *testing.T) {
	if !domain.OperationIncome.Matches(domain.CategoryIncome) {
		t.Error("income operation should match income category")
	}
	if domain.OperationIncome.Matches(domain.CategoryExpense) {
		t.Error("income operation must not match expense category")
	}
	if !domain.OperationExpense.Matches(domain.CategoryExpense) {
		t.Error("expense operation should match expense category")
	}
}

func TestOperation_SignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(250)

	income := &domain.Operation{Type: domain.OperationIncome, Amount: amount}
	if !income.SignedAmount().Equal(amount) {
		t.Errorf("income signed amount: got %s", income.SignedAmount())
	}

	expense := &domain.Operation{Type: domain.OperationExpense, Amount: amount}
	if !expense.SignedAmount().Equal(amount.Neg()) {
		t.Errorf("expense signed amount: got %s", expense.SignedAmount())
	}
}

func TestOperation_InRange(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC) }
	op := &domain.Operation{Date: day(15)}

	from, to := day(10), day(20)
	if !op.InRange(&from, &to) {
		t.Error("operation inside range")
	}

	// bounds are inclusive
	from, to = day(15), day(15)
	if !op.InRange(&from, &to) {
		t.Error("bounds should be inclusive")
	}

	from = day(16)
	if op.InRange(&from, nil) {
		t.Error("operation before lower bound")
	}

	to = day(14)
	if op.InRange(nil, &to) {
		t.Error("operation after upper bound")
	}

	if !op.InRange(nil, nil) {
		t.Error("nil bounds are unbounded")
	}

	// time of day is not significant
	noon := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)
	from, to = noon, noon
	if !op.InRange(&from, &to) {
		t.Error("range bounds should compare by calendar date only")
	}
}
