package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
	"github.com/iho/fintrack/internal/usecase/mocks"
)

func seedReconciliation(t *testing.T) (*usecase.ReconciliationUseCase, *mocks.MockAccountRepository) {
	t.Helper()
	ctx := context.Background()

	accounts := mocks.NewMockAccountRepository()
	operations := mocks.NewMockOperationRepository()

	// stored balance drifted: the ledger says 700
	accounts.Add(ctx, &domain.Account{ID: "acc-1", Name: "Checking", Balance: decimal.NewFromInt(123)})
	accounts.Add(ctx, &domain.Account{ID: "acc-2", Name: "Savings", Balance: decimal.Zero})

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	operations.Add(ctx, &domain.Operation{
		ID: "op-1", Type: domain.OperationIncome, AccountID: "acc-1",
		CategoryID: "cat-1", Amount: decimal.NewFromInt(1000), Date: date,
	})
	operations.Add(ctx, &domain.Operation{
		ID: "op-2", Type: domain.OperationExpense, AccountID: "acc-1",
		CategoryID: "cat-2", Amount: decimal.NewFromInt(300), Date: date,
	})

	return usecase.NewReconciliationUseCase(accounts, operations), accounts
}

func TestReconciliationUseCase_ExpectedBalance(t *testing.T) {
	uc, _ := seedReconciliation(t)
	ctx := context.Background()

	expected, err := uc.ExpectedBalance(ctx, "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !expected.Equal(decimal.NewFromInt(700)) {
		t.Errorf("expected 700 from the ledger, got %s", expected)
	}

	if _, err := uc.ExpectedBalance(ctx, "missing"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestReconciliationUseCase_Verify(t *testing.T) {
	uc, _ := seedReconciliation(t)

	diff, err := uc.Verify(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// expected 700 minus stored 123
	if !diff.Equal(decimal.NewFromInt(577)) {
		t.Errorf("expected drift 577, got %s", diff)
	}
}

func TestReconciliationUseCase_Recalculate_Idempotent(t *testing.T) {
	uc, accounts := seedReconciliation(t)
	ctx := context.Background()

	if err := uc.Recalculate(ctx, "acc-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	account, _ := accounts.Get(ctx, "acc-1")
	first := account.Balance
	if !first.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("expected recalculated balance 700, got %s", first)
	}

	diff, err := uc.Verify(ctx, "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !diff.IsZero() {
		t.Errorf("verify after recalculate should be zero, got %s", diff)
	}

	// second run must land on the same value
	if err := uc.Recalculate(ctx, "acc-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	account, _ = accounts.Get(ctx, "acc-1")
	if !account.Balance.Equal(first) {
		t.Errorf("recalculate is not idempotent: %s then %s", first, account.Balance)
	}
}

func TestReconciliationUseCase_RecalculateAll(t *testing.T) {
	uc, accounts := seedReconciliation(t)
	ctx := context.Background()

	corrected, err := uc.RecalculateAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// acc-2 has no operations and a zero balance: already consistent
	if corrected != 1 {
		t.Errorf("expected 1 corrected account, got %d", corrected)
	}

	account, _ := accounts.Get(ctx, "acc-1")
	if !account.Balance.Equal(decimal.NewFromInt(700)) {
		t.Errorf("expected 700 after recalculate all, got %s", account.Balance)
	}

	corrected, err = uc.RecalculateAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if corrected != 0 {
		t.Errorf("second pass should correct nothing, got %d", corrected)
	}
}
