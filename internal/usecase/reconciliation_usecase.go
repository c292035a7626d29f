package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// ReconciliationUseCase recomputes account balances strictly from the
// operation ledger and corrects drift, including leftovers of a
// multi-step mutation that failed partway.
type ReconciliationUseCase struct {
	accounts   AccountRepository
	operations OperationRepository
}

// NewReconciliationUseCase creates a new ReconciliationUseCase.
func NewReconciliationUseCase(accounts AccountRepository, operations OperationRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		accounts:   accounts,
		operations: operations,
	}
}

// ExpectedBalance derives the account balance from the ledger alone: the
// sum of income amounts minus the sum of expense amounts. The stored
// balance is ignored entirely.
func (uc *ReconciliationUseCase) ExpectedBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	if _, err := uc.accounts.Get(ctx, accountID); err != nil {
		return decimal.Zero, err
	}
	operations, err := uc.operations.ListByAccount(ctx, accountID, nil, nil)
	if err != nil {
		return decimal.Zero, err
	}

	expected := decimal.Zero
	for _, op := range operations {
		expected = expected.Add(op.SignedAmount())
	}
	return expected, nil
}

// Verify returns expected minus stored balance; zero means consistent.
func (uc *ReconciliationUseCase) Verify(ctx context.Context, accountID string) (decimal.Decimal, error) {
	account, err := uc.accounts.Get(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	expected, err := uc.ExpectedBalance(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return expected.Sub(account.Balance), nil
}

// Recalculate forces the stored balance to equal the expected one. The
// stored value is subtracted and the expected value added, so the final
// write is exact rather than an incremental correction.
func (uc *ReconciliationUseCase) Recalculate(ctx context.Context, accountID string) error {
	account, err := uc.accounts.Get(ctx, accountID)
	if err != nil {
		return err
	}
	expected, err := uc.ExpectedBalance(ctx, accountID)
	if err != nil {
		return err
	}

	account.Apply(account.Balance.Neg())
	account.Apply(expected)
	return uc.accounts.Update(ctx, account)
}

// RecalculateAll recalculates every account whose stored balance differs
// from its expected one and returns how many were corrected. Consistent
// accounts are skipped; Recalculate is idempotent, so the skip is an
// optimization only.
func (uc *ReconciliationUseCase) RecalculateAll(ctx context.Context) (int, error) {
	accounts, err := uc.accounts.List(ctx)
	if err != nil {
		return 0, err
	}

	corrected := 0
	for _, account := range accounts {
		expected, err := uc.ExpectedBalance(ctx, account.ID)
		if err != nil {
			return corrected, err
		}
		if account.Balance.Equal(expected) {
			continue
		}
		if err := uc.Recalculate(ctx, account.ID); err != nil {
			return corrected, err
		}
		corrected++
	}
	return corrected, nil
}
