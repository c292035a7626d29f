package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// AccountUseCase is the sole entry point for account mutations.
type AccountUseCase struct {
	accounts   AccountRepository
	operations OperationRepository
	factory    *domain.Factory
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accounts AccountRepository, operations OperationRepository, factory *domain.Factory) *AccountUseCase {
	return &AccountUseCase{
		accounts:   accounts,
		operations: operations,
		factory:    factory,
	}
}

// Create validates and persists a new account.
func (uc *AccountUseCase) Create(ctx context.Context, name string, opening decimal.Decimal) (*domain.Account, error) {
	account, err := uc.factory.NewAccount(name, opening)
	if err != nil {
		return nil, err
	}
	if err := uc.accounts.Add(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Get retrieves an account by ID.
func (uc *AccountUseCase) Get(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accounts.Get(ctx, id)
}

// Rename changes the account name in place.
func (uc *AccountUseCase) Rename(ctx context.Context, id, newName string) error {
	account, err := uc.accounts.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := account.Rename(newName); err != nil {
		return err
	}
	return uc.accounts.Update(ctx, account)
}

// Delete removes an account. It fails while any operation still references
// the account; the guard lives here and nowhere else.
func (uc *AccountUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.accounts.Get(ctx, id); err != nil {
		return err
	}
	refs, err := uc.operations.CountByAccount(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("%w: %d operations", domain.ErrAccountInUse, refs)
	}
	return uc.accounts.Remove(ctx, id)
}

// List returns a snapshot of all accounts in insertion order.
func (uc *AccountUseCase) List(ctx context.Context) ([]*domain.Account, error) {
	return uc.accounts.List(ctx)
}
