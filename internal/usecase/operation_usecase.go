package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// OperationUseCase is the sole entry point for ledger mutations. Creating
// or deleting an operation also applies its signed amount to the owning
// account balance.
//
// Create and Delete are multi-step and not atomic: a failure between the
// ledger write and the balance write leaves drift that the reconciliation
// use case repairs.
type OperationUseCase struct {
	accounts   AccountRepository
	categories CategoryRepository
	operations OperationRepository
	factory    *domain.Factory
}

// NewOperationUseCase creates a new OperationUseCase.
func NewOperationUseCase(
	accounts AccountRepository,
	categories CategoryRepository,
	operations OperationRepository,
	factory *domain.Factory,
) *OperationUseCase {
	return &OperationUseCase{
		accounts:   accounts,
		categories: categories,
		operations: operations,
		factory:    factory,
	}
}

// CreateOperationInput represents input for creating an operation.
type CreateOperationInput struct {
	Type        domain.OperationType
	AccountID   string
	CategoryID  string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// Create validates the references and the type match, persists the
// operation and applies its signed amount to the account balance.
func (uc *OperationUseCase) Create(ctx context.Context, input CreateOperationInput) (*domain.Operation, error) {
	account, err := uc.accounts.Get(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	category, err := uc.categories.Get(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if !input.Type.Matches(category.Type) {
		return nil, fmt.Errorf("%w: %s operation against %s category %q",
			domain.ErrTypeMismatch, input.Type, category.Type, category.Name)
	}

	operation, err := uc.factory.NewOperation(
		input.Type, input.AccountID, input.CategoryID,
		input.Amount, input.Date, input.Description,
	)
	if err != nil {
		return nil, err
	}
	if err := uc.operations.Add(ctx, operation); err != nil {
		return nil, err
	}

	account.Apply(operation.SignedAmount())
	if err := uc.accounts.Update(ctx, account); err != nil {
		return nil, err
	}
	return operation, nil
}

// Get retrieves an operation by ID.
func (uc *OperationUseCase) Get(ctx context.Context, id string) (*domain.Operation, error) {
	return uc.operations.Get(ctx, id)
}

// Delete reverses the operation's balance effect, then removes the record.
func (uc *OperationUseCase) Delete(ctx context.Context, id string) error {
	operation, err := uc.operations.Get(ctx, id)
	if err != nil {
		return err
	}
	account, err := uc.accounts.Get(ctx, operation.AccountID)
	if err != nil {
		return err
	}

	account.Apply(operation.SignedAmount().Neg())
	if err := uc.accounts.Update(ctx, account); err != nil {
		return err
	}
	return uc.operations.Remove(ctx, id)
}

// ForAccount returns the account's operations, optionally limited to an
// inclusive calendar-date range. Nil bounds are unbounded.
func (uc *OperationUseCase) ForAccount(ctx context.Context, accountID string, from, to *time.Time) ([]*domain.Operation, error) {
	if _, err := uc.accounts.Get(ctx, accountID); err != nil {
		return nil, err
	}
	return uc.operations.ListByAccount(ctx, accountID, from, to)
}

// List returns all operations.
func (uc *OperationUseCase) List(ctx context.Context) ([]*domain.Operation, error) {
	return uc.operations.List(ctx)
}
