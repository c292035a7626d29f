package usecase

import (
	"context"
	"time"

	"github.com/iho/fintrack/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Add(ctx context.Context, account *domain.Account) error
	Get(ctx context.Context, id string) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Account, error)
}

// CategoryRepository defines data access for categories.
type CategoryRepository interface {
	Add(ctx context.Context, category *domain.Category) error
	Get(ctx context.Context, id string) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Category, error)
}

// OperationRepository defines data access for operations.
type OperationRepository interface {
	Add(ctx context.Context, operation *domain.Operation) error
	Get(ctx context.Context, id string) (*domain.Operation, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Operation, error)
	// ListByAccount returns the account's operations, optionally limited to
	// an inclusive calendar-date range. Nil bounds are unbounded.
	ListByAccount(ctx context.Context, accountID string, from, to *time.Time) ([]*domain.Operation, error)
	CountByAccount(ctx context.Context, accountID string) (int, error)
	CountByCategory(ctx context.Context, categoryID string) (int, error)
}
