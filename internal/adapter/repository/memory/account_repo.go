// Package memory provides map-backed keyed stores for the single-process
// run. Stores hold no business rules; invariants live in the use cases.
// List order is insertion order. The mutexes keep the stores safe should a
// future caller add concurrency; the current calling model is one logical
// operation in flight at a time.
package memory

import (
	"context"
	"sync"

	"github.com/iho/fintrack/internal/domain"
)

// AccountRepository is an in-memory implementation of
// usecase.AccountRepository.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	order    []string
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

// Add stores a new account.
func (r *AccountRepository) Add(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[account.ID]; ok {
		return domain.ErrDuplicateID
	}
	r.accounts[account.ID] = account
	r.order = append(r.order, account.ID)
	return nil
}

// Get retrieves an account by ID.
func (r *AccountRepository) Get(ctx context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

// Update replaces a stored account.
func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[account.ID]; !ok {
		return domain.ErrAccountNotFound
	}
	r.accounts[account.ID] = account
	return nil
}

// Remove deletes an account by ID.
func (r *AccountRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.accounts, id)
	r.order = removeID(r.order, id)
	return nil
}

// List returns all accounts in insertion order.
func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	accounts := make([]*domain.Account, 0, len(r.order))
	for _, id := range r.order {
		accounts = append(accounts, r.accounts[id])
	}
	return accounts, nil
}

func removeID(order []string, id string) []string {
	for i, oid := range order {
		if oid == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
