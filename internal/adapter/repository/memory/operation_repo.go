package memory

import (
	"context"
	"sync"
	"time"

	"github.com/iho/fintrack/internal/domain"
)

// OperationRepository is an in-memory implementation of
// usecase.OperationRepository.
type OperationRepository struct {
	mu         sync.RWMutex
	operations map[string]*domain.Operation
	order      []string
}

// NewOperationRepository creates a new OperationRepository.
func NewOperationRepository() *OperationRepository {
	return &OperationRepository{
		operations: make(map[string]*domain.Operation),
	}
}

// Add stores a new operation.
func (r *OperationRepository) Add(ctx context.Context, operation *domain.Operation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.operations[operation.ID]; ok {
		return domain.ErrDuplicateID
	}
	r.operations[operation.ID] = operation
	r.order = append(r.order, operation.ID)
	return nil
}

// Get retrieves an operation by ID.
func (r *OperationRepository) Get(ctx context.Context, id string) (*domain.Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	operation, ok := r.operations[id]
	if !ok {
		return nil, domain.ErrOperationNotFound
	}
	return operation, nil
}

// Remove deletes an operation by ID.
func (r *OperationRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.operations[id]; !ok {
		return domain.ErrOperationNotFound
	}
	delete(r.operations, id)
	r.order = removeID(r.order, id)
	return nil
}

// List returns all operations in insertion order.
func (r *OperationRepository) List(ctx context.Context) ([]*domain.Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	operations := make([]*domain.Operation, 0, len(r.order))
	for _, id := range r.order {
		operations = append(operations, r.operations[id])
	}
	return operations, nil
}

// ListByAccount returns the account's operations, optionally limited to an
// inclusive calendar-date range. Nil bounds are unbounded.
func (r *OperationRepository) ListByAccount(ctx context.Context, accountID string, from, to *time.Time) ([]*domain.Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var operations []*domain.Operation
	for _, id := range r.order {
		op := r.operations[id]
		if op.AccountID == accountID && op.InRange(from, to) {
			operations = append(operations, op)
		}
	}
	return operations, nil
}

// CountByAccount returns how many operations reference the account.
func (r *OperationRepository) CountByAccount(ctx context.Context, accountID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, op := range r.operations {
		if op.AccountID == accountID {
			count++
		}
	}
	return count, nil
}

// CountByCategory returns how many operations reference the category.
func (r *OperationRepository) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, op := range r.operations {
		if op.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}
