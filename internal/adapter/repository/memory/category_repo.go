package memory

import (
	"context"
	"sync"

	"github.com/iho/fintrack/internal/domain"
)

// CategoryRepository is an in-memory implementation of
// usecase.CategoryRepository.
type CategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]*domain.Category
	order      []string
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		categories: make(map[string]*domain.Category),
	}
}

// Add stores a new category.
func (r *CategoryRepository) Add(ctx context.Context, category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[category.ID]; ok {
		return domain.ErrDuplicateID
	}
	r.categories[category.ID] = category
	r.order = append(r.order, category.ID)
	return nil
}

// Get retrieves a category by ID.
func (r *CategoryRepository) Get(ctx context.Context, id string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	category, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

// Update replaces a stored category.
func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[category.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	r.categories[category.ID] = category
	return nil
}

// Remove deletes a category by ID.
func (r *CategoryRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	r.order = removeID(r.order, id)
	return nil
}

// List returns all categories in insertion order.
func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	categories := make([]*domain.Category, 0, len(r.order))
	for _, id := range r.order {
		categories = append(categories, r.categories[id])
	}
	return categories, nil
}
