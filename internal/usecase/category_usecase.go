package usecase

import (
	"context"
	"fmt"

	"github.com/iho/fintrack/internal/domain"
)

// CategoryUseCase is the sole entry point for category mutations. It owns
// the (type, case-insensitive name) uniqueness invariant.
type CategoryUseCase struct {
	categories CategoryRepository
	operations OperationRepository
	factory    *domain.Factory
}

// NewCategoryUseCase creates a new CategoryUseCase.
func NewCategoryUseCase(categories CategoryRepository, operations OperationRepository, factory *domain.Factory) *CategoryUseCase {
	return &CategoryUseCase{
		categories: categories,
		operations: operations,
		factory:    factory,
	}
}

// Create validates and persists a new category. Fails when another live
// category of the same type already carries the name.
func (uc *CategoryUseCase) Create(ctx context.Context, t domain.CategoryType, name string) (*domain.Category, error) {
	if err := uc.checkUnique(ctx, t, name, ""); err != nil {
		return nil, err
	}
	category, err := uc.factory.NewCategory(t, name)
	if err != nil {
		return nil, err
	}
	if err := uc.categories.Add(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Get retrieves a category by ID.
func (uc *CategoryUseCase) Get(ctx context.Context, id string) (*domain.Category, error) {
	return uc.categories.Get(ctx, id)
}

// Rename changes the category name in place. The identifier stays stable,
// so operations referencing the category keep resolving after a rename.
func (uc *CategoryUseCase) Rename(ctx context.Context, id, newName string) error {
	category, err := uc.categories.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.checkUnique(ctx, category.Type, newName, id); err != nil {
		return err
	}
	if err := category.Rename(newName); err != nil {
		return err
	}
	return uc.categories.Update(ctx, category)
}

// Delete removes a category. It fails while any operation still references
// the category.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.categories.Get(ctx, id); err != nil {
		return err
	}
	refs, err := uc.operations.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("%w: %d operations", domain.ErrCategoryInUse, refs)
	}
	return uc.categories.Remove(ctx, id)
}

// List returns all categories, optionally filtered by type.
func (uc *CategoryUseCase) List(ctx context.Context, t *domain.CategoryType) ([]*domain.Category, error) {
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return categories, nil
	}
	filtered := make([]*domain.Category, 0, len(categories))
	for _, c := range categories {
		if c.Type == *t {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// checkUnique enforces (type, case-insensitive name) uniqueness among live
// categories, ignoring the category identified by excludeID.
func (uc *CategoryUseCase) checkUnique(ctx context.Context, t domain.CategoryType, name, excludeID string) error {
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		if c.ID != excludeID && c.Type == t && c.SameName(name) {
			return fmt.Errorf("%w: %s %q", domain.ErrCategoryExists, t, c.Name)
		}
	}
	return nil
}
