package console

import (
	"context"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
)

// CategoriesScreen manages income and expense categories.
type CategoriesScreen struct {
	io         *Console
	categories *usecase.CategoryUseCase
}

func NewCategoriesScreen(io *Console, categories *usecase.CategoryUseCase) *CategoriesScreen {
	return &CategoriesScreen{io: io, categories: categories}
}

func (s *CategoriesScreen) Title() string { return "Categories" }

func (s *CategoriesScreen) Show(ctx context.Context) error {
	for {
		choice, err := s.io.Choose(s.Title(), []string{
			"List categories", "Create category", "Rename category", "Delete category", "Back",
		})
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			err = s.list(ctx)
		case 1:
			err = s.create(ctx)
		case 2:
			err = s.rename(ctx)
		case 3:
			err = s.delete(ctx)
		case 4:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *CategoriesScreen) list(ctx context.Context) error {
	categories, err := s.categories.List(ctx, nil)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{c.ID, string(c.Type), c.Name})
	}
	s.io.Table([]string{"ID", "TYPE", "NAME"}, rows)
	return nil
}

func (s *CategoriesScreen) create(ctx context.Context) error {
	t, err := pickCategoryType(s.io)
	if err != nil {
		return err
	}
	name, err := s.io.PromptString("Category name")
	if err != nil {
		return err
	}
	category, err := s.categories.Create(ctx, t, name)
	if err != nil {
		return err
	}
	s.io.Printf("Created %s category %q", category.Type, category.Name)
	return nil
}

func (s *CategoriesScreen) rename(ctx context.Context) error {
	category, err := pickCategory(ctx, s.io, s.categories, nil)
	if err != nil || category == nil {
		return err
	}
	newName, err := s.io.PromptString("New name")
	if err != nil {
		return err
	}
	if err := s.categories.Rename(ctx, category.ID, newName); err != nil {
		return err
	}
	s.io.Println("Renamed.")
	return nil
}

func (s *CategoriesScreen) delete(ctx context.Context) error {
	category, err := pickCategory(ctx, s.io, s.categories, nil)
	if err != nil || category == nil {
		return err
	}
	ok, err := s.io.Confirm("Delete category " + category.Name + "?")
	if err != nil || !ok {
		return err
	}
	if err := s.categories.Delete(ctx, category.ID); err != nil {
		return err
	}
	s.io.Println("Deleted.")
	return nil
}

func pickCategoryType(io *Console) (domain.CategoryType, error) {
	choice, err := io.Choose("Category type", []string{"Income", "Expense"})
	if err != nil {
		return "", err
	}
	if choice == 0 {
		return domain.CategoryIncome, nil
	}
	return domain.CategoryExpense, nil
}

// pickCategory lets the user choose one category, optionally narrowed to a
// type; nil without error means there is nothing to choose from.
func pickCategory(ctx context.Context, io *Console, categories *usecase.CategoryUseCase, t *domain.CategoryType) (*domain.Category, error) {
	all, err := categories.List(ctx, t)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		io.Warn("no matching categories yet")
		return nil, nil
	}
	labels := make([]string, 0, len(all))
	for _, c := range all {
		labels = append(labels, string(c.Type)+" / "+c.Name)
	}
	choice, err := io.Choose("Pick a category", labels)
	if err != nil {
		return nil, err
	}
	return all[choice], nil
}
