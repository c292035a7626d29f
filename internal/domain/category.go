package domain

import (
	"fmt"
	"strings"
)

// CategoryType classifies a category as an income or expense bucket.
// Immutable after creation.
type CategoryType string

const (
	CategoryIncome  CategoryType = "Income"
	CategoryExpense CategoryType = "Expense"
)

// ParseCategoryType parses the wire representation of a category type.
// Matching is case-insensitive.
func ParseCategoryType(s string) (CategoryType, error) {
	switch {
	case strings.EqualFold(s, string(CategoryIncome)):
		return CategoryIncome, nil
	case strings.EqualFold(s, string(CategoryExpense)):
		return CategoryExpense, nil
	default:
		return "", fmt.Errorf("%w: category type %q", ErrInvalidType, s)
	}
}

// Category represents a named classification of operations.
type Category struct {
	ID   string
	Type CategoryType
	Name string
}

// SameName reports whether the category's name equals name,
// case-insensitively. Uniqueness of (type, name) pairs is checked with it.
func (c *Category) SameName(name string) bool {
	return strings.EqualFold(c.Name, strings.TrimSpace(name))
}

// Rename changes the category name in place. The identifier is stable across
// renames, so operations referencing the category stay valid.
func (c *Category) Rename(newName string) error {
	name, err := ValidateName(newName)
	if err != nil {
		return err
	}
	c.Name = name
	return nil
}
