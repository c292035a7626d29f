package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// IDGenerator generates unique identifiers.
type IDGenerator interface {
	Generate() string
}

// Factory centralizes identifier generation and construction-time
// validation for all entities. It has no side effects beyond returning a
// new value; persistence belongs to the repositories.
type Factory struct {
	ids IDGenerator
}

// NewFactory creates a new Factory.
func NewFactory(ids IDGenerator) *Factory {
	return &Factory{ids: ids}
}

// NewAccount builds a validated account with a fresh identifier.
func (f *Factory) NewAccount(name string, opening decimal.Decimal) (*Account, error) {
	return f.NewAccountWithID(f.ids.Generate(), name, opening)
}

// NewAccountWithID builds a validated account with an explicit identifier.
func (f *Factory) NewAccountWithID(id, name string, opening decimal.Decimal) (*Account, error) {
	trimmed, err := ValidateName(name)
	if err != nil {
		return nil, err
	}
	if err := ValidateOpeningBalance(opening); err != nil {
		return nil, err
	}
	return &Account{ID: id, Name: trimmed, Balance: opening}, nil
}

// NewCategory builds a validated category with a fresh identifier.
func (f *Factory) NewCategory(t CategoryType, name string) (*Category, error) {
	return f.NewCategoryWithID(f.ids.Generate(), t, name)
}

// NewCategoryWithID builds a validated category with an explicit identifier.
func (f *Factory) NewCategoryWithID(id string, t CategoryType, name string) (*Category, error) {
	trimmed, err := ValidateName(name)
	if err != nil {
		return nil, err
	}
	return &Category{ID: id, Type: t, Name: trimmed}, nil
}

// NewOperation builds a validated operation with a fresh identifier.
func (f *Factory) NewOperation(t OperationType, accountID, categoryID string,
	amount decimal.Decimal, date time.Time, description string) (*Operation, error) {
	return f.NewOperationWithID(f.ids.Generate(), t, accountID, categoryID, amount, date, description)
}

// NewOperationWithID builds a validated operation with an explicit
// identifier. Blank descriptions are treated as absent.
func (f *Factory) NewOperationWithID(id string, t OperationType, accountID, categoryID string,
	amount decimal.Decimal, date time.Time, description string) (*Operation, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	return &Operation{
		ID:          id,
		Type:        t,
		AccountID:   accountID,
		CategoryID:  categoryID,
		Amount:      amount,
		Date:        NormalizeDate(date),
		Description: strings.TrimSpace(description),
	}, nil
}
