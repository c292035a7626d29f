package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a named monetary balance container.
type Account struct {
	ID      string
	Name    string
	Balance decimal.Decimal
}

// Rename changes the account name in place. The identifier is stable across
// renames.
func (a *Account) Rename(newName string) error {
	name, err := ValidateName(newName)
	if err != nil {
		return err
	}
	a.Name = name
	return nil
}

// Apply adds a signed delta to the balance.
func (a *Account) Apply(delta decimal.Decimal) {
	a.Balance = a.Balance.Add(delta)
}
