// Package snapshot implements the import/export boundary: a self-contained
// document carrying every account, category and operation at one instant,
// in one of several interchange formats.
package snapshot

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// DateLayout is the calendar-date format used in snapshot documents.
const DateLayout = "2006-01-02"

// Snapshot is the interchange document with three named collections.
// Amounts travel as decimal strings so binary floats never touch money.
type Snapshot struct {
	Accounts   []AccountRecord   `json:"accounts" yaml:"accounts"`
	Categories []CategoryRecord  `json:"categories" yaml:"categories"`
	Operations []OperationRecord `json:"operations" yaml:"operations"`
}

// AccountRecord is the wire form of an account.
type AccountRecord struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Balance string `json:"balance" yaml:"balance"`
}

// CategoryRecord is the wire form of a category. Type is the literal
// string "Income" or "Expense", matched case-insensitively on read.
type CategoryRecord struct {
	ID   string `json:"id" yaml:"id"`
	Type string `json:"type" yaml:"type"`
	Name string `json:"name" yaml:"name"`
}

// OperationRecord is the wire form of an operation. AccountID and
// CategoryID reference records in the same document.
type OperationRecord struct {
	ID          string `json:"id" yaml:"id"`
	Type        string `json:"type" yaml:"type"`
	AccountID   string `json:"accountId" yaml:"accountId"`
	CategoryID  string `json:"categoryId" yaml:"categoryId"`
	Amount      string `json:"amount" yaml:"amount"`
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

func parseAmount(s, context string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: bad amount %q for %s", domain.ErrBadSnapshot, s, context)
	}
	return amount, nil
}

func parseDate(s, context string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: bad date %q for %s", domain.ErrBadSnapshot, s, context)
}
