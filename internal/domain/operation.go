package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OperationType classifies an operation as money coming in or going out.
type OperationType string

const (
	OperationIncome  OperationType = "Income"
	OperationExpense OperationType = "Expense"
)

// ParseOperationType parses the wire representation of an operation type.
// Matching is case-insensitive.
func ParseOperationType(s string) (OperationType, error) {
	switch {
	case strings.EqualFold(s, string(OperationIncome)):
		return OperationIncome, nil
	case strings.EqualFold(s, string(OperationExpense)):
		return OperationExpense, nil
	default:
		return "", fmt.Errorf("%w: operation type %q", ErrInvalidType, s)
	}
}

// Matches reports whether the operation type is compatible with the
// category type: Income operations book against Income categories only,
// Expense against Expense.
func (t OperationType) Matches(ct CategoryType) bool {
	return string(t) == string(ct)
}

// Operation represents a single dated monetary transaction against one
// account and one category. Immutable after creation; edits are modeled as
// delete-old plus create-new.
type Operation struct {
	ID          string
	Type        OperationType
	AccountID   string
	CategoryID  string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// SignedAmount returns the amount with the sign of its balance effect:
// positive for income, negative for expense.
func (o *Operation) SignedAmount() decimal.Decimal {
	if o.Type == OperationExpense {
		return o.Amount.Neg()
	}
	return o.Amount
}

// InRange reports whether the operation date falls in the inclusive
// calendar-date range. A nil bound is unbounded.
func (o *Operation) InRange(from, to *time.Time) bool {
	day := NormalizeDate(o.Date)
	if from != nil && day.Before(NormalizeDate(*from)) {
		return false
	}
	if to != nil && day.After(NormalizeDate(*to)) {
		return false
	}
	return true
}
