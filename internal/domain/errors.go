package domain

import "errors"

var (
	// Not-found errors
	ErrAccountNotFound   = errors.New("account not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrOperationNotFound = errors.New("operation not found")

	// Conflict errors
	ErrCategoryExists = errors.New("category with this type and name already exists")
	ErrAccountExists  = errors.New("account already exists")
	ErrAccountInUse   = errors.New("account is referenced by operations")
	ErrCategoryInUse  = errors.New("category is referenced by operations")
	ErrDuplicateID    = errors.New("duplicate identifier")

	// Invariant errors
	ErrTypeMismatch = errors.New("operation type does not match category type")

	// Validation errors
	ErrEmptyName       = errors.New("name must not be blank")
	ErrNameTooLong     = errors.New("name is too long")
	ErrNegativeBalance = errors.New("opening balance must not be negative")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidType     = errors.New("invalid type")

	// Snapshot errors
	ErrBadSnapshot       = errors.New("malformed snapshot")
	ErrDanglingReference = errors.New("dangling reference")
)
