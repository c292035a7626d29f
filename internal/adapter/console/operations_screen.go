package console

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
)

// OperationsScreen manages ledger operations. Edit is composed as
// delete-old plus create-new; there is no in-place update.
type OperationsScreen struct {
	io         *Console
	accounts   *usecase.AccountUseCase
	categories *usecase.CategoryUseCase
	operations *usecase.OperationUseCase
}

func NewOperationsScreen(
	io *Console,
	accounts *usecase.AccountUseCase,
	categories *usecase.CategoryUseCase,
	operations *usecase.OperationUseCase,
) *OperationsScreen {
	return &OperationsScreen{
		io:         io,
		accounts:   accounts,
		categories: categories,
		operations: operations,
	}
}

func (s *OperationsScreen) Title() string { return "Operations" }

func (s *OperationsScreen) Show(ctx context.Context) error {
	for {
		choice, err := s.io.Choose(s.Title(), []string{
			"List by account", "Create operation", "Edit operation", "Delete operation", "Back",
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
			err = s.edit(ctx)
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

func (s *OperationsScreen) list(ctx context.Context) error {
	account, err := pickAccount(ctx, s.io, s.accounts)
	if err != nil || account == nil {
		return err
	}
	from, err := s.io.PromptOptionalDate("From")
	if err != nil {
		return err
	}
	to, err := s.io.PromptOptionalDate("To")
	if err != nil {
		return err
	}

	operations, err := s.operations.ForAccount(ctx, account.ID, from, to)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(operations))
	for _, op := range operations {
		rows = append(rows, []string{
			op.ID, string(op.Type), op.Amount.String(),
			op.Date.Format("2006-01-02"), op.Description,
		})
	}
	s.io.Table([]string{"ID", "TYPE", "AMOUNT", "DATE", "DESCRIPTION"}, rows)
	return nil
}

// promptOperationInput gathers everything needed to create one operation.
// Returns nil without error when a referenced entity set is empty.
func (s *OperationsScreen) promptOperationInput(ctx context.Context) (*usecase.CreateOperationInput, error) {
	account, err := pickAccount(ctx, s.io, s.accounts)
	if err != nil || account == nil {
		return nil, err
	}
	t, err := pickCategoryType(s.io)
	if err != nil {
		return nil, err
	}
	// Offer only categories the type-match invariant allows.
	category, err := pickCategory(ctx, s.io, s.categories, &t)
	if err != nil || category == nil {
		return nil, err
	}
	amount, err := s.io.PromptDecimal("Amount", func(d decimal.Decimal) bool {
		return d.IsPositive()
	})
	if err != nil {
		return nil, err
	}
	date, err := s.io.PromptDate("Date")
	if err != nil {
		return nil, err
	}
	description, err := s.io.PromptOptional("Description")
	if err != nil {
		return nil, err
	}

	return &usecase.CreateOperationInput{
		Type:        domain.OperationType(t),
		AccountID:   account.ID,
		CategoryID:  category.ID,
		Amount:      amount,
		Date:        date,
		Description: description,
	}, nil
}

func (s *OperationsScreen) create(ctx context.Context) error {
	input, err := s.promptOperationInput(ctx)
	if err != nil || input == nil {
		return err
	}
	operation, err := s.operations.Create(ctx, *input)
	if err != nil {
		return err
	}
	s.io.Printf("Recorded %s of %s (%s)", operation.Type, operation.Amount.String(), operation.ID)
	return nil
}

// edit is delete-old plus create-new. The replacement's inputs are gathered
// before the delete, but a failure between the two steps still loses the
// original; recalculate repairs any balance drift that leaves behind.
func (s *OperationsScreen) edit(ctx context.Context) error {
	operation, err := s.pickOperation(ctx)
	if err != nil || operation == nil {
		return err
	}
	s.io.Println("Enter the replacement operation.")
	input, err := s.promptOperationInput(ctx)
	if err != nil || input == nil {
		return err
	}

	if err := s.operations.Delete(ctx, operation.ID); err != nil {
		return err
	}
	replacement, err := s.operations.Create(ctx, *input)
	if err != nil {
		return err
	}
	s.io.Printf("Replaced %s with %s", operation.ID, replacement.ID)
	return nil
}

func (s *OperationsScreen) delete(ctx context.Context) error {
	operation, err := s.pickOperation(ctx)
	if err != nil || operation == nil {
		return err
	}
	ok, err := s.io.Confirm("Delete this operation?")
	if err != nil || !ok {
		return err
	}
	if err := s.operations.Delete(ctx, operation.ID); err != nil {
		return err
	}
	s.io.Println("Deleted; balance effect reversed.")
	return nil
}

func (s *OperationsScreen) pickOperation(ctx context.Context) (*domain.Operation, error) {
	account, err := pickAccount(ctx, s.io, s.accounts)
	if err != nil || account == nil {
		return nil, err
	}
	operations, err := s.operations.ForAccount(ctx, account.ID, nil, nil)
	if err != nil {
		return nil, err
	}
	if len(operations) == 0 {
		s.io.Warn("no operations on this account")
		return nil, nil
	}
	labels := make([]string, 0, len(operations))
	for _, op := range operations {
		labels = append(labels, op.Date.Format("2006-01-02")+" "+string(op.Type)+" "+op.Amount.String()+" "+op.Description)
	}
	choice, err := s.io.Choose("Pick an operation", labels)
	if err != nil {
		return nil, err
	}
	return operations[choice], nil
}
