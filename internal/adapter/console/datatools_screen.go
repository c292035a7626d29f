package console

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/usecase"
)

// Reconciler is the optional balance-repair capability. It may be left
// unbound at startup; the screen degrades to a warning when it is absent.
type Reconciler interface {
	Verify(ctx context.Context, accountID string) (decimal.Decimal, error)
	Recalculate(ctx context.Context, accountID string) error
	RecalculateAll(ctx context.Context) (int, error)
}

// DataToolsScreen exposes balance verification and recalculation.
type DataToolsScreen struct {
	io         *Console
	accounts   *usecase.AccountUseCase
	reconciler Reconciler // nil when the capability is not wired
}

func NewDataToolsScreen(io *Console, accounts *usecase.AccountUseCase, reconciler Reconciler) *DataToolsScreen {
	return &DataToolsScreen{
		io:         io,
		accounts:   accounts,
		reconciler: reconciler,
	}
}

func (s *DataToolsScreen) Title() string { return "Data tools" }

func (s *DataToolsScreen) Show(ctx context.Context) error {
	for {
		choice, err := s.io.Choose(s.Title(), []string{
			"Verify account balance", "Recalculate account balance", "Recalculate all accounts", "Back",
		})
		if err != nil {
			return err
		}
		if choice == 3 {
			return nil
		}
		if s.reconciler == nil {
			s.io.Warn("reconciliation module is not wired in")
			continue
		}

		switch choice {
		case 0:
			err = s.verify(ctx)
		case 1:
			err = s.recalculate(ctx)
		case 2:
			err = s.recalculateAll(ctx)
		}
		if err != nil {
			return err
		}
	}
}

func (s *DataToolsScreen) verify(ctx context.Context) error {
	account, err := pickAccount(ctx, s.io, s.accounts)
	if err != nil || account == nil {
		return err
	}
	diff, err := s.reconciler.Verify(ctx, account.ID)
	if err != nil {
		return err
	}
	if diff.IsZero() {
		s.io.Println("Balance is consistent with the ledger.")
	} else {
		s.io.Printf("Drift (ledger minus stored): %s", diff.String())
	}
	return nil
}

func (s *DataToolsScreen) recalculate(ctx context.Context) error {
	account, err := pickAccount(ctx, s.io, s.accounts)
	if err != nil || account == nil {
		return err
	}
	if err := s.reconciler.Recalculate(ctx, account.ID); err != nil {
		return err
	}
	s.io.Println("Recalculated.")
	return nil
}

func (s *DataToolsScreen) recalculateAll(ctx context.Context) error {
	corrected, err := s.reconciler.RecalculateAll(ctx)
	if err != nil {
		return err
	}
	s.io.Printf("Recalculated %d account(s).", corrected)
	return nil
}
