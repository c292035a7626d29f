package console

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
)

// AccountsScreen manages bank accounts.
type AccountsScreen struct {
	io       *Console
	accounts *usecase.AccountUseCase
}

func NewAccountsScreen(io *Console, accounts *usecase.AccountUseCase) *AccountsScreen {
	return &AccountsScreen{io: io, accounts: accounts}
}

func (s *AccountsScreen) Title() string { return "Accounts" }

func (s *AccountsScreen) Show(ctx context.Context) error {
	for {
		choice, err := s.io.Choose(s.Title(), []string{
			"List accounts", "Create account", "Rename account", "Delete account", "Back",
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

func (s *AccountsScreen) list(ctx context.Context) error {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []string{a.ID, a.Name, a.Balance.String()})
	}
	s.io.Table([]string{"ID", "NAME", "BALANCE"}, rows)
	return nil
}

func (s *AccountsScreen) create(ctx context.Context) error {
	name, err := s.io.PromptString("Account name")
	if err != nil {
		return err
	}
	opening, err := s.io.PromptDecimal("Opening balance", func(d decimal.Decimal) bool {
		return !d.IsNegative()
	})
	if err != nil {
		return err
	}
	account, err := s.accounts.Create(ctx, name, opening)
	if err != nil {
		return err
	}
	s.io.Printf("Created account %q (%s)", account.Name, account.ID)
	return nil
}

func (s *AccountsScreen) rename(ctx context.Context) error {
	account, err := pickAccount(ctx, s.io, s.accounts)
	if err != nil || account == nil {
		return err
	}
	newName, err := s.io.PromptString("New name")
	if err != nil {
		return err
	}
	if err := s.accounts.Rename(ctx, account.ID, newName); err != nil {
		return err
	}
	s.io.Println("Renamed.")
	return nil
}

func (s *AccountsScreen) delete(ctx context.Context) error {
	account, err := pickAccount(ctx, s.io, s.accounts)
	if err != nil || account == nil {
		return err
	}
	ok, err := s.io.Confirm("Delete account " + account.Name + "?")
	if err != nil || !ok {
		return err
	}
	if err := s.accounts.Delete(ctx, account.ID); err != nil {
		return err
	}
	s.io.Println("Deleted.")
	return nil
}

// pickAccount lets the user choose one account; nil without error means
// there is nothing to choose from.
func pickAccount(ctx context.Context, io *Console, accounts *usecase.AccountUseCase) (*domain.Account, error) {
	all, err := accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		io.Warn("no accounts yet")
		return nil, nil
	}
	labels := make([]string, 0, len(all))
	for _, a := range all {
		labels = append(labels, a.Name+" ("+a.Balance.String()+")")
	}
	choice, err := io.Choose("Pick an account", labels)
	if err != nil {
		return nil, err
	}
	return all[choice], nil
}
