package snapshot

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
)

// Importer replays a snapshot document into the live stores through the
// use cases, remapping every identifier from the file's namespace into the
// live one. The pipeline is fixed: read, parse, validate, persist.
//
// Persist is not transactional. A failure partway through leaves a
// partially imported store; balance drift from such a failure is repaired
// by reconciliation, imported entities are inspected manually.
type Importer struct {
	accounts   *usecase.AccountUseCase
	categories *usecase.CategoryUseCase
	operations *usecase.OperationUseCase
}

// NewImporter creates a new Importer.
func NewImporter(
	accounts *usecase.AccountUseCase,
	categories *usecase.CategoryUseCase,
	operations *usecase.OperationUseCase,
) *Importer {
	return &Importer{
		accounts:   accounts,
		categories: categories,
		operations: operations,
	}
}

// Run reads the file at path, picks a codec from its extension, and pushes
// the document through parse, validate and persist.
func (i *Importer) Run(ctx context.Context, path string) error {
	codec, err := ByPath(path)
	if err != nil {
		return err
	}
	return i.RunWith(ctx, path, codec)
}

// RunWith is Run with an explicit codec.
func (i *Importer) RunWith(ctx context.Context, path string, codec Codec) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	s, err := codec.Decode(raw)
	if err != nil {
		return err
	}
	if err := Validate(s); err != nil {
		return err
	}
	return i.Persist(ctx, s)
}

// Validate rejects the whole document on its first violation, checking in
// collection order: duplicate identifiers, then category types, then
// operation types, dates, amounts and in-file references. Fail-fast per
// check; violations are not collected.
func Validate(s *Snapshot) error {
	accountIDs := make(map[string]bool, len(s.Accounts))
	for _, a := range s.Accounts {
		if accountIDs[a.ID] {
			return fmt.Errorf("%w: account %s", domain.ErrDuplicateID, a.ID)
		}
		accountIDs[a.ID] = true
		if _, err := parseAmount(a.Balance, "account "+a.ID); err != nil {
			return err
		}
	}

	categoryIDs := make(map[string]bool, len(s.Categories))
	for _, c := range s.Categories {
		if categoryIDs[c.ID] {
			return fmt.Errorf("%w: category %s", domain.ErrDuplicateID, c.ID)
		}
		categoryIDs[c.ID] = true
		if _, err := domain.ParseCategoryType(c.Type); err != nil {
			return fmt.Errorf("%w (category %s %q)", err, c.ID, c.Name)
		}
	}

	operationIDs := make(map[string]bool, len(s.Operations))
	for _, o := range s.Operations {
		if operationIDs[o.ID] {
			return fmt.Errorf("%w: operation %s", domain.ErrDuplicateID, o.ID)
		}
		operationIDs[o.ID] = true
		if _, err := domain.ParseOperationType(o.Type); err != nil {
			return fmt.Errorf("%w (operation %s)", err, o.ID)
		}
		if _, err := parseAmount(o.Amount, "operation "+o.ID); err != nil {
			return err
		}
		if _, err := parseDate(o.Date, "operation "+o.ID); err != nil {
			return err
		}
		if !accountIDs[o.AccountID] {
			return fmt.Errorf("%w: operation %s references unknown account %s",
				domain.ErrDanglingReference, o.ID, o.AccountID)
		}
		if !categoryIDs[o.CategoryID] {
			return fmt.Errorf("%w: operation %s references unknown category %s",
				domain.ErrDanglingReference, o.ID, o.CategoryID)
		}
	}
	return nil
}

// Persist replays the document into the live stores: conflict checks
// first, then accounts, categories and operations in that order, recording
// fileID to liveID mappings as it goes. Operation references are resolved
// through the maps again even though Validate already checked them, since
// the validated view may be stale by the time persist runs.
func (i *Importer) Persist(ctx context.Context, s *Snapshot) error {
	if err := i.checkConflicts(ctx, s); err != nil {
		return err
	}

	// The exported balance already includes the ledger's net effect, and
	// replaying the operations below applies that net again. Seeding each
	// account with balance minus net lands the stored balance exactly on
	// the exported value once the replay finishes.
	nets := make(map[string]decimal.Decimal, len(s.Accounts))
	for _, o := range s.Operations {
		t, err := domain.ParseOperationType(o.Type)
		if err != nil {
			return fmt.Errorf("%w (operation %s)", err, o.ID)
		}
		amount, err := parseAmount(o.Amount, "operation "+o.ID)
		if err != nil {
			return err
		}
		if t == domain.OperationExpense {
			amount = amount.Neg()
		}
		nets[o.AccountID] = nets[o.AccountID].Add(amount)
	}

	accountIDMap := make(map[string]string, len(s.Accounts))
	for _, a := range s.Accounts {
		balance, err := parseAmount(a.Balance, "account "+a.ID)
		if err != nil {
			return err
		}
		created, err := i.accounts.Create(ctx, a.Name, balance.Sub(nets[a.ID]))
		if err != nil {
			return fmt.Errorf("import account %q: %w", a.Name, err)
		}
		accountIDMap[a.ID] = created.ID
	}

	categoryIDMap := make(map[string]string, len(s.Categories))
	for _, c := range s.Categories {
		t, err := domain.ParseCategoryType(c.Type)
		if err != nil {
			return fmt.Errorf("%w (category %s %q)", err, c.ID, c.Name)
		}
		created, err := i.categories.Create(ctx, t, c.Name)
		if err != nil {
			return fmt.Errorf("import category %q: %w", c.Name, err)
		}
		categoryIDMap[c.ID] = created.ID
	}

	for _, o := range s.Operations {
		t, err := domain.ParseOperationType(o.Type)
		if err != nil {
			return fmt.Errorf("%w (operation %s)", err, o.ID)
		}
		amount, err := parseAmount(o.Amount, "operation "+o.ID)
		if err != nil {
			return err
		}
		date, err := parseDate(o.Date, "operation "+o.ID)
		if err != nil {
			return err
		}

		liveAccountID, ok := accountIDMap[o.AccountID]
		if !ok {
			return fmt.Errorf("%w: operation %s account %s is unmapped",
				domain.ErrDanglingReference, o.ID, o.AccountID)
		}
		liveCategoryID, ok := categoryIDMap[o.CategoryID]
		if !ok {
			return fmt.Errorf("%w: operation %s category %s is unmapped",
				domain.ErrDanglingReference, o.ID, o.CategoryID)
		}

		// The operation's own file identifier is discarded; a fresh live
		// identifier is assigned on create.
		if _, err := i.operations.Create(ctx, usecase.CreateOperationInput{
			Type:        t,
			AccountID:   liveAccountID,
			CategoryID:  liveCategoryID,
			Amount:      amount,
			Date:        date,
			Description: o.Description,
		}); err != nil {
			return fmt.Errorf("import operation %s: %w", o.ID, err)
		}
	}
	return nil
}

// checkConflicts rejects the import when any incoming account or category
// collides with a live one, by identifier or by its uniqueness key.
func (i *Importer) checkConflicts(ctx context.Context, s *Snapshot) error {
	liveAccounts, err := i.accounts.List(ctx)
	if err != nil {
		return err
	}
	for _, a := range s.Accounts {
		for _, live := range liveAccounts {
			if live.ID == a.ID {
				return fmt.Errorf("%w: account id %s", domain.ErrAccountExists, a.ID)
			}
			if strings.EqualFold(live.Name, strings.TrimSpace(a.Name)) {
				return fmt.Errorf("%w: account name %q", domain.ErrAccountExists, a.Name)
			}
		}
	}

	liveCategories, err := i.categories.List(ctx, nil)
	if err != nil {
		return err
	}
	for _, c := range s.Categories {
		t, err := domain.ParseCategoryType(c.Type)
		if err != nil {
			return fmt.Errorf("%w (category %s %q)", err, c.ID, c.Name)
		}
		for _, live := range liveCategories {
			if live.ID == c.ID {
				return fmt.Errorf("%w: category id %s", domain.ErrCategoryExists, c.ID)
			}
			if live.Type == t && live.SameName(c.Name) {
				return fmt.Errorf("%w: %s %q", domain.ErrCategoryExists, t, c.Name)
			}
		}
	}
	return nil
}
