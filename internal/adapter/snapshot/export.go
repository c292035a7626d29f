package snapshot

import (
	"context"
	"os"

	"github.com/iho/fintrack/internal/usecase"
)

// Exporter produces snapshot documents from the live repositories.
// Export is a pure read; nothing is mutated.
type Exporter struct {
	accounts   usecase.AccountRepository
	categories usecase.CategoryRepository
	operations usecase.OperationRepository
}

// NewExporter creates a new Exporter.
func NewExporter(
	accounts usecase.AccountRepository,
	categories usecase.CategoryRepository,
	operations usecase.OperationRepository,
) *Exporter {
	return &Exporter{
		accounts:   accounts,
		categories: categories,
		operations: operations,
	}
}

// Build assembles the snapshot document from the live stores.
func (e *Exporter) Build(ctx context.Context) (*Snapshot, error) {
	accounts, err := e.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := e.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	operations, err := e.operations.List(ctx)
	if err != nil {
		return nil, err
	}

	s := &Snapshot{}
	for _, a := range accounts {
		s.Accounts = append(s.Accounts, AccountRecord{
			ID:      a.ID,
			Name:    a.Name,
			Balance: a.Balance.String(),
		})
	}
	for _, c := range categories {
		s.Categories = append(s.Categories, CategoryRecord{
			ID:   c.ID,
			Type: string(c.Type),
			Name: c.Name,
		})
	}
	for _, o := range operations {
		s.Operations = append(s.Operations, OperationRecord{
			ID:          o.ID,
			Type:        string(o.Type),
			AccountID:   o.AccountID,
			CategoryID:  o.CategoryID,
			Amount:      o.Amount.String(),
			Date:        o.Date.Format(DateLayout),
			Description: o.Description,
		})
	}
	return s, nil
}

// Run writes the full snapshot to path, picking the codec from the file
// extension.
func (e *Exporter) Run(ctx context.Context, path string) error {
	codec, err := ByPath(path)
	if err != nil {
		return err
	}
	return e.RunWith(ctx, path, codec)
}

// RunWith writes the full snapshot to path using the given codec.
func (e *Exporter) RunWith(ctx context.Context, path string, codec Codec) error {
	s, err := e.Build(ctx)
	if err != nil {
		return err
	}
	data, err := codec.Encode(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
