package snapshot

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/iho/fintrack/internal/domain"
)

// Row kinds in the CSV layout. One file carries all three collections;
// the first column of every row names its kind.
const (
	csvKindAccount   = "account"
	csvKindCategory  = "category"
	csvKindOperation = "operation"
)

// CSVCodec reads and writes CSV snapshots. Layout:
//
//	account,<id>,<name>,<balance>
//	category,<id>,<type>,<name>
//	operation,<id>,<type>,<accountId>,<categoryId>,<amount>,<date>,<description>
type CSVCodec struct{}

func (CSVCodec) Format() string { return "csv" }

func (CSVCodec) Encode(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	for _, a := range s.Accounts {
		if err := w.Write([]string{csvKindAccount, a.ID, a.Name, a.Balance}); err != nil {
			return nil, err
		}
	}
	for _, c := range s.Categories {
		if err := w.Write([]string{csvKindCategory, c.ID, c.Type, c.Name}); err != nil {
			return nil, err
		}
	}
	for _, o := range s.Operations {
		row := []string{csvKindOperation, o.ID, o.Type, o.AccountID, o.CategoryID, o.Amount, o.Date, o.Description}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (CSVCodec) Decode(data []byte) (*Snapshot, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // row width depends on the kind column

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadSnapshot, err)
	}

	s := &Snapshot{}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		switch row[0] {
		case csvKindAccount:
			if len(row) != 4 {
				return nil, fmt.Errorf("%w: account row %d has %d fields, want 4", domain.ErrBadSnapshot, i+1, len(row))
			}
			s.Accounts = append(s.Accounts, AccountRecord{ID: row[1], Name: row[2], Balance: row[3]})
		case csvKindCategory:
			if len(row) != 4 {
				return nil, fmt.Errorf("%w: category row %d has %d fields, want 4", domain.ErrBadSnapshot, i+1, len(row))
			}
			s.Categories = append(s.Categories, CategoryRecord{ID: row[1], Type: row[2], Name: row[3]})
		case csvKindOperation:
			if len(row) != 8 {
				return nil, fmt.Errorf("%w: operation row %d has %d fields, want 8", domain.ErrBadSnapshot, i+1, len(row))
			}
			s.Operations = append(s.Operations, OperationRecord{
				ID:          row[1],
				Type:        row[2],
				AccountID:   row[3],
				CategoryID:  row[4],
				Amount:      row[5],
				Date:        row[6],
				Description: row[7],
			})
		default:
			return nil, fmt.Errorf("%w: unknown row kind %q at row %d", domain.ErrBadSnapshot, row[0], i+1)
		}
	}
	return s, nil
}
