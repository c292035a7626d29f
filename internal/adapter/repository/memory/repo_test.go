package memory_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/adapter/repository/memory"
	"github.com/iho/fintrack/internal/domain"
)

func TestAccountRepository_CRUD(t *testing.T) {
	repo := memory.NewAccountRepository()
	ctx := context.Background()

	account := &domain.Account{ID: "acc-1", Name: "Checking", Balance: decimal.Zero}
	if err := repo.Add(ctx, account); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Add(ctx, account); !errors.Is(err, domain.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}

	got, err := repo.Get(ctx, "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Checking" {
		t.Errorf("unexpected account: %+v", got)
	}

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
	if err := repo.Update(ctx, &domain.Account{ID: "missing"}); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}

	if err := repo.Remove(ctx, "acc-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Remove(ctx, "acc-1"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepository_List_InsertionOrder(t *testing.T) {
	repo := memory.NewAccountRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		repo.Add(ctx, &domain.Account{ID: "acc-" + strconv.Itoa(i), Balance: decimal.Zero})
	}
	repo.Remove(ctx, "acc-2")

	accounts, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"acc-0", "acc-1", "acc-3", "acc-4"}
	if len(accounts) != len(want) {
		t.Fatalf("expected %d accounts, got %d", len(want), len(accounts))
	}
	for i, id := range want {
		if accounts[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, accounts[i].ID)
		}
	}
}

func TestOperationRepository_Queries(t *testing.T) {
	repo := memory.NewOperationRepository()
	ctx := context.Background()
	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }

	ops := []*domain.Operation{
		{ID: "op-1", AccountID: "acc-1", CategoryID: "cat-1", Type: domain.OperationIncome, Amount: decimal.NewFromInt(1), Date: day(1)},
		{ID: "op-2", AccountID: "acc-1", CategoryID: "cat-2", Type: domain.OperationExpense, Amount: decimal.NewFromInt(2), Date: day(10)},
		{ID: "op-3", AccountID: "acc-2", CategoryID: "cat-1", Type: domain.OperationIncome, Amount: decimal.NewFromInt(3), Date: day(20)},
	}
	for _, op := range ops {
		if err := repo.Add(ctx, op); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	forAccount, err := repo.ListByAccount(ctx, "acc-1", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forAccount) != 2 {
		t.Fatalf("expected 2 operations for acc-1, got %d", len(forAccount))
	}

	from, to := day(5), day(15)
	inRange, err := repo.ListByAccount(ctx, "acc-1", &from, &to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inRange) != 1 || inRange[0].ID != "op-2" {
		t.Fatalf("expected only op-2 in range, got %+v", inRange)
	}

	byAccount, err := repo.CountByAccount(ctx, "acc-2")
	if err != nil || byAccount != 1 {
		t.Errorf("expected 1 operation on acc-2, got %d (%v)", byAccount, err)
	}
	byCategory, err := repo.CountByCategory(ctx, "cat-1")
	if err != nil || byCategory != 2 {
		t.Errorf("expected 2 operations on cat-1, got %d (%v)", byCategory, err)
	}
}

func TestULIDGenerator_Unique(t *testing.T) {
	gen := memory.NewULIDGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.Generate()
		if id == "" {
			t.Fatal("empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
