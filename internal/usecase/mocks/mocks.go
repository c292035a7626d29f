// Package mocks provides hand-rolled mock implementations of the usecase
// repository interfaces. Each method delegates to an optional Func field and
// otherwise falls back to a map-backed in-memory store.
package mocks

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/iho/fintrack/internal/domain"
)

// MockIDGenerator is a mock implementation of domain.IDGenerator.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return "id-" + strconv.Itoa(m.next)
}

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	order    []string

	AddFunc    func(ctx context.Context, account *domain.Account) error
	GetFunc    func(ctx context.Context, id string) (*domain.Account, error)
	UpdateFunc func(ctx context.Context, account *domain.Account) error
	RemoveFunc func(ctx context.Context, id string) error
	ListFunc   func(ctx context.Context) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (m *MockAccountRepository) Add(ctx context.Context, account *domain.Account) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.ID]; !ok {
		m.order = append(m.order, account.ID)
	}
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) Get(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.ID]; !ok {
		return domain.ErrAccountNotFound
	}
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) Remove(ctx context.Context, id string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(m.accounts, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	accounts := make([]*domain.Account, 0, len(m.order))
	for _, id := range m.order {
		accounts = append(accounts, m.accounts[id])
	}
	return accounts, nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]*domain.Category
	order      []string

	AddFunc    func(ctx context.Context, category *domain.Category) error
	GetFunc    func(ctx context.Context, id string) (*domain.Category, error)
	UpdateFunc func(ctx context.Context, category *domain.Category) error
	RemoveFunc func(ctx context.Context, id string) error
	ListFunc   func(ctx context.Context) ([]*domain.Category, error)
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[string]*domain.Category),
	}
}

func (m *MockCategoryRepository) Add(ctx context.Context, category *domain.Category) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, category)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[category.ID]; !ok {
		m.order = append(m.order, category.ID)
	}
	m.categories[category.ID] = category
	return nil
}

func (m *MockCategoryRepository) Get(ctx context.Context, id string) (*domain.Category, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if cat, ok := m.categories[id]; ok {
		return cat, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, category)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[category.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	m.categories[category.ID] = category
	return nil
}

func (m *MockCategoryRepository) Remove(ctx context.Context, id string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(m.categories, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	categories := make([]*domain.Category, 0, len(m.order))
	for _, id := range m.order {
		categories = append(categories, m.categories[id])
	}
	return categories, nil
}

// MockOperationRepository is a mock implementation of OperationRepository.
type MockOperationRepository struct {
	mu         sync.RWMutex
	operations map[string]*domain.Operation
	order      []string

	AddFunc             func(ctx context.Context, operation *domain.Operation) error
	GetFunc             func(ctx context.Context, id string) (*domain.Operation, error)
	RemoveFunc          func(ctx context.Context, id string) error
	ListFunc            func(ctx context.Context) ([]*domain.Operation, error)
	ListByAccountFunc   func(ctx context.Context, accountID string, from, to *time.Time) ([]*domain.Operation, error)
	CountByAccountFunc  func(ctx context.Context, accountID string) (int, error)
	CountByCategoryFunc func(ctx context.Context, categoryID string) (int, error)
}

func NewMockOperationRepository() *MockOperationRepository {
	return &MockOperationRepository{
		operations: make(map[string]*domain.Operation),
	}
}

func (m *MockOperationRepository) Add(ctx context.Context, operation *domain.Operation) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, operation)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.operations[operation.ID]; !ok {
		m.order = append(m.order, operation.ID)
	}
	m.operations[operation.ID] = operation
	return nil
}

func (m *MockOperationRepository) Get(ctx context.Context, id string) (*domain.Operation, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if op, ok := m.operations[id]; ok {
		return op, nil
	}
	return nil, domain.ErrOperationNotFound
}

func (m *MockOperationRepository) Remove(ctx context.Context, id string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.operations[id]; !ok {
		return domain.ErrOperationNotFound
	}
	delete(m.operations, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MockOperationRepository) List(ctx context.Context) ([]*domain.Operation, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	operations := make([]*domain.Operation, 0, len(m.order))
	for _, id := range m.order {
		operations = append(operations, m.operations[id])
	}
	return operations, nil
}

func (m *MockOperationRepository) ListByAccount(ctx context.Context, accountID string, from, to *time.Time) ([]*domain.Operation, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, from, to)
	}
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	var operations []*domain.Operation
	for _, op := range all {
		if op.AccountID == accountID && op.InRange(from, to) {
			operations = append(operations, op)
		}
	}
	return operations, nil
}

func (m *MockOperationRepository) CountByAccount(ctx context.Context, accountID string) (int, error) {
	if m.CountByAccountFunc != nil {
		return m.CountByAccountFunc(ctx, accountID)
	}
	operations, err := m.ListByAccount(ctx, accountID, nil, nil)
	if err != nil {
		return 0, err
	}
	return len(operations), nil
}

func (m *MockOperationRepository) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	if m.CountByCategoryFunc != nil {
		return m.CountByCategoryFunc(ctx, categoryID)
	}
	all, err := m.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, op := range all {
		if op.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}
