package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"greencoins-backend/internal/domain"
	"greencoins-backend/internal/repository"
)

// MockAccountRepo
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) GetBalance(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAccountRepo) GetBalanceForUpdate(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAccountRepo) AddToBalance(ctx context.Context, id int64, delta int64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

// MockLedgerRepo
type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockLedgerRepo) ReferenceExists(ctx context.Context, refID int64, refType domain.ReferenceType) (bool, error) {
	args := m.Called(ctx, refID, refType)
	return args.Bool(0), args.Error(1)
}
func (m *MockLedgerRepo) ListByAccount(ctx context.Context, accountID int64) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

// MockProductRepo
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) DecrementStock(ctx context.Context, id int64, qty int64) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepo) CreateItem(ctx context.Context, item *domain.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderRepo) ListItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderItem), args.Error(1)
}
func (m *MockOrderRepo) ListByAccount(ctx context.Context, accountID int64) ([]domain.Order, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus, notes string) error {
	args := m.Called(ctx, id, status, notes)
	return args.Error(0)
}

// MockRecyclingRepo
type MockRecyclingRepo struct {
	mock.Mock
}

func (m *MockRecyclingRepo) Create(ctx context.Context, activity *domain.RecyclingActivity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}
func (m *MockRecyclingRepo) GetByID(ctx context.Context, id int64) (*domain.RecyclingActivity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecyclingActivity), args.Error(1)
}
func (m *MockRecyclingRepo) ListByAccount(ctx context.Context, accountID int64) ([]domain.RecyclingActivity, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecyclingActivity), args.Error(1)
}
func (m *MockRecyclingRepo) UpdateStatus(ctx context.Context, id int64, status domain.ActivityStatus, notes string) error {
	args := m.Called(ctx, id, status, notes)
	return args.Error(0)
}
func (m *MockRecyclingRepo) UpdatePickup(ctx context.Context, req *domain.UpdatePickupRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRecyclingRepo) GetCategory(ctx context.Context, id int64) (*domain.RecyclingCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecyclingCategory), args.Error(1)
}
func (m *MockRecyclingRepo) ListCategories(ctx context.Context) ([]domain.RecyclingCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecyclingCategory), args.Error(1)
}
func (m *MockRecyclingRepo) FindUnreconciled(ctx context.Context, accountID *int64) ([]domain.RecyclingActivity, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecyclingActivity), args.Error(1)
}

// mockRepos bundles one mock per repository, pre-wired into a
// repository.Repositories value.
type mockRepos struct {
	accounts  *MockAccountRepo
	ledger    *MockLedgerRepo
	products  *MockProductRepo
	orders    *MockOrderRepo
	recycling *MockRecyclingRepo
}

func newMockRepos() *mockRepos {
	return &mockRepos{
		accounts:  new(MockAccountRepo),
		ledger:    new(MockLedgerRepo),
		products:  new(MockProductRepo),
		orders:    new(MockOrderRepo),
		recycling: new(MockRecyclingRepo),
	}
}

func (m *mockRepos) bundle() repository.Repositories {
	return repository.Repositories{
		Accounts:  m.accounts,
		Ledger:    m.ledger,
		Products:  m.products,
		Orders:    m.orders,
		Recycling: m.recycling,
	}
}

// fakeUnitOfWork hands the callback the same mock repositories the
// service sees outside the transaction. It cannot roll anything back;
// tests assert on the error path instead.
type fakeUnitOfWork struct {
	repos repository.Repositories
	calls int
}

func (f *fakeUnitOfWork) WithinTx(ctx context.Context, fn func(r repository.Repositories) error) error {
	f.calls++
	return fn(f.repos)
}

// stubReconciler satisfies service.ReconciliationService for tests that
// only need the pre-read hook to exist.
type stubReconciler struct {
	report *domain.ReconciliationReport
	err    error
	calls  int
}

func (s *stubReconciler) Reconcile(ctx context.Context, accountID *int64) (*domain.ReconciliationReport, error) {
	s.calls++
	if s.report == nil {
		s.report = &domain.ReconciliationReport{}
	}
	return s.report, s.err
}
