package repository

import (
	"context"

	"greencoins-backend/internal/domain"
)

type AccountRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetBalance(ctx context.Context, id int64) (int64, error)
	// GetBalanceForUpdate reads the balance under an exclusive row lock so
	// a check-then-write sequence is serialized against concurrent
	// credits/debits on the same account. Only meaningful inside a unit of
	// work.
	GetBalanceForUpdate(ctx context.Context, id int64) (int64, error)
	AddToBalance(ctx context.Context, id int64, delta int64) error
}

type LedgerRepository interface {
	// CreateEntry appends an immutable ledger entry. Returns
	// domain.ErrDuplicateReference if an entry already exists for the
	// entry's (reference_id, reference_type) pair.
	CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error
	ReferenceExists(ctx context.Context, refID int64, refType domain.ReferenceType) (bool, error)
	ListByAccount(ctx context.Context, accountID int64) ([]domain.LedgerEntry, error)
}

type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	// DecrementStock subtracts qty from the product's stock, refusing to
	// take the quantity negative.
	DecrementStock(ctx context.Context, id int64, qty int64) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	CreateItem(ctx context.Context, item *domain.OrderItem) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	ListByAccount(ctx context.Context, accountID int64) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus, notes string) error
}

type RecyclingRepository interface {
	Create(ctx context.Context, activity *domain.RecyclingActivity) error
	GetByID(ctx context.Context, id int64) (*domain.RecyclingActivity, error)
	ListByAccount(ctx context.Context, accountID int64) ([]domain.RecyclingActivity, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ActivityStatus, notes string) error
	UpdatePickup(ctx context.Context, req *domain.UpdatePickupRequest) error
	GetCategory(ctx context.Context, id int64) (*domain.RecyclingCategory, error)
	ListCategories(ctx context.Context) ([]domain.RecyclingCategory, error)
	// FindUnreconciled returns approved activities that have no ledger
	// entry with (reference_id = activity.id, reference_type = "recycling").
	// A nil accountID scans all accounts.
	FindUnreconciled(ctx context.Context, accountID *int64) ([]domain.RecyclingActivity, error)
}

// Repositories bundles every repository bound to the same database
// handle, either the shared pool or a single transaction.
type Repositories struct {
	Accounts  AccountRepository
	Ledger    LedgerRepository
	Products  ProductRepository
	Orders    OrderRepository
	Recycling RecyclingRepository
}

// UnitOfWork is the single transactional entry point. WithinTx runs fn
// against repositories bound to one transaction: any error (or panic)
// rolls the whole unit back, and the transaction commits only when fn
// returns nil.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repositories) error) error
}
