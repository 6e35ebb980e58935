package service

import (
	"context"

	"greencoins-backend/internal/domain"
)

type LedgerService interface {
	// Credit appends an earned entry and raises the cached balance in one
	// atomic unit. Fails with domain.ErrDuplicateReference if the
	// (refID, refType) pair already has an entry.
	Credit(ctx context.Context, accountID, amount int64, refID int64, refType domain.ReferenceType, description string) (*domain.LedgerEntry, error)
	// Debit re-checks the balance under lock, then appends a spent entry
	// and lowers the cached balance in one atomic unit. Fails with
	// domain.ErrInsufficientFunds without mutating anything.
	Debit(ctx context.Context, accountID, amount int64, refID int64, refType domain.ReferenceType, description string) (*domain.LedgerEntry, error)
	GetBalance(ctx context.Context, accountID int64) (int64, error)
	GetTransactions(ctx context.Context, accountID int64) ([]domain.LedgerEntry, error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, req *domain.CreateOrderRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, accountID int64) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus, notes string) error
}

type RecyclingService interface {
	Submit(ctx context.Context, req *domain.SubmitActivityRequest) (*domain.RecyclingActivity, error)
	GetActivity(ctx context.Context, id int64) (*domain.RecyclingActivity, error)
	ListActivities(ctx context.Context, accountID int64) ([]domain.RecyclingActivity, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ActivityStatus, notes string) error
	UpdatePickup(ctx context.Context, req *domain.UpdatePickupRequest) error
	ListCategories(ctx context.Context) ([]domain.RecyclingCategory, error)
}

type ReconciliationService interface {
	// Reconcile repairs approved activities whose ledger credit never
	// landed. A nil accountID covers all accounts. Safe to invoke
	// repeatedly and concurrently.
	Reconcile(ctx context.Context, accountID *int64) (*domain.ReconciliationReport, error)
}
