package service

import (
	"context"
	"fmt"
	"strings"

	"greencoins-backend/internal/domain"
	"greencoins-backend/internal/logger"
	"greencoins-backend/internal/metrics"
	"greencoins-backend/internal/repository"
)

type orderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	accounts repository.AccountRepository
	uow      repository.UnitOfWork
}

func NewOrderService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	accounts repository.AccountRepository,
	uow repository.UnitOfWork,
) OrderService {
	return &orderService{orders: orders, products: products, accounts: accounts, uow: uow}
}

// CreateOrder validates the cart against live products and the account
// balance, then persists the order header, its item snapshots, the stock
// decrements and the ledger debit as one unit of work. This path touches
// four pieces of state that must move together or not at all.
func (s *orderService) CreateOrder(ctx context.Context, req *domain.CreateOrderRequest) (*domain.Order, error) {
	if err := validateOrderRequest(req); err != nil {
		return nil, err
	}

	order := &domain.Order{
		AccountID:       req.AccountID,
		Status:          domain.OrderStatusPending,
		ShippingAddress: req.ShippingAddress,
		ContactPhone:    req.ContactPhone,
		Notes:           req.Notes,
	}

	var total int64
	for _, line := range req.Items {
		product, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product.StockQuantity < line.Quantity {
			return nil, &domain.OutOfStockError{
				ProductID: product.ID,
				Name:      product.Name,
				Requested: line.Quantity,
				Available: product.StockQuantity,
			}
		}
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			CoinPrice:   product.CoinPrice,
		})
		total += product.CoinPrice * line.Quantity
	}
	order.TotalCoinAmount = total

	// Pre-check so an obviously unaffordable order never opens a
	// transaction. The authoritative check happens again under lock in
	// debitTx.
	balance, err := s.accounts.GetBalance(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if balance < total {
		return nil, fmt.Errorf("%w: required %d, available %d", domain.ErrInsufficientFunds, total, balance)
	}

	var debit *domain.LedgerEntry
	err = s.uow.WithinTx(ctx, func(r repository.Repositories) error {
		if err := r.Orders.Create(ctx, order); err != nil {
			return err
		}
		for i := range order.Items {
			order.Items[i].OrderID = order.ID
			if err := r.Orders.CreateItem(ctx, &order.Items[i]); err != nil {
				return err
			}
			if err := r.Products.DecrementStock(ctx, order.Items[i].ProductID, order.Items[i].Quantity); err != nil {
				return err
			}
		}
		var err error
		debit, err = debitTx(ctx, r, order.AccountID, total, order.ID, domain.ReferencePurchase, "Purchase of products")
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	observeEntry(debit)
	logger.Info("Order created", "order_id", order.ID, "account_id", order.AccountID, "total_coin_amount", total)
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.orders.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, accountID int64) ([]domain.Order, error) {
	return s.orders.ListByAccount(ctx, accountID)
}

// UpdateStatus is a plain field update; order status changes have no
// ledger effect.
func (s *orderService) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus, notes string) error {
	switch status {
	case domain.OrderStatusPending, domain.OrderStatusShipped, domain.OrderStatusDelivered, domain.OrderStatusCancelled:
	default:
		return fmt.Errorf("%w: unknown order status %q", domain.ErrValidation, status)
	}
	return s.orders.UpdateStatus(ctx, id, status, notes)
}

func validateOrderRequest(req *domain.CreateOrderRequest) error {
	if req.AccountID <= 0 {
		return fmt.Errorf("%w: account_id is required", domain.ErrValidation)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: order must contain at least one item", domain.ErrValidation)
	}
	if strings.TrimSpace(req.ShippingAddress) == "" {
		return fmt.Errorf("%w: shipping_address is required", domain.ErrValidation)
	}
	if strings.TrimSpace(req.ContactPhone) == "" {
		return fmt.Errorf("%w: contact_phone is required", domain.ErrValidation)
	}
	for _, line := range req.Items {
		if line.ProductID <= 0 || line.Quantity <= 0 {
			return fmt.Errorf("%w: every item needs a product_id and a positive quantity", domain.ErrValidation)
		}
	}
	return nil
}
