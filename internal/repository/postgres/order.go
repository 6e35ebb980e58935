package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"greencoins-backend/internal/domain"
	"greencoins-backend/internal/repository"
)

type orderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	query := `INSERT INTO orders (account_id, total_coin_amount, status, shipping_address, contact_phone, notes)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		order.AccountID, order.TotalCoinAmount, order.Status, order.ShippingAddress, order.ContactPhone, order.Notes,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
}

func (r *orderRepository) CreateItem(ctx context.Context, item *domain.OrderItem) error {
	query := `INSERT INTO order_items (order_id, product_id, quantity, coin_price)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		item.OrderID, item.ProductID, item.Quantity, item.CoinPrice,
	).Scan(&item.ID)
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `SELECT id, account_id, total_coin_amount, status, shipping_address, contact_phone,
	                 COALESCE(notes, ''), created_at, updated_at
	          FROM orders WHERE id = $1`
	var o domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.AccountID, &o.TotalCoinAmount, &o.Status, &o.ShippingAddress, &o.ContactPhone,
		&o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) ListItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	query := `SELECT oi.id, oi.order_id, oi.product_id, COALESCE(p.name, ''), oi.quantity, oi.coin_price
	          FROM order_items oi
	          LEFT JOIN products p ON oi.product_id = p.id
	          WHERE oi.order_id = $1 ORDER BY oi.id`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.CoinPrice); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *orderRepository) ListByAccount(ctx context.Context, accountID int64) ([]domain.Order, error) {
	query := `SELECT id, account_id, total_coin_amount, status, shipping_address, contact_phone,
	                 COALESCE(notes, ''), created_at, updated_at
	          FROM orders WHERE account_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.AccountID, &o.TotalCoinAmount, &o.Status, &o.ShippingAddress,
			&o.ContactPhone, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus, notes string) error {
	query := `UPDATE orders SET status = $1, notes = $2, updated_at = NOW() WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, status, notes, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("order %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
