package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a coin purchase of one or more products. TotalCoinAmount is
// computed once at creation from the item snapshots and never recomputed.
type Order struct {
	ID              int64       `json:"id"`
	AccountID       int64       `json:"account_id"`
	TotalCoinAmount int64       `json:"total_coin_amount"`
	Status          OrderStatus `json:"status"`
	ShippingAddress string      `json:"shipping_address"`
	ContactPhone    string      `json:"contact_phone"`
	Notes           string      `json:"notes"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Items           []OrderItem `json:"items,omitempty"`
}

// OrderItem captures CoinPrice at order time; it is a point-in-time
// snapshot, not a live reference to the product row.
type OrderItem struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"order_id"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Quantity    int64  `json:"quantity"`
	CoinPrice   int64  `json:"coin_price"`
}

// OrderLine is a single (product, quantity) pair in an order request.
type OrderLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type CreateOrderRequest struct {
	AccountID       int64       `json:"account_id"`
	Items           []OrderLine `json:"items"`
	ShippingAddress string      `json:"shipping_address"`
	ContactPhone    string      `json:"contact_phone"`
	Notes           string      `json:"notes"`
}
