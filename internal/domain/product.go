package domain

import "time"

type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CoinPrice     int64     `json:"coin_price"`
	CategoryID    int64     `json:"category_id"`
	StockQuantity int64     `json:"stock_quantity"`
	Image         string    `json:"image"`
	IsFeatured    bool      `json:"is_featured"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
