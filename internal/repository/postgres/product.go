package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"greencoins-backend/internal/domain"
	"greencoins-backend/internal/repository"
)

type productRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT id, name, COALESCE(description, ''), coin_price, category_id, stock_quantity,
	                 COALESCE(image, ''), is_featured, created_at, updated_at
	          FROM products WHERE id = $1`
	var p domain.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.CoinPrice, &p.CategoryID, &p.StockQuantity,
		&p.Image, &p.IsFeatured, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DecrementStock guards against going negative in the statement itself;
// zero rows affected means the stock check raced and lost.
func (r *productRepository) DecrementStock(ctx context.Context, id int64, qty int64) error {
	query := `UPDATE products SET stock_quantity = stock_quantity - $1, updated_at = NOW()
	          WHERE id = $2 AND stock_quantity >= $1`
	res, err := r.db.ExecContext(ctx, query, qty, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return &domain.OutOfStockError{ProductID: id, Requested: qty}
	}
	return nil
}
