package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"greencoins-backend/internal/domain"
	"greencoins-backend/internal/repository"
)

type accountRepository struct {
	db DBTX
}

func NewAccountRepository(db DBTX) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `SELECT id, name, email, coin_balance, created_at FROM accounts WHERE id = $1`
	var a domain.Account
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Name, &a.Email, &a.CoinBalance, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accountRepository) GetBalance(ctx context.Context, id int64) (int64, error) {
	var balance int64
	query := `SELECT coin_balance FROM accounts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("account %d: %w", id, domain.ErrNotFound)
	}
	return balance, err
}

func (r *accountRepository) GetBalanceForUpdate(ctx context.Context, id int64) (int64, error) {
	var balance int64
	query := `SELECT coin_balance FROM accounts WHERE id = $1 FOR UPDATE`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("account %d: %w", id, domain.ErrNotFound)
	}
	return balance, err
}

func (r *accountRepository) AddToBalance(ctx context.Context, id int64, delta int64) error {
	query := `UPDATE accounts SET coin_balance = coin_balance + $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, delta, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("account %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
