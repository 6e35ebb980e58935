package postgres

import (
	"context"
	"fmt"

	"greencoins-backend/internal/domain"
	"greencoins-backend/internal/repository"
)

type ledgerRepository struct {
	db DBTX
}

func NewLedgerRepository(db DBTX) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	query := `INSERT INTO coin_transactions (account_id, amount, kind, reference_id, reference_type, description)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		entry.AccountID, entry.Amount, entry.Kind, entry.ReferenceID, entry.ReferenceType, entry.Description,
	).Scan(&entry.ID, &entry.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("reference (%d, %s): %w", entry.ReferenceID, entry.ReferenceType, domain.ErrDuplicateReference)
	}
	return err
}

func (r *ledgerRepository) ReferenceExists(ctx context.Context, refID int64, refType domain.ReferenceType) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM coin_transactions WHERE reference_id = $1 AND reference_type = $2)`
	err := r.db.QueryRowContext(ctx, query, refID, refType).Scan(&exists)
	return exists, err
}

func (r *ledgerRepository) ListByAccount(ctx context.Context, accountID int64) ([]domain.LedgerEntry, error) {
	query := `SELECT id, account_id, amount, kind, reference_id, reference_type, COALESCE(description, ''), created_at
	          FROM coin_transactions WHERE account_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Amount, &e.Kind, &e.ReferenceID, &e.ReferenceType, &e.Description, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
