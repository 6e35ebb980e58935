package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"greencoins-backend/internal/domain"
	"greencoins-backend/internal/repository"
)

type recyclingRepository struct {
	db DBTX
}

func NewRecyclingRepository(db DBTX) repository.RecyclingRepository {
	return &recyclingRepository{db: db}
}

func (r *recyclingRepository) Create(ctx context.Context, activity *domain.RecyclingActivity) error {
	query := `INSERT INTO recycling_activities
	          (account_id, category_id, quantity, coins_earned, status, proof_image, notes,
	           pickup_date, pickup_time_slot, pickup_address, pickup_status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		activity.AccountID, activity.CategoryID, activity.Quantity, activity.CoinsEarned,
		activity.Status, activity.ProofImage, activity.Notes,
		activity.PickupDate, activity.PickupTimeSlot, activity.PickupAddress, activity.PickupStatus,
	).Scan(&activity.ID, &activity.CreatedAt, &activity.UpdatedAt)
}

func (r *recyclingRepository) GetByID(ctx context.Context, id int64) (*domain.RecyclingActivity, error) {
	query := `SELECT ra.id, ra.account_id, ra.category_id, COALESCE(rc.name, ''), ra.quantity,
	                 ra.coins_earned, ra.status, COALESCE(ra.proof_image, ''), COALESCE(ra.notes, ''),
	                 ra.pickup_date, ra.pickup_time_slot, ra.pickup_address, ra.pickup_status,
	                 ra.created_at, ra.updated_at
	          FROM recycling_activities ra
	          LEFT JOIN recycling_categories rc ON ra.category_id = rc.id
	          WHERE ra.id = $1`
	a, err := scanActivity(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("recycling activity %d: %w", id, domain.ErrNotFound)
	}
	return a, err
}

func (r *recyclingRepository) ListByAccount(ctx context.Context, accountID int64) ([]domain.RecyclingActivity, error) {
	query := `SELECT ra.id, ra.account_id, ra.category_id, COALESCE(rc.name, ''), ra.quantity,
	                 ra.coins_earned, ra.status, COALESCE(ra.proof_image, ''), COALESCE(ra.notes, ''),
	                 ra.pickup_date, ra.pickup_time_slot, ra.pickup_address, ra.pickup_status,
	                 ra.created_at, ra.updated_at
	          FROM recycling_activities ra
	          LEFT JOIN recycling_categories rc ON ra.category_id = rc.id
	          WHERE ra.account_id = $1 ORDER BY ra.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []domain.RecyclingActivity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *a)
	}
	return activities, rows.Err()
}

func (r *recyclingRepository) UpdateStatus(ctx context.Context, id int64, status domain.ActivityStatus, notes string) error {
	query := `UPDATE recycling_activities SET status = $1, notes = $2, updated_at = NOW() WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, status, notes, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("recycling activity %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// UpdatePickup touches only the pickup sub-state. Nil pointers keep the
// stored value.
func (r *recyclingRepository) UpdatePickup(ctx context.Context, req *domain.UpdatePickupRequest) error {
	query := `UPDATE recycling_activities
	          SET pickup_status = $1,
	              pickup_date = COALESCE($2, pickup_date),
	              pickup_time_slot = COALESCE($3, pickup_time_slot),
	              pickup_address = COALESCE($4, pickup_address),
	              updated_at = NOW()
	          WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query,
		req.PickupStatus, req.PickupDate, req.PickupTimeSlot, req.PickupAddress, req.ActivityID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("recycling activity %d: %w", req.ActivityID, domain.ErrNotFound)
	}
	return nil
}

func (r *recyclingRepository) GetCategory(ctx context.Context, id int64) (*domain.RecyclingCategory, error) {
	query := `SELECT id, name, COALESCE(description, ''), coin_value, COALESCE(image, ''), created_at
	          FROM recycling_categories WHERE id = $1`
	var c domain.RecyclingCategory
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.CoinValue, &c.Image, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("category %d: %w", id, domain.ErrInvalidCategory)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *recyclingRepository) ListCategories(ctx context.Context) ([]domain.RecyclingCategory, error) {
	query := `SELECT id, name, COALESCE(description, ''), coin_value, COALESCE(image, ''), created_at
	          FROM recycling_categories ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.RecyclingCategory
	for rows.Next() {
		var c domain.RecyclingCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CoinValue, &c.Image, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *recyclingRepository) FindUnreconciled(ctx context.Context, accountID *int64) ([]domain.RecyclingActivity, error) {
	query := `SELECT ra.id, ra.account_id, ra.coins_earned, ra.created_at
	          FROM recycling_activities ra
	          WHERE ra.status = 'approved'
	          AND NOT EXISTS (
	              SELECT 1 FROM coin_transactions ct
	              WHERE ct.reference_id = ra.id
	              AND ct.reference_type = 'recycling'
	          )
	          AND ($1::bigint IS NULL OR ra.account_id = $1)
	          ORDER BY ra.id`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []domain.RecyclingActivity
	for rows.Next() {
		a := domain.RecyclingActivity{Status: domain.ActivityStatusApproved}
		if err := rows.Scan(&a.ID, &a.AccountID, &a.CoinsEarned, &a.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*domain.RecyclingActivity, error) {
	var a domain.RecyclingActivity
	var pickupDate, pickupSlot, pickupAddr sql.NullString
	err := row.Scan(
		&a.ID, &a.AccountID, &a.CategoryID, &a.CategoryName, &a.Quantity,
		&a.CoinsEarned, &a.Status, &a.ProofImage, &a.Notes,
		&pickupDate, &pickupSlot, &pickupAddr, &a.PickupStatus,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if pickupDate.Valid {
		a.PickupDate = &pickupDate.String
	}
	if pickupSlot.Valid {
		a.PickupTimeSlot = &pickupSlot.String
	}
	if pickupAddr.Valid {
		a.PickupAddress = &pickupAddr.String
	}
	return &a, nil
}
