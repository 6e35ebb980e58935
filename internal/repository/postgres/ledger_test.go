package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"greencoins-backend/internal/domain"
	"greencoins-backend/internal/repository/postgres"
)

func TestLedgerRepository_CreateEntry(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewLedgerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		entry := &domain.LedgerEntry{
			AccountID:     1,
			Amount:        30,
			Kind:          domain.EntryKindEarned,
			ReferenceID:   42,
			ReferenceType: domain.ReferenceRecycling,
			Description:   "Coins earned from recycling activity",
		}

		mock.ExpectQuery("INSERT INTO coin_transactions").
			WithArgs(entry.AccountID, entry.Amount, entry.Kind, entry.ReferenceID, entry.ReferenceType, entry.Description).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))

		err := repo.CreateEntry(ctx, entry)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), entry.ID)
	})

	t.Run("DuplicateReference", func(t *testing.T) {
		entry := &domain.LedgerEntry{
			AccountID:     1,
			Amount:        30,
			Kind:          domain.EntryKindEarned,
			ReferenceID:   42,
			ReferenceType: domain.ReferenceRecycling,
		}

		mock.ExpectQuery("INSERT INTO coin_transactions").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.CreateEntry(ctx, entry)
		assert.ErrorIs(t, err, domain.ErrDuplicateReference)
	})
}

func TestLedgerRepository_ReferenceExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewLedgerRepository(db)
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int64(42), domain.ReferenceRecycling).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.ReferenceExists(ctx, 42, domain.ReferenceRecycling)
		assert.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestLedgerRepository_ListByAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewLedgerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "account_id", "amount", "kind", "reference_id", "reference_type", "description", "created_at"}).
			AddRow(2, 1, -120, "spent", 9, "purchase", "Purchase of products", now).
			AddRow(1, 1, 30, "earned", 42, "recycling", "Coins earned from recycling activity", now.Add(-time.Hour))

		mock.ExpectQuery("SELECT (.+) FROM coin_transactions WHERE account_id").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		entries, err := repo.ListByAccount(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, int64(-120), entries[0].Amount)
		assert.Equal(t, domain.EntryKindEarned, entries[1].Kind)
	})
}
