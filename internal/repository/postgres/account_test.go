package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"greencoins-backend/internal/domain"
	"greencoins-backend/internal/repository/postgres"
)

func TestAccountRepository_GetBalanceForUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewAccountRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT coin_balance FROM accounts WHERE id = (.+) FOR UPDATE").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"coin_balance"}).AddRow(250))

		balance, err := repo.GetBalanceForUpdate(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(250), balance)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT coin_balance FROM accounts WHERE id = (.+) FOR UPDATE").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"coin_balance"}))

		_, err := repo.GetBalanceForUpdate(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAccountRepository_AddToBalance(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewAccountRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE accounts SET coin_balance = coin_balance").
			WithArgs(int64(-120), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AddToBalance(ctx, 1, -120)
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE accounts SET coin_balance = coin_balance").
			WithArgs(int64(10), int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.AddToBalance(ctx, 99, 10)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
