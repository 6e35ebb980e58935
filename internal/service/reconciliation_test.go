package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"greencoins-backend/internal/domain"
	"greencoins-backend/internal/service"
)

func TestReconciliationService_Reconcile(t *testing.T) {
	ctx := context.Background()

	unreconciled := func() []domain.RecyclingActivity {
		return []domain.RecyclingActivity{
			{ID: 42, AccountID: 1, CoinsEarned: 30, Status: domain.ActivityStatusApproved},
		}
	}

	t.Run("RepairsMissingCredit", func(t *testing.T) {
		repos := newMockRepos()
		uow := &fakeUnitOfWork{repos: repos.bundle()}
		svc := service.NewReconciliationService(repos.recycling, uow)

		repos.recycling.On("FindUnreconciled", ctx, (*int64)(nil)).Return(unreconciled(), nil)
		repos.accounts.On("GetBalanceForUpdate", ctx, int64(1)).Return(int64(0), nil)
		repos.ledger.On("CreateEntry", ctx, mock.MatchedBy(func(e *domain.LedgerEntry) bool {
			return e.Amount == 30 && e.ReferenceID == 42 && e.ReferenceType == domain.ReferenceRecycling
		})).Return(nil)
		repos.accounts.On("AddToBalance", ctx, int64(1), int64(30)).Return(nil)
		repos.accounts.On("GetBalance", ctx, int64(1)).Return(int64(30), nil)

		report, err := svc.Reconcile(ctx, nil)
		assert.NoError(t, err)
		assert.Equal(t, 1, report.FixedCount)
		assert.Equal(t, 0, report.ErrorCount)
		assert.Equal(t, int64(42), report.Fixed[0].ActivityID)
		assert.Equal(t, int64(30), report.Fixed[0].UpdatedBalance)
	})

	t.Run("DuplicateIsNoOpSuccess", func(t *testing.T) {
		repos := newMockRepos()
		uow := &fakeUnitOfWork{repos: repos.bundle()}
		svc := service.NewReconciliationService(repos.recycling, uow)

		repos.recycling.On("FindUnreconciled", ctx, (*int64)(nil)).Return(unreconciled(), nil)
		repos.accounts.On("GetBalanceForUpdate", ctx, int64(1)).Return(int64(0), nil)
		repos.ledger.On("CreateEntry", ctx, mock.AnythingOfType("*domain.LedgerEntry")).
			Return(domain.ErrDuplicateReference)

		report, err := svc.Reconcile(ctx, nil)
		assert.NoError(t, err)
		assert.Equal(t, 0, report.FixedCount)
		assert.Equal(t, 0, report.ErrorCount)
		repos.accounts.AssertNotCalled(t, "AddToBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RepairFailureIsReportedNotFatal", func(t *testing.T) {
		repos := newMockRepos()
		uow := &fakeUnitOfWork{repos: repos.bundle()}
		svc := service.NewReconciliationService(repos.recycling, uow)

		repos.recycling.On("FindUnreconciled", ctx, (*int64)(nil)).Return(unreconciled(), nil)
		repos.accounts.On("GetBalanceForUpdate", ctx, int64(1)).Return(int64(0), assert.AnError)

		report, err := svc.Reconcile(ctx, nil)
		assert.NoError(t, err)
		assert.Equal(t, 0, report.FixedCount)
		assert.Equal(t, 1, report.ErrorCount)
		assert.Equal(t, int64(42), report.Errors[0].ActivityID)
	})

	t.Run("ScanFailureIsFatal", func(t *testing.T) {
		repos := newMockRepos()
		uow := &fakeUnitOfWork{repos: repos.bundle()}
		svc := service.NewReconciliationService(repos.recycling, uow)

		repos.recycling.On("FindUnreconciled", ctx, (*int64)(nil)).Return(nil, assert.AnError)

		report, err := svc.Reconcile(ctx, nil)
		assert.Error(t, err)
		assert.Nil(t, report)
	})

	t.Run("NothingToRepair", func(t *testing.T) {
		repos := newMockRepos()
		uow := &fakeUnitOfWork{repos: repos.bundle()}
		svc := service.NewReconciliationService(repos.recycling, uow)

		accountID := int64(1)
		repos.recycling.On("FindUnreconciled", ctx, &accountID).Return([]domain.RecyclingActivity{}, nil)

		report, err := svc.Reconcile(ctx, &accountID)
		assert.NoError(t, err)
		assert.Equal(t, 0, report.FixedCount)
		assert.Equal(t, 0, report.ErrorCount)
		assert.NotNil(t, report.Fixed)
		assert.NotNil(t, report.Errors)
		assert.Zero(t, uow.calls)
	})
}
