package service

import (
	"context"
	"errors"

	"greencoins-backend/internal/domain"
	"greencoins-backend/internal/logger"
	"greencoins-backend/internal/metrics"
	"greencoins-backend/internal/repository"
)

type reconciliationService struct {
	recycling repository.RecyclingRepository
	uow       repository.UnitOfWork
}

func NewReconciliationService(recycling repository.RecyclingRepository, uow repository.UnitOfWork) ReconciliationService {
	return &reconciliationService{recycling: recycling, uow: uow}
}

// Reconcile finds approved activities whose ledger credit never landed
// and recreates each missing entry in its own unit of work, through the
// same credit path a live approval uses. A DuplicateReference from a
// concurrent writer means the gap is already closed and counts as a
// no-op success. Running the pass twice with no new approvals yields
// fixed_count = 0 on the second run.
func (s *reconciliationService) Reconcile(ctx context.Context, accountID *int64) (*domain.ReconciliationReport, error) {
	metrics.ReconciliationRunsTotal.Inc()

	activities, err := s.recycling.FindUnreconciled(ctx, accountID)
	if err != nil {
		return nil, err
	}

	report := &domain.ReconciliationReport{
		Fixed:  []domain.RepairedTransaction{},
		Errors: []domain.ReconciliationError{},
	}
	for _, activity := range activities {
		var balance int64
		var entry *domain.LedgerEntry
		err := s.uow.WithinTx(ctx, func(r repository.Repositories) error {
			var err error
			entry, err = creditTx(ctx, r, activity.AccountID, activity.CoinsEarned,
				activity.ID, domain.ReferenceRecycling, "Coins earned from recycling activity (auto-sync)")
			if err != nil {
				return err
			}
			balance, err = r.Accounts.GetBalance(ctx, activity.AccountID)
			return err
		})
		if errors.Is(err, domain.ErrDuplicateReference) {
			// A live approval or an overlapping run got there first.
			continue
		}
		if err != nil {
			logger.Error("Failed to repair missing coin transaction",
				"activity_id", activity.ID, "account_id", activity.AccountID, "error", err)
			metrics.ReconciliationErrorsTotal.Inc()
			report.Errors = append(report.Errors, domain.ReconciliationError{
				ActivityID: activity.ID,
				Message:    err.Error(),
			})
			continue
		}
		metrics.ReconciliationRepairsTotal.Inc()
		observeEntry(entry)
		report.Fixed = append(report.Fixed, domain.RepairedTransaction{
			ActivityID:     activity.ID,
			AccountID:      activity.AccountID,
			CoinsEarned:    activity.CoinsEarned,
			UpdatedBalance: balance,
		})
	}
	report.FixedCount = len(report.Fixed)
	report.ErrorCount = len(report.Errors)

	if report.FixedCount > 0 || report.ErrorCount > 0 {
		logger.Info("Transaction sync completed", "fixed", report.FixedCount, "errors", report.ErrorCount)
	}
	return report, nil
}
