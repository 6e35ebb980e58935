package service

import (
	"context"
	"fmt"

	"greencoins-backend/internal/domain"
	"greencoins-backend/internal/logger"
	"greencoins-backend/internal/repository"
)

type recyclingService struct {
	recycling  repository.RecyclingRepository
	uow        repository.UnitOfWork
	reconciler ReconciliationService
}

func NewRecyclingService(recycling repository.RecyclingRepository, uow repository.UnitOfWork, reconciler ReconciliationService) RecyclingService {
	return &recyclingService{recycling: recycling, uow: uow, reconciler: reconciler}
}

// Submit fixes coins_earned from the category's coin_value at submission
// time; it is never recalculated afterwards.
func (s *recyclingService) Submit(ctx context.Context, req *domain.SubmitActivityRequest) (*domain.RecyclingActivity, error) {
	if req.AccountID <= 0 || req.CategoryID <= 0 {
		return nil, fmt.Errorf("%w: account_id and category_id are required", domain.ErrValidation)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}

	category, err := s.recycling.GetCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	activity := &domain.RecyclingActivity{
		AccountID:    req.AccountID,
		CategoryID:   req.CategoryID,
		CategoryName: category.Name,
		Quantity:     req.Quantity,
		CoinsEarned:  category.CoinValue * req.Quantity,
		Status:       domain.ActivityStatusPending,
		ProofImage:   req.ProofImage,
		Notes:        req.Notes,
		PickupStatus: domain.PickupStatusNotRequired,
	}
	if req.PickupDate != "" {
		activity.PickupStatus = domain.PickupStatusScheduled
		activity.PickupDate = &req.PickupDate
		if req.PickupTimeSlot != "" {
			activity.PickupTimeSlot = &req.PickupTimeSlot
		}
		if req.PickupAddress != "" {
			activity.PickupAddress = &req.PickupAddress
		}
	}

	if err := s.recycling.Create(ctx, activity); err != nil {
		return nil, err
	}
	logger.Info("Recycling activity submitted",
		"activity_id", activity.ID, "account_id", activity.AccountID,
		"category", category.Name, "coins_earned", activity.CoinsEarned)
	return activity, nil
}

func (s *recyclingService) GetActivity(ctx context.Context, id int64) (*domain.RecyclingActivity, error) {
	return s.recycling.GetByID(ctx, id)
}

// ListActivities repairs any missing credits for the account before
// reading, so the listing reflects silently-fixed gaps.
func (s *recyclingService) ListActivities(ctx context.Context, accountID int64) ([]domain.RecyclingActivity, error) {
	if _, err := s.reconciler.Reconcile(ctx, &accountID); err != nil {
		logger.Warn("Pre-read reconciliation failed", "account_id", accountID, "error", err)
	}
	return s.recycling.ListByAccount(ctx, accountID)
}

// UpdateStatus drives the pending -> approved/rejected state machine.
// Approval and its ledger credit commit together: if the credit fails
// (including a DuplicateReference lost race against reconciliation), the
// status update rolls back with it, so status and ledger never diverge.
func (s *recyclingService) UpdateStatus(ctx context.Context, id int64, status domain.ActivityStatus, notes string) error {
	if status != domain.ActivityStatusApproved && status != domain.ActivityStatusRejected {
		return fmt.Errorf("%w: status must be approved or rejected, got %q", domain.ErrValidation, status)
	}

	activity, err := s.recycling.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if activity.Status == domain.ActivityStatusApproved {
		return domain.ErrAlreadyApproved
	}
	if activity.Status == domain.ActivityStatusRejected {
		return fmt.Errorf("%w: activity %d is already rejected", domain.ErrValidation, id)
	}
	if notes == "" {
		notes = activity.Notes
	}

	if status == domain.ActivityStatusRejected {
		return s.recycling.UpdateStatus(ctx, id, status, notes)
	}

	var credit *domain.LedgerEntry
	err = s.uow.WithinTx(ctx, func(r repository.Repositories) error {
		if err := r.Recycling.UpdateStatus(ctx, id, domain.ActivityStatusApproved, notes); err != nil {
			return err
		}
		var err error
		credit, err = creditTx(ctx, r, activity.AccountID, activity.CoinsEarned,
			activity.ID, domain.ReferenceRecycling, "Coins earned from recycling activity")
		return err
	})
	if err != nil {
		return err
	}
	observeEntry(credit)
	logger.Info("Recycling activity approved",
		"activity_id", id, "account_id", activity.AccountID, "coins_earned", activity.CoinsEarned)
	return nil
}

// UpdatePickup mutates the pickup sub-state only; it never interacts with
// the approval state machine or the ledger.
func (s *recyclingService) UpdatePickup(ctx context.Context, req *domain.UpdatePickupRequest) error {
	switch req.PickupStatus {
	case domain.PickupStatusNotRequired, domain.PickupStatusScheduled, domain.PickupStatusCollected, domain.PickupStatusCancelled:
	default:
		return fmt.Errorf("%w: unknown pickup status %q", domain.ErrValidation, req.PickupStatus)
	}
	if _, err := s.recycling.GetByID(ctx, req.ActivityID); err != nil {
		return err
	}
	return s.recycling.UpdatePickup(ctx, req)
}

func (s *recyclingService) ListCategories(ctx context.Context) ([]domain.RecyclingCategory, error) {
	return s.recycling.ListCategories(ctx)
}
