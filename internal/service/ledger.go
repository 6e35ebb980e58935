package service

import (
	"context"
	"fmt"

	"greencoins-backend/internal/domain"
	"greencoins-backend/internal/metrics"
	"greencoins-backend/internal/repository"
)

type ledgerService struct {
	accounts repository.AccountRepository
	ledger   repository.LedgerRepository
	uow      repository.UnitOfWork
}

func NewLedgerService(accounts repository.AccountRepository, ledger repository.LedgerRepository, uow repository.UnitOfWork) LedgerService {
	return &ledgerService{accounts: accounts, ledger: ledger, uow: uow}
}

func (s *ledgerService) Credit(ctx context.Context, accountID, amount int64, refID int64, refType domain.ReferenceType, description string) (*domain.LedgerEntry, error) {
	var entry *domain.LedgerEntry
	err := s.uow.WithinTx(ctx, func(r repository.Repositories) error {
		var err error
		entry, err = creditTx(ctx, r, accountID, amount, refID, refType, description)
		return err
	})
	if err != nil {
		return nil, err
	}
	observeEntry(entry)
	return entry, nil
}

func (s *ledgerService) Debit(ctx context.Context, accountID, amount int64, refID int64, refType domain.ReferenceType, description string) (*domain.LedgerEntry, error) {
	var entry *domain.LedgerEntry
	err := s.uow.WithinTx(ctx, func(r repository.Repositories) error {
		var err error
		entry, err = debitTx(ctx, r, accountID, amount, refID, refType, description)
		return err
	})
	if err != nil {
		return nil, err
	}
	observeEntry(entry)
	return entry, nil
}

func (s *ledgerService) GetBalance(ctx context.Context, accountID int64) (int64, error) {
	return s.accounts.GetBalance(ctx, accountID)
}

func (s *ledgerService) GetTransactions(ctx context.Context, accountID int64) ([]domain.LedgerEntry, error) {
	return s.ledger.ListByAccount(ctx, accountID)
}

// creditTx appends an earned entry and raises the cached balance inside
// the caller's transaction. The balance row is locked first so concurrent
// movements on the same account serialize.
func creditTx(ctx context.Context, r repository.Repositories, accountID, amount int64, refID int64, refType domain.ReferenceType, description string) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: credit amount must be positive, got %d", domain.ErrValidation, amount)
	}
	if _, err := r.Accounts.GetBalanceForUpdate(ctx, accountID); err != nil {
		return nil, err
	}
	entry := &domain.LedgerEntry{
		AccountID:     accountID,
		Amount:        amount,
		Kind:          domain.EntryKindEarned,
		ReferenceID:   refID,
		ReferenceType: refType,
		Description:   description,
	}
	if err := r.Ledger.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}
	if err := r.Accounts.AddToBalance(ctx, accountID, amount); err != nil {
		return nil, err
	}
	return entry, nil
}

// debitTx is the spend counterpart: check under lock, then append a
// negative entry and lower the balance. The check and the writes live in
// one transaction, so two concurrent purchases cannot both pass the check
// and overdraw the account.
func debitTx(ctx context.Context, r repository.Repositories, accountID, amount int64, refID int64, refType domain.ReferenceType, description string) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: debit amount must be positive, got %d", domain.ErrValidation, amount)
	}
	balance, err := r.Accounts.GetBalanceForUpdate(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if balance < amount {
		return nil, fmt.Errorf("%w: required %d, available %d", domain.ErrInsufficientFunds, amount, balance)
	}
	entry := &domain.LedgerEntry{
		AccountID:     accountID,
		Amount:        -amount,
		Kind:          domain.EntryKindSpent,
		ReferenceID:   refID,
		ReferenceType: refType,
		Description:   description,
	}
	if err := r.Ledger.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}
	if err := r.Accounts.AddToBalance(ctx, accountID, -amount); err != nil {
		return nil, err
	}
	return entry, nil
}

func observeEntry(entry *domain.LedgerEntry) {
	amount := entry.Amount
	if amount < 0 {
		amount = -amount
	}
	metrics.LedgerEntriesTotal.WithLabelValues(string(entry.Kind)).Inc()
	metrics.CoinsMovedTotal.WithLabelValues(string(entry.Kind)).Add(float64(amount))
}
