package http

import (
	"errors"
	"net/http"

	"greencoins-backend/internal/domain"
	"greencoins-backend/internal/logger"
	"greencoins-backend/internal/service"
)

type AccountHandler struct {
	ledger service.LedgerService
	recon  service.ReconciliationService
}

func NewAccountHandler(ledger service.LedgerService, recon service.ReconciliationService) *AccountHandler {
	return &AccountHandler{ledger: ledger, recon: recon}
}

// reconcileFirst runs the missing-credit repair for the account before a
// balance or history read. Failures are logged, never surfaced: a stale
// read beats an unavailable one.
func (h *AccountHandler) reconcileFirst(r *http.Request, accountID int64) {
	if _, err := h.recon.Reconcile(r.Context(), &accountID); err != nil {
		logger.Warn("Pre-read reconciliation failed", "account_id", accountID, "error", err)
	}
}

// CoinBalance handles GET /api/accounts/coin_balance?id=.
func (h *AccountHandler) CoinBalance(w http.ResponseWriter, r *http.Request) {
	accountID, ok := queryID(w, r, "id")
	if !ok {
		return
	}
	h.reconcileFirst(r, accountID)

	balance, err := h.ledger.GetBalance(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondMessage(w, http.StatusNotFound, "Account does not exist.")
			return
		}
		logger.Error("Unable to fetch coin balance", "account_id", accountID, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Database error. Unable to fetch coin balance.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"coin_balance": balance})
}

// CoinTransactions handles GET /api/accounts/coin_transactions?id=.
func (h *AccountHandler) CoinTransactions(w http.ResponseWriter, r *http.Request) {
	accountID, ok := queryID(w, r, "id")
	if !ok {
		return
	}
	h.reconcileFirst(r, accountID)

	entries, err := h.ledger.GetTransactions(r.Context(), accountID)
	if err != nil {
		logger.Error("Unable to fetch coin transactions", "account_id", accountID, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Database error. Unable to fetch coin transactions.")
		return
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"records": entries})
}
