package http

import (
	"net/http"
	"strconv"
	"time"

	"greencoins-backend/internal/logger"
	"greencoins-backend/internal/service"
)

type SyncHandler struct {
	recon service.ReconciliationService
}

func NewSyncHandler(recon service.ReconciliationService) *SyncHandler {
	return &SyncHandler{recon: recon}
}

// SyncTransactions handles POST /api/admin/sync_transactions. An
// optional account_id query parameter narrows the scan to one account.
// Per-activity repair failures are reported in the body, not as an
// HTTP error; only a failed scan is a 500.
func (h *SyncHandler) SyncTransactions(w http.ResponseWriter, r *http.Request) {
	var accountID *int64
	if raw := r.URL.Query().Get("account_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			respondMessage(w, http.StatusBadRequest, "Missing or invalid account_id parameter.")
			return
		}
		accountID = &id
	}

	report, err := h.recon.Reconcile(r.Context(), accountID)
	if err != nil {
		logger.Error("Transaction sync failed", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Database error. Unable to check for missing transactions.")
		return
	}

	message := "Transaction sync completed"
	if report.FixedCount == 0 && report.ErrorCount == 0 {
		message = "No missing transactions found"
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"message":            message,
		"fixed_count":        report.FixedCount,
		"error_count":        report.ErrorCount,
		"fixed_transactions": report.Fixed,
		"errors":             report.Errors,
		"timestamp":          time.Now().UTC().Format(time.RFC3339),
	})
}
