package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"greencoins-backend/internal/domain"
	"greencoins-backend/internal/logger"
	"greencoins-backend/internal/service"
)

type RecyclingHandler struct {
	recycling service.RecyclingService
}

func NewRecyclingHandler(recycling service.RecyclingService) *RecyclingHandler {
	return &RecyclingHandler{recycling: recycling}
}

// Submit handles POST /api/recycling/submit.
func (h *RecyclingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.SubmitActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Unable to submit recycling activity. Data is incomplete.")
		return
	}

	activity, err := h.recycling.Submit(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			respondMessage(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrInvalidCategory):
			respondMessage(w, http.StatusBadRequest, "Invalid category.")
		default:
			logger.Error("Unable to submit recycling activity", "error", err)
			respondMessage(w, http.StatusServiceUnavailable, "Unable to submit recycling activity.")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message":      "Recycling activity was submitted.",
		"id":           activity.ID,
		"coins_earned": activity.CoinsEarned,
	})
}

// UpdateStatus handles POST /api/recycling/update_status, the
// approval/rejection transition. Approving an already-approved activity
// is a 400, not a second credit.
func (h *RecyclingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     int64                 `json:"id"`
		Status domain.ActivityStatus `json:"status"`
		Notes  string                `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == 0 || req.Status == "" {
		respondMessage(w, http.StatusBadRequest, "Unable to update recycling activity status. Data is incomplete.")
		return
	}

	if err := h.recycling.UpdateStatus(r.Context(), req.ID, req.Status, req.Notes); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyApproved):
			respondMessage(w, http.StatusBadRequest, "Recycling activity is already approved.")
		case errors.Is(err, domain.ErrDuplicateReference):
			// A reconciliation pass credited this activity first; the
			// status update was rolled back with the failed credit.
			respondMessage(w, http.StatusBadRequest, "Coins for this activity were already credited.")
		case errors.Is(err, domain.ErrValidation):
			respondMessage(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			respondMessage(w, http.StatusNotFound, "Recycling activity does not exist.")
		default:
			logger.Error("Unable to update recycling activity status", "activity_id", req.ID, "error", err)
			respondMessage(w, http.StatusServiceUnavailable, "Unable to update recycling activity status.")
		}
		return
	}
	respondMessage(w, http.StatusOK, "Recycling activity status was updated.")
}

// UpdatePickupStatus handles POST /api/recycling/update_pickup_status.
func (h *RecyclingHandler) UpdatePickupStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdatePickupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ActivityID == 0 || req.PickupStatus == "" {
		respondMessage(w, http.StatusBadRequest, "Unable to update pickup status. Data is incomplete.")
		return
	}

	if err := h.recycling.UpdatePickup(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			respondMessage(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			respondMessage(w, http.StatusNotFound, "Recycling activity does not exist.")
		default:
			logger.Error("Unable to update pickup status", "activity_id", req.ActivityID, "error", err)
			respondMessage(w, http.StatusServiceUnavailable, "Unable to update pickup status.")
		}
		return
	}
	respondMessage(w, http.StatusOK, "Pickup status was updated.")
}

// ListByAccount handles GET /api/recycling/user_activities?account_id=.
// An empty result is still a 200 with an empty records array.
func (h *RecyclingHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := queryID(w, r, "account_id")
	if !ok {
		return
	}
	activities, err := h.recycling.ListActivities(r.Context(), accountID)
	if err != nil {
		logger.Error("Unable to list recycling activities", "account_id", accountID, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Database error. Unable to fetch recycling activities.")
		return
	}
	if activities == nil {
		activities = []domain.RecyclingActivity{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"records": activities})
}

// Get handles GET /api/recycling/activity?id=.
func (h *RecyclingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r, "id")
	if !ok {
		return
	}
	activity, err := h.recycling.GetActivity(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondMessage(w, http.StatusNotFound, "Recycling activity does not exist.")
			return
		}
		logger.Error("Unable to fetch recycling activity", "activity_id", id, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Database error. Unable to fetch recycling activity.")
		return
	}
	respondJSON(w, http.StatusOK, activity)
}

// ListCategories handles GET /api/recycling/categories.
func (h *RecyclingHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.recycling.ListCategories(r.Context())
	if err != nil {
		logger.Error("Unable to list recycling categories", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Database error. Unable to fetch recycling categories.")
		return
	}
	if len(categories) == 0 {
		respondMessage(w, http.StatusNotFound, "No recycling categories found.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"records": categories})
}
