package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"greencoins-backend/internal/logger"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// queryID parses a required positive integer query parameter, writing a
// 400 response itself when the parameter is missing or malformed.
func queryID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.URL.Query().Get(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondMessage(w, http.StatusBadRequest, "Missing or invalid "+name+" parameter.")
		return 0, false
	}
	return id, true
}
