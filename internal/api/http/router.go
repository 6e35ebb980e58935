package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles the HTTP handlers the router wires up.
type Handlers struct {
	Orders    *OrderHandler
	Recycling *RecyclingHandler
	Accounts  *AccountHandler
	Sync      *SyncHandler
}

// NewRouter builds the full route table for the API server.
func NewRouter(h *Handlers) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestLogging)

	api := router.PathPrefix("/api").Subrouter()

	// Orders
	api.HandleFunc("/orders/create", h.Orders.Create).Methods(http.MethodPost)
	api.HandleFunc("/orders/user_orders", h.Orders.ListByAccount).Methods(http.MethodGet)
	api.HandleFunc("/orders/order", h.Orders.Get).Methods(http.MethodGet)
	api.HandleFunc("/orders/update_status", h.Orders.UpdateStatus).Methods(http.MethodPost)

	// Recycling
	api.HandleFunc("/recycling/submit", h.Recycling.Submit).Methods(http.MethodPost)
	api.HandleFunc("/recycling/update_status", h.Recycling.UpdateStatus).Methods(http.MethodPost)
	api.HandleFunc("/recycling/update_pickup_status", h.Recycling.UpdatePickupStatus).Methods(http.MethodPost)
	api.HandleFunc("/recycling/user_activities", h.Recycling.ListByAccount).Methods(http.MethodGet)
	api.HandleFunc("/recycling/activity", h.Recycling.Get).Methods(http.MethodGet)
	api.HandleFunc("/recycling/categories", h.Recycling.ListCategories).Methods(http.MethodGet)

	// Accounts
	api.HandleFunc("/accounts/coin_balance", h.Accounts.CoinBalance).Methods(http.MethodGet)
	api.HandleFunc("/accounts/coin_transactions", h.Accounts.CoinTransactions).Methods(http.MethodGet)

	// Admin
	api.HandleFunc("/admin/sync_transactions", h.Sync.SyncTransactions).Methods(http.MethodPost)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondMessage(w, http.StatusOK, "ok")
	}).Methods(http.MethodGet)

	return router
}
