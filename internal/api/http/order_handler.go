package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"greencoins-backend/internal/domain"
	"greencoins-backend/internal/logger"
	"greencoins-backend/internal/service"
)

type OrderHandler struct {
	orders service.OrderService
}

func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create handles POST /api/orders/create. Validation, product and stock
// problems all map to 400 before anything is written; only a failure of
// the atomic fulfillment unit itself produces 503.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Unable to create order. Data is incomplete.")
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), &req)
	if err != nil {
		var oos *domain.OutOfStockError
		switch {
		case errors.Is(err, domain.ErrValidation),
			errors.Is(err, domain.ErrNotFound),
			errors.Is(err, domain.ErrInsufficientFunds),
			errors.As(err, &oos):
			respondMessage(w, http.StatusBadRequest, err.Error())
		default:
			logger.Error("Unable to create order", "error", err)
			respondMessage(w, http.StatusServiceUnavailable, "Unable to create order.")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message":           "Order was created.",
		"id":                order.ID,
		"total_coin_amount": order.TotalCoinAmount,
	})
}

// ListByAccount handles GET /api/orders/user_orders?account_id=.
func (h *OrderHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := queryID(w, r, "account_id")
	if !ok {
		return
	}
	orders, err := h.orders.ListOrders(r.Context(), accountID)
	if err != nil {
		logger.Error("Unable to list orders", "account_id", accountID, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Database error. Unable to fetch orders.")
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"records": orders})
}

// Get handles GET /api/orders/order?id=.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r, "id")
	if !ok {
		return
	}
	order, err := h.orders.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondMessage(w, http.StatusNotFound, "Order does not exist.")
			return
		}
		logger.Error("Unable to fetch order", "order_id", id, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Database error. Unable to fetch order.")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// UpdateStatus handles POST /api/orders/update_status. Order status
// changes have no ledger effect.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     int64              `json:"id"`
		Status domain.OrderStatus `json:"status"`
		Notes  string             `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == 0 || req.Status == "" {
		respondMessage(w, http.StatusBadRequest, "Unable to update order status. Data is incomplete.")
		return
	}

	if err := h.orders.UpdateStatus(r.Context(), req.ID, req.Status, req.Notes); err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			respondMessage(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			respondMessage(w, http.StatusNotFound, "Order does not exist.")
		default:
			logger.Error("Unable to update order status", "order_id", req.ID, "error", err)
			respondMessage(w, http.StatusServiceUnavailable, "Unable to update order status.")
		}
		return
	}
	respondMessage(w, http.StatusOK, "Order status was updated.")
}
