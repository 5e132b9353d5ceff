package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abdullahbaig-27688/yemi-seller/internal/middleware"
	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
)

// OrderService defines the order operations required by the HTTP handlers.
type OrderService interface {
	List(ctx context.Context, sellerID string, status models.OrderStatus) ([]models.Order, error)
	Get(ctx context.Context, sellerID, id string) (*models.Order, error)
	UpdateStatus(ctx context.Context, sellerID, id string, status models.OrderStatus) error
}

// OrderHandler handles order listing and status updates.
type OrderHandler struct {
	Orders OrderService
}

// ordersEnvelope matches the client contract: the list is nested under
// "orders.data".
type ordersEnvelope struct {
	Orders listEnvelope `json:"orders"`
}

// List responds with the seller's orders, filtered by the optional
// "status" query parameter.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	sellerID := middleware.GetSellerIDFromContext(r.Context())
	status := models.OrderStatus(r.URL.Query().Get("status"))
	orders, err := h.Orders.List(r.Context(), sellerID, status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ordersEnvelope{Orders: listEnvelope{Data: orders}})
}

// Get responds with a single order.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	sellerID := middleware.GetSellerIDFromContext(r.Context())
	o, err := h.Orders.Get(r.Context(), sellerID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// StatusRequest represents the JSON payload for order status updates.
type StatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// UpdateStatus moves an order to a new status.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	sellerID := middleware.GetSellerIDFromContext(r.Context())
	if err := h.Orders.UpdateStatus(r.Context(), sellerID, chi.URLParam(r, "id"), req.Status); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
