package http

import (
	"context"
	"net/http"

	"github.com/abdullahbaig-27688/yemi-seller/internal/middleware"
	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
)

// DashboardService aggregates dashboard numbers for a seller.
type DashboardService interface {
	Stats(ctx context.Context, sellerID string) (*models.DashboardStats, error)
}

// ShippingService lists the platform-wide shipping categories.
type ShippingService interface {
	List(ctx context.Context) ([]models.ShippingCategory, error)
}

// DashboardHandler serves the dashboard stats endpoint.
type DashboardHandler struct {
	Dashboard DashboardService
}

// Stats responds with the seller's dashboard numbers under "data".
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	sellerID := middleware.GetSellerIDFromContext(r.Context())
	stats, err := h.Dashboard.Stats(r.Context(), sellerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listEnvelope{Data: stats})
}

// ShippingHandler serves the shipping category listing.
type ShippingHandler struct {
	Shipping ShippingService
}

// List responds with all shipping categories under "data".
func (h *ShippingHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Shipping.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listEnvelope{Data: categories})
}
