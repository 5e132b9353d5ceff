package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abdullahbaig-27688/yemi-seller/internal/middleware"
	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
)

// CatalogService defines the product operations required by the HTTP handlers.
type CatalogService interface {
	List(ctx context.Context, sellerID string) ([]models.Product, error)
	Get(ctx context.Context, sellerID, id string) (*models.Product, error)
	Create(ctx context.Context, sellerID string, p *models.Product) error
	Update(ctx context.Context, sellerID string, p *models.Product) error
	Delete(ctx context.Context, sellerID, id string) error
}

// ProductHandler handles product catalog requests.
type ProductHandler struct {
	Catalog CatalogService
}

// productsEnvelope matches the client contract: the list is nested under
// "products.data".
type productsEnvelope struct {
	Products listEnvelope `json:"products"`
}

// List responds with all live products of the authenticated seller.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	sellerID := middleware.GetSellerIDFromContext(r.Context())
	products, err := h.Catalog.List(r.Context(), sellerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productsEnvelope{Products: listEnvelope{Data: products}})
}

// Get responds with a single product.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	sellerID := middleware.GetSellerIDFromContext(r.Context())
	p, err := h.Catalog.Get(r.Context(), sellerID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Create inserts a new product and responds with the stored record.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	sellerID := middleware.GetSellerIDFromContext(r.Context())
	if err := h.Catalog.Create(r.Context(), sellerID, &p); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// Update replaces a product's fields and responds with the stored record.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	p.ID = chi.URLParam(r, "id")
	sellerID := middleware.GetSellerIDFromContext(r.Context())
	if err := h.Catalog.Update(r.Context(), sellerID, &p); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Delete soft-deletes a product.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sellerID := middleware.GetSellerIDFromContext(r.Context())
	if err := h.Catalog.Delete(r.Context(), sellerID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
