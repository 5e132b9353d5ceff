package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/abdullahbaig-27688/yemi-seller/internal/middleware"
	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
)

// SellerService defines the seller settings operations required by the HTTP handlers.
type SellerService interface {
	SellerInfo(ctx context.Context, id string) (*models.Seller, error)
	UpdateProfile(ctx context.Context, id string, p models.UserProfile) error
	UpdateBank(ctx context.Context, id, holder, bank, branch, account string) error
	UpdateShop(ctx context.Context, id, name, description string) error
}

// SellerHandler handles seller-info reads and settings updates.
type SellerHandler struct {
	Sellers SellerService
}

// Info responds with the authenticated seller's record.
// The seller ID comes from the bearer token, never from the request.
func (h *SellerHandler) Info(w http.ResponseWriter, r *http.Request) {
	sellerID := middleware.GetSellerIDFromContext(r.Context())
	seller, err := h.Sellers.SellerInfo(r.Context(), sellerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, seller)
}

// UpdateProfile replaces the seller's display fields.
func (h *SellerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var p models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	sellerID := middleware.GetSellerIDFromContext(r.Context())
	if err := h.Sellers.UpdateProfile(r.Context(), sellerID, p); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// BankRequest represents the JSON payload for bank settings updates.
type BankRequest struct {
	HolderName    string `json:"holderName"`
	BankName      string `json:"bankName"`
	BranchName    string `json:"branchName"`
	AccountNumber string `json:"accountNumber"`
}

// UpdateBank replaces the seller's bank settings.
func (h *SellerHandler) UpdateBank(w http.ResponseWriter, r *http.Request) {
	var req BankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	sellerID := middleware.GetSellerIDFromContext(r.Context())
	if err := h.Sellers.UpdateBank(r.Context(), sellerID, req.HolderName, req.BankName, req.BranchName, req.AccountNumber); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ShopRequest represents the JSON payload for shop settings updates.
type ShopRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateShop replaces the seller's shop settings.
func (h *SellerHandler) UpdateShop(w http.ResponseWriter, r *http.Request) {
	var req ShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	sellerID := middleware.GetSellerIDFromContext(r.Context())
	if err := h.Sellers.UpdateShop(r.Context(), sellerID, req.Name, req.Description); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
