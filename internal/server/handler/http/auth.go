// Package http provides HTTP handlers for the storefront API consumed by
// the seller client.
package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Login verifies the email/password pair and returns the seller record.
	Login(ctx context.Context, email, password string) (*models.Seller, error)
	// Register creates a new seller account.
	Register(ctx context.Context, email, password, firstName, lastName, phone string) (*models.Seller, error)
}

// TokenIssuer signs bearer tokens for authenticated sellers.
type TokenIssuer interface {
	Issue(sellerID string) (string, error)
}

// AuthHandler handles HTTP requests for seller login and registration.
type AuthHandler struct {
	// Auth performs the underlying authentication operations.
	Auth AuthService
	// Tokens issues bearer tokens after successful authentication.
	Tokens TokenIssuer
}

// LoginRequest represents the JSON payload for seller login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents the JSON payload for seller registration.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// tokenResponse carries the issued bearer token and the seller record.
type tokenResponse struct {
	Token  string         `json:"token"`
	Seller *models.Seller `json:"seller"`
}

// Login handles seller login requests.
// It expects a JSON body with "email" and "password" and responds with a
// bearer token and the seller record.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	seller, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := h.Tokens.Issue(seller.ID)
	if err != nil {
		http.Error(w, "failed to issue token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token, Seller: seller})
}

// Register handles seller registration requests. On success it behaves like
// Login and returns a bearer token for the new account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	seller, err := h.Auth.Register(r.Context(), req.Email, req.Password, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := h.Tokens.Issue(seller.ID)
	if err != nil {
		http.Error(w, "failed to issue token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, tokenResponse{Token: token, Seller: seller})
}
