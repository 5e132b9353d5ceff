package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abdullahbaig-27688/yemi-seller/internal/middleware"
	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
)

// ChatService defines the order chat operations required by the HTTP handlers.
type ChatService interface {
	Messages(ctx context.Context, sellerID, orderID string) ([]models.Message, error)
	Send(ctx context.Context, sellerID, orderID, body string) (*models.Message, error)
}

// ChatHandler handles order chat requests.
type ChatHandler struct {
	Chat ChatService
}

// Messages responds with the chat history of an order, oldest first,
// under "data".
func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	sellerID := middleware.GetSellerIDFromContext(r.Context())
	messages, err := h.Chat.Messages(r.Context(), sellerID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listEnvelope{Data: messages})
}

// SendRequest represents the JSON payload for sending a chat message.
type SendRequest struct {
	Body string `json:"body"`
}

// Send appends a seller message to an order chat and responds with it.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	sellerID := middleware.GetSellerIDFromContext(r.Context())
	m, err := h.Chat.Send(r.Context(), sellerID, chi.URLParam(r, "id"), req.Body)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}
