package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
	"github.com/abdullahbaig-27688/yemi-seller/internal/repository"
)

// ChatRepository defines the persistence operations needed by the ChatService.
type ChatRepository interface {
	// ListByOrder fetches all messages attached to the order, oldest first.
	ListByOrder(ctx context.Context, orderID string) ([]models.Message, error)
	// Insert appends a message to the order chat.
	Insert(ctx context.Context, m *models.Message) error
}

// ChatService implements order chat business logic. Ownership of the order
// is checked through the OrderRepository before any chat access.
type ChatService struct {
	chat   ChatRepository
	orders OrderRepository
	now    func() time.Time
}

// NewChatService constructs a ChatService.
func NewChatService(chat ChatRepository, orders OrderRepository) *ChatService {
	return &ChatService{chat: chat, orders: orders, now: time.Now}
}

func (s *ChatService) checkOrder(ctx context.Context, sellerID, orderID string) error {
	_, err := s.orders.GetByID(ctx, sellerID, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Messages returns the chat history for an order owned by the seller.
func (s *ChatService) Messages(ctx context.Context, sellerID, orderID string) ([]models.Message, error) {
	if err := s.checkOrder(ctx, sellerID, orderID); err != nil {
		return nil, err
	}
	return s.chat.ListByOrder(ctx, orderID)
}

// Send appends a seller message to an order chat and returns it.
func (s *ChatService) Send(ctx context.Context, sellerID, orderID, body string) (*models.Message, error) {
	if body == "" {
		return nil, fmt.Errorf("%w: message body required", ErrValidation)
	}
	if err := s.checkOrder(ctx, sellerID, orderID); err != nil {
		return nil, err
	}
	m := &models.Message{
		ID:      uuid.NewString(),
		OrderID: orderID,
		Sender:  "seller",
		Body:    body,
		SentAt:  s.now().Unix(),
	}
	if err := s.chat.Insert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
