package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
	"github.com/abdullahbaig-27688/yemi-seller/internal/repository"
)

type mockChatRepo struct {
	ListByOrderFunc func(ctx context.Context, orderID string) ([]models.Message, error)
	InsertFunc      func(ctx context.Context, m *models.Message) error
}

func (m *mockChatRepo) ListByOrder(ctx context.Context, orderID string) ([]models.Message, error) {
	return m.ListByOrderFunc(ctx, orderID)
}
func (m *mockChatRepo) Insert(ctx context.Context, msg *models.Message) error {
	return m.InsertFunc(ctx, msg)
}

func ownedOrderRepo(t *testing.T, owned bool) *mockOrderRepo {
	t.Helper()
	return &mockOrderRepo{
		GetByIDFunc: func(ctx context.Context, sellerID, id string) (*models.Order, error) {
			if !owned {
				return nil, repository.ErrNotFound
			}
			return &models.Order{ID: id, Status: models.OrderPending}, nil
		},
	}
}

func TestChatMessages(t *testing.T) {
	chat := &mockChatRepo{
		ListByOrderFunc: func(ctx context.Context, orderID string) ([]models.Message, error) {
			return []models.Message{{ID: "m1", OrderID: orderID, Sender: "customer", Body: "hi"}}, nil
		},
	}
	svc := NewChatService(chat, ownedOrderRepo(t, true))

	messages, err := svc.Messages(context.Background(), "s1", "o1")
	if err != nil {
		t.Fatalf("Messages returned error: %v", err)
	}
	if len(messages) != 1 || messages[0].ID != "m1" {
		t.Errorf("unexpected messages: %+v", messages)
	}
}

func TestChatMessages_OrderNotOwned(t *testing.T) {
	svc := NewChatService(&mockChatRepo{}, ownedOrderRepo(t, false))

	_, err := svc.Messages(context.Background(), "s1", "o-foreign")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Messages error = %v; want ErrNotFound", err)
	}
}

func TestChatSend(t *testing.T) {
	var inserted *models.Message
	chat := &mockChatRepo{
		InsertFunc: func(ctx context.Context, m *models.Message) error {
			inserted = m
			return nil
		},
	}
	svc := NewChatService(chat, ownedOrderRepo(t, true))
	svc.now = func() time.Time { return time.Unix(1700000123, 0) }

	m, err := svc.Send(context.Background(), "s1", "o1", "On its way")
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if inserted == nil || inserted.ID == "" {
		t.Fatal("expected message to be inserted with an assigned ID")
	}
	if m.Sender != "seller" || m.SentAt != 1700000123 {
		t.Errorf("unexpected message: %+v", m)
	}
}

func TestChatSend_EmptyBody(t *testing.T) {
	svc := NewChatService(&mockChatRepo{}, ownedOrderRepo(t, true))

	_, err := svc.Send(context.Background(), "s1", "o1", "")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Send error = %v; want ErrValidation", err)
	}
}
