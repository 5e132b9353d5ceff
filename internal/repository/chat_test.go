package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
)

func setupChatMock(t *testing.T) (*PostgresChatRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresChatRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestListByOrder(t *testing.T) {
	repo, mock, cleanup := setupChatMock(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM messages`).
		WithArgs("o1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "sender", "body", "sent_at"}).
			AddRow("m1", "o1", "customer", "Is this in stock?", 1700000001).
			AddRow("m2", "o1", "seller", "Yes, ships tomorrow.", 1700000002))

	messages, err := repo.ListByOrder(context.Background(), "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 2 || messages[1].Sender != "seller" {
		t.Errorf("unexpected messages: %+v", messages)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestInsertMessage(t *testing.T) {
	repo, mock, cleanup := setupChatMock(t)
	defer cleanup()

	m := &models.Message{ID: "m3", OrderID: "o1", Sender: "seller", Body: "Shipped!", SentAt: 1700000100}
	mock.ExpectExec(`INSERT INTO messages`).
		WithArgs(m.ID, m.OrderID, m.Sender, m.Body, m.SentAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Insert(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
