package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
)

// PostgresChatRepository implements order chat persistence against a PostgreSQL database.
type PostgresChatRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresChatRepository creates a new PostgresChatRepository using the provided *sql.DB.
func NewPostgresChatRepository(db *sql.DB) *PostgresChatRepository {
	return &PostgresChatRepository{DB: db}
}

// ListByOrder fetches all messages attached to the order, oldest first.
func (r *PostgresChatRepository) ListByOrder(ctx context.Context, orderID string) ([]models.Message, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, sender, body, sent_at
		  FROM messages
		 WHERE order_id = $1
		 ORDER BY sent_at ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.OrderID, &m.Sender, &m.Body, &m.SentAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

// Insert appends a message to the order chat.
func (r *PostgresChatRepository) Insert(ctx context.Context, m *models.Message) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO messages (id, order_id, sender, body, sent_at)
		VALUES ($1, $2, $3, $4, $5)
	`, m.ID, m.OrderID, m.Sender, m.Body, m.SentAt)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}
