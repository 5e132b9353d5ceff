package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
)

// PostgresOrderRepository implements order operations against a PostgreSQL database.
type PostgresOrderRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository using the provided *sql.DB.
func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{DB: db}
}

// ListBySeller fetches the seller's orders, optionally filtered by status.
// An empty status returns all orders.
func (r *PostgresOrderRepository) ListBySeller(ctx context.Context, sellerID string, status models.OrderStatus) ([]models.Order, error) {
	query := `
		SELECT id, customer_name, status, total_cents, created_at
		  FROM orders
		 WHERE seller_id = $1`
	args := []any{sellerID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.Status, &o.TotalCents, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// GetByID fetches a single order owned by the seller.
// Returns ErrNotFound when the order does not exist.
func (r *PostgresOrderRepository) GetByID(ctx context.Context, sellerID, id string) (*models.Order, error) {
	var o models.Order
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, customer_name, status, total_cents, created_at
		  FROM orders
		 WHERE id = $1 AND seller_id = $2
	`, id, sellerID).Scan(&o.ID, &o.CustomerName, &o.Status, &o.TotalCents, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// UpdateStatus moves an order owned by the seller to a new status.
// Returns ErrNotFound when no row was updated.
func (r *PostgresOrderRepository) UpdateStatus(ctx context.Context, sellerID, id string, status models.OrderStatus) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE orders SET status = $3 WHERE id = $1 AND seller_id = $2
	`, id, sellerID, string(status))
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByStatus returns the number of the seller's orders in the given status.
func (r *PostgresOrderRepository) CountByStatus(ctx context.Context, sellerID string, status models.OrderStatus) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE seller_id = $1 AND status = $2`,
		sellerID, string(status),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// Totals returns the seller's total order count and delivered revenue.
func (r *PostgresOrderRepository) Totals(ctx context.Context, sellerID string) (int, int64, error) {
	var count int
	var revenue int64
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(total_cents) FILTER (WHERE status = 'delivered'), 0)
		  FROM orders
		 WHERE seller_id = $1
	`, sellerID).Scan(&count, &revenue)
	if err != nil {
		return 0, 0, fmt.Errorf("order totals: %w", err)
	}
	return count, revenue, nil
}
