package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
)

// PostgresShippingRepository reads the platform-wide shipping categories.
type PostgresShippingRepository struct {
	DB *sql.DB
}

// NewPostgresShippingRepository creates a new PostgresShippingRepository using the provided *sql.DB.
func NewPostgresShippingRepository(db *sql.DB) *PostgresShippingRepository {
	return &PostgresShippingRepository{DB: db}
}

// List fetches all shipping categories ordered by name.
func (r *PostgresShippingRepository) List(ctx context.Context) ([]models.ShippingCategory, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, fee_cents FROM shipping_categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list shipping categories: %w", err)
	}
	defer rows.Close()

	var categories []models.ShippingCategory
	for rows.Next() {
		var c models.ShippingCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.FeeCents); err != nil {
			return nil, fmt.Errorf("scan shipping category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shipping categories: %w", err)
	}
	if categories == nil {
		categories = []models.ShippingCategory{}
	}
	return categories, nil
}
