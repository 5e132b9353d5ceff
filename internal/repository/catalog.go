package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
)

// PostgresCatalogRepository implements product catalog operations against a PostgreSQL database.
type PostgresCatalogRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresCatalogRepository creates a new PostgresCatalogRepository using the provided *sql.DB.
func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{DB: db}
}

// ListBySeller fetches all live (not soft-deleted) products for the seller.
func (r *PostgresCatalogRepository) ListBySeller(ctx context.Context, sellerID string) ([]models.Product, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, description, price_cents, stock, category_id, image_url, updated_at
		  FROM products
		 WHERE seller_id = $1 AND deleted = false
		 ORDER BY updated_at DESC
	`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.PriceCents,
			&p.Stock, &p.CategoryID, &p.ImageURL, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// GetByID fetches a single live product owned by the seller.
// Returns ErrNotFound when the product does not exist or is soft-deleted.
func (r *PostgresCatalogRepository) GetByID(ctx context.Context, sellerID, id string) (*models.Product, error) {
	var p models.Product
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, title, description, price_cents, stock, category_id, image_url, updated_at
		  FROM products
		 WHERE id = $1 AND seller_id = $2 AND deleted = false
	`, id, sellerID).Scan(&p.ID, &p.Title, &p.Description, &p.PriceCents,
		&p.Stock, &p.CategoryID, &p.ImageURL, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Insert adds a new product for the seller.
func (r *PostgresCatalogRepository) Insert(ctx context.Context, sellerID string, p *models.Product) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO products (id, seller_id, title, description, price_cents, stock, category_id, image_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, p.ID, sellerID, p.Title, p.Description, p.PriceCents, p.Stock, p.CategoryID, p.ImageURL, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of a live product owned by the seller.
// Returns ErrNotFound when no row was updated.
func (r *PostgresCatalogRepository) Update(ctx context.Context, sellerID string, p *models.Product) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE products
		   SET title = $3, description = $4, price_cents = $5, stock = $6,
		       category_id = $7, image_url = $8, updated_at = $9
		 WHERE id = $1 AND seller_id = $2 AND deleted = false
	`, p.ID, sellerID, p.Title, p.Description, p.PriceCents, p.Stock, p.CategoryID, p.ImageURL, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete marks a product as deleted so the retention cleaner removes it later.
// Returns ErrNotFound when no row was updated.
func (r *PostgresCatalogRepository) SoftDelete(ctx context.Context, sellerID, id string, deletedAt int64) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE products SET deleted = true, updated_at = $3
		 WHERE id = $1 AND seller_id = $2 AND deleted = false
	`, id, sellerID, deletedAt)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// CountBySeller returns the number of live products for the seller.
func (r *PostgresCatalogRepository) CountBySeller(ctx context.Context, sellerID string) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE seller_id = $1 AND deleted = false`,
		sellerID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
