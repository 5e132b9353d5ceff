// Package repository provides persistence implementations for the storefront
// services using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

const sellerColumns = `id, email, password_hash, first_name, last_name, phone,
       holder_name, bank_name, branch_name, account_number, shop_name, shop_description`

// PostgresSellerRepository implements seller account operations against a PostgreSQL database.
type PostgresSellerRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresSellerRepository creates a new PostgresSellerRepository with the given database connection.
func NewPostgresSellerRepository(db *sql.DB) *PostgresSellerRepository {
	return &PostgresSellerRepository{DB: db}
}

func scanSeller(row *sql.Row) (*models.Seller, error) {
	var s models.Seller
	err := row.Scan(
		&s.ID, &s.Email, &s.PasswordHash, &s.FirstName, &s.LastName, &s.Phone,
		&s.HolderName, &s.BankName, &s.BranchName, &s.AccountNumber,
		&s.ShopName, &s.ShopDescription,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan seller: %w", err)
	}
	return &s, nil
}

// GetByEmail fetches a seller by login email. Returns ErrNotFound when no
// seller matches.
func (r *PostgresSellerRepository) GetByEmail(ctx context.Context, email string) (*models.Seller, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+sellerColumns+` FROM sellers WHERE email = $1`, email)
	return scanSeller(row)
}

// GetByID fetches a seller by ID. Returns ErrNotFound when no seller matches.
func (r *PostgresSellerRepository) GetByID(ctx context.Context, id string) (*models.Seller, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+sellerColumns+` FROM sellers WHERE id = $1`, id)
	return scanSeller(row)
}

// Create inserts a new seller record.
func (r *PostgresSellerRepository) Create(ctx context.Context, s *models.Seller) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO sellers (id, email, password_hash, first_name, last_name, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, s.ID, s.Email, s.PasswordHash, s.FirstName, s.LastName, s.Phone)
	if err != nil {
		return fmt.Errorf("create seller: %w", err)
	}
	return nil
}

// EmailExists checks whether a seller with the given email already exists.
func (r *PostgresSellerRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM sellers WHERE email = $1)`, email,
	).Scan(&exists)
	return exists, err
}

// UpdateProfile updates the display fields of a seller.
func (r *PostgresSellerRepository) UpdateProfile(ctx context.Context, id string, p models.UserProfile) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE sellers
		   SET first_name = $2, last_name = $3, email = $4, phone = $5
		 WHERE id = $1
	`, id, p.FirstName, p.LastName, p.Email, p.Phone)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// UpdateBank replaces the seller's bank settings.
func (r *PostgresSellerRepository) UpdateBank(ctx context.Context, id, holder, bank, branch, account string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE sellers
		   SET holder_name = $2, bank_name = $3, branch_name = $4, account_number = $5
		 WHERE id = $1
	`, id, holder, bank, branch, account)
	if err != nil {
		return fmt.Errorf("update bank: %w", err)
	}
	return nil
}

// UpdateShop replaces the seller's shop settings.
func (r *PostgresSellerRepository) UpdateShop(ctx context.Context, id, name, description string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE sellers SET shop_name = $2, shop_description = $3 WHERE id = $1
	`, id, name, description)
	if err != nil {
		return fmt.Errorf("update shop: %w", err)
	}
	return nil
}
