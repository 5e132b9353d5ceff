// Package service provides business-logic services for the storefront,
// delegating persistence to repository interfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
	"github.com/abdullahbaig-27688/yemi-seller/internal/repository"
)

// SellerRepository defines the persistence operations required by the
// authentication and settings services.
type SellerRepository interface {
	// GetByEmail fetches a seller by login email.
	GetByEmail(ctx context.Context, email string) (*models.Seller, error)
	// GetByID fetches a seller by ID.
	GetByID(ctx context.Context, id string) (*models.Seller, error)
	// EmailExists returns true if a seller with the given email exists.
	EmailExists(ctx context.Context, email string) (bool, error)
	// Create inserts a new seller record.
	Create(ctx context.Context, s *models.Seller) error
	// UpdateProfile updates the seller's display fields.
	UpdateProfile(ctx context.Context, id string, p models.UserProfile) error
	// UpdateBank replaces the seller's bank settings.
	UpdateBank(ctx context.Context, id, holder, bank, branch, account string) error
	// UpdateShop replaces the seller's shop settings.
	UpdateShop(ctx context.Context, id, name, description string) error
}

// AuthService implements login, registration, and seller settings operations
// by delegating to a SellerRepository.
type AuthService struct {
	repo SellerRepository
}

// NewAuthService constructs a new AuthService using the provided repository.
func NewAuthService(repo SellerRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Login verifies the email/password pair and returns the seller record.
// Returns ErrInvalidCredentials when the email is unknown or the password
// does not match.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Seller, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	seller, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword(seller.PasswordHash, []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return seller, nil
}

// Register creates a new seller account and returns the record.
// Returns ErrEmailTaken when the email is already registered and
// ErrValidation when required fields are missing.
func (s *AuthService) Register(ctx context.Context, email, password, firstName, lastName, phone string) (*models.Seller, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email required", ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	seller := &models.Seller{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        phone,
	}
	if err := s.repo.Create(ctx, seller); err != nil {
		return nil, err
	}
	return seller, nil
}

// SellerInfo fetches the seller record for the given ID.
func (s *AuthService) SellerInfo(ctx context.Context, id string) (*models.Seller, error) {
	seller, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return seller, err
}

// UpdateProfile replaces the seller's display fields.
func (s *AuthService) UpdateProfile(ctx context.Context, id string, p models.UserProfile) error {
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		return fmt.Errorf("%w: valid email required", ErrValidation)
	}
	return s.repo.UpdateProfile(ctx, id, p)
}

// UpdateBank replaces the seller's bank settings. All four fields are required.
func (s *AuthService) UpdateBank(ctx context.Context, id, holder, bank, branch, account string) error {
	if holder == "" || bank == "" || account == "" {
		return fmt.Errorf("%w: holder, bank, and account number required", ErrValidation)
	}
	return s.repo.UpdateBank(ctx, id, holder, bank, branch, account)
}

// UpdateShop replaces the seller's shop settings.
func (s *AuthService) UpdateShop(ctx context.Context, id, name, description string) error {
	if name == "" {
		return fmt.Errorf("%w: shop name required", ErrValidation)
	}
	return s.repo.UpdateShop(ctx, id, name, description)
}
