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

// CatalogRepository defines the persistence operations needed by the CatalogService.
type CatalogRepository interface {
	// ListBySeller fetches all live products for the seller.
	ListBySeller(ctx context.Context, sellerID string) ([]models.Product, error)
	// GetByID fetches a single live product owned by the seller.
	GetByID(ctx context.Context, sellerID, id string) (*models.Product, error)
	// Insert adds a new product.
	Insert(ctx context.Context, sellerID string, p *models.Product) error
	// Update replaces the mutable fields of a product.
	Update(ctx context.Context, sellerID string, p *models.Product) error
	// SoftDelete marks a product as deleted.
	SoftDelete(ctx context.Context, sellerID, id string, deletedAt int64) error
}

// CatalogService implements product management business logic.
type CatalogService struct {
	repo CatalogRepository
	// now stamps product mutations; overridable in tests.
	now func() time.Time
}

// NewCatalogService constructs a CatalogService with the provided CatalogRepository.
func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo, now: time.Now}
}

// List returns all live products owned by the seller.
func (s *CatalogService) List(ctx context.Context, sellerID string) ([]models.Product, error) {
	return s.repo.ListBySeller(ctx, sellerID)
}

// Get fetches one product owned by the seller.
func (s *CatalogService) Get(ctx context.Context, sellerID, id string) (*models.Product, error) {
	p, err := s.repo.GetByID(ctx, sellerID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

func validateProduct(p *models.Product) error {
	if p.Title == "" {
		return fmt.Errorf("%w: title required", ErrValidation)
	}
	if p.PriceCents <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", ErrValidation)
	}
	return nil
}

// Create validates and inserts a new product, assigning its ID and timestamp.
func (s *CatalogService) Create(ctx context.Context, sellerID string, p *models.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	p.ID = uuid.NewString()
	p.UpdatedAt = s.now().Unix()
	return s.repo.Insert(ctx, sellerID, p)
}

// Update validates and replaces an existing product's fields.
func (s *CatalogService) Update(ctx context.Context, sellerID string, p *models.Product) error {
	if p.ID == "" {
		return fmt.Errorf("%w: product ID required", ErrValidation)
	}
	if err := validateProduct(p); err != nil {
		return err
	}
	p.UpdatedAt = s.now().Unix()
	err := s.repo.Update(ctx, sellerID, p)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Delete soft-deletes a product owned by the seller.
func (s *CatalogService) Delete(ctx context.Context, sellerID, id string) error {
	err := s.repo.SoftDelete(ctx, sellerID, id, s.now().Unix())
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
