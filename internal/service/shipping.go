package service

import (
	"context"

	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
)

// ShippingRepository reads the platform-wide shipping categories.
type ShippingRepository interface {
	List(ctx context.Context) ([]models.ShippingCategory, error)
}

// ShippingService exposes the shipping category listing.
type ShippingService struct {
	repo ShippingRepository
}

// NewShippingService constructs a ShippingService.
func NewShippingService(repo ShippingRepository) *ShippingService {
	return &ShippingService{repo: repo}
}

// List returns all shipping categories.
func (s *ShippingService) List(ctx context.Context) ([]models.ShippingCategory, error) {
	return s.repo.List(ctx)
}
