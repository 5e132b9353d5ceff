package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
	"github.com/abdullahbaig-27688/yemi-seller/internal/repository"
)

// OrderRepository defines the persistence operations needed by the OrderService.
type OrderRepository interface {
	// ListBySeller fetches the seller's orders, optionally filtered by status.
	ListBySeller(ctx context.Context, sellerID string, status models.OrderStatus) ([]models.Order, error)
	// GetByID fetches a single order owned by the seller.
	GetByID(ctx context.Context, sellerID, id string) (*models.Order, error)
	// UpdateStatus moves an order to a new status.
	UpdateStatus(ctx context.Context, sellerID, id string, status models.OrderStatus) error
}

// OrderService implements order management business logic.
type OrderService struct {
	repo OrderRepository
}

// NewOrderService constructs an OrderService with the provided OrderRepository.
func NewOrderService(repo OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// List returns the seller's orders. An empty status returns all orders;
// a non-empty status must be a known order state.
func (s *OrderService) List(ctx context.Context, sellerID string, status models.OrderStatus) ([]models.Order, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrValidation, status)
	}
	return s.repo.ListBySeller(ctx, sellerID, status)
}

// Get fetches one order owned by the seller.
func (s *OrderService) Get(ctx context.Context, sellerID, id string) (*models.Order, error) {
	o, err := s.repo.GetByID(ctx, sellerID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return o, err
}

// UpdateStatus moves an order to a new valid status.
func (s *OrderService) UpdateStatus(ctx context.Context, sellerID, id string, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown order status %q", ErrValidation, status)
	}
	err := s.repo.UpdateStatus(ctx, sellerID, id, status)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
