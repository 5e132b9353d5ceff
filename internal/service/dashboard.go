package service

import (
	"context"

	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
)

// ProductCounter counts the seller's live products.
type ProductCounter interface {
	CountBySeller(ctx context.Context, sellerID string) (int, error)
}

// OrderStats reads aggregate order numbers for the dashboard.
type OrderStats interface {
	CountByStatus(ctx context.Context, sellerID string, status models.OrderStatus) (int, error)
	Totals(ctx context.Context, sellerID string) (int, int64, error)
}

// DashboardService aggregates the numbers shown on the seller dashboard.
type DashboardService struct {
	products ProductCounter
	orders   OrderStats
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(products ProductCounter, orders OrderStats) *DashboardService {
	return &DashboardService{products: products, orders: orders}
}

// Stats collects the dashboard numbers for the seller.
func (s *DashboardService) Stats(ctx context.Context, sellerID string) (*models.DashboardStats, error) {
	productCount, err := s.products.CountBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	pending, err := s.orders.CountByStatus(ctx, sellerID, models.OrderPending)
	if err != nil {
		return nil, err
	}
	shipped, err := s.orders.CountByStatus(ctx, sellerID, models.OrderShipped)
	if err != nil {
		return nil, err
	}
	total, revenue, err := s.orders.Totals(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return &models.DashboardStats{
		ProductCount:  productCount,
		PendingOrders: pending,
		ShippedOrders: shipped,
		TotalOrders:   total,
		RevenueCents:  revenue,
	}, nil
}
