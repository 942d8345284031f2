package order

import (
	"context"

	"github.com/craftshop/admin-backend/internal/domain"
)

// ListOrders returns all orders, newest first, without line items.
func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.List(ctx)
}
