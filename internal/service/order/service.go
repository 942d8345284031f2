// Package order implements the read-only order views for the admin panel.
// Orders are written by the external checkout process, never here.
package order

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/craftshop/admin-backend/internal/domain"
)

type orderRepo interface {
	GetByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
}

type customerRepo interface {
	GetByKey(ctx context.Context, key string) (*domain.Customer, error)
}

// Service implements the order read logic.
type Service struct {
	log       *slog.Logger
	orders    orderRepo
	customers customerRepo
}

// NewService creates a new Order service.
func NewService(logger *slog.Logger, orders orderRepo, customers customerRepo) *Service {
	return &Service{
		log:       logger.With("service", "order"),
		orders:    orders,
		customers: customers,
	}
}

// Details pairs an order with the customer who placed it. Customer is nil
// when the identity record is gone on the external side; the order itself is
// still shown.
type Details struct {
	Order    *domain.Order
	Customer *domain.Customer
}
