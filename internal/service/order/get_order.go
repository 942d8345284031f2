package order

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/craftshop/admin-backend/internal/domain"
)

// GetOrder returns an order with its line items plus the customer record.
// A missing customer does not fail the lookup; the external identity store
// may have dropped the record after the order was placed.
func (s *Service) GetOrder(ctx context.Context, orderID uuid.UUID) (*Details, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	c, err := s.customers.GetByKey(ctx, o.CustomerKey)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.log.WarnContext(ctx, "order customer missing",
			"order_id", orderID.String(),
			"customer_key", o.CustomerKey,
		)
		c = nil
	}

	return &Details{Order: o, Customer: c}, nil
}
