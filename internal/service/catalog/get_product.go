package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/craftshop/admin-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// 4. GetProduct
// ---------------------------------------------------------------------------

// GetProduct returns a product with its collections resolved.
func (s *Service) GetProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := s.resolveCollections(ctx, []*domain.Product{p}); err != nil {
		return nil, err
	}

	return p, nil
}
