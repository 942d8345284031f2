package catalog

import (
	"context"

	"github.com/craftshop/admin-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// 5. ListProducts
// ---------------------------------------------------------------------------

// ListProducts returns the whole catalog, newest first, with collections
// resolved in one batch query.
func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.resolveCollections(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}
