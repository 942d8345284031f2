package catalog

import (
	"context"

	"github.com/craftshop/admin-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// 6. SearchProducts
// ---------------------------------------------------------------------------

// SearchProducts returns products matching the free-text query as a
// case-insensitive substring of the title, status, description, or any
// linked collection's title. An empty query returns the whole catalog.
// No match is an empty result, never an error.
func (s *Service) SearchProducts(ctx context.Context, query string) ([]*domain.Product, error) {
	products, err := s.products.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if err := s.resolveCollections(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}
