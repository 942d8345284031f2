package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/craftshop/admin-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// 8. GetCollection
// ---------------------------------------------------------------------------

// GetCollection returns a collection with its linked products resolved,
// newest first.
func (s *Service) GetCollection(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error) {
	c, err := s.collections.GetByID(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	products, err := s.collections.ProductsByCollectionID(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	c.Products = products

	return c, nil
}
