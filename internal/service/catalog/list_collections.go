package catalog

import (
	"context"

	"github.com/craftshop/admin-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// 11. ListCollections
// ---------------------------------------------------------------------------

// ListCollections returns all collections, newest first, without resolved
// products.
func (s *Service) ListCollections(ctx context.Context) ([]*domain.Collection, error) {
	return s.collections.List(ctx)
}
