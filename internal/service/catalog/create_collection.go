package catalog

import (
	"context"

	"github.com/craftshop/admin-backend/internal/domain"
	"github.com/craftshop/admin-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 7. CreateCollection
// ---------------------------------------------------------------------------

// CreateCollection creates an empty collection. Products join it through
// their own create/update payloads.
func (s *Service) CreateCollection(ctx context.Context, input CollectionInput) (*domain.Collection, error) {
	if _, ok := ctxutil.CallerIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.collections.Create(ctx, &domain.Collection{Title: input.Title})
	if err != nil {
		return nil, err
	}
	created.Products = []domain.Product{}

	return created, nil
}
