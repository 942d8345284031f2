package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/craftshop/admin-backend/internal/domain"
	"github.com/craftshop/admin-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 9. UpdateCollection
// ---------------------------------------------------------------------------

// UpdateCollection renames a collection. Links are unaffected.
func (s *Service) UpdateCollection(ctx context.Context, collectionID uuid.UUID, input CollectionInput) (*domain.Collection, error) {
	if _, ok := ctxutil.CallerIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.collections.Update(ctx, collectionID, input.Title)
}
