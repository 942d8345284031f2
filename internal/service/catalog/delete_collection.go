package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/craftshop/admin-backend/internal/domain"
	"github.com/craftshop/admin-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 10. DeleteCollection
// ---------------------------------------------------------------------------

// DeleteCollection removes a collection, then unconditionally removes every
// link row that referenced it so no product keeps a dangling reference.
// Cleanup failure after a retry does not undo the delete; it is logged for
// operators.
func (s *Service) DeleteCollection(ctx context.Context, collectionID uuid.UUID) error {
	if _, ok := ctxutil.CallerIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}

	if err := s.collections.Delete(ctx, collectionID); err != nil {
		return err
	}

	s.cleanupLinks(ctx, "collection", collectionID, s.collections.UnlinkAll)

	return nil
}
