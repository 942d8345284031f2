package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/craftshop/admin-backend/internal/domain"
	"github.com/craftshop/admin-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 3. DeleteProduct
// ---------------------------------------------------------------------------

// DeleteProduct removes a product, then unconditionally removes every link
// row that referenced it. The cleanup step runs outside the delete; if it
// fails after a retry the delete still succeeds and the leftover links are
// logged for operators.
func (s *Service) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	if _, ok := ctxutil.CallerIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}

	if err := s.products.Delete(ctx, productID); err != nil {
		return err
	}

	s.cleanupLinks(ctx, "product", productID, s.products.UnlinkAll)

	return nil
}
