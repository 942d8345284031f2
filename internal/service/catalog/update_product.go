package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/craftshop/admin-backend/internal/domain"
	"github.com/craftshop/admin-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 2. UpdateProduct
// ---------------------------------------------------------------------------

// UpdateProduct fully replaces a product's fields and its collection links.
// The payload passes the same rules as a create.
func (s *Service) UpdateProduct(ctx context.Context, productID uuid.UUID, input ProductInput) (*domain.Product, error) {
	if _, ok := ctxutil.CallerIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Product
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.products.Update(txCtx, productID, input.toProduct())
		if updateErr != nil {
			return updateErr
		}

		if linkErr := s.products.SetCollections(txCtx, productID, input.CollectionIDs); linkErr != nil {
			return fmt.Errorf("relink collections: %w", linkErr)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.resolveCollections(ctx, []*domain.Product{updated}); err != nil {
		return nil, err
	}

	return updated, nil
}
