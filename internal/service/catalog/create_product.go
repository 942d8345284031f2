package catalog

import (
	"context"
	"fmt"

	"github.com/craftshop/admin-backend/internal/domain"
	"github.com/craftshop/admin-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 1. CreateProduct
// ---------------------------------------------------------------------------

// CreateProduct creates a product and links it to its collections in one
// transaction. The title must be unique across the catalog.
func (s *Service) CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error) {
	if _, ok := ctxutil.CallerIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Product
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.products.Create(txCtx, input.toProduct())
		if createErr != nil {
			return createErr
		}

		if linkErr := s.products.SetCollections(txCtx, created.ID, input.CollectionIDs); linkErr != nil {
			return fmt.Errorf("link collections: %w", linkErr)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.resolveCollections(ctx, []*domain.Product{created}); err != nil {
		return nil, err
	}

	return created, nil
}
