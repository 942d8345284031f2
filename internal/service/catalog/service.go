// Package catalog implements the catalog administration business logic:
// product and collection lifecycle, validation, the search entry point, and
// the referential-integrity cleanup that follows every delete.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/craftshop/admin-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type productRepo interface {
	GetByID(ctx context.Context, productID uuid.UUID) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Search(ctx context.Context, query string) ([]*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, productID uuid.UUID, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, productID uuid.UUID) error
	SetCollections(ctx context.Context, productID uuid.UUID, collectionIDs []uuid.UUID) error
	UnlinkAll(ctx context.Context, productID uuid.UUID) error
	CollectionsByProductIDs(ctx context.Context, productIDs []uuid.UUID) ([]domain.CollectionLink, error)
}

type collectionRepo interface {
	GetByID(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error)
	List(ctx context.Context) ([]*domain.Collection, error)
	ProductsByCollectionID(ctx context.Context, collectionID uuid.UUID) ([]domain.Product, error)
	Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error)
	Update(ctx context.Context, collectionID uuid.UUID, title string) (*domain.Collection, error)
	Delete(ctx context.Context, collectionID uuid.UUID) error
	UnlinkAll(ctx context.Context, collectionID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the catalog business logic.
type Service struct {
	log         *slog.Logger
	products    productRepo
	collections collectionRepo
	tx          txManager
}

// NewService creates a new Catalog service.
func NewService(logger *slog.Logger, products productRepo, collections collectionRepo, tx txManager) *Service {
	return &Service{
		log:         logger.With("service", "catalog"),
		products:    products,
		collections: collections,
		tx:          tx,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// cleanupLinks runs the post-delete referential cleanup: one scoped bulk
// unlink, retried once. The primary row is already gone, so a second failure
// does not undo the delete; it is classified ErrIntegrityCleanup and logged
// for operators, and the delete is still reported successful.
func (s *Service) cleanupLinks(ctx context.Context, entity string, id uuid.UUID, unlink func(context.Context, uuid.UUID) error) {
	err := unlink(ctx, id)
	if err == nil {
		return
	}
	if err = unlink(ctx, id); err == nil {
		return
	}

	s.log.ErrorContext(ctx, "integrity cleanup incomplete",
		slog.String("entity", entity),
		slog.String("id", id.String()),
		slog.String("error", domain.ErrIntegrityCleanup.Error()+": "+err.Error()),
	)
}

// resolveCollections fills Collections on each product with one batch query.
func (s *Service) resolveCollections(ctx context.Context, products []*domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	links, err := s.products.CollectionsByProductIDs(ctx, ids)
	if err != nil {
		return err
	}

	byProduct := make(map[uuid.UUID][]domain.Collection, len(products))
	for _, l := range links {
		byProduct[l.ProductID] = append(byProduct[l.ProductID], l.Collection)
	}

	for _, p := range products {
		p.Collections = byProduct[p.ID]
		if p.Collections == nil {
			p.Collections = []domain.Collection{}
		}
	}

	return nil
}
