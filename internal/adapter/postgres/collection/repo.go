// Package collection implements the Collection repository using PostgreSQL,
// including the collection side of the product_collections M2M link table.
package collection

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/craftshop/admin-backend/internal/adapter/postgres"
	"github.com/craftshop/admin-backend/internal/domain"
)

// Repo provides collection persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new collection repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a collection by primary key, without resolved products.
// Returns domain.ErrNotFound if the collection does not exist.
func (r *Repo) GetByID(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Select("id", "title", "created_at", "updated_at").
		From("collections").
		Where(sq.Eq{"id": collectionID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get collection: %w", err)
	}

	var c domain.Collection
	err = querier.QueryRow(ctx, query, args...).Scan(&c.ID, &c.Title, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "collection", collectionID)
	}

	return &c, nil
}

// List returns all collections ordered by creation time, newest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.Collection, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Select("id", "title", "created_at", "updated_at").
		From("collections").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list collections: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	var result []*domain.Collection
	for rows.Next() {
		var c domain.Collection
		if err := rows.Scan(&c.ID, &c.Title, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list collections: %w", err)
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	if result == nil {
		result = []*domain.Collection{}
	}

	return result, nil
}

const productsByCollectionIDSQL = `
SELECT p.id, p.title, p.status, p.description, p.media,
       p.price::text, p.expense::text, p.created_at, p.updated_at
FROM product_collections pc
JOIN products p ON p.id = pc.product_id
WHERE pc.collection_id = $1
ORDER BY p.created_at DESC`

// ProductsByCollectionID returns the products linked to a collection,
// newest first. Returns an empty slice (not nil) when none are linked.
func (r *Repo) ProductsByCollectionID(ctx context.Context, collectionID uuid.UUID) ([]domain.Product, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, productsByCollectionIDSQL, collectionID)
	if err != nil {
		return nil, fmt.Errorf("products by collection_id: %w", err)
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProductRow(rows)
		if err != nil {
			return nil, fmt.Errorf("products by collection_id: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("products by collection_id: %w", err)
	}

	if result == nil {
		result = []domain.Product{}
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new collection and returns the persisted domain.Collection.
func (r *Repo) Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Insert("collections").
		Columns("title").
		Values(c.Title).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create collection: %w", err)
	}

	created := *c
	err = querier.QueryRow(ctx, query, args...).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "collection", c.Title)
	}

	return &created, nil
}

// Update replaces the collection's title and bumps updated_at.
// Returns domain.ErrNotFound if the collection does not exist.
func (r *Repo) Update(ctx context.Context, collectionID uuid.UUID, title string) (*domain.Collection, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Update("collections").
		Set("title", title).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": collectionID}).
		Suffix("RETURNING id, title, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update collection: %w", err)
	}

	var c domain.Collection
	err = querier.QueryRow(ctx, query, args...).Scan(&c.ID, &c.Title, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "collection", collectionID)
	}

	return &c, nil
}

// Delete removes a collection row. Link rows in product_collections are NOT
// touched here; the integrity maintainer removes them afterwards via
// UnlinkAll. Returns domain.ErrNotFound if the collection does not exist.
func (r *Repo) Delete(ctx context.Context, collectionID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Delete("collections").
		Where(sq.Eq{"id": collectionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete collection: %w", err)
	}

	tag, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "collection", collectionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("collection %s: %w", collectionID, domain.ErrNotFound)
	}

	return nil
}

const unlinkAllSQL = `DELETE FROM product_collections WHERE collection_id = $1`

// UnlinkAll removes every link row referencing the collection in one scoped
// bulk delete, a single statement bounded by the collection id, never a
// per-product loop. This is the integrity-cleanup step after a collection
// delete.
func (r *Repo) UnlinkAll(ctx context.Context, collectionID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, unlinkAllSQL, collectionID); err != nil {
		return postgres.MapError(err, "product_collections", collectionID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanProductRow(rows pgx.Rows) (domain.Product, error) {
	var (
		p           domain.Product
		status      string
		priceText   string
		expenseText string
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := rows.Scan(&p.ID, &p.Title, &status, &p.Description, &p.Media,
		&priceText, &expenseText, &createdAt, &updatedAt); err != nil {
		return domain.Product{}, err
	}

	price, err := decimal.NewFromString(priceText)
	if err != nil {
		return domain.Product{}, fmt.Errorf("decode price %q: %w", priceText, err)
	}
	expense, err := decimal.NewFromString(expenseText)
	if err != nil {
		return domain.Product{}, fmt.Errorf("decode expense %q: %w", expenseText, err)
	}

	p.Status = domain.ProductStatus(status)
	p.Price = price
	p.Expense = expense
	p.CreatedAt = createdAt
	p.UpdatedAt = updatedAt

	return p, nil
}
