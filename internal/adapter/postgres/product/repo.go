// Package product implements the Product repository using PostgreSQL.
// It provides CRUD, title-unique creation, creation-time-ordered listing,
// the free-text catalog search, and the product side of the
// product_collections M2M link table.
package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/craftshop/admin-backend/internal/adapter/postgres"
	"github.com/craftshop/admin-backend/internal/domain"
)

// Repo provides product persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new product repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// productColumns selects money columns as text so decimal values survive the
// round trip without passing through binary floating point.
var productColumns = []string{
	"p.id", "p.title", "p.status", "p.description", "p.media",
	"p.price::text", "p.expense::text", "p.created_at", "p.updated_at",
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a product by primary key, without resolved collections.
// Returns domain.ErrNotFound if the product does not exist.
func (r *Repo) GetByID(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Select(productColumns...).
		From("products p").
		Where(sq.Eq{"p.id": productID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get product: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "product", productID)
	}

	p, err := pgx.CollectExactlyOneRow(rows, scanProduct)
	if err != nil {
		return nil, postgres.MapError(err, "product", productID)
	}

	return p, nil
}

// List returns all products ordered by creation time, newest first.
// Returns an empty slice (not nil) when the catalog is empty.
func (r *Repo) List(ctx context.Context) ([]*domain.Product, error) {
	query, args, err := builder.
		Select(productColumns...).
		From("products p").
		OrderBy("p.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list products: %w", err)
	}

	return r.queryProducts(ctx, query, args)
}

// Search returns products matching the query as a case-insensitive substring
// of the title, the status, the description, or any linked collection's
// title. An empty query matches every product: a substring of the empty
// string is always true, and the listing-like behavior is intentional.
// Results are unordered.
func (r *Repo) Search(ctx context.Context, q string) ([]*domain.Product, error) {
	pattern := "%" + escapeLike(q) + "%"

	query, args, err := builder.
		Select(productColumns...).
		From("products p").
		Where(sq.Or{
			sq.ILike{"p.title": pattern},
			sq.ILike{"p.status": pattern},
			sq.ILike{"p.description": pattern},
			sq.Expr(`EXISTS (
				SELECT 1 FROM product_collections pc
				JOIN collections c ON c.id = pc.collection_id
				WHERE pc.product_id = p.id AND c.title ILIKE ?)`, pattern),
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search products: %w", err)
	}

	return r.queryProducts(ctx, query, args)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new product and returns the persisted domain.Product
// (without resolved collections; link rows are written via SetCollections).
// Returns domain.ErrAlreadyExists if a product with the same title exists.
func (r *Repo) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Insert("products").
		Columns("title", "status", "description", "media", "price", "expense").
		Values(p.Title, string(p.Status), p.Description, p.Media, p.Price.String(), p.Expense.String()).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create product: %w", err)
	}

	created := *p
	err = querier.QueryRow(ctx, query, args...).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "product", p.Title)
	}

	return &created, nil
}

// Update replaces every mutable field of a product (full-replace semantics)
// and bumps updated_at. Returns domain.ErrNotFound if the product does not
// exist, domain.ErrAlreadyExists if the new title collides.
func (r *Repo) Update(ctx context.Context, productID uuid.UUID, p *domain.Product) (*domain.Product, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Update("products").
		Set("title", p.Title).
		Set("status", string(p.Status)).
		Set("description", p.Description).
		Set("media", p.Media).
		Set("price", p.Price.String()).
		Set("expense", p.Expense.String()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": productID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update product: %w", err)
	}

	updated := *p
	updated.ID = productID
	err = querier.QueryRow(ctx, query, args...).Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "product", productID)
	}

	return &updated, nil
}

// Delete removes a product row. Link rows in product_collections are NOT
// touched here; the integrity maintainer removes them afterwards via
// UnlinkAll. Returns domain.ErrNotFound if the product does not exist.
func (r *Repo) Delete(ctx context.Context, productID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Delete("products").
		Where(sq.Eq{"id": productID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete product: %w", err)
	}

	tag, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "product", productID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", productID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// M2M link operations
// ---------------------------------------------------------------------------

const setCollectionsSQL = `INSERT INTO product_collections (product_id, collection_id)
SELECT $1, unnest($2::uuid[]) ON CONFLICT DO NOTHING`

const unlinkAllSQL = `DELETE FROM product_collections WHERE product_id = $1`

// SetCollections replaces the product's collection links with the given set.
// Meant to run inside the same transaction as Create/Update.
func (r *Repo) SetCollections(ctx context.Context, productID uuid.UUID, collectionIDs []uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, unlinkAllSQL, productID); err != nil {
		return postgres.MapError(err, "product_collections", productID)
	}
	if len(collectionIDs) == 0 {
		return nil
	}

	if _, err := querier.Exec(ctx, setCollectionsSQL, productID, collectionIDs); err != nil {
		return postgres.MapError(err, "product_collections", productID)
	}

	return nil
}

// UnlinkAll removes every link row referencing the product in one scoped bulk
// delete. This is the integrity-cleanup step after a product delete.
func (r *Repo) UnlinkAll(ctx context.Context, productID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, unlinkAllSQL, productID); err != nil {
		return postgres.MapError(err, "product_collections", productID)
	}

	return nil
}

const pruneOrphanLinksSQL = `DELETE FROM product_collections pc
WHERE NOT EXISTS (SELECT 1 FROM products p WHERE p.id = pc.product_id)
   OR NOT EXISTS (SELECT 1 FROM collections c WHERE c.id = pc.collection_id)`

// PruneOrphanLinks removes link rows whose product or collection no longer
// exists. Such rows appear when the post-delete cleanup step fails twice;
// the cleanup command runs this as a periodic repair. Returns the number of
// rows removed.
func (r *Repo) PruneOrphanLinks(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, pruneOrphanLinksSQL)
	if err != nil {
		return 0, fmt.Errorf("prune orphan links: %w", err)
	}

	return tag.RowsAffected(), nil
}

const collectionsByProductIDsSQL = `
SELECT pc.product_id, c.id, c.title, c.created_at, c.updated_at
FROM product_collections pc
JOIN collections c ON c.id = pc.collection_id
WHERE pc.product_id = ANY($1::uuid[])
ORDER BY pc.product_id, c.title`

// CollectionsByProductIDs returns the collections linked to each of the given
// products (batch resolve for reads). Results include ProductID for grouping.
func (r *Repo) CollectionsByProductIDs(ctx context.Context, productIDs []uuid.UUID) ([]domain.CollectionLink, error) {
	if len(productIDs) == 0 {
		return []domain.CollectionLink{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, collectionsByProductIDsSQL, productIDs)
	if err != nil {
		return nil, fmt.Errorf("collections by product_ids: %w", err)
	}
	defer rows.Close()

	var result []domain.CollectionLink
	for rows.Next() {
		var cw domain.CollectionLink
		if err := rows.Scan(&cw.ProductID, &cw.Collection.ID, &cw.Collection.Title,
			&cw.Collection.CreatedAt, &cw.Collection.UpdatedAt); err != nil {
			return nil, fmt.Errorf("collections by product_ids: %w", err)
		}
		result = append(result, cw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("collections by product_ids: %w", err)
	}

	if result == nil {
		result = []domain.CollectionLink{}
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func (r *Repo) queryProducts(ctx context.Context, query string, args []any) ([]*domain.Product, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}

	if products == nil {
		products = []*domain.Product{}
	}

	return products, nil
}

// scanProduct scans a single productColumns row into a domain.Product.
func scanProduct(row pgx.CollectableRow) (*domain.Product, error) {
	var (
		p           domain.Product
		status      string
		priceText   string
		expenseText string
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(&p.ID, &p.Title, &status, &p.Description, &p.Media,
		&priceText, &expenseText, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(priceText)
	if err != nil {
		return nil, fmt.Errorf("decode price %q: %w", priceText, err)
	}
	expense, err := decimal.NewFromString(expenseText)
	if err != nil {
		return nil, fmt.Errorf("decode expense %q: %w", expenseText, err)
	}

	p.Status = domain.ProductStatus(status)
	p.Price = price
	p.Expense = expense
	p.CreatedAt = createdAt
	p.UpdatedAt = updatedAt

	return &p, nil
}

// escapeLike escapes ILIKE wildcards so the query is matched as a literal
// substring, never as a pattern.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
