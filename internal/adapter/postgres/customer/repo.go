// Package customer implements the read-only Customer repository, keyed by
// the external identity key that orders carry.
package customer

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/craftshop/admin-backend/internal/adapter/postgres"
	"github.com/craftshop/admin-backend/internal/domain"
)

// Repo provides customer lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new customer repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// GetByKey returns the customer with the given external identity key.
// Returns domain.ErrNotFound if no such customer exists.
func (r *Repo) GetByKey(ctx context.Context, key string) (*domain.Customer, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Select("customer_key", "name", "email").
		From("customers").
		Where(sq.Eq{"customer_key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get customer: %w", err)
	}

	var c domain.Customer
	err = querier.QueryRow(ctx, query, args...).Scan(&c.Key, &c.Name, &c.Email)
	if err != nil {
		return nil, postgres.MapError(err, "customer", key)
	}

	return &c, nil
}
