// Package order implements the read-only Order repository. Orders are
// written by the external checkout process; this backend only reads them.
package order

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/craftshop/admin-backend/internal/adapter/postgres"
	"github.com/craftshop/admin-backend/internal/domain"
)

// Repo provides order lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new order repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"id", "customer_key", "street", "city", "state", "postal_code", "country",
	"total_amount::text", "shipping_rate", "created_at",
}

const itemsByOrderIDSQL = `
SELECT product_id, color, size, quantity
FROM order_items
WHERE order_id = $1
ORDER BY position`

// GetByID returns an order with its line items.
// Returns domain.ErrNotFound if the order does not exist.
func (r *Repo) GetByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get order: %w", err)
	}

	o, err := scanOrder(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "order", orderID)
	}

	items, err := r.itemsByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return o, nil
}

// List returns all orders ordered by creation time, newest first, without
// line items (the admin list view only needs totals and item counts are
// resolved separately when required). Returns an empty slice when none exist.
func (r *Repo) List(ctx context.Context) ([]*domain.Order, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list orders: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var result []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	if result == nil {
		result = []*domain.Order{}
	}

	return result, nil
}

func (r *Repo) itemsByOrderID(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, itemsByOrderIDSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ProductID, &it.Color, &it.Size, &it.Quantity); err != nil {
			return nil, fmt.Errorf("order items: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order items: %w", err)
	}

	if items == nil {
		items = []domain.OrderItem{}
	}

	return items, nil
}

// scanOrder scans an orderColumns row from either pgx.Row or pgx.Rows.
func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o         domain.Order
		totalText string
	)

	if err := row.Scan(&o.ID, &o.CustomerKey,
		&o.Address.Street, &o.Address.City, &o.Address.State,
		&o.Address.PostalCode, &o.Address.Country,
		&totalText, &o.ShippingRate, &o.CreatedAt); err != nil {
		return nil, err
	}

	total, err := decimal.NewFromString(totalText)
	if err != nil {
		return nil, fmt.Errorf("decode total_amount %q: %w", totalText, err)
	}
	o.TotalAmount = total

	return &o, nil
}
