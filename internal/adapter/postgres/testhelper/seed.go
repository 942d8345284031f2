package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/craftshop/admin-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCollection creates a collection row and returns it.
func SeedCollection(t *testing.T, pool *pgxpool.Pool, title string) domain.Collection {
	t.Helper()
	ctx := context.Background()

	if title == "" {
		title = "Collection " + uniqueSuffix()
	}

	var c domain.Collection
	c.Title = title
	err := pool.QueryRow(ctx,
		`INSERT INTO collections (title) VALUES ($1) RETURNING id, created_at, updated_at`,
		title,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCollection: %v", err)
	}

	return c
}

// SeedProduct creates a product row (no collection links) and returns it.
// Title defaults to a unique value so parallel tests do not collide on the
// unique constraint.
func SeedProduct(t *testing.T, pool *pgxpool.Pool, title string) domain.Product {
	t.Helper()
	ctx := context.Background()

	if title == "" {
		title = "Product " + uniqueSuffix()
	}

	p := domain.Product{
		Title:       title,
		Status:      domain.ProductStatusOnSale,
		Description: "Seeded product for tests",
		Media:       []string{"img-" + uniqueSuffix()},
		Price:       decimal.RequireFromString("25.00"),
		Expense:     decimal.RequireFromString("10.00"),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO products (title, status, description, media, price, expense)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		p.Title, string(p.Status), p.Description, p.Media, p.Price.String(), p.Expense.String(),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedProduct: %v", err)
	}

	return p
}

// LinkProductToCollection inserts a product_collections row.
func LinkProductToCollection(t *testing.T, pool *pgxpool.Pool, productID, collectionID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO product_collections (product_id, collection_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		productID, collectionID,
	)
	if err != nil {
		t.Fatalf("testhelper: LinkProductToCollection: %v", err)
	}
}

// SeedCustomer creates a customer row keyed by a unique external key.
func SeedCustomer(t *testing.T, pool *pgxpool.Pool) domain.Customer {
	t.Helper()

	suffix := uniqueSuffix()
	c := domain.Customer{
		Key:   "cust_" + suffix,
		Name:  "Test Customer " + suffix,
		Email: "customer-" + suffix + "@example.com",
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO customers (customer_key, name, email) VALUES ($1, $2, $3)`,
		c.Key, c.Name, c.Email,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCustomer: %v", err)
	}

	return c
}

// SeedOrder creates an order with one line item for the given customer and product.
func SeedOrder(t *testing.T, pool *pgxpool.Pool, customerKey string, productID uuid.UUID) domain.Order {
	t.Helper()
	ctx := context.Background()

	o := domain.Order{
		CustomerKey: customerKey,
		Address: domain.ShippingAddress{
			Street:     "1 Test Street",
			City:       "Testville",
			State:      "TS",
			PostalCode: "00001",
			Country:    "Testland",
		},
		TotalAmount:  decimal.RequireFromString("49.99"),
		ShippingRate: "shr_standard",
		CreatedAt:    time.Now().UTC(),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO orders (customer_key, street, city, state, postal_code, country, total_amount, shipping_rate)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		o.CustomerKey, o.Address.Street, o.Address.City, o.Address.State,
		o.Address.PostalCode, o.Address.Country, o.TotalAmount.String(), o.ShippingRate,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedOrder insert order: %v", err)
	}

	item := domain.OrderItem{ProductID: productID, Color: "Black", Size: "M", Quantity: 2}
	_, err = pool.Exec(ctx,
		`INSERT INTO order_items (order_id, position, product_id, color, size, quantity)
		 VALUES ($1, 1, $2, $3, $4, $5)`,
		o.ID, item.ProductID, item.Color, item.Size, item.Quantity,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOrder insert item: %v", err)
	}
	o.Items = []domain.OrderItem{item}

	return o
}
