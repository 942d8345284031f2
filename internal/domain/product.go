package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus is the sale status of a product. The values are the exact
// strings shown in the storefront, so free-text search can match them.
type ProductStatus string

const (
	ProductStatusArchived ProductStatus = "Archived"
	ProductStatusOnSale   ProductStatus = "On Sale"
	ProductStatusPending  ProductStatus = "Pending"
	ProductStatusSoldOut  ProductStatus = "Sold Out"
)

func (s ProductStatus) String() string { return string(s) }

func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusArchived, ProductStatusOnSale, ProductStatusPending, ProductStatusSoldOut:
		return true
	}
	return false
}

// Product is a catalog product. Collections holds the collections the product
// belongs to (M2M via the product_collections table); it is resolved on reads
// and is never persisted on the product row itself.
//
// Price and Expense are fixed-point decimals (NUMERIC(12,2) in the store) so
// monetary values round-trip losslessly.
type Product struct {
	ID          uuid.UUID
	Title       string
	Status      ProductStatus
	Description string
	Media       []string
	Price       decimal.Decimal
	Expense     decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Collections []Collection
}

// CollectionIDs returns the IDs of the product's resolved collections.
func (p *Product) CollectionIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(p.Collections))
	for i, c := range p.Collections {
		ids[i] = c.ID
	}
	return ids
}
