package domain

import (
	"time"

	"github.com/google/uuid"
)

// Collection is a named group of products (the inverse side of the
// Product↔Collection relation). Products is resolved on reads.
type Collection struct {
	ID        uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time

	Products []Product
}

// CollectionLink pairs a collection with the product it is linked to.
// Batch-resolve result for the product side of the M2M link table.
type CollectionLink struct {
	ProductID  uuid.UUID
	Collection Collection
}
