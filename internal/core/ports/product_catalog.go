package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// ProductSnapshot is the catalog data captured onto a line item at add time.
// Later catalog edits never rewrite existing items.
type ProductSnapshot struct {
	ID        kernel.UUID
	Name      string
	UnitPrice kernel.Money
	Weight    kernel.Weight
}

// ProductCatalog defines the read contract for the tenant's product catalog.
type ProductCatalog interface {
	// GetProduct retrieves a product snapshot scoped to the owning tenant.
	// Returns errs.ObjectNotFoundError when no such product exists.
	GetProduct(ctx context.Context, ownerID kernel.UUID, productID kernel.UUID) (*ProductSnapshot, error)
}
