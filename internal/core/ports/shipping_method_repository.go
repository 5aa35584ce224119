package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
)

// ShippingMethodRepository defines the read contract for shipping methods
// and their weight-bracket rules. Methods are reference data maintained
// outside the ledger; the ledger only reads them.
type ShippingMethodRepository interface {
	// Get retrieves a shipping method with its rules.
	// Returns errs.ObjectNotFoundError when no such method exists.
	Get(ctx context.Context, id kernel.UUID) (*shipping.Method, error)

	// ListActive retrieves the tenant's active methods with their rules.
	// Feeds the consolidation preview across all offered methods.
	ListActive(ctx context.Context, ownerID kernel.UUID) ([]*shipping.Method, error)
}
