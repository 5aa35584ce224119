package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/group"
	"fulfillment/internal/core/domain/model/kernel"
)

// LineItemRepository defines the persistence contract for line items.
//
// Removal follows the strategy chosen from the schema capability descriptor
// at startup: a removal timestamp, a boolean flag, or a hard delete. The
// ledger always calls Remove and never branches on the physical variant.
type LineItemRepository interface {
	// Add persists a new line item to storage.
	Add(ctx context.Context, item *group.LineItem) error

	// Update persists changes to an existing line item.
	Update(ctx context.Context, item *group.LineItem) error

	// Get retrieves a line item scoped by its identifier, its group and the
	// owning tenant. All three must match; a cross-scope identifier yields
	// errs.ObjectNotFoundError, never another tenant's row.
	Get(ctx context.Context, id kernel.UUID, groupID kernel.UUID, ownerID kernel.UUID) (*group.LineItem, error)

	// ListActiveByGroup retrieves the group's items that are not removed.
	ListActiveByGroup(ctx context.Context, groupID kernel.UUID) ([]*group.LineItem, error)

	// ListActiveByOrder retrieves all active items across the order's groups.
	// Feeds the order-wide weight and due totals.
	ListActiveByOrder(ctx context.Context, orderID kernel.UUID) ([]*group.LineItem, error)

	// Remove removes the item using the configured removal strategy.
	Remove(ctx context.Context, item *group.LineItem) error
}
