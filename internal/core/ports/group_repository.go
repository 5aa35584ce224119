package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/group"
	"fulfillment/internal/core/domain/model/kernel"
)

// GroupRepository defines the persistence contract for packing groups.
type GroupRepository interface {
	// Add persists a new packing group to storage.
	Add(ctx context.Context, aggregate *group.PackingGroup) error

	// Update persists changes to an existing packing group.
	Update(ctx context.Context, aggregate *group.PackingGroup) error

	// Get retrieves a packing group by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such group exists.
	Get(ctx context.Context, id kernel.UUID) (*group.PackingGroup, error)

	// GetByToken retrieves a packing group by its public group token.
	GetByToken(ctx context.Context, token kernel.Token) (*group.PackingGroup, error)

	// FindOpenByOrder retrieves the order's open (checkout not completed)
	// group, if any. At most one open group exists per order; the resolver
	// enforces that invariant under a per-client lock.
	FindOpenByOrder(ctx context.Context, orderID kernel.UUID) (*group.PackingGroup, error)

	// ListByOrder retrieves all of the order's groups, oldest first.
	// That ordering drives the cross-group payment pool allocation.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*group.PackingGroup, error)
}
