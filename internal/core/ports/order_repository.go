package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCheckoutToken retrieves an order by its public checkout token.
	GetByCheckoutToken(ctx context.Context, token kernel.Token) (*order.Order, error)

	// FindOpenByClient retrieves the client's orders in an open-for-items
	// status, most recently created first. Resolution picks the head.
	FindOpenByClient(ctx context.Context, ownerID kernel.UUID, clientID kernel.UUID) ([]*order.Order, error)

	// ListOpenIDs retrieves the ids of all orders in an open-for-items
	// status across every tenant. The shipping cache sweep iterates these.
	ListOpenIDs(ctx context.Context) ([]kernel.UUID, error)
}
