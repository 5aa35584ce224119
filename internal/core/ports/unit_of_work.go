package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// LockClient serializes order/group resolution for one client of one
	// tenant inside the current transaction. Returns ErrLockBusy when the
	// lock is not acquired within the configured wait.
	LockClient(ctx context.Context, ownerID, clientID string) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// GroupRepository returns a GroupRepository bound to the current transaction.
	GroupRepository() GroupRepository

	// LineItemRepository returns a LineItemRepository bound to the current transaction.
	LineItemRepository() LineItemRepository

	// PaymentRepository returns a PaymentRepository bound to the current transaction.
	PaymentRepository() PaymentRepository

	// ShippingMethodRepository returns a ShippingMethodRepository bound to the
	// current transaction.
	ShippingMethodRepository() ShippingMethodRepository
}
