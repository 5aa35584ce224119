// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest composition that covers its writes.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ClientLocker serializes order/group resolution per client inside the
	// current transaction. Returns ports.ErrLockBusy on acquisition timeout.
	ClientLocker interface {
		LockClient(ctx context.Context, ownerID, clientID string) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// GroupRepoFactory provides access to the packing group repository within a transaction.
	GroupRepoFactory interface {
		GroupRepository() ports.GroupRepository
	}

	// LineItemRepoFactory provides access to the line item repository within a transaction.
	LineItemRepoFactory interface {
		LineItemRepository() ports.LineItemRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// ShippingMethodRepoFactory provides access to the shipping method
	// repository within a transaction.
	ShippingMethodRepoFactory interface {
		ShippingMethodRepository() ports.ShippingMethodRepository
	}

	// LedgerUoW manages transactions for item mutations: order/group
	// resolution under the client lock plus line item writes.
	LedgerUoW interface {
		TxManager
		ClientLocker
		OrderRepoFactory
		GroupRepoFactory
		LineItemRepoFactory
	}

	// LedgerUoWFactory creates new ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// RecalcUoW manages transactions for the shipping cache recomputation.
	// Reads items, method rules and captured payments under the client lock;
	// writes the order cache.
	RecalcUoW interface {
		TxManager
		ClientLocker
		OrderRepoFactory
		LineItemRepoFactory
		PaymentRepoFactory
		ShippingMethodRepoFactory
	}

	// RecalcUoWFactory creates new recalculation unit of work instances.
	RecalcUoWFactory interface {
		Create() RecalcUoW
	}

	// SettlementUoW manages the payment-plus-status transaction: the captured
	// payment and the recalculated paid statuses commit or roll back together,
	// serialized per client so concurrent settlements cannot interleave their
	// sum-and-update sequences.
	SettlementUoW interface {
		TxManager
		ClientLocker
		OrderRepoFactory
		GroupRepoFactory
		LineItemRepoFactory
		PaymentRepoFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	// CheckoutUoW manages transactions for checkout completion: the group
	// freeze and the order status advance commit together.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		GroupRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages transactions for order-only lifecycle operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LabelUoW manages transactions for carrier label creation: reads the
	// order, items and method, writes the shipped order.
	LabelUoW interface {
		TxManager
		OrderRepoFactory
		LineItemRepoFactory
		ShippingMethodRepoFactory
	}

	// LabelUoWFactory creates new label unit of work instances.
	LabelUoWFactory interface {
		Create() LabelUoW
	}
)
