package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment records.
type PaymentRepository interface {
	// Add persists a new payment record to storage.
	Add(ctx context.Context, record *payment.Record) error

	// Update persists changes to an existing payment record.
	Update(ctx context.Context, record *payment.Record) error

	// Get retrieves a payment record by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such record exists.
	Get(ctx context.Context, id kernel.UUID) (*payment.Record, error)

	// SumCapturedByOrder returns the order's captured amount: settled rows
	// minus refunded rows across all of the order's payments.
	SumCapturedByOrder(ctx context.Context, orderID kernel.UUID) (kernel.Money, error)

	// SumCapturedByGroup returns the group's captured amount. Available only
	// when the deployed schema links payments to groups; with order-scoped
	// schemas the adapter falls back to the order sum.
	SumCapturedByGroup(ctx context.Context, groupID kernel.UUID) (kernel.Money, error)
}
