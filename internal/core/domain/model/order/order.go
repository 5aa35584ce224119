package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderOwnerMismatch is returned when an operation addresses an order
	// through a different owner than the one it belongs to. Cross-owner access
	// is a hard error, never a silent filter.
	ErrOrderOwnerMismatch = errors.New("order does not belong to this owner")
)

// Order is the aggregate root of a client's purchase lineage with one owner.
// An order spans multiple packing groups over time; at most one of them is
// open at any moment.
//
// Invariants:
//   - checkout token is generated once and never regenerated
//   - shipping due / shipping paid status are a derived cache recomputed from
//     source rows, never authoritative
//   - shippingPaidAt is stamped on the first transition into Paid only
//   - status transitions follow the Status state machine
type Order struct {
	id                 kernel.UUID
	ownerID            kernel.UUID
	clientID           kernel.UUID
	status             Status
	checkoutToken      kernel.Token
	shippingMethodID   *kernel.UUID
	shippingDue        kernel.Money
	shippingPaidStatus payment.PaidStatus
	shippingPaidAt     *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order in New status with a freshly generated checkout
// token. Called exactly once per purchase lineage, on the first item add for
// a client with no open order.
func NewOrder(id kernel.UUID, ownerID kernel.UUID, clientID kernel.UUID) (*Order, error) {
	order := &Order{
		status:             New,
		checkoutToken:      kernel.NewToken(),
		shippingPaidStatus: payment.Unpaid,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setOwnerID(ownerID),
		order.setClientID(clientID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence. The stored checkout
// token is reused as-is; restoring never regenerates it.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	clientID kernel.UUID,
	status Status,
	checkoutToken kernel.Token,
	shippingMethodID *kernel.UUID,
	shippingDue kernel.Money,
	shippingPaidStatus payment.PaidStatus,
	shippingPaidAt *time.Time,
) (*Order, error) {
	order, err := NewOrder(id, ownerID, clientID)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		status.Validate(),
		checkoutToken.Validate(),
		shippingPaidStatus.Validate(),
	); err != nil {
		return nil, err
	}

	order.status = status
	order.checkoutToken = checkoutToken
	order.shippingMethodID = shippingMethodID
	order.shippingDue = shippingDue
	order.shippingPaidStatus = shippingPaidStatus
	order.shippingPaidAt = shippingPaidAt
	return order, nil
}

// Validate ensures the order was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the tenant that owns the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// ClientID returns the client the order belongs to.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CheckoutToken returns the stable public checkout token.
func (o *Order) CheckoutToken() kernel.Token {
	return o.checkoutToken
}

// ShippingMethodID returns the assigned shipping method, or nil when the
// client has not picked one yet.
func (o *Order) ShippingMethodID() *kernel.UUID {
	return o.shippingMethodID
}

// ShippingDue returns the cached consolidated shipping cost.
func (o *Order) ShippingDue() kernel.Money {
	return o.shippingDue
}

// ShippingPaidStatus returns the cached shipping paid status.
func (o *Order) ShippingPaidStatus() payment.PaidStatus {
	return o.shippingPaidStatus
}

// ShippingPaidAt returns when shipping first became fully paid, or nil.
func (o *Order) ShippingPaidAt() *time.Time {
	return o.shippingPaidAt
}

// AssertOwnedBy fails with ErrOrderOwnerMismatch when the order belongs to a
// different owner.
func (o *Order) AssertOwnedBy(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	if !o.ownerID.IsEqual(ownerID) {
		return ErrOrderOwnerMismatch
	}
	return nil
}

// AssignShippingMethod records the client's shipping method choice. The
// cached shipping due stays stale until the next recalculation.
func (o *Order) AssignShippingMethod(methodID kernel.UUID) error {
	if err := methodID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipping method id", err)
	}
	o.shippingMethodID = &methodID
	return nil
}

// UpdateShippingCache overwrites the cached shipping due amount and paid
// status. The shippingPaidAt timestamp is stamped only on the first
// transition into Paid; later recalculations that stay Paid keep it.
func (o *Order) UpdateShippingCache(due kernel.Money, status payment.PaidStatus, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.shippingDue = due
	if status == payment.Paid && o.shippingPaidStatus != payment.Paid && o.shippingPaidAt == nil {
		o.shippingPaidAt = &now
	}
	o.shippingPaidStatus = status
	return nil
}

// CompleteCheckout advances the order from an open status to AwaitingPayment.
func (o *Order) CompleteCheckout() error {
	next, err := o.status.CompleteCheckout()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// OpenAdding reopens the order for product appends (panel action).
func (o *Order) OpenAdding() error {
	next, err := o.status.OpenAdding()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// OpenPayment restricts the order to payment only (panel action).
func (o *Order) OpenPayment() error {
	next, err := o.status.OpenPayment()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// MarkReadyToShip advances the order from AwaitingPayment to ReadyToShip.
func (o *Order) MarkReadyToShip() error {
	next, err := o.status.MarkReadyToShip()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Ship advances the order from ReadyToShip to Shipped.
func (o *Order) Ship() error {
	next, err := o.status.Ship()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Complete advances the order from Shipped to Completed.
func (o *Order) Complete() error {
	next, err := o.status.Complete()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Cancel moves any non-terminal order to Cancelled.
func (o *Order) Cancel() error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Archive moves any non-terminal order to Archived.
func (o *Order) Archive() error {
	next, err := o.status.Archive()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client id", err)
	}
	o.clientID = clientID
	return nil
}
