package group

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrGroupIsNotConstructed is returned when a PackingGroup instance was
	// not created through NewPackingGroup or RestorePackingGroup.
	ErrGroupIsNotConstructed = errors.New("PackingGroup must be created via NewPackingGroup constructor")

	// ErrCheckoutLocked is returned when a mutation addresses a group whose
	// checkout already completed. Completed groups are frozen, not deleted.
	ErrCheckoutLocked = errors.New("packing group is locked after checkout completion")

	// ErrCheckoutAlreadyCompleted is returned when completing checkout on a
	// group that is already completed.
	ErrCheckoutAlreadyCompleted = errors.New("packing group checkout is already completed")
)

// PackingGroup is one shippable, payable unit within an order.
//
// Invariants:
//   - at most one open (checkout-completed = false) group exists per order;
//     that uniqueness is enforced by the resolver under a per-client lock
//   - the group token is generated once and never regenerated
//   - once checkoutCompleted is set, item mutations are rejected with
//     ErrCheckoutLocked
type PackingGroup struct {
	id                kernel.UUID
	orderID           kernel.UUID
	groupToken        kernel.Token
	checkoutCompleted bool
	paidStatus        payment.PaidStatus
	createdAt         time.Time

	guard guard.ConstructorGuard
}

// NewPackingGroup creates an open group with a freshly generated group token.
func NewPackingGroup(id kernel.UUID, orderID kernel.UUID, createdAt time.Time) (*PackingGroup, error) {
	packingGroup := &PackingGroup{
		groupToken: kernel.NewToken(),
		paidStatus: payment.Unpaid,
		createdAt:  createdAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		packingGroup.setID(id),
		packingGroup.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return packingGroup, nil
}

// RestorePackingGroup reconstructs a group from persistence. The stored group
// token is reused as-is.
func RestorePackingGroup(
	id kernel.UUID,
	orderID kernel.UUID,
	groupToken kernel.Token,
	checkoutCompleted bool,
	paidStatus payment.PaidStatus,
	createdAt time.Time,
) (*PackingGroup, error) {
	packingGroup, err := NewPackingGroup(id, orderID, createdAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(groupToken.Validate(), paidStatus.Validate()); err != nil {
		return nil, err
	}

	packingGroup.groupToken = groupToken
	packingGroup.checkoutCompleted = checkoutCompleted
	packingGroup.paidStatus = paidStatus
	return packingGroup, nil
}

// Validate ensures the group was constructed through a constructor.
func (g *PackingGroup) Validate() error {
	if g == nil {
		return ErrGroupIsNotConstructed
	}
	return g.guard.Validate(ErrGroupIsNotConstructed)
}

// ID returns the group's unique identifier.
func (g *PackingGroup) ID() kernel.UUID {
	return g.id
}

// OrderID returns the order the group belongs to.
func (g *PackingGroup) OrderID() kernel.UUID {
	return g.orderID
}

// GroupToken returns the stable public group token.
func (g *PackingGroup) GroupToken() kernel.Token {
	return g.groupToken
}

// IsCheckoutCompleted reports whether the group is frozen.
func (g *PackingGroup) IsCheckoutCompleted() bool {
	return g.checkoutCompleted
}

// PaidStatus returns the group's derived paid status.
func (g *PackingGroup) PaidStatus() payment.PaidStatus {
	return g.paidStatus
}

// CreatedAt returns when the group was opened. Cross-group payment allocation
// applies pools to groups in this order, oldest first.
func (g *PackingGroup) CreatedAt() time.Time {
	return g.createdAt
}

// EnsureMutable fails with ErrCheckoutLocked when the group is frozen.
// Every mutating item operation calls this guard first.
func (g *PackingGroup) EnsureMutable() error {
	if g.checkoutCompleted {
		return ErrCheckoutLocked
	}
	return nil
}

// CompleteCheckout freezes the group. Completing twice is an error.
func (g *PackingGroup) CompleteCheckout() error {
	if g.checkoutCompleted {
		return ErrCheckoutAlreadyCompleted
	}
	g.checkoutCompleted = true
	return nil
}

// SetPaidStatus overwrites the derived paid status.
func (g *PackingGroup) SetPaidStatus(status payment.PaidStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	g.paidStatus = status
	return nil
}

func (g *PackingGroup) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}

func (g *PackingGroup) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	g.orderID = orderID
	return nil
}
