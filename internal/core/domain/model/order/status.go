package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	New ──┬──> OpenAddProducts ──┬──> AwaitingPayment ──> ReadyToShip ──> Shipped ──> Completed
//	      ├──> OpenPaymentOnly ──┤
//	      └──────────────────────┘
//
// Cancelled and Archived are side branches reachable from any non-terminal
// state. Items may only be appended while the order is in one of the
// OpenForItemsStatuses; that set is a named constant, not a rule scattered
// across call sites.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// New is the initial status when an order is created on first item add.
	New

	// OpenAddProducts means the owner opened the order for further item appends.
	OpenAddProducts

	// OpenPaymentOnly means the owner closed the order for new parser/shop
	// items while the client settles what is already in it.
	OpenPaymentOnly

	// AwaitingPayment means checkout completed and payment is expected.
	AwaitingPayment

	// ReadyToShip means payment cleared and the order awaits a carrier label.
	ReadyToShip

	// Shipped means a label was created and the parcel is with the carrier.
	Shipped

	// Completed means the order lifecycle finished successfully.
	Completed

	// Cancelled means the order was abandoned before completion.
	Cancelled

	// Archived means the owner removed the order from active views.
	Archived
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		New:             "new",
		OpenAddProducts: "open_add_products",
		OpenPaymentOnly: "open_payment_only",
		AwaitingPayment: "awaiting_payment",
		ReadyToShip:     "ready_to_ship",
		Shipped:         "shipped",
		Completed:       "completed",
		Cancelled:       "cancelled",
		Archived:        "archived",
	}
}

// OpenForItemsStatuses is the set of statuses in which new line items may be
// appended to the order. Resolution of a client's current open order searches
// exactly this set.
func OpenForItemsStatuses() []Status {
	return []Status{New, OpenAddProducts, OpenPaymentOnly}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s < New || s > Archived {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the persisted key of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsOpenForItems reports whether the status is in the open-for-items set.
func (s Status) IsOpenForItems() bool {
	for _, open := range OpenForItemsStatuses() {
		if s == open {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == Archived
}

// CompleteCheckout transitions any open-for-items status to AwaitingPayment.
func (s Status) CompleteCheckout() (Status, error) {
	if !s.IsOpenForItems() {
		return 0, errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%s is not a valid status to complete checkout", s))
	}
	return AwaitingPayment, nil
}

// OpenAdding moves an open order to OpenAddProducts.
// This is an owner-driven (panel) transition.
func (s Status) OpenAdding() (Status, error) {
	if !s.IsOpenForItems() {
		return 0, errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%s is not a valid status to reopen for products", s))
	}
	return OpenAddProducts, nil
}

// OpenPayment moves an open order to OpenPaymentOnly.
// This is an owner-driven (panel) transition.
func (s Status) OpenPayment() (Status, error) {
	if !s.IsOpenForItems() {
		return 0, errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%s is not a valid status to restrict to payment", s))
	}
	return OpenPaymentOnly, nil
}

// MarkReadyToShip transitions AwaitingPayment to ReadyToShip.
func (s Status) MarkReadyToShip() (Status, error) {
	if s != AwaitingPayment {
		return 0, errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%s is not a valid status to mark ready to ship", s))
	}
	return ReadyToShip, nil
}

// Ship transitions ReadyToShip to Shipped.
func (s Status) Ship() (Status, error) {
	if s != ReadyToShip {
		return 0, errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%s is not a valid status to ship", s))
	}
	return Shipped, nil
}

// Complete transitions Shipped to Completed.
func (s Status) Complete() (Status, error) {
	if s != Shipped {
		return 0, errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%s is not a valid status to complete", s))
	}
	return Completed, nil
}

// Cancel transitions any non-terminal status to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%s is terminal and cannot be cancelled", s))
	}
	return Cancelled, nil
}

// Archive transitions any non-terminal status to Archived.
func (s Status) Archive() (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%s is terminal and cannot be archived", s))
	}
	return Archived, nil
}
