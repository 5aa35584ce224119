package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// OrderAction is a panel-driven order lifecycle transition.
type OrderAction int

const (
	// OrderActionUnknown represents an invalid or undefined action.
	OrderActionUnknown OrderAction = iota

	// OrderActionOpenAdding reopens the order for product appends.
	OrderActionOpenAdding

	// OrderActionOpenPayment restricts the order to payment only.
	OrderActionOpenPayment

	// OrderActionMarkReadyToShip marks a paid order ready for a carrier label.
	OrderActionMarkReadyToShip

	// OrderActionComplete closes a shipped order.
	OrderActionComplete

	// OrderActionCancel abandons the order.
	OrderActionCancel

	// OrderActionArchive removes the order from active views.
	OrderActionArchive
)

// Validate checks if the OrderAction value is valid.
func (a OrderAction) Validate() error {
	if a < OrderActionOpenAdding || a > OrderActionArchive {
		return errs.NewValueIsInvalidErrorWithCause("order action",
			fmt.Errorf("%d is not a valid order action", a))
	}
	return nil
}

// ChangeOrderStatusCommand represents a panel-driven lifecycle transition of
// an order. The shipping transition triggered by label creation has its own
// command; everything owner-clickable goes through here.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID
	orderID kernel.UUID
	action  OrderAction

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a lifecycle transition command.
func NewChangeOrderStatusCommand(
	ownerID kernel.UUID,
	orderID kernel.UUID,
	action OrderAction,
) (ChangeOrderStatusCommand, error) {
	command := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOwnerID(ownerID),
		command.setOrderID(orderID),
		command.setAction(action),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OwnerID returns the tenant the order belongs to.
func (c ChangeOrderStatusCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// OrderID returns the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Action returns the requested transition.
func (c ChangeOrderStatusCommand) Action() OrderAction {
	return c.action
}

func (c *ChangeOrderStatusCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setAction(action OrderAction) error {
	if err := action.Validate(); err != nil {
		return err
	}
	c.action = action
	return nil
}
