package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRecalculateShippingCommandIsNotConstructed = errors.New(
	"RecalculateShippingCommand must be created via NewRecalculateShippingCommand constructor",
)

// RecalculateShippingCommand represents an explicit request to recompute the
// order's shipping cache, optionally assigning a new shipping method first.
// Unlike the follow-up recompute after item mutations, failures here surface
// to the caller.
type RecalculateShippingCommand struct { //nolint:recvcheck //using for validation
	ownerID  kernel.UUID
	orderID  kernel.UUID
	methodID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecalculateShippingCommand creates a recalculation command. methodID is
// nil to recompute against the already assigned method.
func NewRecalculateShippingCommand(
	ownerID kernel.UUID,
	orderID kernel.UUID,
	methodID *kernel.UUID,
) (RecalculateShippingCommand, error) {
	command := RecalculateShippingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOwnerID(ownerID),
		command.setOrderID(orderID),
		command.setMethodID(methodID),
	); err != nil {
		return RecalculateShippingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecalculateShippingCommand) Validate() error {
	return c.guard.Validate(ErrRecalculateShippingCommandIsNotConstructed)
}

// OwnerID returns the tenant the order belongs to.
func (c RecalculateShippingCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// OrderID returns the order to recompute.
func (c RecalculateShippingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MethodID returns the shipping method to assign first, or nil.
func (c RecalculateShippingCommand) MethodID() *kernel.UUID {
	return c.methodID
}

func (c *RecalculateShippingCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *RecalculateShippingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = orderID
	return nil
}

func (c *RecalculateShippingCommand) setMethodID(methodID *kernel.UUID) error {
	if methodID == nil {
		return nil
	}
	if err := methodID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("method id", err)
	}
	c.methodID = methodID
	return nil
}
