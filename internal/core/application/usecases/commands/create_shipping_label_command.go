package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateShippingLabelCommandIsNotConstructed = errors.New(
		"CreateShippingLabelCommand must be created via NewCreateShippingLabelCommand constructor",
	)

	// ErrShippingMethodNotAssigned is returned when labeling an order that has
	// no shipping method picked.
	ErrShippingMethodNotAssigned = errors.New("order has no shipping method assigned")
)

// CreateShippingLabelCommand represents a request to register a ready-to-ship
// order with the carrier and obtain a label.
type CreateShippingLabelCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateShippingLabelCommand creates a label creation command.
func NewCreateShippingLabelCommand(
	ownerID kernel.UUID,
	orderID kernel.UUID,
) (CreateShippingLabelCommand, error) {
	command := CreateShippingLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOwnerID(ownerID),
		command.setOrderID(orderID),
	); err != nil {
		return CreateShippingLabelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShippingLabelCommand) Validate() error {
	return c.guard.Validate(ErrCreateShippingLabelCommandIsNotConstructed)
}

// OwnerID returns the tenant the order belongs to.
func (c CreateShippingLabelCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// OrderID returns the order to label.
func (c CreateShippingLabelCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CreateShippingLabelCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *CreateShippingLabelCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = orderID
	return nil
}
