package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand represents a request to remove a line item from an open
// packing group. The physical removal variant (timestamp, flag or hard
// delete) is the repository's concern.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID
	orderID kernel.UUID
	groupID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove an item.
func NewRemoveItemCommand(
	ownerID kernel.UUID,
	orderID kernel.UUID,
	groupID kernel.UUID,
	itemID kernel.UUID,
) (RemoveItemCommand, error) {
	command := RemoveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOwnerID(ownerID),
		command.setOrderID(orderID),
		command.setGroupID(groupID),
		command.setItemID(itemID),
	); err != nil {
		return RemoveItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// OwnerID returns the tenant the item belongs to.
func (c RemoveItemCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// OrderID returns the order the group must belong to.
func (c RemoveItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// GroupID returns the packing group holding the item.
func (c RemoveItemCommand) GroupID() kernel.UUID {
	return c.groupID
}

// ItemID returns the item to remove.
func (c RemoveItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *RemoveItemCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *RemoveItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = orderID
	return nil
}

func (c *RemoveItemCommand) setGroupID(groupID kernel.UUID) error {
	if err := groupID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("group id", err)
	}
	c.groupID = groupID
	return nil
}

func (c *RemoveItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("item id", err)
	}
	c.itemID = itemID
	return nil
}
