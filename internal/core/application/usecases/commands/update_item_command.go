package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpdateItemCommandIsNotConstructed = errors.New(
		"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
	)
	ErrUpdateItemPatchIsEmpty = errors.New("at least one patch field is required")
)

// UpdateItemCommand represents a request to patch a line item in an open
// packing group. Nil patch fields keep their current values.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	ownerID   kernel.UUID
	orderID   kernel.UUID
	groupID   kernel.UUID
	itemID    kernel.UUID
	qty       *kernel.Quantity
	unitPrice *kernel.Money
	vatRate   *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand creates a command to patch an item. At least one of
// qty, unitPrice, vatRate must be provided.
func NewUpdateItemCommand(
	ownerID kernel.UUID,
	orderID kernel.UUID,
	groupID kernel.UUID,
	itemID kernel.UUID,
	qty *kernel.Quantity,
	unitPrice *kernel.Money,
	vatRate *decimal.Decimal,
) (UpdateItemCommand, error) {
	command := UpdateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOwnerID(ownerID),
		command.setOrderID(orderID),
		command.setGroupID(groupID),
		command.setItemID(itemID),
		command.setPatch(qty, unitPrice, vatRate),
	); err != nil {
		return UpdateItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// OwnerID returns the tenant the item belongs to.
func (c UpdateItemCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// OrderID returns the order the group must belong to.
func (c UpdateItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// GroupID returns the packing group holding the item.
func (c UpdateItemCommand) GroupID() kernel.UUID {
	return c.groupID
}

// ItemID returns the item to patch.
func (c UpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Qty returns the new quantity, or nil to keep the current one.
func (c UpdateItemCommand) Qty() *kernel.Quantity {
	return c.qty
}

// UnitPrice returns the new unit price, or nil to keep the current one.
func (c UpdateItemCommand) UnitPrice() *kernel.Money {
	return c.unitPrice
}

// VatRate returns the new vat rate, or nil to keep the current one.
func (c UpdateItemCommand) VatRate() *decimal.Decimal {
	return c.vatRate
}

func (c *UpdateItemCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *UpdateItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateItemCommand) setGroupID(groupID kernel.UUID) error {
	if err := groupID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("group id", err)
	}
	c.groupID = groupID
	return nil
}

func (c *UpdateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("item id", err)
	}
	c.itemID = itemID
	return nil
}

func (c *UpdateItemCommand) setPatch(qty *kernel.Quantity, unitPrice *kernel.Money, vatRate *decimal.Decimal) error {
	if qty == nil && unitPrice == nil && vatRate == nil {
		return ErrUpdateItemPatchIsEmpty
	}
	if qty != nil && !qty.IsPositive() {
		return ErrItemQtyIsInvalid
	}
	if unitPrice != nil && unitPrice.IsNegative() {
		return errs.NewValueIsInvalidError("unit price")
	}
	if vatRate != nil && vatRate.IsNegative() {
		return ErrItemVatRateIsInvalid
	}

	c.qty = qty
	c.unitPrice = unitPrice
	c.vatRate = vatRate
	return nil
}
