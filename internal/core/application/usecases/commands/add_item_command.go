package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/group"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
	ErrItemNameIsRequired   = errors.New("item name is required")
	ErrItemQtyIsInvalid     = errors.New("item quantity must be greater than 0")
	ErrItemVatRateIsInvalid = errors.New("item vat rate must not be negative")
)

// AddItemCommand represents a request to append a line item to the client's
// open packing group. The order and group are resolved, or created, by the
// handler; callers only address the client.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	ownerID    kernel.UUID
	clientID   kernel.UUID
	productID  *kernel.UUID
	name       string
	qty        kernel.Quantity
	unitPrice  kernel.Money
	vatRate    decimal.Decimal
	sourceType group.SourceType

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to append a line item. productID is nil
// for custom items. Quantity and price arrive pre-normalized by the kernel
// value objects; the quantity must be positive and the price non-negative.
func NewAddItemCommand(
	ownerID kernel.UUID,
	clientID kernel.UUID,
	productID *kernel.UUID,
	name string,
	qty kernel.Quantity,
	unitPrice kernel.Money,
	vatRate decimal.Decimal,
	sourceType group.SourceType,
) (AddItemCommand, error) {
	command := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOwnerID(ownerID),
		command.setClientID(clientID),
		command.setProductID(productID),
		command.setName(name),
		command.setQty(qty),
		command.setUnitPrice(unitPrice),
		command.setVatRate(vatRate),
		command.setSourceType(sourceType),
	); err != nil {
		return AddItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OwnerID returns the tenant the item belongs to.
func (c AddItemCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// ClientID returns the client whose open group receives the item.
func (c AddItemCommand) ClientID() kernel.UUID {
	return c.clientID
}

// ProductID returns the catalog reference, or nil for custom items.
func (c AddItemCommand) ProductID() *kernel.UUID {
	return c.productID
}

// Name returns the item name snapshot.
func (c AddItemCommand) Name() string {
	return c.name
}

// Qty returns the item quantity.
func (c AddItemCommand) Qty() kernel.Quantity {
	return c.qty
}

// UnitPrice returns the unit price.
func (c AddItemCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

// VatRate returns the vat rate in percent.
func (c AddItemCommand) VatRate() decimal.Decimal {
	return c.vatRate
}

// SourceType returns the sales channel the item came from.
func (c AddItemCommand) SourceType() group.SourceType {
	return c.sourceType
}

func (c *AddItemCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *AddItemCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client id", err)
	}
	c.clientID = clientID
	return nil
}

func (c *AddItemCommand) setProductID(productID *kernel.UUID) error {
	if productID == nil {
		return nil
	}
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("product id", err)
	}
	c.productID = productID
	return nil
}

func (c *AddItemCommand) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	c.name = name
	return nil
}

func (c *AddItemCommand) setQty(qty kernel.Quantity) error {
	if !qty.IsPositive() {
		return ErrItemQtyIsInvalid
	}
	c.qty = qty
	return nil
}

func (c *AddItemCommand) setUnitPrice(price kernel.Money) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("unit price")
	}
	c.unitPrice = price
	return nil
}

func (c *AddItemCommand) setVatRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return ErrItemVatRateIsInvalid
	}
	c.vatRate = rate
	return nil
}

func (c *AddItemCommand) setSourceType(sourceType group.SourceType) error {
	if err := sourceType.Validate(); err != nil {
		return err
	}
	c.sourceType = sourceType
	return nil
}
