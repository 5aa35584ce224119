package group

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
	// created through NewLineItem or RestoreLineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

	// ErrItemNameIsRequired is returned when the item name snapshot is empty.
	ErrItemNameIsRequired = errors.New("line item name is required")

	// ErrItemQtyIsNotPositive is returned when a new item's quantity is zero.
	ErrItemQtyIsNotPositive = errors.New("line item quantity must be greater than 0")

	// ErrItemAlreadyRemoved is returned when removing an item twice.
	ErrItemAlreadyRemoved = errors.New("line item is already removed")
)

// LineItem is a single priced position inside a packing group.
//
// Invariants:
//   - 0 <= packedCount <= qty at all times; a quantity reduction re-clamps the
//     packed count instead of letting it exceed the new quantity
//   - isPrepared = qty > 0 && packedCount >= qty, always derived
//   - netTotal and vatValue are always recomputed from qty x unitPrice and the
//     vat rate; caller-provided totals are never trusted
type LineItem struct {
	id          kernel.UUID
	ownerID     kernel.UUID
	groupID     kernel.UUID
	productID   *kernel.UUID
	name        string
	qty         kernel.Quantity
	unitPrice   kernel.Money
	vatRate     decimal.Decimal
	netTotal    kernel.Money
	vatValue    kernel.Money
	packedCount kernel.Quantity
	isPrepared  bool
	sourceType  SourceType
	removedAt   *time.Time

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item with computed totals and zero packing
// progress. productID is nil for custom (catalog-less) items. The quantity
// and unit price arrive already normalized by the kernel value objects
// (3 and 2 decimal places, floored at zero); a zero quantity is rejected.
func NewLineItem(
	id kernel.UUID,
	ownerID kernel.UUID,
	groupID kernel.UUID,
	productID *kernel.UUID,
	name string,
	qty kernel.Quantity,
	unitPrice kernel.Money,
	vatRate decimal.Decimal,
	sourceType SourceType,
) (*LineItem, error) {
	item := &LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setOwnerID(ownerID),
		item.setGroupID(groupID),
		item.setProductID(productID),
		item.setName(name),
		item.setQty(qty),
		item.setUnitPrice(unitPrice),
		item.setVatRate(vatRate),
		item.setSourceType(sourceType),
	); err != nil {
		return nil, err
	}

	item.recompute()
	return item, nil
}

// RestoreLineItem reconstructs a line item from persistence, including packing
// progress and the removal marker. Totals are recomputed rather than trusted.
func RestoreLineItem(
	id kernel.UUID,
	ownerID kernel.UUID,
	groupID kernel.UUID,
	productID *kernel.UUID,
	name string,
	qty kernel.Quantity,
	unitPrice kernel.Money,
	vatRate decimal.Decimal,
	packedCount kernel.Quantity,
	sourceType SourceType,
	removedAt *time.Time,
) (*LineItem, error) {
	item, err := NewLineItem(id, ownerID, groupID, productID, name, qty, unitPrice, vatRate, sourceType)
	if err != nil {
		return nil, err
	}

	if packedCount.Decimal().GreaterThan(qty.Decimal()) {
		return nil, errs.NewValueIsOutOfRangeError("packed count",
			packedCount.String(), "0", qty.String())
	}

	item.packedCount = packedCount
	item.removedAt = removedAt
	item.recompute()
	return item, nil
}

// Validate ensures the item was constructed through a constructor.
func (i *LineItem) Validate() error {
	if i == nil {
		return ErrLineItemIsNotConstructed
	}
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i *LineItem) ID() kernel.UUID {
	return i.id
}

// OwnerID returns the tenant that owns the item.
func (i *LineItem) OwnerID() kernel.UUID {
	return i.ownerID
}

// GroupID returns the packing group the item belongs to.
func (i *LineItem) GroupID() kernel.UUID {
	return i.groupID
}

// ProductID returns the catalog product reference, or nil for custom items.
func (i *LineItem) ProductID() *kernel.UUID {
	return i.productID
}

// Name returns the item's name snapshot taken at add time.
func (i *LineItem) Name() string {
	return i.name
}

// Qty returns the item quantity.
func (i *LineItem) Qty() kernel.Quantity {
	return i.qty
}

// UnitPrice returns the unit price.
func (i *LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// VatRate returns the vat rate in percent.
func (i *LineItem) VatRate() decimal.Decimal {
	return i.vatRate
}

// NetTotal returns the computed net total (qty x unit price).
func (i *LineItem) NetTotal() kernel.Money {
	return i.netTotal
}

// VatValue returns the computed vat value.
func (i *LineItem) VatValue() kernel.Money {
	return i.vatValue
}

// GrossTotal returns net total plus vat value.
func (i *LineItem) GrossTotal() kernel.Money {
	return i.netTotal.Add(i.vatValue)
}

// PackedCount returns the physical packing progress.
func (i *LineItem) PackedCount() kernel.Quantity {
	return i.packedCount
}

// IsPrepared reports whether packing is complete for the item.
func (i *LineItem) IsPrepared() bool {
	return i.isPrepared
}

// SourceType returns the item's source classification.
func (i *LineItem) SourceType() SourceType {
	return i.sourceType
}

// RemovedAt returns the soft-delete marker, or nil for active items.
func (i *LineItem) RemovedAt() *time.Time {
	return i.removedAt
}

// IsRemoved reports whether the item is soft-deleted.
func (i *LineItem) IsRemoved() bool {
	return i.removedAt != nil
}

// Patch carries the optional fields of an item update. Nil fields keep their
// current values.
type Patch struct {
	Qty       *kernel.Quantity
	UnitPrice *kernel.Money
	VatRate   *decimal.Decimal
}

// ApplyPatch applies the provided fields and recomputes totals. The packed
// count is re-clamped to min(previous packed count, new qty) so that physical
// packing progress survives a quantity reduction without exceeding the new
// quantity or going negative.
func (i *LineItem) ApplyPatch(patch Patch) error {
	if patch.Qty != nil {
		if err := i.setQty(*patch.Qty); err != nil {
			return err
		}
	}
	if patch.UnitPrice != nil {
		if err := i.setUnitPrice(*patch.UnitPrice); err != nil {
			return err
		}
	}
	if patch.VatRate != nil {
		if err := i.setVatRate(*patch.VatRate); err != nil {
			return err
		}
	}

	i.packedCount = i.packedCount.Min(i.qty)
	i.recompute()
	return nil
}

// SetPackedCount records physical packing progress.
// Fails when the count exceeds the item quantity.
func (i *LineItem) SetPackedCount(count kernel.Quantity) error {
	if count.Decimal().GreaterThan(i.qty.Decimal()) {
		return errs.NewValueIsOutOfRangeError("packed count",
			count.String(), "0", i.qty.String())
	}
	i.packedCount = count
	i.recompute()
	return nil
}

// MarkRemoved soft-deletes the item. Removing twice is an error.
func (i *LineItem) MarkRemoved(at time.Time) error {
	if i.removedAt != nil {
		return ErrItemAlreadyRemoved
	}
	i.removedAt = &at
	return nil
}

// recompute derives netTotal, vatValue and isPrepared from current fields.
// net = round(qty x unitPrice, 2); vat = round(net x vatRate/100, 2).
func (i *LineItem) recompute() {
	i.netTotal = kernel.NewMoney(i.qty.Decimal().Mul(i.unitPrice.Decimal()))
	i.vatValue = kernel.NewMoney(i.netTotal.Decimal().Mul(i.vatRate).Div(decimal.NewFromInt(100)))
	i.isPrepared = i.qty.IsPositive() && i.packedCount.GreaterThanOrEqual(i.qty)
}

func (i *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *LineItem) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}
	i.ownerID = ownerID
	return nil
}

func (i *LineItem) setGroupID(groupID kernel.UUID) error {
	if err := groupID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("group id", err)
	}
	i.groupID = groupID
	return nil
}

func (i *LineItem) setProductID(productID *kernel.UUID) error {
	if productID == nil {
		return nil
	}
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("product id", err)
	}
	i.productID = productID
	return nil
}

func (i *LineItem) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *LineItem) setQty(qty kernel.Quantity) error {
	if !qty.IsPositive() {
		return ErrItemQtyIsNotPositive
	}
	i.qty = qty
	return nil
}

func (i *LineItem) setUnitPrice(price kernel.Money) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("unit price")
	}
	i.unitPrice = price
	return nil
}

func (i *LineItem) setVatRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return errs.NewValueIsInvalidError("vat rate")
	}
	i.vatRate = rate
	return nil
}

func (i *LineItem) setSourceType(sourceType SourceType) error {
	if err := sourceType.Validate(); err != nil {
		return err
	}
	i.sourceType = sourceType
	return nil
}
