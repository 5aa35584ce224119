package kernel

import (
	"github.com/shopspring/decimal"
)

// quantityPrecision is the number of decimal places item quantities carry.
// Three decimals support weight-sold goods (e.g. 0.250 kg of loose product).
const quantityPrecision = 3

// Quantity is an immutable item quantity with fixed three-decimal precision.
// Quantities are never negative; construction floors negative input at zero,
// matching how caller input is normalized before persistence.
//
// The zero value is a valid zero quantity.
type Quantity struct {
	value decimal.Decimal
}

// NewQuantity creates a Quantity rounded to three decimal places and floored
// at zero.
func NewQuantity(value decimal.Decimal) Quantity {
	rounded := value.Round(quantityPrecision)
	if rounded.IsNegative() {
		return Quantity{}
	}
	return Quantity{value: rounded}
}

// NewQuantityFromFloat creates a Quantity from a float64.
func NewQuantityFromFloat(value float64) Quantity {
	return NewQuantity(decimal.NewFromFloat(value))
}

// ZeroQuantity returns the zero quantity.
func ZeroQuantity() Quantity {
	return Quantity{}
}

// Decimal returns the underlying decimal value.
func (q Quantity) Decimal() decimal.Decimal {
	return q.value
}

// IsZero reports whether the quantity is exactly zero.
func (q Quantity) IsZero() bool {
	return q.value.IsZero()
}

// IsPositive reports whether the quantity is above zero.
func (q Quantity) IsPositive() bool {
	return q.value.IsPositive()
}

// LessThan reports whether q < other.
func (q Quantity) LessThan(other Quantity) bool {
	return q.value.LessThan(other.value)
}

// GreaterThanOrEqual reports whether q >= other.
func (q Quantity) GreaterThanOrEqual(other Quantity) bool {
	return q.value.GreaterThanOrEqual(other.value)
}

// IsEqual compares two quantities for exact equality.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value.Equal(other.value)
}

// Min returns the smaller of two quantities.
func (q Quantity) Min(other Quantity) Quantity {
	if other.value.LessThan(q.value) {
		return other
	}
	return q
}

// String renders the quantity with three decimal places, e.g. "1.500".
func (q Quantity) String() string {
	return q.value.StringFixed(quantityPrecision)
}
