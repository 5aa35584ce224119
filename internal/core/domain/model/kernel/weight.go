package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fulfillment/internal/pkg/errs"
)

// weightPrecision is the number of decimal places package weights carry.
const weightPrecision = 3

// Weight is an immutable package weight in kilograms with fixed three-decimal
// precision. Weights are never negative.
//
// The zero value is a valid zero weight.
type Weight struct {
	value decimal.Decimal
}

// NewWeight creates a Weight rounded to three decimal places.
// Returns an error for negative input.
func NewWeight(value decimal.Decimal) (Weight, error) {
	rounded := value.Round(weightPrecision)
	if rounded.IsNegative() {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%s is negative", rounded))
	}
	return Weight{value: rounded}, nil
}

// NewWeightFromFloat creates a Weight from a float64.
func NewWeightFromFloat(value float64) (Weight, error) {
	return NewWeight(decimal.NewFromFloat(value))
}

// MustNewWeight creates a Weight and panics on invalid input.
// Intended for constants and test fixtures only.
func MustNewWeight(value float64) Weight {
	w, err := NewWeightFromFloat(value)
	if err != nil {
		panic(err)
	}
	return w
}

// ZeroWeight returns the zero weight.
func ZeroWeight() Weight {
	return Weight{}
}

// Decimal returns the underlying decimal value.
func (w Weight) Decimal() decimal.Decimal {
	return w.value
}

// Add returns the sum of two weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{value: w.value.Add(other.value)}
}

// Sub returns the difference of two weights floored at zero.
func (w Weight) Sub(other Weight) Weight {
	diff := w.value.Sub(other.value)
	if diff.IsNegative() {
		return Weight{}
	}
	return Weight{value: diff}
}

// MulQuantity scales the weight by an item quantity, rounded to weight precision.
func (w Weight) MulQuantity(q Quantity) Weight {
	return Weight{value: w.value.Mul(q.Decimal()).Round(weightPrecision)}
}

// IsZero reports whether the weight is exactly zero.
func (w Weight) IsZero() bool {
	return w.value.IsZero()
}

// IsPositive reports whether the weight is above zero.
func (w Weight) IsPositive() bool {
	return w.value.IsPositive()
}

// LessThan reports whether w < other.
func (w Weight) LessThan(other Weight) bool {
	return w.value.LessThan(other.value)
}

// LessThanOrEqual reports whether w <= other.
func (w Weight) LessThanOrEqual(other Weight) bool {
	return w.value.LessThanOrEqual(other.value)
}

// GreaterThanOrEqual reports whether w >= other.
func (w Weight) GreaterThanOrEqual(other Weight) bool {
	return w.value.GreaterThanOrEqual(other.value)
}

// IsEqual compares two weights for exact equality.
func (w Weight) IsEqual(other Weight) bool {
	return w.value.Equal(other.value)
}

// String renders the weight with three decimal places, e.g. "10.000".
func (w Weight) String() string {
	return w.value.StringFixed(weightPrecision)
}
