package kernel

import (
	"github.com/shopspring/decimal"
)

// moneyPrecision is the number of decimal places every monetary amount is
// rounded to. All prices, totals and captured amounts carry two decimals.
const moneyPrecision = 2

// Money is an immutable monetary amount with fixed two-decimal precision.
// Amounts may be negative (e.g. intermediate reconciliation figures); callers
// that require a non-negative amount clamp explicitly via ClampNonNegative.
//
// The zero value is a valid zero amount, so Money can be embedded in
// aggregates without a constructor guard.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money rounded to two decimal places (half up).
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount.Round(moneyPrecision)}
}

// NewMoneyFromFloat creates a Money from a float64, rounded to two decimals.
// Intended for test fixtures and configuration values; persistence paths
// should construct from decimal strings to avoid binary float artifacts.
func NewMoneyFromFloat(amount float64) Money {
	return NewMoney(decimal.NewFromFloat(amount))
}

// NewMoneyFromString parses a decimal string into a Money.
func NewMoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(d), nil
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{}
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts. The result may be negative.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// ClampNonNegative returns the amount floored at zero.
func (m Money) ClampNonNegative() Money {
	if m.amount.IsNegative() {
		return ZeroMoney()
	}
	return m
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// LessThanOrEqual reports whether m <= other.
func (m Money) LessThanOrEqual(other Money) bool {
	return m.amount.LessThanOrEqual(other.amount)
}

// GreaterThanOrEqual reports whether m >= other.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// IsEqual compares two amounts for exact equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Min returns the smaller of two amounts.
func (m Money) Min(other Money) Money {
	if other.amount.LessThan(m.amount) {
		return other
	}
	return m
}

// String renders the amount with two decimal places, e.g. "12.50".
func (m Money) String() string {
	return m.amount.StringFixed(moneyPrecision)
}
