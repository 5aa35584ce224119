package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("rounds to two decimal places", func(t *testing.T) {
		m := kernel.NewMoney(decimal.RequireFromString("10.005"))

		assert.Equal(t, "10.01", m.String())
	})

	t.Run("zero value is a valid zero amount", func(t *testing.T) {
		var m kernel.Money

		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("parses decimal string", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("12.50")

		require.NoError(t, err)
		assert.Equal(t, "12.50", m.String())
	})

	t.Run("rejects invalid string", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("not-a-number")

		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add and sub", func(t *testing.T) {
		a := kernel.NewMoneyFromFloat(10.50)
		b := kernel.NewMoneyFromFloat(4.25)

		assert.Equal(t, "14.75", a.Add(b).String())
		assert.Equal(t, "6.25", a.Sub(b).String())
	})

	t.Run("sub may go negative", func(t *testing.T) {
		a := kernel.NewMoneyFromFloat(5)
		b := kernel.NewMoneyFromFloat(8)

		diff := a.Sub(b)
		assert.True(t, diff.IsNegative())
		assert.Equal(t, "-3.00", diff.String())
	})

	t.Run("clamp floors negative amounts at zero", func(t *testing.T) {
		diff := kernel.NewMoneyFromFloat(5).Sub(kernel.NewMoneyFromFloat(8))

		assert.True(t, diff.ClampNonNegative().IsZero())
	})

	t.Run("min returns the smaller amount", func(t *testing.T) {
		a := kernel.NewMoneyFromFloat(3)
		b := kernel.NewMoneyFromFloat(7)

		assert.True(t, a.Min(b).IsEqual(a))
		assert.True(t, b.Min(a).IsEqual(a))
	})
}

func TestMoney_Comparisons(t *testing.T) {
	a := kernel.NewMoneyFromFloat(9.99)
	b := kernel.NewMoneyFromFloat(10)

	assert.True(t, a.LessThan(b))
	assert.True(t, a.LessThanOrEqual(b))
	assert.True(t, b.GreaterThanOrEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.True(t, a.IsEqual(kernel.NewMoneyFromFloat(9.99)))
}
