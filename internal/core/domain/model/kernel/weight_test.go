package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeight(t *testing.T) {
	t.Run("rounds to three decimal places", func(t *testing.T) {
		w, err := kernel.NewWeightFromFloat(1.23456)

		require.NoError(t, err)
		assert.Equal(t, "1.235", w.String())
	})

	t.Run("rejects negative weight", func(t *testing.T) {
		_, err := kernel.NewWeightFromFloat(-0.5)

		require.Error(t, err)
	})
}

func TestWeight_Arithmetic(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		a := kernel.MustNewWeight(1.5)
		b := kernel.MustNewWeight(2.25)

		assert.Equal(t, "3.750", a.Add(b).String())
	})

	t.Run("sub floors at zero", func(t *testing.T) {
		a := kernel.MustNewWeight(1)
		b := kernel.MustNewWeight(2)

		assert.True(t, a.Sub(b).IsZero())
		assert.Equal(t, "1.000", b.Sub(a).String())
	})

	t.Run("scales by quantity", func(t *testing.T) {
		w := kernel.MustNewWeight(0.5)
		q := kernel.NewQuantityFromFloat(3)

		assert.Equal(t, "1.500", w.MulQuantity(q).String())
	})
}

func TestWeight_Comparisons(t *testing.T) {
	a := kernel.MustNewWeight(5)
	b := kernel.MustNewWeight(10)

	assert.True(t, a.LessThan(b))
	assert.True(t, a.LessThanOrEqual(b))
	assert.True(t, b.GreaterThanOrEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.True(t, kernel.ZeroWeight().IsZero())
}
