package group

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/kernel"
)

func newTestItem(t *testing.T, qty float64, unitPrice float64, vatRate int64) *LineItem {
	t.Helper()
	item, err := NewLineItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		"Sweater", kernel.NewQuantityFromFloat(qty), kernel.NewMoneyFromFloat(unitPrice),
		decimal.NewFromInt(vatRate), SourceParser)
	require.NoError(t, err)
	return item
}

func quantityPtr(value float64) *kernel.Quantity {
	q := kernel.NewQuantityFromFloat(value)
	return &q
}

func Test_NewLineItem(t *testing.T) {
	t.Run("creates item with computed totals", func(t *testing.T) {
		// 2 x 49.99 = 99.98 net; 23% vat = 23.00 (99.98 * 0.23 = 22.9954).
		item := newTestItem(t, 2, 49.99, 23)

		require.NoError(t, item.Validate())
		assert.Equal(t, "Sweater", item.Name())
		assert.Equal(t, "99.98", item.NetTotal().String())
		assert.Equal(t, "23.00", item.VatValue().String())
		assert.Equal(t, "122.98", item.GrossTotal().String())
		assert.True(t, item.PackedCount().IsZero())
		assert.False(t, item.IsPrepared())
		assert.False(t, item.IsRemoved())
		assert.Equal(t, SourceParser, item.SourceType())
	})

	t.Run("accepts fractional quantities", func(t *testing.T) {
		item := newTestItem(t, 1.5, 10, 0)
		assert.Equal(t, "15.00", item.NetTotal().String())
	})

	t.Run("returns error for empty name", func(t *testing.T) {
		_, err := NewLineItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			"", kernel.NewQuantityFromFloat(1), kernel.NewMoneyFromFloat(10),
			decimal.Zero, SourceShop)
		assert.ErrorIs(t, err, ErrItemNameIsRequired)
	})

	t.Run("returns error for zero quantity", func(t *testing.T) {
		_, err := NewLineItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			"Sweater", kernel.NewQuantityFromFloat(0), kernel.NewMoneyFromFloat(10),
			decimal.Zero, SourceShop)
		assert.ErrorIs(t, err, ErrItemQtyIsNotPositive)
	})

	t.Run("returns error for invalid source type", func(t *testing.T) {
		_, err := NewLineItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			"Sweater", kernel.NewQuantityFromFloat(1), kernel.NewMoneyFromFloat(10),
			decimal.Zero, SourceTypeUnknown)
		assert.Error(t, err)
	})

	t.Run("validate fails for a non-constructed item", func(t *testing.T) {
		assert.ErrorIs(t, (&LineItem{}).Validate(), ErrLineItemIsNotConstructed)
		assert.ErrorIs(t, (*LineItem)(nil).Validate(), ErrLineItemIsNotConstructed)
	})
}

func Test_RestoreLineItem(t *testing.T) {
	t.Run("restores packing progress and removal marker", func(t *testing.T) {
		removedAt := time.Now().UTC()

		item, err := RestoreLineItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, "Sweater", kernel.NewQuantityFromFloat(3), kernel.NewMoneyFromFloat(10),
			decimal.Zero, kernel.NewQuantityFromFloat(3), SourceLive, &removedAt)

		require.NoError(t, err)
		assert.True(t, item.IsPrepared())
		assert.True(t, item.IsRemoved())
	})

	t.Run("returns error when packed count exceeds quantity", func(t *testing.T) {
		_, err := RestoreLineItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, "Sweater", kernel.NewQuantityFromFloat(2), kernel.NewMoneyFromFloat(10),
			decimal.Zero, kernel.NewQuantityFromFloat(3), SourceLive, nil)
		assert.Error(t, err)
	})
}

func Test_LineItem_ApplyPatch(t *testing.T) {
	t.Run("recomputes totals from patched fields", func(t *testing.T) {
		item := newTestItem(t, 2, 10, 23)

		newPrice := kernel.NewMoneyFromFloat(15)
		newRate := decimal.NewFromInt(8)
		require.NoError(t, item.ApplyPatch(Patch{UnitPrice: &newPrice, VatRate: &newRate}))

		assert.Equal(t, "30.00", item.NetTotal().String())
		assert.Equal(t, "2.40", item.VatValue().String())
	})

	t.Run("quantity reduction re-clamps the packed count", func(t *testing.T) {
		item := newTestItem(t, 5, 10, 0)
		require.NoError(t, item.SetPackedCount(kernel.NewQuantityFromFloat(4)))

		require.NoError(t, item.ApplyPatch(Patch{Qty: quantityPtr(2)}))

		assert.Equal(t, "2.000", item.PackedCount().String())
		assert.True(t, item.IsPrepared())
	})

	t.Run("quantity increase keeps packing progress", func(t *testing.T) {
		item := newTestItem(t, 2, 10, 0)
		require.NoError(t, item.SetPackedCount(kernel.NewQuantityFromFloat(2)))
		assert.True(t, item.IsPrepared())

		require.NoError(t, item.ApplyPatch(Patch{Qty: quantityPtr(5)}))

		assert.Equal(t, "2.000", item.PackedCount().String())
		assert.False(t, item.IsPrepared())
	})

	t.Run("empty patch keeps all fields", func(t *testing.T) {
		item := newTestItem(t, 2, 10, 23)

		require.NoError(t, item.ApplyPatch(Patch{}))

		assert.Equal(t, "20.00", item.NetTotal().String())
		assert.Equal(t, "4.60", item.VatValue().String())
	})

	t.Run("returns error when patching quantity to zero", func(t *testing.T) {
		item := newTestItem(t, 2, 10, 0)
		assert.ErrorIs(t, item.ApplyPatch(Patch{Qty: quantityPtr(0)}), ErrItemQtyIsNotPositive)
	})
}

func Test_LineItem_SetPackedCount(t *testing.T) {
	t.Run("marks the item prepared at full count", func(t *testing.T) {
		item := newTestItem(t, 3, 10, 0)

		require.NoError(t, item.SetPackedCount(kernel.NewQuantityFromFloat(2)))
		assert.False(t, item.IsPrepared())

		require.NoError(t, item.SetPackedCount(kernel.NewQuantityFromFloat(3)))
		assert.True(t, item.IsPrepared())
	})

	t.Run("returns error above the quantity", func(t *testing.T) {
		item := newTestItem(t, 3, 10, 0)
		assert.Error(t, item.SetPackedCount(kernel.NewQuantityFromFloat(4)))
	})
}

func Test_LineItem_MarkRemoved(t *testing.T) {
	t.Run("soft-deletes once", func(t *testing.T) {
		item := newTestItem(t, 1, 10, 0)
		removedAt := time.Now().UTC()

		require.NoError(t, item.MarkRemoved(removedAt))
		assert.True(t, item.IsRemoved())
		require.NotNil(t, item.RemovedAt())
		assert.True(t, removedAt.Equal(*item.RemovedAt()))

		assert.ErrorIs(t, item.MarkRemoved(time.Now()), ErrItemAlreadyRemoved)
	})
}
