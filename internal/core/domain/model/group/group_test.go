package group

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
)

func newTestGroup(t *testing.T) *PackingGroup {
	t.Helper()
	packingGroup, err := NewPackingGroup(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())
	require.NoError(t, err)
	return packingGroup
}

func Test_NewPackingGroup(t *testing.T) {
	t.Run("creates an open unpaid group with a token", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		createdAt := time.Now().UTC()

		packingGroup, err := NewPackingGroup(id, orderID, createdAt)

		require.NoError(t, err)
		require.NoError(t, packingGroup.Validate())
		assert.Equal(t, id, packingGroup.ID())
		assert.Equal(t, orderID, packingGroup.OrderID())
		assert.NoError(t, packingGroup.GroupToken().Validate())
		assert.False(t, packingGroup.IsCheckoutCompleted())
		assert.Equal(t, payment.Unpaid, packingGroup.PaidStatus())
		assert.True(t, createdAt.Equal(packingGroup.CreatedAt()))
	})

	t.Run("generates a distinct token per group", func(t *testing.T) {
		first := newTestGroup(t)
		second := newTestGroup(t)

		assert.False(t, first.GroupToken().IsEqual(second.GroupToken()))
	})

	t.Run("returns error for empty ids", func(t *testing.T) {
		_, err := NewPackingGroup(kernel.UUID{}, kernel.NewUUID(), time.Now())
		assert.Error(t, err)

		_, err = NewPackingGroup(kernel.NewUUID(), kernel.UUID{}, time.Now())
		assert.Error(t, err)
	})

	t.Run("validate fails for a non-constructed group", func(t *testing.T) {
		assert.ErrorIs(t, (&PackingGroup{}).Validate(), ErrGroupIsNotConstructed)
		assert.ErrorIs(t, (*PackingGroup)(nil).Validate(), ErrGroupIsNotConstructed)
	})
}

func Test_RestorePackingGroup(t *testing.T) {
	t.Run("keeps the stored token and flags", func(t *testing.T) {
		token := kernel.NewToken()
		createdAt := time.Now().UTC().Add(-time.Hour)

		restored, err := RestorePackingGroup(kernel.NewUUID(), kernel.NewUUID(),
			token, true, payment.Partial, createdAt)

		require.NoError(t, err)
		assert.True(t, token.IsEqual(restored.GroupToken()))
		assert.True(t, restored.IsCheckoutCompleted())
		assert.Equal(t, payment.Partial, restored.PaidStatus())
		assert.True(t, createdAt.Equal(restored.CreatedAt()))
	})

	t.Run("returns error for invalid paid status", func(t *testing.T) {
		_, err := RestorePackingGroup(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewToken(), false, payment.PaidStatusUnknown, time.Now())
		assert.Error(t, err)
	})
}

func Test_PackingGroup_CompleteCheckout(t *testing.T) {
	t.Run("freezes the group", func(t *testing.T) {
		packingGroup := newTestGroup(t)
		require.NoError(t, packingGroup.EnsureMutable())

		require.NoError(t, packingGroup.CompleteCheckout())

		assert.True(t, packingGroup.IsCheckoutCompleted())
		assert.ErrorIs(t, packingGroup.EnsureMutable(), ErrCheckoutLocked)
	})

	t.Run("completing twice is an error", func(t *testing.T) {
		packingGroup := newTestGroup(t)
		require.NoError(t, packingGroup.CompleteCheckout())

		assert.ErrorIs(t, packingGroup.CompleteCheckout(), ErrCheckoutAlreadyCompleted)
	})
}

func Test_PackingGroup_SetPaidStatus(t *testing.T) {
	t.Run("overwrites the derived status", func(t *testing.T) {
		packingGroup := newTestGroup(t)

		require.NoError(t, packingGroup.SetPaidStatus(payment.Paid))
		assert.Equal(t, payment.Paid, packingGroup.PaidStatus())
	})

	t.Run("returns error for invalid status", func(t *testing.T) {
		packingGroup := newTestGroup(t)
		assert.Error(t, packingGroup.SetPaidStatus(payment.PaidStatusUnknown))
	})
}
