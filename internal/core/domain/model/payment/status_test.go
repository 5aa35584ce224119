package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Status_Validate(t *testing.T) {
	t.Run("accepts all defined statuses", func(t *testing.T) {
		for _, status := range []Status{Draft, Started, Pending, Settled,
			Failed, Cancelled, Refunded} {
			assert.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("rejects unknown and out-of-range values", func(t *testing.T) {
		assert.Error(t, StatusUnknown.Validate())
		assert.Error(t, Status(42).Validate())
	})
}

func Test_Status_String(t *testing.T) {
	t.Run("settled keeps its historical persisted key", func(t *testing.T) {
		assert.Equal(t, "paid", Settled.String())
	})

	t.Run("remaining statuses use their own keys", func(t *testing.T) {
		assert.Equal(t, "draft", Draft.String())
		assert.Equal(t, "started", Started.String())
		assert.Equal(t, "pending", Pending.String())
		assert.Equal(t, "failed", Failed.String())
		assert.Equal(t, "cancelled", Cancelled.String())
		assert.Equal(t, "refunded", Refunded.String())
		assert.Equal(t, "unknown", Status(42).String())
	})
}

func Test_Status_Transitions(t *testing.T) {
	t.Run("settle is legal from started and pending only", func(t *testing.T) {
		for _, origin := range []Status{Started, Pending} {
			next, err := origin.Settle()
			assert.NoError(t, err)
			assert.Equal(t, Settled, next)
		}

		for _, origin := range []Status{Draft, Settled, Failed, Cancelled, Refunded} {
			_, err := origin.Settle()
			assert.Error(t, err, origin.String())
		}
	})

	t.Run("refund is legal from settled only", func(t *testing.T) {
		next, err := Settled.Refund()
		assert.NoError(t, err)
		assert.Equal(t, Refunded, next)

		for _, origin := range []Status{Draft, Started, Pending, Failed, Cancelled, Refunded} {
			_, err = origin.Refund()
			assert.Error(t, err, origin.String())
		}
	})

	t.Run("cancel is legal before a terminal state", func(t *testing.T) {
		for _, origin := range []Status{Draft, Started, Pending} {
			next, err := origin.Cancel()
			assert.NoError(t, err)
			assert.Equal(t, Cancelled, next)
		}

		_, err := Settled.Cancel()
		assert.Error(t, err)
	})

	t.Run("terminal statuses are reported as terminal", func(t *testing.T) {
		for _, status := range []Status{Settled, Failed, Cancelled, Refunded} {
			assert.True(t, status.IsTerminal(), status.String())
		}
		for _, status := range []Status{Draft, Started, Pending} {
			assert.False(t, status.IsTerminal(), status.String())
		}
	})
}
