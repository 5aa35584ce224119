package payment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a payment record.
//
// State transitions:
//
//	Draft ──> Started ──> Pending ──┬──> Settled ──> Refunded
//	                │               ├──> Failed
//	                │               └──> Cancelled
//	                └──────────────────> (Settled | Failed | Cancelled)
//
// Settled, Failed and Cancelled are terminal; the only transition out of a
// terminal state is Settled -> Refunded, which reverses a capture.
// Only Settled contributes positively and Refunded negatively to the
// captured amount used by reconciliation.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Draft is the initial status when a payment record is created.
	Draft

	// Started means the client has begun the payment flow.
	Started

	// Pending means the payment provider has acknowledged the attempt
	// and a final result is awaited.
	Pending

	// Settled means the amount was captured. Counts toward reconciliation.
	Settled

	// Failed means the provider rejected the payment.
	Failed

	// Cancelled means the payment attempt was abandoned.
	Cancelled

	// Refunded means a previously settled amount was returned.
	// Subtracts from the captured amount.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Draft:         "draft",
		Started:       "started",
		Pending:       "pending",
		Settled:       "paid",
		Failed:        "failed",
		Cancelled:     "cancelled",
		Refunded:      "refunded",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s < Draft || s > Refunded {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the persisted key of the status. The settled state keeps its
// historical key "paid" for compatibility with existing rows.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further provider-driven transition is expected.
func (s Status) IsTerminal() bool {
	return s == Settled || s == Failed || s == Cancelled || s == Refunded
}

// Start transitions Draft -> Started.
func (s Status) Start() (Status, error) {
	if s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%s cannot be started", s))
	}
	return Started, nil
}

// Acknowledge transitions Started -> Pending.
func (s Status) Acknowledge() (Status, error) {
	if s != Started {
		return 0, errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%s cannot move to pending", s))
	}
	return Pending, nil
}

// Settle transitions Started or Pending -> Settled. Providers that capture
// synchronously skip the pending step, so both origins are legal.
func (s Status) Settle() (Status, error) {
	if s != Started && s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%s cannot be settled", s))
	}
	return Settled, nil
}

// Fail transitions Started or Pending -> Failed.
func (s Status) Fail() (Status, error) {
	if s != Started && s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%s cannot be failed", s))
	}
	return Failed, nil
}

// Cancel transitions Draft, Started or Pending -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Draft && s != Started && s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%s cannot be cancelled", s))
	}
	return Cancelled, nil
}

// Refund transitions Settled -> Refunded.
func (s Status) Refund() (Status, error) {
	if s != Settled {
		return 0, errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%s cannot be refunded", s))
	}
	return Refunded, nil
}
