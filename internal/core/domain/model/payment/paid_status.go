// Package payment contains the payment record aggregate and the paid-status
// vocabulary shared by orders and packing groups.
package payment

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// PaidStatus describes how far a due amount is covered by captured payments.
//
// Historical deployments persisted this status under two vocabularies (a
// localized one and an English one, with mixed casing). PaidStatusFromString
// normalizes all of them at the data-access boundary so business logic only
// ever branches on this enum.
type PaidStatus int

const (
	// PaidStatusUnknown represents an invalid or undefined paid status.
	PaidStatusUnknown PaidStatus = iota

	// Unpaid means no captured amount covers the due amount.
	Unpaid

	// Partial means captured amount covers part of the due amount.
	Partial

	// Paid means captured amount covers the due amount within tolerance.
	Paid

	// Overpaid means captured amount exceeds the due amount beyond tolerance.
	Overpaid
)

func getPaidStatusStrings() map[PaidStatus]string {
	return map[PaidStatus]string{
		PaidStatusUnknown: "unknown",
		Unpaid:            "unpaid",
		Partial:           "partial",
		Paid:              "paid",
		Overpaid:          "overpaid",
	}
}

// paidStatusAliases maps every historically persisted spelling to the enum.
// Keys are lower-cased before lookup.
func paidStatusAliases() map[string]PaidStatus {
	return map[string]PaidStatus{
		"unpaid":             Unpaid,
		"nieoplacona":        Unpaid,
		"partial":            Partial,
		"partially_paid":     Partial,
		"czesciowo_oplacona": Partial,
		"paid":               Paid,
		"oplacona":           Paid,
		"overpaid":           Overpaid,
		"nadplacona":         Overpaid,
	}
}

// Validate checks if the PaidStatus value is valid.
// PaidStatusUnknown and out-of-range values are invalid.
func (s PaidStatus) Validate() error {
	if s < Unpaid || s > Overpaid {
		return errs.NewValueIsInvalidErrorWithCause("paid status",
			fmt.Errorf("%d is not a valid paid status", s))
	}
	return nil
}

// String returns the canonical key for the status ("unpaid", "partial",
// "paid", "overpaid"). This is the only spelling new rows are persisted with.
func (s PaidStatus) String() string {
	if str, ok := getPaidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// PaidStatusFromString normalizes a persisted paid-status string to the enum.
// It accepts the canonical keys as well as all legacy spellings, ignoring case.
// Returns an error for unrecognized values.
func PaidStatusFromString(raw string) (PaidStatus, error) {
	if raw == "" {
		return Unpaid, nil
	}
	if status, ok := paidStatusAliases()[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return status, nil
	}
	return PaidStatusUnknown, errs.NewValueIsInvalidErrorWithCause("paid status",
		fmt.Errorf("%q is not a recognized paid status", raw))
}
