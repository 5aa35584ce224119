package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
)

// reconciliationEpsilon absorbs rounding noise when comparing captured
// amounts against dues. Amounts within one cent are treated as equal.
var reconciliationEpsilon = kernel.NewMoneyFromFloat(0.01)

// GroupDue is one packing group's due amount, fed to the pool allocation in
// creation order.
type GroupDue struct {
	GroupID kernel.UUID
	Due     kernel.Money
}

// Allocation is the display-level share of a payment pool applied to one
// packing group.
type Allocation struct {
	GroupID kernel.UUID
	Applied kernel.Money
	Balance kernel.Money
}

// PaymentReconciler derives paid statuses from captured payment amounts.
//
// Group statuses compare the group's captured sum against its due. The order
// level shipping status uses a waterfall: captured money covers item dues
// first and only the excess counts toward shipping. Pool allocation spreads
// an order-wide captured sum across groups oldest first for display figures;
// it never feeds back into the per-group statuses.
type PaymentReconciler struct{}

// NewPaymentReconciler creates a new PaymentReconciler instance.
func NewPaymentReconciler() PaymentReconciler {
	return PaymentReconciler{}
}

// PaidStatus classifies a captured amount against a due amount.
//
// Captured amounts at or below the epsilon count as unpaid even against a
// zero due. An amount still a full epsilon short of the due is partial;
// anything closer lands on paid before overpaid is considered.
func (r PaymentReconciler) PaidStatus(paid, due kernel.Money) payment.PaidStatus {
	switch {
	case paid.LessThanOrEqual(reconciliationEpsilon):
		return payment.Unpaid
	case paid.Add(reconciliationEpsilon).LessThanOrEqual(due):
		return payment.Partial
	case absDifference(paid, due).LessThanOrEqual(reconciliationEpsilon):
		return payment.Paid
	default:
		return payment.Overpaid
	}
}

// ShippingPaidStatus classifies the shipping due after the items-first
// waterfall: only the captured amount left over once item dues are covered
// counts toward shipping. A zero shipping due is always paid.
func (r PaymentReconciler) ShippingPaidStatus(captured, itemsDue, shippingDue kernel.Money) payment.PaidStatus {
	if !shippingDue.IsPositive() {
		return payment.Paid
	}

	shippingCovered := captured.Sub(itemsDue).ClampNonNegative()
	switch {
	case shippingCovered.Add(reconciliationEpsilon).GreaterThanOrEqual(shippingDue):
		return payment.Paid
	case shippingCovered.IsPositive():
		return payment.Partial
	default:
		return payment.Unpaid
	}
}

// AllocatePool spreads a captured pool across group dues in the given order,
// filling each due before moving to the next. The caller passes groups oldest
// first. Leftover pool after the last due is not reported; per-group statuses
// stay authoritative and are not derived from this split.
func (r PaymentReconciler) AllocatePool(pool kernel.Money, dues []GroupDue) []Allocation {
	remaining := pool.ClampNonNegative()
	allocations := make([]Allocation, 0, len(dues))

	for _, groupDue := range dues {
		due := groupDue.Due.ClampNonNegative()
		applied := remaining.Min(due)
		remaining = remaining.Sub(applied)

		allocations = append(allocations, Allocation{
			GroupID: groupDue.GroupID,
			Applied: applied,
			Balance: due.Sub(applied),
		})
	}
	return allocations
}

func absDifference(a, b kernel.Money) kernel.Money {
	diff := a.Sub(b)
	if diff.IsNegative() {
		return b.Sub(a)
	}
	return diff
}
