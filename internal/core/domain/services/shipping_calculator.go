package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
)

// Consolidation is the result of splitting a total weight into packages and
// pricing each one.
type Consolidation struct {
	// TotalCost is the summed price of all packages.
	TotalCost kernel.Money

	// PackageCount is the number of packages the weight was split into.
	// Zero weight yields zero packages.
	PackageCount int

	// TotalWeight echoes the consolidated input weight.
	TotalWeight kernel.Weight

	// LimitUsed is the effective single-package cap applied, or nil when
	// neither the method nor the tenant defines one.
	LimitUsed *kernel.Weight
}

// ShippingCalculator consolidates an order's total weight into capped-size
// packages and prices each package from the method's weight brackets.
//
// The same calculation serves two call sites: a preview across all active
// methods while the client picks one (no persistence), and the recalculation
// for the assigned method whose result is cached onto the order. The cached
// value is always re-derivable from source data.
type ShippingCalculator struct{}

// NewShippingCalculator creates a new ShippingCalculator instance.
func NewShippingCalculator() ShippingCalculator {
	return ShippingCalculator{}
}

// Consolidate splits totalWeight into packages and prices each one.
//
// The effective package cap is the method's own cap when defined, otherwise
// the tenant-wide operational cap, otherwise none. With a cap the weight is
// split greedily: every package but the last carries exactly the cap, the
// last carries the remainder. Without a cap a single package carries the
// whole weight. Zero weight yields zero packages and zero cost regardless of
// method.
func (c ShippingCalculator) Consolidate(
	totalWeight kernel.Weight,
	method *shipping.Method,
	tenantLimit *kernel.Weight,
) (Consolidation, error) {
	if err := method.Validate(); err != nil {
		return Consolidation{}, err
	}

	limit := effectiveLimit(method, tenantLimit)

	if !totalWeight.IsPositive() {
		return Consolidation{
			TotalCost:    kernel.ZeroMoney(),
			PackageCount: 0,
			TotalWeight:  totalWeight,
			LimitUsed:    limit,
		}, nil
	}

	packageWeights := splitGreedy(totalWeight, limit)

	totalCost := kernel.ZeroMoney()
	for _, w := range packageWeights {
		totalCost = totalCost.Add(method.PriceFor(w))
	}

	return Consolidation{
		TotalCost:    totalCost,
		PackageCount: len(packageWeights),
		TotalWeight:  totalWeight,
		LimitUsed:    limit,
	}, nil
}

// effectiveLimit resolves the single-package cap: the method's own cap wins,
// the tenant-wide operational cap applies only when the method defines none.
// Non-positive caps are treated as absent.
func effectiveLimit(method *shipping.Method, tenantLimit *kernel.Weight) *kernel.Weight {
	if limit := method.MaxPackageWeight(); limit != nil && limit.IsPositive() {
		return limit
	}
	if tenantLimit != nil && tenantLimit.IsPositive() {
		return tenantLimit
	}
	return nil
}

// splitGreedy fills packages to the cap and puts the remainder into the last
// one. A cap smaller than any bracket still yields at least one package for
// positive weight, guaranteed by the ceiling division.
func splitGreedy(totalWeight kernel.Weight, limit *kernel.Weight) []kernel.Weight {
	if limit == nil {
		return []kernel.Weight{totalWeight}
	}

	count := totalWeight.Decimal().Div(limit.Decimal()).Ceil().IntPart()
	if count < 1 {
		count = 1
	}

	weights := make([]kernel.Weight, 0, count)
	remaining := totalWeight
	for idx := int64(0); idx < count-1; idx++ {
		weights = append(weights, *limit)
		remaining = remaining.Sub(*limit)
	}
	weights = append(weights, remaining)
	return weights
}
