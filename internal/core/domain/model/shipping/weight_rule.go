// Package shipping contains the read-only shipping reference model: methods
// and their weight-bracket price rules. The consolidation algorithm itself
// lives in the domain services package.
package shipping

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrWeightRuleIsNotConstructed is returned when a WeightRule instance was
// not created through NewWeightRule.
var ErrWeightRuleIsNotConstructed = errors.New("WeightRule must be created via NewWeightRule constructor")

// WeightRule is one weight bracket of a shipping method's price table.
// Either bound may be open (nil): a nil minWeight matches from zero, a nil
// maxWeight matches upward without limit.
type WeightRule struct {
	methodID  kernel.UUID
	minWeight *kernel.Weight
	maxWeight *kernel.Weight
	price     kernel.Money

	guard guard.ConstructorGuard
}

// NewWeightRule creates a weight bracket. When both bounds are present the
// minimum must not exceed the maximum.
func NewWeightRule(
	methodID kernel.UUID,
	minWeight *kernel.Weight,
	maxWeight *kernel.Weight,
	price kernel.Money,
) (WeightRule, error) {
	if err := methodID.Validate(); err != nil {
		return WeightRule{}, errs.NewValueIsRequiredErrorWithCause("method id", err)
	}
	if price.IsNegative() {
		return WeightRule{}, errs.NewValueIsInvalidError("rule price")
	}
	if minWeight != nil && maxWeight != nil && maxWeight.LessThan(*minWeight) {
		return WeightRule{}, errs.NewValueIsOutOfRangeError("rule weight bounds",
			minWeight.String(), "0", maxWeight.String())
	}

	return WeightRule{
		methodID:  methodID,
		minWeight: minWeight,
		maxWeight: maxWeight,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the rule was constructed through NewWeightRule.
func (r WeightRule) Validate() error {
	return r.guard.Validate(ErrWeightRuleIsNotConstructed)
}

// MethodID returns the shipping method the rule belongs to.
func (r WeightRule) MethodID() kernel.UUID {
	return r.methodID
}

// MinWeight returns the inclusive lower bound, or nil when open.
func (r WeightRule) MinWeight() *kernel.Weight {
	return r.minWeight
}

// MaxWeight returns the inclusive upper bound, or nil when open.
func (r WeightRule) MaxWeight() *kernel.Weight {
	return r.maxWeight
}

// Price returns the flat price for a package falling into this bracket.
func (r WeightRule) Price() kernel.Money {
	return r.price
}

// Matches reports whether a package of weight w falls into this bracket.
func (r WeightRule) Matches(w kernel.Weight) bool {
	if r.minWeight != nil && w.LessThan(*r.minWeight) {
		return false
	}
	if r.maxWeight != nil && !r.maxWeight.GreaterThanOrEqual(w) {
		return false
	}
	return true
}

// MoreSpecificThan orders two matching rules: a rule with a defined lower
// bound beats an open one, and among defined bounds the larger minimum wins.
// The tightest bracket therefore prices the package.
func (r WeightRule) MoreSpecificThan(other WeightRule) bool {
	if (r.minWeight == nil) != (other.minWeight == nil) {
		return r.minWeight != nil
	}
	if r.minWeight == nil || other.minWeight == nil {
		return false
	}
	return other.minWeight.LessThan(*r.minWeight)
}
