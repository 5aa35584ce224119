package shipping

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrMethodIsNotConstructed is returned when a Method instance was not
	// created through NewMethod.
	ErrMethodIsNotConstructed = errors.New("Method must be created via NewMethod constructor")

	// ErrMethodNameIsRequired is returned when the method name is empty.
	ErrMethodNameIsRequired = errors.New("shipping method name is required")
)

// Method is a carrier shipping method with its weight-bracket price table.
// maxPackageWeight is the method's own single-package cap; when nil, the
// tenant-wide operational cap applies instead (resolved by the calculator).
type Method struct {
	id               kernel.UUID
	ownerID          kernel.UUID
	name             string
	maxPackageWeight *kernel.Weight
	defaultPrice     kernel.Money
	rules            []WeightRule
	active           bool

	guard guard.ConstructorGuard
}

// NewMethod creates a shipping method with its rule table.
func NewMethod(
	id kernel.UUID,
	ownerID kernel.UUID,
	name string,
	maxPackageWeight *kernel.Weight,
	defaultPrice kernel.Money,
	rules []WeightRule,
	active bool,
) (*Method, error) {
	method := &Method{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		method.setID(id),
		method.setOwnerID(ownerID),
		method.setName(name),
		method.setRules(rules),
	); err != nil {
		return nil, err
	}

	method.maxPackageWeight = maxPackageWeight
	method.defaultPrice = defaultPrice
	method.active = active
	return method, nil
}

// Validate ensures the method was constructed through NewMethod.
func (m *Method) Validate() error {
	if m == nil {
		return ErrMethodIsNotConstructed
	}
	return m.guard.Validate(ErrMethodIsNotConstructed)
}

// ID returns the method's unique identifier.
func (m *Method) ID() kernel.UUID {
	return m.id
}

// OwnerID returns the tenant that owns the method.
func (m *Method) OwnerID() kernel.UUID {
	return m.ownerID
}

// Name returns the method's display name.
func (m *Method) Name() string {
	return m.name
}

// MaxPackageWeight returns the method's single-package weight cap, or nil.
func (m *Method) MaxPackageWeight() *kernel.Weight {
	return m.maxPackageWeight
}

// DefaultPrice returns the flat price used when no bracket matches.
func (m *Method) DefaultPrice() kernel.Money {
	return m.defaultPrice
}

// Rules returns the method's weight brackets.
func (m *Method) Rules() []WeightRule {
	return m.rules
}

// IsActive reports whether the method is offered to clients.
func (m *Method) IsActive() bool {
	return m.active
}

// PriceFor prices a single package of weight w. Among matching brackets the
// most specific one wins; with no match the method's flat default applies.
func (m *Method) PriceFor(w kernel.Weight) kernel.Money {
	var best *WeightRule
	for idx := range m.rules {
		rule := m.rules[idx]
		if !rule.Matches(w) {
			continue
		}
		if best == nil || rule.MoreSpecificThan(*best) {
			best = &rule
		}
	}
	if best == nil {
		return m.defaultPrice
	}
	return best.Price()
}

func (m *Method) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Method) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	m.ownerID = ownerID
	return nil
}

func (m *Method) setName(name string) error {
	if name == "" {
		return ErrMethodNameIsRequired
	}
	m.name = name
	return nil
}

func (m *Method) setRules(rules []WeightRule) error {
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return err
		}
	}
	m.rules = rules
	return nil
}
