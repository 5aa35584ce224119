package payment

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Record instance was not
	// created through NewRecord or RestoreRecord.
	ErrPaymentIsNotConstructed = errors.New("payment Record must be created via NewRecord constructor")

	// ErrCurrencyIsRequired is returned when the currency code is empty.
	ErrCurrencyIsRequired = errors.New("currency is required")

	// ErrAmountIsNotPositive is returned when the payment amount is zero or negative.
	ErrAmountIsNotPositive = errors.New("amount must be greater than 0")
)

// Record is a payment attempt against an order, optionally linked to a
// specific packing group when the deployed schema supports that linkage.
//
// Invariants:
//   - amount is always positive; reversals are modeled as the Refunded status,
//     never as negative rows
//   - paidAt is stamped on the first settle and never overwritten
//   - status transitions follow the Status state machine
type Record struct {
	id          kernel.UUID
	ownerID     kernel.UUID
	orderID     kernel.UUID
	groupID     *kernel.UUID
	amount      kernel.Money
	currency    string
	status      Status
	externalRef *string
	paidAt      *time.Time

	guard guard.ConstructorGuard
}

// NewRecord creates a payment record in Draft status.
// groupID may be nil when payments are tracked at order scope only.
func NewRecord(
	id kernel.UUID,
	ownerID kernel.UUID,
	orderID kernel.UUID,
	groupID *kernel.UUID,
	amount kernel.Money,
	currency string,
) (*Record, error) {
	record := &Record{
		status: Draft,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setID(id),
		record.setOwnerID(ownerID),
		record.setOrderID(orderID),
		record.setGroupID(groupID),
		record.setAmount(amount),
		record.setCurrency(currency),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreRecord reconstructs a payment record from persistence, including its
// current status, external reference and paid-at timestamp.
func RestoreRecord(
	id kernel.UUID,
	ownerID kernel.UUID,
	orderID kernel.UUID,
	groupID *kernel.UUID,
	amount kernel.Money,
	currency string,
	status Status,
	externalRef *string,
	paidAt *time.Time,
) (*Record, error) {
	record, err := NewRecord(id, ownerID, orderID, groupID, amount, currency)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	record.status = status
	record.externalRef = externalRef
	record.paidAt = paidAt
	return record, nil
}

// Validate ensures the record was constructed through NewRecord or RestoreRecord.
func (r *Record) Validate() error {
	if r == nil {
		return ErrPaymentIsNotConstructed
	}
	return r.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// OwnerID returns the tenant that owns the record.
func (r *Record) OwnerID() kernel.UUID {
	return r.ownerID
}

// OrderID returns the order the payment belongs to.
func (r *Record) OrderID() kernel.UUID {
	return r.orderID
}

// GroupID returns the packing group the payment is linked to, or nil when the
// payment is tracked at order scope.
func (r *Record) GroupID() *kernel.UUID {
	return r.groupID
}

// Amount returns the payment amount.
func (r *Record) Amount() kernel.Money {
	return r.amount
}

// Currency returns the ISO currency code.
func (r *Record) Currency() string {
	return r.currency
}

// Status returns the record's current lifecycle status.
func (r *Record) Status() Status {
	return r.status
}

// ExternalRef returns the payment provider's reference, if any.
func (r *Record) ExternalRef() *string {
	return r.externalRef
}

// PaidAt returns the settle timestamp, or nil if the record never settled.
func (r *Record) PaidAt() *time.Time {
	return r.paidAt
}

// SetExternalRef attaches the provider's reference to the record.
func (r *Record) SetExternalRef(ref string) {
	r.externalRef = &ref
}

// Start moves the record from Draft to Started.
func (r *Record) Start() error {
	next, err := r.status.Start()
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

// Acknowledge moves the record from Started to Pending.
func (r *Record) Acknowledge() error {
	next, err := r.status.Acknowledge()
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

// Settle captures the payment and stamps paidAt on the first settle only.
func (r *Record) Settle(at time.Time) error {
	next, err := r.status.Settle()
	if err != nil {
		return err
	}
	r.status = next
	if r.paidAt == nil {
		r.paidAt = &at
	}
	return nil
}

// Fail marks the payment as rejected by the provider.
func (r *Record) Fail() error {
	next, err := r.status.Fail()
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

// Cancel marks the payment attempt as abandoned.
func (r *Record) Cancel() error {
	next, err := r.status.Cancel()
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

// Refund reverses a settled payment.
func (r *Record) Refund() error {
	next, err := r.status.Refund()
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}
	r.ownerID = ownerID
	return nil
}

func (r *Record) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	r.orderID = orderID
	return nil
}

func (r *Record) setGroupID(groupID *kernel.UUID) error {
	if groupID == nil {
		return nil
	}
	if err := groupID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("group id", err)
	}
	r.groupID = groupID
	return nil
}

func (r *Record) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return ErrAmountIsNotPositive
	}
	r.amount = amount
	return nil
}

func (r *Record) setCurrency(currency string) error {
	if currency == "" {
		return ErrCurrencyIsRequired
	}
	r.currency = currency
	return nil
}
