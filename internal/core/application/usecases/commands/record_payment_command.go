package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRecordPaymentCommandIsNotConstructed = errors.New(
		"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
	)
	ErrPaymentAmountIsInvalid   = errors.New("payment amount must be greater than 0")
	ErrPaymentCurrencyIsMissing = errors.New("payment currency is required")
	ErrPaymentOutcomeIsInvalid  = errors.New("payment outcome must be one of: settled, failed, cancelled")
)

// PaymentOutcome is the provider-reported result of a payment attempt.
type PaymentOutcome int

const (
	OutcomeSettled PaymentOutcome = iota + 1
	OutcomeFailed
	OutcomeCancelled
)

// PaymentOutcomeFromString parses the wire spelling of an outcome. The empty
// string means settled, so callers that only report captures keep working.
func PaymentOutcomeFromString(value string) (PaymentOutcome, error) {
	switch value {
	case "", "settled", "paid":
		return OutcomeSettled, nil
	case "failed":
		return OutcomeFailed, nil
	case "cancelled", "canceled":
		return OutcomeCancelled, nil
	default:
		return 0, ErrPaymentOutcomeIsInvalid
	}
}

// RecordPaymentCommand represents a captured payment against an order,
// optionally linked to a specific packing group.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	ownerID     kernel.UUID
	orderID     kernel.UUID
	groupID     *kernel.UUID
	amount      kernel.Money
	currency    string
	outcome     PaymentOutcome
	externalRef *string

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment attempt.
// groupID is nil when the deployment tracks payments at order scope.
func NewRecordPaymentCommand(
	ownerID kernel.UUID,
	orderID kernel.UUID,
	groupID *kernel.UUID,
	amount kernel.Money,
	currency string,
	outcome PaymentOutcome,
	externalRef *string,
) (RecordPaymentCommand, error) {
	command := RecordPaymentCommand{
		externalRef: externalRef,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOwnerID(ownerID),
		command.setOrderID(orderID),
		command.setGroupID(groupID),
		command.setAmount(amount),
		command.setCurrency(currency),
		command.setOutcome(outcome),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OwnerID returns the tenant the payment belongs to.
func (c RecordPaymentCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// OrderID returns the order the payment settles against.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// GroupID returns the packing group linkage, or nil for order scope.
func (c RecordPaymentCommand) GroupID() *kernel.UUID {
	return c.groupID
}

// Amount returns the captured amount.
func (c RecordPaymentCommand) Amount() kernel.Money {
	return c.amount
}

// Currency returns the ISO currency code.
func (c RecordPaymentCommand) Currency() string {
	return c.currency
}

// Outcome returns the provider-reported result of the payment attempt.
func (c RecordPaymentCommand) Outcome() PaymentOutcome {
	return c.outcome
}

// ExternalRef returns the payment provider's reference, if any.
func (c RecordPaymentCommand) ExternalRef() *string {
	return c.externalRef
}

func (c *RecordPaymentCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setGroupID(groupID *kernel.UUID) error {
	if groupID == nil {
		return nil
	}
	if err := groupID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("group id", err)
	}
	c.groupID = groupID
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return ErrPaymentAmountIsInvalid
	}
	c.amount = amount
	return nil
}

func (c *RecordPaymentCommand) setCurrency(currency string) error {
	if currency == "" {
		return ErrPaymentCurrencyIsMissing
	}
	c.currency = currency
	return nil
}

func (c *RecordPaymentCommand) setOutcome(outcome PaymentOutcome) error {
	switch outcome {
	case OutcomeSettled, OutcomeFailed, OutcomeCancelled:
		c.outcome = outcome
		return nil
	default:
		return ErrPaymentOutcomeIsInvalid
	}
}
