package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRefundPaymentCommandIsNotConstructed = errors.New(
	"RefundPaymentCommand must be created via NewRefundPaymentCommand constructor",
)

// RefundPaymentCommand reverses a settled payment record.
type RefundPaymentCommand struct { //nolint:recvcheck //using for validation
	ownerID   kernel.UUID
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRefundPaymentCommand creates a command to refund a settled payment.
func NewRefundPaymentCommand(
	ownerID kernel.UUID,
	paymentID kernel.UUID,
) (RefundPaymentCommand, error) {
	command := RefundPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOwnerID(ownerID),
		command.setPaymentID(paymentID),
	); err != nil {
		return RefundPaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRefundPaymentCommandIsNotConstructed)
}

// OwnerID returns the tenant the payment belongs to.
func (c RefundPaymentCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// PaymentID returns the payment record to refund.
func (c RefundPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c *RefundPaymentCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *RefundPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("payment id", err)
	}
	c.paymentID = paymentID
	return nil
}
