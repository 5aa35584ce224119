package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteCheckoutCommandIsNotConstructed = errors.New(
	"CompleteCheckoutCommand must be created via NewCompleteCheckoutCommand constructor",
)

// CompleteCheckoutCommand represents a client finishing checkout for their
// open packing group, addressed by the public checkout token.
type CompleteCheckoutCommand struct { //nolint:recvcheck //using for validation
	ownerID       kernel.UUID
	checkoutToken kernel.Token

	guard guard.ConstructorGuard
}

// NewCompleteCheckoutCommand creates a checkout completion command.
func NewCompleteCheckoutCommand(
	ownerID kernel.UUID,
	checkoutToken kernel.Token,
) (CompleteCheckoutCommand, error) {
	command := CompleteCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOwnerID(ownerID),
		command.setCheckoutToken(checkoutToken),
	); err != nil {
		return CompleteCheckoutCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCompleteCheckoutCommandIsNotConstructed)
}

// OwnerID returns the tenant the checkout belongs to.
func (c CompleteCheckoutCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// CheckoutToken returns the order's public checkout token.
func (c CompleteCheckoutCommand) CheckoutToken() kernel.Token {
	return c.checkoutToken
}

func (c *CompleteCheckoutCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *CompleteCheckoutCommand) setCheckoutToken(token kernel.Token) error {
	if err := token.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("checkout token", err)
	}
	c.checkoutToken = token
	return nil
}
