package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/group"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrEnsureOrderAndOpenGroupCommandIsNotConstructed = errors.New(
	"EnsureOrderAndOpenGroupCommand must be created via NewEnsureOrderAndOpenGroupCommand constructor",
)

// EnsureOrderAndOpenGroupCommand requests the client's current open order and
// packing group, creating them when absent. The sales channel is recorded for
// diagnostics only; it does not influence resolution.
type EnsureOrderAndOpenGroupCommand struct { //nolint:recvcheck //using for validation
	ownerID  kernel.UUID
	clientID kernel.UUID
	channel  group.SourceType

	guard guard.ConstructorGuard
}

// NewEnsureOrderAndOpenGroupCommand creates a resolution command.
func NewEnsureOrderAndOpenGroupCommand(
	ownerID kernel.UUID,
	clientID kernel.UUID,
	channel group.SourceType,
) (EnsureOrderAndOpenGroupCommand, error) {
	command := EnsureOrderAndOpenGroupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOwnerID(ownerID),
		command.setClientID(clientID),
		command.setChannel(channel),
	); err != nil {
		return EnsureOrderAndOpenGroupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c EnsureOrderAndOpenGroupCommand) Validate() error {
	return c.guard.Validate(ErrEnsureOrderAndOpenGroupCommandIsNotConstructed)
}

// OwnerID returns the tenant the resolution is scoped to.
func (c EnsureOrderAndOpenGroupCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// ClientID returns the client whose open order is resolved.
func (c EnsureOrderAndOpenGroupCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Channel returns the sales channel the resolution came from.
func (c EnsureOrderAndOpenGroupCommand) Channel() group.SourceType {
	return c.channel
}

func (c *EnsureOrderAndOpenGroupCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *EnsureOrderAndOpenGroupCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client id", err)
	}
	c.clientID = clientID
	return nil
}

func (c *EnsureOrderAndOpenGroupCommand) setChannel(channel group.SourceType) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	c.channel = channel
	return nil
}
