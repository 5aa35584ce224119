package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// OpenGroupResolution is the result of the find-or-create resolution: stable
// identifiers and tokens callers embed into checkout links.
type OpenGroupResolution struct {
	OrderID       kernel.UUID
	GroupID       kernel.UUID
	CheckoutToken kernel.Token
	GroupToken    kernel.Token
}

// EnsureOrderAndOpenGroupCommandHandler resolves a client's open order and
// packing group idempotently. Repeated calls for the same client return the
// same identifiers and tokens until checkout completes.
type EnsureOrderAndOpenGroupCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewEnsureOrderAndOpenGroupCommandHandler creates a handler for open-group resolution.
func NewEnsureOrderAndOpenGroupCommandHandler(uowFactory LedgerUoWFactory) EnsureOrderAndOpenGroupCommandHandler {
	return EnsureOrderAndOpenGroupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the open order and group under the per-client lock.
func (h *EnsureOrderAndOpenGroupCommandHandler) Handle(
	ctx context.Context,
	cmd EnsureOrderAndOpenGroupCommand,
) (OpenGroupResolution, error) {
	if err := cmd.Validate(); err != nil {
		return OpenGroupResolution{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OpenGroupResolution{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	resolved, err := ensureOrderAndOpenGroup(ctx, uow, cmd.OwnerID(), cmd.ClientID())
	if err != nil {
		return OpenGroupResolution{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OpenGroupResolution{}, err
	}

	return OpenGroupResolution{
		OrderID:       resolved.Order.ID(),
		GroupID:       resolved.Group.ID(),
		CheckoutToken: resolved.Order.CheckoutToken(),
		GroupToken:    resolved.Group.GroupToken(),
	}, nil
}
