package commands

import (
	"context"
	"time"
)

// RemoveItemCommandHandler removes a line item from an open packing group.
// The aggregate is marked removed and handed to the repository, which applies
// the removal strategy chosen from the schema capability descriptor.
type RemoveItemCommandHandler struct {
	uowFactory   LedgerUoWFactory
	recalculator *ShippingRecalculator
}

// NewRemoveItemCommandHandler creates a handler for item removals.
func NewRemoveItemCommandHandler(
	uowFactory LedgerUoWFactory,
	recalculator *ShippingRecalculator,
) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory:   uowFactory,
		recalculator: recalculator,
	}
}

// Handle processes the item removal.
func (h *RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := loadMutableContext(ctx, uow.OrderRepository(), uow.GroupRepository(),
		cmd.OwnerID(), cmd.OrderID(), cmd.GroupID())
	if err != nil {
		return err
	}

	itemRepo := uow.LineItemRepository()
	item, err := itemRepo.Get(ctx, cmd.ItemID(), cmd.GroupID(), cmd.OwnerID())
	if err != nil {
		return err
	}

	if err = item.MarkRemoved(time.Now().UTC()); err != nil {
		return err
	}

	if err = itemRepo.Remove(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.recalculator.RecalculateBestEffort(ctx, cmd.OrderID())
	return nil
}
