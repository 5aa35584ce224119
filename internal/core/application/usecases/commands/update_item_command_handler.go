package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/group"
)

// UpdateItemCommandHandler patches a line item inside an open packing group
// and re-clamps packing progress against the new quantity.
type UpdateItemCommandHandler struct {
	uowFactory   LedgerUoWFactory
	recalculator *ShippingRecalculator
}

// NewUpdateItemCommandHandler creates a handler for item patches.
func NewUpdateItemCommandHandler(
	uowFactory LedgerUoWFactory,
	recalculator *ShippingRecalculator,
) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory:   uowFactory,
		recalculator: recalculator,
	}
}

// Handle processes the item patch. The context triple is verified first; a
// locked group rejects the patch before any load of the item.
func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) error {
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

	if err = item.ApplyPatch(group.Patch{
		Qty:       cmd.Qty(),
		UnitPrice: cmd.UnitPrice(),
		VatRate:   cmd.VatRate(),
	}); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.recalculator.RecalculateBestEffort(ctx, cmd.OrderID())
	return nil
}
