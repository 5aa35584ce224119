package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/group"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// AddItemResult identifies the appended item and the resolved context it
// landed in.
type AddItemResult struct {
	ItemID  kernel.UUID
	OrderID kernel.UUID
	GroupID kernel.UUID
}

// AddItemCommandHandler appends a line item to the client's open packing
// group, resolving or creating the order and group first.
//
// The item write commits on its own; the shipping cache recompute runs after
// the commit as a best-effort follow-up that never fails the add.
type AddItemCommandHandler struct {
	uowFactory   LedgerUoWFactory
	catalog      ports.ProductCatalog
	recalculator *ShippingRecalculator
}

// NewAddItemCommandHandler creates a handler for item appends.
func NewAddItemCommandHandler(
	uowFactory LedgerUoWFactory,
	catalog ports.ProductCatalog,
	recalculator *ShippingRecalculator,
) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory:   uowFactory,
		catalog:      catalog,
		recalculator: recalculator,
	}
}

// Handle processes the item append.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) (AddItemResult, error) {
	if err := cmd.Validate(); err != nil {
		return AddItemResult{}, err
	}

	unitPrice, err := h.resolveUnitPrice(ctx, cmd)
	if err != nil {
		return AddItemResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AddItemResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	resolved, err := ensureOrderAndOpenGroup(ctx, uow, cmd.OwnerID(), cmd.ClientID())
	if err != nil {
		return AddItemResult{}, err
	}

	item, err := group.NewLineItem(
		kernel.NewUUID(),
		cmd.OwnerID(),
		resolved.Group.ID(),
		cmd.ProductID(),
		cmd.Name(),
		cmd.Qty(),
		unitPrice,
		cmd.VatRate(),
		cmd.SourceType(),
	)
	if err != nil {
		return AddItemResult{}, err
	}

	if err = uow.LineItemRepository().Add(ctx, item); err != nil {
		return AddItemResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AddItemResult{}, err
	}

	h.recalculator.RecalculateBestEffort(ctx, resolved.Order.ID())

	return AddItemResult{
		ItemID:  item.ID(),
		OrderID: resolved.Order.ID(),
		GroupID: resolved.Group.ID(),
	}, nil
}

// resolveUnitPrice backfills the price from the catalog snapshot when the
// caller omits it for a catalog product. Custom items keep the given price.
func (h *AddItemCommandHandler) resolveUnitPrice(ctx context.Context, cmd AddItemCommand) (kernel.Money, error) {
	productID := cmd.ProductID()
	if productID == nil || !cmd.UnitPrice().IsZero() {
		return cmd.UnitPrice(), nil
	}

	snapshot, err := h.catalog.GetProduct(ctx, cmd.OwnerID(), *productID)
	if err != nil {
		return kernel.ZeroMoney(), err
	}

	return snapshot.UnitPrice, nil
}
