package commands

import (
	"context"
)

// RecalculateShippingCommandHandler recomputes an order's shipping cache on
// demand, assigning a new method first when the command carries one. Used
// when the client picks or changes the shipping method at checkout.
type RecalculateShippingCommandHandler struct {
	uowFactory   OrderUoWFactory
	recalculator *ShippingRecalculator
}

// NewRecalculateShippingCommandHandler creates a handler for explicit
// shipping recomputation.
func NewRecalculateShippingCommandHandler(
	uowFactory OrderUoWFactory,
	recalculator *ShippingRecalculator,
) RecalculateShippingCommandHandler {
	return RecalculateShippingCommandHandler{
		uowFactory:   uowFactory,
		recalculator: recalculator,
	}
}

// Handle verifies ownership, assigns the method when provided, then
// recomputes the cache. The recompute runs in its own transaction after the
// assignment commits; its errors surface to the caller.
func (h *RecalculateShippingCommandHandler) Handle(ctx context.Context, cmd RecalculateShippingCommand) error {
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

	orderRepo := uow.OrderRepository()
	currentOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = currentOrder.AssertOwnedBy(cmd.OwnerID()); err != nil {
		return err
	}

	if methodID := cmd.MethodID(); methodID != nil {
		if err = currentOrder.AssignShippingMethod(*methodID); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, currentOrder); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.recalculator.Recalculate(ctx, cmd.OrderID())
}
