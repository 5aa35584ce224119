package commands

import (
	"context"
)

// CompleteCheckoutCommandHandler freezes the order's open packing group and
// advances the order to awaiting payment in one transaction. The next item
// append for the client opens a fresh group on a fresh order.
type CompleteCheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCompleteCheckoutCommandHandler creates a handler for checkout completion.
func NewCompleteCheckoutCommandHandler(uowFactory CheckoutUoWFactory) CompleteCheckoutCommandHandler {
	return CompleteCheckoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout completion.
func (h *CompleteCheckoutCommandHandler) Handle(ctx context.Context, cmd CompleteCheckoutCommand) error {
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
	currentOrder, err := orderRepo.GetByCheckoutToken(ctx, cmd.CheckoutToken())
	if err != nil {
		return err
	}
	if err = currentOrder.AssertOwnedBy(cmd.OwnerID()); err != nil {
		return err
	}

	groupRepo := uow.GroupRepository()
	openGroup, err := groupRepo.FindOpenByOrder(ctx, currentOrder.ID())
	if err != nil {
		return err
	}
	if openGroup != nil {
		if err = openGroup.CompleteCheckout(); err != nil {
			return err
		}
		if err = groupRepo.Update(ctx, openGroup); err != nil {
			return err
		}
	}

	if err = currentOrder.CompleteCheckout(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, currentOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
