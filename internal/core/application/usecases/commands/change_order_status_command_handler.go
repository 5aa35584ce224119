package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies panel-driven lifecycle transitions
// to an order. The aggregate's state machine decides legality; the handler
// only routes the action.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for lifecycle transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the lifecycle transition.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if err = applyOrderAction(currentOrder, cmd.Action()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, currentOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func applyOrderAction(currentOrder *order.Order, action OrderAction) error {
	switch action {
	case OrderActionOpenAdding:
		return currentOrder.OpenAdding()
	case OrderActionOpenPayment:
		return currentOrder.OpenPayment()
	case OrderActionMarkReadyToShip:
		return currentOrder.MarkReadyToShip()
	case OrderActionComplete:
		return currentOrder.Complete()
	case OrderActionCancel:
		return currentOrder.Cancel()
	case OrderActionArchive:
		return currentOrder.Archive()
	default:
		return action.Validate()
	}
}
