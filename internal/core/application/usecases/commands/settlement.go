package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/group"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// Shared recompute steps of the settlement transaction. Recording a payment
// and refunding one change the captured sums in opposite directions but
// rederive the same statuses afterwards.

// reconcileGroupPaidStatus rederives the group's paid status from its captured
// sum and the gross total of its active items.
func reconcileGroupPaidStatus(
	ctx context.Context,
	uow SettlementUoW,
	reconciler services.PaymentReconciler,
	currentGroup *group.PackingGroup,
) error {
	captured, err := uow.PaymentRepository().SumCapturedByGroup(ctx, currentGroup.ID())
	if err != nil {
		return err
	}

	items, err := uow.LineItemRepository().ListActiveByGroup(ctx, currentGroup.ID())
	if err != nil {
		return err
	}

	due := kernel.ZeroMoney()
	for _, item := range items {
		due = due.Add(item.GrossTotal())
	}

	if err = currentGroup.SetPaidStatus(reconciler.PaidStatus(captured, due)); err != nil {
		return err
	}
	return uow.GroupRepository().Update(ctx, currentGroup)
}

// reconcileOrderShipping rederives the order's shipping paid status through
// the items-first waterfall, against the cached shipping due.
func reconcileOrderShipping(
	ctx context.Context,
	uow SettlementUoW,
	reconciler services.PaymentReconciler,
	currentOrder *order.Order,
	now time.Time,
) error {
	captured, err := uow.PaymentRepository().SumCapturedByOrder(ctx, currentOrder.ID())
	if err != nil {
		return err
	}

	items, err := uow.LineItemRepository().ListActiveByOrder(ctx, currentOrder.ID())
	if err != nil {
		return err
	}

	itemsDue := kernel.ZeroMoney()
	for _, item := range items {
		itemsDue = itemsDue.Add(item.GrossTotal())
	}

	status := reconciler.ShippingPaidStatus(captured, itemsDue, currentOrder.ShippingDue())
	if err = currentOrder.UpdateShippingCache(currentOrder.ShippingDue(), status, now); err != nil {
		return err
	}
	return uow.OrderRepository().Update(ctx, currentOrder)
}
