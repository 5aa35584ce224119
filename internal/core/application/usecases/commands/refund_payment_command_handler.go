package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/services"
)

// RefundPaymentCommandHandler reverses a settled payment and recalculates the
// affected paid statuses in one transaction. Only settled records can be
// refunded; the refund drops the record out of the captured sums, so the
// recompute lowers the statuses the original settlement raised.
type RefundPaymentCommandHandler struct {
	uowFactory SettlementUoWFactory
	reconciler services.PaymentReconciler
}

// NewRefundPaymentCommandHandler creates a handler for payment refunds.
func NewRefundPaymentCommandHandler(uowFactory SettlementUoWFactory) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewPaymentReconciler(),
	}
}

// Handle processes the refund.
func (h *RefundPaymentCommandHandler) Handle(ctx context.Context, cmd RefundPaymentCommand) error {
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

	record, err := uow.PaymentRepository().Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	currentOrder, err := uow.OrderRepository().Get(ctx, record.OrderID())
	if err != nil {
		return err
	}
	if err = currentOrder.AssertOwnedBy(cmd.OwnerID()); err != nil {
		return err
	}

	err = uow.LockClient(ctx, currentOrder.OwnerID().String(), currentOrder.ClientID().String())
	if err != nil {
		return err
	}

	if err = record.Refund(); err != nil {
		return err
	}
	if err = uow.PaymentRepository().Update(ctx, record); err != nil {
		return err
	}

	if groupID := record.GroupID(); groupID != nil {
		currentGroup, groupErr := uow.GroupRepository().Get(ctx, *groupID)
		if groupErr != nil {
			return groupErr
		}
		if err = reconcileGroupPaidStatus(ctx, uow, h.reconciler, currentGroup); err != nil {
			return err
		}
	}

	if err = reconcileOrderShipping(ctx, uow, h.reconciler, currentOrder, time.Now().UTC()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
