package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/group"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/core/domain/services"
)

// RecordPaymentCommandHandler records a payment attempt in its terminal state
// and recalculates the affected paid statuses in one transaction.
//
// The payment row, the group's paid status and the order's shipping paid
// status commit together or not at all. A payment row without the matching
// status recompute would leave user-facing badges lying, so recompute failures
// roll the payment back too.
type RecordPaymentCommandHandler struct {
	uowFactory SettlementUoWFactory
	reconciler services.PaymentReconciler
}

// NewRecordPaymentCommandHandler creates a handler for payment settlement.
func NewRecordPaymentCommandHandler(uowFactory SettlementUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewPaymentReconciler(),
	}
}

// Handle processes the payment settlement.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	currentOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = currentOrder.AssertOwnedBy(cmd.OwnerID()); err != nil {
		return err
	}

	// Settlement sums and status writes for one client never interleave
	// with a concurrent settlement or cache recompute.
	err = uow.LockClient(ctx, currentOrder.OwnerID().String(), currentOrder.ClientID().String())
	if err != nil {
		return err
	}

	var currentGroup *group.PackingGroup
	if cmd.GroupID() != nil {
		currentGroup, err = uow.GroupRepository().Get(ctx, *cmd.GroupID())
		if err != nil {
			return err
		}
		if !currentGroup.OrderID().IsEqual(cmd.OrderID()) {
			return ErrContextMismatch
		}
	}

	now := time.Now().UTC()
	record, err := payment.NewRecord(kernel.NewUUID(), cmd.OwnerID(), cmd.OrderID(),
		cmd.GroupID(), cmd.Amount(), cmd.Currency())
	if err != nil {
		return err
	}
	if ref := cmd.ExternalRef(); ref != nil {
		record.SetExternalRef(*ref)
	}
	if err = record.Start(); err != nil {
		return err
	}

	switch cmd.Outcome() {
	case OutcomeSettled:
		err = record.Settle(now)
	case OutcomeFailed:
		err = record.Fail()
	case OutcomeCancelled:
		err = record.Cancel()
	}
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, record); err != nil {
		return err
	}

	// Failed and cancelled attempts drop out of the captured sums, so the
	// same recompute covers every outcome.
	if currentGroup != nil {
		if err = reconcileGroupPaidStatus(ctx, uow, h.reconciler, currentGroup); err != nil {
			return err
		}
	}

	if err = reconcileOrderShipping(ctx, uow, h.reconciler, currentOrder, now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
