package commands

import (
	"context"
	"errors"
)

// RefreshShippingCachesCommandHandler sweeps the shipping caches of all open
// orders. Each order recomputes in its own transaction, so one failing order
// does not roll back the rest of the sweep.
type RefreshShippingCachesCommandHandler struct {
	uowFactory   OrderUoWFactory
	recalculator *ShippingRecalculator
}

// NewRefreshShippingCachesCommandHandler creates a handler for the periodic
// shipping cache sweep.
func NewRefreshShippingCachesCommandHandler(
	uowFactory OrderUoWFactory,
	recalculator *ShippingRecalculator,
) RefreshShippingCachesCommandHandler {
	return RefreshShippingCachesCommandHandler{
		uowFactory:   uowFactory,
		recalculator: recalculator,
	}
}

// Handle lists the ids of all open orders and recomputes each cache. Errors
// of individual orders are collected and returned joined after the sweep
// finishes; the remaining orders still recompute.
func (h *RefreshShippingCachesCommandHandler) Handle(ctx context.Context, cmd RefreshShippingCachesCommand) error {
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

	orderIDs, err := uow.OrderRepository().ListOpenIDs(ctx)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	var sweepErrs []error
	for _, orderID := range orderIDs {
		if recalcErr := h.recalculator.Recalculate(ctx, orderID); recalcErr != nil {
			sweepErrs = append(sweepErrs, recalcErr)
		}
	}

	return errors.Join(sweepErrs...)
}
