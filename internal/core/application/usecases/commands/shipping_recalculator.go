package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/group"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ShippingRecalculator recomputes the order's cached shipping due and paid
// status from source rows: active items, the assigned method's rule table and
// the captured payment sum.
//
// The cache is derived state. Item mutations call RecalculateBestEffort after
// their own commit; a failed recompute is logged and swallowed so it never
// fails an otherwise successful item write. The explicit recalculation
// command surfaces errors instead.
type ShippingRecalculator struct {
	uowFactory  RecalcUoWFactory
	catalog     ports.ProductCatalog
	calculator  services.ShippingCalculator
	reconciler  services.PaymentReconciler
	tenantLimit *kernel.Weight
	logger      *slog.Logger
}

// NewShippingRecalculator creates a recalculator. tenantLimit is the
// tenant-wide package weight cap applied when a method defines none; nil
// disables the fallback cap.
func NewShippingRecalculator(
	uowFactory RecalcUoWFactory,
	catalog ports.ProductCatalog,
	tenantLimit *kernel.Weight,
	logger *slog.Logger,
) ShippingRecalculator {
	return ShippingRecalculator{
		uowFactory:  uowFactory,
		catalog:     catalog,
		calculator:  services.NewShippingCalculator(),
		reconciler:  services.NewPaymentReconciler(),
		tenantLimit: tenantLimit,
		logger:      logger.With("component", "ShippingRecalculator"),
	}
}

// Recalculate recomputes and persists the order's shipping cache in its own
// transaction.
func (r *ShippingRecalculator) Recalculate(ctx context.Context, orderID kernel.UUID) error {
	uow := r.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	currentOrder, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}

	// The sums below and the cache write must not interleave with another
	// recompute or settlement for the same client.
	err = uow.LockClient(ctx, currentOrder.OwnerID().String(), currentOrder.ClientID().String())
	if err != nil {
		return err
	}

	items, err := uow.LineItemRepository().ListActiveByOrder(ctx, orderID)
	if err != nil {
		return err
	}

	totalWeight, err := r.totalWeight(ctx, currentOrder.OwnerID(), items)
	if err != nil {
		return err
	}

	shippingDue := kernel.ZeroMoney()
	if methodID := currentOrder.ShippingMethodID(); methodID != nil {
		method, err := uow.ShippingMethodRepository().Get(ctx, *methodID)
		if err != nil {
			return err
		}

		consolidation, err := r.calculator.Consolidate(totalWeight, method, r.tenantLimit)
		if err != nil {
			return err
		}
		shippingDue = consolidation.TotalCost
	}

	captured, err := uow.PaymentRepository().SumCapturedByOrder(ctx, orderID)
	if err != nil {
		return err
	}

	itemsDue := kernel.ZeroMoney()
	for _, item := range items {
		itemsDue = itemsDue.Add(item.GrossTotal())
	}

	status := r.reconciler.ShippingPaidStatus(captured, itemsDue, shippingDue)
	if err = currentOrder.UpdateShippingCache(shippingDue, status, time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, currentOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// RecalculateBestEffort runs Recalculate and downgrades any failure to a log
// line. The cache stays stale until the next mutation or explicit recompute.
func (r *ShippingRecalculator) RecalculateBestEffort(ctx context.Context, orderID kernel.UUID) {
	if err := r.Recalculate(ctx, orderID); err != nil {
		r.logger.Error("shipping recalculation failed",
			"order_id", orderID.String(),
			"error", err)
	}
}

// totalWeight sums catalog weight x quantity over the order's active items.
// Custom items and items whose product vanished from the catalog weigh
// nothing.
func (r *ShippingRecalculator) totalWeight(
	ctx context.Context,
	ownerID kernel.UUID,
	items []*group.LineItem,
) (kernel.Weight, error) {
	total := kernel.ZeroWeight()
	for _, item := range items {
		productID := item.ProductID()
		if productID == nil {
			continue
		}

		snapshot, err := r.catalog.GetProduct(ctx, ownerID, *productID)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return kernel.ZeroWeight(), err
		}

		total = total.Add(snapshot.Weight.MulQuantity(item.Qty()))
	}
	return total, nil
}
