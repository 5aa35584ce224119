package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/group"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CreateShippingLabelCommandHandler registers a ready-to-ship order with the
// carrier and marks it shipped. The consolidation is recomputed from source
// rows so the carrier sees the same package split the client was priced on.
//
// The carrier call happens inside the transaction: if persisting the shipped
// status fails the transaction rolls back, and the stray carrier label is the
// carrier's cancellation problem, surfaced by the returned error.
type CreateShippingLabelCommandHandler struct {
	uowFactory  LabelUoWFactory
	carrier     ports.CarrierGateway
	catalog     ports.ProductCatalog
	calculator  services.ShippingCalculator
	tenantLimit *kernel.Weight
}

// NewCreateShippingLabelCommandHandler creates a handler for label creation.
func NewCreateShippingLabelCommandHandler(
	uowFactory LabelUoWFactory,
	carrier ports.CarrierGateway,
	catalog ports.ProductCatalog,
	tenantLimit *kernel.Weight,
) CreateShippingLabelCommandHandler {
	return CreateShippingLabelCommandHandler{
		uowFactory:  uowFactory,
		carrier:     carrier,
		catalog:     catalog,
		calculator:  services.NewShippingCalculator(),
		tenantLimit: tenantLimit,
	}
}

// Handle processes the label creation and returns the carrier's label.
func (h *CreateShippingLabelCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShippingLabelCommand,
) (*ports.ShippingLabel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	currentOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if err = currentOrder.AssertOwnedBy(cmd.OwnerID()); err != nil {
		return nil, err
	}

	methodID := currentOrder.ShippingMethodID()
	if methodID == nil {
		return nil, ErrShippingMethodNotAssigned
	}

	method, err := uow.ShippingMethodRepository().Get(ctx, *methodID)
	if err != nil {
		return nil, err
	}

	items, err := uow.LineItemRepository().ListActiveByOrder(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	totalWeight, err := h.totalWeight(ctx, currentOrder.OwnerID(), items)
	if err != nil {
		return nil, err
	}

	consolidation, err := h.calculator.Consolidate(totalWeight, method, h.tenantLimit)
	if err != nil {
		return nil, err
	}

	label, err := h.carrier.CreateLabel(ctx, ports.LabelRequest{
		OrderID:      currentOrder.ID(),
		MethodID:     *methodID,
		PackageCount: consolidation.PackageCount,
		TotalWeight:  consolidation.TotalWeight,
	})
	if err != nil {
		return nil, err
	}

	if err = currentOrder.Ship(); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, currentOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return label, nil
}

func (h *CreateShippingLabelCommandHandler) totalWeight(
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

		snapshot, err := h.catalog.GetProduct(ctx, ownerID, *productID)
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
