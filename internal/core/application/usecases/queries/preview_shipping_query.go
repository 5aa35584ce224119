package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrPreviewShippingQueryIsNotConstructed = errors.New(
	"PreviewShippingQuery must be created via NewPreviewShippingQuery constructor",
)

// PreviewShippingQuery prices an order's current weight against every active
// shipping method of the tenant. Nothing is persisted; the client sees the
// package split and cost per method before picking one.
type PreviewShippingQuery struct {
	ownerID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPreviewShippingQuery creates a query for a shipping cost preview.
func NewPreviewShippingQuery(ownerID, orderID kernel.UUID) (PreviewShippingQuery, error) {
	query := PreviewShippingQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOwnerID(ownerID),
		query.setOrderID(orderID),
	); err != nil {
		return PreviewShippingQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q PreviewShippingQuery) Validate() error {
	return q.guard.Validate(ErrPreviewShippingQueryIsNotConstructed)
}

// OwnerID returns the tenant scoping the preview.
func (q PreviewShippingQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// OrderID returns the order being priced.
func (q PreviewShippingQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *PreviewShippingQuery) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}
	q.ownerID = ownerID
	return nil
}

func (q *PreviewShippingQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	q.orderID = orderID
	return nil
}

// PreviewShippingQueryResponse is one method's quote for the order.
type PreviewShippingQueryResponse struct {
	MethodID     kernel.UUID
	MethodName   string
	TotalWeight  kernel.Weight
	PackageCount int
	TotalCost    kernel.Money
}
