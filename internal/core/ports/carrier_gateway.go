package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// ShippingLabel is the carrier's response to a label request.
type ShippingLabel struct {
	TrackingNumber string
	LabelURL       string
}

// LabelRequest describes one consolidated shipment to label.
type LabelRequest struct {
	OrderID      kernel.UUID
	MethodID     kernel.UUID
	PackageCount int
	TotalWeight  kernel.Weight
}

// CarrierGateway defines the outbound contract to the shipping carrier.
type CarrierGateway interface {
	// CreateLabel registers the shipment with the carrier and returns the
	// tracking number and label document location.
	CreateLabel(ctx context.Context, request LabelRequest) (*ShippingLabel, error)
}
