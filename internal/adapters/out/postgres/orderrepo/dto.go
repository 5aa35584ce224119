// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/payment"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The checkout token carries a unique index because it is the public lookup
// key for the client-facing checkout page.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID            uuid.UUID       `gorm:"type:uuid;index:idx_orders_owner_client"`
	ClientID           uuid.UUID       `gorm:"type:uuid;index:idx_orders_owner_client"`
	Status             int             `gorm:"index"`
	CheckoutToken      string          `gorm:"uniqueIndex"`
	ShippingMethodID   *uuid.UUID      `gorm:"type:uuid"`
	ShippingDue        decimal.Decimal `gorm:"type:decimal(20,2)"`
	ShippingPaidStatus int
	ShippingPaidAt     *time.Time
	CreatedAt          time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var methodID *uuid.UUID
	if id := aggregate.ShippingMethodID(); id != nil {
		raw := id.Bytes()
		methodID = &raw
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		OwnerID:            aggregate.OwnerID().Bytes(),
		ClientID:           aggregate.ClientID().Bytes(),
		Status:             int(aggregate.Status()),
		CheckoutToken:      aggregate.CheckoutToken().String(),
		ShippingMethodID:   methodID,
		ShippingDue:        aggregate.ShippingDue().Decimal(),
		ShippingPaidStatus: int(aggregate.ShippingPaidStatus()),
		ShippingPaidAt:     aggregate.ShippingPaidAt(),
	}
}

// toDomain reconstructs an order aggregate from a database row.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var methodID *kernel.UUID
	if dto.ShippingMethodID != nil {
		mID, methodErr := kernel.UUIDFromBytes((*dto.ShippingMethodID)[:])
		if methodErr != nil {
			return nil, methodErr
		}
		methodID = &mID
	}

	token, err := kernel.TokenFromString(dto.CheckoutToken)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, ownerID, clientID,
		order.Status(dto.Status), token, methodID,
		kernel.NewMoney(dto.ShippingDue),
		payment.PaidStatus(dto.ShippingPaidStatus),
		dto.ShippingPaidAt)
}
