// Package grouprepo provides data transfer objects and mapping functions for
// packing group persistence.
package grouprepo

import (
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/group"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
)

// GroupDTO represents the database structure for persisting packing groups.
// The group token carries a unique index because it is the public lookup key
// for the group's shared payment page.
type GroupDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;index"`
	GroupToken        string    `gorm:"uniqueIndex"`
	CheckoutCompleted bool
	PaidStatus        int
	CreatedAt         time.Time
}

// TableName overrides GORM's default naming to use "packing_groups".
func (GroupDTO) TableName() string {
	return "packing_groups"
}

func fromDomain(aggregate *group.PackingGroup) GroupDTO {
	return GroupDTO{
		ID:                aggregate.ID().Bytes(),
		OrderID:           aggregate.OrderID().Bytes(),
		GroupToken:        aggregate.GroupToken().String(),
		CheckoutCompleted: aggregate.IsCheckoutCompleted(),
		PaidStatus:        int(aggregate.PaidStatus()),
		CreatedAt:         aggregate.CreatedAt(),
	}
}

func toDomain(dto GroupDTO) (*group.PackingGroup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	token, err := kernel.TokenFromString(dto.GroupToken)
	if err != nil {
		return nil, err
	}

	return group.RestorePackingGroup(id, orderID, token,
		dto.CheckoutCompleted, payment.PaidStatus(dto.PaidStatus), dto.CreatedAt)
}
