// Package paymentrepo provides data transfer objects and mapping functions
// for payment record persistence.
package paymentrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
)

// PaymentDTO represents the database structure for persisting payment
// records. GroupID is nullable: order-scoped captures carry no group link.
type PaymentDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;index"`
	OrderID     uuid.UUID  `gorm:"type:uuid;index"`
	GroupID     *uuid.UUID `gorm:"type:uuid;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,2)"`
	Currency    string
	Status      int `gorm:"index"`
	ExternalRef *string
	PaidAt      *time.Time
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "payment_records".
func (PaymentDTO) TableName() string {
	return "payment_records"
}

func fromDomain(record *payment.Record) PaymentDTO {
	var groupID *uuid.UUID
	if id := record.GroupID(); id != nil {
		raw := id.Bytes()
		groupID = &raw
	}

	return PaymentDTO{
		ID:          record.ID().Bytes(),
		OwnerID:     record.OwnerID().Bytes(),
		OrderID:     record.OrderID().Bytes(),
		GroupID:     groupID,
		Amount:      record.Amount().Decimal(),
		Currency:    record.Currency(),
		Status:      int(record.Status()),
		ExternalRef: record.ExternalRef(),
		PaidAt:      record.PaidAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var groupID *kernel.UUID
	if dto.GroupID != nil {
		gID, groupErr := kernel.UUIDFromBytes((*dto.GroupID)[:])
		if groupErr != nil {
			return nil, groupErr
		}
		groupID = &gID
	}

	return payment.RestoreRecord(id, ownerID, orderID, groupID,
		kernel.NewMoney(dto.Amount), dto.Currency,
		payment.Status(dto.Status), dto.ExternalRef, dto.PaidAt)
}
