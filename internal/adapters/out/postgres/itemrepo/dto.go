// Package itemrepo provides data transfer objects and mapping functions for
// line item persistence.
package itemrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/group"
	"fulfillment/internal/core/domain/model/kernel"
)

// LineItemDTO represents the database structure for persisting line items.
// Net and vat totals are stored for reporting queries but recomputed on
// restore; the aggregate's arithmetic is the source of truth.
type LineItemDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;index"`
	GroupID     uuid.UUID  `gorm:"type:uuid;index"`
	ProductID   *uuid.UUID `gorm:"type:uuid"`
	Name        string
	Qty         decimal.Decimal `gorm:"type:decimal(20,3)"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(20,2)"`
	VatRate     decimal.Decimal `gorm:"type:decimal(5,2)"`
	NetTotal    decimal.Decimal `gorm:"type:decimal(20,2)"`
	VatValue    decimal.Decimal `gorm:"type:decimal(20,2)"`
	PackedCount decimal.Decimal `gorm:"type:decimal(20,3)"`
	IsPrepared  bool
	SourceType  int
	RemovedAt   *time.Time `gorm:"index"`
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "line_items".
func (LineItemDTO) TableName() string {
	return "line_items"
}

func fromDomain(item *group.LineItem) LineItemDTO {
	var productID *uuid.UUID
	if id := item.ProductID(); id != nil {
		raw := id.Bytes()
		productID = &raw
	}

	return LineItemDTO{
		ID:          item.ID().Bytes(),
		OwnerID:     item.OwnerID().Bytes(),
		GroupID:     item.GroupID().Bytes(),
		ProductID:   productID,
		Name:        item.Name(),
		Qty:         item.Qty().Decimal(),
		UnitPrice:   item.UnitPrice().Decimal(),
		VatRate:     item.VatRate(),
		NetTotal:    item.NetTotal().Decimal(),
		VatValue:    item.VatValue().Decimal(),
		PackedCount: item.PackedCount().Decimal(),
		IsPrepared:  item.IsPrepared(),
		SourceType:  int(item.SourceType()),
		RemovedAt:   item.RemovedAt(),
	}
}

func toDomain(dto LineItemDTO) (*group.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}
	groupID, err := kernel.UUIDFromBytes(dto.GroupID[:])
	if err != nil {
		return nil, err
	}

	var productID *kernel.UUID
	if dto.ProductID != nil {
		pID, productErr := kernel.UUIDFromBytes((*dto.ProductID)[:])
		if productErr != nil {
			return nil, productErr
		}
		productID = &pID
	}

	return group.RestoreLineItem(id, ownerID, groupID, productID, dto.Name,
		kernel.NewQuantity(dto.Qty), kernel.NewMoney(dto.UnitPrice), dto.VatRate,
		kernel.NewQuantity(dto.PackedCount),
		group.SourceType(dto.SourceType), dto.RemovedAt)
}
