// Package productrepo provides the read-only catalog adapter. Catalog
// maintenance happens outside this service; the ledger only snapshots weight
// and price at add time.
package productrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ProductDTO represents the database structure of a catalog product.
type ProductDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	UnitPrice decimal.Decimal `gorm:"type:decimal(20,2)"`
	Weight    decimal.Decimal `gorm:"type:decimal(20,3)"`
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// GormProductCatalog implements ProductCatalog using GORM.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a new GORM product catalog adapter.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// GetProduct retrieves a product snapshot scoped to the owning tenant.
func (c *GormProductCatalog) GetProduct(
	ctx context.Context,
	ownerID kernel.UUID,
	productID kernel.UUID,
) (*ports.ProductSnapshot, error) {
	if err := errors.Join(ownerID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	var dto ProductDTO
	err := c.db.WithContext(ctx).
		First(&dto, "id = ? AND owner_id = ?", productID.Bytes(), ownerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", productID.String())
		}
		return nil, err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	return &ports.ProductSnapshot{
		ID:        id,
		Name:      dto.Name,
		UnitPrice: kernel.NewMoney(dto.UnitPrice),
		Weight:    weight,
	}, nil
}
