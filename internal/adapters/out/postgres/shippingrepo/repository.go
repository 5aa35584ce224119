package shippingrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/pkg/errs"
)

// GormShippingMethodRepository implements ShippingMethodRepository using GORM.
type GormShippingMethodRepository struct {
	db *gorm.DB
}

// NewGormShippingMethodRepository creates a new GORM shipping method repository.
func NewGormShippingMethodRepository(db *gorm.DB) *GormShippingMethodRepository {
	return &GormShippingMethodRepository{db: db}
}

// Get retrieves a shipping method with its rule table.
func (r *GormShippingMethodRepository) Get(ctx context.Context, id kernel.UUID) (*shipping.Method, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MethodDTO
	err := r.db.WithContext(ctx).
		Preload("Rules").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipping method", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListActive retrieves the tenant's active methods with their rule tables.
func (r *GormShippingMethodRepository) ListActive(ctx context.Context, ownerID kernel.UUID) ([]*shipping.Method, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MethodDTO
	err := r.db.WithContext(ctx).
		Preload("Rules").
		Where("owner_id = ? AND active", ownerID.Bytes()).
		Order("name, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	methods := make([]*shipping.Method, 0, len(dtos))
	for _, dto := range dtos {
		method, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		methods = append(methods, method)
	}

	return methods, nil
}
