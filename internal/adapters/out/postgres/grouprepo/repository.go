package grouprepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/group"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// GormGroupRepository implements GroupRepository using GORM.
type GormGroupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormGroupRepository creates a new GORM packing group repository.
func NewGormGroupRepository(db *gorm.DB, tracker aggregateTracker) *GormGroupRepository {
	return &GormGroupRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new packing group to the database.
func (r *GormGroupRepository) Add(ctx context.Context, aggregate *group.PackingGroup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing packing group to the database.
func (r *GormGroupRepository) Update(ctx context.Context, aggregate *group.PackingGroup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&GroupDTO{}).
		Where("id = ?", dto.ID).
		Select("CheckoutCompleted", "PaidStatus").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a packing group by ID.
func (r *GormGroupRepository) Get(ctx context.Context, id kernel.UUID) (*group.PackingGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto GroupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("packing group", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByToken retrieves a packing group by its public group token.
func (r *GormGroupRepository) GetByToken(ctx context.Context, token kernel.Token) (*group.PackingGroup, error) {
	if err := token.Validate(); err != nil {
		return nil, err
	}

	var dto GroupDTO
	if err := r.db.WithContext(ctx).First(&dto, "group_token = ?", token.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("packing group", token.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindOpenByOrder retrieves the order's most recent open group, or nil when
// every group of the order has completed checkout.
func (r *GormGroupRepository) FindOpenByOrder(ctx context.Context, orderID kernel.UUID) (*group.PackingGroup, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto GroupDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND NOT checkout_completed", orderID.Bytes()).
		Order("created_at DESC, id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByOrder retrieves all of the order's groups, oldest first.
func (r *GormGroupRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*group.PackingGroup, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []GroupDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	groups := make([]*group.PackingGroup, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		groups = append(groups, aggregate)
	}

	return groups, nil
}
