package itemrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fulfillment/internal/adapters/out/postgres/schema"
	"fulfillment/internal/core/domain/model/group"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// GormLineItemRepository implements LineItemRepository using GORM. The
// physical removal variant comes from the schema capability descriptor
// resolved at startup.
type GormLineItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	removal schema.RemovalStrategy
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLineItemRepository creates a new GORM line item repository.
func NewGormLineItemRepository(
	db *gorm.DB,
	tracker aggregateTracker,
	removal schema.RemovalStrategy,
) *GormLineItemRepository {
	return &GormLineItemRepository{
		db:      db,
		tracker: tracker,
		removal: removal,
	}
}

// Add saves a new line item to the database.
func (r *GormLineItemRepository) Add(ctx context.Context, item *group.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	tx := r.db.WithContext(ctx)
	if r.removal != schema.RemoveByTimestamp {
		// The insert must not name a column the deployed schema lacks.
		tx = tx.Omit("RemovedAt")
	}
	if err := tx.Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update saves an existing line item to the database.
func (r *GormLineItemRepository) Update(ctx context.Context, item *group.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&LineItemDTO{}).
		Where("id = ?", dto.ID).
		Select("Qty", "UnitPrice", "VatRate", "NetTotal", "VatValue",
			"PackedCount", "IsPrepared").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Get retrieves a line item scoped by id, group and tenant. A cross-scope
// identifier yields a not-found error rather than another tenant's row.
func (r *GormLineItemRepository) Get(
	ctx context.Context,
	id kernel.UUID,
	groupID kernel.UUID,
	ownerID kernel.UUID,
) (*group.LineItem, error) {
	if err := errors.Join(id.Validate(), groupID.Validate(), ownerID.Validate()); err != nil {
		return nil, err
	}

	var dto LineItemDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND group_id = ? AND owner_id = ?",
			id.Bytes(), groupID.Bytes(), ownerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("line item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListActiveByGroup retrieves the group's items that are not removed.
func (r *GormLineItemRepository) ListActiveByGroup(ctx context.Context, groupID kernel.UUID) ([]*group.LineItem, error) {
	if err := groupID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LineItemDTO
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID.Bytes()).
		Where(r.removal.ActiveCondition("")).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.mapAll(dtos)
}

// ListActiveByOrder retrieves all active items across the order's groups.
func (r *GormLineItemRepository) ListActiveByOrder(ctx context.Context, orderID kernel.UUID) ([]*group.LineItem, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LineItemDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN packing_groups pg ON pg.id = line_items.group_id").
		Where("pg.order_id = ?", orderID.Bytes()).
		Where(r.removal.ActiveCondition("line_items.")).
		Order("line_items.created_at, line_items.id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.mapAll(dtos)
}

// Remove removes the item using the configured removal strategy.
func (r *GormLineItemRepository) Remove(ctx context.Context, item *group.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	id := item.ID().Bytes()

	var result *gorm.DB
	switch r.removal {
	case schema.RemoveByTimestamp:
		result = r.db.WithContext(ctx).
			Model(&LineItemDTO{}).
			Where("id = ?", id).
			Update("removed_at", item.RemovedAt())
	case schema.RemoveByFlag:
		result = r.db.WithContext(ctx).
			Exec("UPDATE line_items SET removed = TRUE WHERE id = ?", id)
	case schema.RemoveHard:
		result = r.db.WithContext(ctx).Delete(&LineItemDTO{}, "id = ?", id)
	default:
		return errs.NewValueIsInvalidErrorWithCause("removal strategy",
			errors.New("unknown removal strategy"))
	}
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

func (r *GormLineItemRepository) mapAll(dtos []LineItemDTO) ([]*group.LineItem, error) {
	items := make([]*group.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
