package orderrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "ShippingMethodID", "ShippingDue", "ShippingPaidStatus", "ShippingPaidAt").
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

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCheckoutToken retrieves an order by its public checkout token.
func (r *GormOrderRepository) GetByCheckoutToken(ctx context.Context, token kernel.Token) (*order.Order, error) {
	if err := token.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "checkout_token = ?", token.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", token.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindOpenByClient retrieves the client's open-for-items orders, most
// recently created first.
func (r *GormOrderRepository) FindOpenByClient(
	ctx context.Context,
	ownerID kernel.UUID,
	clientID kernel.UUID,
) ([]*order.Order, error) {
	if err := errors.Join(ownerID.Validate(), clientID.Validate()); err != nil {
		return nil, err
	}

	openStatuses := make([]int, 0, len(order.OpenForItemsStatuses()))
	for _, status := range order.OpenForItemsStatuses() {
		openStatuses = append(openStatuses, int(status))
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND client_id = ? AND status IN ?",
			ownerID.Bytes(), clientID.Bytes(), openStatuses).
		Order("created_at DESC, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// ListOpenIDs retrieves the ids of all open-for-items orders across tenants.
func (r *GormOrderRepository) ListOpenIDs(ctx context.Context) ([]kernel.UUID, error) {
	openStatuses := make([]int, 0, len(order.OpenForItemsStatuses()))
	for _, status := range order.OpenForItemsStatuses() {
		openStatuses = append(openStatuses, int(status))
	}

	var rawIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status IN ?", openStatuses).
		Order("created_at, id").
		Pluck("id", &rawIDs).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(rawIDs))
	for _, rawID := range rawIDs {
		id, mapErr := kernel.UUIDFromBytes(rawID[:])
		if mapErr != nil {
			return nil, mapErr
		}
		ids = append(ids, id)
	}

	return ids, nil
}
