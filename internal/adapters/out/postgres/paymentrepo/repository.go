package paymentrepo

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fulfillment/internal/adapters/out/postgres/schema"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/pkg/errs"
)

// GormPaymentRepository implements PaymentRepository using GORM. On schemas
// without a group link, group-level captured sums fall back to the order sum.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	scope   schema.PaymentScope
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment record repository.
func NewGormPaymentRepository(
	db *gorm.DB,
	tracker aggregateTracker,
	scope schema.PaymentScope,
) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
		scope:   scope,
	}
}

// Add saves a new payment record to the database.
func (r *GormPaymentRepository) Add(ctx context.Context, record *payment.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if r.scope == schema.PaymentsPerOrder {
		dto.GroupID = nil
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Update saves an existing payment record to the database.
func (r *GormPaymentRepository) Update(ctx context.Context, record *payment.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).
		Model(&PaymentDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "ExternalRef", "PaidAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Get retrieves a payment record by ID.
func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment record", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// SumCapturedByOrder returns the order's captured amount. Refunded rows left
// the captured pool, so only settled rows count.
func (r *GormPaymentRepository) SumCapturedByOrder(ctx context.Context, orderID kernel.UUID) (kernel.Money, error) {
	if err := orderID.Validate(); err != nil {
		return kernel.ZeroMoney(), err
	}

	return r.sumCaptured(ctx, "order_id = ?", orderID)
}

// SumCapturedByGroup returns the group's captured amount on group-linked
// schemas. Order-scoped schemas carry no per-group attribution; there the
// adapter resolves the group's order and answers with the order-wide sum.
func (r *GormPaymentRepository) SumCapturedByGroup(ctx context.Context, groupID kernel.UUID) (kernel.Money, error) {
	if err := groupID.Validate(); err != nil {
		return kernel.ZeroMoney(), err
	}

	if r.scope == schema.PaymentsPerOrder {
		return r.sumCaptured(ctx,
			"order_id = (SELECT order_id FROM packing_groups WHERE id = ?)", groupID)
	}

	return r.sumCaptured(ctx, "group_id = ?", groupID)
}

func (r *GormPaymentRepository) sumCaptured(ctx context.Context, filter string, id kernel.UUID) (kernel.Money, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&PaymentDTO{}).
		Select("COALESCE(SUM(amount), 0)").
		Where(filter, id.Bytes()).
		Where("status = ?", int(payment.Settled)).
		Scan(&total).Error
	if err != nil {
		return kernel.ZeroMoney(), err
	}

	return kernel.NewMoney(total), nil
}
