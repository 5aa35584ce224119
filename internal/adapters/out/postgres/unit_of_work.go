// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business transaction: repositories
// obtained from it share the transaction, and tracked aggregates become
// available after commit for post-transaction processing.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"fulfillment/internal/adapters/out/postgres/grouprepo"
	"fulfillment/internal/adapters/out/postgres/itemrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/paymentrepo"
	"fulfillment/internal/adapters/out/postgres/schema"
	"fulfillment/internal/adapters/out/postgres/shippingrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one database
// connection and one schema capability descriptor.
type GormUnitOfWorkFactory struct {
	db           *gorm.DB
	capabilities schema.Capabilities
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The capability descriptor is resolved once at startup via
// schema.Detect and shared by every created instance.
func NewGormUnitOfWorkFactory(db *gorm.DB, capabilities schema.Capabilities) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:           db,
		capabilities: capabilities,
	}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm produces the concrete unit of work. The composition root narrows
// it to the per-handler interfaces.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		capabilities:      f.capabilities,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the ledger's
// repositories and tracks the aggregates written within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	capabilities      schema.Capabilities
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Calling Begin again on an
// instance with an active transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// GroupRepository returns a packing group repository bound to the current
// transaction.
func (uow *GormUnitOfWork) GroupRepository() ports.GroupRepository {
	return grouprepo.NewGormGroupRepository(uow.conn(), uow)
}

// LineItemRepository returns a line item repository bound to the current
// transaction, configured with the detected removal strategy.
func (uow *GormUnitOfWork) LineItemRepository() ports.LineItemRepository {
	return itemrepo.NewGormLineItemRepository(uow.conn(), uow, uow.capabilities.Removal)
}

// PaymentRepository returns a payment repository bound to the current
// transaction, configured with the detected payment scope.
func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow, uow.capabilities.PaymentScope)
}

// ShippingMethodRepository returns a shipping method repository bound to the
// current transaction.
func (uow *GormUnitOfWork) ShippingMethodRepository() ports.ShippingMethodRepository {
	return shippingrepo.NewGormShippingMethodRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Called by the repository implementations on writes.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
