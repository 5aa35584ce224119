package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/group"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCheckoutToken(ctx context.Context, token kernel.Token) (*order.Order, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOpenByClient(
	ctx context.Context, ownerID kernel.UUID, clientID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, ownerID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOpenIDs(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockGroupRepository struct{ mock.Mock }

func (m *MockGroupRepository) Add(ctx context.Context, aggregate *group.PackingGroup) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockGroupRepository) Update(ctx context.Context, aggregate *group.PackingGroup) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockGroupRepository) Get(ctx context.Context, id kernel.UUID) (*group.PackingGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*group.PackingGroup), args.Error(1)
}

func (m *MockGroupRepository) GetByToken(ctx context.Context, token kernel.Token) (*group.PackingGroup, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*group.PackingGroup), args.Error(1)
}

func (m *MockGroupRepository) FindOpenByOrder(ctx context.Context, orderID kernel.UUID) (*group.PackingGroup, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*group.PackingGroup), args.Error(1)
}

func (m *MockGroupRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*group.PackingGroup, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*group.PackingGroup), args.Error(1)
}

type MockLineItemRepository struct{ mock.Mock }

func (m *MockLineItemRepository) Add(ctx context.Context, item *group.LineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockLineItemRepository) Update(ctx context.Context, item *group.LineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockLineItemRepository) Get(
	ctx context.Context, id kernel.UUID, groupID kernel.UUID, ownerID kernel.UUID,
) (*group.LineItem, error) {
	args := m.Called(ctx, id, groupID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*group.LineItem), args.Error(1)
}

func (m *MockLineItemRepository) ListActiveByGroup(ctx context.Context, groupID kernel.UUID) ([]*group.LineItem, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*group.LineItem), args.Error(1)
}

func (m *MockLineItemRepository) ListActiveByOrder(ctx context.Context, orderID kernel.UUID) ([]*group.LineItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*group.LineItem), args.Error(1)
}

func (m *MockLineItemRepository) Remove(ctx context.Context, item *group.LineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, record *payment.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, record *payment.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Record), args.Error(1)
}

func (m *MockPaymentRepository) SumCapturedByOrder(ctx context.Context, orderID kernel.UUID) (kernel.Money, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(kernel.Money), args.Error(1)
}

func (m *MockPaymentRepository) SumCapturedByGroup(ctx context.Context, groupID kernel.UUID) (kernel.Money, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).(kernel.Money), args.Error(1)
}

type MockShippingMethodRepository struct{ mock.Mock }

func (m *MockShippingMethodRepository) Get(ctx context.Context, id kernel.UUID) (*shipping.Method, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.Method), args.Error(1)
}

func (m *MockShippingMethodRepository) ListActive(ctx context.Context, ownerID kernel.UUID) ([]*shipping.Method, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipping.Method), args.Error(1)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) GetProduct(
	ctx context.Context, ownerID kernel.UUID, productID kernel.UUID,
) (*ports.ProductSnapshot, error) {
	args := m.Called(ctx, ownerID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.ProductSnapshot), args.Error(1)
}

type MockCarrierGateway struct{ mock.Mock }

func (m *MockCarrierGateway) CreateLabel(ctx context.Context, request ports.LabelRequest) (*ports.ShippingLabel, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.ShippingLabel), args.Error(1)
}

// txMock implements the transaction lifecycle shared by every unit of work mock.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockLedgerUoW struct{ txMock }

func (m *MockLedgerUoW) LockClient(ctx context.Context, ownerID, clientID string) error {
	args := m.Called(ctx, ownerID, clientID)
	return args.Error(0)
}

func (m *MockLedgerUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockLedgerUoW) GroupRepository() ports.GroupRepository {
	args := m.Called()
	return args.Get(0).(ports.GroupRepository)
}

func (m *MockLedgerUoW) LineItemRepository() ports.LineItemRepository {
	args := m.Called()
	return args.Get(0).(ports.LineItemRepository)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

type MockRecalcUoW struct{ txMock }

func (m *MockRecalcUoW) LockClient(ctx context.Context, ownerID, clientID string) error {
	args := m.Called(ctx, ownerID, clientID)
	return args.Error(0)
}

func (m *MockRecalcUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockRecalcUoW) LineItemRepository() ports.LineItemRepository {
	args := m.Called()
	return args.Get(0).(ports.LineItemRepository)
}

func (m *MockRecalcUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockRecalcUoW) ShippingMethodRepository() ports.ShippingMethodRepository {
	args := m.Called()
	return args.Get(0).(ports.ShippingMethodRepository)
}

type MockRecalcUoWFactory struct{ mock.Mock }

func (m *MockRecalcUoWFactory) Create() commands.RecalcUoW {
	args := m.Called()
	return args.Get(0).(commands.RecalcUoW)
}

type MockSettlementUoW struct{ txMock }

func (m *MockSettlementUoW) LockClient(ctx context.Context, ownerID, clientID string) error {
	args := m.Called(ctx, ownerID, clientID)
	return args.Error(0)
}

func (m *MockSettlementUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockSettlementUoW) GroupRepository() ports.GroupRepository {
	args := m.Called()
	return args.Get(0).(ports.GroupRepository)
}

func (m *MockSettlementUoW) LineItemRepository() ports.LineItemRepository {
	args := m.Called()
	return args.Get(0).(ports.LineItemRepository)
}

func (m *MockSettlementUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}

type MockCheckoutUoW struct{ txMock }

func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCheckoutUoW) GroupRepository() ports.GroupRepository {
	args := m.Called()
	return args.Get(0).(ports.GroupRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockOrderUoW struct{ txMock }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLabelUoW struct{ txMock }

func (m *MockLabelUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockLabelUoW) LineItemRepository() ports.LineItemRepository {
	args := m.Called()
	return args.Get(0).(ports.LineItemRepository)
}

func (m *MockLabelUoW) ShippingMethodRepository() ports.ShippingMethodRepository {
	args := m.Called()
	return args.Get(0).(ports.ShippingMethodRepository)
}

type MockLabelUoWFactory struct{ mock.Mock }

func (m *MockLabelUoWFactory) Create() commands.LabelUoW {
	args := m.Called()
	return args.Get(0).(commands.LabelUoW)
}
