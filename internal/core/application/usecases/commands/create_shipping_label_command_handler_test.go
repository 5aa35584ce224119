package commands_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/group"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/ports"
)

func restoreReadyOrder(t *testing.T, ownerID kernel.UUID, methodID *kernel.UUID) *order.Order {
	t.Helper()
	restored, err := order.RestoreOrder(kernel.NewUUID(), ownerID, kernel.NewUUID(),
		order.ReadyToShip, kernel.NewToken(), methodID,
		kernel.NewMoneyFromFloat(15), payment.Paid, nil)
	require.NoError(t, err)
	return restored
}

func TestCreateShippingLabelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	maxWeight := kernel.MustNewWeight(10)
	method, err := shipping.NewMethod(kernel.NewUUID(), ownerID, "Courier", &maxWeight,
		kernel.NewMoneyFromFloat(15), nil, true)
	require.NoError(t, err)
	methodID := method.ID()
	currentOrder := restoreReadyOrder(t, ownerID, &methodID)

	productID := kernel.NewUUID()
	item, err := group.NewLineItem(kernel.NewUUID(), ownerID, kernel.NewUUID(), &productID,
		"Boots", kernel.NewQuantityFromFloat(3), kernel.NewMoneyFromFloat(50),
		decimal.Zero, group.SourceShop)
	require.NoError(t, err)

	cmd, err := commands.NewCreateShippingLabelCommand(ownerID, currentOrder.ID())
	require.NoError(t, err)

	wantLabel := &ports.ShippingLabel{
		TrackingNumber: "TRK-0001",
		LabelURL:       "https://carrier.example/labels/TRK-0001.pdf",
	}

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockLineItemRepository)
	methodRepo := new(MockShippingMethodRepository)
	carrier := new(MockCarrierGateway)
	uow := new(MockLabelUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("LineItemRepository").Return(itemRepo)
	uow.On("ShippingMethodRepository").Return(methodRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, currentOrder.ID()).Return(currentOrder, nil).Once(),
		methodRepo.On("Get", ctx, methodID).Return(method, nil).Once(),
		itemRepo.On("ListActiveByOrder", ctx, currentOrder.ID()).
			Return([]*group.LineItem{item}, nil).Once(),
		carrier.On("CreateLabel", ctx, mock.MatchedBy(func(req ports.LabelRequest) bool {
			return req.OrderID.IsEqual(currentOrder.ID()) &&
				req.MethodID.IsEqual(methodID) &&
				req.PackageCount == 2 &&
				req.TotalWeight.String() == "18.000"
		})).Return(wantLabel, nil).Once(),
		orderRepo.On("Update", ctx, currentOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLabelUoWFactory)
	factory.On("Create").Return(uow).Once()

	catalog := new(MockProductCatalog)
	catalog.On("GetProduct", ctx, ownerID, productID).
		Return(&ports.ProductSnapshot{
			ID:     productID,
			Name:   "Boots",
			Weight: kernel.MustNewWeight(6),
		}, nil).Once()

	h := commands.NewCreateShippingLabelCommandHandler(factory, carrier, catalog, nil)
	label, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, wantLabel, label)
	require.Equal(t, order.Shipped, currentOrder.Status())
	carrier.AssertExpectations(t)
	catalog.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateShippingLabelCommandHandler_Handle_NoMethodAssigned(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	currentOrder := restoreReadyOrder(t, ownerID, nil)

	cmd, err := commands.NewCreateShippingLabelCommand(ownerID, currentOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	carrier := new(MockCarrierGateway)
	uow := new(MockLabelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, currentOrder.ID()).Return(currentOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLabelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShippingLabelCommandHandler(factory, carrier, new(MockProductCatalog), nil)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrShippingMethodNotAssigned)
	carrier.AssertNotCalled(t, "CreateLabel", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateShippingLabelCommandHandler_Handle_CarrierError(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	method, err := shipping.NewMethod(kernel.NewUUID(), ownerID, "Courier", nil,
		kernel.NewMoneyFromFloat(15), nil, true)
	require.NoError(t, err)
	methodID := method.ID()
	currentOrder := restoreReadyOrder(t, ownerID, &methodID)

	cmd, err := commands.NewCreateShippingLabelCommand(ownerID, currentOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockLineItemRepository)
	methodRepo := new(MockShippingMethodRepository)
	carrier := new(MockCarrierGateway)
	uow := new(MockLabelUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("LineItemRepository").Return(itemRepo)
	uow.On("ShippingMethodRepository").Return(methodRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, currentOrder.ID()).Return(currentOrder, nil).Once(),
		methodRepo.On("Get", ctx, methodID).Return(method, nil).Once(),
		itemRepo.On("ListActiveByOrder", ctx, currentOrder.ID()).
			Return([]*group.LineItem{}, nil).Once(),
		carrier.On("CreateLabel", ctx, mock.AnythingOfType("ports.LabelRequest")).
			Return(nil, errors.New("carrier timeout")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLabelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShippingLabelCommandHandler(factory, carrier, new(MockProductCatalog), nil)
	_, err = h.Handle(ctx, cmd)

	require.ErrorContains(t, err, "carrier timeout")
	require.Equal(t, order.ReadyToShip, currentOrder.Status())
	uow.AssertExpectations(t)
}
