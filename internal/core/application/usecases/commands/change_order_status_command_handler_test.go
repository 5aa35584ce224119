package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	currentOrder, err := order.NewOrder(kernel.NewUUID(), ownerID, kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewChangeOrderStatusCommand(ownerID, currentOrder.ID(),
		commands.OrderActionOpenAdding)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, currentOrder.ID()).Return(currentOrder, nil).Once(),
		orderRepo.On("Update", ctx, currentOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.OpenAddProducts, currentOrder.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	currentOrder, err := order.NewOrder(kernel.NewUUID(), ownerID, kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewChangeOrderStatusCommand(ownerID, currentOrder.ID(),
		commands.OrderActionComplete)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, currentOrder.ID()).Return(currentOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.Equal(t, order.New, currentOrder.Status())
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_OwnerMismatch(t *testing.T) {
	ctx := t.Context()
	currentOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), currentOrder.ID(),
		commands.OrderActionCancel)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, currentOrder.ID()).Return(currentOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderOwnerMismatch)
	uow.AssertExpectations(t)
}

func TestNewChangeOrderStatusCommand_Invalid(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), kernel.NewUUID(),
		commands.OrderActionUnknown)
	require.Error(t, err)
}
