package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/group"
	"fulfillment/internal/core/domain/model/kernel"
)

func TestRemoveItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	fixture := newItemFixture(t)

	cmd, err := commands.NewRemoveItemCommand(fixture.ownerID, fixture.order.ID(),
		fixture.group.ID(), fixture.item.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	groupRepo := new(MockGroupRepository)
	itemRepo := new(MockLineItemRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("GroupRepository").Return(groupRepo).Once(),
		orderRepo.On("Get", ctx, fixture.order.ID()).Return(fixture.order, nil).Once(),
		groupRepo.On("Get", ctx, fixture.group.ID()).Return(fixture.group, nil).Once(),
		uow.On("LineItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", ctx, fixture.item.ID(), fixture.group.ID(), fixture.ownerID).
			Return(fixture.item, nil).Once(),
		itemRepo.On("Remove", ctx, fixture.item).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveItemCommandHandler(factory, stubRecalculator())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, fixture.item.IsRemoved())
	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveItemCommandHandler_Handle_AlreadyRemoved(t *testing.T) {
	ctx := t.Context()
	fixture := newItemFixture(t)
	require.NoError(t, fixture.item.MarkRemoved(time.Now().UTC()))

	cmd, err := commands.NewRemoveItemCommand(fixture.ownerID, fixture.order.ID(),
		fixture.group.ID(), fixture.item.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	groupRepo := new(MockGroupRepository)
	itemRepo := new(MockLineItemRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("GroupRepository").Return(groupRepo).Once(),
		orderRepo.On("Get", ctx, fixture.order.ID()).Return(fixture.order, nil).Once(),
		groupRepo.On("Get", ctx, fixture.group.ID()).Return(fixture.group, nil).Once(),
		uow.On("LineItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", ctx, fixture.item.ID(), fixture.group.ID(), fixture.ownerID).
			Return(fixture.item, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveItemCommandHandler(factory, stubRecalculator())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, group.ErrItemAlreadyRemoved)
	uow.AssertExpectations(t)
}

func TestRemoveItemCommandHandler_Handle_RemoveError(t *testing.T) {
	ctx := t.Context()
	fixture := newItemFixture(t)

	cmd, err := commands.NewRemoveItemCommand(fixture.ownerID, fixture.order.ID(),
		fixture.group.ID(), fixture.item.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	groupRepo := new(MockGroupRepository)
	itemRepo := new(MockLineItemRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("GroupRepository").Return(groupRepo).Once(),
		orderRepo.On("Get", ctx, fixture.order.ID()).Return(fixture.order, nil).Once(),
		groupRepo.On("Get", ctx, fixture.group.ID()).Return(fixture.group, nil).Once(),
		uow.On("LineItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", ctx, fixture.item.ID(), fixture.group.ID(), fixture.ownerID).
			Return(fixture.item, nil).Once(),
		itemRepo.On("Remove", ctx, fixture.item).Return(errors.New("delete failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveItemCommandHandler(factory, stubRecalculator())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestNewRemoveItemCommand_Invalid(t *testing.T) {
	_, err := commands.NewRemoveItemCommand(kernel.UUID{}, kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID())
	require.Error(t, err)

	_, err = commands.NewRemoveItemCommand(kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}
