package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/group"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

func TestEnsureOrderAndOpenGroupCommandHandler_Handle_CreatesBoth(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	cmd, _ := commands.NewEnsureOrderAndOpenGroupCommand(ownerID, clientID, group.SourceShop)

	orderRepo := new(MockOrderRepository)
	groupRepo := new(MockGroupRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LockClient", ctx, ownerID.String(), clientID.String()).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("FindOpenByClient", ctx, ownerID, clientID).Return([]*order.Order{}, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("GroupRepository").Return(groupRepo).Once(),
		groupRepo.On("FindOpenByOrder", ctx, mock.AnythingOfType("kernel.UUID")).Return(nil, nil).Once(),
		groupRepo.On("Add", ctx, mock.AnythingOfType("*group.PackingGroup")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEnsureOrderAndOpenGroupCommandHandler(factory)
	resolution, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, resolution.OrderID.Validate())
	require.NoError(t, resolution.GroupID.Validate())
	require.NoError(t, resolution.CheckoutToken.Validate())
	require.NoError(t, resolution.GroupToken.Validate())
	orderRepo.AssertExpectations(t)
	groupRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestEnsureOrderAndOpenGroupCommandHandler_Handle_ReusesExisting(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	cmd, _ := commands.NewEnsureOrderAndOpenGroupCommand(ownerID, clientID, group.SourceParser)

	existingOrder, err := order.NewOrder(kernel.NewUUID(), ownerID, clientID)
	require.NoError(t, err)
	existingGroup, err := group.NewPackingGroup(kernel.NewUUID(), existingOrder.ID(), time.Now())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	groupRepo := new(MockGroupRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LockClient", ctx, ownerID.String(), clientID.String()).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("FindOpenByClient", ctx, ownerID, clientID).
			Return([]*order.Order{existingOrder}, nil).Once(),
		uow.On("GroupRepository").Return(groupRepo).Once(),
		groupRepo.On("FindOpenByOrder", ctx, existingOrder.ID()).Return(existingGroup, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEnsureOrderAndOpenGroupCommandHandler(factory)

	// Two consecutive calls resolve to the same identifiers and tokens.
	resolution, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, existingOrder.ID().IsEqual(resolution.OrderID))
	require.True(t, existingGroup.ID().IsEqual(resolution.GroupID))
	require.True(t, existingOrder.CheckoutToken().IsEqual(resolution.CheckoutToken))
	require.True(t, existingGroup.GroupToken().IsEqual(resolution.GroupToken))
	orderRepo.AssertExpectations(t)
	groupRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestEnsureOrderAndOpenGroupCommandHandler_Handle_LockBusy(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	cmd, _ := commands.NewEnsureOrderAndOpenGroupCommand(ownerID, clientID, group.SourceLive)

	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LockClient", ctx, ownerID.String(), clientID.String()).
			Return(ports.ErrLockBusy).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEnsureOrderAndOpenGroupCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, ports.ErrLockBusy)
	uow.AssertExpectations(t)
}

func TestEnsureOrderAndOpenGroupCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockLedgerUoWFactory)

	h := commands.NewEnsureOrderAndOpenGroupCommandHandler(factory)
	_, err := h.Handle(ctx, commands.EnsureOrderAndOpenGroupCommand{})

	require.Error(t, err)
}

func TestNewEnsureOrderAndOpenGroupCommand_Invalid(t *testing.T) {
	_, err := commands.NewEnsureOrderAndOpenGroupCommand(kernel.UUID{}, kernel.NewUUID(), group.SourceShop)
	require.Error(t, err)

	_, err = commands.NewEnsureOrderAndOpenGroupCommand(kernel.NewUUID(), kernel.UUID{}, group.SourceShop)
	require.Error(t, err)

	_, err = commands.NewEnsureOrderAndOpenGroupCommand(kernel.NewUUID(), kernel.NewUUID(), group.SourceTypeUnknown)
	require.Error(t, err)
}
