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
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/pkg/errs"
)

func settledRecord(
	t *testing.T, ownerID, orderID kernel.UUID, groupID *kernel.UUID, amount float64,
) *payment.Record {
	t.Helper()
	paidAt := time.Now().UTC()
	record, err := payment.RestoreRecord(kernel.NewUUID(), ownerID, orderID, groupID,
		kernel.NewMoneyFromFloat(amount), "PLN", payment.Settled, nil, &paidAt)
	require.NoError(t, err)
	return record
}

func TestRefundPaymentCommandHandler_Handle_GroupScope(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	currentOrder := restoreAwaitingOrder(t, ownerID, kernel.NewMoneyFromFloat(20))
	currentGroup, err := group.NewPackingGroup(kernel.NewUUID(), currentOrder.ID(), time.Now())
	require.NoError(t, err)
	require.NoError(t, currentGroup.SetPaidStatus(payment.Paid))
	groupID := currentGroup.ID()
	record := settledRecord(t, ownerID, currentOrder.ID(), &groupID, 80)
	item := grossItem(t, ownerID, groupID, 80)

	cmd, err := commands.NewRefundPaymentCommand(ownerID, record.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	groupRepo := new(MockGroupRepository)
	itemRepo := new(MockLineItemRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockSettlementUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("GroupRepository").Return(groupRepo)
	uow.On("LineItemRepository").Return(itemRepo)
	uow.On("PaymentRepository").Return(paymentRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		paymentRepo.On("Get", ctx, record.ID()).Return(record, nil).Once(),
		orderRepo.On("Get", ctx, currentOrder.ID()).Return(currentOrder, nil).Once(),
		uow.On("LockClient", ctx, ownerID.String(), currentOrder.ClientID().String()).
			Return(nil).Once(),
		paymentRepo.On("Update", ctx, record).Return(nil).Once(),
		groupRepo.On("Get", ctx, groupID).Return(currentGroup, nil).Once(),
		paymentRepo.On("SumCapturedByGroup", ctx, groupID).
			Return(kernel.ZeroMoney(), nil).Once(),
		itemRepo.On("ListActiveByGroup", ctx, groupID).
			Return([]*group.LineItem{item}, nil).Once(),
		groupRepo.On("Update", ctx, currentGroup).Return(nil).Once(),
		paymentRepo.On("SumCapturedByOrder", ctx, currentOrder.ID()).
			Return(kernel.ZeroMoney(), nil).Once(),
		itemRepo.On("ListActiveByOrder", ctx, currentOrder.ID()).
			Return([]*group.LineItem{item}, nil).Once(),
		orderRepo.On("Update", ctx, currentOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefundPaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, payment.Refunded, record.Status())
	// With the captured sum gone the paid badges drop back to unpaid.
	require.Equal(t, payment.Unpaid, currentGroup.PaidStatus())
	require.Equal(t, payment.Unpaid, currentOrder.ShippingPaidStatus())
	paymentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRefundPaymentCommandHandler_Handle_ForeignOwner(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	currentOrder := restoreAwaitingOrder(t, ownerID, kernel.ZeroMoney())
	record := settledRecord(t, ownerID, currentOrder.ID(), nil, 10)

	cmd, err := commands.NewRefundPaymentCommand(kernel.NewUUID(), record.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockSettlementUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PaymentRepository").Return(paymentRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		paymentRepo.On("Get", ctx, record.ID()).Return(record, nil).Once(),
		orderRepo.On("Get", ctx, currentOrder.ID()).Return(currentOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefundPaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderOwnerMismatch)
	require.Equal(t, payment.Settled, record.Status())
	uow.AssertExpectations(t)
}

func TestRefundPaymentCommandHandler_Handle_NotSettled(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	currentOrder := restoreAwaitingOrder(t, ownerID, kernel.ZeroMoney())
	record, err := payment.RestoreRecord(kernel.NewUUID(), ownerID, currentOrder.ID(), nil,
		kernel.NewMoneyFromFloat(10), "PLN", payment.Failed, nil, nil)
	require.NoError(t, err)

	cmd, err := commands.NewRefundPaymentCommand(ownerID, record.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockSettlementUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PaymentRepository").Return(paymentRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		paymentRepo.On("Get", ctx, record.ID()).Return(record, nil).Once(),
		orderRepo.On("Get", ctx, currentOrder.ID()).Return(currentOrder, nil).Once(),
		uow.On("LockClient", ctx, ownerID.String(), currentOrder.ClientID().String()).
			Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefundPaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertExpectations(t)
}
