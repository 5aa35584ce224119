package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/group"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// ErrContextMismatch is returned when an operation addresses a group through
// an order it does not belong to, or an order through the wrong owner.
var ErrContextMismatch = errors.New("group does not belong to this order and owner")

// groupContext is the resolved pair every item mutation operates on.
type groupContext struct {
	Order *order.Order
	Group *group.PackingGroup
}

// ensureOrderAndOpenGroup finds or creates the client's open order and its
// open packing group. Runs inside the caller's transaction under the
// per-client lock, so two concurrent calls for the same client cannot both
// miss the lookup and create duplicates.
//
// Existing orders and groups are reused as-is; their tokens are never
// regenerated. With several open orders the most recently created one wins.
func ensureOrderAndOpenGroup(
	ctx context.Context,
	uow LedgerUoW,
	ownerID kernel.UUID,
	clientID kernel.UUID,
) (groupContext, error) {
	if err := uow.LockClient(ctx, ownerID.String(), clientID.String()); err != nil {
		return groupContext{}, err
	}

	orderRepo := uow.OrderRepository()
	openOrders, err := orderRepo.FindOpenByClient(ctx, ownerID, clientID)
	if err != nil {
		return groupContext{}, err
	}

	var currentOrder *order.Order
	if len(openOrders) > 0 {
		currentOrder = openOrders[0]
	} else {
		currentOrder, err = order.NewOrder(kernel.NewUUID(), ownerID, clientID)
		if err != nil {
			return groupContext{}, err
		}
		if err = orderRepo.Add(ctx, currentOrder); err != nil {
			return groupContext{}, err
		}
	}

	groupRepo := uow.GroupRepository()
	openGroup, err := groupRepo.FindOpenByOrder(ctx, currentOrder.ID())
	if err != nil {
		return groupContext{}, err
	}

	if openGroup == nil {
		openGroup, err = group.NewPackingGroup(kernel.NewUUID(), currentOrder.ID(), time.Now().UTC())
		if err != nil {
			return groupContext{}, err
		}
		if err = groupRepo.Add(ctx, openGroup); err != nil {
			return groupContext{}, err
		}
	}

	return groupContext{Order: currentOrder, Group: openGroup}, nil
}

// loadMutableContext loads and verifies the (owner, order, group) triple for
// an item mutation: the order must belong to the owner, the group must belong
// to the order, and the group must still be open.
func loadMutableContext(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	groupRepo ports.GroupRepository,
	ownerID kernel.UUID,
	orderID kernel.UUID,
	groupID kernel.UUID,
) (groupContext, error) {
	currentOrder, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return groupContext{}, err
	}
	if err = currentOrder.AssertOwnedBy(ownerID); err != nil {
		return groupContext{}, err
	}

	currentGroup, err := groupRepo.Get(ctx, groupID)
	if err != nil {
		return groupContext{}, err
	}
	if !currentGroup.OrderID().IsEqual(orderID) {
		return groupContext{}, ErrContextMismatch
	}
	if err = currentGroup.EnsureMutable(); err != nil {
		return groupContext{}, err
	}

	return groupContext{Order: currentOrder, Group: currentGroup}, nil
}
