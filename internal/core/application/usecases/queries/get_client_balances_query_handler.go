package queries

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fulfillment/internal/adapters/out/postgres/schema"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/core/domain/services"
)

// GetClientBalancesQueryHandler assembles the client's balance view from the
// ledger rows. Group-scoped captures are pinned to their group; order-scoped
// captures form a pool allocated oldest-group-first within each order.
type GetClientBalancesQueryHandler struct {
	db         *gorm.DB
	removal    schema.RemovalStrategy
	reconciler services.PaymentReconciler
}

// NewGetClientBalancesQueryHandler creates a handler for client balance views.
// removal selects the active-item predicate matching the deployed schema.
func NewGetClientBalancesQueryHandler(
	db *gorm.DB,
	removal schema.RemovalStrategy,
) GetClientBalancesQueryHandler {
	return GetClientBalancesQueryHandler{
		db:         db,
		removal:    removal,
		reconciler: services.NewPaymentReconciler(),
	}
}

type groupBalanceRow struct {
	orderID kernel.UUID
	groupID kernel.UUID
	due     kernel.Money
	pinned  kernel.Money
}

// Handle executes the balance view. One response line per packing group of
// the client, ordered by group creation time.
func (h GetClientBalancesQueryHandler) Handle(
	ctx context.Context,
	query GetClientBalancesQuery,
) ([]GetClientBalancesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	groupRows, err := h.groupRows(ctx, query.OwnerID(), query.ClientID())
	if err != nil {
		return nil, err
	}

	pools, err := h.orderPools(ctx, query.OwnerID(), query.ClientID())
	if err != nil {
		return nil, err
	}

	return h.assemble(groupRows, pools), nil
}

// assemble spreads each order's pool across its groups in row order and
// derives the per-group paid status from the combined captured amount.
func (h GetClientBalancesQueryHandler) assemble(
	groupRows []groupBalanceRow,
	pools map[kernel.UUID]kernel.Money,
) []GetClientBalancesQueryResponse {
	// Dues entering the pool allocation are what the pinned captures left
	// uncovered; the pool never pays a group twice.
	duesByOrder := make(map[kernel.UUID][]services.GroupDue)
	orderIDs := make([]kernel.UUID, 0)
	for _, row := range groupRows {
		if _, seen := duesByOrder[row.orderID]; !seen {
			orderIDs = append(orderIDs, row.orderID)
		}
		duesByOrder[row.orderID] = append(duesByOrder[row.orderID], services.GroupDue{
			GroupID: row.groupID,
			Due:     row.due.Sub(row.pinned).ClampNonNegative(),
		})
	}

	applied := make(map[kernel.UUID]kernel.Money)
	for _, orderID := range orderIDs {
		pool, ok := pools[orderID]
		if !ok {
			pool = kernel.ZeroMoney()
		}
		for _, allocation := range h.reconciler.AllocatePool(pool, duesByOrder[orderID]) {
			applied[allocation.GroupID] = allocation.Applied
		}
	}

	responses := make([]GetClientBalancesQueryResponse, 0, len(groupRows))
	for _, row := range groupRows {
		captured := row.pinned.Add(applied[row.groupID])
		responses = append(responses, GetClientBalancesQueryResponse{
			OrderID:    row.orderID,
			GroupID:    row.groupID,
			Due:        row.due,
			Captured:   captured,
			Balance:    row.due.Sub(captured).ClampNonNegative(),
			PaidStatus: h.reconciler.PaidStatus(captured, row.due),
		})
	}
	return responses
}

func (h GetClientBalancesQueryHandler) groupRows(
	ctx context.Context,
	ownerID kernel.UUID,
	clientID kernel.UUID,
) ([]groupBalanceRow, error) {
	statement := fmt.Sprintf(`
		SELECT
			pg.order_id,
			pg.id,
			COALESCE((
				SELECT SUM(li.net_total + li.vat_value)
				FROM line_items li
				WHERE li.group_id = pg.id
				  AND %s
			), 0) AS due,
			COALESCE((
				SELECT SUM(pr.amount)
				FROM payment_records pr
				WHERE pr.group_id = pg.id
				  AND pr.status = ?
			), 0) AS pinned
		FROM packing_groups pg
		JOIN orders o ON o.id = pg.order_id
		WHERE o.owner_id = ?
		  AND o.client_id = ?
		ORDER BY pg.created_at, pg.id
	`, h.removal.ActiveCondition("li."))

	rows, err := h.db.WithContext(ctx).
		Raw(statement, int(payment.Settled), ownerID.String(), clientID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groupRows := make([]groupBalanceRow, 0)
	for rows.Next() {
		var orderID, groupID uuid.UUID
		var due, pinned decimal.Decimal

		if err = rows.Scan(&orderID, &groupID, &due, &pinned); err != nil {
			return nil, err
		}

		row := groupBalanceRow{
			due:    kernel.NewMoney(due),
			pinned: kernel.NewMoney(pinned),
		}
		if row.orderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if row.groupID, err = kernel.UUIDFromBytes(groupID[:]); err != nil {
			return nil, err
		}
		groupRows = append(groupRows, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return groupRows, nil
}

// orderPools sums the order-scoped captures of the client's orders.
func (h GetClientBalancesQueryHandler) orderPools(
	ctx context.Context,
	ownerID kernel.UUID,
	clientID kernel.UUID,
) (map[kernel.UUID]kernel.Money, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			pr.order_id,
			COALESCE(SUM(pr.amount), 0)
		FROM payment_records pr
		JOIN orders o ON o.id = pr.order_id
		WHERE o.owner_id = ?
		  AND o.client_id = ?
		  AND pr.group_id IS NULL
		  AND pr.status = ?
		GROUP BY pr.order_id
	`, ownerID.String(), clientID.String(), int(payment.Settled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pools := make(map[kernel.UUID]kernel.Money)
	for rows.Next() {
		var orderID uuid.UUID
		var amount decimal.Decimal

		if err = rows.Scan(&orderID, &amount); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		pools[id] = kernel.NewMoney(amount)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pools, nil
}
