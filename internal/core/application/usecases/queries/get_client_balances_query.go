package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetClientBalancesQueryIsNotConstructed = errors.New(
	"GetClientBalancesQuery must be created via NewGetClientBalancesQuery constructor",
)

// GetClientBalancesQuery builds the per-group balance view for one client.
// Order-scoped payments form a pool spread oldest-group-first across the
// client's packing groups; group-scoped payments stay pinned to their group.
// The view is display-only and never feeds back into persisted statuses.
type GetClientBalancesQuery struct {
	ownerID  kernel.UUID
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClientBalancesQuery creates a query for a client's balance view.
func NewGetClientBalancesQuery(ownerID, clientID kernel.UUID) (GetClientBalancesQuery, error) {
	query := GetClientBalancesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOwnerID(ownerID),
		query.setClientID(clientID),
	); err != nil {
		return GetClientBalancesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientBalancesQuery) Validate() error {
	return q.guard.Validate(ErrGetClientBalancesQueryIsNotConstructed)
}

// OwnerID returns the tenant scoping the view.
func (q GetClientBalancesQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// ClientID returns the client whose balances are requested.
func (q GetClientBalancesQuery) ClientID() kernel.UUID {
	return q.clientID
}

func (q *GetClientBalancesQuery) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}
	q.ownerID = ownerID
	return nil
}

func (q *GetClientBalancesQuery) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client id", err)
	}
	q.clientID = clientID
	return nil
}

// GetClientBalancesQueryResponse is one packing group's balance line.
type GetClientBalancesQueryResponse struct {
	OrderID    kernel.UUID
	GroupID    kernel.UUID
	Due        kernel.Money
	Captured   kernel.Money
	Balance    kernel.Money
	PaidStatus payment.PaidStatus
}
