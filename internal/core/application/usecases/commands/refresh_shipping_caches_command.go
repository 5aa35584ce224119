package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrRefreshShippingCachesCommandIsNotConstructed = errors.New(
	"RefreshShippingCachesCommand must be created via NewRefreshShippingCachesCommand constructor",
)

// RefreshShippingCachesCommand triggers recomputation of the shipping cache
// for every open order. Reference data changes (method prices, rule tables)
// happen outside this service, so the sweep reconciles caches that item
// mutations alone would leave stale.
type RefreshShippingCachesCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshShippingCachesCommand creates a command to sweep the shipping
// caches of all open orders. This is a parameterless batch command.
func NewRefreshShippingCachesCommand() RefreshShippingCachesCommand {
	return RefreshShippingCachesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RefreshShippingCachesCommand) Validate() error {
	return c.guard.Validate(ErrRefreshShippingCachesCommandIsNotConstructed)
}
