package commands_test

import (
	"errors"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"fulfillment/internal/core/application/usecases/commands"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubRecalculator builds a recalculator whose transactions always fail to
// begin. Handlers that trigger the best-effort recompute must swallow that
// failure; tests using this stub assert exactly that.
func stubRecalculator() *commands.ShippingRecalculator {
	uow := new(MockRecalcUoW)
	uow.On("Begin", mock.Anything).Return(errors.New("recalc unavailable")).Maybe()

	factory := new(MockRecalcUoWFactory)
	factory.On("Create").Return(uow).Maybe()

	catalog := new(MockProductCatalog)
	recalculator := commands.NewShippingRecalculator(factory, catalog, nil, discardLogger())
	return &recalculator
}
