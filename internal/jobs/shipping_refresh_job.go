package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ShippingRefreshJob manages the scheduled shipping cache sweep.
// Runs every minute to reconcile the cached shipping cost of open orders
// with the current method reference data.
type ShippingRefreshJob struct {
	handler commands.RefreshShippingCachesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewShippingRefreshJob creates a new job for the shipping cache sweep.
// Uses RefreshShippingCachesCommandHandler to recompute each open order.
func NewShippingRefreshJob(
	handler commands.RefreshShippingCachesCommandHandler,
	logger *slog.Logger,
) *ShippingRefreshJob {
	return &ShippingRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "shipping_refresh_job"),
	}
}

// Start begins the shipping cache sweep to run every minute.
func (j *ShippingRefreshJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRefreshShippingCachesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Shipping refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipping refresh job started (running every minute)")
	return nil
}

// Stop stops the shipping cache sweep.
func (j *ShippingRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipping refresh job stopped")
}
