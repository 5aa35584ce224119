// Package jobs provides scheduled background tasks for the fulfillment
// service, implemented with github.com/robfig/cron/v3.
//
// The only job today is the shipping cache sweep: shipping method prices and
// rule tables are maintained outside this service, so open orders carry
// caches that item mutations alone cannot keep fresh. The sweep recomputes
// them once a minute. Expected per-order failures are logged, never fatal.
package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shippingRefreshJob *ShippingRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	refreshHandler commands.RefreshShippingCachesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shippingRefreshJob: NewShippingRefreshJob(refreshHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shippingRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipping refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shippingRefreshJob.Stop()
}
