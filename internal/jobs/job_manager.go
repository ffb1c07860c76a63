package jobs

import (
	"fmt"
	"log/slog"

	"procurement/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingOrdersJob *PendingOrdersJob
	stalledOrdersJob *StalledOrdersJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the by-status query handler as a dependency to wire up job execution.
func NewJobManager(
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingOrdersJob: NewPendingOrdersJob(getOrdersByStatusHandler, logger),
		stalledOrdersJob: NewStalledOrdersJob(getOrdersByStatusHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending orders job: %w", err)
	}

	if err := jm.stalledOrdersJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.pendingOrdersJob.Stop()
		return fmt.Errorf("failed to start stalled orders job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalledOrdersJob.Stop()
	jm.pendingOrdersJob.Stop()
}
