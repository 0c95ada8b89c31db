package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"ayoya/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderJob   *StaleOrderJob
	dailySummaryJob *DailySummaryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	listOrdersHandler queries.ListOrdersQueryHandler,
	statsHandler queries.GetOrderStatsQueryHandler,
	staleAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderJob:   NewStaleOrderJob(listOrdersHandler, staleAfter, logger),
		dailySummaryJob: NewDailySummaryJob(statsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order job: %w", err)
	}

	if err := jm.dailySummaryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.staleOrderJob.Stop()
		return fmt.Errorf("failed to start daily summary job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dailySummaryJob.Stop()
	jm.staleOrderJob.Stop()
}
