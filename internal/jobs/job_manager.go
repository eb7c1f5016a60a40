// Package jobs contains the scheduled background work of the fulfillment
// service. Jobs run on cron schedules, log through slog with a component
// tag, and are started and stopped together by the JobManager.
package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockSweepJob *LowStockSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	lowStockSource LowStockSource,
	lowStockThreshold int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lowStockSweepJob: NewLowStockSweepJob(lowStockSource, lowStockThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockSweepJob.Stop()
}
