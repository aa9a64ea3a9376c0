package jobs

import (
	"fmt"
	"log/slog"

	"campusfood/internal/core/domain/model/kernel"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueMonitorJob *OverdueOrderMonitorJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	overdueFinder OverdueOrderFinder,
	overdueSpec string,
	clock kernel.Clock,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueMonitorJob: NewOverdueOrderMonitorJob(overdueFinder, overdueSpec, clock, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue order monitor job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueMonitorJob.Stop()
}
