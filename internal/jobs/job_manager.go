package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	catalogWarmupJob *CatalogWarmupJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(warmer CatalogWarmer, warmupSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		catalogWarmupJob: NewCatalogWarmupJob(warmer, warmupSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.catalogWarmupJob.Start(); err != nil {
		return fmt.Errorf("failed to start catalog warm-up job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.catalogWarmupJob.Stop()
}
