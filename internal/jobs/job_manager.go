// Package jobs provides the scheduled background tasks of the ticketing
// service, built on github.com/robfig/cron/v3 and managed through a single
// JobManager.
package jobs

import (
	"fmt"
	"log/slog"

	"ticketon/internal/core/application/services"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orphanSweepJob *OrphanSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(maintenanceService services.MaintenanceService, logger *slog.Logger) *JobManager {
	return &JobManager{
		orphanSweepJob: NewOrphanSweepJob(maintenanceService, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orphanSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start orphan sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orphanSweepJob.Stop()
}
