package jobs

import (
	"context"
	"log/slog"

	"ticketon/internal/core/application/services"

	"github.com/robfig/cron/v3"
)

// orphanSweepSchedule runs the sweep nightly at 03:00.
const orphanSweepSchedule = "0 3 * * *"

// OrphanSweepJob periodically removes join rows whose parent rows are
// gone. The repositories cascade join-row deletes themselves, so a healthy
// database yields an empty sweep.
type OrphanSweepJob struct {
	service services.MaintenanceService
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrphanSweepJob creates the nightly orphan sweep job.
func NewOrphanSweepJob(service services.MaintenanceService, logger *slog.Logger) *OrphanSweepJob {
	return &OrphanSweepJob{
		service: service,
		cron:    cron.New(),
		logger:  logger.With("component", "orphan_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *OrphanSweepJob) Start() error {
	_, err := j.cron.AddFunc(orphanSweepSchedule, func() {
		ctx := context.Background()

		eventCategories, subscriptions, err := j.service.PurgeOrphans(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Orphan sweep failed", "error", err)
			return
		}

		if eventCategories > 0 || subscriptions > 0 {
			j.logger.InfoContext(ctx, "Orphan sweep removed rows",
				"events_categories", eventCategories,
				"event_subscriptions", subscriptions)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Orphan sweep job started (running nightly)")
	return nil
}

// Stop stops the sweep job.
func (j *OrphanSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Orphan sweep job stopped")
}
