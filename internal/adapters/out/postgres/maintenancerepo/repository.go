// Package maintenancerepo removes join rows whose parent row no longer
// exists. Repositories cascade join-row deletes themselves; this sweep is a
// safety net for rows written before the cascade existed.
package maintenancerepo

import (
	"context"

	"ticketon/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMaintenanceRepository implements ports.MaintenanceRepository using GORM.
type GormMaintenanceRepository struct {
	db *gorm.DB
}

// NewGormMaintenanceRepository creates a new GORM maintenance repository.
func NewGormMaintenanceRepository(db *gorm.DB) *GormMaintenanceRepository {
	return &GormMaintenanceRepository{db: db}
}

// PurgeOrphanedEventCategories deletes events_categories rows whose event
// or category row is gone.
func (r *GormMaintenanceRepository) PurgeOrphanedEventCategories(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		DELETE FROM events_categories ec
		WHERE NOT EXISTS (SELECT 1 FROM events e WHERE e.event_id = ec.event_id)
		   OR NOT EXISTS (SELECT 1 FROM categories c WHERE c.category_id = ec.category_id)
	`)
	if result.Error != nil {
		return 0, errs.NewStoreFailureError("purgeOrphanedEventCategories", result.Error)
	}
	return result.RowsAffected, nil
}

// PurgeOrphanedSubscriptions deletes event_subscriptions rows whose user or
// event row is gone.
func (r *GormMaintenanceRepository) PurgeOrphanedSubscriptions(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		DELETE FROM event_subscriptions s
		WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.user_id = s.user_id)
		   OR NOT EXISTS (SELECT 1 FROM events e WHERE e.event_id = s.event_id)
	`)
	if result.Error != nil {
		return 0, errs.NewStoreFailureError("purgeOrphanedSubscriptions", result.Error)
	}
	return result.RowsAffected, nil
}
