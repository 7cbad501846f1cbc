package ports

import "context"

// MaintenanceRepository removes join rows whose parent row no longer
// exists. Deletes cascade explicitly inside the repositories, so under
// normal operation these sweeps find nothing; they exist as a safety net
// for rows written before the cascade was introduced.
type MaintenanceRepository interface {
	// PurgeOrphanedEventCategories deletes events_categories rows whose
	// event or category is gone. Returns the number of rows removed.
	PurgeOrphanedEventCategories(ctx context.Context) (int64, error)

	// PurgeOrphanedSubscriptions deletes event_subscriptions rows whose
	// user or event is gone. Returns the number of rows removed.
	PurgeOrphanedSubscriptions(ctx context.Context) (int64, error)
}
