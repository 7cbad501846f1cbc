package services

import "context"

// MaintenanceService runs the orphaned join-row sweep. The repositories
// cascade join-row deletes themselves, so the sweep normally removes
// nothing; it exists for rows written before the cascade was introduced.
type MaintenanceService struct {
	uowFactory MaintenanceUoWFactory
}

// NewMaintenanceService creates a maintenance service.
func NewMaintenanceService(uowFactory MaintenanceUoWFactory) MaintenanceService {
	return MaintenanceService{uowFactory: uowFactory}
}

// PurgeOrphans removes join rows whose parent rows are gone and reports
// how many rows each sweep deleted. Both sweeps run in one transaction.
func (s MaintenanceService) PurgeOrphans(ctx context.Context) (eventCategories, subscriptions int64, err error) {
	uow := s.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MaintenanceRepository()

	eventCategories, err = repo.PurgeOrphanedEventCategories(ctx)
	if err != nil {
		return 0, 0, err
	}

	subscriptions, err = repo.PurgeOrphanedSubscriptions(ctx)
	if err != nil {
		return 0, 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, 0, err
	}

	return eventCategories, subscriptions, nil
}
