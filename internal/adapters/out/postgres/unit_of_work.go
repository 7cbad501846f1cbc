// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work owns one database transaction and hands out
// repositories bound to it, so a multi-statement operation (an upsert's
// check-then-write, a delete with its join-row cascade) commits or rolls
// back as a whole.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.EventRepository().Delete(ctx, id); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance provides an isolated transaction; concurrent
// goroutines must use separate instances created from the factory.
package postgres

import (
	"context"

	"ticketon/internal/adapters/out/postgres/categoryrepo"
	"ticketon/internal/adapters/out/postgres/eventrepo"
	"ticketon/internal/adapters/out/postgres/locationrepo"
	"ticketon/internal/adapters/out/postgres/maintenancerepo"
	"ticketon/internal/adapters/out/postgres/ticketrepo"
	"ticketon/internal/adapters/out/postgres/userrepo"
	"ticketon/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// database connection. Each business operation gets a fresh instance with
// its own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the
// repositories it hands out.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction. Repeated calls on the same
// instance are safe and do not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or the rollback fails.
// Services call Rollback in a defer; after a Commit it is a no-op error
// that the defer discards.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn returns the transaction when one is active, the bare connection
// otherwise.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// CategoryRepository returns a CategoryRepository bound to the current
// transaction.
func (uow *GormUnitOfWork) CategoryRepository() ports.CategoryRepository {
	return categoryrepo.NewGormCategoryRepository(uow.conn())
}

// EventRepository returns an EventRepository bound to the current
// transaction.
func (uow *GormUnitOfWork) EventRepository() ports.EventRepository {
	return eventrepo.NewGormEventRepository(uow.conn())
}

// LocationRepository returns a LocationRepository bound to the current
// transaction.
func (uow *GormUnitOfWork) LocationRepository() ports.LocationRepository {
	return locationrepo.NewGormLocationRepository(uow.conn())
}

// TicketRepository returns a TicketRepository bound to the current
// transaction.
func (uow *GormUnitOfWork) TicketRepository() ports.TicketRepository {
	return ticketrepo.NewGormTicketRepository(uow.conn())
}

// UserRepository returns a UserRepository bound to the current transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

// MaintenanceRepository returns a MaintenanceRepository bound to the
// current transaction.
func (uow *GormUnitOfWork) MaintenanceRepository() ports.MaintenanceRepository {
	return maintenancerepo.NewGormMaintenanceRepository(uow.conn())
}
