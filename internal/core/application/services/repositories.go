// Package services contains the domain services: one per entity plus the
// maintenance sweep. A service validates identifiers at its boundary,
// delegates persistence to repositories obtained from a unit of work, and
// surfaces every failure in the errs taxonomy. Mutations run inside a
// transaction; reads use the bare connection of an unbegun unit of work.
package services

import (
	"context"

	"ticketon/internal/core/ports"
	"ticketon/internal/pkg/errs"
)

// Unit of Work interfaces give each service exactly the repositories it
// needs. The narrow shapes keep the services mockable without touching the
// full ports.UnitOfWork.
type (
	// TxManager handles the transaction lifecycle of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CategoryRepoFactory provides the category repository of a unit of work.
	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	// EventRepoFactory provides the event repository of a unit of work.
	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	// LocationRepoFactory provides the location repository of a unit of work.
	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	// TicketRepoFactory provides the ticket repository of a unit of work.
	TicketRepoFactory interface {
		TicketRepository() ports.TicketRepository
	}

	// UserRepoFactory provides the user repository of a unit of work.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// MaintenanceRepoFactory provides the maintenance repository of a unit
	// of work.
	MaintenanceRepoFactory interface {
		MaintenanceRepository() ports.MaintenanceRepository
	}

	// CategoryUoW manages transactions for category operations.
	CategoryUoW interface {
		TxManager
		CategoryRepoFactory
	}

	// CategoryUoWFactory creates category unit of work instances.
	CategoryUoWFactory interface {
		Create() CategoryUoW
	}

	// EventUoW manages transactions for event operations. The location
	// repository is included for the detail-view composition.
	EventUoW interface {
		TxManager
		EventRepoFactory
		LocationRepoFactory
	}

	// EventUoWFactory creates event unit of work instances.
	EventUoWFactory interface {
		Create() EventUoW
	}

	// LocationUoW manages transactions for location operations.
	LocationUoW interface {
		TxManager
		LocationRepoFactory
	}

	// LocationUoWFactory creates location unit of work instances.
	LocationUoWFactory interface {
		Create() LocationUoW
	}

	// TicketUoW manages transactions for ticket operations.
	TicketUoW interface {
		TxManager
		TicketRepoFactory
	}

	// TicketUoWFactory creates ticket unit of work instances.
	TicketUoWFactory interface {
		Create() TicketUoW
	}

	// UserUoW manages transactions for user operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// MaintenanceUoW manages transactions for the orphan sweep.
	MaintenanceUoW interface {
		TxManager
		MaintenanceRepoFactory
	}

	// MaintenanceUoWFactory creates maintenance unit of work instances.
	MaintenanceUoWFactory interface {
		Create() MaintenanceUoW
	}
)

// validateID rejects non-positive identifiers before any repository call.
func validateID(id int64) error {
	if id <= 0 {
		return errs.ErrIDIsNotValid
	}
	return nil
}
