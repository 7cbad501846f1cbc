package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and hands out repositories bound to the current
// transaction. Client code must explicitly manage the transaction
// lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CategoryRepository returns a CategoryRepository bound to the current
	// transaction started by Begin().
	CategoryRepository() CategoryRepository

	// EventRepository returns an EventRepository bound to the current
	// transaction started by Begin().
	EventRepository() EventRepository

	// LocationRepository returns a LocationRepository bound to the current
	// transaction started by Begin().
	LocationRepository() LocationRepository

	// TicketRepository returns a TicketRepository bound to the current
	// transaction started by Begin().
	TicketRepository() TicketRepository

	// UserRepository returns a UserRepository bound to the current
	// transaction started by Begin().
	UserRepository() UserRepository

	// MaintenanceRepository returns a MaintenanceRepository bound to the
	// current transaction started by Begin().
	MaintenanceRepository() MaintenanceRepository
}
