package ports

import (
	"context"

	"ticketon/internal/core/domain/model/event"
	"ticketon/internal/core/domain/model/kernel"
	"ticketon/internal/core/domain/model/user"
)

// UserRepository is the persistence contract for users and their event
// subscriptions.
type UserRepository interface {
	// Get retrieves a user by its identifier. Returns an
	// errs.ObjectNotFoundError when no row matches.
	Get(ctx context.Context, id int64) (user.User, error)

	// GetByLogin retrieves a user by login. Used for authentication.
	GetByLogin(ctx context.Context, login string) (user.User, error)

	// FindAll retrieves users ordered and sliced by the page descriptor.
	FindAll(ctx context.Context, page *kernel.Page) ([]user.User, error)

	// Save upserts the user by identifier.
	Save(ctx context.Context, u user.User) error

	// Delete removes the user and its event_subscriptions rows. Deleting
	// an absent identifier succeeds.
	Delete(ctx context.Context, id int64) error

	// GetEvents retrieves the events the user is subscribed to, sliced by
	// the page descriptor. A nil page means all subscriptions.
	GetEvents(ctx context.Context, userID int64, page *kernel.Page) ([]event.Event, error)

	// AssignEvent inserts an event_subscriptions row.
	AssignEvent(ctx context.Context, userID, eventID int64) error

	// RemoveEvent deletes an event_subscriptions row.
	RemoveEvent(ctx context.Context, userID, eventID int64) error
}
