package ports

import (
	"context"

	"ticketon/internal/core/domain/model/event"
	"ticketon/internal/core/domain/model/kernel"
)

// EventRepository is the persistence contract for events and their category
// assignments.
type EventRepository interface {
	// Get retrieves an event by its identifier. Returns an
	// errs.ObjectNotFoundError when no row matches.
	Get(ctx context.Context, id int64) (event.Event, error)

	// FindAll retrieves events ordered and sliced by the page descriptor.
	// A nil page means all rows ordered by title. The result is never nil.
	FindAll(ctx context.Context, page *kernel.Page) ([]event.Event, error)

	// Save upserts the event by identifier.
	Save(ctx context.Context, e event.Event) error

	// Delete removes the event and its events_categories rows. Deleting an
	// absent identifier succeeds.
	Delete(ctx context.Context, id int64) error

	// GetCategoryNames retrieves the titles of all categories assigned to
	// the event, ordered by title.
	GetCategoryNames(ctx context.Context, eventID int64) ([]string, error)

	// AssignCategory inserts an events_categories row.
	AssignCategory(ctx context.Context, eventID, categoryID int64) error

	// RemoveCategory deletes an events_categories row.
	RemoveCategory(ctx context.Context, eventID, categoryID int64) error
}
