// Package event contains the Event entity. Events reference a Location by
// identifier and carry categories through the events_categories join
// relation.
package event

import (
	"time"

	"ticketon/internal/pkg/errs"
)

// Validation errors for Event.
var (
	ErrTitleIsRequired    = errs.NewValueIsRequiredError("title")
	ErrLocationIsRequired = errs.NewValueIsRequiredError("locationId")
)

// Event is a scheduled happening sold through tickets. The identifier is
// assigned by the caller. LocationID must reference an existing Location
// for the detail view to assemble.
type Event struct {
	ID          int64
	Title       string
	Date        time.Time
	Price       int
	Status      string
	Description string
	LocationID  int64
}

// New creates a validated event.
func New(id int64, title string, date time.Time, price int, status, description string, locationID int64) (Event, error) {
	e := Event{
		ID:          id,
		Title:       title,
		Date:        date,
		Price:       price,
		Status:      status,
		Description: description,
		LocationID:  locationID,
	}
	if err := e.Validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}

// Validate checks the form-level rules: a title and a location reference.
func (e Event) Validate() error {
	if e.Title == "" {
		return ErrTitleIsRequired
	}
	if e.LocationID <= 0 {
		return ErrLocationIsRequired
	}
	return nil
}
