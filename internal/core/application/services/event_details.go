package services

import (
	"time"

	"ticketon/internal/core/domain/model/event"
	"ticketon/internal/core/domain/model/location"
)

// EventDetails is the read-only detail view of an event: its own fields,
// its category names and the fields of its location, flattened for
// presentation.
type EventDetails struct {
	EventID          int64
	EventName        string
	EventDate        time.Time
	EventPrice       int
	EventStatus      string
	EventDescription string

	EventCategories []string

	LocationName         string
	LocationWorkingHours string
	LocationType         string
	LocationAddress      string
	LocationDescription  string
	Capacity             int
}

// NewEventDetails assembles the detail view. Pure function: no side
// effects, inputs are assumed already fetched and valid.
func NewEventDetails(e event.Event, categories []string, loc location.Location) EventDetails {
	return EventDetails{
		EventID:          e.ID,
		EventName:        e.Title,
		EventDate:        e.Date,
		EventPrice:       e.Price,
		EventStatus:      e.Status,
		EventDescription: e.Description,

		EventCategories: categories,

		LocationName:         loc.Title,
		LocationWorkingHours: loc.WorkingHours,
		LocationType:         loc.Type,
		LocationAddress:      loc.Address,
		LocationDescription:  loc.Description,
		Capacity:             loc.Capacity,
	}
}
