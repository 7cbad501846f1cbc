// Package ticket contains the Ticket entity: one admission to an event,
// held by a user.
package ticket

import (
	"time"

	"ticketon/internal/pkg/errs"
)

// Validation errors for Ticket.
var (
	ErrEventIsRequired = errs.NewValueIsRequiredError("eventId")
	ErrUserIsRequired  = errs.NewValueIsRequiredError("userId")
)

// Ticket is one sold admission. EventName is a denormalized copy of the
// event title taken at purchase time, not a live foreign key. UniqueCode
// is filled by the ticket service when the caller leaves it empty.
type Ticket struct {
	ID           int64
	EventName    string
	UniqueCode   string
	CreationDate time.Time
	Status       string
	UserID       int64
	EventID      int64
}

// New creates a validated ticket.
func New(id int64, eventName, uniqueCode string, creationDate time.Time, status string, userID, eventID int64) (Ticket, error) {
	t := Ticket{
		ID:           id,
		EventName:    eventName,
		UniqueCode:   uniqueCode,
		CreationDate: creationDate,
		Status:       status,
		UserID:       userID,
		EventID:      eventID,
	}
	if err := t.Validate(); err != nil {
		return Ticket{}, err
	}
	return t, nil
}

// Validate checks that the ticket references an event and a user.
func (t Ticket) Validate() error {
	if t.EventID <= 0 {
		return ErrEventIsRequired
	}
	if t.UserID <= 0 {
		return ErrUserIsRequired
	}
	return nil
}
