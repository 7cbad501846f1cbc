// Package location contains the Location entity: a venue where events take
// place.
package location

import "ticketon/internal/pkg/errs"

// ErrTitleIsRequired is returned when a location has no title.
var ErrTitleIsRequired = errs.NewValueIsRequiredError("title")

// Location is a venue. The identifier is assigned by the caller.
type Location struct {
	ID           int64
	Title        string
	WorkingHours string
	Type         string
	Address      string
	Description  string
	Capacity     int
}

// New creates a validated location.
func New(id int64, title, workingHours, locType, address, description string, capacity int) (Location, error) {
	l := Location{
		ID:           id,
		Title:        title,
		WorkingHours: workingHours,
		Type:         locType,
		Address:      address,
		Description:  description,
		Capacity:     capacity,
	}
	if err := l.Validate(); err != nil {
		return Location{}, err
	}
	return l, nil
}

// Validate checks the form-level rules.
func (l Location) Validate() error {
	if l.Title == "" {
		return ErrTitleIsRequired
	}
	return nil
}
