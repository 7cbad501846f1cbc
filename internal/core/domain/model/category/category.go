// Package category contains the Category entity: a label attached to events
// through the events_categories join relation.
package category

import (
	"regexp"

	"ticketon/internal/pkg/errs"
)

// titlePattern accepts titles that start with a capital letter and contain
// no digits afterwards, e.g. "Art concert".
var titlePattern = regexp.MustCompile(`^[A-Z]\D+$`)

// Validation errors for Category.
var (
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
	ErrTitleIsInvalid  = errs.NewValueIsInvalidError("title must start with a capital letter and contain no digits")
)

// Category is an event label. The identifier is assigned by the caller, not
// generated by the store. Titles are unique; the repository enforces the
// uniqueness on insert.
type Category struct {
	ID    int64
	Title string
}

// New creates a validated category.
func New(id int64, title string) (Category, error) {
	c := Category{ID: id, Title: title}
	if err := c.Validate(); err != nil {
		return Category{}, err
	}
	return c, nil
}

// Validate checks the title rules. It does not check the identifier; the
// services validate identifiers at their boundary.
func (c Category) Validate() error {
	if c.Title == "" {
		return ErrTitleIsRequired
	}
	if !titlePattern.MatchString(c.Title) {
		return ErrTitleIsInvalid
	}
	return nil
}
