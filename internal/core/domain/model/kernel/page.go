package kernel

import (
	"ticketon/internal/pkg/errs"
	"ticketon/internal/pkg/guard"
)

// SortDirection is the ordering direction of a sorted page.
type SortDirection string

// Supported sort directions. The values are the SQL keywords so a validated
// direction can be placed into an ORDER BY clause as is.
const (
	Asc  SortDirection = "ASC"
	Desc SortDirection = "DESC"
)

// ErrPageIsNotConstructed is returned when a Page was not created via
// NewPage or NewSortedPage.
var ErrPageIsNotConstructed = errs.NewValueIsInvalidError("Page must be created via NewPage or NewSortedPage")

// Validate reports whether the direction is one of the supported values.
func (d SortDirection) Validate() error {
	switch d {
	case Asc, Desc:
		return nil
	default:
		return errs.NewValueIsInvalidError("sort direction")
	}
}

// Page describes one slice of an ordered result set: a 0-based page number,
// a positive page size and an optional sort field with direction. A nil
// *Page passed to a repository means "all rows, default ordering".
//
// Page is a value object: it is immutable after construction and a
// zero-value Page fails Validate.
type Page struct {
	number    int
	size      int
	sortBy    string
	direction SortDirection

	guard guard.ConstructorGuard
}

// NewPage creates a page descriptor without an explicit sort field.
// Repositories fall back to the entity's default sort column.
// The page number is 0-based and must not be negative; the size must be
// positive.
func NewPage(number, size int) (Page, error) {
	if number < 0 {
		return Page{}, errs.NewValueIsInvalidError("page number")
	}
	if size <= 0 {
		return Page{}, errs.NewValueIsInvalidError("page size")
	}

	return Page{
		number:    number,
		size:      size,
		direction: Asc,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewSortedPage creates a page descriptor with an explicit sort field and
// direction. The sort field is a logical column name; repositories check it
// against their per-entity allow-list before building a query.
func NewSortedPage(number, size int, sortBy string, direction SortDirection) (Page, error) {
	page, err := NewPage(number, size)
	if err != nil {
		return Page{}, err
	}
	if sortBy == "" {
		return Page{}, errs.NewValueIsRequiredError("sortBy")
	}
	if err := direction.Validate(); err != nil {
		return Page{}, err
	}

	page.sortBy = sortBy
	page.direction = direction
	return page, nil
}

// Validate ensures the page was created through one of the constructors.
func (p Page) Validate() error {
	return p.guard.Validate(ErrPageIsNotConstructed)
}

// Number returns the 0-based page number.
func (p Page) Number() int {
	return p.number
}

// Size returns the page size.
func (p Page) Size() int {
	return p.size
}

// SortBy returns the requested sort field, or "" when the caller left the
// ordering to the entity default.
func (p Page) SortBy() string {
	return p.sortBy
}

// Direction returns the sort direction.
func (p Page) Direction() SortDirection {
	return p.direction
}

// Offset returns the number of rows to skip: page number times page size.
func (p Page) Offset() int {
	return p.number * p.size
}
