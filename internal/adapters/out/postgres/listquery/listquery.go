// Package listquery assembles the list queries shared by all repositories:
// a fixed base SELECT plus ORDER BY / LIMIT / OFFSET derived from a page
// descriptor. Sort fields are resolved through a per-entity allow-list, so
// caller input never reaches the SQL text unchecked.
package listquery

import (
	"fmt"

	"ticketon/internal/core/domain/model/kernel"
	"ticketon/internal/pkg/errs"
)

// Spec describes how one entity's rows are listed.
type Spec struct {
	// Base is the fixed SELECT without ordering, e.g.
	// "SELECT * FROM categories".
	Base string
	// DefaultColumn orders the result when the caller gives no sort field.
	DefaultColumn string
	// Sortable maps logical sort keys to physical column names. Keys not
	// present here are rejected.
	Sortable map[string]string
}

// Build produces the concrete SQL for the given page descriptor. A nil page
// yields the canonical unsliced query ordered by the default column
// ascending.
func (s Spec) Build(page *kernel.Page) (string, error) {
	if page == nil {
		return fmt.Sprintf("%s ORDER BY %s ASC", s.Base, s.DefaultColumn), nil
	}
	if err := page.Validate(); err != nil {
		return "", err
	}

	column := s.DefaultColumn
	if page.SortBy() != "" {
		mapped, ok := s.Sortable[page.SortBy()]
		if !ok {
			return "", errs.NewValueIsInvalidError(fmt.Sprintf("sort field %q", page.SortBy()))
		}
		column = mapped
	}

	return fmt.Sprintf("%s ORDER BY %s %s LIMIT %d OFFSET %d",
		s.Base, column, page.Direction(), page.Size(), page.Offset()), nil
}
