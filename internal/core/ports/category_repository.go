// Package ports defines the persistence contracts between the domain layer
// and the infrastructure adapters. The interfaces keep the services free of
// storage details and make them testable with mocks.
package ports

import (
	"context"

	"ticketon/internal/core/domain/model/category"
	"ticketon/internal/core/domain/model/kernel"
)

// CategoryRepository is the persistence contract for categories.
type CategoryRepository interface {
	// Get retrieves a category by its identifier. Returns an
	// errs.ObjectNotFoundError when no row matches.
	Get(ctx context.Context, id int64) (category.Category, error)

	// GetByName retrieves categories whose title contains name,
	// case-insensitively.
	GetByName(ctx context.Context, name string) ([]category.Category, error)

	// FindAll retrieves categories ordered and sliced by the page
	// descriptor. A nil page means all rows ordered by title. The result
	// is never nil.
	FindAll(ctx context.Context, page *kernel.Page) ([]category.Category, error)

	// Save upserts the category by identifier. Inserting a title another
	// row already holds fails with an errs.ValueAlreadyExistsError;
	// updating a row to its own existing title does not.
	Save(ctx context.Context, c category.Category) error

	// Delete removes the category by identifier. Deleting an absent
	// identifier succeeds.
	Delete(ctx context.Context, id int64) error
}
