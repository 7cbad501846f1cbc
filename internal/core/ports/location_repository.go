package ports

import (
	"context"

	"ticketon/internal/core/domain/model/kernel"
	"ticketon/internal/core/domain/model/location"
)

// LocationRepository is the persistence contract for locations.
type LocationRepository interface {
	Get(ctx context.Context, id int64) (location.Location, error)
	FindAll(ctx context.Context, page *kernel.Page) ([]location.Location, error)
	Save(ctx context.Context, l location.Location) error
	Delete(ctx context.Context, id int64) error
}
