package locationrepo

import (
	"context"
	"errors"

	"ticketon/internal/adapters/out/postgres/listquery"
	"ticketon/internal/core/domain/model/kernel"
	"ticketon/internal/core/domain/model/location"
	"ticketon/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var listSpec = listquery.Spec{
	Base:          "SELECT location_id, name, working_hours, type, address, description, capacity_people FROM locations",
	DefaultColumn: "name",
	Sortable: map[string]string{
		"id":       "location_id",
		"title":    "name",
		"capacity": "capacity_people",
	},
}

// GormLocationRepository implements ports.LocationRepository using GORM.
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Get retrieves a location by identifier.
func (r *GormLocationRepository) Get(ctx context.Context, id int64) (location.Location, error) {
	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "location_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return location.Location{}, errs.NewObjectNotFoundError("location", id)
		}
		return location.Location{}, errs.NewStoreFailureError("getById", err)
	}

	return toDomain(dto), nil
}

// FindAll retrieves locations sliced and ordered by the page descriptor.
func (r *GormLocationRepository) FindAll(ctx context.Context, page *kernel.Page) ([]location.Location, error) {
	query, err := listSpec.Build(page)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, errs.NewStoreFailureError("findAll", err)
	}
	defer rows.Close()

	locations := make([]location.Location, 0)
	for rows.Next() {
		var dto LocationDTO
		if err := rows.Scan(
			&dto.ID, &dto.Title, &dto.WorkingHours, &dto.Type,
			&dto.Address, &dto.Description, &dto.Capacity,
		); err != nil {
			return nil, errs.NewStoreFailureError("findAll", err)
		}
		locations = append(locations, toDomain(dto))
	}
	if err := rows.Err(); err != nil {
		return nil, errs.NewStoreFailureError("findAll", err)
	}

	return locations, nil
}

// Save upserts the location by identifier in one atomic statement.
func (r *GormLocationRepository) Save(ctx context.Context, l location.Location) error {
	dto := fromDomain(l)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "location_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error; err != nil {
		return errs.NewStoreFailureError("save", err)
	}
	return nil
}

// Delete removes the location by identifier. Deleting an absent identifier
// is a no-op success.
func (r *GormLocationRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&LocationDTO{}, "location_id = ?", id).Error; err != nil {
		return errs.NewStoreFailureError("delete", err)
	}
	return nil
}
