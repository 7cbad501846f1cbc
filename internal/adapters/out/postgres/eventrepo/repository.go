package eventrepo

import (
	"context"
	"errors"

	"ticketon/internal/adapters/out/postgres/listquery"
	"ticketon/internal/core/domain/model/event"
	"ticketon/internal/core/domain/model/kernel"
	"ticketon/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var listSpec = listquery.Spec{
	Base:          "SELECT event_id, name, date, price, status, description, location_id FROM events",
	DefaultColumn: "name",
	Sortable: map[string]string{
		"id":     "event_id",
		"title":  "name",
		"date":   "date",
		"price":  "price",
		"status": "status",
	},
}

// GormEventRepository implements ports.EventRepository using GORM.
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM event repository.
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Get retrieves an event by identifier.
func (r *GormEventRepository) Get(ctx context.Context, id int64) (event.Event, error) {
	var dto EventDTO
	if err := r.db.WithContext(ctx).First(&dto, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return event.Event{}, errs.NewObjectNotFoundError("event", id)
		}
		return event.Event{}, errs.NewStoreFailureError("getById", err)
	}

	return toDomain(dto), nil
}

// FindAll retrieves events sliced and ordered by the page descriptor.
func (r *GormEventRepository) FindAll(ctx context.Context, page *kernel.Page) ([]event.Event, error) {
	query, err := listSpec.Build(page)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, errs.NewStoreFailureError("findAll", err)
	}
	defer rows.Close()

	events := make([]event.Event, 0)
	for rows.Next() {
		var dto EventDTO
		if err := rows.Scan(
			&dto.ID, &dto.Title, &dto.Date, &dto.Price,
			&dto.Status, &dto.Description, &dto.LocationID,
		); err != nil {
			return nil, errs.NewStoreFailureError("findAll", err)
		}
		events = append(events, toDomain(dto))
	}
	if err := rows.Err(); err != nil {
		return nil, errs.NewStoreFailureError("findAll", err)
	}

	return events, nil
}

// Save upserts the event by identifier in one atomic statement, so two
// concurrent saves for a fresh identifier cannot both take the insert path.
func (r *GormEventRepository) Save(ctx context.Context, e event.Event) error {
	dto := fromDomain(e)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error; err != nil {
		return errs.NewStoreFailureError("save", err)
	}
	return nil
}

// Delete removes the event and its events_categories rows. Deleting an
// absent identifier is a no-op success. Callers run Delete inside a
// unit-of-work transaction so the two statements commit together.
func (r *GormEventRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&EventCategoryDTO{}, "event_id = ?", id).Error; err != nil {
		return errs.NewStoreFailureError("delete", err)
	}
	if err := r.db.WithContext(ctx).Delete(&EventDTO{}, "event_id = ?", id).Error; err != nil {
		return errs.NewStoreFailureError("delete", err)
	}
	return nil
}

// GetCategoryNames retrieves the titles of the categories assigned to the
// event, ordered by title.
func (r *GormEventRepository) GetCategoryNames(ctx context.Context, eventID int64) ([]string, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT c.name
		FROM categories c
		JOIN events_categories ec ON ec.category_id = c.category_id
		WHERE ec.event_id = ?
		ORDER BY c.name
	`, eventID).Rows()
	if err != nil {
		return nil, errs.NewStoreFailureError("getAllCategoriesByEventId", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errs.NewStoreFailureError("getAllCategoriesByEventId", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.NewStoreFailureError("getAllCategoriesByEventId", err)
	}

	return names, nil
}

// AssignCategory inserts an events_categories row.
func (r *GormEventRepository) AssignCategory(ctx context.Context, eventID, categoryID int64) error {
	dto := EventCategoryDTO{EventID: eventID, CategoryID: categoryID}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreFailureError("assignCategory", err)
	}
	return nil
}

// RemoveCategory deletes an events_categories row. Removing an absent pair
// is a no-op success.
func (r *GormEventRepository) RemoveCategory(ctx context.Context, eventID, categoryID int64) error {
	if err := r.db.WithContext(ctx).
		Delete(&EventCategoryDTO{}, "event_id = ? AND category_id = ?", eventID, categoryID).Error; err != nil {
		return errs.NewStoreFailureError("removeCategory", err)
	}
	return nil
}
