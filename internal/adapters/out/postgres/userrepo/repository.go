package userrepo

import (
	"context"
	"errors"

	"ticketon/internal/adapters/out/postgres/listquery"
	"ticketon/internal/core/domain/model/event"
	"ticketon/internal/core/domain/model/kernel"
	"ticketon/internal/core/domain/model/user"
	"ticketon/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var listSpec = listquery.Spec{
	Base:          "SELECT user_id, name, surname, email, login, password, type FROM users",
	DefaultColumn: "name",
	Sortable: map[string]string{
		"id":      "user_id",
		"name":    "name",
		"surname": "surname",
		"login":   "login",
	},
}

// subscribedEventsSpec lists the events a user is subscribed to. The WHERE
// clause keeps its placeholder; Build only appends ordering and slicing.
var subscribedEventsSpec = listquery.Spec{
	Base: "SELECT e.event_id, e.name, e.date, e.price, e.status, e.description, e.location_id " +
		"FROM events e JOIN event_subscriptions s ON s.event_id = e.event_id WHERE s.user_id = ?",
	DefaultColumn: "e.name",
	Sortable: map[string]string{
		"title": "e.name",
		"date":  "e.date",
	},
}

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Get retrieves a user by identifier.
func (r *GormUserRepository) Get(ctx context.Context, id int64) (user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, errs.NewObjectNotFoundError("user", id)
		}
		return user.User{}, errs.NewStoreFailureError("getById", err)
	}

	return toDomain(dto), nil
}

// GetByLogin retrieves a user by login.
func (r *GormUserRepository) GetByLogin(ctx context.Context, login string) (user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "login = ?", login).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, errs.NewObjectNotFoundError("login", login)
		}
		return user.User{}, errs.NewStoreFailureError("getByLogin", err)
	}

	return toDomain(dto), nil
}

// FindAll retrieves users sliced and ordered by the page descriptor.
func (r *GormUserRepository) FindAll(ctx context.Context, page *kernel.Page) ([]user.User, error) {
	query, err := listSpec.Build(page)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, errs.NewStoreFailureError("findAll", err)
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		var dto UserDTO
		if err := rows.Scan(
			&dto.ID, &dto.Name, &dto.Surname, &dto.Email,
			&dto.Login, &dto.Password, &dto.Type,
		); err != nil {
			return nil, errs.NewStoreFailureError("findAll", err)
		}
		users = append(users, toDomain(dto))
	}
	if err := rows.Err(); err != nil {
		return nil, errs.NewStoreFailureError("findAll", err)
	}

	return users, nil
}

// Save upserts the user by identifier in one atomic statement. An empty
// Password means "keep the stored hash": the conflict update then assigns
// every column except password.
func (r *GormUserRepository) Save(ctx context.Context, u user.User) error {
	dto := fromDomain(u)
	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}
	if u.Password == "" {
		onConflict = clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "surname", "email", "login", "type"}),
		}
	}
	if err := r.db.WithContext(ctx).
		Clauses(onConflict).
		Create(&dto).Error; err != nil {
		return errs.NewStoreFailureError("save", err)
	}
	return nil
}

// Delete removes the user and its event_subscriptions rows. Deleting an
// absent identifier is a no-op success. Callers run Delete inside a
// unit-of-work transaction so the two statements commit together.
func (r *GormUserRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&SubscriptionDTO{}, "user_id = ?", id).Error; err != nil {
		return errs.NewStoreFailureError("delete", err)
	}
	if err := r.db.WithContext(ctx).Delete(&UserDTO{}, "user_id = ?", id).Error; err != nil {
		return errs.NewStoreFailureError("delete", err)
	}
	return nil
}

// GetEvents retrieves the events the user is subscribed to, sliced by the
// page descriptor.
func (r *GormUserRepository) GetEvents(ctx context.Context, userID int64, page *kernel.Page) ([]event.Event, error) {
	query, err := subscribedEventsSpec.Build(page)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.WithContext(ctx).Raw(query, userID).Rows()
	if err != nil {
		return nil, errs.NewStoreFailureError("getAllEventsByUserId", err)
	}
	defer rows.Close()

	events := make([]event.Event, 0)
	for rows.Next() {
		var e event.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Date, &e.Price,
			&e.Status, &e.Description, &e.LocationID,
		); err != nil {
			return nil, errs.NewStoreFailureError("getAllEventsByUserId", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.NewStoreFailureError("getAllEventsByUserId", err)
	}

	return events, nil
}

// AssignEvent inserts an event_subscriptions row.
func (r *GormUserRepository) AssignEvent(ctx context.Context, userID, eventID int64) error {
	dto := SubscriptionDTO{UserID: userID, EventID: eventID}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreFailureError("assignEvent", err)
	}
	return nil
}

// RemoveEvent deletes an event_subscriptions row. Removing an absent pair
// is a no-op success.
func (r *GormUserRepository) RemoveEvent(ctx context.Context, userID, eventID int64) error {
	if err := r.db.WithContext(ctx).
		Delete(&SubscriptionDTO{}, "user_id = ? AND event_id = ?", userID, eventID).Error; err != nil {
		return errs.NewStoreFailureError("removeEvent", err)
	}
	return nil
}
