// Package eventrepo persists events and their category assignments. The
// DTOs carry the exact legacy column names so the repository stays
// compatible with the existing schema.
package eventrepo

import (
	"time"

	"ticketon/internal/core/domain/model/event"
)

// EventDTO is the database representation of an event.
type EventDTO struct {
	ID          int64     `gorm:"column:event_id;primaryKey"`
	Title       string    `gorm:"column:name;type:varchar(255);not null"`
	Date        time.Time `gorm:"column:date"`
	Price       int       `gorm:"column:price"`
	Status      string    `gorm:"column:status;type:varchar(255)"`
	Description string    `gorm:"column:description"`
	LocationID  int64     `gorm:"column:location_id;not null"`
}

// TableName overrides GORM's default naming to use the legacy table name.
func (EventDTO) TableName() string {
	return "events"
}

// EventCategoryDTO is one events_categories join row. The pair of foreign
// keys is the whole identity.
type EventCategoryDTO struct {
	EventID    int64 `gorm:"column:event_id;primaryKey"`
	CategoryID int64 `gorm:"column:category_id;primaryKey"`
}

// TableName overrides GORM's default naming to use the legacy table name.
func (EventCategoryDTO) TableName() string {
	return "events_categories"
}

func fromDomain(e event.Event) EventDTO {
	return EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Price:       e.Price,
		Status:      e.Status,
		Description: e.Description,
		LocationID:  e.LocationID,
	}
}

func toDomain(dto EventDTO) event.Event {
	return event.Event{
		ID:          dto.ID,
		Title:       dto.Title,
		Date:        dto.Date,
		Price:       dto.Price,
		Status:      dto.Status,
		Description: dto.Description,
		LocationID:  dto.LocationID,
	}
}
