// Package ticketrepo persists tickets with the legacy column names.
package ticketrepo

import (
	"time"

	"ticketon/internal/core/domain/model/ticket"
)

// TicketDTO is the database representation of a ticket. The unique_number
// column keeps its historical name even though the field is called
// UniqueCode.
type TicketDTO struct {
	ID           int64     `gorm:"column:ticket_id;primaryKey"`
	EventName    string    `gorm:"column:event_name;type:varchar(255)"`
	UniqueCode   string    `gorm:"column:unique_number;type:varchar(255)"`
	CreationDate time.Time `gorm:"column:creation_date"`
	Status       string    `gorm:"column:status;type:varchar(255)"`
	UserID       int64     `gorm:"column:user_id;not null"`
	EventID      int64     `gorm:"column:event_id;not null"`
}

// TableName overrides GORM's default naming to use the legacy table name.
func (TicketDTO) TableName() string {
	return "tickets"
}

func fromDomain(t ticket.Ticket) TicketDTO {
	return TicketDTO{
		ID:           t.ID,
		EventName:    t.EventName,
		UniqueCode:   t.UniqueCode,
		CreationDate: t.CreationDate,
		Status:       t.Status,
		UserID:       t.UserID,
		EventID:      t.EventID,
	}
}

func toDomain(dto TicketDTO) ticket.Ticket {
	return ticket.Ticket{
		ID:           dto.ID,
		EventName:    dto.EventName,
		UniqueCode:   dto.UniqueCode,
		CreationDate: dto.CreationDate,
		Status:       dto.Status,
		UserID:       dto.UserID,
		EventID:      dto.EventID,
	}
}
