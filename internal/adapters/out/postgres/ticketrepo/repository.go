package ticketrepo

import (
	"context"
	"errors"

	"ticketon/internal/adapters/out/postgres/listquery"
	"ticketon/internal/core/domain/model/kernel"
	"ticketon/internal/core/domain/model/ticket"
	"ticketon/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var listSpec = listquery.Spec{
	Base:          "SELECT ticket_id, event_name, unique_number, creation_date, status, user_id, event_id FROM tickets",
	DefaultColumn: "event_name",
	Sortable: map[string]string{
		"id":           "ticket_id",
		"eventName":    "event_name",
		"creationDate": "creation_date",
		"status":       "status",
		"userId":       "user_id",
		"eventId":      "event_id",
	},
}

// GormTicketRepository implements ports.TicketRepository using GORM.
type GormTicketRepository struct {
	db *gorm.DB
}

// NewGormTicketRepository creates a new GORM ticket repository.
func NewGormTicketRepository(db *gorm.DB) *GormTicketRepository {
	return &GormTicketRepository{db: db}
}

// Get retrieves a ticket by identifier.
func (r *GormTicketRepository) Get(ctx context.Context, id int64) (ticket.Ticket, error) {
	var dto TicketDTO
	if err := r.db.WithContext(ctx).First(&dto, "ticket_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ticket.Ticket{}, errs.NewObjectNotFoundError("ticket", id)
		}
		return ticket.Ticket{}, errs.NewStoreFailureError("getById", err)
	}

	return toDomain(dto), nil
}

// FindAll retrieves tickets sliced and ordered by the page descriptor. The
// default ordering is by the denormalized event name.
func (r *GormTicketRepository) FindAll(ctx context.Context, page *kernel.Page) ([]ticket.Ticket, error) {
	query, err := listSpec.Build(page)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, errs.NewStoreFailureError("findAll", err)
	}
	defer rows.Close()

	tickets := make([]ticket.Ticket, 0)
	for rows.Next() {
		var dto TicketDTO
		if err := rows.Scan(
			&dto.ID, &dto.EventName, &dto.UniqueCode, &dto.CreationDate,
			&dto.Status, &dto.UserID, &dto.EventID,
		); err != nil {
			return nil, errs.NewStoreFailureError("findAll", err)
		}
		tickets = append(tickets, toDomain(dto))
	}
	if err := rows.Err(); err != nil {
		return nil, errs.NewStoreFailureError("findAll", err)
	}

	return tickets, nil
}

// Save upserts the ticket by identifier in one atomic statement.
func (r *GormTicketRepository) Save(ctx context.Context, t ticket.Ticket) error {
	dto := fromDomain(t)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ticket_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error; err != nil {
		return errs.NewStoreFailureError("save", err)
	}
	return nil
}

// Delete removes the ticket by identifier. Deleting an absent identifier is
// a no-op success.
func (r *GormTicketRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&TicketDTO{}, "ticket_id = ?", id).Error; err != nil {
		return errs.NewStoreFailureError("delete", err)
	}
	return nil
}
