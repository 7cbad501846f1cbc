package ports

import (
	"context"

	"ticketon/internal/core/domain/model/kernel"
	"ticketon/internal/core/domain/model/ticket"
)

// TicketRepository is the persistence contract for tickets.
type TicketRepository interface {
	Get(ctx context.Context, id int64) (ticket.Ticket, error)
	// FindAll defaults to ordering by the denormalized event name.
	FindAll(ctx context.Context, page *kernel.Page) ([]ticket.Ticket, error)
	Save(ctx context.Context, t ticket.Ticket) error
	Delete(ctx context.Context, id int64) error
}
