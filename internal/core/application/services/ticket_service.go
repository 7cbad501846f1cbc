package services

import (
	"context"
	"time"

	"ticketon/internal/core/domain/model/kernel"
	"ticketon/internal/core/domain/model/ticket"

	"github.com/google/uuid"
)

// TicketService exposes ticket reads and writes. Save fills an empty
// unique code with a fresh UUID and an unset creation date with the
// current time.
type TicketService struct {
	uowFactory TicketUoWFactory
	now        func() time.Time
}

// NewTicketService creates a ticket service.
func NewTicketService(uowFactory TicketUoWFactory) TicketService {
	return TicketService{uowFactory: uowFactory, now: time.Now}
}

// GetByID retrieves a ticket by identifier.
func (s TicketService) GetByID(ctx context.Context, id int64) (ticket.Ticket, error) {
	if err := validateID(id); err != nil {
		return ticket.Ticket{}, err
	}

	return s.uowFactory.Create().TicketRepository().Get(ctx, id)
}

// FindAll retrieves tickets sliced and ordered by the page descriptor.
func (s TicketService) FindAll(ctx context.Context, page *kernel.Page) ([]ticket.Ticket, error) {
	return s.uowFactory.Create().TicketRepository().FindAll(ctx, page)
}

// Save upserts the ticket by identifier.
func (s TicketService) Save(ctx context.Context, t ticket.Ticket) error {
	if err := validateID(t.ID); err != nil {
		return err
	}

	if t.UniqueCode == "" {
		t.UniqueCode = uuid.NewString()
	}
	if t.CreationDate.IsZero() {
		t.CreationDate = s.now()
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TicketRepository().Save(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// Delete removes the ticket by identifier.
func (s TicketService) Delete(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TicketRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
