package http

import (
	"net/http"
	"time"

	"ticketon/internal/core/domain/model/ticket"

	"github.com/labstack/echo/v4"
)

// TicketDTO is the wire shape of a ticket. UniqueCode and CreationDate may
// be omitted on save; the service fills them.
type TicketDTO struct {
	ID           int64     `json:"id"`
	EventName    string    `json:"eventName"`
	UniqueCode   string    `json:"uniqueCode"`
	CreationDate time.Time `json:"creationDate"`
	Status       string    `json:"status"`
	UserID       int64     `json:"userId"`
	EventID      int64     `json:"eventId"`
}

func ticketToDTO(t ticket.Ticket) TicketDTO {
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

// GetTickets handles GET /api/v1/tickets.
func (s *Server) GetTickets(ctx echo.Context) error {
	page, err := parsePage(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.tickets.FindAll(ctx.Request().Context(), page)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]TicketDTO, len(found))
	for i, t := range found {
		response[i] = ticketToDTO(t)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTicket handles GET /api/v1/tickets/:id.
func (s *Server) GetTicket(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	t, err := s.tickets.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ticketToDTO(t))
}

// SaveTicket handles POST /api/v1/tickets.
func (s *Server) SaveTicket(ctx echo.Context) error {
	var dto TicketDTO
	if err := ctx.Bind(&dto); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	t := ticket.Ticket{
		ID:           dto.ID,
		EventName:    dto.EventName,
		UniqueCode:   dto.UniqueCode,
		CreationDate: dto.CreationDate,
		Status:       dto.Status,
		UserID:       dto.UserID,
		EventID:      dto.EventID,
	}
	if err := t.Validate(); err != nil {
		return writeError(ctx, err)
	}

	if err := s.tickets.Save(ctx.Request().Context(), t); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// DeleteTicket handles DELETE /api/v1/tickets/:id.
func (s *Server) DeleteTicket(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.tickets.Delete(ctx.Request().Context(), id); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
