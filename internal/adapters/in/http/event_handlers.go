package http

import (
	"net/http"
	"time"

	"ticketon/internal/core/application/services"
	"ticketon/internal/core/domain/model/event"

	"github.com/labstack/echo/v4"
)

// EventDTO is the wire shape of an event.
type EventDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Price       int       `json:"price"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	LocationID  int64     `json:"locationId"`
}

// EventDetailsDTO is the wire shape of the detail view.
type EventDetailsDTO struct {
	EventID          int64     `json:"eventId"`
	EventName        string    `json:"eventName"`
	EventDate        time.Time `json:"eventDate"`
	EventPrice       int       `json:"eventPrice"`
	EventStatus      string    `json:"eventStatus"`
	EventDescription string    `json:"eventDescription"`

	EventCategories []string `json:"eventCategories"`

	LocationName         string `json:"locationName"`
	LocationWorkingHours string `json:"locationWorkingHours"`
	LocationType         string `json:"locationType"`
	LocationAddress      string `json:"locationAddress"`
	LocationDescription  string `json:"locationDescription"`
	Capacity             int    `json:"capacity"`
}

func eventToDTO(e event.Event) EventDTO {
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

func eventsToDTOs(found []event.Event) []EventDTO {
	response := make([]EventDTO, len(found))
	for i, e := range found {
		response[i] = eventToDTO(e)
	}
	return response
}

// GetEvents handles GET /api/v1/events.
func (s *Server) GetEvents(ctx echo.Context) error {
	page, err := parsePage(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.events.FindAll(ctx.Request().Context(), page)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, eventsToDTOs(found))
}

// GetEvent handles GET /api/v1/events/:id.
func (s *Server) GetEvent(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	e, err := s.events.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, eventToDTO(e))
}

// GetEventDetails handles GET /api/v1/events/:id/details - the composed
// view of the event, its categories and its location.
func (s *Server) GetEventDetails(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	details, err := s.events.GetEventWithDetails(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, eventDetailsToDTO(details))
}

func eventDetailsToDTO(d services.EventDetails) EventDetailsDTO {
	return EventDetailsDTO{
		EventID:          d.EventID,
		EventName:        d.EventName,
		EventDate:        d.EventDate,
		EventPrice:       d.EventPrice,
		EventStatus:      d.EventStatus,
		EventDescription: d.EventDescription,

		EventCategories: d.EventCategories,

		LocationName:         d.LocationName,
		LocationWorkingHours: d.LocationWorkingHours,
		LocationType:         d.LocationType,
		LocationAddress:      d.LocationAddress,
		LocationDescription:  d.LocationDescription,
		Capacity:             d.Capacity,
	}
}

// GetEventCategories handles GET /api/v1/events/:id/categories - the
// titles of the categories assigned to the event.
func (s *Server) GetEventCategories(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	names, err := s.events.GetAllCategoriesByEventID(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, names)
}

// SaveEvent handles POST /api/v1/events.
func (s *Server) SaveEvent(ctx echo.Context) error {
	var dto EventDTO
	if err := ctx.Bind(&dto); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	e := event.Event{
		ID:          dto.ID,
		Title:       dto.Title,
		Date:        dto.Date,
		Price:       dto.Price,
		Status:      dto.Status,
		Description: dto.Description,
		LocationID:  dto.LocationID,
	}
	if err := e.Validate(); err != nil {
		return writeError(ctx, err)
	}

	if err := s.events.Save(ctx.Request().Context(), e); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// DeleteEvent handles DELETE /api/v1/events/:id.
func (s *Server) DeleteEvent(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.events.Delete(ctx.Request().Context(), id); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignEventCategory handles POST /api/v1/events/:id/categories/:categoryId.
func (s *Server) AssignEventCategory(ctx echo.Context) error {
	eventID, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}
	categoryID, err := pathID(ctx, "categoryId")
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.events.AddCategory(ctx.Request().Context(), eventID, categoryID); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveEventCategory handles DELETE /api/v1/events/:id/categories/:categoryId.
func (s *Server) RemoveEventCategory(ctx echo.Context) error {
	eventID, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}
	categoryID, err := pathID(ctx, "categoryId")
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.events.RemoveCategory(ctx.Request().Context(), eventID, categoryID); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
