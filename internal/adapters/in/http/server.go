package http

import (
	"errors"
	"net/http"
	"strconv"

	"ticketon/internal/core/application/services"
	"ticketon/internal/core/domain/model/kernel"
	"ticketon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the HTTP handlers to the domain services.
type Server struct {
	categories services.CategoryService
	events     services.EventService
	locations  services.LocationService
	tickets    services.TicketService
	users      services.UserService
}

// NewServer creates a new HTTP server with the required services.
func NewServer(
	categories services.CategoryService,
	events services.EventService,
	locations services.LocationService,
	tickets services.TicketService,
	users services.UserService,
) *Server {
	return &Server{
		categories: categories,
		events:     events,
		locations:  locations,
		tickets:    tickets,
		users:      users,
	}
}

// RegisterRoutes attaches every handler under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.GET("/categories", s.GetCategories)
	v1.GET("/categories/:id", s.GetCategory)
	v1.POST("/categories", s.SaveCategory)
	v1.DELETE("/categories/:id", s.DeleteCategory)

	v1.GET("/events", s.GetEvents)
	v1.GET("/events/:id", s.GetEvent)
	v1.GET("/events/:id/details", s.GetEventDetails)
	v1.GET("/events/:id/categories", s.GetEventCategories)
	v1.POST("/events", s.SaveEvent)
	v1.DELETE("/events/:id", s.DeleteEvent)
	v1.POST("/events/:id/categories/:categoryId", s.AssignEventCategory)
	v1.DELETE("/events/:id/categories/:categoryId", s.RemoveEventCategory)

	v1.GET("/locations", s.GetLocations)
	v1.GET("/locations/:id", s.GetLocation)
	v1.POST("/locations", s.SaveLocation)
	v1.DELETE("/locations/:id", s.DeleteLocation)

	v1.GET("/tickets", s.GetTickets)
	v1.GET("/tickets/:id", s.GetTicket)
	v1.POST("/tickets", s.SaveTicket)
	v1.DELETE("/tickets/:id", s.DeleteTicket)

	v1.GET("/users", s.GetUsers)
	v1.GET("/users/:id", s.GetUser)
	v1.GET("/users/:id/events", s.GetUserEvents)
	v1.POST("/users", s.SaveUser)
	v1.DELETE("/users/:id", s.DeleteUser)
	v1.POST("/users/:id/events/:eventId", s.SubscribeUser)
	v1.DELETE("/users/:id/events/:eventId", s.UnsubscribeUser)

	v1.POST("/auth/login", s.Login)
}

// Error is the uniform error payload of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps a service failure onto the HTTP status space.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

// pathID parses the named path parameter as a positive identifier. The
// services re-check the range; this only rejects non-numeric input early.
func pathID(ctx echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// pagination defaults when the caller omits the query params.
const (
	defaultPageNumber = 0
	defaultPageSize   = 10
)

// parsePage builds the page descriptor from the page, size, sort and dir
// query params. A missing sort yields an unsorted page; dir defaults to
// ascending.
func parsePage(ctx echo.Context) (*kernel.Page, error) {
	number := defaultPageNumber
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("page", err)
		}
		number = parsed
	}

	size := defaultPageSize
	if raw := ctx.QueryParam("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("size", err)
		}
		size = parsed
	}

	sortBy := ctx.QueryParam("sort")
	if sortBy == "" {
		page, err := kernel.NewPage(number, size)
		if err != nil {
			return nil, err
		}
		return &page, nil
	}

	direction := kernel.Asc
	if raw := ctx.QueryParam("dir"); raw != "" {
		direction = kernel.SortDirection(raw)
	}

	page, err := kernel.NewSortedPage(number, size, sortBy, direction)
	if err != nil {
		return nil, err
	}
	return &page, nil
}
