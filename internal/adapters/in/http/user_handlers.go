package http

import (
	"errors"
	"net/http"

	"ticketon/internal/core/application/services"
	"ticketon/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// UserDTO is the wire shape of a user. Password is accepted on save and
// never echoed back.
type UserDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Password string `json:"password,omitempty"`
	Type     string `json:"type"`
}

// Credentials is the login request payload.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func userToDTO(u user.User) UserDTO {
	return UserDTO{
		ID:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
		Login:   u.Login,
		Type:    u.Type,
	}
}

// GetUsers handles GET /api/v1/users.
func (s *Server) GetUsers(ctx echo.Context) error {
	page, err := parsePage(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.users.FindAll(ctx.Request().Context(), page)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]UserDTO, len(found))
	for i, u := range found {
		response[i] = userToDTO(u)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUser handles GET /api/v1/users/:id.
func (s *Server) GetUser(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	u, err := s.users.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userToDTO(u))
}

// GetUserEvents handles GET /api/v1/users/:id/events - the events the user
// is subscribed to.
func (s *Server) GetUserEvents(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	page, err := parsePage(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.users.GetAllEventsByUserID(ctx.Request().Context(), id, page)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, eventsToDTOs(found))
}

// SaveUser handles POST /api/v1/users.
func (s *Server) SaveUser(ctx echo.Context) error {
	var dto UserDTO
	if err := ctx.Bind(&dto); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	u := user.User{
		ID:       dto.ID,
		Name:     dto.Name,
		Surname:  dto.Surname,
		Email:    dto.Email,
		Login:    dto.Login,
		Password: dto.Password,
		Type:     dto.Type,
	}
	if err := u.Validate(); err != nil {
		return writeError(ctx, err)
	}

	if err := s.users.Save(ctx.Request().Context(), u); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// DeleteUser handles DELETE /api/v1/users/:id.
func (s *Server) DeleteUser(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.users.Delete(ctx.Request().Context(), id); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubscribeUser handles POST /api/v1/users/:id/events/:eventId.
func (s *Server) SubscribeUser(ctx echo.Context) error {
	userID, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}
	eventID, err := pathID(ctx, "eventId")
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.users.AssignEvent(ctx.Request().Context(), userID, eventID); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UnsubscribeUser handles DELETE /api/v1/users/:id/events/:eventId.
func (s *Server) UnsubscribeUser(ctx echo.Context) error {
	userID, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}
	eventID, err := pathID(ctx, "eventId")
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.users.RemoveEvent(ctx.Request().Context(), userID, eventID); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Login handles POST /api/v1/auth/login. It verifies the credential pair
// and returns the matching user without its password hash.
func (s *Server) Login(ctx echo.Context) error {
	var creds Credentials
	if err := ctx.Bind(&creds); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	u, err := s.users.Authenticate(ctx.Request().Context(), creds.Login, creds.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: err.Error(),
			})
		}
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userToDTO(u))
}
