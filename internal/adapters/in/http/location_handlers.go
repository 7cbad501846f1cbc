package http

import (
	"net/http"

	"ticketon/internal/core/domain/model/location"

	"github.com/labstack/echo/v4"
)

// LocationDTO is the wire shape of a location.
type LocationDTO struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	WorkingHours string `json:"workingHours"`
	Type         string `json:"type"`
	Address      string `json:"address"`
	Description  string `json:"description"`
	Capacity     int    `json:"capacity"`
}

func locationToDTO(l location.Location) LocationDTO {
	return LocationDTO{
		ID:           l.ID,
		Title:        l.Title,
		WorkingHours: l.WorkingHours,
		Type:         l.Type,
		Address:      l.Address,
		Description:  l.Description,
		Capacity:     l.Capacity,
	}
}

// GetLocations handles GET /api/v1/locations.
func (s *Server) GetLocations(ctx echo.Context) error {
	page, err := parsePage(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.locations.FindAll(ctx.Request().Context(), page)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]LocationDTO, len(found))
	for i, l := range found {
		response[i] = locationToDTO(l)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLocation handles GET /api/v1/locations/:id.
func (s *Server) GetLocation(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	l, err := s.locations.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, locationToDTO(l))
}

// SaveLocation handles POST /api/v1/locations.
func (s *Server) SaveLocation(ctx echo.Context) error {
	var dto LocationDTO
	if err := ctx.Bind(&dto); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	l := location.Location{
		ID:           dto.ID,
		Title:        dto.Title,
		WorkingHours: dto.WorkingHours,
		Type:         dto.Type,
		Address:      dto.Address,
		Description:  dto.Description,
		Capacity:     dto.Capacity,
	}
	if err := l.Validate(); err != nil {
		return writeError(ctx, err)
	}

	if err := s.locations.Save(ctx.Request().Context(), l); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// DeleteLocation handles DELETE /api/v1/locations/:id.
func (s *Server) DeleteLocation(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.locations.Delete(ctx.Request().Context(), id); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
