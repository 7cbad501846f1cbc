package http

import (
	"net/http"

	"ticketon/internal/core/domain/model/category"

	"github.com/labstack/echo/v4"
)

// CategoryDTO is the wire shape of a category.
type CategoryDTO struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func categoryToDTO(c category.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID, Title: c.Title}
}

// GetCategories handles GET /api/v1/categories. With a name query param it
// filters by title fragment, otherwise it pages through all categories.
func (s *Server) GetCategories(ctx echo.Context) error {
	if name := ctx.QueryParam("name"); name != "" {
		found, err := s.categories.GetByName(ctx.Request().Context(), name)
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, categoriesToDTOs(found))
	}

	page, err := parsePage(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.categories.FindAll(ctx.Request().Context(), page)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, categoriesToDTOs(found))
}

func categoriesToDTOs(found []category.Category) []CategoryDTO {
	response := make([]CategoryDTO, len(found))
	for i, c := range found {
		response[i] = categoryToDTO(c)
	}
	return response
}

// GetCategory handles GET /api/v1/categories/:id.
func (s *Server) GetCategory(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	c, err := s.categories.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, categoryToDTO(c))
}

// SaveCategory handles POST /api/v1/categories. A zero id inserts, a known
// id updates the title.
func (s *Server) SaveCategory(ctx echo.Context) error {
	var dto CategoryDTO
	if err := ctx.Bind(&dto); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	c := category.Category{ID: dto.ID, Title: dto.Title}
	if err := c.Validate(); err != nil {
		return writeError(ctx, err)
	}

	if err := s.categories.Save(ctx.Request().Context(), c); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// DeleteCategory handles DELETE /api/v1/categories/:id.
func (s *Server) DeleteCategory(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.categories.Delete(ctx.Request().Context(), id); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
