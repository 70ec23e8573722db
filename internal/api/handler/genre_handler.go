package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidly/rental-system/internal/core/domain"
	"github.com/vidly/rental-system/internal/core/ports"
)

type GenreHandler struct {
	service ports.GenreService
}

func NewGenreHandler(service ports.GenreService) *GenreHandler {
	return &GenreHandler{service: service}
}

// List handles GET /api/genres.
//
// @Summary  List genres
// @Tags     genres
// @Produce  json
// @Success  200  {array}  genreResponse
// @Router   /api/genres [get]
func (h *GenreHandler) List(c echo.Context) error {
	genres, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(genres, toGenreResponse))
}

// Get handles GET /api/genres/:id.
//
// @Summary  Get a genre
// @Tags     genres
// @Produce  json
// @Param    id   path      string  true  "Genre id"
// @Success  200  {object}  genreResponse
// @Failure  404  {object}  errorResponse
// @Router   /api/genres/{id} [get]
func (h *GenreHandler) Get(c echo.Context) error {
	id, err := pathID(c, domain.ErrGenreNotFound)
	if err != nil {
		return err
	}
	genre, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGenreResponse(genre))
}

// Create handles POST /api/genres.
//
// @Summary   Create a genre
// @Tags      genres
// @Accept    json
// @Produce   json
// @Security  ApiKeyAuth
// @Param     body  body      genreRequest  true  "Genre"
// @Success   201   {object}  genreResponse
// @Failure   400   {object}  errorResponse
// @Failure   401   {object}  errorResponse
// @Router    /api/genres [post]
func (h *GenreHandler) Create(c echo.Context) error {
	var req genreRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	genre, err := h.service.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toGenreResponse(genre))
}

// Update handles PUT /api/genres/:id.
//
// @Summary   Rename a genre
// @Tags      genres
// @Accept    json
// @Produce   json
// @Security  ApiKeyAuth
// @Param     id    path      string        true  "Genre id"
// @Param     body  body      genreRequest  true  "Genre"
// @Success   200   {object}  genreResponse
// @Failure   400   {object}  errorResponse
// @Failure   404   {object}  errorResponse
// @Router    /api/genres/{id} [put]
func (h *GenreHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrGenreNotFound)
	if err != nil {
		return err
	}
	var req genreRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	genre, err := h.service.Rename(c.Request().Context(), id, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGenreResponse(genre))
}

// Delete handles DELETE /api/genres/:id.
//
// @Summary   Delete a genre
// @Tags      genres
// @Produce   json
// @Security  ApiKeyAuth
// @Param     id   path      string  true  "Genre id"
// @Success   200  {object}  genreResponse
// @Failure   403  {object}  errorResponse
// @Failure   404  {object}  errorResponse
// @Router    /api/genres/{id} [delete]
func (h *GenreHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrGenreNotFound)
	if err != nil {
		return err
	}
	genre, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGenreResponse(genre))
}
