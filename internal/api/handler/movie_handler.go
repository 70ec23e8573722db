package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidly/rental-system/internal/core/domain"
	"github.com/vidly/rental-system/internal/core/ports"
)

type MovieHandler struct {
	service ports.MovieService
}

func NewMovieHandler(service ports.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

// List handles GET /api/movies.
//
// @Summary  List movies
// @Tags     movies
// @Produce  json
// @Success  200  {array}  movieResponse
// @Router   /api/movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(movies, toMovieResponse))
}

// Get handles GET /api/movies/:id.
//
// @Summary  Get a movie
// @Tags     movies
// @Produce  json
// @Param    id   path      string  true  "Movie id"
// @Success  200  {object}  movieResponse
// @Failure  404  {object}  errorResponse
// @Router   /api/movies/{id} [get]
func (h *MovieHandler) Get(c echo.Context) error {
	id, err := pathID(c, domain.ErrMovieNotFound)
	if err != nil {
		return err
	}
	movie, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMovieResponse(movie))
}

// Create handles POST /api/movies.
//
// @Summary   Create a movie
// @Tags      movies
// @Accept    json
// @Produce   json
// @Security  ApiKeyAuth
// @Param     body  body      movieRequest  true  "Movie"
// @Success   201   {object}  movieResponse
// @Failure   400   {object}  errorResponse
// @Failure   401   {object}  errorResponse
// @Router    /api/movies [post]
func (h *MovieHandler) Create(c echo.Context) error {
	var req movieRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	movie, err := h.service.Create(c.Request().Context(), toMovieInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toMovieResponse(movie))
}

// Update handles PUT /api/movies/:id.
//
// @Summary   Update a movie
// @Tags      movies
// @Accept    json
// @Produce   json
// @Security  ApiKeyAuth
// @Param     id    path      string        true  "Movie id"
// @Param     body  body      movieRequest  true  "Movie"
// @Success   200   {object}  movieResponse
// @Failure   400   {object}  errorResponse
// @Failure   404   {object}  errorResponse
// @Router    /api/movies/{id} [put]
func (h *MovieHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrMovieNotFound)
	if err != nil {
		return err
	}
	var req movieRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	movie, err := h.service.Update(c.Request().Context(), id, toMovieInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMovieResponse(movie))
}

// Delete handles DELETE /api/movies/:id.
//
// @Summary   Delete a movie
// @Tags      movies
// @Produce   json
// @Security  ApiKeyAuth
// @Param     id   path      string  true  "Movie id"
// @Success   200  {object}  movieResponse
// @Failure   403  {object}  errorResponse
// @Failure   404  {object}  errorResponse
// @Router    /api/movies/{id} [delete]
func (h *MovieHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrMovieNotFound)
	if err != nil {
		return err
	}
	movie, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMovieResponse(movie))
}
