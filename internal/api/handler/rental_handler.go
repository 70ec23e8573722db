package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidly/rental-system/internal/core/ports"
)

// RentalHandler handles checkout and the rental listing.
type RentalHandler struct {
	service ports.RentalService
}

func NewRentalHandler(service ports.RentalService) *RentalHandler {
	return &RentalHandler{service: service}
}

// List handles GET /api/rentals.
//
// @Summary      List rentals, most recent first
// @Tags         rentals
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {array}   rentalResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/rentals [get]
func (h *RentalHandler) List(c echo.Context) error {
	rentals, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(rentals, toRentalResponse))
}

// Create handles POST /api/rentals.
//
// @Summary      Check out a movie
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body      rentalRequest  true  "Customer and movie ids"
// @Success      201   {object}  rentalResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/rentals [post]
func (h *RentalHandler) Create(c echo.Context) error {
	var req rentalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	rental, err := h.service.Checkout(c.Request().Context(), ports.CheckoutInput{
		CustomerID: req.CustomerID,
		MovieID:    req.MovieID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toRentalResponse(rental))
}
