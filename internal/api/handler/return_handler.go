package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidly/rental-system/internal/core/ports"
)

// ReturnHandler handles rental returns.
type ReturnHandler struct {
	service ports.ReturnService
}

func NewReturnHandler(service ports.ReturnService) *ReturnHandler {
	return &ReturnHandler{service: service}
}

// Create handles POST /api/returns.
//
// @Summary      Return a rented movie
// @Description  Closes the open rental for the customer/movie pair, computes the fee and restocks the movie.
// @Tags         returns
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body      returnRequest  true  "Customer and movie ids"
// @Success      200   {object}  rentalResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/returns [post]
func (h *ReturnHandler) Create(c echo.Context) error {
	var req returnRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	rental, err := h.service.ProcessReturn(c.Request().Context(), ports.ReturnInput{
		CustomerID: req.CustomerID,
		MovieID:    req.MovieID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toRentalResponse(rental))
}
