package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidly/rental-system/internal/core/domain"
	"github.com/vidly/rental-system/internal/core/ports"
)

type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// List handles GET /api/customers.
//
// @Summary  List customers
// @Tags     customers
// @Produce  json
// @Success  200  {array}  customerResponse
// @Router   /api/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(customers, toCustomerResponse))
}

// Get handles GET /api/customers/:id.
//
// @Summary  Get a customer
// @Tags     customers
// @Produce  json
// @Param    id   path      string  true  "Customer id"
// @Success  200  {object}  customerResponse
// @Failure  404  {object}  errorResponse
// @Router   /api/customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := pathID(c, domain.ErrCustomerNotFound)
	if err != nil {
		return err
	}
	customer, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Create handles POST /api/customers.
//
// @Summary   Create a customer
// @Tags      customers
// @Accept    json
// @Produce   json
// @Security  ApiKeyAuth
// @Param     body  body      customerRequest  true  "Customer"
// @Success   201   {object}  customerResponse
// @Failure   400   {object}  errorResponse
// @Failure   401   {object}  errorResponse
// @Router    /api/customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	customer, err := h.service.Create(c.Request().Context(), toCustomerInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

// Update handles PUT /api/customers/:id.
//
// @Summary   Update a customer
// @Tags      customers
// @Accept    json
// @Produce   json
// @Security  ApiKeyAuth
// @Param     id    path      string           true  "Customer id"
// @Param     body  body      customerRequest  true  "Customer"
// @Success   200   {object}  customerResponse
// @Failure   400   {object}  errorResponse
// @Failure   404   {object}  errorResponse
// @Router    /api/customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrCustomerNotFound)
	if err != nil {
		return err
	}
	var req customerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	customer, err := h.service.Update(c.Request().Context(), id, toCustomerInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Delete handles DELETE /api/customers/:id.
//
// @Summary   Delete a customer
// @Tags      customers
// @Produce   json
// @Security  ApiKeyAuth
// @Param     id   path      string  true  "Customer id"
// @Success   200  {object}  customerResponse
// @Failure   403  {object}  errorResponse
// @Failure   404  {object}  errorResponse
// @Router    /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrCustomerNotFound)
	if err != nil {
		return err
	}
	customer, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}
