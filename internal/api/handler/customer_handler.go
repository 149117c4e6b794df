package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/junhobyun/customer-admin/internal/api/metrics"
	"github.com/junhobyun/customer-admin/internal/core/domain"
	"github.com/junhobyun/customer-admin/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer record operations. All
// routes sit behind the auth and role middleware; by the time a method here
// runs, the caller is a verified admin.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// --- Request / Response types ---

type createCustomerRequest struct {
	ID   int64  `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
	Job  string `json:"job" validate:"required"`
}

type updateCustomerRequest struct {
	Name string `json:"name" validate:"required"`
	Job  string `json:"job" validate:"required"`
}

type createCustomerResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// List handles GET /customers with an optional search keyword.
//
// @Summary      List or search customer records
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Substring matched against id, name, and job"
// @Success      200     {array}   domain.Customer
// @Failure      401     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	keyword := c.QueryParam("search")

	customers, err := h.service.Search(c.Request().Context(), keyword)
	if err != nil {
		metrics.CustomerOpsTotal.WithLabelValues("search", "error").Inc()
		return err
	}
	metrics.CustomerOpsTotal.WithLabelValues("search", "ok").Inc()

	// Record data must never be cached by the browser or an intermediary.
	header := c.Response().Header()
	header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	header.Set("Pragma", "no-cache")
	header.Set("Expires", "0")

	return c.JSON(http.StatusOK, customers)
}

// Create handles POST /customers.
//
// @Summary      Create a customer record
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCustomerRequest  true  "Customer record"
// @Success      201   {object}  createCustomerResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	id, err := h.service.Create(c.Request().Context(), domain.Customer{
		ID:   req.ID,
		Name: req.Name,
		Job:  req.Job,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCustomerExists) {
			metrics.CustomerOpsTotal.WithLabelValues("create", "conflict").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "customer id already exists"})
		}
		metrics.CustomerOpsTotal.WithLabelValues("create", "error").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "failed to create customer"})
	}

	metrics.CustomerOpsTotal.WithLabelValues("create", "ok").Inc()
	return c.JSON(http.StatusCreated, createCustomerResponse{
		Message: fmt.Sprintf("customer %d created", id),
		ID:      id,
	})
}

// Update handles PUT /customers/:id. Only name and job are mutable.
//
// @Summary      Update a customer record
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Customer id"
// @Param        body  body      updateCustomerRequest  true  "New name and job"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}

	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	if err := h.service.Update(c.Request().Context(), id, req.Name, req.Job); err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			metrics.CustomerOpsTotal.WithLabelValues("update", "not_found").Inc()
			return c.JSON(http.StatusNotFound, map[string]string{"message": "customer not found"})
		}
		metrics.CustomerOpsTotal.WithLabelValues("update", "error").Inc()
		return err
	}

	metrics.CustomerOpsTotal.WithLabelValues("update", "ok").Inc()
	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("customer %d updated", id),
	})
}

// Delete handles DELETE /customers/:id.
//
// @Summary      Delete a customer record
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Customer id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			metrics.CustomerOpsTotal.WithLabelValues("delete", "not_found").Inc()
			return c.JSON(http.StatusNotFound, map[string]string{"message": "customer not found"})
		}
		metrics.CustomerOpsTotal.WithLabelValues("delete", "error").Inc()
		return err
	}

	metrics.CustomerOpsTotal.WithLabelValues("delete", "ok").Inc()
	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("customer %d deleted", id),
	})
}

func customerID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid customer id")
	}
	return id, nil
}
