package handlers

import (
	"errors"
	"net/http"

	request "onecrew_paving/internal/adapter/http/dto/request"
	response "onecrew_paving/internal/adapter/http/dto/response"
	"onecrew_paving/internal/usecase"
	"onecrew_paving/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)
)

// CustomerHandler handles HTTP requests for the customer collection.

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) AddCustomer(c *gin.Context) {
	var payload request.AddCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.Address)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AddCustomerResponse{Success: true, ID: customer.ID})
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

// UpdateCustomer applies a partial merge: fields absent from customerData
// keep their stored values.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	if _, err := h.usecase.Update(c.Request.Context(), payload.CustomerID, payload.CustomerData); err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

// DeleteCustomer removes the customer and every estimate it owns.
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	var payload request.DeleteCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), payload.CustomerID); err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCustomerFields):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Name and address are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrMissingCustomerData):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", capitalizedMessage(err), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
