package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "onecrew_paving/internal/adapter/http/dto/request"
	response "onecrew_paving/internal/adapter/http/dto/response"
	"onecrew_paving/internal/usecase"
	"onecrew_paving/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for estimate computation and
// per-customer estimate persistence.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// ComputeEstimate prices a list of raw line items without persisting
// anything. The response is the categorized breakdown plus totals.
func (h *EstimateHandler) ComputeEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.Compute(payload.ResolveItems())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComputedEstimate(estimate))
}

// SaveEstimate persists a computed estimate under a customer and returns
// the store-assigned id.
func (h *EstimateHandler) SaveEstimate(c *gin.Context) {
	var payload request.SaveEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	if payload.ResolveCustomerID() == "" || payload.Estimate == nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "customerId and estimate are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	estimateID, err := h.usecase.Save(c.Request.Context(), payload.ResolveCustomerID(), payload.Estimate.ToEntity())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SaveEstimateResponse{Success: true, EstimateID: estimateID})
}

// GetEstimate fetches one estimate by customer and estimate id.
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	customerID := c.Param("customerId")
	estimateID := c.Param("estimateId")

	estimate, err := h.usecase.GetByID(c.Request.Context(), customerID, estimateID)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStoredEstimate(estimate))
}

// ListEstimates returns every estimate owned by the customer, each tagged
// with its id. No estimates is an empty array, not an error.
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	estimates, err := h.usecase.ListByCustomer(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStoredEstimates(estimates))
}

// UpdateEstimate applies a partial merge to a stored estimate.
func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	var payload request.UpdateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	if _, err := h.usecase.Update(c.Request.Context(), payload.CustomerID, payload.EstimateID, payload.Estimate); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

// DeleteEstimate removes one estimate. Deleting an estimate that does not
// exist still succeeds.
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	var payload request.DeleteEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), payload.CustomerID, payload.EstimateID); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoItems):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Items array is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownCategory):
		return pkg.NewDomainErrorSimple("UNKNOWN_CATEGORY", "Unknown line item category", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMargin):
		return pkg.NewDomainErrorSimple("INVALID_MARGIN", "Margin must be below 100", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrMissingEstimate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", capitalizedMessage(err), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func capitalizedMessage(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
