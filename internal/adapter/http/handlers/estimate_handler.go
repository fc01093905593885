package handlers

import (
	"context"
	"errors"
	"net/http"

	request "fieldserve_crm/internal/adapter/http/dto/request"
	response "fieldserve_crm/internal/adapter/http/dto/response"
	"fieldserve_crm/internal/domain/billing"
	"fieldserve_crm/internal/domain/entities"
	"fieldserve_crm/internal/usecase"
	"fieldserve_crm/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for the estimate lifecycle.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate drafts a new estimate with its line items.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	e, items, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(e, items))
}

// GetEstimate returns one estimate with its line items.
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	e, items, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(e, items))
}

// GetEstimateByOpportunity returns the estimate linked to an opportunity.
func (h *EstimateHandler) GetEstimateByOpportunity(c *gin.Context) {
	e, items, err := h.usecase.GetByOpportunityID(c.Request.Context(), c.Query("opportunity_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(e, items))
}

// UpdateLineItems replaces the line item set of an open estimate and
// recomputes its totals.
func (h *EstimateHandler) UpdateLineItems(c *gin.Context) {
	var payload request.UpdateLineItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	e, items, err := h.usecase.UpdateLineItems(c.Request.Context(), c.Param("id"), payload.ToInputs())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(e, items))
}

func (h *EstimateHandler) SendEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Send)
}

func (h *EstimateHandler) MarkEstimateViewed(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.MarkViewed)
}

func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Approve)
}

func (h *EstimateHandler) DeclineEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Decline)
}

func (h *EstimateHandler) ExpireEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Expire)
}

func (h *EstimateHandler) patchEstimateStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Estimate, error),
) {
	e, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(e, nil))
}

// ConvertEstimate flips an approved estimate to converted and returns the
// invoice created from it.
func (h *EstimateHandler) ConvertEstimate(c *gin.Context) {
	var payload request.ConvertEstimateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
			return
		}
	}

	e, inv, err := h.usecase.ConvertToInvoice(c.Request.Context(), c.Param("id"), payload.DueDate)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"estimate": response.FromEstimate(e, nil),
		"invoice":  response.FromInvoice(inv, nil),
	})
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidCompanyID),
		errors.Is(err, usecase.ErrInvalidOpportunityID),
		errors.Is(err, usecase.ErrInvalidLineItem),
		errors.Is(err, usecase.ErrInvalidTaxRate),
		errors.Is(err, usecase.ErrInvalidDiscount),
		errors.Is(err, usecase.ErrEstimateHasNoItems):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductInactive):
		return pkg.NewDomainErrorSimple("PRODUCT_INACTIVE", "Product is inactive", http.StatusConflict)
	case errors.Is(err, billing.ErrIllegalStatusTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_STATUS_TRANSITION", "Estimate status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
