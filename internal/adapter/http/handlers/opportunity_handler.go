package handlers

import (
	"errors"
	"net/http"

	request "fieldserve_crm/internal/adapter/http/dto/request"
	response "fieldserve_crm/internal/adapter/http/dto/response"
	"fieldserve_crm/internal/domain/entities"
	"fieldserve_crm/internal/domain/pipeline"
	"fieldserve_crm/internal/usecase"
	"fieldserve_crm/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOpportunityPayload = pkg.NewDomainErrorSimple("INVALID_OPPORTUNITY_INPUT", "Invalid opportunity payload", http.StatusBadRequest)
)

// OpportunityHandler handles HTTP requests for the sales pipeline.

type OpportunityHandler struct {
	usecase usecase.IOpportunityUseCase
}

func NewOpportunityHandler(uc usecase.IOpportunityUseCase) *OpportunityHandler {
	return &OpportunityHandler{usecase: uc}
}

// CreateOpportunity opens a new deal at the new_lead stage.
func (h *OpportunityHandler) CreateOpportunity(c *gin.Context) {
	var payload request.CreateOpportunityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOpportunityPayload.HTTPStatus, errInvalidOpportunityPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapOpportunityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOpportunity(o))
}

// GetOpportunity returns one opportunity by id.
func (h *OpportunityHandler) GetOpportunity(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOpportunityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOpportunity(o))
}

// ListOpportunities returns the pipeline of a company.
func (h *OpportunityHandler) ListOpportunities(c *gin.Context) {
	list, err := h.usecase.ListByCompanyID(c.Request.Context(), c.Query("company_id"))
	if err != nil {
		appErr := mapOpportunityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOpportunities(list))
}

// ChangeStage moves an opportunity and records the audit transition.
func (h *OpportunityHandler) ChangeStage(c *gin.Context) {
	var payload request.ChangeStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOpportunityPayload.HTTPStatus, errInvalidOpportunityPayload.ToHTTPError())
		return
	}

	o, tr, err := h.usecase.ChangeStage(c.Request.Context(), c.Param("id"), payload.Stage, payload.Actor, payload.LossReason)
	if err != nil {
		appErr := mapOpportunityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ChangeStageResponse{
		Opportunity: response.FromOpportunity(o),
		Transition:  response.FromStageTransition(tr),
	})
}

// TouchActivity refreshes the staleness clock without changing stage.
func (h *OpportunityHandler) TouchActivity(c *gin.Context) {
	o, err := h.usecase.TouchActivity(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOpportunityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOpportunity(o))
}

// ListTransitions returns the stage history of an opportunity.
func (h *OpportunityHandler) ListTransitions(c *gin.Context) {
	list, err := h.usecase.ListTransitions(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOpportunityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStageTransitions(list))
}

// GetMetrics returns the derived weighted value, days in stage and staleness.
func (h *OpportunityHandler) GetMetrics(c *gin.Context) {
	o, m, err := h.usecase.Metrics(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOpportunityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOpportunityMetrics(o, m))
}

func mapOpportunityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOpportunityID),
		errors.Is(err, usecase.ErrInvalidCompanyID),
		errors.Is(err, usecase.ErrInvalidContactName),
		errors.Is(err, usecase.ErrInvalidEstimatedValue),
		errors.Is(err, entities.ErrInvalidStage),
		errors.Is(err, pipeline.ErrInvalidActor):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, pipeline.ErrMissingLossReason):
		return pkg.NewDomainErrorSimple("LOSS_REASON_REQUIRED", "A loss reason is required to mark an opportunity lost", http.StatusBadRequest)
	case errors.Is(err, pipeline.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_STAGE_TRANSITION", "Stage transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrOpportunityNotFound):
		return pkg.NewDomainErrorSimple("OPPORTUNITY_NOT_FOUND", "Opportunity not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
