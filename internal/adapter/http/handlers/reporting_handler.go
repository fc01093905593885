package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"fieldserve_crm/internal/usecase"
	"fieldserve_crm/pkg"

	"github.com/gin-gonic/gin"
)

// ReportingHandler serves the AR dashboard reports.

type ReportingHandler struct {
	usecase usecase.IReportingUseCase
}

func NewReportingHandler(uc usecase.IReportingUseCase) *ReportingHandler {
	return &ReportingHandler{usecase: uc}
}

// GetAging returns outstanding balances bucketed by days overdue.
func (h *ReportingHandler) GetAging(c *gin.Context) {
	buckets, err := h.usecase.Aging(c.Request.Context(), c.Query("company_id"))
	if err != nil {
		appErr := mapReportingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, buckets)
}

// GetStatusCounts returns the live portfolio summary.
func (h *ReportingHandler) GetStatusCounts(c *gin.Context) {
	counts, err := h.usecase.StatusCounts(c.Request.Context(), c.Query("company_id"))
	if err != nil {
		appErr := mapReportingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, counts)
}

// GetTopOutstanding returns the clients owing the most, largest first.
func (h *ReportingHandler) GetTopOutstanding(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	top, err := h.usecase.TopOutstanding(c.Request.Context(), c.Query("company_id"), limit)
	if err != nil {
		appErr := mapReportingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, top)
}

func mapReportingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
