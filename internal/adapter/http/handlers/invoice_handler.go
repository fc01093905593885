package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "fieldserve_crm/internal/adapter/http/dto/request"
	response "fieldserve_crm/internal/adapter/http/dto/response"
	"fieldserve_crm/internal/adapter/pdf"
	"fieldserve_crm/internal/domain/billing"
	"fieldserve_crm/internal/usecase"
	"fieldserve_crm/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
)

// InvoiceHandler handles HTTP requests for the invoice lifecycle.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// CreateInvoice drafts a standalone invoice.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv, items, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(inv, items))
}

// GetInvoice returns one invoice with its line items.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, items, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv, items))
}

// ListInvoices returns the invoices of a company.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	list, err := h.usecase.ListByCompanyID(c.Request.Context(), c.Query("company_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(list))
}

// SendInvoice stamps sent_at and the due date, and re-derives the status.
func (h *InvoiceHandler) SendInvoice(c *gin.Context) {
	var payload request.SendInvoiceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
			return
		}
	}

	inv, err := h.usecase.Send(c.Request.Context(), c.Param("id"), payload.DueDate)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv, nil))
}

// VoidInvoice excludes an invoice from receivables permanently.
func (h *InvoiceHandler) VoidInvoice(c *gin.Context) {
	inv, err := h.usecase.Void(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv, nil))
}

// RefreshInvoiceStatus re-derives the stored status from balance and due date.
func (h *InvoiceHandler) RefreshInvoiceStatus(c *gin.Context) {
	inv, err := h.usecase.RefreshStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv, nil))
}

// DownloadInvoicePDF renders the invoice as a PDF document.
func (h *InvoiceHandler) DownloadInvoicePDF(c *gin.Context) {
	inv, items, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	doc, err := pdf.RenderInvoice(inv, items)
	if err != nil {
		log.Printf("[invoice][handler] pdf render failed invoice_id=%s err=%v", inv.ID, err)
		appErr := pkg.NewDomainError("PDF_RENDER_FAILED", "Could not render invoice PDF", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", inv.ID))
	c.Data(http.StatusOK, "application/pdf", doc)
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidCompanyID),
		errors.Is(err, usecase.ErrInvalidLineItem),
		errors.Is(err, usecase.ErrInvalidTaxRate),
		errors.Is(err, usecase.ErrInvoiceHasNoItems):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, billing.ErrInvoiceVoid):
		return pkg.NewDomainErrorSimple("INVOICE_VOID", "Invoice is void", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
