package handlers

import (
	"errors"
	"log"
	"net/http"

	request "fieldserve_crm/internal/adapter/http/dto/request"
	response "fieldserve_crm/internal/adapter/http/dto/response"
	"fieldserve_crm/internal/domain/billing"
	"fieldserve_crm/internal/usecase"
	"fieldserve_crm/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// PaymentHandler handles HTTP requests for the payment ledger.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// RecordPayment applies a payment to an invoice. Card payments go through
// the payment provider before the ledger record is written.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] record start invoice_id=%s method=%s", payload.InvoiceID, payload.Method)
	p, inv, err := h.usecase.Record(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[payment][handler] record failed invoice_id=%s err=%v", payload.InvoiceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] record success invoice_id=%s payment_id=%s status=%s", inv.ID, p.ID, inv.Status)

	c.JSON(http.StatusCreated, response.FromPaymentResult(p, inv))
}

// VoidPayment excludes a ledger entry and restores the invoice balance.
func (h *PaymentHandler) VoidPayment(c *gin.Context) {
	var payload request.VoidPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	p, inv, err := h.usecase.Void(c.Request.Context(), c.Param("id"), payload.VoidedBy)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentResult(p, inv))
}

// GetPayment returns one ledger entry by id.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// ListPaymentsByInvoice returns the full ledger of an invoice, voided
// entries included.
func (h *PaymentHandler) ListPaymentsByInvoice(c *gin.Context) {
	list, err := h.usecase.ListByInvoiceID(c.Request.Context(), c.Query("invoice_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(list))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidActor),
		errors.Is(err, billing.ErrInvalidPaymentAmount),
		errors.Is(err, billing.ErrPaymentInvoiceMismatch):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, billing.ErrOverpaymentNotAllowed):
		return pkg.NewDomainErrorSimple("OVERPAYMENT_NOT_ALLOWED", "Payment exceeds the invoice balance", http.StatusConflict)
	case errors.Is(err, billing.ErrInvoiceVoid):
		return pkg.NewDomainErrorSimple("INVOICE_VOID", "Invoice is void", http.StatusConflict)
	case errors.Is(err, billing.ErrPaymentAlreadyVoided):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_VOIDED", "Payment already voided", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_DECLINED", "Payment provider declined the charge", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
