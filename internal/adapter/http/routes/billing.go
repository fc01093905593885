package routes

import (
	"fieldserve_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathInvoices  = "/invoices"
	PathPayments  = "/payments"
	PathReports   = "/reports"
)

func addBillingRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.EstimateHandler,
	invoiceHandler *handlers.InvoiceHandler,
	paymentHandler *handlers.PaymentHandler,
	reportingHandler *handlers.ReportingHandler,
) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.GetEstimateByOpportunity)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PUT("/:id/line-items", estimateHandler.UpdateLineItems)
		estimates.PATCH("/:id/send", estimateHandler.SendEstimate)
		estimates.PATCH("/:id/viewed", estimateHandler.MarkEstimateViewed)
		estimates.PATCH("/:id/approve", estimateHandler.ApproveEstimate)
		estimates.PATCH("/:id/decline", estimateHandler.DeclineEstimate)
		estimates.PATCH("/:id/expire", estimateHandler.ExpireEstimate)
		estimates.POST("/:id/convert", estimateHandler.ConvertEstimate)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PATCH("/:id/send", invoiceHandler.SendInvoice)
		invoices.PATCH("/:id/void", invoiceHandler.VoidInvoice)
		invoices.PATCH("/:id/refresh-status", invoiceHandler.RefreshInvoiceStatus)
		invoices.GET("/:id/pdf", invoiceHandler.DownloadInvoicePDF)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.RecordPayment)
		payments.GET("", paymentHandler.ListPaymentsByInvoice)
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.POST("/:id/void", paymentHandler.VoidPayment)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/aging", reportingHandler.GetAging)
		reports.GET("/status-counts", reportingHandler.GetStatusCounts)
		reports.GET("/top-outstanding", reportingHandler.GetTopOutstanding)
	}
}
