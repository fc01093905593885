package request

import (
	"strings"
	"time"

	"fieldserve_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

// InvoiceLineItemRequest is one requested invoice row.
type InvoiceLineItemRequest struct {
	Name      string          `json:"name" binding:"required"`
	Type      string          `json:"type" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateInvoiceRequest drafts a standalone invoice.
type CreateInvoiceRequest struct {
	CompanyID     string                   `json:"company_id" binding:"required"`
	ClientID      *string                  `json:"client_id"`
	ProjectID     *string                  `json:"project_id"`
	OpportunityID *string                  `json:"opportunity_id"`
	TaxRate       decimal.Decimal          `json:"tax_rate"`
	DueDate       *time.Time               `json:"due_date"`
	LineItems     []InvoiceLineItemRequest `json:"line_items" binding:"required"`
}

func (r CreateInvoiceRequest) ToInput() usecase.CreateInvoiceInput {
	items := make([]usecase.InvoiceLineItemInput, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		items = append(items, usecase.InvoiceLineItemInput{
			Name:      strings.TrimSpace(li.Name),
			Type:      strings.TrimSpace(li.Type),
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
		})
	}
	return usecase.CreateInvoiceInput{
		CompanyID:     strings.TrimSpace(r.CompanyID),
		ClientID:      r.ClientID,
		ProjectID:     r.ProjectID,
		OpportunityID: r.OpportunityID,
		TaxRate:       r.TaxRate,
		DueDate:       r.DueDate,
		LineItems:     items,
	}
}

// SendInvoiceRequest carries the due date assigned when an invoice goes out.
type SendInvoiceRequest struct {
	DueDate *time.Time `json:"due_date"`
}
