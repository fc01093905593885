package response

import (
	"time"

	"fieldserve_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type InvoiceLineItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	DisplayOrder int             `json:"display_order"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

type InvoiceResponse struct {
	ID            string                    `json:"id"`
	CompanyID     string                    `json:"company_id"`
	ClientID      *string                   `json:"client_id,omitempty"`
	ProjectID     *string                   `json:"project_id,omitempty"`
	OpportunityID *string                   `json:"opportunity_id,omitempty"`
	EstimateID    *string                   `json:"estimate_id,omitempty"`
	Status        string                    `json:"status"`
	Subtotal      decimal.Decimal           `json:"subtotal"`
	TaxAmount     decimal.Decimal           `json:"tax_amount"`
	Total         decimal.Decimal           `json:"total"`
	AmountPaid    decimal.Decimal           `json:"amount_paid"`
	BalanceDue    decimal.Decimal           `json:"balance_due"`
	TaxRate       decimal.Decimal           `json:"tax_rate"`
	DueDate       *time.Time                `json:"due_date,omitempty"`
	SentAt        *time.Time                `json:"sent_at,omitempty"`
	PaidAt        *time.Time                `json:"paid_at,omitempty"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
	LineItems     []InvoiceLineItemResponse `json:"line_items,omitempty"`
}

func FromInvoice(inv entities.Invoice, items []entities.InvoiceLineItem) InvoiceResponse {
	rows := make([]InvoiceLineItemResponse, 0, len(items))
	for _, li := range items {
		rows = append(rows, InvoiceLineItemResponse{
			ID:           li.ID,
			Name:         li.Name,
			Type:         string(li.Type),
			Quantity:     li.Quantity,
			UnitPrice:    li.UnitPrice,
			DisplayOrder: li.DisplayOrder,
			LineTotal:    li.LineTotal(),
		})
	}
	return InvoiceResponse{
		ID:            inv.ID,
		CompanyID:     inv.CompanyID,
		ClientID:      inv.ClientID,
		ProjectID:     inv.ProjectID,
		OpportunityID: inv.OpportunityID,
		EstimateID:    inv.EstimateID,
		Status:        string(inv.Status),
		Subtotal:      inv.Subtotal,
		TaxAmount:     inv.TaxAmount,
		Total:         inv.Total,
		AmountPaid:    inv.AmountPaid,
		BalanceDue:    inv.BalanceDue,
		TaxRate:       inv.TaxRate,
		DueDate:       inv.DueDate,
		SentAt:        inv.SentAt,
		PaidAt:        inv.PaidAt,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
		LineItems:     rows,
	}
}

func FromInvoices(list []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, FromInvoice(inv, nil))
	}
	return out
}
