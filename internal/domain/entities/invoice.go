package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle of an invoice.
//
// Domain notes:
//   - void is terminal and sticky: once void, derivation never overrides it,
//     and void invoices are excluded from all receivable computations.
//   - past_due vs stored status: overdue-ness is always computed live from
//     balance and due date, never trusted from the stored field.

type InvoiceStatus string

const (
	InvoiceStatusDraft           InvoiceStatus = "draft"
	InvoiceStatusSent            InvoiceStatus = "sent"
	InvoiceStatusAwaitingPayment InvoiceStatus = "awaiting_payment"
	InvoiceStatusPartiallyPaid   InvoiceStatus = "partially_paid"
	InvoiceStatusPaid            InvoiceStatus = "paid"
	InvoiceStatusPastDue         InvoiceStatus = "past_due"
	InvoiceStatusVoid            InvoiceStatus = "void"
)

// NeedsPayment reports whether the invoice still expects money.
func (s InvoiceStatus) NeedsPayment() bool {
	return s == InvoiceStatusAwaitingPayment || s == InvoiceStatusPartiallyPaid || s == InvoiceStatusPastDue
}

// Invoice is a bill issued against a client, optionally linked back to the
// estimate and opportunity it came from.
//
// Monetary representation:
//   - BalanceDue = Total - AmountPaid, always >= 0 outside of a void.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id

type Invoice struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	ClientID      *string         `json:"client_id,omitempty"`
	ProjectID     *string         `json:"project_id,omitempty"`
	OpportunityID *string         `json:"opportunity_id,omitempty"`
	EstimateID    *string         `json:"estimate_id,omitempty"`
	Status        InvoiceStatus   `json:"status"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	Total         decimal.Decimal `json:"total"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	BalanceDue    decimal.Decimal `json:"balance_due"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	DueDate       *time.Time      `json:"due_date,omitempty"`
	SentAt        *time.Time      `json:"sent_at,omitempty"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsOverdue reports whether the invoice carries an unpaid balance past its
// due date. Computed live; the stored status is irrelevant except for void.
func (inv Invoice) IsOverdue(now time.Time) bool {
	if inv.Status == InvoiceStatusVoid {
		return false
	}
	if inv.DueDate == nil || !inv.BalanceDue.IsPositive() {
		return false
	}
	return inv.DueDate.Before(now)
}

// InvoiceLineItem is one priced row of an invoice. Invoices carry no
// per-item discount in this system.

type InvoiceLineItem struct {
	ID           string          `json:"id"`
	InvoiceID    string          `json:"invoice_id"`
	Name         string          `json:"name"`
	Type         LineItemType    `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	DisplayOrder int             `json:"display_order"`
}

// LineTotal returns quantity x unit price, unrounded.
func (li InvoiceLineItem) LineTotal() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}
