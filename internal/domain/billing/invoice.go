package billing

import (
	"time"

	"fieldserve_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// InvoiceTotals is the derived money breakdown of an invoice.
type InvoiceTotals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// RecomputeInvoiceTotals mirrors the estimate rule without a discount:
// subtotal sums the line totals, tax applies to the whole subtotal, and only
// the final total is rounded.
func RecomputeInvoiceTotals(inv entities.Invoice, items []entities.InvoiceLineItem) InvoiceTotals {
	subtotal := decimal.Zero
	for _, li := range items {
		subtotal = subtotal.Add(li.LineTotal())
	}
	taxAmount := subtotal.Mul(inv.TaxRate)
	total := subtotal.Add(taxAmount).Round(2)
	return InvoiceTotals{Subtotal: subtotal, TaxAmount: taxAmount, Total: total}
}

// ApplyInvoiceTotals recomputes and stamps the totals onto a copy of the
// invoice, keeping BalanceDue = Total - AmountPaid consistent.
func ApplyInvoiceTotals(inv entities.Invoice, items []entities.InvoiceLineItem, now time.Time) entities.Invoice {
	t := RecomputeInvoiceTotals(inv, items)
	updated := inv
	updated.Subtotal = t.Subtotal
	updated.TaxAmount = t.TaxAmount
	updated.Total = t.Total
	updated.BalanceDue = t.Total.Sub(updated.AmountPaid)
	updated.UpdatedAt = now
	return updated
}

// DeriveInvoiceStatus recomputes the invoice status from balance, due date
// and timestamps. void is sticky. Idempotent; must be re-run after every
// payment application or void.
func DeriveInvoiceStatus(inv entities.Invoice, now time.Time) entities.InvoiceStatus {
	switch {
	case inv.Status == entities.InvoiceStatusVoid:
		return entities.InvoiceStatusVoid
	case inv.BalanceDue.IsZero():
		return entities.InvoiceStatusPaid
	case inv.DueDate != nil && inv.DueDate.Before(now):
		return entities.InvoiceStatusPastDue
	case inv.AmountPaid.IsPositive():
		return entities.InvoiceStatusPartiallyPaid
	case inv.SentAt != nil && inv.DueDate != nil:
		return entities.InvoiceStatusAwaitingPayment
	case inv.SentAt != nil:
		return entities.InvoiceStatusSent
	default:
		return entities.InvoiceStatusDraft
	}
}

// SendInvoice stamps the sent timestamp and due date and re-derives status.
func SendInvoice(inv entities.Invoice, dueDate *time.Time, now time.Time) (entities.Invoice, error) {
	if inv.Status == entities.InvoiceStatusVoid {
		return inv, ErrInvoiceVoid
	}
	updated := inv
	ts := now
	updated.SentAt = &ts
	if dueDate != nil {
		d := *dueDate
		updated.DueDate = &d
	}
	updated.Status = DeriveInvoiceStatus(updated, now)
	updated.UpdatedAt = now
	return updated, nil
}

// VoidInvoice marks the invoice void. Terminal; the invoice drops out of all
// receivable computations from here on.
func VoidInvoice(inv entities.Invoice, now time.Time) (entities.Invoice, error) {
	if inv.Status == entities.InvoiceStatusVoid {
		return inv, ErrInvoiceVoid
	}
	updated := inv
	updated.Status = entities.InvoiceStatusVoid
	updated.UpdatedAt = now
	return updated, nil
}
