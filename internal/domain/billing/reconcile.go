package billing

import (
	"time"

	"fieldserve_crm/internal/domain/entities"
)

// ApplyPayment applies a payment against the invoice balance.
//
// Strict: partial and exact payments only. An amount above the balance due
// signals a data error upstream and is rejected, never clamped. On success
// the returned invoice carries the new AmountPaid/BalanceDue and a freshly
// derived status; on failure the input is untouched.
func ApplyPayment(inv entities.Invoice, p entities.Payment, now time.Time) (entities.Invoice, error) {
	if inv.Status == entities.InvoiceStatusVoid {
		return inv, ErrInvoiceVoid
	}
	if p.InvoiceID != inv.ID {
		return inv, ErrPaymentInvoiceMismatch
	}
	if p.IsVoided() {
		return inv, ErrPaymentAlreadyVoided
	}
	if !p.Amount.IsPositive() {
		return inv, ErrInvalidPaymentAmount
	}
	if p.Amount.GreaterThan(inv.BalanceDue) {
		return inv, ErrOverpaymentNotAllowed
	}

	updated := inv
	updated.AmountPaid = inv.AmountPaid.Add(p.Amount)
	updated.BalanceDue = inv.BalanceDue.Sub(p.Amount)
	if updated.BalanceDue.IsZero() {
		ts := now
		updated.PaidAt = &ts
	}
	updated.Status = DeriveInvoiceStatus(updated, now)
	updated.UpdatedAt = now
	return updated, nil
}

// VoidPayment reverses a payment's contribution to the invoice and stamps
// the void on the payment. The ledger is insert-only: the payment record
// survives, permanently excluded.
func VoidPayment(inv entities.Invoice, p entities.Payment, voidedBy string, now time.Time) (entities.Invoice, entities.Payment, error) {
	if p.IsVoided() {
		return inv, p, ErrPaymentAlreadyVoided
	}
	if inv.Status == entities.InvoiceStatusVoid {
		return inv, p, ErrInvoiceVoid
	}
	if p.InvoiceID != inv.ID {
		return inv, p, ErrPaymentInvoiceMismatch
	}

	updatedPayment := p
	ts := now
	updatedPayment.VoidedAt = &ts
	updatedPayment.VoidedBy = &voidedBy

	updated := inv
	updated.AmountPaid = inv.AmountPaid.Sub(p.Amount)
	updated.BalanceDue = inv.BalanceDue.Add(p.Amount)
	if updated.BalanceDue.IsPositive() {
		updated.PaidAt = nil
	}
	updated.Status = DeriveInvoiceStatus(updated, now)
	updated.UpdatedAt = now
	return updated, updatedPayment, nil
}
