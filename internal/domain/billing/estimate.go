// Package billing implements the financial-document rules: estimate and
// invoice totals, status transitions, payment reconciliation and AR
// reporting. Like pipeline, it is a pure computation layer over snapshots
// supplied by the caller; callers must serialize concurrent mutations
// against the same invoice.
package billing

import (
	"errors"
	"time"

	"fieldserve_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrIllegalStatusTransition = errors.New("illegal status transition")
	ErrOverpaymentNotAllowed   = errors.New("overpayment not allowed")
	ErrPaymentAlreadyVoided    = errors.New("payment already voided")
	ErrInvoiceVoid             = errors.New("invoice is void")
	ErrInvalidPaymentAmount    = errors.New("invalid payment amount")
	ErrPaymentInvoiceMismatch  = errors.New("payment does not belong to invoice")
)

var oneHundred = decimal.NewFromInt(100)

// EstimateTotals is the derived money breakdown of an estimate.
type EstimateTotals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// RecomputeEstimateTotals derives subtotal, tax and total from the line items.
//
// Rules:
//   - optional items are excluded from the subtotal
//   - tax applies only to taxable items, on their post-discount amount
//   - rounding to 2 places happens only on the final total, so repeated
//     recomputation over unchanged items is drift-free
func RecomputeEstimateTotals(e entities.Estimate, items []entities.EstimateLineItem) EstimateTotals {
	subtotal := decimal.Zero
	taxableBase := decimal.Zero
	for _, li := range items {
		if li.Optional {
			continue
		}
		lineTotal := li.LineTotal()
		subtotal = subtotal.Add(lineTotal)
		if li.Taxable {
			taxableBase = taxableBase.Add(lineTotal)
		}
	}

	discountFactor := e.DiscountPercent.Div(oneHundred)
	discountAmount := subtotal.Mul(discountFactor)
	taxAmount := taxableBase.Sub(taxableBase.Mul(discountFactor)).Mul(e.TaxRate)
	total := subtotal.Sub(discountAmount).Add(taxAmount).Round(2)

	return EstimateTotals{Subtotal: subtotal, TaxAmount: taxAmount, Total: total}
}

// ApplyEstimateTotals recomputes and stamps the totals onto a copy of the
// estimate.
func ApplyEstimateTotals(e entities.Estimate, items []entities.EstimateLineItem, now time.Time) entities.Estimate {
	t := RecomputeEstimateTotals(e, items)
	updated := e
	updated.Subtotal = t.Subtotal
	updated.TaxAmount = t.TaxAmount
	updated.Total = t.Total
	updated.UpdatedAt = now
	return updated
}

// SendEstimate moves draft -> sent and stamps the sent timestamp.
func SendEstimate(e entities.Estimate, now time.Time) (entities.Estimate, error) {
	if !e.Status.CanSend() {
		return e, ErrIllegalStatusTransition
	}
	updated := e
	updated.Status = entities.EstimateStatusSent
	ts := now
	updated.SentAt = &ts
	updated.UpdatedAt = now
	return updated, nil
}

// MarkEstimateViewed records a client-open event, sent -> viewed.
func MarkEstimateViewed(e entities.Estimate, now time.Time) (entities.Estimate, error) {
	if !e.Status.CanMarkViewed() {
		return e, ErrIllegalStatusTransition
	}
	updated := e
	updated.Status = entities.EstimateStatusViewed
	updated.UpdatedAt = now
	return updated, nil
}

// ApproveEstimate moves sent|viewed -> approved.
func ApproveEstimate(e entities.Estimate, now time.Time) (entities.Estimate, error) {
	if !e.Status.CanApprove() {
		return e, ErrIllegalStatusTransition
	}
	updated := e
	updated.Status = entities.EstimateStatusApproved
	updated.UpdatedAt = now
	return updated, nil
}

// ConvertEstimate moves approved -> converted. Creating the linked invoice
// is the caller's job; this only validates and flips the status.
func ConvertEstimate(e entities.Estimate, now time.Time) (entities.Estimate, error) {
	if !e.Status.CanConvert() {
		return e, ErrIllegalStatusTransition
	}
	updated := e
	updated.Status = entities.EstimateStatusConverted
	updated.UpdatedAt = now
	return updated, nil
}

// DeclineEstimate moves any non-terminal status -> declined.
func DeclineEstimate(e entities.Estimate, now time.Time) (entities.Estimate, error) {
	return closeEstimate(e, entities.EstimateStatusDeclined, now)
}

// ExpireEstimate moves any non-terminal status -> expired.
func ExpireEstimate(e entities.Estimate, now time.Time) (entities.Estimate, error) {
	return closeEstimate(e, entities.EstimateStatusExpired, now)
}

func closeEstimate(e entities.Estimate, to entities.EstimateStatus, now time.Time) (entities.Estimate, error) {
	if e.Status.IsTerminal() {
		return e, ErrIllegalStatusTransition
	}
	updated := e
	updated.Status = to
	updated.UpdatedAt = now
	return updated, nil
}
