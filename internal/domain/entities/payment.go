package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a payment was taken.

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodOther        PaymentMethod = "other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCheck, PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodOther:
		return true
	}
	return false
}

// Payment is one entry in the insert-only payment ledger of an invoice.
//
// Domain notes:
//   - A payment contributes to the invoice's AmountPaid only while VoidedAt
//     is unset; once voided it is excluded permanently and never re-activated.
//   - Corrections are new records, never edits.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_id-index): invoice_id

type Payment struct {
	ID        string          `json:"id"`
	InvoiceID string          `json:"invoice_id"`
	CompanyID string          `json:"company_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    PaymentMethod   `json:"method"`
	PaidAt    time.Time       `json:"paid_at"`
	VoidedAt  *time.Time      `json:"voided_at,omitempty"`
	VoidedBy  *string         `json:"voided_by,omitempty"`
}

// IsVoided reports whether the payment has been excluded from the ledger.
func (p Payment) IsVoided() bool {
	return p.VoidedAt != nil
}
