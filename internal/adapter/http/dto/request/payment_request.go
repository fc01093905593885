package request

import (
	"encoding/json"
	"strings"

	"fieldserve_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

// RecordPaymentRequest applies money against an invoice. CardPayload is
// forwarded to the payment provider for the card method only.
type RecordPaymentRequest struct {
	InvoiceID   string          `json:"invoice_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method" binding:"required"`
	CardPayload json.RawMessage `json:"card_payload"`
}

func (r RecordPaymentRequest) ToInput() usecase.RecordPaymentInput {
	return usecase.RecordPaymentInput{
		InvoiceID:   strings.TrimSpace(r.InvoiceID),
		Amount:      r.Amount,
		Method:      strings.TrimSpace(r.Method),
		CardPayload: r.CardPayload,
	}
}

// VoidPaymentRequest names the actor excluding a ledger entry.
type VoidPaymentRequest struct {
	VoidedBy string `json:"voided_by" binding:"required"`
}
