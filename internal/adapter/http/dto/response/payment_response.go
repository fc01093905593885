package response

import (
	"time"

	"fieldserve_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID        string          `json:"id"`
	InvoiceID string          `json:"invoice_id"`
	CompanyID string          `json:"company_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	PaidAt    time.Time       `json:"paid_at"`
	VoidedAt  *time.Time      `json:"voided_at,omitempty"`
	VoidedBy  *string         `json:"voided_by,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		InvoiceID: p.InvoiceID,
		CompanyID: p.CompanyID,
		Amount:    p.Amount,
		Method:    string(p.Method),
		PaidAt:    p.PaidAt,
		VoidedAt:  p.VoidedAt,
		VoidedBy:  p.VoidedBy,
	}
}

func FromPayments(list []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayment(p))
	}
	return out
}

// PaymentResultResponse pairs the ledger entry with the invoice it changed.
type PaymentResultResponse struct {
	Payment PaymentResponse `json:"payment"`
	Invoice InvoiceResponse `json:"invoice"`
}

func FromPaymentResult(p entities.Payment, inv entities.Invoice) PaymentResultResponse {
	return PaymentResultResponse{
		Payment: FromPayment(p),
		Invoice: FromInvoice(inv, nil),
	}
}
