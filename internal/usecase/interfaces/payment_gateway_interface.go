package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external card processors (e.g. Mercado Pago).
//
// Card payments are charged through it before the ledger record is written;
// the provider response payload is kept for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
