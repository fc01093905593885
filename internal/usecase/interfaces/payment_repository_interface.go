package interfaces

import (
	"context"

	"fieldserve_crm/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for the payment ledger.
//
// The ledger is insert-only: Update exists solely to stamp void metadata on
// an existing record, never to change its amount.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	Update(ctx context.Context, p entities.Payment) (entities.Payment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error)
}
