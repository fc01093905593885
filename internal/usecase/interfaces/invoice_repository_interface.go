package interfaces

import (
	"context"

	"fieldserve_crm/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// Line items are embedded like the estimate's. Updates only touch the
// invoice head (status, balances, timestamps); rows are fixed at creation.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice, items []entities.InvoiceLineItem) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, []entities.InvoiceLineItem, error)
	Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]entities.Invoice, error)
}
