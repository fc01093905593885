package interfaces

import (
	"context"

	"fieldserve_crm/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for the product catalog.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]entities.Product, error)
}
