package interfaces

import (
	"context"

	"fieldserve_crm/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// Line items are stored embedded in the estimate document; every write
// carries the full item list so totals and rows can never diverge.

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate, items []entities.EstimateLineItem) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, []entities.EstimateLineItem, error)
	GetByOpportunityID(ctx context.Context, opportunityID string) (entities.Estimate, []entities.EstimateLineItem, error)
	Update(ctx context.Context, e entities.Estimate, items []entities.EstimateLineItem) (entities.Estimate, error)
}
