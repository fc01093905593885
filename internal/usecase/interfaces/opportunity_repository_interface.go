package interfaces

import (
	"context"

	"fieldserve_crm/internal/domain/entities"
)

// IOpportunityRepository abstracts DynamoDB persistence for Opportunity.
//
// Lookups that find nothing return a zero-value entity with a nil error;
// the use case maps that to its not-found error.

type IOpportunityRepository interface {
	Create(ctx context.Context, o entities.Opportunity) (entities.Opportunity, error)
	GetByID(ctx context.Context, id string) (entities.Opportunity, error)
	Update(ctx context.Context, o entities.Opportunity) (entities.Opportunity, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]entities.Opportunity, error)
}

// IStageTransitionRepository persists the append-only stage-change audit log.

type IStageTransitionRepository interface {
	Append(ctx context.Context, tr entities.StageTransition) (entities.StageTransition, error)
	ListByOpportunityID(ctx context.Context, opportunityID string) ([]entities.StageTransition, error)
}
