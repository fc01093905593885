package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"fieldserve_crm/internal/domain/entities"
	"fieldserve_crm/internal/domain/pipeline"
	"fieldserve_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOpportunityNotFound   = errors.New("opportunity not found")
	ErrInvalidOpportunityID  = errors.New("invalid opportunity id")
	ErrInvalidCompanyID      = errors.New("invalid company_id")
	ErrInvalidContactName    = errors.New("invalid contact name")
	ErrInvalidEstimatedValue = errors.New("invalid estimated value")
)

// CreateOpportunityInput is the command to open a new deal in the pipeline.
type CreateOpportunityInput struct {
	CompanyID      string
	ContactName    string
	ContactEmail   string
	ContactPhone   string
	EstimatedValue *decimal.Decimal
}

// OpportunityMetrics is the derived read-only snapshot for one opportunity.
type OpportunityMetrics struct {
	WeightedValue decimal.Decimal `json:"weighted_value"`
	DaysInStage   int             `json:"days_in_stage"`
	Stale         bool            `json:"stale"`
}

// IOpportunityUseCase exposes pipeline operations.
//
// Stage changes run through the pipeline engine: validation, activity
// refresh and the append-only StageTransition audit record.

type IOpportunityUseCase interface {
	Create(ctx context.Context, in CreateOpportunityInput) (entities.Opportunity, error)
	GetByID(ctx context.Context, id string) (entities.Opportunity, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]entities.Opportunity, error)
	ChangeStage(ctx context.Context, id, toStage, actor, lossReason string) (entities.Opportunity, entities.StageTransition, error)
	TouchActivity(ctx context.Context, id string) (entities.Opportunity, error)
	ListTransitions(ctx context.Context, id string) ([]entities.StageTransition, error)
	Metrics(ctx context.Context, id string) (entities.Opportunity, OpportunityMetrics, error)
}

type OpportunityUseCase struct {
	repo        interfaces.IOpportunityRepository
	transitions interfaces.IStageTransitionRepository
}

var _ IOpportunityUseCase = (*OpportunityUseCase)(nil)

func NewOpportunityUseCase(repo interfaces.IOpportunityRepository, transitions interfaces.IStageTransitionRepository) *OpportunityUseCase {
	return &OpportunityUseCase{repo: repo, transitions: transitions}
}

func (u *OpportunityUseCase) Create(ctx context.Context, in CreateOpportunityInput) (entities.Opportunity, error) {
	in.CompanyID = strings.TrimSpace(in.CompanyID)
	if in.CompanyID == "" {
		return entities.Opportunity{}, ErrInvalidCompanyID
	}
	in.ContactName = strings.TrimSpace(in.ContactName)
	if in.ContactName == "" {
		return entities.Opportunity{}, ErrInvalidContactName
	}
	if in.EstimatedValue != nil && in.EstimatedValue.IsNegative() {
		return entities.Opportunity{}, ErrInvalidEstimatedValue
	}

	now := time.Now().UTC()
	o := entities.Opportunity{
		ID:             uuid.NewString(),
		CompanyID:      in.CompanyID,
		ContactName:    in.ContactName,
		ContactEmail:   strings.TrimSpace(in.ContactEmail),
		ContactPhone:   strings.TrimSpace(in.ContactPhone),
		EstimatedValue: in.EstimatedValue,
		Stage:          entities.StageNewLead,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.repo.Create(ctx, o)
}

func (u *OpportunityUseCase) GetByID(ctx context.Context, id string) (entities.Opportunity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Opportunity{}, ErrInvalidOpportunityID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Opportunity{}, err
	}
	if o.ID == "" {
		return entities.Opportunity{}, ErrOpportunityNotFound
	}
	return o, nil
}

func (u *OpportunityUseCase) ListByCompanyID(ctx context.Context, companyID string) ([]entities.Opportunity, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	return u.repo.ListByCompanyID(ctx, companyID)
}

func (u *OpportunityUseCase) ChangeStage(ctx context.Context, id, toStage, actor, lossReason string) (entities.Opportunity, entities.StageTransition, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Opportunity{}, entities.StageTransition{}, err
	}

	target, err := entities.ParseStage(strings.TrimSpace(toStage))
	if err != nil {
		return entities.Opportunity{}, entities.StageTransition{}, err
	}

	updated, tr, err := pipeline.RequestStageChange(o, target, strings.TrimSpace(actor), time.Now().UTC(), lossReason)
	if err != nil {
		return entities.Opportunity{}, entities.StageTransition{}, err
	}

	persisted, err := u.repo.Update(ctx, updated)
	if err != nil {
		return entities.Opportunity{}, entities.StageTransition{}, err
	}

	appended, err := u.transitions.Append(ctx, tr)
	if err != nil {
		log.Printf("[opportunity][usecase] stage persisted but transition append failed opportunity_id=%s err=%v", o.ID, err)
		return entities.Opportunity{}, entities.StageTransition{}, err
	}
	return persisted, appended, nil
}

func (u *OpportunityUseCase) TouchActivity(ctx context.Context, id string) (entities.Opportunity, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Opportunity{}, err
	}

	updated, err := pipeline.TouchActivity(o, time.Now().UTC())
	if err != nil {
		return entities.Opportunity{}, err
	}
	return u.repo.Update(ctx, updated)
}

func (u *OpportunityUseCase) ListTransitions(ctx context.Context, id string) ([]entities.StageTransition, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidOpportunityID
	}
	return u.transitions.ListByOpportunityID(ctx, id)
}

func (u *OpportunityUseCase) Metrics(ctx context.Context, id string) (entities.Opportunity, OpportunityMetrics, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Opportunity{}, OpportunityMetrics{}, err
	}

	now := time.Now().UTC()
	m := OpportunityMetrics{
		WeightedValue: pipeline.WeightedValue(o),
		DaysInStage:   pipeline.DaysInStage(o, now),
		Stale:         pipeline.IsStale(o, now),
	}
	return o, m, nil
}
