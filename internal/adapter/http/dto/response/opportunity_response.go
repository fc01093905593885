package response

import (
	"time"

	"fieldserve_crm/internal/domain/entities"
	"fieldserve_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

type OpportunityResponse struct {
	ID             string           `json:"id"`
	CompanyID      string           `json:"company_id"`
	ContactName    string           `json:"contact_name"`
	ContactEmail   string           `json:"contact_email,omitempty"`
	ContactPhone   string           `json:"contact_phone,omitempty"`
	EstimatedValue *decimal.Decimal `json:"estimated_value,omitempty"`
	Stage          string           `json:"stage"`
	LossReason     *string          `json:"loss_reason,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	LastActivityAt *time.Time       `json:"last_activity_at,omitempty"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func FromOpportunity(o entities.Opportunity) OpportunityResponse {
	return OpportunityResponse{
		ID:             o.ID,
		CompanyID:      o.CompanyID,
		ContactName:    o.ContactName,
		ContactEmail:   o.ContactEmail,
		ContactPhone:   o.ContactPhone,
		EstimatedValue: o.EstimatedValue,
		Stage:          string(o.Stage),
		LossReason:     o.LossReason,
		CreatedAt:      o.CreatedAt,
		LastActivityAt: o.LastActivityAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func FromOpportunities(list []entities.Opportunity) []OpportunityResponse {
	out := make([]OpportunityResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromOpportunity(o))
	}
	return out
}

type StageTransitionResponse struct {
	ID            string    `json:"id"`
	OpportunityID string    `json:"opportunity_id"`
	FromStage     string    `json:"from_stage"`
	ToStage       string    `json:"to_stage"`
	Actor         string    `json:"actor"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromStageTransition(tr entities.StageTransition) StageTransitionResponse {
	return StageTransitionResponse{
		ID:            tr.ID,
		OpportunityID: tr.OpportunityID,
		FromStage:     string(tr.FromStage),
		ToStage:       string(tr.ToStage),
		Actor:         tr.Actor,
		CreatedAt:     tr.CreatedAt,
	}
}

func FromStageTransitions(list []entities.StageTransition) []StageTransitionResponse {
	out := make([]StageTransitionResponse, 0, len(list))
	for _, tr := range list {
		out = append(out, FromStageTransition(tr))
	}
	return out
}

// ChangeStageResponse pairs the updated opportunity with the audit record
// created by the stage change.
type ChangeStageResponse struct {
	Opportunity OpportunityResponse     `json:"opportunity"`
	Transition  StageTransitionResponse `json:"transition"`
}

// OpportunityMetricsResponse is the derived pipeline snapshot.
type OpportunityMetricsResponse struct {
	Opportunity   OpportunityResponse `json:"opportunity"`
	WeightedValue decimal.Decimal     `json:"weighted_value"`
	DaysInStage   int                 `json:"days_in_stage"`
	Stale         bool                `json:"stale"`
}

func FromOpportunityMetrics(o entities.Opportunity, m usecase.OpportunityMetrics) OpportunityMetricsResponse {
	return OpportunityMetricsResponse{
		Opportunity:   FromOpportunity(o),
		WeightedValue: m.WeightedValue,
		DaysInStage:   m.DaysInStage,
		Stale:         m.Stale,
	}
}
