package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Opportunity is a prospective deal moving through the sales pipeline.
//
// Domain notes:
//   - Stage is always a member of the closed Stage set.
//   - LastActivityAt, when present, is >= CreatedAt.
//   - Opportunities are never deleted; won/lost marks them terminal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id

type Opportunity struct {
	ID             string           `json:"id"`
	CompanyID      string           `json:"company_id"`
	ContactName    string           `json:"contact_name"`
	ContactEmail   string           `json:"contact_email,omitempty"`
	ContactPhone   string           `json:"contact_phone,omitempty"`
	EstimatedValue *decimal.Decimal `json:"estimated_value,omitempty"`
	Stage          Stage            `json:"stage"`
	LossReason     *string          `json:"loss_reason,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	LastActivityAt *time.Time       `json:"last_activity_at,omitempty"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// StageTransition is an immutable audit record of one accepted stage change.
// Append-only: never mutated or deleted after creation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (opportunity_id-index): opportunity_id

type StageTransition struct {
	ID            string    `json:"id"`
	OpportunityID string    `json:"opportunity_id"`
	FromStage     Stage     `json:"from_stage"`
	ToStage       Stage     `json:"to_stage"`
	Actor         string    `json:"actor"`
	CreatedAt     time.Time `json:"created_at"`
}
