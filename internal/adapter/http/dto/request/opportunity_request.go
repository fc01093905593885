package request

import (
	"strings"

	"fieldserve_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateOpportunityRequest opens a new deal in the pipeline. EstimatedValue
// accepts a JSON number or string.
type CreateOpportunityRequest struct {
	CompanyID      string           `json:"company_id" binding:"required"`
	ContactName    string           `json:"contact_name" binding:"required"`
	ContactEmail   string           `json:"contact_email"`
	ContactPhone   string           `json:"contact_phone"`
	EstimatedValue *decimal.Decimal `json:"estimated_value"`
}

func (r CreateOpportunityRequest) ToInput() usecase.CreateOpportunityInput {
	return usecase.CreateOpportunityInput{
		CompanyID:      strings.TrimSpace(r.CompanyID),
		ContactName:    strings.TrimSpace(r.ContactName),
		ContactEmail:   strings.TrimSpace(r.ContactEmail),
		ContactPhone:   strings.TrimSpace(r.ContactPhone),
		EstimatedValue: r.EstimatedValue,
	}
}

// ChangeStageRequest moves an opportunity to another stage. LossReason is
// required only when the target stage is lost.
type ChangeStageRequest struct {
	Stage      string `json:"stage" binding:"required"`
	Actor      string `json:"actor" binding:"required"`
	LossReason string `json:"loss_reason"`
}
