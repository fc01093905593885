package response

import (
	"time"

	"fieldserve_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type EstimateLineItemResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Taxable         bool            `json:"taxable"`
	Optional        bool            `json:"optional"`
	DisplayOrder    int             `json:"display_order"`
	LineTotal       decimal.Decimal `json:"line_total"`
}

type EstimateResponse struct {
	ID              string                     `json:"id"`
	CompanyID       string                     `json:"company_id"`
	OpportunityID   *string                    `json:"opportunity_id,omitempty"`
	ClientID        *string                    `json:"client_id,omitempty"`
	ProjectID       *string                    `json:"project_id,omitempty"`
	Status          string                     `json:"status"`
	TaxRate         decimal.Decimal            `json:"tax_rate"`
	DiscountPercent decimal.Decimal            `json:"discount_percent"`
	Subtotal        decimal.Decimal            `json:"subtotal"`
	TaxAmount       decimal.Decimal            `json:"tax_amount"`
	Total           decimal.Decimal            `json:"total"`
	Version         int                        `json:"version"`
	ParentID        *string                    `json:"parent_id,omitempty"`
	SentAt          *time.Time                 `json:"sent_at,omitempty"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
	LineItems       []EstimateLineItemResponse `json:"line_items,omitempty"`
}

func FromEstimate(e entities.Estimate, items []entities.EstimateLineItem) EstimateResponse {
	rows := make([]EstimateLineItemResponse, 0, len(items))
	for _, li := range items {
		rows = append(rows, EstimateLineItemResponse{
			ID:              li.ID,
			Name:            li.Name,
			Type:            string(li.Type),
			Quantity:        li.Quantity,
			UnitPrice:       li.UnitPrice,
			DiscountPercent: li.DiscountPercent,
			Taxable:         li.Taxable,
			Optional:        li.Optional,
			DisplayOrder:    li.DisplayOrder,
			LineTotal:       li.LineTotal(),
		})
	}
	return EstimateResponse{
		ID:              e.ID,
		CompanyID:       e.CompanyID,
		OpportunityID:   e.OpportunityID,
		ClientID:        e.ClientID,
		ProjectID:       e.ProjectID,
		Status:          string(e.Status),
		TaxRate:         e.TaxRate,
		DiscountPercent: e.DiscountPercent,
		Subtotal:        e.Subtotal,
		TaxAmount:       e.TaxAmount,
		Total:           e.Total,
		Version:         e.Version,
		ParentID:        e.ParentID,
		SentAt:          e.SentAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
		LineItems:       rows,
	}
}
