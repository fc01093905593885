package request

import (
	"strings"
	"time"

	"fieldserve_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

// LineItemRequest is one requested estimate row. When ProductID is set the
// catalog template fills in whatever is left blank.
type LineItemRequest struct {
	ProductID       *string         `json:"product_id"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Taxable         bool            `json:"taxable"`
	Optional        bool            `json:"optional"`
}

func (r LineItemRequest) toInput() usecase.EstimateLineItemInput {
	return usecase.EstimateLineItemInput{
		ProductID:       r.ProductID,
		Name:            strings.TrimSpace(r.Name),
		Type:            strings.TrimSpace(r.Type),
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		DiscountPercent: r.DiscountPercent,
		Taxable:         r.Taxable,
		Optional:        r.Optional,
	}
}

// CreateEstimateRequest drafts a new estimate.
type CreateEstimateRequest struct {
	CompanyID       string            `json:"company_id" binding:"required"`
	OpportunityID   *string           `json:"opportunity_id"`
	ClientID        *string           `json:"client_id"`
	ProjectID       *string           `json:"project_id"`
	TaxRate         decimal.Decimal   `json:"tax_rate"`
	DiscountPercent decimal.Decimal   `json:"discount_percent"`
	LineItems       []LineItemRequest `json:"line_items" binding:"required"`
}

func (r CreateEstimateRequest) ToInput() usecase.CreateEstimateInput {
	items := make([]usecase.EstimateLineItemInput, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		items = append(items, li.toInput())
	}
	return usecase.CreateEstimateInput{
		CompanyID:       strings.TrimSpace(r.CompanyID),
		OpportunityID:   r.OpportunityID,
		ClientID:        r.ClientID,
		ProjectID:       r.ProjectID,
		TaxRate:         r.TaxRate,
		DiscountPercent: r.DiscountPercent,
		LineItems:       items,
	}
}

// UpdateLineItemsRequest replaces the full line item set of an open estimate.
type UpdateLineItemsRequest struct {
	LineItems []LineItemRequest `json:"line_items" binding:"required"`
}

func (r UpdateLineItemsRequest) ToInputs() []usecase.EstimateLineItemInput {
	items := make([]usecase.EstimateLineItemInput, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		items = append(items, li.toInput())
	}
	return items
}

// ConvertEstimateRequest carries the optional due date for the invoice
// created from an approved estimate.
type ConvertEstimateRequest struct {
	DueDate *time.Time `json:"due_date"`
}
