package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStatus represents the lifecycle of an estimate.
//
// Domain notes:
//   - Status transitions are driven by the legal-action predicates below;
//     converted, declined and expired are terminal.
//   - decline/expire are available from any non-terminal status.

type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "draft"
	EstimateStatusSent      EstimateStatus = "sent"
	EstimateStatusViewed    EstimateStatus = "viewed"
	EstimateStatusApproved  EstimateStatus = "approved"
	EstimateStatusConverted EstimateStatus = "converted"
	EstimateStatusDeclined  EstimateStatus = "declined"
	EstimateStatusExpired   EstimateStatus = "expired"
)

// CanSend reports whether the estimate may be sent to the client.
func (s EstimateStatus) CanSend() bool { return s == EstimateStatusDraft }

// CanMarkViewed reports whether a client-open event may be recorded.
func (s EstimateStatus) CanMarkViewed() bool { return s == EstimateStatusSent }

// CanApprove reports whether the client may approve the estimate.
func (s EstimateStatus) CanApprove() bool {
	return s == EstimateStatusSent || s == EstimateStatusViewed
}

// CanConvert reports whether the estimate may be converted into an invoice.
func (s EstimateStatus) CanConvert() bool { return s == EstimateStatusApproved }

// IsTerminal reports whether no further transition is legal.
func (s EstimateStatus) IsTerminal() bool {
	return s == EstimateStatusConverted || s == EstimateStatusDeclined || s == EstimateStatusExpired
}

// LineItemType classifies a billable line item.

type LineItemType string

const (
	LineItemTypeLabor    LineItemType = "labor"
	LineItemTypeMaterial LineItemType = "material"
	LineItemTypeOther    LineItemType = "other"
)

func (t LineItemType) Valid() bool {
	switch t {
	case LineItemTypeLabor, LineItemTypeMaterial, LineItemTypeOther:
		return true
	}
	return false
}

// Estimate is a quoted scope of work for an opportunity.
//
// Monetary representation:
//   - All amounts are fixed-point decimals; Total is rounded to 2 places,
//     intermediate amounts are kept exact.
//   - Total = (Subtotal - discount) + tax on the post-discount taxable base.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (opportunity_id-index): opportunity_id

type Estimate struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	OpportunityID   *string         `json:"opportunity_id,omitempty"`
	ClientID        *string         `json:"client_id,omitempty"`
	ProjectID       *string         `json:"project_id,omitempty"`
	Status          EstimateStatus  `json:"status"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	Total           decimal.Decimal `json:"total"`
	Version         int             `json:"version"`
	ParentID        *string         `json:"parent_id,omitempty"`
	SentAt          *time.Time      `json:"sent_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// EstimateLineItem is one priced row of an estimate.
//
// Optional items are excluded from the subtotal until the client accepts
// them; acceptance is a client-side concern.

type EstimateLineItem struct {
	ID              string          `json:"id"`
	EstimateID      string          `json:"estimate_id"`
	Name            string          `json:"name"`
	Type            LineItemType    `json:"type"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Taxable         bool            `json:"taxable"`
	Optional        bool            `json:"optional"`
	DisplayOrder    int             `json:"display_order"`
}

// LineTotal returns quantity x unit price less the item discount, unrounded.
func (li EstimateLineItem) LineTotal() decimal.Decimal {
	gross := li.Quantity.Mul(li.UnitPrice)
	if li.DiscountPercent.IsZero() {
		return gross
	}
	factor := decimal.NewFromInt(1).Sub(li.DiscountPercent.Div(decimal.NewFromInt(100)))
	return gross.Mul(factor)
}
