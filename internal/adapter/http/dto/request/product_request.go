package request

import (
	"strings"

	"fieldserve_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateProductRequest adds a catalog template.
type CreateProductRequest struct {
	CompanyID    string          `json:"company_id" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Type         string          `json:"type" binding:"required"`
	DefaultPrice decimal.Decimal `json:"default_price"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Taxable      bool            `json:"taxable"`
}

func (r CreateProductRequest) ToInput() usecase.CreateProductInput {
	return usecase.CreateProductInput{
		CompanyID:    strings.TrimSpace(r.CompanyID),
		Name:         strings.TrimSpace(r.Name),
		Type:         strings.TrimSpace(r.Type),
		DefaultPrice: r.DefaultPrice,
		UnitCost:     r.UnitCost,
		Taxable:      r.Taxable,
	}
}
