package response

import (
	"time"

	"fieldserve_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	DefaultPrice decimal.Decimal `json:"default_price"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Taxable      bool            `json:"taxable"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		CompanyID:    p.CompanyID,
		Name:         p.Name,
		Type:         string(p.Type),
		DefaultPrice: p.DefaultPrice,
		UnitCost:     p.UnitCost,
		Taxable:      p.Taxable,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromProducts(list []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProduct(p))
	}
	return out
}
