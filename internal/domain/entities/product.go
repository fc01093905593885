package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog template used to seed new line items. It is not part
// of the transactional state machine.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id

type Product struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	Name         string          `json:"name"`
	Type         LineItemType    `json:"type"`
	DefaultPrice decimal.Decimal `json:"default_price"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Taxable      bool            `json:"taxable"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
