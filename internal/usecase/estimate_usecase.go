package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"fieldserve_crm/internal/domain/billing"
	"fieldserve_crm/internal/domain/entities"
	"fieldserve_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEstimateNotFound   = errors.New("estimate not found")
	ErrInvalidEstimateID  = errors.New("invalid estimate id")
	ErrInvalidLineItem    = errors.New("invalid line item")
	ErrInvalidTaxRate     = errors.New("invalid tax rate")
	ErrInvalidDiscount    = errors.New("invalid discount percent")
	ErrEstimateHasNoItems = errors.New("estimate has no line items")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductInactive    = errors.New("product inactive")
)

// EstimateLineItemInput is one requested row. When ProductID is set the
// catalog template seeds name, type, price and taxability; explicit fields
// still win when provided.
type EstimateLineItemInput struct {
	ProductID       *string
	Name            string
	Type            string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
	Taxable         bool
	Optional        bool
}

// CreateEstimateInput is the command to draft an estimate.
type CreateEstimateInput struct {
	CompanyID       string
	OpportunityID   *string
	ClientID        *string
	ProjectID       *string
	TaxRate         decimal.Decimal
	DiscountPercent decimal.Decimal
	LineItems       []EstimateLineItemInput
}

// IEstimateUseCase exposes the estimate lifecycle.

type IEstimateUseCase interface {
	Create(ctx context.Context, in CreateEstimateInput) (entities.Estimate, []entities.EstimateLineItem, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, []entities.EstimateLineItem, error)
	GetByOpportunityID(ctx context.Context, opportunityID string) (entities.Estimate, []entities.EstimateLineItem, error)
	UpdateLineItems(ctx context.Context, id string, items []EstimateLineItemInput) (entities.Estimate, []entities.EstimateLineItem, error)
	Send(ctx context.Context, id string) (entities.Estimate, error)
	MarkViewed(ctx context.Context, id string) (entities.Estimate, error)
	Approve(ctx context.Context, id string) (entities.Estimate, error)
	Decline(ctx context.Context, id string) (entities.Estimate, error)
	Expire(ctx context.Context, id string) (entities.Estimate, error)
	ConvertToInvoice(ctx context.Context, id string, dueDate *time.Time) (entities.Estimate, entities.Invoice, error)
}

type EstimateUseCase struct {
	repo        interfaces.IEstimateRepository
	invoiceRepo interfaces.IInvoiceRepository
	productRepo interfaces.IProductRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, invoiceRepo interfaces.IInvoiceRepository, productRepo interfaces.IProductRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, invoiceRepo: invoiceRepo, productRepo: productRepo}
}

func (u *EstimateUseCase) Create(ctx context.Context, in CreateEstimateInput) (entities.Estimate, []entities.EstimateLineItem, error) {
	in.CompanyID = strings.TrimSpace(in.CompanyID)
	if in.CompanyID == "" {
		return entities.Estimate{}, nil, ErrInvalidCompanyID
	}
	if in.TaxRate.IsNegative() {
		return entities.Estimate{}, nil, ErrInvalidTaxRate
	}
	if in.DiscountPercent.IsNegative() || in.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return entities.Estimate{}, nil, ErrInvalidDiscount
	}
	if len(in.LineItems) == 0 {
		return entities.Estimate{}, nil, ErrEstimateHasNoItems
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:              uuid.NewString(),
		CompanyID:       in.CompanyID,
		OpportunityID:   in.OpportunityID,
		ClientID:        in.ClientID,
		ProjectID:       in.ProjectID,
		Status:          entities.EstimateStatusDraft,
		TaxRate:         in.TaxRate,
		DiscountPercent: in.DiscountPercent,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	items, err := u.buildLineItems(ctx, e.ID, in.LineItems)
	if err != nil {
		return entities.Estimate{}, nil, err
	}

	e = billing.ApplyEstimateTotals(e, items, now)
	created, err := u.repo.Create(ctx, e, items)
	if err != nil {
		return entities.Estimate{}, nil, err
	}
	return created, items, nil
}

// buildLineItems resolves product templates and validates each row.
func (u *EstimateUseCase) buildLineItems(ctx context.Context, estimateID string, inputs []EstimateLineItemInput) ([]entities.EstimateLineItem, error) {
	items := make([]entities.EstimateLineItem, 0, len(inputs))
	for i, in := range inputs {
		li := entities.EstimateLineItem{
			ID:              uuid.NewString(),
			EstimateID:      estimateID,
			Name:            strings.TrimSpace(in.Name),
			Type:            entities.LineItemType(in.Type),
			Quantity:        in.Quantity,
			UnitPrice:       in.UnitPrice,
			DiscountPercent: in.DiscountPercent,
			Taxable:         in.Taxable,
			Optional:        in.Optional,
			DisplayOrder:    i,
		}

		if in.ProductID != nil && u.productRepo != nil {
			p, err := u.productRepo.GetByID(ctx, strings.TrimSpace(*in.ProductID))
			if err != nil {
				return nil, err
			}
			if p.ID == "" {
				return nil, ErrProductNotFound
			}
			if !p.Active {
				return nil, ErrProductInactive
			}
			if li.Name == "" {
				li.Name = p.Name
			}
			if li.Type == "" {
				li.Type = p.Type
			}
			if li.UnitPrice.IsZero() {
				li.UnitPrice = p.DefaultPrice
			}
			li.Taxable = p.Taxable
		}

		if li.Name == "" || !li.Type.Valid() {
			return nil, ErrInvalidLineItem
		}
		if !li.Quantity.IsPositive() || li.UnitPrice.IsNegative() {
			return nil, ErrInvalidLineItem
		}
		if li.DiscountPercent.IsNegative() || li.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
			return nil, ErrInvalidLineItem
		}
		items = append(items, li)
	}
	return items, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, []entities.EstimateLineItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, nil, ErrInvalidEstimateID
	}

	e, items, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, nil, err
	}
	if e.ID == "" {
		return entities.Estimate{}, nil, ErrEstimateNotFound
	}
	return e, items, nil
}

func (u *EstimateUseCase) GetByOpportunityID(ctx context.Context, opportunityID string) (entities.Estimate, []entities.EstimateLineItem, error) {
	opportunityID = strings.TrimSpace(opportunityID)
	if opportunityID == "" {
		return entities.Estimate{}, nil, ErrInvalidOpportunityID
	}

	e, items, err := u.repo.GetByOpportunityID(ctx, opportunityID)
	if err != nil {
		return entities.Estimate{}, nil, err
	}
	if e.ID == "" {
		return entities.Estimate{}, nil, ErrEstimateNotFound
	}
	return e, items, nil
}

func (u *EstimateUseCase) UpdateLineItems(ctx context.Context, id string, inputs []EstimateLineItemInput) (entities.Estimate, []entities.EstimateLineItem, error) {
	e, _, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, nil, err
	}
	if e.Status.IsTerminal() {
		return entities.Estimate{}, nil, billing.ErrIllegalStatusTransition
	}
	if len(inputs) == 0 {
		return entities.Estimate{}, nil, ErrEstimateHasNoItems
	}

	items, err := u.buildLineItems(ctx, e.ID, inputs)
	if err != nil {
		return entities.Estimate{}, nil, err
	}

	e = billing.ApplyEstimateTotals(e, items, time.Now().UTC())
	updated, err := u.repo.Update(ctx, e, items)
	if err != nil {
		return entities.Estimate{}, nil, err
	}
	return updated, items, nil
}

func (u *EstimateUseCase) Send(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(ctx, id, billing.SendEstimate)
}

func (u *EstimateUseCase) MarkViewed(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(ctx, id, billing.MarkEstimateViewed)
}

func (u *EstimateUseCase) Approve(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(ctx, id, billing.ApproveEstimate)
}

func (u *EstimateUseCase) Decline(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(ctx, id, billing.DeclineEstimate)
}

func (u *EstimateUseCase) Expire(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(ctx, id, billing.ExpireEstimate)
}

func (u *EstimateUseCase) transition(ctx context.Context, id string, apply func(entities.Estimate, time.Time) (entities.Estimate, error)) (entities.Estimate, error) {
	e, items, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}

	updated, err := apply(e, time.Now().UTC())
	if err != nil {
		return entities.Estimate{}, err
	}
	return u.repo.Update(ctx, updated, items)
}

// ConvertToInvoice flips an approved estimate to converted and creates the
// linked invoice. Estimate-level and per-item discounts are folded into the
// invoice unit prices (invoices carry no discount field); optional items
// the client never accepted are dropped.
func (u *EstimateUseCase) ConvertToInvoice(ctx context.Context, id string, dueDate *time.Time) (entities.Estimate, entities.Invoice, error) {
	e, items, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, entities.Invoice{}, err
	}

	now := time.Now().UTC()
	converted, err := billing.ConvertEstimate(e, now)
	if err != nil {
		return entities.Estimate{}, entities.Invoice{}, err
	}

	discountFactor := decimal.NewFromInt(1).Sub(e.DiscountPercent.Div(decimal.NewFromInt(100)))
	invoiceItems := make([]entities.InvoiceLineItem, 0, len(items))
	inv := entities.Invoice{
		ID:            uuid.NewString(),
		CompanyID:     e.CompanyID,
		ClientID:      e.ClientID,
		ProjectID:     e.ProjectID,
		OpportunityID: e.OpportunityID,
		EstimateID:    &converted.ID,
		Status:        entities.InvoiceStatusDraft,
		AmountPaid:    decimal.Zero,
		TaxRate:       e.TaxRate,
		DueDate:       dueDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for i, li := range items {
		if li.Optional {
			continue
		}
		unitPrice := li.UnitPrice
		if !li.DiscountPercent.IsZero() {
			unitPrice = unitPrice.Mul(decimal.NewFromInt(1).Sub(li.DiscountPercent.Div(decimal.NewFromInt(100))))
		}
		unitPrice = unitPrice.Mul(discountFactor)
		invoiceItems = append(invoiceItems, entities.InvoiceLineItem{
			ID:           uuid.NewString(),
			InvoiceID:    inv.ID,
			Name:         li.Name,
			Type:         li.Type,
			Quantity:     li.Quantity,
			UnitPrice:    unitPrice,
			DisplayOrder: i,
		})
	}
	inv = billing.ApplyInvoiceTotals(inv, invoiceItems, now)

	createdInvoice, err := u.invoiceRepo.Create(ctx, inv, invoiceItems)
	if err != nil {
		return entities.Estimate{}, entities.Invoice{}, err
	}

	updatedEstimate, err := u.repo.Update(ctx, converted, items)
	if err != nil {
		return entities.Estimate{}, entities.Invoice{}, err
	}
	return updatedEstimate, createdInvoice, nil
}
