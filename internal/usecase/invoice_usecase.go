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
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrInvalidInvoiceID  = errors.New("invalid invoice id")
	ErrInvoiceHasNoItems = errors.New("invoice has no line items")
)

// InvoiceLineItemInput is one requested invoice row.
type InvoiceLineItemInput struct {
	Name      string
	Type      string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// CreateInvoiceInput is the command to draft a standalone invoice.
type CreateInvoiceInput struct {
	CompanyID     string
	ClientID      *string
	ProjectID     *string
	OpportunityID *string
	TaxRate       decimal.Decimal
	DueDate       *time.Time
	LineItems     []InvoiceLineItemInput
}

// IInvoiceUseCase exposes the invoice lifecycle. Payment application lives
// in IPaymentUseCase; status refresh re-derives from balance and due date.

type IInvoiceUseCase interface {
	Create(ctx context.Context, in CreateInvoiceInput) (entities.Invoice, []entities.InvoiceLineItem, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, []entities.InvoiceLineItem, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]entities.Invoice, error)
	Send(ctx context.Context, id string, dueDate *time.Time) (entities.Invoice, error)
	Void(ctx context.Context, id string) (entities.Invoice, error)
	RefreshStatus(ctx context.Context, id string) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo interfaces.IInvoiceRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

func (u *InvoiceUseCase) Create(ctx context.Context, in CreateInvoiceInput) (entities.Invoice, []entities.InvoiceLineItem, error) {
	in.CompanyID = strings.TrimSpace(in.CompanyID)
	if in.CompanyID == "" {
		return entities.Invoice{}, nil, ErrInvalidCompanyID
	}
	if in.TaxRate.IsNegative() {
		return entities.Invoice{}, nil, ErrInvalidTaxRate
	}
	if len(in.LineItems) == 0 {
		return entities.Invoice{}, nil, ErrInvoiceHasNoItems
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:            uuid.NewString(),
		CompanyID:     in.CompanyID,
		ClientID:      in.ClientID,
		ProjectID:     in.ProjectID,
		OpportunityID: in.OpportunityID,
		Status:        entities.InvoiceStatusDraft,
		AmountPaid:    decimal.Zero,
		TaxRate:       in.TaxRate,
		DueDate:       in.DueDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	items := make([]entities.InvoiceLineItem, 0, len(in.LineItems))
	for i, li := range in.LineItems {
		name := strings.TrimSpace(li.Name)
		itemType := entities.LineItemType(li.Type)
		if name == "" || !itemType.Valid() || !li.Quantity.IsPositive() || li.UnitPrice.IsNegative() {
			return entities.Invoice{}, nil, ErrInvalidLineItem
		}
		items = append(items, entities.InvoiceLineItem{
			ID:           uuid.NewString(),
			InvoiceID:    inv.ID,
			Name:         name,
			Type:         itemType,
			Quantity:     li.Quantity,
			UnitPrice:    li.UnitPrice,
			DisplayOrder: i,
		})
	}

	inv = billing.ApplyInvoiceTotals(inv, items, now)
	created, err := u.repo.Create(ctx, inv, items)
	if err != nil {
		return entities.Invoice{}, nil, err
	}
	return created, items, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, []entities.InvoiceLineItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, nil, ErrInvalidInvoiceID
	}

	inv, items, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, nil, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, nil, ErrInvoiceNotFound
	}
	return inv, items, nil
}

func (u *InvoiceUseCase) ListByCompanyID(ctx context.Context, companyID string) ([]entities.Invoice, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	return u.repo.ListByCompanyID(ctx, companyID)
}

func (u *InvoiceUseCase) Send(ctx context.Context, id string, dueDate *time.Time) (entities.Invoice, error) {
	inv, _, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	updated, err := billing.SendInvoice(inv, dueDate, time.Now().UTC())
	if err != nil {
		return entities.Invoice{}, err
	}
	return u.repo.Update(ctx, updated)
}

func (u *InvoiceUseCase) Void(ctx context.Context, id string) (entities.Invoice, error) {
	inv, _, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	updated, err := billing.VoidInvoice(inv, time.Now().UTC())
	if err != nil {
		return entities.Invoice{}, err
	}
	return u.repo.Update(ctx, updated)
}

func (u *InvoiceUseCase) RefreshStatus(ctx context.Context, id string) (entities.Invoice, error) {
	inv, _, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := time.Now().UTC()
	derived := billing.DeriveInvoiceStatus(inv, now)
	if derived == inv.Status {
		return inv, nil
	}
	inv.Status = derived
	inv.UpdatedAt = now
	return u.repo.Update(ctx, inv)
}
