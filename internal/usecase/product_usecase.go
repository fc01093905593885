package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"fieldserve_crm/internal/domain/entities"
	"fieldserve_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrInvalidProductName  = errors.New("invalid product name")
	ErrInvalidProductType  = errors.New("invalid product type")
	ErrInvalidProductPrice = errors.New("invalid product price")
)

// CreateProductInput is the command to add a catalog template.
type CreateProductInput struct {
	CompanyID    string
	Name         string
	Type         string
	DefaultPrice decimal.Decimal
	UnitCost     decimal.Decimal
	Taxable      bool
}

// IProductUseCase manages the catalog templates that seed line items.

type IProductUseCase interface {
	Create(ctx context.Context, in CreateProductInput) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]entities.Product, error)
	Deactivate(ctx context.Context, id string) (entities.Product, error)
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (u *ProductUseCase) Create(ctx context.Context, in CreateProductInput) (entities.Product, error) {
	in.CompanyID = strings.TrimSpace(in.CompanyID)
	if in.CompanyID == "" {
		return entities.Product{}, ErrInvalidCompanyID
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Product{}, ErrInvalidProductName
	}
	itemType := entities.LineItemType(strings.TrimSpace(in.Type))
	if !itemType.Valid() {
		return entities.Product{}, ErrInvalidProductType
	}
	if in.DefaultPrice.IsNegative() || in.UnitCost.IsNegative() {
		return entities.Product{}, ErrInvalidProductPrice
	}

	now := time.Now().UTC()
	p := entities.Product{
		ID:           uuid.NewString(),
		CompanyID:    in.CompanyID,
		Name:         in.Name,
		Type:         itemType,
		DefaultPrice: in.DefaultPrice,
		UnitCost:     in.UnitCost,
		Taxable:      in.Taxable,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) ListByCompanyID(ctx context.Context, companyID string) ([]entities.Product, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	return u.repo.ListByCompanyID(ctx, companyID)
}

func (u *ProductUseCase) Deactivate(ctx context.Context, id string) (entities.Product, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if !p.Active {
		return p, nil
	}
	p.Active = false
	p.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, p)
}
