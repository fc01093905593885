package usecase

import (
	"context"
	"strings"
	"time"

	"fieldserve_crm/internal/domain/billing"
	"fieldserve_crm/internal/usecase/interfaces"
)

// IReportingUseCase exposes the AR dashboard computations over a company's
// invoice portfolio. All derivations are live; nothing is cached.

type IReportingUseCase interface {
	Aging(ctx context.Context, companyID string) (billing.AgingBuckets, error)
	StatusCounts(ctx context.Context, companyID string) (billing.StatusCounts, error)
	TopOutstanding(ctx context.Context, companyID string, limit int) ([]billing.ClientBalance, error)
}

type ReportingUseCase struct {
	invoiceRepo interfaces.IInvoiceRepository
}

var _ IReportingUseCase = (*ReportingUseCase)(nil)

func NewReportingUseCase(invoiceRepo interfaces.IInvoiceRepository) *ReportingUseCase {
	return &ReportingUseCase{invoiceRepo: invoiceRepo}
}

func (u *ReportingUseCase) Aging(ctx context.Context, companyID string) (billing.AgingBuckets, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return billing.AgingBuckets{}, ErrInvalidCompanyID
	}

	invoices, err := u.invoiceRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return billing.AgingBuckets{}, err
	}
	return billing.ComputeAgingBuckets(invoices, time.Now().UTC()), nil
}

func (u *ReportingUseCase) StatusCounts(ctx context.Context, companyID string) (billing.StatusCounts, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return billing.StatusCounts{}, ErrInvalidCompanyID
	}

	invoices, err := u.invoiceRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return billing.StatusCounts{}, err
	}
	return billing.ComputeStatusCounts(invoices, time.Now().UTC()), nil
}

func (u *ReportingUseCase) TopOutstanding(ctx context.Context, companyID string, limit int) ([]billing.ClientBalance, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}

	invoices, err := u.invoiceRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return billing.TopOutstanding(invoices, limit), nil
}
