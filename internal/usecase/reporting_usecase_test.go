package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldserve_crm/internal/domain/entities"
	mock_interfaces "fieldserve_crm/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func receivable(id, clientID string, balance string, overdueDays int) entities.Invoice {
	b, _ := decimal.NewFromString(balance)
	due := time.Now().UTC().Add(-time.Duration(overdueDays) * 24 * time.Hour)
	sent := due.Add(-30 * 24 * time.Hour)
	var client *string
	if clientID != "" {
		client = &clientID
	}
	return entities.Invoice{
		ID:         id,
		CompanyID:  "co-1",
		ClientID:   client,
		Status:     entities.InvoiceStatusAwaitingPayment,
		Total:      b,
		BalanceDue: b,
		DueDate:    &due,
		SentAt:     &sent,
	}
}

func TestReportingUseCase_Aging(t *testing.T) {
	t.Run("invalid company id", func(t *testing.T) {
		uc := NewReportingUseCase(nil)
		_, err := uc.Aging(context.Background(), " ")
		if !errors.Is(err, ErrInvalidCompanyID) {
			t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewReportingUseCase(invoiceRepo)
		invoiceRepo.EXPECT().ListByCompanyID(gomock.Any(), "co-1").Return(nil, errors.New("db"))

		_, err := uc.Aging(context.Background(), "co-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("buckets by days overdue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewReportingUseCase(invoiceRepo)

		invoices := []entities.Invoice{
			receivable("inv-1", "cl-1", "100", 5),
			receivable("inv-2", "cl-1", "200", 45),
			receivable("inv-3", "cl-2", "300", 120),
		}
		invoiceRepo.EXPECT().ListByCompanyID(gomock.Any(), "co-1").Return(invoices, nil)

		buckets, err := uc.Aging(context.Background(), " co-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !buckets.Days0To30.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("expected 100 in 0-30, got %s", buckets.Days0To30)
		}
		if !buckets.Days31To60.Equal(decimal.NewFromInt(200)) {
			t.Fatalf("expected 200 in 31-60, got %s", buckets.Days31To60)
		}
		if !buckets.Days90Plus.Equal(decimal.NewFromInt(300)) {
			t.Fatalf("expected 300 in 90+, got %s", buckets.Days90Plus)
		}
	})
}

func TestReportingUseCase_StatusCounts(t *testing.T) {
	t.Run("counts live statuses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewReportingUseCase(invoiceRepo)

		overdue := receivable("inv-1", "cl-1", "150", 10)
		waiting := receivable("inv-2", "cl-2", "250", 0)
		future := time.Now().UTC().Add(240 * time.Hour)
		waiting.DueDate = &future
		invoiceRepo.EXPECT().ListByCompanyID(gomock.Any(), "co-1").Return([]entities.Invoice{overdue, waiting}, nil)

		counts, err := uc.StatusCounts(context.Background(), "co-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if counts.Overdue != 1 || counts.Awaiting != 1 || counts.Paid != 0 {
			t.Fatalf("unexpected counts: %+v", counts)
		}
		if !counts.OutstandingTotal.Equal(decimal.NewFromInt(400)) {
			t.Fatalf("expected outstanding 400, got %s", counts.OutstandingTotal)
		}
	})
}

func TestReportingUseCase_TopOutstanding(t *testing.T) {
	t.Run("ranks client balances", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewReportingUseCase(invoiceRepo)

		invoices := []entities.Invoice{
			receivable("inv-1", "cl-1", "100", 5),
			receivable("inv-2", "cl-1", "250", 15),
			receivable("inv-3", "cl-2", "300", 5),
		}
		invoiceRepo.EXPECT().ListByCompanyID(gomock.Any(), "co-1").Return(invoices, nil)

		top, err := uc.TopOutstanding(context.Background(), "co-1", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(top) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(top))
		}
		if top[0].ClientID != "cl-1" || !top[0].Balance.Equal(decimal.NewFromInt(350)) {
			t.Fatalf("unexpected leader: %+v", top[0])
		}
		if top[1].ClientID != "cl-2" {
			t.Fatalf("unexpected runner-up: %+v", top[1])
		}
	})
}
