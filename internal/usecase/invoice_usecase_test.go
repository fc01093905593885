package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldserve_crm/internal/domain/billing"
	"fieldserve_crm/internal/domain/entities"
	mock_interfaces "fieldserve_crm/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func invoiceItemInput(name, qty, price string) InvoiceLineItemInput {
	q, _ := decimal.NewFromString(qty)
	p, _ := decimal.NewFromString(price)
	return InvoiceLineItemInput{Name: name, Type: string(entities.LineItemTypeLabor), Quantity: q, UnitPrice: p}
}

func TestInvoiceUseCase_Create(t *testing.T) {
	t.Run("invalid company id", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil)
		_, _, err := uc.Create(context.Background(), CreateInvoiceInput{CompanyID: " "})
		if !errors.Is(err, ErrInvalidCompanyID) {
			t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
		}
	})

	t.Run("no line items", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil)
		_, _, err := uc.Create(context.Background(), CreateInvoiceInput{CompanyID: "co-1"})
		if !errors.Is(err, ErrInvoiceHasNoItems) {
			t.Fatalf("expected ErrInvoiceHasNoItems, got %v", err)
		}
	})

	t.Run("invalid line item", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil)
		_, _, err := uc.Create(context.Background(), CreateInvoiceInput{
			CompanyID: "co-1",
			LineItems: []InvoiceLineItemInput{invoiceItemInput(" ", "1", "10")},
		})
		if !errors.Is(err, ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}
	})

	t.Run("create success computes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{}), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice, items []entities.InvoiceLineItem) (entities.Invoice, error) {
				if inv.Status != entities.InvoiceStatusDraft {
					t.Fatalf("expected draft, got %s", inv.Status)
				}
				if !inv.Subtotal.Equal(decimal.NewFromFloat(249.99)) {
					t.Fatalf("expected subtotal 249.99, got %s", inv.Subtotal)
				}
				if !inv.Total.Equal(decimal.NewFromFloat(262.49)) {
					t.Fatalf("expected total 262.49, got %s", inv.Total)
				}
				if !inv.BalanceDue.Equal(inv.Total) {
					t.Fatalf("expected balance equal to total, got %s", inv.BalanceDue)
				}
				if len(items) != 1 || items[0].InvoiceID != inv.ID {
					t.Fatalf("unexpected items: %+v", items)
				}
				return inv, nil
			},
		)

		_, _, err := uc.Create(context.Background(), CreateInvoiceInput{
			CompanyID: "co-1",
			TaxRate:   decimal.NewFromFloat(0.05),
			LineItems: []InvoiceLineItemInput{invoiceItemInput("Repair", "1", "249.99")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInvoiceUseCase_Send(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, nil, nil)

		_, err := uc.Send(context.Background(), "inv-1", nil)
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("void invoice rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusVoid}, nil, nil)

		_, err := uc.Send(context.Background(), "inv-1", nil)
		if !errors.Is(err, billing.ErrInvoiceVoid) {
			t.Fatalf("expected ErrInvoiceVoid, got %v", err)
		}
	})

	t.Run("success stamps sent_at and due date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo)

		total := decimal.NewFromInt(100)
		existing := entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusDraft, Total: total, BalanceDue: total}
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(existing, nil, nil)
		due := time.Now().UTC().Add(30 * 24 * time.Hour)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.SentAt == nil || inv.DueDate == nil {
					t.Fatalf("expected sent_at and due_date stamped")
				}
				if inv.Status != entities.InvoiceStatusAwaitingPayment {
					t.Fatalf("expected awaiting_payment, got %s", inv.Status)
				}
				return inv, nil
			},
		)

		if _, err := uc.Send(context.Background(), "inv-1", &due); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInvoiceUseCase_Void(t *testing.T) {
	t.Run("double void rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusVoid}, nil, nil)

		_, err := uc.Void(context.Background(), "inv-1")
		if !errors.Is(err, billing.ErrInvoiceVoid) {
			t.Fatalf("expected ErrInvoiceVoid, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSent}, nil, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.Status != entities.InvoiceStatusVoid {
					t.Fatalf("expected void, got %s", inv.Status)
				}
				return inv, nil
			},
		)

		res, err := uc.Void(context.Background(), "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.InvoiceStatusVoid {
			t.Fatalf("expected void, got %s", res.Status)
		}
	})
}

func TestInvoiceUseCase_RefreshStatus(t *testing.T) {
	t.Run("no-op when derived matches stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo)

		existing := entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusDraft}
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(existing, nil, nil)

		res, err := uc.RefreshStatus(context.Background(), "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.InvoiceStatusDraft {
			t.Fatalf("expected draft, got %s", res.Status)
		}
	})

	t.Run("stale stored status flips to past_due", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo)

		past := time.Now().UTC().Add(-72 * time.Hour)
		sent := time.Now().UTC().Add(-240 * time.Hour)
		total := decimal.NewFromInt(100)
		existing := entities.Invoice{
			ID:         "inv-1",
			Status:     entities.InvoiceStatusAwaitingPayment,
			Total:      total,
			BalanceDue: total,
			DueDate:    &past,
			SentAt:     &sent,
		}
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(existing, nil, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.Status != entities.InvoiceStatusPastDue {
					t.Fatalf("expected past_due, got %s", inv.Status)
				}
				return inv, nil
			},
		)

		res, err := uc.RefreshStatus(context.Background(), "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.InvoiceStatusPastDue {
			t.Fatalf("expected past_due, got %s", res.Status)
		}
	})
}
