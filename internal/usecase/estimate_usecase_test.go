package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldserve_crm/internal/domain/billing"
	"fieldserve_crm/internal/domain/entities"
	mock_interfaces "fieldserve_crm/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func estimateItemInput(name string, qty, price string) EstimateLineItemInput {
	q, _ := decimal.NewFromString(qty)
	p, _ := decimal.NewFromString(price)
	return EstimateLineItemInput{Name: name, Type: string(entities.LineItemTypeLabor), Quantity: q, UnitPrice: p, Taxable: true}
}

func TestEstimateUseCase_Create(t *testing.T) {
	t.Run("invalid company id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		_, _, err := uc.Create(context.Background(), CreateEstimateInput{CompanyID: " "})
		if !errors.Is(err, ErrInvalidCompanyID) {
			t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
		}
	})

	t.Run("negative tax rate", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		_, _, err := uc.Create(context.Background(), CreateEstimateInput{CompanyID: "co-1", TaxRate: decimal.NewFromFloat(-0.01)})
		if !errors.Is(err, ErrInvalidTaxRate) {
			t.Fatalf("expected ErrInvalidTaxRate, got %v", err)
		}
	})

	t.Run("discount above 100", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		_, _, err := uc.Create(context.Background(), CreateEstimateInput{CompanyID: "co-1", DiscountPercent: decimal.NewFromInt(101)})
		if !errors.Is(err, ErrInvalidDiscount) {
			t.Fatalf("expected ErrInvalidDiscount, got %v", err)
		}
	})

	t.Run("no line items", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		_, _, err := uc.Create(context.Background(), CreateEstimateInput{CompanyID: "co-1"})
		if !errors.Is(err, ErrEstimateHasNoItems) {
			t.Fatalf("expected ErrEstimateHasNoItems, got %v", err)
		}
	})

	t.Run("invalid line item", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		bad := estimateItemInput("Labor", "0", "10")
		_, _, err := uc.Create(context.Background(), CreateEstimateInput{CompanyID: "co-1", LineItems: []EstimateLineItemInput{bad}})
		if !errors.Is(err, ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}
	})

	t.Run("create success computes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{}), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate, items []entities.EstimateLineItem) (entities.Estimate, error) {
				if e.Status != entities.EstimateStatusDraft || e.Version != 1 {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if !e.Subtotal.Equal(decimal.NewFromInt(100)) {
					t.Fatalf("expected subtotal 100, got %s", e.Subtotal)
				}
				if !e.TaxAmount.Equal(decimal.NewFromFloat(7.2)) {
					t.Fatalf("expected tax 7.2, got %s", e.TaxAmount)
				}
				if !e.Total.Equal(decimal.NewFromFloat(97.2)) {
					t.Fatalf("expected total 97.2, got %s", e.Total)
				}
				if len(items) != 1 || items[0].EstimateID != e.ID {
					t.Fatalf("unexpected items: %+v", items)
				}
				return e, nil
			},
		)

		_, _, err := uc.Create(context.Background(), CreateEstimateInput{
			CompanyID:       "co-1",
			TaxRate:         decimal.NewFromFloat(0.08),
			DiscountPercent: decimal.NewFromInt(10),
			LineItems:       []EstimateLineItemInput{estimateItemInput("Labor", "2", "50")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("product template seeds line item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, productRepo)

		productID := "prod-1"
		productRepo.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{
			ID:           "prod-1",
			Name:         "Service Call",
			Type:         entities.LineItemTypeLabor,
			DefaultPrice: decimal.NewFromInt(95),
			Taxable:      true,
			Active:       true,
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate, items []entities.EstimateLineItem) (entities.Estimate, error) {
				if items[0].Name != "Service Call" || !items[0].UnitPrice.Equal(decimal.NewFromInt(95)) || !items[0].Taxable {
					t.Fatalf("expected template fields, got %+v", items[0])
				}
				return e, nil
			},
		)

		_, _, err := uc.Create(context.Background(), CreateEstimateInput{
			CompanyID: "co-1",
			LineItems: []EstimateLineItemInput{{ProductID: &productID, Quantity: decimal.NewFromInt(1)}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("inactive product rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, productRepo)

		productID := "prod-1"
		productRepo.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", Active: false}, nil)

		_, _, err := uc.Create(context.Background(), CreateEstimateInput{
			CompanyID: "co-1",
			LineItems: []EstimateLineItemInput{{ProductID: &productID, Quantity: decimal.NewFromInt(1)}},
		})
		if !errors.Is(err, ErrProductInactive) {
			t.Fatalf("expected ErrProductInactive, got %v", err)
		}
	})
}

func TestEstimateUseCase_StatusFlows(t *testing.T) {
	cases := []struct {
		name string
		from entities.EstimateStatus
		call func(uc *EstimateUseCase, ctx context.Context, id string) (entities.Estimate, error)
		want entities.EstimateStatus
	}{
		{name: "send", from: entities.EstimateStatusDraft, call: (*EstimateUseCase).Send, want: entities.EstimateStatusSent},
		{name: "mark viewed", from: entities.EstimateStatusSent, call: (*EstimateUseCase).MarkViewed, want: entities.EstimateStatusViewed},
		{name: "approve", from: entities.EstimateStatusViewed, call: (*EstimateUseCase).Approve, want: entities.EstimateStatusApproved},
		{name: "decline", from: entities.EstimateStatusSent, call: (*EstimateUseCase).Decline, want: entities.EstimateStatusDeclined},
		{name: "expire", from: entities.EstimateStatusViewed, call: (*EstimateUseCase).Expire, want: entities.EstimateStatusExpired},
	}

	for _, tc := range cases {
		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
			uc := NewEstimateUseCase(repo, nil, nil)

			repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: tc.from}, nil, nil)
			repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e entities.Estimate, _ []entities.EstimateLineItem) (entities.Estimate, error) {
					if e.Status != tc.want {
						t.Fatalf("expected %s, got %s", tc.want, e.Status)
					}
					return e, nil
				},
			)

			res, err := tc.call(uc, context.Background(), "est-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected %s got %s", tc.want, res.Status)
			}
		})
	}

	t.Run("send from non-draft rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusApproved}, nil, nil)

		_, err := uc.Send(context.Background(), "est-1")
		if !errors.Is(err, billing.ErrIllegalStatusTransition) {
			t.Fatalf("expected ErrIllegalStatusTransition, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil, nil)

		_, err := uc.Approve(context.Background(), "est-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}

func TestEstimateUseCase_UpdateLineItems(t *testing.T) {
	t.Run("terminal estimate rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusConverted}, nil, nil)

		_, _, err := uc.UpdateLineItems(context.Background(), "est-1", []EstimateLineItemInput{estimateItemInput("Labor", "1", "10")})
		if !errors.Is(err, billing.ErrIllegalStatusTransition) {
			t.Fatalf("expected ErrIllegalStatusTransition, got %v", err)
		}
	})

	t.Run("empty items rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusDraft}, nil, nil)

		_, _, err := uc.UpdateLineItems(context.Background(), "est-1", nil)
		if !errors.Is(err, ErrEstimateHasNoItems) {
			t.Fatalf("expected ErrEstimateHasNoItems, got %v", err)
		}
	})

	t.Run("success recomputes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil)
		existing := entities.Estimate{ID: "est-1", Status: entities.EstimateStatusDraft, TaxRate: decimal.NewFromFloat(0.1)}
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(existing, nil, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate, items []entities.EstimateLineItem) (entities.Estimate, error) {
				if !e.Subtotal.Equal(decimal.NewFromInt(200)) {
					t.Fatalf("expected subtotal 200, got %s", e.Subtotal)
				}
				if !e.Total.Equal(decimal.NewFromInt(220)) {
					t.Fatalf("expected total 220, got %s", e.Total)
				}
				if len(items) != 1 {
					t.Fatalf("unexpected items: %+v", items)
				}
				return e, nil
			},
		)

		_, _, err := uc.UpdateLineItems(context.Background(), "est-1", []EstimateLineItemInput{estimateItemInput("Labor", "4", "50")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_ConvertToInvoice(t *testing.T) {
	t.Run("only approved converts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusSent}, nil, nil)

		_, _, err := uc.ConvertToInvoice(context.Background(), "est-1", nil)
		if !errors.Is(err, billing.ErrIllegalStatusTransition) {
			t.Fatalf("expected ErrIllegalStatusTransition, got %v", err)
		}
	})

	t.Run("success folds discounts and drops optional items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewEstimateUseCase(repo, invoiceRepo, nil)

		clientID := "cl-1"
		approved := entities.Estimate{
			ID:              "est-1",
			CompanyID:       "co-1",
			ClientID:        &clientID,
			Status:          entities.EstimateStatusApproved,
			TaxRate:         decimal.NewFromFloat(0.08),
			DiscountPercent: decimal.NewFromInt(10),
		}
		items := []entities.EstimateLineItem{
			{ID: "li-1", EstimateID: "est-1", Name: "Labor", Type: entities.LineItemTypeLabor, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(50), Taxable: true},
			{ID: "li-2", EstimateID: "est-1", Name: "Extra", Type: entities.LineItemTypeOther, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(500), Optional: true},
		}
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(approved, items, nil)
		invoiceRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice, invItems []entities.InvoiceLineItem) (entities.Invoice, error) {
				if inv.EstimateID == nil || *inv.EstimateID != "est-1" {
					t.Fatalf("expected estimate link, got %+v", inv)
				}
				if len(invItems) != 1 {
					t.Fatalf("expected optional item dropped, got %d items", len(invItems))
				}
				if !invItems[0].UnitPrice.Equal(decimal.NewFromInt(45)) {
					t.Fatalf("expected discounted unit price 45, got %s", invItems[0].UnitPrice)
				}
				if !inv.Total.Equal(decimal.NewFromFloat(97.2)) {
					t.Fatalf("expected invoice total 97.2, got %s", inv.Total)
				}
				return inv, nil
			},
		)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate, _ []entities.EstimateLineItem) (entities.Estimate, error) {
				if e.Status != entities.EstimateStatusConverted {
					t.Fatalf("expected converted, got %s", e.Status)
				}
				return e, nil
			},
		)

		est, inv, err := uc.ConvertToInvoice(context.Background(), "est-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if est.Status != entities.EstimateStatusConverted || inv.ID == "" {
			t.Fatalf("unexpected result: %+v %+v", est, inv)
		}
	})
}
