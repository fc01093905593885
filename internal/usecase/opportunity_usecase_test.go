package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldserve_crm/internal/domain/entities"
	"fieldserve_crm/internal/domain/pipeline"
	mock_interfaces "fieldserve_crm/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestOpportunityUseCase_Create(t *testing.T) {
	t.Run("invalid company id", func(t *testing.T) {
		uc := NewOpportunityUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreateOpportunityInput{CompanyID: "   ", ContactName: "Ana"})
		if !errors.Is(err, ErrInvalidCompanyID) {
			t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
		}
	})

	t.Run("invalid contact name", func(t *testing.T) {
		uc := NewOpportunityUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreateOpportunityInput{CompanyID: "co-1", ContactName: " "})
		if !errors.Is(err, ErrInvalidContactName) {
			t.Fatalf("expected ErrInvalidContactName, got %v", err)
		}
	})

	t.Run("negative estimated value", func(t *testing.T) {
		uc := NewOpportunityUseCase(nil, nil)
		neg := decimal.NewFromInt(-1)
		_, err := uc.Create(context.Background(), CreateOpportunityInput{CompanyID: "co-1", ContactName: "Ana", EstimatedValue: &neg})
		if !errors.Is(err, ErrInvalidEstimatedValue) {
			t.Fatalf("expected ErrInvalidEstimatedValue, got %v", err)
		}
	})

	t.Run("create success opens at new_lead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOpportunityRepository(ctrl)
		uc := NewOpportunityUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Opportunity{})).DoAndReturn(
			func(_ context.Context, o entities.Opportunity) (entities.Opportunity, error) {
				if o.ID == "" || o.CompanyID != "co-1" || o.ContactName != "Ana" {
					t.Fatalf("unexpected opportunity: %+v", o)
				}
				if o.Stage != entities.StageNewLead {
					t.Fatalf("expected new_lead, got %s", o.Stage)
				}
				if o.CreatedAt.IsZero() || o.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return o, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateOpportunityInput{CompanyID: " co-1 ", ContactName: " Ana "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestOpportunityUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOpportunityUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidOpportunityID) {
			t.Fatalf("expected ErrInvalidOpportunityID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOpportunityRepository(ctrl)
		uc := NewOpportunityUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "op-1").Return(entities.Opportunity{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "op-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOpportunityRepository(ctrl)
		uc := NewOpportunityUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "op-1").Return(entities.Opportunity{}, nil)

		_, err := uc.GetByID(context.Background(), "op-1")
		if !errors.Is(err, ErrOpportunityNotFound) {
			t.Fatalf("expected ErrOpportunityNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOpportunityRepository(ctrl)
		uc := NewOpportunityUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "op-1").Return(entities.Opportunity{ID: "op-1"}, nil)

		res, err := uc.GetByID(context.Background(), " op-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "op-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestOpportunityUseCase_ChangeStage(t *testing.T) {
	base := entities.Opportunity{
		ID:        "op-1",
		CompanyID: "co-1",
		Stage:     entities.StageNewLead,
		CreatedAt: time.Now().UTC().Add(-48 * time.Hour),
	}

	t.Run("invalid target stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOpportunityRepository(ctrl)
		uc := NewOpportunityUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "op-1").Return(base, nil)

		_, _, err := uc.ChangeStage(context.Background(), "op-1", "bogus", "user-1", "")
		if !errors.Is(err, entities.ErrInvalidStage) {
			t.Fatalf("expected ErrInvalidStage, got %v", err)
		}
	})

	t.Run("lost without reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOpportunityRepository(ctrl)
		uc := NewOpportunityUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "op-1").Return(base, nil)

		_, _, err := uc.ChangeStage(context.Background(), "op-1", "lost", "user-1", "  ")
		if !errors.Is(err, pipeline.ErrMissingLossReason) {
			t.Fatalf("expected ErrMissingLossReason, got %v", err)
		}
	})

	t.Run("terminal stage locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOpportunityRepository(ctrl)
		uc := NewOpportunityUseCase(repo, nil)
		won := base
		won.Stage = entities.StageWon
		repo.EXPECT().GetByID(gomock.Any(), "op-1").Return(won, nil)

		_, _, err := uc.ChangeStage(context.Background(), "op-1", "negotiation", "user-1", "")
		if !errors.Is(err, pipeline.ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("transition append error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOpportunityRepository(ctrl)
		transitions := mock_interfaces.NewMockIStageTransitionRepository(ctrl)
		uc := NewOpportunityUseCase(repo, transitions)

		repo.EXPECT().GetByID(gomock.Any(), "op-1").Return(base, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Opportunity) (entities.Opportunity, error) { return o, nil },
		)
		transitions.EXPECT().Append(gomock.Any(), gomock.Any()).Return(entities.StageTransition{}, errors.New("db"))

		_, _, err := uc.ChangeStage(context.Background(), "op-1", "qualifying", "user-1", "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success records audit row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOpportunityRepository(ctrl)
		transitions := mock_interfaces.NewMockIStageTransitionRepository(ctrl)
		uc := NewOpportunityUseCase(repo, transitions)

		repo.EXPECT().GetByID(gomock.Any(), "op-1").Return(base, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Opportunity{})).DoAndReturn(
			func(_ context.Context, o entities.Opportunity) (entities.Opportunity, error) {
				if o.Stage != entities.StageQualifying {
					t.Fatalf("expected qualifying, got %s", o.Stage)
				}
				if o.LastActivityAt == nil {
					t.Fatalf("expected activity refresh")
				}
				return o, nil
			},
		)
		transitions.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.StageTransition{})).DoAndReturn(
			func(_ context.Context, tr entities.StageTransition) (entities.StageTransition, error) {
				if tr.OpportunityID != "op-1" || tr.FromStage != entities.StageNewLead || tr.ToStage != entities.StageQualifying {
					t.Fatalf("unexpected transition: %+v", tr)
				}
				if tr.Actor != "user-1" {
					t.Fatalf("expected actor user-1, got %s", tr.Actor)
				}
				return tr, nil
			},
		)

		o, tr, err := uc.ChangeStage(context.Background(), " op-1 ", "qualifying", " user-1 ", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Stage != entities.StageQualifying || tr.ID == "" {
			t.Fatalf("unexpected result: %+v %+v", o, tr)
		}
	})
}

func TestOpportunityUseCase_TouchActivity(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOpportunityRepository(ctrl)
		uc := NewOpportunityUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "op-1").Return(entities.Opportunity{}, nil)

		_, err := uc.TouchActivity(context.Background(), "op-1")
		if !errors.Is(err, ErrOpportunityNotFound) {
			t.Fatalf("expected ErrOpportunityNotFound, got %v", err)
		}
	})

	t.Run("success refreshes activity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOpportunityRepository(ctrl)
		uc := NewOpportunityUseCase(repo, nil)
		existing := entities.Opportunity{ID: "op-1", Stage: entities.StageQuoting, CreatedAt: time.Now().UTC().Add(-time.Hour)}
		repo.EXPECT().GetByID(gomock.Any(), "op-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Opportunity) (entities.Opportunity, error) {
				if o.LastActivityAt == nil {
					t.Fatalf("expected last activity set")
				}
				return o, nil
			},
		)

		if _, err := uc.TouchActivity(context.Background(), "op-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOpportunityUseCase_Metrics(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOpportunityUseCase(nil, nil)
		_, _, err := uc.Metrics(context.Background(), "")
		if !errors.Is(err, ErrInvalidOpportunityID) {
			t.Fatalf("expected ErrInvalidOpportunityID, got %v", err)
		}
	})

	t.Run("derives weighted value and staleness", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOpportunityRepository(ctrl)
		uc := NewOpportunityUseCase(repo, nil)

		value := decimal.NewFromInt(10000)
		existing := entities.Opportunity{
			ID:             "op-1",
			Stage:          entities.StageQuoted,
			EstimatedValue: &value,
			CreatedAt:      time.Now().UTC().Add(-72 * time.Hour),
		}
		repo.EXPECT().GetByID(gomock.Any(), "op-1").Return(existing, nil)

		_, m, err := uc.Metrics(context.Background(), "op-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !m.WeightedValue.Equal(decimal.NewFromInt(6000)) {
			t.Fatalf("expected weighted 6000, got %s", m.WeightedValue)
		}
		if m.DaysInStage != 3 {
			t.Fatalf("expected 3 days in stage, got %d", m.DaysInStage)
		}
		if m.Stale {
			t.Fatalf("expected not stale at 3 days for quoted")
		}
	})
}

func TestOpportunityUseCase_ListTransitions(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOpportunityUseCase(nil, nil)
		_, err := uc.ListTransitions(context.Background(), " ")
		if !errors.Is(err, ErrInvalidOpportunityID) {
			t.Fatalf("expected ErrInvalidOpportunityID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transitions := mock_interfaces.NewMockIStageTransitionRepository(ctrl)
		uc := NewOpportunityUseCase(nil, transitions)
		expected := []entities.StageTransition{{ID: "tr-1", OpportunityID: "op-1"}}
		transitions.EXPECT().ListByOpportunityID(gomock.Any(), "op-1").Return(expected, nil)

		res, err := uc.ListTransitions(context.Background(), " op-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "tr-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
