package pipeline

import (
	"errors"
	"testing"
	"time"

	"fieldserve_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func opp(stage entities.Stage, value string) entities.Opportunity {
	o := entities.Opportunity{
		ID:        "opp-1",
		CompanyID: "co-1",
		Stage:     stage,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if value != "" {
		v := dec(value)
		o.EstimatedValue = &v
	}
	return o
}

func TestStageSuccessorClosure(t *testing.T) {
	for _, s := range entities.Stages() {
		next, ok := s.Successor()
		if s.IsTerminal() {
			if ok {
				t.Fatalf("terminal stage %s has successor %s", s, next)
			}
			continue
		}
		if !ok {
			t.Fatalf("non-terminal stage %s has no successor", s)
		}
		if !next.Valid() {
			t.Fatalf("successor of %s is outside the closed set: %s", s, next)
		}
	}
}

func TestParseStage(t *testing.T) {
	if _, err := entities.ParseStage("quoted"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := entities.ParseStage("proposal"); !errors.Is(err, entities.ErrInvalidStage) {
		t.Fatalf("expected ErrInvalidStage, got %v", err)
	}
}

func TestWeightedValue(t *testing.T) {
	t.Run("quoted stage carries 60 percent", func(t *testing.T) {
		got := WeightedValue(opp(entities.StageQuoted, "10000"))
		if !got.Equal(dec("6000")) {
			t.Fatalf("expected 6000, got %s", got)
		}
	})

	t.Run("missing value defaults to zero", func(t *testing.T) {
		got := WeightedValue(opp(entities.StageNegotiation, ""))
		if !got.IsZero() {
			t.Fatalf("expected 0, got %s", got)
		}
	})

	t.Run("bounded by estimated value", func(t *testing.T) {
		for _, s := range entities.Stages() {
			o := opp(s, "1234.56")
			wv := WeightedValue(o)
			if wv.IsNegative() {
				t.Fatalf("stage %s: weighted value negative: %s", s, wv)
			}
			if wv.GreaterThan(*o.EstimatedValue) {
				t.Fatalf("stage %s: weighted value %s exceeds estimated value", s, wv)
			}
		}
	})
}

func TestDaysInStage(t *testing.T) {
	o := opp(entities.StageQuoting, "")

	t.Run("counts whole days since creation", func(t *testing.T) {
		now := o.CreatedAt.Add(49 * time.Hour)
		if got := DaysInStage(o, now); got != 2 {
			t.Fatalf("expected 2, got %d", got)
		}
	})

	t.Run("prefers last activity", func(t *testing.T) {
		touched := o.CreatedAt.Add(5 * 24 * time.Hour)
		o2 := o
		o2.LastActivityAt = &touched
		if got := DaysInStage(o2, touched.Add(24*time.Hour)); got != 1 {
			t.Fatalf("expected 1, got %d", got)
		}
	})

	t.Run("clamps to zero when now precedes reference", func(t *testing.T) {
		if got := DaysInStage(o, o.CreatedAt.Add(-time.Hour)); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})
}

func TestIsStale(t *testing.T) {
	o := opp(entities.StageQuoting, "")
	threshold, ok := entities.StageQuoting.StalenessDays()
	if !ok {
		t.Fatalf("quoting should have a staleness threshold")
	}

	if IsStale(o, o.CreatedAt.AddDate(0, 0, threshold)) {
		t.Fatalf("at the threshold should not be stale")
	}
	if !IsStale(o, o.CreatedAt.AddDate(0, 0, threshold+1)) {
		t.Fatalf("one day past the threshold should be stale")
	}

	t.Run("terminal stages never go stale", func(t *testing.T) {
		won := opp(entities.StageWon, "")
		if IsStale(won, won.CreatedAt.AddDate(10, 0, 0)) {
			t.Fatalf("won opportunity reported stale")
		}
	})
}

func TestRequestStageChange(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("invalid target stage", func(t *testing.T) {
		_, _, err := RequestStageChange(opp(entities.StageQuoting, ""), "proposal", "user-1", now, "")
		if !errors.Is(err, entities.ErrInvalidStage) {
			t.Fatalf("expected ErrInvalidStage, got %v", err)
		}
	})

	t.Run("terminal stages are locked", func(t *testing.T) {
		for _, from := range []entities.Stage{entities.StageWon, entities.StageLost} {
			for _, to := range entities.Stages() {
				_, _, err := RequestStageChange(opp(from, ""), to, "user-1", now, "reason")
				if !errors.Is(err, ErrIllegalTransition) {
					t.Fatalf("%s -> %s: expected ErrIllegalTransition, got %v", from, to, err)
				}
			}
		}
	})

	t.Run("lost requires a loss reason", func(t *testing.T) {
		o := opp(entities.StageNegotiation, "")
		_, _, err := RequestStageChange(o, entities.StageLost, "user-1", now, "   ")
		if !errors.Is(err, ErrMissingLossReason) {
			t.Fatalf("expected ErrMissingLossReason, got %v", err)
		}
		if o.Stage != entities.StageNegotiation || o.LossReason != nil {
			t.Fatalf("input mutated on failure: %+v", o)
		}
	})

	t.Run("lost with reason succeeds and records one transition", func(t *testing.T) {
		o := opp(entities.StageNegotiation, "")
		updated, tr, err := RequestStageChange(o, entities.StageLost, "user-1", now, "went with competitor")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Stage != entities.StageLost {
			t.Fatalf("expected lost, got %s", updated.Stage)
		}
		if updated.LossReason == nil || *updated.LossReason != "went with competitor" {
			t.Fatalf("loss reason not set: %+v", updated.LossReason)
		}
		if updated.LastActivityAt == nil || !updated.LastActivityAt.Equal(now) {
			t.Fatalf("activity not refreshed")
		}
		if tr.ID == "" || tr.OpportunityID != o.ID || tr.FromStage != entities.StageNegotiation || tr.ToStage != entities.StageLost || tr.Actor != "user-1" {
			t.Fatalf("unexpected transition: %+v", tr)
		}
	})

	t.Run("backward moves and skips are allowed", func(t *testing.T) {
		if _, _, err := RequestStageChange(opp(entities.StageNegotiation, ""), entities.StageNewLead, "user-1", now, ""); err != nil {
			t.Fatalf("backward move rejected: %v", err)
		}
		if _, _, err := RequestStageChange(opp(entities.StageNewLead, ""), entities.StageNegotiation, "user-1", now, ""); err != nil {
			t.Fatalf("skip rejected: %v", err)
		}
	})

	t.Run("empty actor", func(t *testing.T) {
		_, _, err := RequestStageChange(opp(entities.StageQuoted, ""), entities.StageFollowUp, " ", now, "")
		if !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})
}

func TestTouchActivity(t *testing.T) {
	o := opp(entities.StageQuoted, "")

	updated, err := TouchActivity(o, o.CreatedAt.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.LastActivityAt == nil || updated.LastActivityAt.Before(o.CreatedAt) {
		t.Fatalf("last activity not refreshed")
	}

	if _, err := TouchActivity(o, o.CreatedAt.Add(-time.Minute)); !errors.Is(err, ErrActivityBeforeOpen) {
		t.Fatalf("expected ErrActivityBeforeOpen, got %v", err)
	}
}
