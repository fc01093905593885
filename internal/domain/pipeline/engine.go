// Package pipeline implements the sales-pipeline rules: weighted value,
// staleness and stage-transition validation. It is a pure computation layer:
// every function takes a snapshot and returns a new value or a typed failure,
// holds no state and performs no I/O. Callers must serialize concurrent
// mutations against the same opportunity.
package pipeline

import (
	"errors"
	"strings"
	"time"

	"fieldserve_crm/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrIllegalTransition  = errors.New("illegal stage transition")
	ErrMissingLossReason  = errors.New("missing loss reason")
	ErrInvalidActor       = errors.New("invalid actor")
	ErrActivityBeforeOpen = errors.New("activity timestamp precedes creation")
)

// WeightedValue scales the opportunity's estimated value by the current
// stage's win probability. A missing estimated value counts as zero.
func WeightedValue(o entities.Opportunity) decimal.Decimal {
	if o.EstimatedValue == nil {
		return decimal.Zero
	}
	prob := decimal.NewFromInt(int64(o.Stage.WinProbability()))
	return o.EstimatedValue.Mul(prob).Div(decimal.NewFromInt(100))
}

// DaysInStage returns the whole days since the opportunity's last activity
// (or creation, when it was never touched). Clamped to 0 when now precedes
// the reference timestamp.
func DaysInStage(o entities.Opportunity, now time.Time) int {
	ref := o.CreatedAt
	if o.LastActivityAt != nil {
		ref = *o.LastActivityAt
	}
	if !now.After(ref) {
		return 0
	}
	return int(now.Sub(ref) / (24 * time.Hour))
}

// IsStale reports whether the opportunity has sat in its stage longer than
// the stage's staleness threshold. Terminal stages never go stale.
func IsStale(o entities.Opportunity, now time.Time) bool {
	threshold, ok := o.Stage.StalenessDays()
	if !ok {
		return false
	}
	return DaysInStage(o, now) > threshold
}

// RequestStageChange validates and applies a stage change.
//
// Rules:
//   - no transition out of a terminal stage (won/lost)
//   - backward moves and skips are allowed; stages are advisory
//   - moving to lost requires a loss reason
//
// On success it returns the updated opportunity (stage set, activity
// refreshed) and the immutable audit record for the caller to persist.
// On failure the input is left untouched.
func RequestStageChange(o entities.Opportunity, toStage entities.Stage, actor string, now time.Time, lossReason string) (entities.Opportunity, entities.StageTransition, error) {
	if !toStage.Valid() {
		return o, entities.StageTransition{}, entities.ErrInvalidStage
	}
	if strings.TrimSpace(actor) == "" {
		return o, entities.StageTransition{}, ErrInvalidActor
	}
	if o.Stage.IsTerminal() {
		return o, entities.StageTransition{}, ErrIllegalTransition
	}
	lossReason = strings.TrimSpace(lossReason)
	if toStage == entities.StageLost && lossReason == "" {
		return o, entities.StageTransition{}, ErrMissingLossReason
	}

	tr := entities.StageTransition{
		ID:            uuid.NewString(),
		OpportunityID: o.ID,
		FromStage:     o.Stage,
		ToStage:       toStage,
		Actor:         actor,
		CreatedAt:     now,
	}

	updated := o
	updated.Stage = toStage
	ts := now
	updated.LastActivityAt = &ts
	updated.UpdatedAt = now
	if toStage == entities.StageLost {
		updated.LossReason = &lossReason
	}
	return updated, tr, nil
}

// TouchActivity refreshes the opportunity's last-activity timestamp.
// Fails when now would violate lastActivityAt >= createdAt.
func TouchActivity(o entities.Opportunity, now time.Time) (entities.Opportunity, error) {
	if now.Before(o.CreatedAt) {
		return o, ErrActivityBeforeOpen
	}
	updated := o
	ts := now
	updated.LastActivityAt = &ts
	updated.UpdatedAt = now
	return updated, nil
}
