package entities

import "errors"

// ErrInvalidStage is returned when a value outside the closed stage set is parsed.
var ErrInvalidStage = errors.New("invalid stage")

// Stage represents a phase of the sales-pipeline lifecycle.
//
// Domain notes:
//   - The set is closed and ordered: new_lead -> qualifying -> quoting ->
//     quoted -> follow_up -> negotiation -> won|lost.
//   - won and lost are terminal: no successor, unbounded staleness.
//   - Stage policy (successor, win probability, staleness threshold) is pure
//     data; display concerns (labels, icons) live in the clients.

type Stage string

const (
	StageNewLead     Stage = "new_lead"
	StageQualifying  Stage = "qualifying"
	StageQuoting     Stage = "quoting"
	StageQuoted      Stage = "quoted"
	StageFollowUp    Stage = "follow_up"
	StageNegotiation Stage = "negotiation"
	StageWon         Stage = "won"
	StageLost        Stage = "lost"
)

// StagePolicy carries the fixed policy values attached to a stage.
// StalenessDays < 0 means the stage never goes stale.
type StagePolicy struct {
	Successor      Stage
	WinProbability int
	StalenessDays  int
}

var stageOrder = []Stage{
	StageNewLead,
	StageQualifying,
	StageQuoting,
	StageQuoted,
	StageFollowUp,
	StageNegotiation,
	StageWon,
	StageLost,
}

var stagePolicies = map[Stage]StagePolicy{
	StageNewLead:     {Successor: StageQualifying, WinProbability: 10, StalenessDays: 7},
	StageQualifying:  {Successor: StageQuoting, WinProbability: 20, StalenessDays: 14},
	StageQuoting:     {Successor: StageQuoted, WinProbability: 40, StalenessDays: 7},
	StageQuoted:      {Successor: StageFollowUp, WinProbability: 60, StalenessDays: 14},
	StageFollowUp:    {Successor: StageNegotiation, WinProbability: 70, StalenessDays: 21},
	StageNegotiation: {Successor: StageWon, WinProbability: 80, StalenessDays: 14},
	StageWon:         {Successor: "", WinProbability: 100, StalenessDays: -1},
	StageLost:        {Successor: "", WinProbability: 0, StalenessDays: -1},
}

// Stages returns the closed stage set in pipeline order.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// ParseStage validates a raw value against the closed stage set.
func ParseStage(raw string) (Stage, error) {
	s := Stage(raw)
	if _, ok := stagePolicies[s]; !ok {
		return "", ErrInvalidStage
	}
	return s, nil
}

func (s Stage) Valid() bool {
	_, ok := stagePolicies[s]
	return ok
}

func (s Stage) IsTerminal() bool {
	return s == StageWon || s == StageLost
}

// Successor returns the single forward step from s, or ok=false for terminals.
func (s Stage) Successor() (Stage, bool) {
	p, ok := stagePolicies[s]
	if !ok || p.Successor == "" {
		return "", false
	}
	return p.Successor, true
}

// WinProbability returns the stage's win probability in percent (0-100).
func (s Stage) WinProbability() int {
	return stagePolicies[s].WinProbability
}

// StalenessDays returns the staleness threshold in days; ok=false means the
// stage never goes stale (terminal stages).
func (s Stage) StalenessDays() (int, bool) {
	p, ok := stagePolicies[s]
	if !ok || p.StalenessDays < 0 {
		return 0, false
	}
	return p.StalenessDays, true
}
