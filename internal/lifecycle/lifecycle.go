// Package lifecycle holds the authoritative case state machine. Every
// orchestrator and every test consults this table; no allowed-state check
// lives anywhere else.
package lifecycle

import (
	"github.com/daxp472/CMS/internal/models"
	dErrors "github.com/daxp472/CMS/pkg/domain-errors"
)

// State is a case lifecycle state.
type State string

const (
	StateFIRRegistered         State = "FIR_REGISTERED"
	StateUnderInvestigation    State = "UNDER_INVESTIGATION"
	StateInvestigationComplete State = "INVESTIGATION_COMPLETE"
	StateSubmittedToCourt      State = "SUBMITTED_TO_COURT"
	StatePendingCourtIntake    State = "PENDING_COURT_INTAKE"
	StateUnderTrial            State = "UNDER_TRIAL"
	StateJudgmentDelivered     State = "JUDGMENT_DELIVERED"
	StateClosed                State = "CLOSED"
	StateArchived              State = "ARCHIVED"
)

// States lists every state, in lifecycle order. Exported for tests that sweep
// the full matrix.
var States = []State{
	StateFIRRegistered,
	StateUnderInvestigation,
	StateInvestigationComplete,
	StateSubmittedToCourt,
	StatePendingCourtIntake,
	StateUnderTrial,
	StateJudgmentDelivered,
	StateClosed,
	StateArchived,
}

// Trigger names an operation that may move a case between states.
type Trigger string

const (
	// TriggerInvestigate fires implicitly on the first investigative act
	// against a freshly registered case.
	TriggerInvestigate      Trigger = "investigate"
	TriggerCompleteInvest   Trigger = "complete-investigation"
	TriggerSubmitToCourt    Trigger = "submit-to-court"
	TriggerIntake           Trigger = "intake"
	TriggerHearingScheduled Trigger = "hearing-scheduled"
	TriggerJudgment         Trigger = "judgment"
	TriggerDismiss          Trigger = "dismiss"
	TriggerArchive          Trigger = "archive"
)

type rule struct {
	// from lists allowed source states; empty means any non-terminal state.
	from  []State
	to    State
	label string
}

// transitions is the single source of truth (spec'd by the workflow, shared
// with tests). Court triggers with an empty from-set apply from any
// non-terminal state; terminal states never accept a state-changing trigger.
var transitions = map[Trigger]rule{
	TriggerInvestigate: {
		from:  []State{StateFIRRegistered, StateUnderInvestigation},
		to:    StateUnderInvestigation,
		label: "begin investigation",
	},
	TriggerCompleteInvest: {
		from:  []State{StateUnderInvestigation},
		to:    StateInvestigationComplete,
		label: "complete investigation",
	},
	TriggerSubmitToCourt: {
		from:  []State{StateUnderInvestigation, StateInvestigationComplete},
		to:    StateSubmittedToCourt,
		label: "submit to court",
	},
	TriggerIntake: {
		from:  []State{StateSubmittedToCourt},
		to:    StatePendingCourtIntake,
		label: "intake case",
	},
	TriggerHearingScheduled: {to: StateUnderTrial, label: "schedule hearing"},
	TriggerJudgment:         {to: StateJudgmentDelivered, label: "deliver judgment"},
	TriggerDismiss:          {to: StateClosed, label: "dismiss case"},
	TriggerArchive: {
		from:  []State{StateClosed, StateJudgmentDelivered},
		to:    StateArchived,
		label: "archive case",
	},
}

// unlocked is the set of states from which SUBMITTED_TO_COURT is still
// reachable through police-side triggers. Derived from the table at init so
// lock semantics and transition semantics cannot diverge.
var unlocked = func() map[State]bool {
	police := []Trigger{TriggerInvestigate, TriggerCompleteInvest, TriggerSubmitToCourt}
	set := make(map[State]bool)
	for _, s := range States {
		frontier := []State{s}
		seen := map[State]bool{s: true}
		for len(frontier) > 0 {
			cur := frontier[0]
			frontier = frontier[1:]
			for _, trg := range police {
				if !Allowed(cur, trg) {
					continue
				}
				next := transitions[trg].to
				if next == StateSubmittedToCourt {
					set[s] = true
				}
				if !seen[next] {
					seen[next] = true
					frontier = append(frontier, next)
				}
			}
		}
	}
	return set
}()

// Valid reports whether s is a known state.
func Valid(s State) bool {
	for _, known := range States {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether s accepts no further state-changing court actions.
func Terminal(s State) bool {
	return s == StateJudgmentDelivered || s == StateClosed || s == StateArchived
}

// Allowed reports whether trg may fire from state current.
func Allowed(current State, trg Trigger) bool {
	r, ok := transitions[trg]
	if !ok {
		return false
	}
	if len(r.from) == 0 {
		return !Terminal(current)
	}
	for _, s := range r.from {
		if s == current {
			return true
		}
	}
	return false
}

// Next validates trg against the table and returns the resulting state. A
// disallowed transition yields a BadRequest policy violation naming the
// current state.
func Next(current State, trg Trigger) (State, error) {
	r, ok := transitions[trg]
	if !ok {
		return "", dErrors.Newf(dErrors.CodeBadRequest, "unknown transition: %s", trg)
	}
	if !Allowed(current, trg) {
		return "", dErrors.Newf(dErrors.CodeBadRequest, "cannot %s from state: %s", r.label, current)
	}
	return r.to, nil
}

// DocumentsLocked reports whether the case state forbids document creation
// and finalization. The lock is a pure function of current state: once a case
// can no longer reach court submission on the police side, its documents are
// frozen.
func DocumentsLocked(s State) bool {
	return !unlocked[s]
}

// TriggerForCourtAction maps a court action type to its lifecycle trigger.
// Action types that never move case state return false.
func TriggerForCourtAction(t models.CourtActionType) (Trigger, bool) {
	switch t {
	case models.ActionHearingScheduled:
		return TriggerHearingScheduled, true
	case models.ActionJudgment:
		return TriggerJudgment, true
	case models.ActionCaseDismissed:
		return TriggerDismiss, true
	}
	return "", false
}
