package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/daxp472/CMS/internal/models"
	dErrors "github.com/daxp472/CMS/pkg/domain-errors"
)

type LifecycleSuite struct {
	suite.Suite
}

func TestLifecycleSuite(t *testing.T) {
	suite.Run(t, new(LifecycleSuite))
}

func (s *LifecycleSuite) TestNext() {
	s.Run("police workflow happy path", func() {
		steps := []struct {
			from State
			trg  Trigger
			to   State
		}{
			{StateFIRRegistered, TriggerInvestigate, StateUnderInvestigation},
			{StateUnderInvestigation, TriggerCompleteInvest, StateInvestigationComplete},
			{StateInvestigationComplete, TriggerSubmitToCourt, StateSubmittedToCourt},
			{StateSubmittedToCourt, TriggerIntake, StatePendingCourtIntake},
			{StatePendingCourtIntake, TriggerHearingScheduled, StateUnderTrial},
			{StateUnderTrial, TriggerJudgment, StateJudgmentDelivered},
			{StateJudgmentDelivered, TriggerArchive, StateArchived},
		}
		for _, step := range steps {
			next, err := Next(step.from, step.trg)
			s.NoError(err)
			s.Equal(step.to, next)
		}
	})

	s.Run("submit directly from under investigation", func() {
		next, err := Next(StateUnderInvestigation, TriggerSubmitToCourt)
		s.NoError(err)
		s.Equal(StateSubmittedToCourt, next)
	})

	s.Run("investigate is idempotent in under investigation", func() {
		next, err := Next(StateUnderInvestigation, TriggerInvestigate)
		s.NoError(err)
		s.Equal(StateUnderInvestigation, next)
	})

	s.Run("dismiss works from any non-terminal state", func() {
		for _, from := range []State{StateFIRRegistered, StateUnderInvestigation, StateSubmittedToCourt, StateUnderTrial} {
			next, err := Next(from, TriggerDismiss)
			s.NoError(err)
			s.Equal(StateClosed, next)
		}
	})

	s.Run("archive only from concluded states", func() {
		for _, from := range []State{StateClosed, StateJudgmentDelivered} {
			next, err := Next(from, TriggerArchive)
			s.NoError(err)
			s.Equal(StateArchived, next)
		}
		for _, from := range []State{StateFIRRegistered, StateUnderTrial, StateArchived} {
			_, err := Next(from, TriggerArchive)
			s.Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
		}
	})

	s.Run("terminal states reject court triggers", func() {
		for _, from := range []State{StateJudgmentDelivered, StateClosed, StateArchived} {
			for _, trg := range []Trigger{TriggerHearingScheduled, TriggerJudgment, TriggerDismiss} {
				_, err := Next(from, trg)
				s.Error(err, "state %s trigger %s", from, trg)
			}
		}
	})

	s.Run("disallowed transition names current state", func() {
		_, err := Next(StateFIRRegistered, TriggerIntake)
		s.Error(err)
		s.Contains(err.Error(), "FIR_REGISTERED")
	})

	s.Run("unknown trigger rejected", func() {
		_, err := Next(StateFIRRegistered, Trigger("teleport"))
		s.Error(err)
	})
}

func (s *LifecycleSuite) TestTerminal() {
	terminal := map[State]bool{
		StateJudgmentDelivered: true,
		StateClosed:            true,
		StateArchived:          true,
	}
	for _, state := range States {
		s.Equal(terminal[state], Terminal(state), "state %s", state)
	}
}

func (s *LifecycleSuite) TestDocumentsLocked() {
	locked := map[State]bool{
		StateFIRRegistered:         false,
		StateUnderInvestigation:    false,
		StateInvestigationComplete: false,
		StateSubmittedToCourt:      true,
		StatePendingCourtIntake:    true,
		StateUnderTrial:            true,
		StateJudgmentDelivered:     true,
		StateClosed:                true,
		StateArchived:              true,
	}
	for _, state := range States {
		s.Equal(locked[state], DocumentsLocked(state), "state %s", state)
	}
}

func (s *LifecycleSuite) TestTriggerForCourtAction() {
	cases := []struct {
		action models.CourtActionType
		trg    Trigger
		moves  bool
	}{
		{models.ActionHearingScheduled, TriggerHearingScheduled, true},
		{models.ActionJudgment, TriggerJudgment, true},
		{models.ActionCaseDismissed, TriggerDismiss, true},
		{models.ActionAdjourned, "", false},
		{models.ActionOrderIssued, "", false},
	}
	for _, tc := range cases {
		trg, ok := TriggerForCourtAction(tc.action)
		s.Equal(tc.moves, ok, "action %s", tc.action)
		s.Equal(tc.trg, trg)
	}
}

func (s *LifecycleSuite) TestValid() {
	for _, state := range States {
		s.True(Valid(state))
	}
	s.False(Valid(State("LIMBO")))
}
