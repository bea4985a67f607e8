package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/access"
	"github.com/daxp472/CMS/internal/audit"
	"github.com/daxp472/CMS/internal/lifecycle"
	"github.com/daxp472/CMS/internal/models"
	dErrors "github.com/daxp472/CMS/pkg/domain-errors"
	"github.com/daxp472/CMS/pkg/requestcontext"
)

// SubmitToCourt hands a case over to a court. The case leaves police control:
// from the moment this commits, documents are frozen and court principals of
// the target court gain visibility.
func (s *Service) SubmitToCourt(ctx context.Context, caseID, courtID uuid.UUID, notes string) (*CaseView, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := access.RequireRole(p, models.RolePolice, models.RoleSHO).Err(); err != nil {
		return nil, err
	}
	c, st, err := s.authorizedCase(ctx, p, caseID)
	if err != nil {
		return nil, err
	}

	court, err := s.store.GetCourt(ctx, courtID)
	if err != nil {
		return nil, translateStoreErr(err, "court not found")
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.lockCaseState(ctx, st); err != nil {
			return err
		}
		next, err := lifecycle.Next(lifecycle.State(st.State), lifecycle.TriggerSubmitToCourt)
		if err != nil {
			return err
		}
		now := requestcontext.Now(ctx)

		c.CourtID = &court.ID
		c.SubmittedToCourtAt = &now
		c.SubmissionNotes = notes
		if err := s.store.UpdateCase(ctx, c); err != nil {
			return translateStoreErr(err, "case not found")
		}

		st.State = string(next)
		st.UpdatedByID = p.UserID
		st.UpdatedAt = now
		if err := s.store.UpdateCaseState(ctx, st); err != nil {
			return translateStoreErr(err, "case state not found")
		}
		return s.recorder.Record(ctx, c.ID, p.UserID, audit.ActionCaseSubmittedToCourt, "case", c.ID, "submitted to "+court.Name)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveTransition(st.State)
	s.logger.InfoContext(ctx, "case submitted to court", "case_id", c.ID, "court_id", court.ID)
	return newCaseView(c, st), nil
}

// IntakeCase acknowledges receipt of a submitted case at the assigned court.
func (s *Service) IntakeCase(ctx context.Context, caseID uuid.UUID, acknowledgementNotes string) (*CaseView, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := access.RequireRole(p, models.RoleCourtClerk).Err(); err != nil {
		return nil, err
	}
	c, st, err := s.authorizedCase(ctx, p, caseID)
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.lockCaseState(ctx, st); err != nil {
			return err
		}
		next, err := lifecycle.Next(lifecycle.State(st.State), lifecycle.TriggerIntake)
		if err != nil {
			return err
		}
		now := requestcontext.Now(ctx)

		c.AcknowledgementNotes = acknowledgementNotes
		if err := s.store.UpdateCase(ctx, c); err != nil {
			return translateStoreErr(err, "case not found")
		}

		st.State = string(next)
		st.UpdatedByID = p.UserID
		st.UpdatedAt = now
		if err := s.store.UpdateCaseState(ctx, st); err != nil {
			return translateStoreErr(err, "case state not found")
		}
		return s.recorder.Record(ctx, c.ID, p.UserID, audit.ActionCaseIntake, "case", c.ID, "case intake acknowledged")
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveTransition(st.State)
	s.logger.InfoContext(ctx, "case intake", "case_id", c.ID)
	return newCaseView(c, st), nil
}

// CourtActionInput carries one judicial action.
type CourtActionInput struct {
	ActionType      models.CourtActionType
	ActionDate      time.Time
	Description     string
	OrderDetails    string
	NextHearingDate *time.Time
}

func (in *CourtActionInput) validate() error {
	if !models.ValidCourtActionType(in.ActionType) {
		return dErrors.Newf(dErrors.CodeBadRequest, "unknown court action type: %s", in.ActionType)
	}
	if in.ActionDate.IsZero() {
		return dErrors.New(dErrors.CodeBadRequest, "action date is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "description is required")
	}
	return nil
}

// RecordCourtAction records a judicial action and, when the action type
// drives the lifecycle, applies the corresponding transition in the same
// transaction. Non-transitioning actions are accepted in any non-archived
// court state.
func (s *Service) RecordCourtAction(ctx context.Context, caseID uuid.UUID, in CourtActionInput) (*models.CourtAction, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := access.RequireRole(p, models.RoleJudge).Err(); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	c, st, err := s.authorizedCase(ctx, p, caseID)
	if err != nil {
		return nil, err
	}
	if lifecycle.State(st.State) == lifecycle.StateArchived {
		return nil, dErrors.New(dErrors.CodeBadRequest, "cannot record actions on an archived case")
	}

	var action models.CourtAction
	transitioned := false
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.lockCaseState(ctx, st); err != nil {
			return err
		}
		now := requestcontext.Now(ctx)

		if trg, ok := lifecycle.TriggerForCourtAction(in.ActionType); ok {
			next, err := lifecycle.Next(lifecycle.State(st.State), trg)
			if err != nil {
				return err
			}
			st.State = string(next)
			st.UpdatedByID = p.UserID
			st.UpdatedAt = now
			if err := s.store.UpdateCaseState(ctx, st); err != nil {
				return translateStoreErr(err, "case state not found")
			}
			transitioned = true
		}

		action = models.CourtAction{
			ID:              uuid.New(),
			CaseID:          c.ID,
			JudgeID:         p.UserID,
			ActionType:      in.ActionType,
			ActionDate:      in.ActionDate,
			Description:     in.Description,
			OrderDetails:    in.OrderDetails,
			NextHearingDate: in.NextHearingDate,
			CreatedAt:       now,
		}
		if err := s.store.CreateCourtAction(ctx, &action); err != nil {
			return translateStoreErr(err, "court action not found")
		}
		return s.recorder.Record(ctx, c.ID, p.UserID, audit.ActionCourtActionCreated, "court_action", action.ID, string(in.ActionType))
	})
	if err != nil {
		return nil, err
	}

	if transitioned {
		s.metrics.ObserveTransition(st.State)
	}
	s.logger.InfoContext(ctx, "court action recorded",
		"case_id", c.ID,
		"action_type", in.ActionType,
		"state", st.State,
	)
	return &action, nil
}

// ListCourtActions returns a case's judicial actions, newest first.
func (s *Service) ListCourtActions(ctx context.Context, caseID uuid.UUID) ([]*models.CourtAction, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.authorizedCase(ctx, p, caseID); err != nil {
		return nil, err
	}
	actions, err := s.store.ListCourtActions(ctx, caseID)
	if err != nil {
		return nil, translateStoreErr(err, "court actions not found")
	}
	return actions, nil
}
