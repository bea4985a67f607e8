package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/access"
	"github.com/daxp472/CMS/internal/audit"
	"github.com/daxp472/CMS/internal/lifecycle"
	"github.com/daxp472/CMS/internal/models"
	dErrors "github.com/daxp472/CMS/pkg/domain-errors"
	"github.com/daxp472/CMS/pkg/platform/sentinel"
	"github.com/daxp472/CMS/pkg/requestcontext"
)

// CaseView pairs a case with its authoritative state row and the derived
// document lock flag.
type CaseView struct {
	Case            *models.Case
	State           string
	StateUpdatedAt  time.Time
	DocumentsLocked bool
}

func newCaseView(c *models.Case, st *models.CurrentCaseState) *CaseView {
	return &CaseView{
		Case:            c,
		State:           st.State,
		StateUpdatedAt:  st.UpdatedAt,
		DocumentsLocked: lifecycle.DocumentsLocked(lifecycle.State(st.State)),
	}
}

// GetCase returns one case with its current state, scoped to the principal's
// organization.
func (s *Service) GetCase(ctx context.Context, caseID uuid.UUID) (*CaseView, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	c, st, err := s.authorizedCase(ctx, p, caseID)
	if err != nil {
		return nil, err
	}
	return newCaseView(c, st), nil
}

// ListCases returns the cases visible to the principal's organization scope:
// the station's cases for an SHO, the court's cases for court principals and
// the officer's own or unassigned station cases for a plain officer. The
// filter applies to station and court listings; an officer's listing is
// already narrow.
func (s *Service) ListCases(ctx context.Context, filter models.CaseFilter) ([]*CaseView, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}

	var cases []*models.Case
	switch p.Role {
	case models.RoleSHO:
		cases, err = s.store.ListStationCases(ctx, p.OrganizationID, filter)
	case models.RolePolice:
		cases, err = s.store.ListOfficerCases(ctx, p.OrganizationID, p.UserID)
	case models.RoleCourtClerk, models.RoleJudge:
		cases, err = s.store.ListCourtCases(ctx, p.OrganizationID, filter)
	default:
		return nil, dErrors.New(dErrors.CodeForbidden, "operation not permitted for role "+string(p.Role))
	}
	if err != nil {
		return nil, translateStoreErr(err, "cases not found")
	}

	views := make([]*CaseView, 0, len(cases))
	for _, c := range cases {
		st, err := s.store.GetCaseState(ctx, c.ID)
		if err != nil {
			return nil, translateStoreErr(err, "case state not found")
		}
		views = append(views, newCaseView(c, st))
	}
	return views, nil
}

// AssignOfficer assigns (or reassigns) an investigating officer. Only the
// SHO of the owning station may assign, and only to an active POLICE user of
// the same station.
func (s *Service) AssignOfficer(ctx context.Context, caseID, officerID uuid.UUID) (*CaseView, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := access.RequireRole(p, models.RoleSHO).Err(); err != nil {
		return nil, err
	}
	c, st, err := s.authorizedCase(ctx, p, caseID)
	if err != nil {
		return nil, err
	}
	if c.Archived {
		return nil, dErrors.New(dErrors.CodeBadRequest, "cannot assign an archived case")
	}

	officer, err := s.store.GetUser(ctx, officerID)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return nil, translateStoreErr(err, "officer not found")
	}
	if err := access.ValidateAssignment(p, officer); err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c.AssignedOfficerID = &officer.ID
		if err := s.store.UpdateCase(ctx, c); err != nil {
			return translateStoreErr(err, "case not found")
		}
		return s.recorder.Record(ctx, c.ID, p.UserID, audit.ActionCaseAssigned, "case", c.ID, "assigned to "+officer.Name)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "case assigned", "case_id", c.ID, "officer_id", officer.ID)
	return newCaseView(c, st), nil
}

// CompleteInvestigation marks the investigation phase finished, making the
// case eligible for court submission.
func (s *Service) CompleteInvestigation(ctx context.Context, caseID uuid.UUID) (*CaseView, error) {
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

	return s.transitionCase(ctx, p, c, st, lifecycle.TriggerCompleteInvest, audit.ActionInvestigationComplete, "investigation completed")
}

// ArchiveCase retires a concluded case. The owning station's SHO or the
// assigned court's clerk may archive; archived cases accept no further
// writes of any kind.
func (s *Service) ArchiveCase(ctx context.Context, caseID uuid.UUID) (*CaseView, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := access.RequireRole(p, models.RoleSHO, models.RoleCourtClerk).Err(); err != nil {
		return nil, err
	}
	c, st, err := s.authorizedCase(ctx, p, caseID)
	if err != nil {
		return nil, err
	}

	var view *CaseView
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.lockCaseState(ctx, st); err != nil {
			return err
		}
		next, err := lifecycle.Next(lifecycle.State(st.State), lifecycle.TriggerArchive)
		if err != nil {
			return err
		}
		now := requestcontext.Now(ctx)
		st.State = string(next)
		st.UpdatedByID = p.UserID
		st.UpdatedAt = now
		if err := s.store.UpdateCaseState(ctx, st); err != nil {
			return translateStoreErr(err, "case state not found")
		}
		c.Archived = true
		if err := s.store.UpdateCase(ctx, c); err != nil {
			return translateStoreErr(err, "case not found")
		}
		return s.recorder.Record(ctx, c.ID, p.UserID, audit.ActionCaseArchived, "case", c.ID, "case archived")
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveTransition(st.State)
	s.logger.InfoContext(ctx, "case archived", "case_id", c.ID)
	view = newCaseView(c, st)
	return view, nil
}

// transitionCase applies a single lifecycle trigger with its audit entry in
// one transaction and reports the new state.
func (s *Service) transitionCase(ctx context.Context, p models.Principal, c *models.Case, st *models.CurrentCaseState, trg lifecycle.Trigger, action audit.Action, detail string) (*CaseView, error) {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.lockCaseState(ctx, st); err != nil {
			return err
		}
		next, err := lifecycle.Next(lifecycle.State(st.State), trg)
		if err != nil {
			return err
		}
		st.State = string(next)
		st.UpdatedByID = p.UserID
		st.UpdatedAt = requestcontext.Now(ctx)
		if err := s.store.UpdateCaseState(ctx, st); err != nil {
			return translateStoreErr(err, "case state not found")
		}
		return s.recorder.Record(ctx, c.ID, p.UserID, action, "case", c.ID, detail)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveTransition(st.State)
	s.logger.InfoContext(ctx, "case transitioned", "case_id", c.ID, "state", st.State)
	return newCaseView(c, st), nil
}
