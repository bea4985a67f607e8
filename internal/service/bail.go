package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/access"
	"github.com/daxp472/CMS/internal/audit"
	"github.com/daxp472/CMS/internal/lifecycle"
	"github.com/daxp472/CMS/internal/models"
	dErrors "github.com/daxp472/CMS/pkg/domain-errors"
	"github.com/daxp472/CMS/pkg/requestcontext"
)

// BailApplicationInput carries one bail application.
type BailApplicationInput struct {
	ApplicantName     string
	ApplicantRelation string
	Grounds           string
	SuretyDetails     string
	AmountProposed    float64
}

// SubmitBailApplication records a bail application against a case under the
// court's control. Applications start PENDING; their adjudication is a court
// action, not a bail mutation.
func (s *Service) SubmitBailApplication(ctx context.Context, caseID uuid.UUID, in BailApplicationInput) (*models.BailApplication, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := access.RequireRole(p, models.RoleCourtClerk, models.RoleJudge).Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ApplicantName) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "applicant name is required")
	}
	if strings.TrimSpace(in.Grounds) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "grounds are required")
	}
	c, st, err := s.authorizedCase(ctx, p, caseID)
	if err != nil {
		return nil, err
	}
	if lifecycle.State(st.State) == lifecycle.StateArchived {
		return nil, dErrors.New(dErrors.CodeBadRequest, "cannot submit bail applications on an archived case")
	}

	var app models.BailApplication
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		app = models.BailApplication{
			ID:                uuid.New(),
			CaseID:            c.ID,
			ApplicantName:     in.ApplicantName,
			ApplicantRelation: in.ApplicantRelation,
			Grounds:           in.Grounds,
			SuretyDetails:     in.SuretyDetails,
			AmountProposed:    in.AmountProposed,
			Status:            models.BailPending,
			SubmittedByID:     p.UserID,
			CreatedAt:         requestcontext.Now(ctx),
		}
		if err := s.store.CreateBailApplication(ctx, &app); err != nil {
			return translateStoreErr(err, "bail application not found")
		}
		return s.recorder.Record(ctx, c.ID, p.UserID, audit.ActionBailSubmitted, "bail_application", app.ID, in.ApplicantName)
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListBailApplications returns a case's bail applications, newest first.
func (s *Service) ListBailApplications(ctx context.Context, caseID uuid.UUID) ([]*models.BailApplication, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.authorizedCase(ctx, p, caseID); err != nil {
		return nil, err
	}
	apps, err := s.store.ListBailApplications(ctx, caseID)
	if err != nil {
		return nil, translateStoreErr(err, "bail applications not found")
	}
	return apps, nil
}
