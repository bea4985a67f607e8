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

// RegisterFIRInput carries the complainant and incident details of a new FIR.
type RegisterFIRInput struct {
	ComplainantName     string
	ComplainantContact  string
	ComplainantAddress  string
	IncidentDate        time.Time
	IncidentLocation    string
	IncidentDescription string
	Sections            string
	Category            models.CaseCategory
}

func (in *RegisterFIRInput) validate() error {
	if strings.TrimSpace(in.ComplainantName) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "complainant name is required")
	}
	if strings.TrimSpace(in.IncidentDescription) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "incident description is required")
	}
	if in.IncidentDate.IsZero() {
		return dErrors.New(dErrors.CodeBadRequest, "incident date is required")
	}
	if !models.ValidCategory(in.Category) {
		return dErrors.Newf(dErrors.CodeBadRequest, "unknown case category: %s", in.Category)
	}
	return nil
}

// RegisterFIR atomically creates the FIR, its case, the FIR_REGISTERED state
// row and the first audit entry. The FIR number sequence is allocated inside
// the transaction, so a failed registration never burns a number.
func (s *Service) RegisterFIR(ctx context.Context, in RegisterFIRInput) (*models.FIR, *models.Case, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := access.RequireRole(p, models.RolePolice, models.RoleSHO).Err(); err != nil {
		return nil, nil, err
	}
	if err := in.validate(); err != nil {
		return nil, nil, err
	}

	station, err := s.store.GetPoliceStation(ctx, p.OrganizationID)
	if err != nil {
		return nil, nil, translateStoreErr(err, "police station not found")
	}

	now := requestcontext.Now(ctx)
	year := now.Year()

	var (
		fir models.FIR
		c   models.Case
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		seq, err := s.store.NextFIRSequence(ctx, station.ID, year)
		if err != nil {
			return translateStoreErr(err, "police station not found")
		}

		caseID := uuid.New()
		c = models.Case{
			ID:              caseID,
			CaseNumber:      models.CaseNumberFor(caseID, year),
			Category:        in.Category,
			Sections:        in.Sections,
			PoliceStationID: station.ID,
			CreatedAt:       now,
		}
		if err := s.store.CreateCase(ctx, &c); err != nil {
			return translateStoreErr(err, "case not found")
		}

		fir = models.FIR{
			ID:                  uuid.New(),
			FIRNumber:           models.FIRNumberFor(station.Code, year, seq),
			CaseID:              caseID,
			PoliceStationID:     station.ID,
			Year:                year,
			Sequence:            seq,
			ComplainantName:     in.ComplainantName,
			ComplainantContact:  in.ComplainantContact,
			ComplainantAddress:  in.ComplainantAddress,
			IncidentDate:        in.IncidentDate,
			IncidentLocation:    in.IncidentLocation,
			IncidentDescription: in.IncidentDescription,
			Sections:            in.Sections,
			Category:            in.Category,
			RegisteredByID:      p.UserID,
			CreatedAt:           now,
		}
		if err := s.store.CreateFIR(ctx, &fir); err != nil {
			return translateStoreErr(err, "fir not found")
		}

		state := models.CurrentCaseState{
			CaseID:      caseID,
			State:       string(lifecycle.StateFIRRegistered),
			UpdatedByID: p.UserID,
			UpdatedAt:   now,
		}
		if err := s.store.CreateCaseState(ctx, &state); err != nil {
			return translateStoreErr(err, "case state not found")
		}

		return s.recorder.Record(ctx, caseID, p.UserID, audit.ActionFIRRegistered, "fir", fir.ID, fir.FIRNumber)
	})
	if err != nil {
		return nil, nil, err
	}

	s.metrics.IncrementFIRRegistered()
	s.logger.InfoContext(ctx, "fir registered",
		"fir_number", fir.FIRNumber,
		"case_id", c.ID,
		"station_id", station.ID,
	)
	return &fir, &c, nil
}

// GetFIR returns a FIR the principal's organization scope covers.
func (s *Service) GetFIR(ctx context.Context, firID uuid.UUID) (*models.FIR, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	fir, err := s.store.GetFIR(ctx, firID)
	if err != nil {
		return nil, translateStoreErr(err, "fir not found")
	}
	if _, _, err := s.authorizedCase(ctx, p, fir.CaseID); err != nil {
		return nil, err
	}
	return fir, nil
}

// GetCaseFIR returns the FIR that originated a case.
func (s *Service) GetCaseFIR(ctx context.Context, caseID uuid.UUID) (*models.FIR, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.authorizedCase(ctx, p, caseID); err != nil {
		return nil, err
	}
	fir, err := s.store.GetFIRByCase(ctx, caseID)
	if err != nil {
		return nil, translateStoreErr(err, "fir not found")
	}
	return fir, nil
}
