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

// beginInvestigation applies the implicit FIR_REGISTERED ->
// UNDER_INVESTIGATION transition when this is the first investigative act.
// Records arriving in any later state leave the state untouched, so late
// findings can still be filed after completion or court submission; only an
// archived case refuses them. Runs inside the caller's transaction.
func (s *Service) beginInvestigation(ctx context.Context, p models.Principal, st *models.CurrentCaseState) error {
	if err := s.lockCaseState(ctx, st); err != nil {
		return err
	}
	current := lifecycle.State(st.State)
	if current == lifecycle.StateArchived {
		return dErrors.New(dErrors.CodeBadRequest, "cannot record investigation on an archived case")
	}
	if current != lifecycle.StateFIRRegistered {
		return nil
	}
	next, err := lifecycle.Next(current, lifecycle.TriggerInvestigate)
	if err != nil {
		return err
	}
	st.State = string(next)
	st.UpdatedByID = p.UserID
	st.UpdatedAt = requestcontext.Now(ctx)
	if err := s.store.UpdateCaseState(ctx, st); err != nil {
		return translateStoreErr(err, "case state not found")
	}
	s.metrics.ObserveTransition(st.State)
	return nil
}

func (s *Service) investigationPreamble(ctx context.Context, caseID uuid.UUID) (models.Principal, *models.Case, *models.CurrentCaseState, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return models.Principal{}, nil, nil, err
	}
	if err := access.RequireRole(p, models.RolePolice, models.RoleSHO).Err(); err != nil {
		return models.Principal{}, nil, nil, err
	}
	c, st, err := s.authorizedCase(ctx, p, caseID)
	if err != nil {
		return models.Principal{}, nil, nil, err
	}
	return p, c, st, nil
}

// InvestigationEventInput carries one investigative step.
type InvestigationEventInput struct {
	EventType   string
	EventDate   time.Time
	Location    string
	Description string
	Findings    string
}

// RecordInvestigationEvent appends an investigative step to the case record.
func (s *Service) RecordInvestigationEvent(ctx context.Context, caseID uuid.UUID, in InvestigationEventInput) (*models.InvestigationEvent, error) {
	p, c, st, err := s.investigationPreamble(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.EventType) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "event type is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "description is required")
	}
	if in.EventDate.IsZero() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "event date is required")
	}

	var ev models.InvestigationEvent
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.beginInvestigation(ctx, p, st); err != nil {
			return err
		}
		ev = models.InvestigationEvent{
			ID:           uuid.New(),
			CaseID:       c.ID,
			EventType:    in.EventType,
			EventDate:    in.EventDate,
			Location:     in.Location,
			Description:  in.Description,
			Findings:     in.Findings,
			RecordedByID: p.UserID,
			CreatedAt:    requestcontext.Now(ctx),
		}
		if err := s.store.CreateInvestigationEvent(ctx, &ev); err != nil {
			return translateStoreErr(err, "investigation event not found")
		}
		return s.recorder.Record(ctx, c.ID, p.UserID, audit.ActionInvestigationEvent, "investigation_event", ev.ID, ev.EventType)
	})
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// ListInvestigationEvents returns a case's investigative steps, newest first.
func (s *Service) ListInvestigationEvents(ctx context.Context, caseID uuid.UUID) ([]*models.InvestigationEvent, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.authorizedCase(ctx, p, caseID); err != nil {
		return nil, err
	}
	events, err := s.store.ListInvestigationEvents(ctx, caseID)
	if err != nil {
		return nil, translateStoreErr(err, "investigation events not found")
	}
	return events, nil
}

// EvidenceInput carries one collected item.
type EvidenceInput struct {
	EvidenceType    models.EvidenceType
	Description     string
	Location        string
	CollectedDate   time.Time
	CollectedBy     string
	StorageLocation string
	ChainOfCustody  string
}

// AddEvidence appends an evidence record to the case.
func (s *Service) AddEvidence(ctx context.Context, caseID uuid.UUID, in EvidenceInput) (*models.Evidence, error) {
	p, c, st, err := s.investigationPreamble(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "description is required")
	}
	if in.CollectedDate.IsZero() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "collected date is required")
	}

	var ev models.Evidence
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.beginInvestigation(ctx, p, st); err != nil {
			return err
		}
		ev = models.Evidence{
			ID:              uuid.New(),
			CaseID:          c.ID,
			EvidenceType:    in.EvidenceType,
			Description:     in.Description,
			Location:        in.Location,
			CollectedDate:   in.CollectedDate,
			CollectedBy:     in.CollectedBy,
			StorageLocation: in.StorageLocation,
			ChainOfCustody:  in.ChainOfCustody,
			RecordedByID:    p.UserID,
			CreatedAt:       requestcontext.Now(ctx),
		}
		if err := s.store.CreateEvidence(ctx, &ev); err != nil {
			return translateStoreErr(err, "evidence not found")
		}
		return s.recorder.Record(ctx, c.ID, p.UserID, audit.ActionEvidenceAdded, "evidence", ev.ID, in.Description)
	})
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// ListEvidence returns a case's evidence records, newest first.
func (s *Service) ListEvidence(ctx context.Context, caseID uuid.UUID) ([]*models.Evidence, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.authorizedCase(ctx, p, caseID); err != nil {
		return nil, err
	}
	items, err := s.store.ListEvidence(ctx, caseID)
	if err != nil {
		return nil, translateStoreErr(err, "evidence not found")
	}
	return items, nil
}

// WitnessInput carries one witness record.
type WitnessInput struct {
	Name             string
	ContactInfo      string
	Address          string
	WitnessType      models.WitnessType
	StatementSummary string
}

// AddWitness appends a witness record to the case.
func (s *Service) AddWitness(ctx context.Context, caseID uuid.UUID, in WitnessInput) (*models.Witness, error) {
	p, c, st, err := s.investigationPreamble(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "witness name is required")
	}

	var w models.Witness
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.beginInvestigation(ctx, p, st); err != nil {
			return err
		}
		w = models.Witness{
			ID:               uuid.New(),
			CaseID:           c.ID,
			Name:             in.Name,
			ContactInfo:      in.ContactInfo,
			Address:          in.Address,
			WitnessType:      in.WitnessType,
			StatementSummary: in.StatementSummary,
			RecordedByID:     p.UserID,
			CreatedAt:        requestcontext.Now(ctx),
		}
		if err := s.store.CreateWitness(ctx, &w); err != nil {
			return translateStoreErr(err, "witness not found")
		}
		return s.recorder.Record(ctx, c.ID, p.UserID, audit.ActionWitnessAdded, "witness", w.ID, in.Name)
	})
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// ListWitnesses returns a case's witness records, newest first.
func (s *Service) ListWitnesses(ctx context.Context, caseID uuid.UUID) ([]*models.Witness, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.authorizedCase(ctx, p, caseID); err != nil {
		return nil, err
	}
	witnesses, err := s.store.ListWitnesses(ctx, caseID)
	if err != nil {
		return nil, translateStoreErr(err, "witnesses not found")
	}
	return witnesses, nil
}

// AccusedInput carries one accused record.
type AccusedInput struct {
	Name           string
	Age            int
	Gender         string
	Address        string
	ContactInfo    string
	ArrestDate     *time.Time
	ArrestLocation string
	ChargesApplied string
}

// AddAccused appends an accused record to the case.
func (s *Service) AddAccused(ctx context.Context, caseID uuid.UUID, in AccusedInput) (*models.Accused, error) {
	p, c, st, err := s.investigationPreamble(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "accused name is required")
	}

	var a models.Accused
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.beginInvestigation(ctx, p, st); err != nil {
			return err
		}
		a = models.Accused{
			ID:             uuid.New(),
			CaseID:         c.ID,
			Name:           in.Name,
			Age:            in.Age,
			Gender:         in.Gender,
			Address:        in.Address,
			ContactInfo:    in.ContactInfo,
			ArrestDate:     in.ArrestDate,
			ArrestLocation: in.ArrestLocation,
			ChargesApplied: in.ChargesApplied,
			RecordedByID:   p.UserID,
			CreatedAt:      requestcontext.Now(ctx),
		}
		if err := s.store.CreateAccused(ctx, &a); err != nil {
			return translateStoreErr(err, "accused not found")
		}
		return s.recorder.Record(ctx, c.ID, p.UserID, audit.ActionAccusedAdded, "accused", a.ID, in.Name)
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAccused returns a case's accused records, newest first.
func (s *Service) ListAccused(ctx context.Context, caseID uuid.UUID) ([]*models.Accused, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.authorizedCase(ctx, p, caseID); err != nil {
		return nil, err
	}
	accused, err := s.store.ListAccused(ctx, caseID)
	if err != nil {
		return nil, translateStoreErr(err, "accused not found")
	}
	return accused, nil
}
