// Package service holds the case management orchestrators. Every mutating
// operation follows the same shape: resolve the principal, load and
// authorize the case, then run the mutation and its audit entry inside one
// transaction.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/access"
	"github.com/daxp472/CMS/internal/audit"
	"github.com/daxp472/CMS/internal/models"
	"github.com/daxp472/CMS/internal/platform/metrics"
	dErrors "github.com/daxp472/CMS/pkg/domain-errors"
	"github.com/daxp472/CMS/pkg/platform/sentinel"
	"github.com/daxp472/CMS/pkg/requestcontext"
)

// CaseStore persists cases and their authoritative state rows.
type CaseStore interface {
	CreateCase(ctx context.Context, c *models.Case) error
	GetCase(ctx context.Context, id uuid.UUID) (*models.Case, error)
	UpdateCase(ctx context.Context, c *models.Case) error
	ListStationCases(ctx context.Context, stationID uuid.UUID, filter models.CaseFilter) ([]*models.Case, error)
	ListCourtCases(ctx context.Context, courtID uuid.UUID, filter models.CaseFilter) ([]*models.Case, error)
	ListOfficerCases(ctx context.Context, stationID, officerID uuid.UUID) ([]*models.Case, error)
	CreateCaseState(ctx context.Context, st *models.CurrentCaseState) error
	GetCaseState(ctx context.Context, caseID uuid.UUID) (*models.CurrentCaseState, error)
	GetCaseStateForUpdate(ctx context.Context, caseID uuid.UUID) (*models.CurrentCaseState, error)
	UpdateCaseState(ctx context.Context, st *models.CurrentCaseState) error
}

// FIRStore persists FIRs and allocates station-year sequences.
type FIRStore interface {
	CreateFIR(ctx context.Context, fir *models.FIR) error
	GetFIR(ctx context.Context, id uuid.UUID) (*models.FIR, error)
	GetFIRByCase(ctx context.Context, caseID uuid.UUID) (*models.FIR, error)
	NextFIRSequence(ctx context.Context, stationID uuid.UUID, year int) (int, error)
}

// DocumentStore persists case documents.
type DocumentStore interface {
	CreateDocument(ctx context.Context, doc *models.Document) error
	GetDocument(ctx context.Context, id uuid.UUID) (*models.Document, error)
	UpdateDocument(ctx context.Context, doc *models.Document) error
	ListDocuments(ctx context.Context, caseID uuid.UUID) ([]*models.Document, error)
	LatestDocumentVersion(ctx context.Context, caseID uuid.UUID, docType models.DocumentType) (int, error)
}

// InvestigationStore persists the append-only investigation records.
type InvestigationStore interface {
	CreateInvestigationEvent(ctx context.Context, ev *models.InvestigationEvent) error
	ListInvestigationEvents(ctx context.Context, caseID uuid.UUID) ([]*models.InvestigationEvent, error)
	CreateEvidence(ctx context.Context, ev *models.Evidence) error
	ListEvidence(ctx context.Context, caseID uuid.UUID) ([]*models.Evidence, error)
	CreateWitness(ctx context.Context, w *models.Witness) error
	ListWitnesses(ctx context.Context, caseID uuid.UUID) ([]*models.Witness, error)
	CreateAccused(ctx context.Context, a *models.Accused) error
	ListAccused(ctx context.Context, caseID uuid.UUID) ([]*models.Accused, error)
}

// CourtStore persists court actions and bail applications.
type CourtStore interface {
	CreateCourtAction(ctx context.Context, a *models.CourtAction) error
	ListCourtActions(ctx context.Context, caseID uuid.UUID) ([]*models.CourtAction, error)
	CreateBailApplication(ctx context.Context, b *models.BailApplication) error
	ListBailApplications(ctx context.Context, caseID uuid.UUID) ([]*models.BailApplication, error)
}

// ReferenceStore reads the static organization and user entities.
type ReferenceStore interface {
	GetPoliceStation(ctx context.Context, id uuid.UUID) (*models.PoliceStation, error)
	ListPoliceStations(ctx context.Context) ([]*models.PoliceStation, error)
	GetCourt(ctx context.Context, id uuid.UUID) (*models.Court, error)
	ListCourts(ctx context.Context) ([]*models.Court, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Store is the full persistence surface the service consumes. Both the
// memory and the postgres stores satisfy it with one value.
type Store interface {
	CaseStore
	FIRStore
	DocumentStore
	InvestigationStore
	CourtStore
	ReferenceStore
	audit.Store
}

// Tx runs a unit of work. Implementations carry the transaction through the
// context so every store call inside fn joins it.
type Tx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Deps carries everything a Service needs.
type Deps struct {
	Store    Store
	Tx       Tx
	Recorder *audit.Recorder
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// Service implements every case management operation.
type Service struct {
	store    Store
	tx       Tx
	recorder *audit.Recorder
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// New wires a Service from its dependencies.
func New(deps Deps) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:    deps.Store,
		tx:       deps.Tx,
		recorder: deps.Recorder,
		metrics:  deps.Metrics,
		logger:   logger,
	}
}

// principal resolves the authenticated principal from the context. Every
// operation calls this first; a missing or malformed principal is an
// authentication failure, never a fallthrough.
func (s *Service) principal(ctx context.Context) (models.Principal, error) {
	info, ok := requestcontext.Principal(ctx)
	if !ok {
		return models.Principal{}, dErrors.New(dErrors.CodeUnauthorized, "no authenticated principal")
	}
	userID, err := uuid.Parse(info.UserID)
	if err != nil {
		return models.Principal{}, dErrors.New(dErrors.CodeUnauthorized, "malformed principal")
	}
	orgID, err := uuid.Parse(info.OrganizationID)
	if err != nil {
		return models.Principal{}, dErrors.New(dErrors.CodeUnauthorized, "malformed principal")
	}
	return models.Principal{
		UserID:           userID,
		Role:             models.Role(info.Role),
		OrganizationType: models.OrganizationType(info.OrganizationType),
		OrganizationID:   orgID,
	}, nil
}

// authorizedCase loads a case with its state and enforces the principal's
// organization scope. All reads and writes against an existing case funnel
// through here.
func (s *Service) authorizedCase(ctx context.Context, p models.Principal, caseID uuid.UUID) (*models.Case, *models.CurrentCaseState, error) {
	c, err := s.store.GetCase(ctx, caseID)
	if err != nil {
		return nil, nil, translateStoreErr(err, "case not found")
	}
	if d := s.checkAccess(p, c); d.Err() != nil {
		return nil, nil, d.Err()
	}
	st, err := s.store.GetCaseState(ctx, caseID)
	if err != nil {
		return nil, nil, translateStoreErr(err, "case state not found")
	}
	return c, st, nil
}

func (s *Service) checkAccess(p models.Principal, c *models.Case) access.Decision {
	d := access.CanAccessCase(p, c)
	if !d.Allowed {
		s.metrics.IncrementAccessDenied()
	}
	return d
}

// lockCaseState re-reads the state row under the transaction's row lock, so
// the transition validates against what a concurrent writer committed rather
// than what this request observed before the transaction began. Must run
// inside RunInTx.
func (s *Service) lockCaseState(ctx context.Context, st *models.CurrentCaseState) error {
	latest, err := s.store.GetCaseStateForUpdate(ctx, st.CaseID)
	if err != nil {
		return translateStoreErr(err, "case state not found")
	}
	*st = *latest
	return nil
}

// translateStoreErr maps store sentinels onto the domain taxonomy, keeping
// the sentinel in the chain for errors.Is.
func translateStoreErr(err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, notFoundMsg)
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, "conflicting write")
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.Wrap(err, dErrors.CodeTimeout, "store unavailable")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "store failure")
}
