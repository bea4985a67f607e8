// Package audit is the append-only ledger of every mutating action. Entries
// are written through the transaction carried in the caller's context, so a
// rolled-back unit of work leaves no audit row and a committed mutation is
// never without one.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/pkg/requestcontext"
)

// Action is an audit action code. The vocabulary is closed and stable: a new
// mutating operation gets a new code, an existing code never changes meaning.
type Action string

const (
	ActionFIRRegistered         Action = "FIR_REGISTERED"
	ActionCaseAssigned          Action = "CASE_ASSIGNED"
	ActionInvestigationComplete Action = "INVESTIGATION_COMPLETE"
	ActionCaseSubmittedToCourt  Action = "CASE_SUBMITTED_TO_COURT"
	ActionCaseIntake            Action = "CASE_INTAKE"
	ActionCourtActionCreated    Action = "COURT_ACTION_CREATED"
	ActionDocumentCreated       Action = "DOCUMENT_CREATED"
	ActionDocumentFinalized     Action = "DOCUMENT_FINALIZED"
	ActionInvestigationEvent    Action = "INVESTIGATION_EVENT_CREATED"
	ActionEvidenceAdded         Action = "EVIDENCE_ADDED"
	ActionWitnessAdded          Action = "WITNESS_ADDED"
	ActionAccusedAdded          Action = "ACCUSED_ADDED"
	ActionBailSubmitted         Action = "BAIL_APPLICATION_SUBMITTED"
	ActionCaseArchived          Action = "CASE_ARCHIVED"
)

// LifecycleActions is the subset of codes the timeline projector surfaces.
// Low-level entity codes stay out to avoid duplicating their own timeline
// sources.
var LifecycleActions = []Action{
	ActionFIRRegistered,
	ActionCaseAssigned,
	ActionInvestigationComplete,
	ActionCaseSubmittedToCourt,
	ActionCaseIntake,
	ActionCaseArchived,
}

// Entry is one immutable ledger row.
type Entry struct {
	ID         uuid.UUID
	CaseID     uuid.UUID
	ActorID    uuid.UUID
	Action     Action
	EntityType string
	EntityID   uuid.UUID
	Detail     string
	Timestamp  time.Time
}

// Store appends and reads ledger rows. Append implementations must execute
// against the transaction in ctx when one is present.
type Store interface {
	Append(ctx context.Context, entry Entry) error
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]Entry, error)
	ListByCaseAndActions(ctx context.Context, caseID uuid.UUID, actions []Action) ([]Entry, error)
}

// Recorder is the single write path into the ledger.
type Recorder struct {
	store Store
}

// NewRecorder wires the recorder to its store.
func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

// Record appends one entry inside the caller's transaction. The timestamp is
// the request-scoped time so sibling writes in one unit of work agree.
func (r *Recorder) Record(ctx context.Context, caseID, actorID uuid.UUID, action Action, entityType string, entityID uuid.UUID, detail string) error {
	return r.store.Append(ctx, Entry{
		ID:         uuid.New(),
		CaseID:     caseID,
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
		Timestamp:  requestcontext.Now(ctx),
	})
}
