// Package memory is the in-memory store used by unit tests and development
// mode. One Store implements every store interface the services consume plus
// the transactional boundary: RunInTx snapshots all state and restores it
// when the unit of work fails, giving the same all-or-nothing visibility the
// Postgres implementation gets from database transactions.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/audit"
	"github.com/daxp472/CMS/internal/models"
	dErrors "github.com/daxp472/CMS/pkg/domain-errors"
)

type seqKey struct {
	station uuid.UUID
	year    int
}

// Store keeps every entity in maps keyed by ID. Values are stored by value so
// snapshots are plain map copies; accessors hand out copies, never interior
// pointers.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	cases      map[uuid.UUID]models.Case
	states     map[uuid.UUID]models.CurrentCaseState
	firs       map[uuid.UUID]models.FIR
	firSeq     map[seqKey]int
	documents  map[uuid.UUID]models.Document
	events     map[uuid.UUID]models.InvestigationEvent
	evidence   map[uuid.UUID]models.Evidence
	witnesses  map[uuid.UUID]models.Witness
	accused    map[uuid.UUID]models.Accused
	actions    map[uuid.UUID]models.CourtAction
	bail       map[uuid.UUID]models.BailApplication
	auditLog   []audit.Entry
	stations   map[uuid.UUID]models.PoliceStation
	courts     map[uuid.UUID]models.Court
	users      map[uuid.UUID]models.User
}

// New returns an empty store.
func New() *Store {
	return &Store{
		cases:     make(map[uuid.UUID]models.Case),
		states:    make(map[uuid.UUID]models.CurrentCaseState),
		firs:      make(map[uuid.UUID]models.FIR),
		firSeq:    make(map[seqKey]int),
		documents: make(map[uuid.UUID]models.Document),
		events:    make(map[uuid.UUID]models.InvestigationEvent),
		evidence:  make(map[uuid.UUID]models.Evidence),
		witnesses: make(map[uuid.UUID]models.Witness),
		accused:   make(map[uuid.UUID]models.Accused),
		actions:   make(map[uuid.UUID]models.CourtAction),
		bail:      make(map[uuid.UUID]models.BailApplication),
		stations:  make(map[uuid.UUID]models.PoliceStation),
		courts:    make(map[uuid.UUID]models.Court),
		users:     make(map[uuid.UUID]models.User),
	}
}

type snapshot struct {
	cases     map[uuid.UUID]models.Case
	states    map[uuid.UUID]models.CurrentCaseState
	firs      map[uuid.UUID]models.FIR
	firSeq    map[seqKey]int
	documents map[uuid.UUID]models.Document
	events    map[uuid.UUID]models.InvestigationEvent
	evidence  map[uuid.UUID]models.Evidence
	witnesses map[uuid.UUID]models.Witness
	accused   map[uuid.UUID]models.Accused
	actions   map[uuid.UUID]models.CourtAction
	bail      map[uuid.UUID]models.BailApplication
	auditLog  []audit.Entry
}

func copyMap[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		cases:     copyMap(s.cases),
		states:    copyMap(s.states),
		firs:      copyMap(s.firs),
		firSeq:    copyMap(s.firSeq),
		documents: copyMap(s.documents),
		events:    copyMap(s.events),
		evidence:  copyMap(s.evidence),
		witnesses: copyMap(s.witnesses),
		accused:   copyMap(s.accused),
		actions:   copyMap(s.actions),
		bail:      copyMap(s.bail),
		auditLog:  append([]audit.Entry(nil), s.auditLog...),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cases = snap.cases
	s.states = snap.states
	s.firs = snap.firs
	s.firSeq = snap.firSeq
	s.documents = snap.documents
	s.events = snap.events
	s.evidence = snap.evidence
	s.witnesses = snap.witnesses
	s.accused = snap.accused
	s.actions = snap.actions
	s.bail = snap.bail
	s.auditLog = snap.auditLog
}

const defaultTxTimeout = 5 * time.Second

// RunInTx serializes mutating units of work under one lock and rolls the
// whole store back when fn fails. Reference data (stations, courts, users) is
// static and excluded from the snapshot.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTxTimeout)
		defer cancel()
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(ctx); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}
