package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/audit"
)

// Append adds one immutable ledger entry. Entries are never updated or
// deleted; a failed unit of work discards them via the surrounding snapshot
// rollback.
func (s *Store) Append(_ context.Context, entry audit.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auditLog = append(s.auditLog, entry)
	return nil
}

func (s *Store) ListByCase(_ context.Context, caseID uuid.UUID) ([]audit.Entry, error) {
	return s.listAudit(caseID, nil)
}

func (s *Store) ListByCaseAndActions(_ context.Context, caseID uuid.UUID, actions []audit.Action) ([]audit.Entry, error) {
	return s.listAudit(caseID, actions)
}

func (s *Store) listAudit(caseID uuid.UUID, actions []audit.Action) ([]audit.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wanted := make(map[audit.Action]bool, len(actions))
	for _, a := range actions {
		wanted[a] = true
	}
	var out []audit.Entry
	for _, e := range s.auditLog {
		if e.CaseID != caseID {
			continue
		}
		if len(actions) > 0 && !wanted[e.Action] {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}
