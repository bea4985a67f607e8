package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/models"
	"github.com/daxp472/CMS/pkg/platform/sentinel"
)

func (s *Store) CreateInvestigationEvent(_ context.Context, ev *models.InvestigationEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.events[ev.ID]; exists {
		return sentinel.ErrConflict
	}
	s.events[ev.ID] = *ev
	return nil
}

func (s *Store) ListInvestigationEvents(_ context.Context, caseID uuid.UUID) ([]*models.InvestigationEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.InvestigationEvent
	for _, ev := range s.events {
		if ev.CaseID == caseID {
			e := ev
			out = append(out, &e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return timeDesc(out[i].EventDate, out[j].EventDate, out[i].ID, out[j].ID) })
	return out, nil
}

func (s *Store) CreateEvidence(_ context.Context, ev *models.Evidence) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.evidence[ev.ID]; exists {
		return sentinel.ErrConflict
	}
	s.evidence[ev.ID] = *ev
	return nil
}

func (s *Store) ListEvidence(_ context.Context, caseID uuid.UUID) ([]*models.Evidence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Evidence
	for _, ev := range s.evidence {
		if ev.CaseID == caseID {
			e := ev
			out = append(out, &e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return timeDesc(out[i].CollectedDate, out[j].CollectedDate, out[i].ID, out[j].ID) })
	return out, nil
}

func (s *Store) CreateWitness(_ context.Context, w *models.Witness) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.witnesses[w.ID]; exists {
		return sentinel.ErrConflict
	}
	s.witnesses[w.ID] = *w
	return nil
}

func (s *Store) ListWitnesses(_ context.Context, caseID uuid.UUID) ([]*models.Witness, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Witness
	for _, w := range s.witnesses {
		if w.CaseID == caseID {
			ww := w
			out = append(out, &ww)
		}
	}
	sort.Slice(out, func(i, j int) bool { return timeDesc(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID) })
	return out, nil
}

func (s *Store) CreateAccused(_ context.Context, a *models.Accused) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accused[a.ID]; exists {
		return sentinel.ErrConflict
	}
	s.accused[a.ID] = *a
	return nil
}

func (s *Store) ListAccused(_ context.Context, caseID uuid.UUID) ([]*models.Accused, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Accused
	for _, a := range s.accused {
		if a.CaseID == caseID {
			aa := a
			out = append(out, &aa)
		}
	}
	sort.Slice(out, func(i, j int) bool { return timeDesc(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID) })
	return out, nil
}

// timeDesc orders newest first with a stable ID tiebreak so listings are
// deterministic.
func timeDesc(a, b time.Time, aID, bID uuid.UUID) bool {
	if a.Equal(b) {
		return aID.String() > bID.String()
	}
	return a.After(b)
}
