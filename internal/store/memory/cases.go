package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/models"
	"github.com/daxp472/CMS/pkg/platform/sentinel"
)

func (s *Store) CreateCase(_ context.Context, c *models.Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.cases[c.ID]; exists {
		return sentinel.ErrConflict
	}
	s.cases[c.ID] = *c
	return nil
}

func (s *Store) GetCase(_ context.Context, id uuid.UUID) (*models.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cases[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &c, nil
}

func (s *Store) UpdateCase(_ context.Context, c *models.Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cases[c.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.cases[c.ID] = *c
	return nil
}

// ListStationCases returns every case owned by the station, newest first.
func (s *Store) ListStationCases(_ context.Context, stationID uuid.UUID, filter models.CaseFilter) ([]*models.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Case
	for _, c := range s.cases {
		if c.PoliceStationID != stationID {
			continue
		}
		if s.matches(c, filter) {
			cc := c
			out = append(out, &cc)
		}
	}
	sortCasesDesc(out)
	return out, nil
}

// ListCourtCases returns every case assigned to the court, newest first.
func (s *Store) ListCourtCases(_ context.Context, courtID uuid.UUID, filter models.CaseFilter) ([]*models.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Case
	for _, c := range s.cases {
		if c.CourtID == nil || *c.CourtID != courtID {
			continue
		}
		if s.matches(c, filter) {
			cc := c
			out = append(out, &cc)
		}
	}
	sortCasesDesc(out)
	return out, nil
}

// ListOfficerCases returns cases assigned to the officer plus unassigned
// cases of the officer's station, newest first.
func (s *Store) ListOfficerCases(_ context.Context, stationID, officerID uuid.UUID) ([]*models.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Case
	for _, c := range s.cases {
		assignedToOfficer := c.AssignedOfficerID != nil && *c.AssignedOfficerID == officerID
		unassignedInStation := c.PoliceStationID == stationID && c.AssignedOfficerID == nil
		if assignedToOfficer || unassignedInStation {
			cc := c
			out = append(out, &cc)
		}
	}
	sortCasesDesc(out)
	return out, nil
}

// matches applies the listing filter; the state filter consults the
// companion state row. Callers hold at least a read lock.
func (s *Store) matches(c models.Case, filter models.CaseFilter) bool {
	if filter.Category != "" && c.Category != filter.Category {
		return false
	}
	if filter.AssignedOfficerID != nil &&
		(c.AssignedOfficerID == nil || *c.AssignedOfficerID != *filter.AssignedOfficerID) {
		return false
	}
	if filter.State != "" {
		st, ok := s.states[c.ID]
		if !ok || st.State != filter.State {
			return false
		}
	}
	return true
}

func sortCasesDesc(cases []*models.Case) {
	sort.Slice(cases, func(i, j int) bool {
		if cases[i].CreatedAt.Equal(cases[j].CreatedAt) {
			return cases[i].ID.String() > cases[j].ID.String()
		}
		return cases[i].CreatedAt.After(cases[j].CreatedAt)
	})
}

func (s *Store) CreateCaseState(_ context.Context, st *models.CurrentCaseState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.states[st.CaseID]; exists {
		return sentinel.ErrConflict
	}
	s.states[st.CaseID] = *st
	return nil
}

func (s *Store) GetCaseState(_ context.Context, caseID uuid.UUID) (*models.CurrentCaseState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[caseID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &st, nil
}

// GetCaseStateForUpdate matches the postgres row-locking read. Transactions
// are already serialized under txMu, so a plain read gives the same
// guarantee.
func (s *Store) GetCaseStateForUpdate(ctx context.Context, caseID uuid.UUID) (*models.CurrentCaseState, error) {
	return s.GetCaseState(ctx, caseID)
}

// UpdateCaseState overwrites the single state row for a case; no history row
// is ever inserted.
func (s *Store) UpdateCaseState(_ context.Context, st *models.CurrentCaseState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.states[st.CaseID]; !ok {
		return sentinel.ErrNotFound
	}
	s.states[st.CaseID] = *st
	return nil
}
