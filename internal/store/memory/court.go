package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/models"
	"github.com/daxp472/CMS/pkg/platform/sentinel"
)

func (s *Store) CreateCourtAction(_ context.Context, a *models.CourtAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.actions[a.ID]; exists {
		return sentinel.ErrConflict
	}
	s.actions[a.ID] = *a
	return nil
}

func (s *Store) ListCourtActions(_ context.Context, caseID uuid.UUID) ([]*models.CourtAction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.CourtAction
	for _, a := range s.actions {
		if a.CaseID == caseID {
			aa := a
			out = append(out, &aa)
		}
	}
	sort.Slice(out, func(i, j int) bool { return timeDesc(out[i].ActionDate, out[j].ActionDate, out[i].ID, out[j].ID) })
	return out, nil
}

func (s *Store) CreateBailApplication(_ context.Context, b *models.BailApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.bail[b.ID]; exists {
		return sentinel.ErrConflict
	}
	s.bail[b.ID] = *b
	return nil
}

func (s *Store) ListBailApplications(_ context.Context, caseID uuid.UUID) ([]*models.BailApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.BailApplication
	for _, b := range s.bail {
		if b.CaseID == caseID {
			bb := b
			out = append(out, &bb)
		}
	}
	sort.Slice(out, func(i, j int) bool { return timeDesc(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID) })
	return out, nil
}
