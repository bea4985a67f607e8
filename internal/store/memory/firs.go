package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/models"
	"github.com/daxp472/CMS/pkg/platform/sentinel"
)

func (s *Store) CreateFIR(_ context.Context, fir *models.FIR) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.firs[fir.ID]; exists {
		return sentinel.ErrConflict
	}
	s.firs[fir.ID] = *fir
	return nil
}

func (s *Store) GetFIR(_ context.Context, id uuid.UUID) (*models.FIR, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fir, ok := s.firs[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &fir, nil
}

func (s *Store) GetFIRByCase(_ context.Context, caseID uuid.UUID) (*models.FIR, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, fir := range s.firs {
		if fir.CaseID == caseID {
			f := fir
			return &f, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// NextFIRSequence allocates the next per-(station, year) sequence number.
// The counter moves inside the surrounding unit of work, so a rolled-back
// registration returns the number to the pool and the series stays gap-free.
func (s *Store) NextFIRSequence(_ context.Context, stationID uuid.UUID, year int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := seqKey{station: stationID, year: year}
	s.firSeq[key]++
	return s.firSeq[key], nil
}
