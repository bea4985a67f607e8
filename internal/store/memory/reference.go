package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/models"
	"github.com/daxp472/CMS/pkg/platform/sentinel"
)

// Reference data (stations, courts, users) is loaded at startup and treated
// as static; it sits outside the transactional snapshot.

func (s *Store) PutPoliceStation(_ context.Context, st *models.PoliceStation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stations[st.ID] = *st
	return nil
}

func (s *Store) GetPoliceStation(_ context.Context, id uuid.UUID) (*models.PoliceStation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.stations[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &st, nil
}

func (s *Store) ListPoliceStations(_ context.Context) ([]*models.PoliceStation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.PoliceStation
	for _, st := range s.stations {
		stc := st
		out = append(out, &stc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) PutCourt(_ context.Context, c *models.Court) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courts[c.ID] = *c
	return nil
}

func (s *Store) GetCourt(_ context.Context, id uuid.UUID) (*models.Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.courts[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &c, nil
}

func (s *Store) ListCourts(_ context.Context) ([]*models.Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Court
	for _, c := range s.courts {
		cc := c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) PutUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = *u
	return nil
}

func (s *Store) GetUser(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			uc := u
			return &uc, nil
		}
	}
	return nil, sentinel.ErrNotFound
}
