package service

import (
	"context"

	"github.com/daxp472/CMS/internal/models"
)

// ListPoliceStations returns the police station directory. Any authenticated
// principal may read it; station names appear in submission workflows.
func (s *Service) ListPoliceStations(ctx context.Context) ([]*models.PoliceStation, error) {
	if _, err := s.principal(ctx); err != nil {
		return nil, err
	}
	stations, err := s.store.ListPoliceStations(ctx)
	if err != nil {
		return nil, translateStoreErr(err, "police stations not found")
	}
	return stations, nil
}

// ListCourts returns the court directory. Police principals consult it when
// choosing the submission target.
func (s *Service) ListCourts(ctx context.Context) ([]*models.Court, error) {
	if _, err := s.principal(ctx); err != nil {
		return nil, err
	}
	courts, err := s.store.ListCourts(ctx)
	if err != nil {
		return nil, translateStoreErr(err, "courts not found")
	}
	return courts, nil
}
