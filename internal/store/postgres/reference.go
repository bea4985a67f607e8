package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/models"
)

func (s *Store) PutPoliceStation(ctx context.Context, st *models.PoliceStation) error {
	query := `
		INSERT INTO police_stations (id, name, code, district, state)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, district = EXCLUDED.district, state = EXCLUDED.state
	`
	_, err := s.execer(ctx).ExecContext(ctx, query, st.ID, st.Name, st.Code, st.District, st.State)
	if err != nil {
		return fmt.Errorf("upsert police station: %w", translate(err))
	}
	return nil
}

func (s *Store) GetPoliceStation(ctx context.Context, id uuid.UUID) (*models.PoliceStation, error) {
	query := `SELECT id, name, code, district, state FROM police_stations WHERE id = $1`
	var st models.PoliceStation
	err := s.execer(ctx).QueryRowContext(ctx, query, id).
		Scan(&st.ID, &st.Name, &st.Code, &st.District, &st.State)
	if err != nil {
		return nil, translate(err)
	}
	return &st, nil
}

func (s *Store) ListPoliceStations(ctx context.Context) ([]*models.PoliceStation, error) {
	query := `SELECT id, name, code, district, state FROM police_stations ORDER BY name`
	rows, err := s.execer(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query police stations: %w", err)
	}
	defer rows.Close()

	var stations []*models.PoliceStation
	for rows.Next() {
		var st models.PoliceStation
		if err := rows.Scan(&st.ID, &st.Name, &st.Code, &st.District, &st.State); err != nil {
			return nil, fmt.Errorf("scan police station: %w", err)
		}
		stations = append(stations, &st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate police stations: %w", err)
	}
	return stations, nil
}

func (s *Store) PutCourt(ctx context.Context, c *models.Court) error {
	query := `
		INSERT INTO courts (id, name, code, court_type, district, state)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, court_type = EXCLUDED.court_type,
		    district = EXCLUDED.district, state = EXCLUDED.state
	`
	_, err := s.execer(ctx).ExecContext(ctx, query, c.ID, c.Name, c.Code, c.CourtType, c.District, c.State)
	if err != nil {
		return fmt.Errorf("upsert court: %w", translate(err))
	}
	return nil
}

func (s *Store) GetCourt(ctx context.Context, id uuid.UUID) (*models.Court, error) {
	query := `SELECT id, name, code, court_type, district, state FROM courts WHERE id = $1`
	var c models.Court
	err := s.execer(ctx).QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.Code, &c.CourtType, &c.District, &c.State)
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *Store) ListCourts(ctx context.Context) ([]*models.Court, error) {
	query := `SELECT id, name, code, court_type, district, state FROM courts ORDER BY name`
	rows, err := s.execer(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query courts: %w", err)
	}
	defer rows.Close()

	var courts []*models.Court
	for rows.Next() {
		var c models.Court
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.CourtType, &c.District, &c.State); err != nil {
			return nil, fmt.Errorf("scan court: %w", err)
		}
		courts = append(courts, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courts: %w", err)
	}
	return courts, nil
}

const userColumns = `id, email, name, phone, password_hash, role,
	organization_type, organization_id, is_active, created_at`

func (s *Store) PutUser(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email, name = EXCLUDED.name, phone = EXCLUDED.phone,
		    password_hash = EXCLUDED.password_hash, role = EXCLUDED.role,
		    organization_type = EXCLUDED.organization_type,
		    organization_id = EXCLUDED.organization_id, is_active = EXCLUDED.is_active
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		u.ID, u.Email, u.Name, u.Phone, u.PasswordHash, u.Role,
		u.OrganizationType, u.OrganizationID, u.IsActive, u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert user: %w", translate(err))
	}
	return nil
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return s.scanUser(s.execer(ctx).QueryRowContext(ctx, query, id))
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return s.scanUser(s.execer(ctx).QueryRowContext(ctx, query, email))
}

func (s *Store) scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.Phone, &u.PasswordHash, &u.Role,
		&u.OrganizationType, &u.OrganizationID, &u.IsActive, &u.CreatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}
