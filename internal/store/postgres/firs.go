package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/models"
)

const firColumns = `id, fir_number, case_id, police_station_id, year, sequence,
	complainant_name, complainant_contact, complainant_address, incident_date,
	incident_location, incident_description, sections, category,
	registered_by_id, created_at`

func (s *Store) CreateFIR(ctx context.Context, fir *models.FIR) error {
	query := `
		INSERT INTO firs (` + firColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		fir.ID, fir.FIRNumber, fir.CaseID, fir.PoliceStationID, fir.Year, fir.Sequence,
		fir.ComplainantName, fir.ComplainantContact, fir.ComplainantAddress, fir.IncidentDate,
		fir.IncidentLocation, fir.IncidentDescription, fir.Sections, fir.Category,
		fir.RegisteredByID, fir.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fir: %w", translate(err))
	}
	return nil
}

func (s *Store) GetFIR(ctx context.Context, id uuid.UUID) (*models.FIR, error) {
	return s.getFIR(ctx, "id", id)
}

func (s *Store) GetFIRByCase(ctx context.Context, caseID uuid.UUID) (*models.FIR, error) {
	return s.getFIR(ctx, "case_id", caseID)
}

func (s *Store) getFIR(ctx context.Context, column string, id uuid.UUID) (*models.FIR, error) {
	query := `SELECT ` + firColumns + ` FROM firs WHERE ` + column + ` = $1`
	var fir models.FIR
	err := s.execer(ctx).QueryRowContext(ctx, query, id).Scan(
		&fir.ID, &fir.FIRNumber, &fir.CaseID, &fir.PoliceStationID, &fir.Year, &fir.Sequence,
		&fir.ComplainantName, &fir.ComplainantContact, &fir.ComplainantAddress, &fir.IncidentDate,
		&fir.IncidentLocation, &fir.IncidentDescription, &fir.Sections, &fir.Category,
		&fir.RegisteredByID, &fir.CreatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &fir, nil
}

// NextFIRSequence allocates the next FIR sequence for a station-year. The
// station row is locked first so concurrent registrations in the same
// transaction window serialize; the UNIQUE (station, year, sequence)
// constraint backstops the allocation. Must run inside a transaction.
func (s *Store) NextFIRSequence(ctx context.Context, stationID uuid.UUID, year int) (int, error) {
	exec := s.execer(ctx)

	var locked uuid.UUID
	err := exec.QueryRowContext(ctx,
		`SELECT id FROM police_stations WHERE id = $1 FOR UPDATE`, stationID,
	).Scan(&locked)
	if err != nil {
		return 0, fmt.Errorf("lock station for sequence: %w", translate(err))
	}

	var next int
	err = exec.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(sequence), 0) + 1 FROM firs WHERE police_station_id = $1 AND year = $2`,
		stationID, year,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next fir sequence: %w", err)
	}
	return next, nil
}
