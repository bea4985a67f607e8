package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/models"
)

const caseColumns = `id, case_number, category, sections, police_station_id, court_id,
	assigned_officer_id, submitted_to_court_at, submission_notes,
	acknowledgement_notes, archived, created_at`

func (s *Store) CreateCase(ctx context.Context, c *models.Case) error {
	query := `
		INSERT INTO cases (` + caseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		c.ID, c.CaseNumber, c.Category, c.Sections, c.PoliceStationID, c.CourtID,
		c.AssignedOfficerID, c.SubmittedToCourtAt, c.SubmissionNotes,
		c.AcknowledgementNotes, c.Archived, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert case: %w", translate(err))
	}
	return nil
}

func (s *Store) GetCase(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases WHERE id = $1`
	row := s.execer(ctx).QueryRowContext(ctx, query, id)
	c, err := scanCase(row)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (s *Store) UpdateCase(ctx context.Context, c *models.Case) error {
	query := `
		UPDATE cases
		SET court_id = $2, assigned_officer_id = $3, submitted_to_court_at = $4,
		    submission_notes = $5, acknowledgement_notes = $6, archived = $7
		WHERE id = $1
	`
	res, err := s.execer(ctx).ExecContext(ctx, query,
		c.ID, c.CourtID, c.AssignedOfficerID, c.SubmittedToCourtAt,
		c.SubmissionNotes, c.AcknowledgementNotes, c.Archived,
	)
	if err != nil {
		return fmt.Errorf("update case: %w", translate(err))
	}
	return requireRow(res)
}

func (s *Store) ListStationCases(ctx context.Context, stationID uuid.UUID, filter models.CaseFilter) ([]*models.Case, error) {
	return s.listCases(ctx, "c.police_station_id = $1", stationID, filter)
}

func (s *Store) ListCourtCases(ctx context.Context, courtID uuid.UUID, filter models.CaseFilter) ([]*models.Case, error) {
	return s.listCases(ctx, "c.court_id = $1", courtID, filter)
}

func (s *Store) ListOfficerCases(ctx context.Context, stationID, officerID uuid.UUID) ([]*models.Case, error) {
	query := `
		SELECT ` + prefixedCaseColumns() + `
		FROM cases c
		WHERE c.assigned_officer_id = $1
		   OR (c.police_station_id = $2 AND c.assigned_officer_id IS NULL)
		ORDER BY c.created_at DESC, c.id
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, officerID, stationID)
	if err != nil {
		return nil, fmt.Errorf("query officer cases: %w", err)
	}
	defer rows.Close()
	return scanCases(rows)
}

func (s *Store) listCases(ctx context.Context, scope string, scopeID uuid.UUID, filter models.CaseFilter) ([]*models.Case, error) {
	query := `
		SELECT ` + prefixedCaseColumns() + `
		FROM cases c
		JOIN current_case_states st ON st.case_id = c.id
		WHERE ` + scope
	args := []any{scopeID}

	if filter.State != "" {
		args = append(args, filter.State)
		query += fmt.Sprintf(" AND st.state = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND c.category = $%d", len(args))
	}
	if filter.AssignedOfficerID != nil {
		args = append(args, *filter.AssignedOfficerID)
		query += fmt.Sprintf(" AND c.assigned_officer_id = $%d", len(args))
	}
	query += " ORDER BY c.created_at DESC, c.id"

	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query cases: %w", err)
	}
	defer rows.Close()
	return scanCases(rows)
}

func (s *Store) CreateCaseState(ctx context.Context, st *models.CurrentCaseState) error {
	query := `
		INSERT INTO current_case_states (case_id, state, updated_by_id, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query, st.CaseID, st.State, st.UpdatedByID, st.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert case state: %w", translate(err))
	}
	return nil
}

func (s *Store) GetCaseState(ctx context.Context, caseID uuid.UUID) (*models.CurrentCaseState, error) {
	query := `SELECT case_id, state, updated_by_id, updated_at FROM current_case_states WHERE case_id = $1`
	var st models.CurrentCaseState
	err := s.execer(ctx).QueryRowContext(ctx, query, caseID).
		Scan(&st.CaseID, &st.State, &st.UpdatedByID, &st.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &st, nil
}

// GetCaseStateForUpdate locks the state row for the rest of the transaction,
// so a concurrent transition on the same case waits and then validates
// against the committed state.
func (s *Store) GetCaseStateForUpdate(ctx context.Context, caseID uuid.UUID) (*models.CurrentCaseState, error) {
	query := `SELECT case_id, state, updated_by_id, updated_at FROM current_case_states WHERE case_id = $1 FOR UPDATE`
	var st models.CurrentCaseState
	err := s.execer(ctx).QueryRowContext(ctx, query, caseID).
		Scan(&st.CaseID, &st.State, &st.UpdatedByID, &st.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &st, nil
}

func (s *Store) UpdateCaseState(ctx context.Context, st *models.CurrentCaseState) error {
	query := `
		UPDATE current_case_states
		SET state = $2, updated_by_id = $3, updated_at = $4
		WHERE case_id = $1
	`
	res, err := s.execer(ctx).ExecContext(ctx, query, st.CaseID, st.State, st.UpdatedByID, st.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update case state: %w", translate(err))
	}
	return requireRow(res)
}
