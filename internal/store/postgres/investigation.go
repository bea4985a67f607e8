package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/models"
)

func (s *Store) CreateInvestigationEvent(ctx context.Context, ev *models.InvestigationEvent) error {
	query := `
		INSERT INTO investigation_events (
			id, case_id, event_type, event_date, location,
			description, findings, recorded_by_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		ev.ID, ev.CaseID, ev.EventType, ev.EventDate, ev.Location,
		ev.Description, ev.Findings, ev.RecordedByID, ev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert investigation event: %w", translate(err))
	}
	return nil
}

func (s *Store) ListInvestigationEvents(ctx context.Context, caseID uuid.UUID) ([]*models.InvestigationEvent, error) {
	query := `
		SELECT id, case_id, event_type, event_date, location,
		       description, findings, recorded_by_id, created_at
		FROM investigation_events
		WHERE case_id = $1
		ORDER BY event_date DESC, id
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("query investigation events: %w", err)
	}
	defer rows.Close()

	var events []*models.InvestigationEvent
	for rows.Next() {
		var ev models.InvestigationEvent
		err := rows.Scan(
			&ev.ID, &ev.CaseID, &ev.EventType, &ev.EventDate, &ev.Location,
			&ev.Description, &ev.Findings, &ev.RecordedByID, &ev.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan investigation event: %w", err)
		}
		events = append(events, &ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate investigation events: %w", err)
	}
	return events, nil
}

func (s *Store) CreateEvidence(ctx context.Context, ev *models.Evidence) error {
	query := `
		INSERT INTO evidence (
			id, case_id, evidence_type, description, location, collected_date,
			collected_by, storage_location, chain_of_custody, recorded_by_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		ev.ID, ev.CaseID, ev.EvidenceType, ev.Description, ev.Location, ev.CollectedDate,
		ev.CollectedBy, ev.StorageLocation, ev.ChainOfCustody, ev.RecordedByID, ev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert evidence: %w", translate(err))
	}
	return nil
}

func (s *Store) ListEvidence(ctx context.Context, caseID uuid.UUID) ([]*models.Evidence, error) {
	query := `
		SELECT id, case_id, evidence_type, description, location, collected_date,
		       collected_by, storage_location, chain_of_custody, recorded_by_id, created_at
		FROM evidence
		WHERE case_id = $1
		ORDER BY collected_date DESC, id
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("query evidence: %w", err)
	}
	defer rows.Close()

	var items []*models.Evidence
	for rows.Next() {
		var ev models.Evidence
		err := rows.Scan(
			&ev.ID, &ev.CaseID, &ev.EvidenceType, &ev.Description, &ev.Location, &ev.CollectedDate,
			&ev.CollectedBy, &ev.StorageLocation, &ev.ChainOfCustody, &ev.RecordedByID, &ev.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan evidence: %w", err)
		}
		items = append(items, &ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evidence: %w", err)
	}
	return items, nil
}

func (s *Store) CreateWitness(ctx context.Context, w *models.Witness) error {
	query := `
		INSERT INTO witnesses (
			id, case_id, name, contact_info, address,
			witness_type, statement_summary, recorded_by_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		w.ID, w.CaseID, w.Name, w.ContactInfo, w.Address,
		w.WitnessType, w.StatementSummary, w.RecordedByID, w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert witness: %w", translate(err))
	}
	return nil
}

func (s *Store) ListWitnesses(ctx context.Context, caseID uuid.UUID) ([]*models.Witness, error) {
	query := `
		SELECT id, case_id, name, contact_info, address,
		       witness_type, statement_summary, recorded_by_id, created_at
		FROM witnesses
		WHERE case_id = $1
		ORDER BY created_at DESC, id
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("query witnesses: %w", err)
	}
	defer rows.Close()

	var witnesses []*models.Witness
	for rows.Next() {
		var w models.Witness
		err := rows.Scan(
			&w.ID, &w.CaseID, &w.Name, &w.ContactInfo, &w.Address,
			&w.WitnessType, &w.StatementSummary, &w.RecordedByID, &w.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan witness: %w", err)
		}
		witnesses = append(witnesses, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate witnesses: %w", err)
	}
	return witnesses, nil
}

func (s *Store) CreateAccused(ctx context.Context, a *models.Accused) error {
	query := `
		INSERT INTO accused (
			id, case_id, name, age, gender, address, contact_info,
			arrest_date, arrest_location, charges_applied, recorded_by_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		a.ID, a.CaseID, a.Name, a.Age, a.Gender, a.Address, a.ContactInfo,
		a.ArrestDate, a.ArrestLocation, a.ChargesApplied, a.RecordedByID, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert accused: %w", translate(err))
	}
	return nil
}

func (s *Store) ListAccused(ctx context.Context, caseID uuid.UUID) ([]*models.Accused, error) {
	query := `
		SELECT id, case_id, name, age, gender, address, contact_info,
		       arrest_date, arrest_location, charges_applied, recorded_by_id, created_at
		FROM accused
		WHERE case_id = $1
		ORDER BY created_at DESC, id
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("query accused: %w", err)
	}
	defer rows.Close()

	var accused []*models.Accused
	for rows.Next() {
		var a models.Accused
		err := rows.Scan(
			&a.ID, &a.CaseID, &a.Name, &a.Age, &a.Gender, &a.Address, &a.ContactInfo,
			&a.ArrestDate, &a.ArrestLocation, &a.ChargesApplied, &a.RecordedByID, &a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan accused: %w", err)
		}
		accused = append(accused, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accused: %w", err)
	}
	return accused, nil
}
