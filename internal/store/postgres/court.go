package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/models"
)

func (s *Store) CreateCourtAction(ctx context.Context, a *models.CourtAction) error {
	query := `
		INSERT INTO court_actions (
			id, case_id, judge_id, action_type, action_date,
			description, order_details, next_hearing_date, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		a.ID, a.CaseID, a.JudgeID, a.ActionType, a.ActionDate,
		a.Description, a.OrderDetails, a.NextHearingDate, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert court action: %w", translate(err))
	}
	return nil
}

func (s *Store) ListCourtActions(ctx context.Context, caseID uuid.UUID) ([]*models.CourtAction, error) {
	query := `
		SELECT id, case_id, judge_id, action_type, action_date,
		       description, order_details, next_hearing_date, created_at
		FROM court_actions
		WHERE case_id = $1
		ORDER BY action_date DESC, id
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("query court actions: %w", err)
	}
	defer rows.Close()

	var actions []*models.CourtAction
	for rows.Next() {
		var a models.CourtAction
		err := rows.Scan(
			&a.ID, &a.CaseID, &a.JudgeID, &a.ActionType, &a.ActionDate,
			&a.Description, &a.OrderDetails, &a.NextHearingDate, &a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan court action: %w", err)
		}
		actions = append(actions, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate court actions: %w", err)
	}
	return actions, nil
}

func (s *Store) CreateBailApplication(ctx context.Context, b *models.BailApplication) error {
	query := `
		INSERT INTO bail_applications (
			id, case_id, applicant_name, applicant_relation, grounds,
			surety_details, amount_proposed, status, submitted_by_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		b.ID, b.CaseID, b.ApplicantName, b.ApplicantRelation, b.Grounds,
		b.SuretyDetails, b.AmountProposed, b.Status, b.SubmittedByID, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bail application: %w", translate(err))
	}
	return nil
}

func (s *Store) ListBailApplications(ctx context.Context, caseID uuid.UUID) ([]*models.BailApplication, error) {
	query := `
		SELECT id, case_id, applicant_name, applicant_relation, grounds,
		       surety_details, amount_proposed, status, submitted_by_id, created_at
		FROM bail_applications
		WHERE case_id = $1
		ORDER BY created_at DESC, id
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("query bail applications: %w", err)
	}
	defer rows.Close()

	var apps []*models.BailApplication
	for rows.Next() {
		var b models.BailApplication
		err := rows.Scan(
			&b.ID, &b.CaseID, &b.ApplicantName, &b.ApplicantRelation, &b.Grounds,
			&b.SuretyDetails, &b.AmountProposed, &b.Status, &b.SubmittedByID, &b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan bail application: %w", err)
		}
		apps = append(apps, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bail applications: %w", err)
	}
	return apps, nil
}
