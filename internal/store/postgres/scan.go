package postgres

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/daxp472/CMS/internal/models"
	"github.com/daxp472/CMS/pkg/platform/sentinel"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func prefixedCaseColumns() string {
	cols := strings.Split(caseColumns, ",")
	for i, col := range cols {
		cols[i] = "c." + strings.TrimSpace(col)
	}
	return strings.Join(cols, ", ")
}

func scanCase(row rowScanner) (*models.Case, error) {
	var c models.Case
	err := row.Scan(
		&c.ID, &c.CaseNumber, &c.Category, &c.Sections, &c.PoliceStationID, &c.CourtID,
		&c.AssignedOfficerID, &c.SubmittedToCourtAt, &c.SubmissionNotes,
		&c.AcknowledgementNotes, &c.Archived, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCases(rows *sql.Rows) ([]*models.Case, error) {
	var cases []*models.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cases: %w", err)
	}
	return cases, nil
}

// requireRow converts a zero-row UPDATE into ErrNotFound so services can
// report missing entities instead of silently succeeding.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
