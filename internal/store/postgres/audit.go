package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/daxp472/CMS/internal/audit"
)

// Append writes one ledger row. It always runs on the execer from the
// context: inside a unit of work the row commits or rolls back with the
// mutation it describes.
func (s *Store) Append(ctx context.Context, entry audit.Entry) error {
	query := `
		INSERT INTO audit_log (id, case_id, actor_id, action, entity_type, entity_id, detail, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		entry.ID, entry.CaseID, entry.ActorID, entry.Action,
		entry.EntityType, entry.EntityID, entry.Detail, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", translate(err))
	}
	return nil
}

func (s *Store) ListByCase(ctx context.Context, caseID uuid.UUID) ([]audit.Entry, error) {
	query := `
		SELECT id, case_id, actor_id, action, entity_type, entity_id, detail, timestamp
		FROM audit_log
		WHERE case_id = $1
		ORDER BY timestamp DESC, id
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()
	return scanAuditEntries(rows)
}

func (s *Store) ListByCaseAndActions(ctx context.Context, caseID uuid.UUID, actions []audit.Action) ([]audit.Entry, error) {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = string(a)
	}
	query := `
		SELECT id, case_id, actor_id, action, entity_type, entity_id, detail, timestamp
		FROM audit_log
		WHERE case_id = $1 AND action = ANY($2)
		ORDER BY timestamp DESC, id
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, caseID, pq.Array(names))
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()
	return scanAuditEntries(rows)
}

func scanAuditEntries(rows *sql.Rows) ([]audit.Entry, error) {
	var entries []audit.Entry
	for rows.Next() {
		var e audit.Entry
		err := rows.Scan(&e.ID, &e.CaseID, &e.ActorID, &e.Action, &e.EntityType, &e.EntityID, &e.Detail, &e.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return entries, nil
}
