package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/models"
)

const documentColumns = `id, case_id, document_type, title, description, file_path,
	version, is_finalized, created_by_id, created_at`

func (s *Store) CreateDocument(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		doc.ID, doc.CaseID, doc.DocumentType, doc.Title, doc.Description, doc.FilePath,
		doc.Version, doc.IsFinalized, doc.CreatedByID, doc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", translate(err))
	}
	return nil
}

func (s *Store) GetDocument(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	doc, err := scanDocument(s.execer(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translate(err)
	}
	return doc, nil
}

func (s *Store) UpdateDocument(ctx context.Context, doc *models.Document) error {
	query := `
		UPDATE documents
		SET title = $2, description = $3, is_finalized = $4
		WHERE id = $1
	`
	res, err := s.execer(ctx).ExecContext(ctx, query, doc.ID, doc.Title, doc.Description, doc.IsFinalized)
	if err != nil {
		return fmt.Errorf("update document: %w", translate(err))
	}
	return requireRow(res)
}

func (s *Store) ListDocuments(ctx context.Context, caseID uuid.UUID) ([]*models.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE case_id = $1
		ORDER BY document_type, version DESC
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}

// LatestDocumentVersion returns 0 when no document of the type exists yet.
func (s *Store) LatestDocumentVersion(ctx context.Context, caseID uuid.UUID, docType models.DocumentType) (int, error) {
	query := `
		SELECT COALESCE(MAX(version), 0)
		FROM documents
		WHERE case_id = $1 AND document_type = $2
	`
	var version int
	err := s.execer(ctx).QueryRowContext(ctx, query, caseID, docType).Scan(&version)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("latest document version: %w", err)
	}
	return version, nil
}

func scanDocument(row rowScanner) (*models.Document, error) {
	var doc models.Document
	err := row.Scan(
		&doc.ID, &doc.CaseID, &doc.DocumentType, &doc.Title, &doc.Description, &doc.FilePath,
		&doc.Version, &doc.IsFinalized, &doc.CreatedByID, &doc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
