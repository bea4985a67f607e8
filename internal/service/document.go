package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/audit"
	"github.com/daxp472/CMS/internal/lifecycle"
	"github.com/daxp472/CMS/internal/models"
	dErrors "github.com/daxp472/CMS/pkg/domain-errors"
	"github.com/daxp472/CMS/pkg/requestcontext"
)

// CreateDocumentInput carries a new document version.
type CreateDocumentInput struct {
	DocumentType models.DocumentType
	Title        string
	Description  string
	FilePath     string
}

func (in *CreateDocumentInput) validate() error {
	if !models.ValidDocumentType(in.DocumentType) {
		return dErrors.Newf(dErrors.CodeBadRequest, "unknown document type: %s", in.DocumentType)
	}
	if strings.TrimSpace(in.Title) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "title is required")
	}
	if strings.TrimSpace(in.FilePath) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "file path is required")
	}
	return nil
}

// CreateDocument adds the next version of a document type to a case. The
// version number is allocated inside the transaction, so concurrent creates
// of the same type cannot collide.
func (s *Service) CreateDocument(ctx context.Context, caseID uuid.UUID, in CreateDocumentInput) (*models.Document, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	c, st, err := s.authorizedCase(ctx, p, caseID)
	if err != nil {
		return nil, err
	}
	if err := requireDocumentsUnlocked(st); err != nil {
		return nil, err
	}

	var doc models.Document
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.lockCaseState(ctx, st); err != nil {
			return err
		}
		if err := requireDocumentsUnlocked(st); err != nil {
			return err
		}
		latest, err := s.store.LatestDocumentVersion(ctx, c.ID, in.DocumentType)
		if err != nil {
			return translateStoreErr(err, "document not found")
		}
		doc = models.Document{
			ID:           uuid.New(),
			CaseID:       c.ID,
			DocumentType: in.DocumentType,
			Title:        in.Title,
			Description:  in.Description,
			FilePath:     in.FilePath,
			Version:      latest + 1,
			CreatedByID:  p.UserID,
			CreatedAt:    requestcontext.Now(ctx),
		}
		if err := s.store.CreateDocument(ctx, &doc); err != nil {
			return translateStoreErr(err, "document not found")
		}
		return s.recorder.Record(ctx, c.ID, p.UserID, audit.ActionDocumentCreated, "document", doc.ID, doc.Title)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "document created",
		"case_id", c.ID,
		"document_type", doc.DocumentType,
		"version", doc.Version,
	)
	return &doc, nil
}

// FinalizeDocument marks a document version final. Finalization is one-way
// and refuses locked cases just like creation.
func (s *Service) FinalizeDocument(ctx context.Context, documentID uuid.UUID) (*models.Document, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := s.store.GetDocument(ctx, documentID)
	if err != nil {
		return nil, translateStoreErr(err, "document not found")
	}
	c, st, err := s.authorizedCase(ctx, p, doc.CaseID)
	if err != nil {
		return nil, err
	}
	if err := requireDocumentsUnlocked(st); err != nil {
		return nil, err
	}
	if doc.IsFinalized {
		return nil, dErrors.New(dErrors.CodeBadRequest, "document is already finalized")
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.lockCaseState(ctx, st); err != nil {
			return err
		}
		if err := requireDocumentsUnlocked(st); err != nil {
			return err
		}
		doc.IsFinalized = true
		if err := s.store.UpdateDocument(ctx, doc); err != nil {
			return translateStoreErr(err, "document not found")
		}
		return s.recorder.Record(ctx, c.ID, p.UserID, audit.ActionDocumentFinalized, "document", doc.ID, doc.Title)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "document finalized", "case_id", c.ID, "document_id", doc.ID)
	return doc, nil
}

// ListDocuments returns a case's documents grouped by type with the newest
// version first.
func (s *Service) ListDocuments(ctx context.Context, caseID uuid.UUID) ([]*models.Document, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.authorizedCase(ctx, p, caseID); err != nil {
		return nil, err
	}
	docs, err := s.store.ListDocuments(ctx, caseID)
	if err != nil {
		return nil, translateStoreErr(err, "documents not found")
	}
	return docs, nil
}

func requireDocumentsUnlocked(st *models.CurrentCaseState) error {
	if lifecycle.DocumentsLocked(lifecycle.State(st.State)) {
		return dErrors.Newf(dErrors.CodeForbidden, "case documents are locked in state: %s", st.State)
	}
	return nil
}
