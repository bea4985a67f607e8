package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/models"
	"github.com/daxp472/CMS/pkg/platform/sentinel"
)

func (s *Store) CreateDocument(_ context.Context, doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.documents[doc.ID]; exists {
		return sentinel.ErrConflict
	}
	s.documents[doc.ID] = *doc
	return nil
}

func (s *Store) GetDocument(_ context.Context, id uuid.UUID) (*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &doc, nil
}

func (s *Store) UpdateDocument(_ context.Context, doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[doc.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.documents[doc.ID] = *doc
	return nil
}

// ListDocuments returns a case's documents grouped by type, newest version
// first within each type.
func (s *Store) ListDocuments(_ context.Context, caseID uuid.UUID) ([]*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Document
	for _, doc := range s.documents {
		if doc.CaseID == caseID {
			d := doc
			out = append(out, &d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DocumentType != out[j].DocumentType {
			return out[i].DocumentType < out[j].DocumentType
		}
		return out[i].Version > out[j].Version
	})
	return out, nil
}

// LatestDocumentVersion returns the highest version for (case, type), zero
// when none exists.
func (s *Store) LatestDocumentVersion(_ context.Context, caseID uuid.UUID, docType models.DocumentType) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	latest := 0
	for _, doc := range s.documents {
		if doc.CaseID == caseID && doc.DocumentType == docType && doc.Version > latest {
			latest = doc.Version
		}
	}
	return latest, nil
}
