package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/audit"
)

// GetAuditLog returns a case's full ledger, newest first, scoped to the
// principal's organization like every other case read.
func (s *Service) GetAuditLog(ctx context.Context, caseID uuid.UUID) ([]audit.Entry, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.authorizedCase(ctx, p, caseID); err != nil {
		return nil, err
	}
	entries, err := s.store.ListByCase(ctx, caseID)
	if err != nil {
		return nil, translateStoreErr(err, "audit log not found")
	}
	return entries, nil
}
