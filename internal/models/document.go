package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType is the closed set of case document kinds. Versioning is per
// (case, documentType).
type DocumentType string

const (
	DocFIR                 DocumentType = "FIR"
	DocChargesheet         DocumentType = "CHARGESHEET"
	DocInvestigationReport DocumentType = "INVESTIGATION_REPORT"
	DocEvidenceReport      DocumentType = "EVIDENCE_REPORT"
	DocWitnessStatement    DocumentType = "WITNESS_STATEMENT"
	DocForensicReport      DocumentType = "FORENSIC_REPORT"
	DocCourtOrder          DocumentType = "COURT_ORDER"
	DocJudgment            DocumentType = "JUDGMENT"
	DocBailDocument        DocumentType = "BAIL_DOCUMENT"
	DocOther               DocumentType = "OTHER"
)

// ValidDocumentType reports whether t is a known document type.
func ValidDocumentType(t DocumentType) bool {
	switch t {
	case DocFIR, DocChargesheet, DocInvestigationReport, DocEvidenceReport,
		DocWitnessStatement, DocForensicReport, DocCourtOrder, DocJudgment,
		DocBailDocument, DocOther:
		return true
	}
	return false
}

// Document belongs to a case. FilePath is an opaque reference; the system
// stores no file content. IsFinalized moves false→true exactly once.
type Document struct {
	ID           uuid.UUID
	CaseID       uuid.UUID
	DocumentType DocumentType
	Title        string
	Description  string
	FilePath     string
	Version      int
	IsFinalized  bool
	CreatedByID  uuid.UUID
	CreatedAt    time.Time
}
