package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CaseCategory classifies the case at registration time.
type CaseCategory string

const (
	CategoryCriminal CaseCategory = "CRIMINAL"
	CategoryCivil    CaseCategory = "CIVIL"
	CategoryTraffic  CaseCategory = "TRAFFIC"
	CategoryOther    CaseCategory = "OTHER"
)

// ValidCategory reports whether c is a known category.
func ValidCategory(c CaseCategory) bool {
	switch c {
	case CategoryCriminal, CategoryCivil, CategoryTraffic, CategoryOther:
		return true
	}
	return false
}

// Case is the aggregate root. A case always belongs to exactly one police
// station; a court is attached only at submission time. The authoritative
// lifecycle state lives in the companion CurrentCaseState row, created
// atomically with the case and never absent afterwards.
type Case struct {
	ID                   uuid.UUID
	CaseNumber           string
	Category             CaseCategory
	Sections             string
	PoliceStationID      uuid.UUID
	CourtID              *uuid.UUID
	AssignedOfficerID    *uuid.UUID
	SubmittedToCourtAt   *time.Time
	SubmissionNotes      string
	AcknowledgementNotes string
	Archived             bool
	CreatedAt            time.Time
}

// CaseNumberFor derives the human-readable case number from the case identity
// and registration year.
func CaseNumberFor(id uuid.UUID, year int) string {
	short := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
	return fmt.Sprintf("CASE/%d/%s", year, short)
}

// CurrentCaseState is the single authoritative lifecycle state row for a
// case. It is overwritten in place on every transition; the audit ledger is
// the only history.
type CurrentCaseState struct {
	CaseID      uuid.UUID
	State       string
	UpdatedByID uuid.UUID
	UpdatedAt   time.Time
}

// CaseFilter narrows case listings. Zero values mean "no filter".
type CaseFilter struct {
	State             string
	Category          CaseCategory
	AssignedOfficerID *uuid.UUID
}
