package models

import (
	"time"

	"github.com/google/uuid"
)

// EvidenceType classifies collected evidence.
type EvidenceType string

const (
	EvidencePhysical    EvidenceType = "PHYSICAL"
	EvidenceDigital     EvidenceType = "DIGITAL"
	EvidenceDocumentary EvidenceType = "DOCUMENTARY"
	EvidenceBiological  EvidenceType = "BIOLOGICAL"
	EvidenceOther       EvidenceType = "OTHER"
)

// WitnessType classifies witnesses.
type WitnessType string

const (
	WitnessEye       WitnessType = "EYE"
	WitnessExpert    WitnessType = "EXPERT"
	WitnessCharacter WitnessType = "CHARACTER"
	WitnessHostile   WitnessType = "HOSTILE"
	WitnessOther     WitnessType = "OTHER"
)

// InvestigationEvent is an append-only record of an investigative step. It is
// never updated after creation.
type InvestigationEvent struct {
	ID           uuid.UUID
	CaseID       uuid.UUID
	EventType    string
	EventDate    time.Time
	Location     string
	Description  string
	Findings     string
	RecordedByID uuid.UUID
	CreatedAt    time.Time
}

// Evidence is an append-only record of a collected item.
type Evidence struct {
	ID              uuid.UUID
	CaseID          uuid.UUID
	EvidenceType    EvidenceType
	Description     string
	Location        string
	CollectedDate   time.Time
	CollectedBy     string
	StorageLocation string
	ChainOfCustody  string
	RecordedByID    uuid.UUID
	CreatedAt       time.Time
}

// Witness is an append-only record of a witness attached to a case.
type Witness struct {
	ID               uuid.UUID
	CaseID           uuid.UUID
	Name             string
	ContactInfo      string
	Address          string
	WitnessType      WitnessType
	StatementSummary string
	RecordedByID     uuid.UUID
	CreatedAt        time.Time
}

// Accused is an append-only record of a person accused in a case.
type Accused struct {
	ID             uuid.UUID
	CaseID         uuid.UUID
	Name           string
	Age            int
	Gender         string
	Address        string
	ContactInfo    string
	ArrestDate     *time.Time
	ArrestLocation string
	ChargesApplied string
	RecordedByID   uuid.UUID
	CreatedAt      time.Time
}
