package models

import (
	"time"

	"github.com/google/uuid"
)

// BailStatus tracks a bail application's outcome.
type BailStatus string

const (
	BailPending  BailStatus = "PENDING"
	BailGranted  BailStatus = "GRANTED"
	BailRejected BailStatus = "REJECTED"
)

// BailApplication belongs to a case and starts in PENDING.
type BailApplication struct {
	ID                uuid.UUID
	CaseID            uuid.UUID
	ApplicantName     string
	ApplicantRelation string
	Grounds           string
	SuretyDetails     string
	AmountProposed    float64
	Status            BailStatus
	SubmittedByID     uuid.UUID
	CreatedAt         time.Time
}
