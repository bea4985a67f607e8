package models

import "github.com/google/uuid"

// CourtType classifies courts for display and jurisdiction purposes.
type CourtType string

const (
	CourtMagistrate CourtType = "MAGISTRATE"
	CourtSessions   CourtType = "SESSIONS"
	CourtHigh       CourtType = "HIGH_COURT"
)

// PoliceStation is a static reference entity. Code feeds the FIR number
// format and must be stable once cases exist for the station.
type PoliceStation struct {
	ID       uuid.UUID
	Name     string
	Code     string
	District string
	State    string
}

// Court is a static reference entity; cases are assigned to a court only at
// submission time.
type Court struct {
	ID        uuid.UUID
	Name      string
	Code      string
	CourtType CourtType
	District  string
	State     string
}
