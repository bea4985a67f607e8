package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FIR is the First Information Report that originates a case. It is created
// atomically with its case and never exists without one.
//
// FIRNumber is a bit-exact contract: {stationCode}/{year}/{sequence:04d},
// with the sequence strictly increasing per (station, year) and resetting to
// 1 each calendar year.
type FIR struct {
	ID                  uuid.UUID
	FIRNumber           string
	CaseID              uuid.UUID
	PoliceStationID     uuid.UUID
	Year                int
	Sequence            int
	ComplainantName     string
	ComplainantContact  string
	ComplainantAddress  string
	IncidentDate        time.Time
	IncidentLocation    string
	IncidentDescription string
	Sections            string
	Category            CaseCategory
	RegisteredByID      uuid.UUID
	CreatedAt           time.Time
}

// FIRNumberFor formats the FIR number contract.
func FIRNumberFor(stationCode string, year, sequence int) string {
	return fmt.Sprintf("%s/%d/%04d", stationCode, year, sequence)
}
