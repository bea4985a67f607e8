package models

import (
	"time"

	"github.com/google/uuid"
)

// CourtActionType is the closed set of judicial actions. Three of them drive
// lifecycle transitions; the rest are recorded without touching case state.
type CourtActionType string

const (
	ActionHearingScheduled CourtActionType = "HEARING_SCHEDULED"
	ActionAdjourned        CourtActionType = "ADJOURNED"
	ActionOrderIssued      CourtActionType = "ORDER_ISSUED"
	ActionJudgment         CourtActionType = "JUDGMENT"
	ActionCaseDismissed    CourtActionType = "CASE_DISMISSED"
)

// ValidCourtActionType reports whether t is a known action type.
func ValidCourtActionType(t CourtActionType) bool {
	switch t {
	case ActionHearingScheduled, ActionAdjourned, ActionOrderIssued,
		ActionJudgment, ActionCaseDismissed:
		return true
	}
	return false
}

// CourtAction is created by a judge principal and never modified afterwards.
type CourtAction struct {
	ID              uuid.UUID
	CaseID          uuid.UUID
	JudgeID         uuid.UUID
	ActionType      CourtActionType
	ActionDate      time.Time
	Description     string
	OrderDetails    string
	NextHearingDate *time.Time
	CreatedAt       time.Time
}
