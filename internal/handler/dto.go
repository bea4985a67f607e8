package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/audit"
	"github.com/daxp472/CMS/internal/models"
	"github.com/daxp472/CMS/internal/service"
)

func uuidPtr(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

type caseResponse struct {
	ID                   string     `json:"id"`
	CaseNumber           string     `json:"case_number"`
	Category             string     `json:"category"`
	Sections             string     `json:"sections,omitempty"`
	PoliceStationID      string     `json:"police_station_id"`
	CourtID              *string    `json:"court_id,omitempty"`
	AssignedOfficerID    *string    `json:"assigned_officer_id,omitempty"`
	SubmittedToCourtAt   *time.Time `json:"submitted_to_court_at,omitempty"`
	SubmissionNotes      string     `json:"submission_notes,omitempty"`
	AcknowledgementNotes string     `json:"acknowledgement_notes,omitempty"`
	Archived             bool       `json:"archived"`
	State                string     `json:"state"`
	StateUpdatedAt       time.Time  `json:"state_updated_at"`
	DocumentsLocked      bool       `json:"documents_locked"`
	CreatedAt            time.Time  `json:"created_at"`
}

func toCaseResponse(v *service.CaseView) caseResponse {
	c := v.Case
	return caseResponse{
		ID:                   c.ID.String(),
		CaseNumber:           c.CaseNumber,
		Category:             string(c.Category),
		Sections:             c.Sections,
		PoliceStationID:      c.PoliceStationID.String(),
		CourtID:              uuidPtr(c.CourtID),
		AssignedOfficerID:    uuidPtr(c.AssignedOfficerID),
		SubmittedToCourtAt:   c.SubmittedToCourtAt,
		SubmissionNotes:      c.SubmissionNotes,
		AcknowledgementNotes: c.AcknowledgementNotes,
		Archived:             c.Archived,
		State:                v.State,
		StateUpdatedAt:       v.StateUpdatedAt,
		DocumentsLocked:      v.DocumentsLocked,
		CreatedAt:            c.CreatedAt,
	}
}

type firResponse struct {
	ID                  string    `json:"id"`
	FIRNumber           string    `json:"fir_number"`
	CaseID              string    `json:"case_id"`
	PoliceStationID     string    `json:"police_station_id"`
	Year                int       `json:"year"`
	Sequence            int       `json:"sequence"`
	ComplainantName     string    `json:"complainant_name"`
	ComplainantContact  string    `json:"complainant_contact,omitempty"`
	ComplainantAddress  string    `json:"complainant_address,omitempty"`
	IncidentDate        time.Time `json:"incident_date"`
	IncidentLocation    string    `json:"incident_location,omitempty"`
	IncidentDescription string    `json:"incident_description"`
	Sections            string    `json:"sections,omitempty"`
	Category            string    `json:"category"`
	RegisteredByID      string    `json:"registered_by_id"`
	CreatedAt           time.Time `json:"created_at"`
}

func toFIRResponse(f *models.FIR) firResponse {
	return firResponse{
		ID:                  f.ID.String(),
		FIRNumber:           f.FIRNumber,
		CaseID:              f.CaseID.String(),
		PoliceStationID:     f.PoliceStationID.String(),
		Year:                f.Year,
		Sequence:            f.Sequence,
		ComplainantName:     f.ComplainantName,
		ComplainantContact:  f.ComplainantContact,
		ComplainantAddress:  f.ComplainantAddress,
		IncidentDate:        f.IncidentDate,
		IncidentLocation:    f.IncidentLocation,
		IncidentDescription: f.IncidentDescription,
		Sections:            f.Sections,
		Category:            string(f.Category),
		RegisteredByID:      f.RegisteredByID.String(),
		CreatedAt:           f.CreatedAt,
	}
}

type documentResponse struct {
	ID           string    `json:"id"`
	CaseID       string    `json:"case_id"`
	DocumentType string    `json:"document_type"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	FilePath     string    `json:"file_path"`
	Version      int       `json:"version"`
	IsFinalized  bool      `json:"is_finalized"`
	CreatedByID  string    `json:"created_by_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func toDocumentResponse(d *models.Document) documentResponse {
	return documentResponse{
		ID:           d.ID.String(),
		CaseID:       d.CaseID.String(),
		DocumentType: string(d.DocumentType),
		Title:        d.Title,
		Description:  d.Description,
		FilePath:     d.FilePath,
		Version:      d.Version,
		IsFinalized:  d.IsFinalized,
		CreatedByID:  d.CreatedByID.String(),
		CreatedAt:    d.CreatedAt,
	}
}

type courtActionResponse struct {
	ID              string     `json:"id"`
	CaseID          string     `json:"case_id"`
	JudgeID         string     `json:"judge_id"`
	ActionType      string     `json:"action_type"`
	ActionDate      time.Time  `json:"action_date"`
	Description     string     `json:"description"`
	OrderDetails    string     `json:"order_details,omitempty"`
	NextHearingDate *time.Time `json:"next_hearing_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func toCourtActionResponse(a *models.CourtAction) courtActionResponse {
	return courtActionResponse{
		ID:              a.ID.String(),
		CaseID:          a.CaseID.String(),
		JudgeID:         a.JudgeID.String(),
		ActionType:      string(a.ActionType),
		ActionDate:      a.ActionDate,
		Description:     a.Description,
		OrderDetails:    a.OrderDetails,
		NextHearingDate: a.NextHearingDate,
		CreatedAt:       a.CreatedAt,
	}
}

type auditEntryResponse struct {
	ID         string    `json:"id"`
	CaseID     string    `json:"case_id"`
	ActorID    string    `json:"actor_id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Detail     string    `json:"detail,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func toAuditEntryResponse(e audit.Entry) auditEntryResponse {
	return auditEntryResponse{
		ID:         e.ID.String(),
		CaseID:     e.CaseID.String(),
		ActorID:    e.ActorID.String(),
		Action:     string(e.Action),
		EntityType: e.EntityType,
		EntityID:   e.EntityID.String(),
		Detail:     e.Detail,
		Timestamp:  e.Timestamp,
	}
}

type timelineItemResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail,omitempty"`
	ActorID   string    `json:"actor_id"`
	EntityID  string    `json:"entity_id"`
}

func toTimelineResponse(items []service.TimelineItem) []timelineItemResponse {
	out := make([]timelineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, timelineItemResponse{
			Timestamp: it.Timestamp,
			Kind:      it.Kind,
			Title:     it.Title,
			Detail:    it.Detail,
			ActorID:   it.ActorID.String(),
			EntityID:  it.EntityID.String(),
		})
	}
	return out
}
