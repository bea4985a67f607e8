package handler

import (
	"net/http"
	"time"

	"github.com/daxp472/CMS/internal/models"
	"github.com/daxp472/CMS/internal/service"
)

type investigationEventRequest struct {
	EventType   string    `json:"event_type"`
	EventDate   time.Time `json:"event_date"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Findings    string    `json:"findings"`
}

type investigationEventResponse struct {
	ID           string    `json:"id"`
	CaseID       string    `json:"case_id"`
	EventType    string    `json:"event_type"`
	EventDate    time.Time `json:"event_date"`
	Location     string    `json:"location,omitempty"`
	Description  string    `json:"description"`
	Findings     string    `json:"findings,omitempty"`
	RecordedByID string    `json:"recorded_by_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func toInvestigationEventResponse(ev *models.InvestigationEvent) investigationEventResponse {
	return investigationEventResponse{
		ID:           ev.ID.String(),
		CaseID:       ev.CaseID.String(),
		EventType:    ev.EventType,
		EventDate:    ev.EventDate,
		Location:     ev.Location,
		Description:  ev.Description,
		Findings:     ev.Findings,
		RecordedByID: ev.RecordedByID.String(),
		CreatedAt:    ev.CreatedAt,
	}
}

func (h *Handler) handleRecordInvestigationEvent(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req investigationEventRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	ev, err := h.svc.RecordInvestigationEvent(r.Context(), caseID, service.InvestigationEventInput{
		EventType:   req.EventType,
		EventDate:   req.EventDate,
		Location:    req.Location,
		Description: req.Description,
		Findings:    req.Findings,
	})
	if err != nil {
		logHandlerErr(h.logger, r, "record investigation event", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toInvestigationEventResponse(ev))
}

func (h *Handler) handleListInvestigationEvents(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	events, err := h.svc.ListInvestigationEvents(r.Context(), caseID)
	if err != nil {
		logHandlerErr(h.logger, r, "list investigation events", err)
		writeError(w, err)
		return
	}
	out := make([]investigationEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, toInvestigationEventResponse(ev))
	}
	writeJSON(w, http.StatusOK, out)
}

type evidenceRequest struct {
	EvidenceType    string    `json:"evidence_type"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	CollectedDate   time.Time `json:"collected_date"`
	CollectedBy     string    `json:"collected_by"`
	StorageLocation string    `json:"storage_location"`
	ChainOfCustody  string    `json:"chain_of_custody"`
}

type evidenceResponse struct {
	ID              string    `json:"id"`
	CaseID          string    `json:"case_id"`
	EvidenceType    string    `json:"evidence_type"`
	Description     string    `json:"description"`
	Location        string    `json:"location,omitempty"`
	CollectedDate   time.Time `json:"collected_date"`
	CollectedBy     string    `json:"collected_by,omitempty"`
	StorageLocation string    `json:"storage_location,omitempty"`
	ChainOfCustody  string    `json:"chain_of_custody,omitempty"`
	RecordedByID    string    `json:"recorded_by_id"`
	CreatedAt       time.Time `json:"created_at"`
}

func toEvidenceResponse(ev *models.Evidence) evidenceResponse {
	return evidenceResponse{
		ID:              ev.ID.String(),
		CaseID:          ev.CaseID.String(),
		EvidenceType:    string(ev.EvidenceType),
		Description:     ev.Description,
		Location:        ev.Location,
		CollectedDate:   ev.CollectedDate,
		CollectedBy:     ev.CollectedBy,
		StorageLocation: ev.StorageLocation,
		ChainOfCustody:  ev.ChainOfCustody,
		RecordedByID:    ev.RecordedByID.String(),
		CreatedAt:       ev.CreatedAt,
	}
}

func (h *Handler) handleAddEvidence(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req evidenceRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	ev, err := h.svc.AddEvidence(r.Context(), caseID, service.EvidenceInput{
		EvidenceType:    models.EvidenceType(req.EvidenceType),
		Description:     req.Description,
		Location:        req.Location,
		CollectedDate:   req.CollectedDate,
		CollectedBy:     req.CollectedBy,
		StorageLocation: req.StorageLocation,
		ChainOfCustody:  req.ChainOfCustody,
	})
	if err != nil {
		logHandlerErr(h.logger, r, "add evidence", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEvidenceResponse(ev))
}

func (h *Handler) handleListEvidence(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := h.svc.ListEvidence(r.Context(), caseID)
	if err != nil {
		logHandlerErr(h.logger, r, "list evidence", err)
		writeError(w, err)
		return
	}
	out := make([]evidenceResponse, 0, len(items))
	for _, ev := range items {
		out = append(out, toEvidenceResponse(ev))
	}
	writeJSON(w, http.StatusOK, out)
}

type witnessRequest struct {
	Name             string `json:"name"`
	ContactInfo      string `json:"contact_info"`
	Address          string `json:"address"`
	WitnessType      string `json:"witness_type"`
	StatementSummary string `json:"statement_summary"`
}

type witnessResponse struct {
	ID               string    `json:"id"`
	CaseID           string    `json:"case_id"`
	Name             string    `json:"name"`
	ContactInfo      string    `json:"contact_info,omitempty"`
	Address          string    `json:"address,omitempty"`
	WitnessType      string    `json:"witness_type"`
	StatementSummary string    `json:"statement_summary,omitempty"`
	RecordedByID     string    `json:"recorded_by_id"`
	CreatedAt        time.Time `json:"created_at"`
}

func toWitnessResponse(wit *models.Witness) witnessResponse {
	return witnessResponse{
		ID:               wit.ID.String(),
		CaseID:           wit.CaseID.String(),
		Name:             wit.Name,
		ContactInfo:      wit.ContactInfo,
		Address:          wit.Address,
		WitnessType:      string(wit.WitnessType),
		StatementSummary: wit.StatementSummary,
		RecordedByID:     wit.RecordedByID.String(),
		CreatedAt:        wit.CreatedAt,
	}
}

func (h *Handler) handleAddWitness(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req witnessRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	wit, err := h.svc.AddWitness(r.Context(), caseID, service.WitnessInput{
		Name:             req.Name,
		ContactInfo:      req.ContactInfo,
		Address:          req.Address,
		WitnessType:      models.WitnessType(req.WitnessType),
		StatementSummary: req.StatementSummary,
	})
	if err != nil {
		logHandlerErr(h.logger, r, "add witness", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWitnessResponse(wit))
}

func (h *Handler) handleListWitnesses(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	witnesses, err := h.svc.ListWitnesses(r.Context(), caseID)
	if err != nil {
		logHandlerErr(h.logger, r, "list witnesses", err)
		writeError(w, err)
		return
	}
	out := make([]witnessResponse, 0, len(witnesses))
	for _, wit := range witnesses {
		out = append(out, toWitnessResponse(wit))
	}
	writeJSON(w, http.StatusOK, out)
}

type accusedRequest struct {
	Name           string     `json:"name"`
	Age            int        `json:"age"`
	Gender         string     `json:"gender"`
	Address        string     `json:"address"`
	ContactInfo    string     `json:"contact_info"`
	ArrestDate     *time.Time `json:"arrest_date"`
	ArrestLocation string     `json:"arrest_location"`
	ChargesApplied string     `json:"charges_applied"`
}

type accusedResponse struct {
	ID             string     `json:"id"`
	CaseID         string     `json:"case_id"`
	Name           string     `json:"name"`
	Age            int        `json:"age,omitempty"`
	Gender         string     `json:"gender,omitempty"`
	Address        string     `json:"address,omitempty"`
	ContactInfo    string     `json:"contact_info,omitempty"`
	ArrestDate     *time.Time `json:"arrest_date,omitempty"`
	ArrestLocation string     `json:"arrest_location,omitempty"`
	ChargesApplied string     `json:"charges_applied,omitempty"`
	RecordedByID   string     `json:"recorded_by_id"`
	CreatedAt      time.Time  `json:"created_at"`
}

func toAccusedResponse(a *models.Accused) accusedResponse {
	return accusedResponse{
		ID:             a.ID.String(),
		CaseID:         a.CaseID.String(),
		Name:           a.Name,
		Age:            a.Age,
		Gender:         a.Gender,
		Address:        a.Address,
		ContactInfo:    a.ContactInfo,
		ArrestDate:     a.ArrestDate,
		ArrestLocation: a.ArrestLocation,
		ChargesApplied: a.ChargesApplied,
		RecordedByID:   a.RecordedByID.String(),
		CreatedAt:      a.CreatedAt,
	}
}

func (h *Handler) handleAddAccused(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req accusedRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	a, err := h.svc.AddAccused(r.Context(), caseID, service.AccusedInput{
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		Address:        req.Address,
		ContactInfo:    req.ContactInfo,
		ArrestDate:     req.ArrestDate,
		ArrestLocation: req.ArrestLocation,
		ChargesApplied: req.ChargesApplied,
	})
	if err != nil {
		logHandlerErr(h.logger, r, "add accused", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAccusedResponse(a))
}

func (h *Handler) handleListAccused(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	accused, err := h.svc.ListAccused(r.Context(), caseID)
	if err != nil {
		logHandlerErr(h.logger, r, "list accused", err)
		writeError(w, err)
		return
	}
	out := make([]accusedResponse, 0, len(accused))
	for _, a := range accused {
		out = append(out, toAccusedResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}
