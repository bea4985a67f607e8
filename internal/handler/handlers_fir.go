package handler

import (
	"net/http"
	"time"

	"github.com/daxp472/CMS/internal/models"
	"github.com/daxp472/CMS/internal/service"
)

type registerFIRRequest struct {
	ComplainantName     string    `json:"complainant_name"`
	ComplainantContact  string    `json:"complainant_contact"`
	ComplainantAddress  string    `json:"complainant_address"`
	IncidentDate        time.Time `json:"incident_date"`
	IncidentLocation    string    `json:"incident_location"`
	IncidentDescription string    `json:"incident_description"`
	Sections            string    `json:"sections"`
	Category            string    `json:"category"`
}

type registerFIRResponse struct {
	FIR  firResponse  `json:"fir"`
	Case caseResponse `json:"case"`
}

func (h *Handler) handleRegisterFIR(w http.ResponseWriter, r *http.Request) {
	var req registerFIRRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	fir, c, err := h.svc.RegisterFIR(r.Context(), service.RegisterFIRInput{
		ComplainantName:     req.ComplainantName,
		ComplainantContact:  req.ComplainantContact,
		ComplainantAddress:  req.ComplainantAddress,
		IncidentDate:        req.IncidentDate,
		IncidentLocation:    req.IncidentLocation,
		IncidentDescription: req.IncidentDescription,
		Sections:            req.Sections,
		Category:            models.CaseCategory(req.Category),
	})
	if err != nil {
		logHandlerErr(h.logger, r, "register fir", err)
		writeError(w, err)
		return
	}

	view, err := h.svc.GetCase(r.Context(), c.ID)
	if err != nil {
		logHandlerErr(h.logger, r, "register fir", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, registerFIRResponse{
		FIR:  toFIRResponse(fir),
		Case: toCaseResponse(view),
	})
}

func (h *Handler) handleGetFIR(w http.ResponseWriter, r *http.Request) {
	firID, err := urlUUID(r, "firID")
	if err != nil {
		writeError(w, err)
		return
	}
	fir, err := h.svc.GetFIR(r.Context(), firID)
	if err != nil {
		logHandlerErr(h.logger, r, "get fir", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toFIRResponse(fir))
}

func (h *Handler) handleGetCaseFIR(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	fir, err := h.svc.GetCaseFIR(r.Context(), caseID)
	if err != nil {
		logHandlerErr(h.logger, r, "get case fir", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toFIRResponse(fir))
}
