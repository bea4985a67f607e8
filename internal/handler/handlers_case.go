package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/models"
	dErrors "github.com/daxp472/CMS/pkg/domain-errors"
)

func (h *Handler) handleGetCase(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	view, err := h.svc.GetCase(r.Context(), caseID)
	if err != nil {
		logHandlerErr(h.logger, r, "get case", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCaseResponse(view))
}

func (h *Handler) handleListCases(w http.ResponseWriter, r *http.Request) {
	filter := models.CaseFilter{
		State:    r.URL.Query().Get("state"),
		Category: models.CaseCategory(r.URL.Query().Get("category")),
	}
	if officer := r.URL.Query().Get("assigned_officer_id"); officer != "" {
		id, err := uuid.Parse(officer)
		if err != nil {
			writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid assigned_officer_id"))
			return
		}
		filter.AssignedOfficerID = &id
	}

	views, err := h.svc.ListCases(r.Context(), filter)
	if err != nil {
		logHandlerErr(h.logger, r, "list cases", err)
		writeError(w, err)
		return
	}
	out := make([]caseResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toCaseResponse(v))
	}
	writeJSON(w, http.StatusOK, out)
}

type assignOfficerRequest struct {
	OfficerID string `json:"officer_id"`
}

func (h *Handler) handleAssignOfficer(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req assignOfficerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	officerID, err := uuid.Parse(req.OfficerID)
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid officer_id"))
		return
	}

	view, err := h.svc.AssignOfficer(r.Context(), caseID, officerID)
	if err != nil {
		logHandlerErr(h.logger, r, "assign officer", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCaseResponse(view))
}

func (h *Handler) handleCompleteInvestigation(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	view, err := h.svc.CompleteInvestigation(r.Context(), caseID)
	if err != nil {
		logHandlerErr(h.logger, r, "complete investigation", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCaseResponse(view))
}

func (h *Handler) handleArchiveCase(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	view, err := h.svc.ArchiveCase(r.Context(), caseID)
	if err != nil {
		logHandlerErr(h.logger, r, "archive case", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCaseResponse(view))
}

func (h *Handler) handleGetTimeline(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := h.svc.GetTimeline(r.Context(), caseID)
	if err != nil {
		logHandlerErr(h.logger, r, "get timeline", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTimelineResponse(items))
}

func (h *Handler) handleGetAuditLog(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	entries, err := h.svc.GetAuditLog(r.Context(), caseID)
	if err != nil {
		logHandlerErr(h.logger, r, "get audit log", err)
		writeError(w, err)
		return
	}
	out := make([]auditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toAuditEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}
