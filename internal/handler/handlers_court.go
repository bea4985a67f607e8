package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/daxp472/CMS/internal/models"
	"github.com/daxp472/CMS/internal/service"
	dErrors "github.com/daxp472/CMS/pkg/domain-errors"
)

type submitToCourtRequest struct {
	CourtID string `json:"court_id"`
	Notes   string `json:"notes"`
}

func (h *Handler) handleSubmitToCourt(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req submitToCourtRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	courtID, err := uuid.Parse(req.CourtID)
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid court_id"))
		return
	}

	view, err := h.svc.SubmitToCourt(r.Context(), caseID, courtID, req.Notes)
	if err != nil {
		logHandlerErr(h.logger, r, "submit to court", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCaseResponse(view))
}

type intakeCaseRequest struct {
	AcknowledgementNotes string `json:"acknowledgement_notes"`
}

func (h *Handler) handleIntakeCase(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req intakeCaseRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	view, err := h.svc.IntakeCase(r.Context(), caseID, req.AcknowledgementNotes)
	if err != nil {
		logHandlerErr(h.logger, r, "intake case", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCaseResponse(view))
}

type courtActionRequest struct {
	ActionType      string     `json:"action_type"`
	ActionDate      time.Time  `json:"action_date"`
	Description     string     `json:"description"`
	OrderDetails    string     `json:"order_details"`
	NextHearingDate *time.Time `json:"next_hearing_date"`
}

func (h *Handler) handleRecordCourtAction(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req courtActionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	action, err := h.svc.RecordCourtAction(r.Context(), caseID, service.CourtActionInput{
		ActionType:      models.CourtActionType(req.ActionType),
		ActionDate:      req.ActionDate,
		Description:     req.Description,
		OrderDetails:    req.OrderDetails,
		NextHearingDate: req.NextHearingDate,
	})
	if err != nil {
		logHandlerErr(h.logger, r, "record court action", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCourtActionResponse(action))
}

func (h *Handler) handleListCourtActions(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	actions, err := h.svc.ListCourtActions(r.Context(), caseID)
	if err != nil {
		logHandlerErr(h.logger, r, "list court actions", err)
		writeError(w, err)
		return
	}
	out := make([]courtActionResponse, 0, len(actions))
	for _, a := range actions {
		out = append(out, toCourtActionResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}
