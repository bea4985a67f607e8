package handler

import (
	"net/http"
	"time"

	"github.com/daxp472/CMS/internal/models"
	"github.com/daxp472/CMS/internal/service"
)

type bailApplicationRequest struct {
	ApplicantName     string  `json:"applicant_name"`
	ApplicantRelation string  `json:"applicant_relation"`
	Grounds           string  `json:"grounds"`
	SuretyDetails     string  `json:"surety_details"`
	AmountProposed    float64 `json:"amount_proposed"`
}

type bailApplicationResponse struct {
	ID                string    `json:"id"`
	CaseID            string    `json:"case_id"`
	ApplicantName     string    `json:"applicant_name"`
	ApplicantRelation string    `json:"applicant_relation,omitempty"`
	Grounds           string    `json:"grounds"`
	SuretyDetails     string    `json:"surety_details,omitempty"`
	AmountProposed    float64   `json:"amount_proposed,omitempty"`
	Status            string    `json:"status"`
	SubmittedByID     string    `json:"submitted_by_id"`
	CreatedAt         time.Time `json:"created_at"`
}

func toBailApplicationResponse(b *models.BailApplication) bailApplicationResponse {
	return bailApplicationResponse{
		ID:                b.ID.String(),
		CaseID:            b.CaseID.String(),
		ApplicantName:     b.ApplicantName,
		ApplicantRelation: b.ApplicantRelation,
		Grounds:           b.Grounds,
		SuretyDetails:     b.SuretyDetails,
		AmountProposed:    b.AmountProposed,
		Status:            string(b.Status),
		SubmittedByID:     b.SubmittedByID.String(),
		CreatedAt:         b.CreatedAt,
	}
}

func (h *Handler) handleSubmitBailApplication(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req bailApplicationRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	app, err := h.svc.SubmitBailApplication(r.Context(), caseID, service.BailApplicationInput{
		ApplicantName:     req.ApplicantName,
		ApplicantRelation: req.ApplicantRelation,
		Grounds:           req.Grounds,
		SuretyDetails:     req.SuretyDetails,
		AmountProposed:    req.AmountProposed,
	})
	if err != nil {
		logHandlerErr(h.logger, r, "submit bail application", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBailApplicationResponse(app))
}

func (h *Handler) handleListBailApplications(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	apps, err := h.svc.ListBailApplications(r.Context(), caseID)
	if err != nil {
		logHandlerErr(h.logger, r, "list bail applications", err)
		writeError(w, err)
		return
	}
	out := make([]bailApplicationResponse, 0, len(apps))
	for _, b := range apps {
		out = append(out, toBailApplicationResponse(b))
	}
	writeJSON(w, http.StatusOK, out)
}
