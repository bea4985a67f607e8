package handler

import (
	"net/http"

	"github.com/daxp472/CMS/internal/models"
	"github.com/daxp472/CMS/internal/service"
)

type createDocumentRequest struct {
	DocumentType string `json:"document_type"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	FilePath     string `json:"file_path"`
}

func (h *Handler) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req createDocumentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	doc, err := h.svc.CreateDocument(r.Context(), caseID, service.CreateDocumentInput{
		DocumentType: models.DocumentType(req.DocumentType),
		Title:        req.Title,
		Description:  req.Description,
		FilePath:     req.FilePath,
	})
	if err != nil {
		logHandlerErr(h.logger, r, "create document", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDocumentResponse(doc))
}

func (h *Handler) handleFinalizeDocument(w http.ResponseWriter, r *http.Request) {
	documentID, err := urlUUID(r, "documentID")
	if err != nil {
		writeError(w, err)
		return
	}
	doc, err := h.svc.FinalizeDocument(r.Context(), documentID)
	if err != nil {
		logHandlerErr(h.logger, r, "finalize document", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentResponse(doc))
}

func (h *Handler) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	caseID, err := urlUUID(r, "caseID")
	if err != nil {
		writeError(w, err)
		return
	}
	docs, err := h.svc.ListDocuments(r.Context(), caseID)
	if err != nil {
		logHandlerErr(h.logger, r, "list documents", err)
		writeError(w, err)
		return
	}
	out := make([]documentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	writeJSON(w, http.StatusOK, out)
}
