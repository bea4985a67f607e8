// Package handler is the thin HTTP layer over the case services. Handlers
// decode, delegate and encode; every rule lives in the service layer.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/daxp472/CMS/internal/auth"
	"github.com/daxp472/CMS/internal/platform/metrics"
	"github.com/daxp472/CMS/internal/platform/middleware"
	"github.com/daxp472/CMS/internal/service"
)

const requestTimeout = 30 * time.Second

// Handler owns every route of the case management API.
type Handler struct {
	svc     *service.Service
	auth    *auth.Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New wires the handler.
func New(svc *service.Service, authSvc *auth.Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{svc: svc, auth: authSvc, logger: logger, metrics: m}
}

// Routes builds the full router: public auth and health endpoints plus the
// authenticated API under /api/v1.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Latency(h.metrics))

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Post("/auth/login", h.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RequireAuth(h.auth, h.logger))

		r.Post("/auth/logout", h.handleLogout)
		r.Get("/auth/me", h.handleMe)

		r.Route("/api/v1", func(r chi.Router) {
			r.Post("/firs", h.handleRegisterFIR)
			r.Get("/firs/{firID}", h.handleGetFIR)

			r.Get("/police-stations", h.handleListPoliceStations)
			r.Get("/courts", h.handleListCourts)

			r.Route("/cases", func(r chi.Router) {
				r.Get("/", h.handleListCases)
				r.Route("/{caseID}", func(r chi.Router) {
					r.Get("/", h.handleGetCase)
					r.Get("/fir", h.handleGetCaseFIR)
					r.Post("/assign", h.handleAssignOfficer)
					r.Post("/complete-investigation", h.handleCompleteInvestigation)
					r.Post("/submit", h.handleSubmitToCourt)
					r.Post("/intake", h.handleIntakeCase)
					r.Post("/archive", h.handleArchiveCase)

					r.Get("/court-actions", h.handleListCourtActions)
					r.Post("/court-actions", h.handleRecordCourtAction)

					r.Get("/documents", h.handleListDocuments)
					r.Post("/documents", h.handleCreateDocument)

					r.Get("/investigation-events", h.handleListInvestigationEvents)
					r.Post("/investigation-events", h.handleRecordInvestigationEvent)
					r.Get("/evidence", h.handleListEvidence)
					r.Post("/evidence", h.handleAddEvidence)
					r.Get("/witnesses", h.handleListWitnesses)
					r.Post("/witnesses", h.handleAddWitness)
					r.Get("/accused", h.handleListAccused)
					r.Post("/accused", h.handleAddAccused)

					r.Get("/bail-applications", h.handleListBailApplications)
					r.Post("/bail-applications", h.handleSubmitBailApplication)

					r.Get("/timeline", h.handleGetTimeline)
					r.Get("/audit-log", h.handleGetAuditLog)
				})
			})

			r.Post("/documents/{documentID}/finalize", h.handleFinalizeDocument)
		})
	})

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
