// Package v1handler implements the HTTP handlers of the v1 REST API. Routes
// are mounted with Go 1.22 method patterns; every business endpoint sits
// behind the bearer-token security handler.
package v1handler

import (
	"encoding/json"
	"net/http"
	"tracker/internal/tracker"
	"tracker/pkg/logger"
	"tracker/pkg/serrors"
	"tracker/pkg/storage"
	"tracker/pkg/summarizer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultLimit is the page size used when a list request does not specify one.
const DefaultLimit = 20

// Deps groups the dependencies of the v1 handlers.
type Deps struct {
	// Tracker is the core service behind every business endpoint.
	Tracker tracker.Tracker
	// Storage enqueues background jobs and feeds the export endpoints.
	Storage storage.Storage
	// Summarizer optionally generates report summaries with a language-model
	// provider; nil keeps the locally composed summaries.
	Summarizer summarizer.Client
	// RiskWindowDays feeds the executive summary classification.
	RiskWindowDays int
}

// Handler carries the shared dependencies of all v1 endpoints.
type Handler struct {
	deps Deps
}

// New creates the v1 handler set.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts every v1 route on the mux, wrapped with the security
// handler.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, sec.Middleware(fn))
	}

	handle("GET /v1/projects", h.ListProjects)
	handle("POST /v1/projects", h.CreateProject)
	handle("GET /v1/projects/{id}", h.GetProject)
	handle("PATCH /v1/projects/{id}", h.UpdateProject)
	handle("DELETE /v1/projects/{id}", h.DeleteProject)
	handle("PUT /v1/projects/{id}/gateways/{gw}/plan", h.SetPlanDate)

	handle("POST /v1/projects/{id}/modules", h.AddModule)
	handle("PATCH /v1/projects/{id}/modules/{moduleId}", h.RenameModule)
	handle("DELETE /v1/projects/{id}/modules/{moduleId}", h.DeleteModule)
	handle("PUT /v1/projects/{id}/modules/{moduleId}/gateways/{gw}", h.RecordGateway)

	handle("GET /v1/projects/{id}/deliverables", h.ListDeliverables)
	handle("PATCH /v1/projects/{id}/deliverables/{deliverableId}", h.UpdateDeliverable)
	handle("POST /v1/projects/{id}/deliverables/reload", h.ReloadDeliverables)

	handle("GET /v1/projects/{id}/readiness", h.GetReadiness)
	handle("GET /v1/projects/{id}/report", h.GetReport)
	handle("GET /v1/dashboard/stats", h.GetDashboard)
	handle("GET /v1/dashboard/timeline", h.GetTimeline)

	handle("GET /v1/export/csv", h.ExportCSV)
	handle("GET /v1/export/xlsx", h.ExportExcel)
	handle("GET /v1/export/template", h.ExportTemplate)
	handle("POST /v1/import", h.Import)

	handle("POST /v1/snapshots", h.TriggerSnapshot)
}

// ErrorResponse is the error payload of every endpoint.
type ErrorResponse struct {
	// Code is the stable machine-readable error code.
	Code string `json:"code"`
	// Message is a human-readable description.
	Message string `json:"message"`
}

// respond writes a JSON response with the given status.
func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// respondError maps a semantic error onto its HTTP status and {code, message}
// payload. Unrecognized errors respond 500 without leaking their message.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := serrors.HTTPStatus(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
		message = "internal error"
	}

	respond(w, status, ErrorResponse{
		Code:    serrors.Code(err),
		Message: message,
	})
}

// decode parses a JSON request body.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

// pathUUID parses one UUID path segment.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return id, nil
}
