package v1handler

import (
	"net/http"
	"tracker/internal/report"
	"tracker/internal/tracker"
	"tracker/pkg/domain"
	"tracker/pkg/logger"
	"tracker/pkg/summarizer"

	"go.uber.org/zap"
)

// DashboardResponse is the portfolio overview plus its executive summary.
type DashboardResponse struct {
	*tracker.Dashboard
	// Summary is the composed portfolio narrative.
	Summary string `json:"summary"`
}

// GetDashboard returns the portfolio overview across all live projects,
// optionally restricted to one project type via the "type" query parameter.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.deps.Tracker.Dashboard(r.Context(),
		domain.ProjectType(r.URL.Query().Get("type")))
	if err != nil {
		respondError(w, r, err)

		return
	}

	respond(w, http.StatusOK, DashboardResponse{
		Dashboard: dashboard,
		Summary:   report.Compose(dashboard),
	})
}

// TimelineResponse is the response of the timeline endpoint.
type TimelineResponse struct {
	Items []tracker.ProjectTimeline `json:"items"`
}

// GetTimeline returns the per-project plan ranges and gateway milestones.
func (h *Handler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	timeline, err := h.deps.Tracker.Timeline(r.Context())
	if err != nil {
		respondError(w, r, err)

		return
	}
	if timeline == nil {
		timeline = []tracker.ProjectTimeline{}
	}

	respond(w, http.StatusOK, TimelineResponse{Items: timeline})
}

// GetReadiness returns the gateway readiness score of one project.
func (h *Handler) GetReadiness(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, err)

		return
	}

	readiness, err := h.deps.Tracker.Readiness(r.Context(), domain.ProjectID(id))
	if err != nil {
		respondError(w, r, err)

		return
	}

	respond(w, http.StatusOK, readiness)
}

// ReportResponse is the per-project status report.
type ReportResponse struct {
	// Status is the overall verdict line of the report.
	Status string `json:"status"`
	// Summary is the composed report text.
	Summary string `json:"summary"`
	// Delays lists the module gateway slips behind the project plan, worst
	// first.
	Delays []report.Delay `json:"delays"`
}

// GetReport composes the status report of one project.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, err)

		return
	}

	project, err := h.deps.Tracker.Project(r.Context(), domain.ProjectID(id))
	if err != nil {
		respondError(w, r, err)

		return
	}

	readiness, err := h.deps.Tracker.Readiness(r.Context(), domain.ProjectID(id))
	if err != nil {
		respondError(w, r, err)

		return
	}

	delays := report.ProjectDelays(project)
	if delays == nil {
		delays = []report.Delay{}
	}

	respond(w, http.StatusOK, ReportResponse{
		Status:  report.ClassifyDelays(delays, h.deps.RiskWindowDays),
		Summary: h.composeSummary(r, project, readiness, delays),
		Delays:  delays,
	})
}

// composeSummary asks the configured summary provider first and falls back to
// the local composer when no provider is set or the call fails.
func (h *Handler) composeSummary(r *http.Request,
	project *domain.Project,
	readiness *tracker.Readiness,
	delays []report.Delay) string {
	if h.deps.Summarizer != nil {
		req := summarizer.Request{
			ProjectName: project.Name,
			ProjectType: string(project.Type),
			Readiness:   readiness.Score,
		}
		for _, d := range delays {
			req.Delays = append(req.Delays, summarizer.Delay{
				Module:  d.Module,
				Gateway: string(d.Gateway),
				Days:    d.Days,
			})
		}

		summary, err := h.deps.Summarizer.Summarize(r.Context(), req)
		if err == nil {
			return summary
		}
		logger.Warn(r.Context(), "summary provider failed, using local composer", zap.Error(err))
	}

	return report.ComposeProject(project, readiness, h.deps.RiskWindowDays)
}
