package v1handler

import (
	"fmt"
	"net/http"
	"time"
	"tracker/internal/exchange"
	"tracker/pkg/logger"
	"tracker/pkg/serrors"

	"go.uber.org/zap"
)

// ExportCSV streams every live project as a flat CSV download.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	projects, err := h.deps.Storage.AllProjects(r.Context())
	if err != nil {
		respondError(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", attachment("csv"))
	if err := exchange.WriteCSV(w, projects); err != nil {
		logger.Error(r.Context(), "CSV export failed", zap.Error(err))
	}
}

// ExportExcel streams every live project as a styled Excel workbook.
func (h *Handler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	projects, err := h.deps.Storage.AllProjects(r.Context())
	if err != nil {
		respondError(w, r, err)

		return
	}

	w.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", attachment("xlsx"))
	if err := exchange.WriteExcel(w, projects); err != nil {
		logger.Error(r.Context(), "Excel export failed", zap.Error(err))
	}
}

// ExportTemplate streams an empty CSV carrying only the import header.
func (h *Handler) ExportTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="import-template.csv"`)
	if err := exchange.WriteTemplate(w); err != nil {
		logger.Error(r.Context(), "template export failed", zap.Error(err))
	}
}

// Import parses a CSV upload and merges it into the portfolio by name.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	batch, err := exchange.ParseCSV(r.Body)
	if err != nil {
		respondError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not parse upload"))

		return
	}

	summary, err := h.deps.Tracker.Import(r.Context(), batch)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respond(w, http.StatusOK, summary)
}

// attachment builds a timestamped Content-Disposition value for exports.
func attachment(ext string) string {
	return fmt.Sprintf(`attachment; filename="projects-%s.%s"`,
		time.Now().UTC().Format("20060102"), ext)
}
