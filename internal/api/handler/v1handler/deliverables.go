package v1handler

import (
	"net/http"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"
	"tracker/pkg/storage"
)

// DeliverableList is the response of the checklist listing endpoint.
type DeliverableList struct {
	Items []domain.Deliverable `json:"items"`
}

// ListDeliverables returns the checklist of a project, optionally filtered to
// one gateway stage via the stage query parameter.
func (h *Handler) ListDeliverables(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, err)

		return
	}

	deliverables, err := h.deps.Tracker.Deliverables(r.Context(), domain.ProjectID(id))
	if err != nil {
		respondError(w, r, err)

		return
	}

	if stage := r.URL.Query().Get("stage"); stage != "" {
		key := domain.GatewayKey(stage)
		filtered := make([]domain.Deliverable, 0, len(deliverables))
		for _, d := range deliverables {
			if d.Stage == key {
				filtered = append(filtered, d)
			}
		}
		deliverables = filtered
	}
	if deliverables == nil {
		deliverables = []domain.Deliverable{}
	}

	respond(w, http.StatusOK, DeliverableList{Items: deliverables})
}

// UpdateDeliverableRequest is the payload of the checklist patch endpoint.
// Absent fields are left untouched.
type UpdateDeliverableRequest struct {
	Status       *domain.DeliverableStatus `json:"status"`
	EvidenceLink *string                   `json:"evidenceLink"`
	Remarks      *string                   `json:"remarks"`
}

// UpdateDeliverable updates status, evidence or remarks of one checklist row.
func (h *Handler) UpdateDeliverable(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, err)

		return
	}
	deliverableID, err := pathUUID(r, "deliverableId")
	if err != nil {
		respondError(w, r, err)

		return
	}

	var req UpdateDeliverableRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)

		return
	}
	if req.Status == nil && req.EvidenceLink == nil && req.Remarks == nil {
		respondError(w, r, serrors.With(serrors.ErrBadRequest, "nothing to update"))

		return
	}

	deliverable, err := h.deps.Tracker.UpdateDeliverable(r.Context(),
		domain.ProjectID(projectID), domain.DeliverableID(deliverableID),
		storage.DeliverableUpdates{
			Status:       req.Status,
			EvidenceLink: req.EvidenceLink,
			Remarks:      req.Remarks,
		})
	if err != nil {
		respondError(w, r, err)

		return
	}

	respond(w, http.StatusOK, deliverable)
}

// ReloadDeliverables replaces the checklist of a project with a fresh seeding
// from the current master list. All recorded progress is discarded.
func (h *Handler) ReloadDeliverables(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, err)

		return
	}

	deliverables, err := h.deps.Tracker.ReloadDeliverables(r.Context(), domain.ProjectID(id))
	if err != nil {
		respondError(w, r, err)

		return
	}
	if deliverables == nil {
		deliverables = []domain.Deliverable{}
	}

	respond(w, http.StatusOK, DeliverableList{Items: deliverables})
}
