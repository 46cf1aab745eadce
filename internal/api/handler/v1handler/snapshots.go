package v1handler

import (
	"net/http"
	"tracker/internal/snapshot"
)

// SnapshotResponse is the response of the snapshot trigger endpoint.
type SnapshotResponse struct {
	// Enqueued is false when an equivalent snapshot job was already queued.
	Enqueued bool `json:"enqueued"`
}

// TriggerSnapshot enqueues an on-demand portfolio snapshot job.
func (h *Handler) TriggerSnapshot(w http.ResponseWriter, r *http.Request) {
	enqueued, err := h.deps.Storage.AddJob(r.Context(), snapshot.Args{}, nil)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respond(w, http.StatusAccepted, SnapshotResponse{Enqueued: enqueued})
}
