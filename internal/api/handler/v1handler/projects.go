package v1handler

import (
	"net/http"
	"strconv"
	"time"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"
	"tracker/pkg/storage"
)

// ProjectList is the response of the project listing endpoint.
type ProjectList struct {
	// Items holds the current page.
	Items []domain.Project `json:"items"`
	// NextCursor requests the next page when non-empty.
	NextCursor string `json:"nextCursor,omitempty"`
}

// ListProjects returns a page of hydrated projects. Supports type, cursor and
// limit query parameters.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	limit := uint(DefaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			respondError(w, r, serrors.With(serrors.ErrBadRequest, "invalid limit %q", raw))

			return
		}
		limit = uint(parsed)
	}

	projects, next, err := h.deps.Tracker.Projects(r.Context(),
		domain.ProjectType(r.URL.Query().Get("type")),
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		respondError(w, r, err)

		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}

	respond(w, http.StatusOK, ProjectList{Items: projects, NextCursor: next})
}

// CreateProjectRequest is the payload of the project creation endpoint.
type CreateProjectRequest struct {
	// Name is the unique project name.
	Name string `json:"name"`
	// Type is the project type, Major when empty.
	Type domain.ProjectType `json:"type"`
	// D0Plan optionally commits the Concept gateway plan date (YYYY-MM-DD).
	D0Plan string `json:"d0Plan"`
	// ModuleCount seeds that many generated modules up front.
	ModuleCount uint `json:"moduleCount"`
}

// CreateProject creates a project with its seeded checklist.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)

		return
	}
	if req.Type != "" && !domain.KnownProjectType(req.Type) {
		respondError(w, r, serrors.With(serrors.ErrBadRequest, "unknown project type %q", req.Type))

		return
	}

	var d0Plan time.Time
	if req.D0Plan != "" {
		parsed, err := domain.ParseDate(req.D0Plan)
		if err != nil {
			respondError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid d0Plan"))

			return
		}
		d0Plan = parsed
	}

	project, err := h.deps.Tracker.CreateProject(r.Context(), req.Name, req.Type, d0Plan, req.ModuleCount)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respond(w, http.StatusCreated, project)
}

// GetProject returns one hydrated project tree.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
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

	respond(w, http.StatusOK, project)
}

// UpdateProjectRequest is the payload of the project patch endpoint. Absent
// fields are left untouched.
type UpdateProjectRequest struct {
	Name *string             `json:"name"`
	Type *domain.ProjectType `json:"type"`
}

// UpdateProject renames or retypes a project.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, err)

		return
	}

	var req UpdateProjectRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)

		return
	}
	if req.Type != nil && !domain.KnownProjectType(*req.Type) {
		respondError(w, r, serrors.With(serrors.ErrBadRequest, "unknown project type %q", *req.Type))

		return
	}

	project, err := h.deps.Tracker.UpdateProject(r.Context(), domain.ProjectID(id),
		storage.ProjectUpdates{Name: req.Name, Type: req.Type})
	if err != nil {
		respondError(w, r, err)

		return
	}

	respond(w, http.StatusOK, project)
}

// DeleteProject soft-deletes a project with its module tree.
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, err)

		return
	}

	if err := h.deps.Tracker.DeleteProject(r.Context(), domain.ProjectID(id)); err != nil {
		respondError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetPlanRequest is the payload of the plan date endpoint. An empty date
// clears the plan.
type SetPlanRequest struct {
	Date string `json:"date"`
}

// SetPlanDate sets or clears the plan date of one project gateway.
func (h *Handler) SetPlanDate(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, err)

		return
	}

	var req SetPlanRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)

		return
	}

	var date time.Time
	if req.Date != "" {
		if date, err = domain.ParseDate(req.Date); err != nil {
			respondError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid date"))

			return
		}
	}

	project, err := h.deps.Tracker.SetPlanDate(r.Context(), domain.ProjectID(id),
		domain.GatewayKey(r.PathValue("gw")), date)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respond(w, http.StatusOK, project)
}

// AddModuleRequest is the payload of the module creation endpoint. A non-nil
// ParentID creates a sub-module under that module.
type AddModuleRequest struct {
	Name     string           `json:"name"`
	ParentID *domain.ModuleID `json:"parentId"`
}

// AddModule adds a top-level module or, with parentId, a sub-module.
func (h *Handler) AddModule(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, err)

		return
	}

	var req AddModuleRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)

		return
	}

	var module *domain.Module
	if req.ParentID != nil {
		module, err = h.deps.Tracker.AddSubModule(r.Context(), domain.ProjectID(id), *req.ParentID, req.Name)
	} else {
		module, err = h.deps.Tracker.AddModule(r.Context(), domain.ProjectID(id), req.Name)
	}
	if err != nil {
		respondError(w, r, err)

		return
	}

	respond(w, http.StatusCreated, module)
}

// RenameModuleRequest is the payload of the module patch endpoint.
type RenameModuleRequest struct {
	Name string `json:"name"`
}

// RenameModule renames a module or sub-module.
func (h *Handler) RenameModule(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, err)

		return
	}
	moduleID, err := pathUUID(r, "moduleId")
	if err != nil {
		respondError(w, r, err)

		return
	}

	var req RenameModuleRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)

		return
	}

	module, err := h.deps.Tracker.RenameModule(r.Context(),
		domain.ProjectID(projectID), domain.ModuleID(moduleID), req.Name)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respond(w, http.StatusOK, module)
}

// DeleteModule soft-deletes a module with its sub-modules.
func (h *Handler) DeleteModule(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, err)

		return
	}
	moduleID, err := pathUUID(r, "moduleId")
	if err != nil {
		respondError(w, r, err)

		return
	}

	if err := h.deps.Tracker.RemoveModule(r.Context(),
		domain.ProjectID(projectID), domain.ModuleID(moduleID)); err != nil {
		respondError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecordGatewayRequest is the payload of the module gateway endpoint. A nil
// Actual leaves the date untouched; an empty string clears it. ECN follows
// the same convention.
type RecordGatewayRequest struct {
	Actual *string `json:"actual"`
	ECN    *string `json:"ecn"`
}

// RecordGateway records the actual date and/or the change notice of one
// module gateway.
func (h *Handler) RecordGateway(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, err)

		return
	}
	moduleID, err := pathUUID(r, "moduleId")
	if err != nil {
		respondError(w, r, err)

		return
	}

	var req RecordGatewayRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)

		return
	}
	if req.Actual == nil && req.ECN == nil {
		respondError(w, r, serrors.With(serrors.ErrBadRequest, "nothing to update"))

		return
	}

	key := domain.GatewayKey(r.PathValue("gw"))

	if req.Actual == nil {
		if err := h.deps.Tracker.SetECN(r.Context(),
			domain.ProjectID(projectID), domain.ModuleID(moduleID), key, *req.ECN); err != nil {
			respondError(w, r, err)

			return
		}
		project, err := h.deps.Tracker.Project(r.Context(), domain.ProjectID(projectID))
		if err != nil {
			respondError(w, r, err)

			return
		}
		respond(w, http.StatusOK, project)

		return
	}

	var date time.Time
	if *req.Actual != "" {
		if date, err = domain.ParseDate(*req.Actual); err != nil {
			respondError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid actual date"))

			return
		}
	}

	var ecn string
	if req.ECN != nil {
		ecn = *req.ECN
	}

	project, err := h.deps.Tracker.RecordActual(r.Context(),
		domain.ProjectID(projectID), domain.ModuleID(moduleID), key, date, ecn)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respond(w, http.StatusOK, project)
}
