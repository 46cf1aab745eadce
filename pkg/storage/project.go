package storage

import (
	"context"
	"time"
	"tracker/pkg/domain"

	"github.com/google/uuid"
)

// EntityType identifies which kind of entity a gateway row belongs to.
type EntityType string

const (
	// EntityProject marks gateway rows owned by a project.
	EntityProject EntityType = "project"
	// EntityModule marks gateway rows owned by a module or sub-module.
	EntityModule EntityType = "module"
)

// ProjectUpdates describes a set of optional fields that can be applied to an
// existing project during an update. Only non-nil fields will be updated.
type ProjectUpdates struct {
	// Name, when provided, renames the project.
	Name *string
	// Type, when provided, changes the project type.
	Type *domain.ProjectType
}

// ModuleUpdates describes a set of optional fields that can be applied to an
// existing module during an update. Only non-nil fields will be updated.
type ModuleUpdates struct {
	// Name, when provided, renames the module.
	Name *string
}

// GatewayUpdates describes a partial update of a single gateway slot. Only
// non-nil fields are written; a pointer to a zero time clears that date.
type GatewayUpdates struct {
	// Plan, when provided, replaces the plan date.
	Plan *time.Time
	// Actual, when provided, replaces the actual date.
	Actual *time.Time
	// ECN, when provided, replaces the change notice reference.
	ECN *string
}

// ProjectPage groups a page of projects together with an optional NextCursor
// used for pagination.
type ProjectPage struct {
	// Projects contains the current page, each hydrated with its module tree,
	// gateways and deliverables.
	Projects []domain.Project
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// ProjectStorage defines CRUD and query operations on projects, their module
// trees and their gateway slots. Implementations must exclude soft-deleted
// rows from all reads and enforce name uniqueness among live projects.
type ProjectStorage interface {
	// StoreProjects inserts one or more project rows and returns the stored
	// rows as they exist in the database (including generated fields). Module
	// trees and deliverables carried on the input are ignored; store those
	// through StoreModules and StoreDeliverables.
	StoreProjects(ctx context.Context, projects ...domain.Project) ([]domain.Project, error)
	// ProjectByID fetches a project by ID with its full module tree, gateway
	// slots and deliverables hydrated. Returns nil when not found.
	ProjectByID(ctx context.Context, ID domain.ProjectID) (*domain.Project, error)
	// ProjectByName fetches a live project by its unique name, hydrated the
	// same way as ProjectByID. Returns nil when not found.
	ProjectByName(ctx context.Context, name string) (*domain.Project, error)
	// Projects returns a page of hydrated projects created before the optional
	// cursor time, newest first, limited by the given limit. A non-empty
	// typeFilter restricts the page to projects of that type.
	Projects(ctx context.Context,
		typeFilter domain.ProjectType,
		cursor time.Time,
		limit uint) (ProjectPage, error)
	// AllProjects returns every live project fully hydrated, newest first.
	// Used by the dashboard, exports and snapshots.
	AllProjects(ctx context.Context) ([]domain.Project, error)
	// UpdateProjectByID updates a single project and returns the updated row
	// without hydration. Returns nil when not found.
	UpdateProjectByID(ctx context.Context, ID domain.ProjectID, updates ProjectUpdates) (*domain.Project, error)
	// DeleteProject soft-deletes a project together with its modules and
	// returns the deleted project row, or nil if it was not found.
	DeleteProject(ctx context.Context, ID domain.ProjectID) (*domain.Project, error)

	// StoreModules inserts modules under the given project. A nil parent
	// stores top-level modules; a non-nil parent stores sub-modules of it.
	StoreModules(ctx context.Context,
		projectID domain.ProjectID,
		parent *domain.ModuleID,
		modules ...domain.Module) ([]domain.Module, error)
	// ModuleByID fetches a module row by ID within the project, with its
	// gateway slots and direct sub-modules hydrated. Returns nil when not found.
	ModuleByID(ctx context.Context, projectID domain.ProjectID, ID domain.ModuleID) (*domain.Module, error)
	// UpdateModuleByID updates a single module row within the project and
	// returns the updated row without hydration. Returns nil when not found.
	UpdateModuleByID(ctx context.Context,
		projectID domain.ProjectID,
		ID domain.ModuleID,
		updates ModuleUpdates) (*domain.Module, error)
	// DeleteModule soft-deletes a module and its sub-modules and returns the
	// deleted module row, or nil if it was not found.
	DeleteModule(ctx context.Context, projectID domain.ProjectID, ID domain.ModuleID) (*domain.Module, error)

	// UpsertGateway writes a partial update of one gateway slot of one entity,
	// creating the row when absent.
	UpsertGateway(ctx context.Context,
		entity EntityType,
		entityID uuid.UUID,
		key domain.GatewayKey,
		updates GatewayUpdates) error
}
