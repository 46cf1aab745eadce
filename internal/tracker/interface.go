package tracker

import (
	"context"
	"time"
	"tracker/internal/exchange"
	"tracker/pkg/domain"
	"tracker/pkg/storage"
)

//go:generate mockgen -package mocktracker -source=interface.go -destination=mock/mocktracker.go *

// Tracker is the core service of the application. It owns project lifecycle,
// module trees, gateway dates with their rollup, deliverable checklists and
// the derived dashboard views.
type Tracker interface {
	// CreateProject creates a project with the given unique name and seeds its
	// deliverables checklist from the master list according to the type. A
	// non-zero d0Plan commits the first plan date; moduleCount generated
	// modules ("Module 1".."Module n") are added up front.
	CreateProject(ctx context.Context,
		name string,
		projectType domain.ProjectType,
		d0Plan time.Time,
		moduleCount uint) (*domain.Project, error)
	// Project fetches one project with its full tree.
	Project(ctx context.Context, id domain.ProjectID) (*domain.Project, error)
	// Projects returns a page of projects using cursor-based pagination with
	// RFC3339 timestamp cursors. A non-empty typeFilter restricts the page to
	// projects of that type.
	Projects(ctx context.Context,
		typeFilter domain.ProjectType,
		cursor string,
		limit uint) ([]domain.Project, string, error)
	// UpdateProject renames or retypes a project. Retyping does not reseed the
	// deliverables checklist.
	UpdateProject(ctx context.Context, id domain.ProjectID, updates storage.ProjectUpdates) (*domain.Project, error)
	// DeleteProject soft-deletes a project and its module tree.
	DeleteProject(ctx context.Context, id domain.ProjectID) error

	// AddModule adds a top-level module to a project and refreshes the rollup.
	AddModule(ctx context.Context, projectID domain.ProjectID, name string) (*domain.Module, error)
	// AddSubModule adds a sub-module under a top-level module. Nesting deeper
	// than one level is rejected.
	AddSubModule(ctx context.Context,
		projectID domain.ProjectID,
		parentID domain.ModuleID,
		name string) (*domain.Module, error)
	// RenameModule renames a module or sub-module.
	RenameModule(ctx context.Context,
		projectID domain.ProjectID,
		moduleID domain.ModuleID,
		name string) (*domain.Module, error)
	// RemoveModule soft-deletes a module with its sub-modules and refreshes
	// the rollup.
	RemoveModule(ctx context.Context, projectID domain.ProjectID, moduleID domain.ModuleID) error

	// RecordActual sets or clears (zero date) the actual date of one gateway
	// of a leaf module, then rolls derived actuals up to the parent module and
	// project. Recording on a module that has sub-modules is a conflict.
	RecordActual(ctx context.Context,
		projectID domain.ProjectID,
		moduleID domain.ModuleID,
		key domain.GatewayKey,
		date time.Time,
		ecn string) (*domain.Project, error)
	// SetPlanDate sets or clears (zero date) the plan date of one project
	// gateway. Plans live at the project level only.
	SetPlanDate(ctx context.Context,
		projectID domain.ProjectID,
		key domain.GatewayKey,
		date time.Time) (*domain.Project, error)
	// SetECN records the change notice reference on one module gateway.
	SetECN(ctx context.Context,
		projectID domain.ProjectID,
		moduleID domain.ModuleID,
		key domain.GatewayKey,
		ecn string) error

	// Deliverables lists the checklist of a project.
	Deliverables(ctx context.Context, projectID domain.ProjectID) ([]domain.Deliverable, error)
	// UpdateDeliverable updates status, evidence or remarks of one checklist
	// row.
	UpdateDeliverable(ctx context.Context,
		projectID domain.ProjectID,
		id domain.DeliverableID,
		updates storage.DeliverableUpdates) (*domain.Deliverable, error)
	// ReloadDeliverables replaces the checklist of a project with a fresh
	// seeding from the current master list. All statuses are reset.
	ReloadDeliverables(ctx context.Context, projectID domain.ProjectID) ([]domain.Deliverable, error)

	// Dashboard computes the portfolio overview across all live projects. A
	// non-empty typeFilter restricts the overview to projects of that type.
	Dashboard(ctx context.Context, typeFilter domain.ProjectType) (*Dashboard, error)
	// Readiness computes the gateway readiness score of one project.
	Readiness(ctx context.Context, projectID domain.ProjectID) (*Readiness, error)
	// Timeline computes the per-project plan ranges, actual segments and
	// gateway milestones across all live projects.
	Timeline(ctx context.Context) ([]ProjectTimeline, error)

	// Import merges a parsed bulk upload by name, creating missing projects
	// and modules and overwriting dates present in the upload.
	Import(ctx context.Context, batch []exchange.ProjectImport) (*exchange.Summary, error)
}
