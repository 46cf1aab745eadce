// Package tracker implements the core gateway tracking service: project and
// module lifecycle, gateway plan and actual dates with bottom-up rollup,
// deliverable checklists and the derived dashboard and readiness views.
package tracker

import (
	"context"
	"fmt"
	"strings"
	"time"
	"tracker/internal/checklist"
	"tracker/internal/config"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"
	"tracker/pkg/storage"

	"github.com/google/uuid"
)

// Options configure tracker behavior. These settings are typically derived
// from application configuration.
type Options struct {
	// RiskWindowDays is the slip tolerance in days before a released gateway
	// is classified as delayed instead of at risk.
	RiskWindowDays int
	// Checklist is the master deliverables list used to seed new projects.
	Checklist []checklist.Item
}

// NewOptions constructs an Options value from the provided application config
// and the loaded master checklist.
func NewOptions(cfg *config.Config, items []checklist.Item) Options {
	return Options{
		RiskWindowDays: cfg.Tracker.RiskWindowDays,
		Checklist:      items,
	}
}

// tracker is the concrete implementation of the Tracker interface.
// It coordinates persistence with the storage layer and keeps derived gateway
// actuals consistent after every mutation.
type tracker struct {
	options Options
	storage storage.Storage
}

// New creates a new Tracker instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Tracker {
	return &tracker{
		options: options,
		storage: storage,
	}
}

func (t tracker) CreateProject(ctx context.Context,
	name string,
	projectType domain.ProjectType,
	d0Plan time.Time,
	moduleCount uint) (*domain.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "project name must not be empty")
	}
	if projectType == "" {
		projectType = domain.ProjectTypeMajor
	}

	var project *domain.Project
	if err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.ProjectByName(ctx, name)
		if err != nil {
			return fmt.Errorf("could not check project name: %w", err)
		}
		if existing != nil {
			return serrors.With(serrors.ErrConflict, "project %q already exists", name)
		}

		stored, err := tx.StoreProjects(ctx, domain.Project{
			Name: name,
			Type: projectType,
		})
		if err != nil {
			return fmt.Errorf("could not store project: %w", err)
		}
		project = &stored[0]

		if !d0Plan.IsZero() {
			if err := tx.UpsertGateway(ctx,
				storage.EntityProject, uuid.UUID(project.ID), domain.GatewayD0,
				storage.GatewayUpdates{Plan: &d0Plan}); err != nil {
				return fmt.Errorf("could not set D0 plan: %w", err)
			}
			project.Gateways.SetPlan(domain.GatewayD0, d0Plan)
		}

		if moduleCount > 0 {
			seeds := make([]domain.Module, 0, moduleCount)
			for i := uint(1); i <= moduleCount; i++ {
				seeds = append(seeds, domain.Module{Name: fmt.Sprintf("Module %d", i)})
			}
			if project.Modules, err = tx.StoreModules(ctx, project.ID, nil, seeds...); err != nil {
				return fmt.Errorf("could not seed modules: %w", err)
			}
		}

		if project.Deliverables, err = t.seedDeliverables(ctx, tx, project.ID, projectType); err != nil {
			return err
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create project: %w", err)
	}

	return project, nil
}

// seedDeliverables stores a fresh PENDING checklist for the project according
// to its type.
func (t tracker) seedDeliverables(ctx context.Context,
	tx storage.AllStorage,
	projectID domain.ProjectID,
	projectType domain.ProjectType) ([]domain.Deliverable, error) {
	items := checklist.ForType(t.options.Checklist, projectType)
	if len(items) == 0 {
		return nil, nil
	}

	seeds := make([]domain.Deliverable, 0, len(items))
	for _, item := range items {
		seeds = append(seeds, domain.Deliverable{
			ProjectID: projectID,
			Stage:     item.Stage,
			Name:      item.Name,
			Status:    domain.DeliverableStatusPending,
		})
	}

	stored, err := tx.StoreDeliverables(ctx, seeds...)
	if err != nil {
		return nil, fmt.Errorf("could not seed deliverables: %w", err)
	}

	return stored, nil
}

func (t tracker) Project(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	project, err := t.storage.ProjectByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get project: %w", err)
	}
	if project == nil {
		return nil, serrors.With(serrors.ErrNotFound, "project not found")
	}

	return project, nil
}

// Projects returns a page of projects. It supports cursor-based pagination
// using an RFC3339 timestamp string and returns the next cursor when more
// results are available.
func (t tracker) Projects(ctx context.Context,
	typeFilter domain.ProjectType,
	cursor string,
	limit uint) ([]domain.Project, string, error) {
	if typeFilter != "" && !domain.KnownProjectType(typeFilter) {
		return nil, "", serrors.With(serrors.ErrBadRequest, "unknown project type %q", typeFilter)
	}

	var cursorTime time.Time
	if cursor != "" {
		parsed, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = parsed
	}

	page, err := t.storage.Projects(ctx, typeFilter, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get projects: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Projects, next, nil
}

func (t tracker) UpdateProject(ctx context.Context,
	id domain.ProjectID,
	updates storage.ProjectUpdates) (*domain.Project, error) {
	if updates.Name == nil && updates.Type == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "nothing to update")
	}
	if updates.Name != nil {
		trimmed := strings.TrimSpace(*updates.Name)
		if trimmed == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "project name must not be empty")
		}
		updates.Name = &trimmed
	}

	var project *domain.Project
	if err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if updates.Name != nil {
			existing, err := tx.ProjectByName(ctx, *updates.Name)
			if err != nil {
				return fmt.Errorf("could not check project name: %w", err)
			}
			if existing != nil && existing.ID != id {
				return serrors.With(serrors.ErrConflict, "project %q already exists", *updates.Name)
			}
		}

		updated, err := tx.UpdateProjectByID(ctx, id, updates)
		if err != nil {
			return fmt.Errorf("could not update project: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "project not found")
		}

		if project, err = tx.ProjectByID(ctx, id); err != nil {
			return fmt.Errorf("could not reload project: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return project, nil
}

func (t tracker) DeleteProject(ctx context.Context, id domain.ProjectID) error {
	deleted, err := t.storage.DeleteProject(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete project: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "project not found")
	}

	return nil
}

func (t tracker) AddModule(ctx context.Context,
	projectID domain.ProjectID,
	name string) (*domain.Module, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "module name must not be empty")
	}

	var module *domain.Module
	if err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		project, err := tx.ProjectByID(ctx, projectID)
		if err != nil {
			return fmt.Errorf("could not get project: %w", err)
		}
		if project == nil {
			return serrors.With(serrors.ErrNotFound, "project not found")
		}
		if project.ModuleByName(name) != nil {
			return serrors.With(serrors.ErrConflict, "module %q already exists", name)
		}

		stored, err := tx.StoreModules(ctx, projectID, nil, domain.Module{Name: name})
		if err != nil {
			return fmt.Errorf("could not store module: %w", err)
		}
		module = &stored[0]

		project.Modules = append(project.Modules, *module)

		return t.persistRollup(ctx, tx, project)
	}); err != nil {
		return nil, err
	}

	return module, nil
}

func (t tracker) AddSubModule(ctx context.Context,
	projectID domain.ProjectID,
	parentID domain.ModuleID,
	name string) (*domain.Module, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "module name must not be empty")
	}

	var module *domain.Module
	if err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		project, err := tx.ProjectByID(ctx, projectID)
		if err != nil {
			return fmt.Errorf("could not get project: %w", err)
		}
		if project == nil {
			return serrors.With(serrors.ErrNotFound, "project not found")
		}

		parent := project.Module(parentID)
		if parent == nil {
			return serrors.With(serrors.ErrNotFound, "module not found")
		}
		if !isTopLevel(project, parentID) {
			return serrors.With(serrors.ErrBadRequest, "sub-modules cannot be nested")
		}
		if parent.SubModuleByName(name) != nil {
			return serrors.With(serrors.ErrConflict, "sub-module %q already exists", name)
		}

		stored, err := tx.StoreModules(ctx, projectID, &parentID, domain.Module{Name: name})
		if err != nil {
			return fmt.Errorf("could not store sub-module: %w", err)
		}
		module = &stored[0]

		// the parent's actuals become derived from its children from now on
		parent.SubModules = append(parent.SubModules, *module)

		return t.persistRollup(ctx, tx, project)
	}); err != nil {
		return nil, err
	}

	return module, nil
}

func (t tracker) RenameModule(ctx context.Context,
	projectID domain.ProjectID,
	moduleID domain.ModuleID,
	name string) (*domain.Module, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "module name must not be empty")
	}

	var module *domain.Module
	if err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		project, err := tx.ProjectByID(ctx, projectID)
		if err != nil {
			return fmt.Errorf("could not get project: %w", err)
		}
		if project == nil {
			return serrors.With(serrors.ErrNotFound, "project not found")
		}
		if project.Module(moduleID) == nil {
			return serrors.With(serrors.ErrNotFound, "module not found")
		}
		if existing := project.ModuleByName(name); existing != nil && existing.ID != moduleID {
			return serrors.With(serrors.ErrConflict, "module %q already exists", name)
		}

		if module, err = tx.UpdateModuleByID(ctx, projectID, moduleID,
			storage.ModuleUpdates{Name: &name}); err != nil {
			return fmt.Errorf("could not rename module: %w", err)
		}
		if module == nil {
			return serrors.With(serrors.ErrNotFound, "module not found")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return module, nil
}

func (t tracker) RemoveModule(ctx context.Context,
	projectID domain.ProjectID,
	moduleID domain.ModuleID) error {
	return t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deleted, err := tx.DeleteModule(ctx, projectID, moduleID)
		if err != nil {
			return fmt.Errorf("could not delete module: %w", err)
		}
		if deleted == nil {
			return serrors.With(serrors.ErrNotFound, "module not found")
		}

		project, err := tx.ProjectByID(ctx, projectID)
		if err != nil {
			return fmt.Errorf("could not reload project: %w", err)
		}
		if project == nil {
			return serrors.With(serrors.ErrNotFound, "project not found")
		}

		return t.persistRollup(ctx, tx, project)
	})
}

// RecordActual sets or clears the actual date of one leaf module gateway and
// rolls the derived actuals up through the parent module and the project.
func (t tracker) RecordActual(ctx context.Context,
	projectID domain.ProjectID,
	moduleID domain.ModuleID,
	key domain.GatewayKey,
	date time.Time,
	ecn string) (*domain.Project, error) {
	if !key.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown gateway %q", key)
	}

	var project *domain.Project
	if err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		if project, err = tx.ProjectByID(ctx, projectID); err != nil {
			return fmt.Errorf("could not get project: %w", err)
		}
		if project == nil {
			return serrors.With(serrors.ErrNotFound, "project not found")
		}

		module := project.Module(moduleID)
		if module == nil {
			return serrors.With(serrors.ErrNotFound, "module not found")
		}
		if module.HasSubModules() {
			return serrors.With(serrors.ErrConflict,
				"module %q derives its dates from sub-modules", module.Name)
		}

		updates := storage.GatewayUpdates{Actual: &date}
		if ecn != "" {
			updates.ECN = &ecn
		}
		if err := tx.UpsertGateway(ctx, storage.EntityModule, uuid.UUID(moduleID), key, updates); err != nil {
			return fmt.Errorf("could not record actual: %w", err)
		}

		module.Gateways.SetActual(key, date)
		if ecn != "" {
			module.Gateways.SetECN(key, ecn)
		}

		return t.persistRollup(ctx, tx, project)
	}); err != nil {
		return nil, err
	}

	return project, nil
}

// SetPlanDate sets or clears the plan date of one project gateway. Plans are
// committed at the project level; module slots never carry user-entered plans.
func (t tracker) SetPlanDate(ctx context.Context,
	projectID domain.ProjectID,
	key domain.GatewayKey,
	date time.Time) (*domain.Project, error) {
	if !key.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown gateway %q", key)
	}

	var project *domain.Project
	if err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		if project, err = tx.ProjectByID(ctx, projectID); err != nil {
			return fmt.Errorf("could not get project: %w", err)
		}
		if project == nil {
			return serrors.With(serrors.ErrNotFound, "project not found")
		}

		if err := tx.UpsertGateway(ctx,
			storage.EntityProject, uuid.UUID(projectID), key,
			storage.GatewayUpdates{Plan: &date}); err != nil {
			return fmt.Errorf("could not set plan date: %w", err)
		}
		project.Gateways.SetPlan(key, date)

		return nil
	}); err != nil {
		return nil, err
	}

	return project, nil
}

func (t tracker) SetECN(ctx context.Context,
	projectID domain.ProjectID,
	moduleID domain.ModuleID,
	key domain.GatewayKey,
	ecn string) error {
	if !key.Valid() {
		return serrors.With(serrors.ErrBadRequest, "unknown gateway %q", key)
	}

	return t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		project, err := tx.ProjectByID(ctx, projectID)
		if err != nil {
			return fmt.Errorf("could not get project: %w", err)
		}
		if project == nil {
			return serrors.With(serrors.ErrNotFound, "project not found")
		}
		if project.Module(moduleID) == nil {
			return serrors.With(serrors.ErrNotFound, "module not found")
		}

		if err := tx.UpsertGateway(ctx,
			storage.EntityModule, uuid.UUID(moduleID), key,
			storage.GatewayUpdates{ECN: &ecn}); err != nil {
			return fmt.Errorf("could not set ECN: %w", err)
		}

		return nil
	})
}

func (t tracker) Deliverables(ctx context.Context,
	projectID domain.ProjectID) ([]domain.Deliverable, error) {
	project, err := t.Project(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return project.Deliverables, nil
}

func (t tracker) UpdateDeliverable(ctx context.Context,
	projectID domain.ProjectID,
	id domain.DeliverableID,
	updates storage.DeliverableUpdates) (*domain.Deliverable, error) {
	if updates.Status != nil && !domain.ValidDeliverableStatus(*updates.Status) {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown status %q", *updates.Status)
	}

	updated, err := t.storage.UpdateDeliverableByID(ctx, projectID, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update deliverable: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "deliverable not found")
	}

	return updated, nil
}

// ReloadDeliverables drops the project checklist and reseeds it from the
// current master list. Progress recorded on the old rows is lost.
func (t tracker) ReloadDeliverables(ctx context.Context,
	projectID domain.ProjectID) ([]domain.Deliverable, error) {
	var deliverables []domain.Deliverable
	if err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		project, err := tx.ProjectByID(ctx, projectID)
		if err != nil {
			return fmt.Errorf("could not get project: %w", err)
		}
		if project == nil {
			return serrors.With(serrors.ErrNotFound, "project not found")
		}

		if err := tx.DeleteDeliverablesByProject(ctx, projectID); err != nil {
			return fmt.Errorf("could not clear deliverables: %w", err)
		}

		if deliverables, err = t.seedDeliverables(ctx, tx, projectID, project.Type); err != nil {
			return err
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return deliverables, nil
}

func (t tracker) Dashboard(ctx context.Context, typeFilter domain.ProjectType) (*Dashboard, error) {
	if typeFilter != "" && !domain.KnownProjectType(typeFilter) {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown project type %q", typeFilter)
	}

	projects, err := t.storage.AllProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get projects: %w", err)
	}

	if typeFilter != "" {
		filtered := make([]domain.Project, 0, len(projects))
		for i := range projects {
			if projects[i].Type == typeFilter {
				filtered = append(filtered, projects[i])
			}
		}
		projects = filtered
	}

	return buildDashboard(projects, t.options.RiskWindowDays, time.Now().UTC()), nil
}

func (t tracker) Timeline(ctx context.Context) ([]ProjectTimeline, error) {
	projects, err := t.storage.AllProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get projects: %w", err)
	}

	return buildTimeline(projects, t.options.RiskWindowDays), nil
}

func (t tracker) Readiness(ctx context.Context, projectID domain.ProjectID) (*Readiness, error) {
	project, err := t.Project(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return buildReadiness(project), nil
}

// persistRollup recomputes derived actuals over the in-memory tree and writes
// every changed slot through the transaction.
func (t tracker) persistRollup(ctx context.Context, tx storage.AllStorage, project *domain.Project) error {
	for _, write := range recomputeRollup(project) {
		actual := write.actual
		if err := tx.UpsertGateway(ctx, write.entity, write.entityID, write.key,
			storage.GatewayUpdates{Actual: &actual}); err != nil {
			return fmt.Errorf("could not persist rollup: %w", err)
		}
	}

	return nil
}

// isTopLevel reports whether the module ID belongs to a top-level module of
// the project.
func isTopLevel(p *domain.Project, id domain.ModuleID) bool {
	for i := range p.Modules {
		if p.Modules[i].ID == id {
			return true
		}
	}

	return false
}
