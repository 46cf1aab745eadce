package postgres

import (
	"context"
	"fmt"
	"time"
	"tracker/pkg/domain"
	"tracker/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	projectsTable     = "projects"
	modulesTable      = "modules"
	gatewaysTable     = "gateways"
	deliverablesTable = "deliverables"
)

// gatewayConflictTarget is the composite key of the gateways table used for
// upserts.
const gatewayConflictTarget = "entity_type, entity_id, gateway"

func (p *PgSQL) StoreProjects(ctx context.Context, projects ...domain.Project) ([]domain.Project, error) {
	if len(projects) == 0 {
		return nil, nil
	}

	rows := make([]PgProject, len(projects))
	for i := range rows {
		rows[i].FromDomain(projects[i])
	}

	var result []PgProject
	if err := p.Builder.Insert(projectsTable).
		Rows(rows).
		Returning(&PgProject{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store projects into pg: %w", err)
	}

	out := make([]domain.Project, 0, len(result))
	for i := range result {
		out = append(out, *result[i].ToDomain())
	}

	return out, nil
}

// ProjectByID fetches a project row and hydrates its module tree, gateways and
// deliverables. Soft-deleted rows are excluded.
func (p *PgSQL) ProjectByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	return p.projectBy(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

// ProjectByName fetches a live project by its unique name, fully hydrated.
func (p *PgSQL) ProjectByName(ctx context.Context, name string) (*domain.Project, error) {
	return p.projectBy(ctx, goqu.I("name").Eq(name))
}

func (p *PgSQL) projectBy(ctx context.Context, cond goqu.Expression) (*domain.Project, error) {
	var row PgProject
	found, err := p.Builder.From(projectsTable).
		Where(cond, goqu.I("deleted_at").IsNull()).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch project: %w", err)
	}
	if !found {
		return nil, nil
	}

	projects := []domain.Project{*row.ToDomain()}
	if err := p.hydrateProjects(ctx, projects); err != nil {
		return nil, err
	}

	return &projects[0], nil
}

// Projects returns a page of hydrated projects created before the optional
// cursor, newest first, optionally restricted to one project type.
func (p *PgSQL) Projects(ctx context.Context,
	typeFilter domain.ProjectType,
	cursor time.Time,
	limit uint) (storage.ProjectPage, error) {
	w := []goqu.Expression{goqu.I("deleted_at").IsNull()}
	if typeFilter != "" {
		w = append(w, goqu.I("type").Eq(string(typeFilter)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	var rows []PgProject
	if err := p.Builder.From(projectsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.ProjectPage{}, fmt.Errorf("could not fetch projects from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	projects := make([]domain.Project, 0, len(rows))
	for i := range rows {
		projects = append(projects, *rows[i].ToDomain())
	}
	if err := p.hydrateProjects(ctx, projects); err != nil {
		return storage.ProjectPage{}, err
	}

	return storage.ProjectPage{
		Projects:   projects,
		NextCursor: nextCursor,
	}, nil
}

// AllProjects returns every live project fully hydrated, newest first.
func (p *PgSQL) AllProjects(ctx context.Context) ([]domain.Project, error) {
	var rows []PgProject
	if err := p.Builder.From(projectsTable).
		Where(goqu.I("deleted_at").IsNull()).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch all projects from pg: %w", err)
	}

	projects := make([]domain.Project, 0, len(rows))
	for i := range rows {
		projects = append(projects, *rows[i].ToDomain())
	}
	if err := p.hydrateProjects(ctx, projects); err != nil {
		return nil, err
	}

	return projects, nil
}

// UpdateProjectByID updates a single project row. Only provided fields are
// changed and updated_at is set automatically.
func (p *PgSQL) UpdateProjectByID(ctx context.Context,
	id domain.ProjectID,
	updates storage.ProjectUpdates) (*domain.Project, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Type != nil {
		rec["type"] = string(*updates.Type)
	}

	var row PgProject
	found, err := p.Builder.Update(projectsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgProject{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update project in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteProject performs a soft delete of the project and all of its modules,
// returning the deleted project row.
func (p *PgSQL) DeleteProject(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	var row PgProject
	found, err := p.Builder.Update(projectsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgProject{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete project in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	if _, err := p.Builder.Update(modulesTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("project_id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not delete project modules in pg: %w", err)
	}

	return row.ToDomain(), nil
}

// StoreModules inserts modules under the given project, as top-level modules
// when parent is nil or as sub-modules of it otherwise.
func (p *PgSQL) StoreModules(ctx context.Context,
	projectID domain.ProjectID,
	parent *domain.ModuleID,
	modules ...domain.Module) ([]domain.Module, error) {
	if len(modules) == 0 {
		return nil, nil
	}

	var parentID uuid.NullUUID
	if parent != nil {
		parentID = uuid.NullUUID{UUID: uuid.UUID(*parent), Valid: true}
	}

	rows := make([]PgModule, len(modules))
	for i := range rows {
		rows[i] = PgModule{
			ProjectID:      uuid.UUID(projectID),
			ParentModuleID: parentID,
			Name:           modules[i].Name,
		}
	}

	var result []PgModule
	if err := p.Builder.Insert(modulesTable).
		Rows(rows).
		Returning(&PgModule{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store modules into pg: %w", err)
	}

	out := make([]domain.Module, 0, len(result))
	for i := range result {
		out = append(out, *result[i].ToDomain())
	}

	return out, nil
}

// ModuleByID fetches a module row within the project with its gateway slots
// and direct sub-modules hydrated.
func (p *PgSQL) ModuleByID(ctx context.Context,
	projectID domain.ProjectID,
	id domain.ModuleID) (*domain.Module, error) {
	var row PgModule
	found, err := p.Builder.From(modulesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("project_id").Eq(uuid.UUID(projectID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch module by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	var children []PgModule
	if err := p.Builder.From(modulesTable).
		Where(
			goqu.I("parent_module_id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &children); err != nil {
		return nil, fmt.Errorf("could not fetch sub-modules: %w", err)
	}

	mod := row.ToDomain()
	ids := []uuid.UUID{row.ID}
	byID := map[uuid.UUID]*domain.Module{row.ID: mod}
	for i := range children {
		child := children[i].ToDomain()
		mod.SubModules = append(mod.SubModules, *child)
		ids = append(ids, children[i].ID)
	}
	for i := range mod.SubModules {
		byID[uuid.UUID(mod.SubModules[i].ID)] = &mod.SubModules[i]
	}

	var gws []PgGateway
	if err := p.Builder.From(gatewaysTable).
		Where(
			goqu.I("entity_type").Eq(string(storage.EntityModule)),
			goqu.I("entity_id").In(ids),
		).
		Executor().ScanStructsContext(ctx, &gws); err != nil {
		return nil, fmt.Errorf("could not fetch module gateways: %w", err)
	}
	for i := range gws {
		if target, ok := byID[gws[i].EntityID]; ok {
			target.Gateways[domain.GatewayKey(gws[i].Gateway)] = gws[i].ToSlot()
		}
	}

	return mod, nil
}

// UpdateModuleByID updates a single module row. Only provided fields are
// changed and updated_at is set automatically.
func (p *PgSQL) UpdateModuleByID(ctx context.Context,
	projectID domain.ProjectID,
	id domain.ModuleID,
	updates storage.ModuleUpdates) (*domain.Module, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}

	var row PgModule
	found, err := p.Builder.Update(modulesTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("project_id").Eq(uuid.UUID(projectID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgModule{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update module in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteModule performs a soft delete of the module and its sub-modules,
// returning the deleted module row.
func (p *PgSQL) DeleteModule(ctx context.Context,
	projectID domain.ProjectID,
	id domain.ModuleID) (*domain.Module, error) {
	var row PgModule
	found, err := p.Builder.Update(modulesTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("project_id").Eq(uuid.UUID(projectID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgModule{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete module in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	if _, err := p.Builder.Update(modulesTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("parent_module_id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not delete sub-modules in pg: %w", err)
	}

	return row.ToDomain(), nil
}

// UpsertGateway writes a partial update of one gateway slot, creating the row
// when it does not exist yet. A pointer to a zero time clears that date.
func (p *PgSQL) UpsertGateway(ctx context.Context,
	entity storage.EntityType,
	entityID uuid.UUID,
	key domain.GatewayKey,
	updates storage.GatewayUpdates) error {
	ins := goqu.Record{
		"entity_type": string(entity),
		"entity_id":   entityID,
		"gateway":     string(key),
		"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
	}
	upd := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}

	setDate := func(column string, value *time.Time) {
		if value == nil {
			return
		}
		if value.IsZero() {
			ins[column] = goqu.L("NULL")
			upd[column] = goqu.L("NULL")

			return
		}
		ins[column] = value.Format(domain.DateLayout)
		upd[column] = value.Format(domain.DateLayout)
	}
	setDate("plan_date", updates.Plan)
	setDate("actual_date", updates.Actual)

	if updates.ECN != nil {
		ins["ecn"] = *updates.ECN
		upd["ecn"] = *updates.ECN
	}

	if _, err := p.Builder.Insert(gatewaysTable).
		Rows(ins).
		OnConflict(goqu.DoUpdate(gatewayConflictTarget, upd)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not upsert gateway in pg: %w", err)
	}

	return nil
}

// hydrateProjects loads modules, gateway slots and deliverables for the given
// projects in three queries and assembles the trees in place.
func (p *PgSQL) hydrateProjects(ctx context.Context, projects []domain.Project) error {
	if len(projects) == 0 {
		return nil
	}

	projectIDs := make([]uuid.UUID, 0, len(projects))
	byProject := make(map[uuid.UUID]*domain.Project, len(projects))
	for i := range projects {
		id := uuid.UUID(projects[i].ID)
		projectIDs = append(projectIDs, id)
		byProject[id] = &projects[i]
	}

	var mods []PgModule
	if err := p.Builder.From(modulesTable).
		Where(
			goqu.I("project_id").In(projectIDs),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &mods); err != nil {
		return fmt.Errorf("could not fetch project modules: %w", err)
	}

	// parents first, then children; the insertion order query above returns
	// rows in creation order so a child always finds its parent allocated.
	entityIDs := append([]uuid.UUID{}, projectIDs...)
	for i := range mods {
		if !mods[i].ParentModuleID.Valid {
			project := byProject[mods[i].ProjectID]
			project.Modules = append(project.Modules, *mods[i].ToDomain())
		}
		entityIDs = append(entityIDs, mods[i].ID)
	}

	moduleByID := make(map[uuid.UUID]*domain.Module, len(mods))
	for i := range projects {
		for j := range projects[i].Modules {
			moduleByID[uuid.UUID(projects[i].Modules[j].ID)] = &projects[i].Modules[j]
		}
	}
	for i := range mods {
		if !mods[i].ParentModuleID.Valid {
			continue
		}
		parent, ok := moduleByID[mods[i].ParentModuleID.UUID]
		if !ok {
			continue
		}
		parent.SubModules = append(parent.SubModules, *mods[i].ToDomain())
	}
	// re-index to cover sub-modules after their slices settled
	for i := range projects {
		for j := range projects[i].Modules {
			mod := &projects[i].Modules[j]
			moduleByID[uuid.UUID(mod.ID)] = mod
			for k := range mod.SubModules {
				moduleByID[uuid.UUID(mod.SubModules[k].ID)] = &mod.SubModules[k]
			}
		}
	}

	var gws []PgGateway
	if err := p.Builder.From(gatewaysTable).
		Where(goqu.I("entity_id").In(entityIDs)).
		Executor().ScanStructsContext(ctx, &gws); err != nil {
		return fmt.Errorf("could not fetch gateways: %w", err)
	}
	for i := range gws {
		slot := gws[i].ToSlot()
		key := domain.GatewayKey(gws[i].Gateway)
		switch storage.EntityType(gws[i].EntityType) {
		case storage.EntityProject:
			if project, ok := byProject[gws[i].EntityID]; ok {
				project.Gateways[key] = slot
			}
		case storage.EntityModule:
			if mod, ok := moduleByID[gws[i].EntityID]; ok {
				mod.Gateways[key] = slot
			}
		}
	}

	var dels []PgDeliverable
	if err := p.Builder.From(deliverablesTable).
		Where(goqu.I("project_id").In(projectIDs)).
		Order(goqu.I("gateway_stage").Asc(), goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &dels); err != nil {
		return fmt.Errorf("could not fetch deliverables: %w", err)
	}
	for i := range dels {
		if project, ok := byProject[dels[i].ProjectID]; ok {
			project.Deliverables = append(project.Deliverables, *dels[i].ToDomain())
		}
	}

	return nil
}
