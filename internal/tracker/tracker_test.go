package tracker_test

import (
	"context"
	"sort"
	"testing"
	"time"
	"tracker/internal/checklist"
	"tracker/internal/tracker"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"
	"tracker/pkg/storage"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
)

// memStorage is an in-memory storage.Storage used to exercise the service
// without a database. Transactions are a no-op passthrough.
type memStorage struct {
	projects []domain.Project
	jobs     []river.JobArgs
}

func newMemStorage() *memStorage { return &memStorage{} }

func (m *memStorage) Close() error { return nil }

func (m *memStorage) Begin(context.Context) (storage.TxStorage, error) {
	return &memTx{m}, nil
}

func (m *memStorage) WithTx(_ context.Context, cb func(storage.AllStorage) error) error {
	return cb(m)
}

type memTx struct{ *memStorage }

func (memTx) Commit() error   { return nil }
func (memTx) Rollback() error { return nil }

func cloneModule(m domain.Module) domain.Module {
	out := m
	out.Gateways = domain.GatewayBoard{}
	for k, v := range m.Gateways {
		out.Gateways[k] = v
	}
	out.SubModules = make([]domain.Module, 0, len(m.SubModules))
	for _, sub := range m.SubModules {
		out.SubModules = append(out.SubModules, cloneModule(sub))
	}

	return out
}

func cloneProject(p domain.Project) domain.Project {
	out := p
	out.Gateways = domain.GatewayBoard{}
	for k, v := range p.Gateways {
		out.Gateways[k] = v
	}
	out.Modules = make([]domain.Module, 0, len(p.Modules))
	for _, mod := range p.Modules {
		out.Modules = append(out.Modules, cloneModule(mod))
	}
	out.Deliverables = append([]domain.Deliverable(nil), p.Deliverables...)

	return out
}

func (m *memStorage) live(id domain.ProjectID) *domain.Project {
	for i := range m.projects {
		if m.projects[i].ID == id && m.projects[i].DeletedAt.IsZero() {
			return &m.projects[i]
		}
	}

	return nil
}

func (m *memStorage) StoreProjects(_ context.Context, projects ...domain.Project) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		p.ID = domain.ProjectID(uuid.New())
		p.CreatedAt = time.Now().UTC()
		p.Gateways = domain.NewGatewayBoard()
		p.Modules = nil
		p.Deliverables = nil
		m.projects = append(m.projects, p)
		out = append(out, cloneProject(p))
	}

	return out, nil
}

func (m *memStorage) ProjectByID(_ context.Context, id domain.ProjectID) (*domain.Project, error) {
	if p := m.live(id); p != nil {
		clone := cloneProject(*p)

		return &clone, nil
	}

	return nil, nil
}

func (m *memStorage) ProjectByName(_ context.Context, name string) (*domain.Project, error) {
	for i := range m.projects {
		if m.projects[i].Name == name && m.projects[i].DeletedAt.IsZero() {
			clone := cloneProject(m.projects[i])

			return &clone, nil
		}
	}

	return nil, nil
}

func (m *memStorage) Projects(_ context.Context,
	typeFilter domain.ProjectType,
	cursor time.Time,
	limit uint) (storage.ProjectPage, error) {
	var live []domain.Project
	for i := range m.projects {
		p := m.projects[i]
		if !p.DeletedAt.IsZero() {
			continue
		}
		if typeFilter != "" && p.Type != typeFilter {
			continue
		}
		if !cursor.IsZero() && !p.CreatedAt.Before(cursor) {
			continue
		}
		live = append(live, cloneProject(p))
	}
	sort.Slice(live, func(i, j int) bool { return live[i].CreatedAt.After(live[j].CreatedAt) })

	page := storage.ProjectPage{}
	if uint(len(live)) > limit {
		live = live[:limit]
		cursorOut := live[len(live)-1].CreatedAt
		page.NextCursor = &cursorOut
	}
	page.Projects = live

	return page, nil
}

func (m *memStorage) AllProjects(_ context.Context) ([]domain.Project, error) {
	var out []domain.Project
	for i := range m.projects {
		if m.projects[i].DeletedAt.IsZero() {
			out = append(out, cloneProject(m.projects[i]))
		}
	}

	return out, nil
}

func (m *memStorage) UpdateProjectByID(_ context.Context,
	id domain.ProjectID,
	updates storage.ProjectUpdates) (*domain.Project, error) {
	p := m.live(id)
	if p == nil {
		return nil, nil
	}
	if updates.Name != nil {
		p.Name = *updates.Name
	}
	if updates.Type != nil {
		p.Type = *updates.Type
	}
	p.UpdatedAt = time.Now().UTC()
	clone := cloneProject(*p)

	return &clone, nil
}

func (m *memStorage) DeleteProject(_ context.Context, id domain.ProjectID) (*domain.Project, error) {
	p := m.live(id)
	if p == nil {
		return nil, nil
	}
	p.DeletedAt = time.Now().UTC()
	clone := cloneProject(*p)

	return &clone, nil
}

func (m *memStorage) StoreModules(_ context.Context,
	projectID domain.ProjectID,
	parent *domain.ModuleID,
	modules ...domain.Module) ([]domain.Module, error) {
	p := m.live(projectID)
	if p == nil {
		return nil, nil
	}

	out := make([]domain.Module, 0, len(modules))
	for _, mod := range modules {
		mod.ID = domain.ModuleID(uuid.New())
		mod.CreatedAt = time.Now().UTC()
		mod.Gateways = domain.NewGatewayBoard()
		mod.SubModules = nil
		if parent == nil {
			p.Modules = append(p.Modules, mod)
		} else {
			target := p.Module(*parent)
			if target == nil {
				return nil, nil
			}
			target.SubModules = append(target.SubModules, mod)
		}
		out = append(out, cloneModule(mod))
	}

	return out, nil
}

func (m *memStorage) ModuleByID(_ context.Context,
	projectID domain.ProjectID,
	id domain.ModuleID) (*domain.Module, error) {
	p := m.live(projectID)
	if p == nil {
		return nil, nil
	}
	if mod := p.Module(id); mod != nil {
		clone := cloneModule(*mod)

		return &clone, nil
	}

	return nil, nil
}

func (m *memStorage) UpdateModuleByID(_ context.Context,
	projectID domain.ProjectID,
	id domain.ModuleID,
	updates storage.ModuleUpdates) (*domain.Module, error) {
	p := m.live(projectID)
	if p == nil {
		return nil, nil
	}
	mod := p.Module(id)
	if mod == nil {
		return nil, nil
	}
	if updates.Name != nil {
		mod.Name = *updates.Name
	}
	mod.UpdatedAt = time.Now().UTC()
	clone := cloneModule(*mod)

	return &clone, nil
}

func (m *memStorage) DeleteModule(_ context.Context,
	projectID domain.ProjectID,
	id domain.ModuleID) (*domain.Module, error) {
	p := m.live(projectID)
	if p == nil {
		return nil, nil
	}
	for i := range p.Modules {
		if p.Modules[i].ID == id {
			deleted := cloneModule(p.Modules[i])
			p.Modules = append(p.Modules[:i], p.Modules[i+1:]...)

			return &deleted, nil
		}
		for j := range p.Modules[i].SubModules {
			if p.Modules[i].SubModules[j].ID == id {
				deleted := cloneModule(p.Modules[i].SubModules[j])
				p.Modules[i].SubModules = append(
					p.Modules[i].SubModules[:j], p.Modules[i].SubModules[j+1:]...)

				return &deleted, nil
			}
		}
	}

	return nil, nil
}

func (m *memStorage) UpsertGateway(_ context.Context,
	entity storage.EntityType,
	entityID uuid.UUID,
	key domain.GatewayKey,
	updates storage.GatewayUpdates) error {
	var board domain.GatewayBoard
	switch entity {
	case storage.EntityProject:
		if p := m.live(domain.ProjectID(entityID)); p != nil {
			board = p.Gateways
		}
	case storage.EntityModule:
		for i := range m.projects {
			if mod := m.projects[i].Module(domain.ModuleID(entityID)); mod != nil {
				board = mod.Gateways

				break
			}
		}
	}
	if board == nil {
		return nil
	}

	if updates.Plan != nil {
		board.SetPlan(key, *updates.Plan)
	}
	if updates.Actual != nil {
		board.SetActual(key, *updates.Actual)
	}
	if updates.ECN != nil {
		board.SetECN(key, *updates.ECN)
	}

	return nil
}

func (m *memStorage) StoreDeliverables(_ context.Context,
	deliverables ...domain.Deliverable) ([]domain.Deliverable, error) {
	out := make([]domain.Deliverable, 0, len(deliverables))
	for _, d := range deliverables {
		d.ID = domain.DeliverableID(uuid.New())
		d.CreatedAt = time.Now().UTC()
		if p := m.live(d.ProjectID); p != nil {
			p.Deliverables = append(p.Deliverables, d)
		}
		out = append(out, d)
	}

	return out, nil
}

func (m *memStorage) DeliverablesByProject(_ context.Context,
	projectID domain.ProjectID) ([]domain.Deliverable, error) {
	p := m.live(projectID)
	if p == nil {
		return nil, nil
	}

	return append([]domain.Deliverable(nil), p.Deliverables...), nil
}

func (m *memStorage) UpdateDeliverableByID(_ context.Context,
	projectID domain.ProjectID,
	id domain.DeliverableID,
	updates storage.DeliverableUpdates) (*domain.Deliverable, error) {
	p := m.live(projectID)
	if p == nil {
		return nil, nil
	}
	for i := range p.Deliverables {
		if p.Deliverables[i].ID != id {
			continue
		}
		d := &p.Deliverables[i]
		if updates.Status != nil {
			d.Status = *updates.Status
		}
		if updates.EvidenceLink != nil {
			d.EvidenceLink = *updates.EvidenceLink
		}
		if updates.Remarks != nil {
			d.Remarks = *updates.Remarks
		}
		d.UpdatedAt = time.Now().UTC()
		clone := *d

		return &clone, nil
	}

	return nil, nil
}

func (m *memStorage) DeleteDeliverablesByProject(_ context.Context,
	projectID domain.ProjectID) error {
	if p := m.live(projectID); p != nil {
		p.Deliverables = nil
	}

	return nil
}

func (m *memStorage) AddJob(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
	m.jobs = append(m.jobs, args)

	return true, nil
}

func newService(items []checklist.Item) (tracker.Tracker, *memStorage) {
	mem := newMemStorage()

	return tracker.New(mem, tracker.Options{
		RiskWindowDays: domain.DefaultRiskWindowDays,
		Checklist:      items,
	}), mem
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)

	return d
}

func TestCreateProject_SeedsChecklist(t *testing.T) {
	svc, _ := newService([]checklist.Item{
		{Stage: domain.GatewayD0, Name: "Concept review", Major: true, Minor: true},
		{Stage: domain.GatewayD1, Name: "DFMEA", Major: true},
	})
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, "  Gearbox NG ", domain.ProjectTypeMajor, time.Time{}, 0)
	require.NoError(t, err)
	require.Equal(t, "Gearbox NG", project.Name)
	require.Len(t, project.Deliverables, 2)
	require.Equal(t, domain.DeliverableStatusPending, project.Deliverables[0].Status)

	minor, err := svc.CreateProject(ctx, "Axle Facelift", domain.ProjectTypeMinor, time.Time{}, 0)
	require.NoError(t, err)
	require.Len(t, minor.Deliverables, 1)

	carryover, err := svc.CreateProject(ctx, "Carry", domain.ProjectTypeCarryover, time.Time{}, 0)
	require.NoError(t, err)
	require.Empty(t, carryover.Deliverables)
}

func TestCreateProject_D0PlanAndGeneratedModules(t *testing.T) {
	svc, _ := newService(nil)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, "EV Launch", domain.ProjectTypeMajor,
		mustDate(t, "2026-04-01"), 3)
	require.NoError(t, err)
	require.Equal(t, mustDate(t, "2026-04-01"), project.Gateways.Slot(domain.GatewayD0).Plan)
	require.Len(t, project.Modules, 3)
	require.Equal(t, "Module 1", project.Modules[0].Name)
	require.Equal(t, "Module 3", project.Modules[2].Name)
}

func TestRenameModule(t *testing.T) {
	svc, _ := newService(nil)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, "Suspension", domain.ProjectTypeMajor, time.Time{}, 0)
	require.NoError(t, err)
	damper, err := svc.AddModule(ctx, project.ID, "Damper")
	require.NoError(t, err)
	_, err = svc.AddModule(ctx, project.ID, "Spring")
	require.NoError(t, err)

	renamed, err := svc.RenameModule(ctx, project.ID, damper.ID, "Active Damper")
	require.NoError(t, err)
	require.Equal(t, "Active Damper", renamed.Name)

	_, err = svc.RenameModule(ctx, project.ID, damper.ID, "Spring")
	require.ErrorIs(t, err, serrors.ErrConflict)

	_, err = svc.RenameModule(ctx, project.ID, domain.ModuleID(uuid.New()), "Ghost")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestReloadDeliverables_ResetsProgress(t *testing.T) {
	svc, _ := newService([]checklist.Item{
		{Stage: domain.GatewayD0, Name: "Concept review", Major: true},
	})
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, "Reload", domain.ProjectTypeMajor, time.Time{}, 0)
	require.NoError(t, err)
	require.Len(t, project.Deliverables, 1)

	status := domain.DeliverableStatusCompleted
	_, err = svc.UpdateDeliverable(ctx, project.ID, project.Deliverables[0].ID,
		storage.DeliverableUpdates{Status: &status})
	require.NoError(t, err)

	reloaded, err := svc.ReloadDeliverables(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	require.Equal(t, domain.DeliverableStatusPending, reloaded[0].Status)
	require.NotEqual(t, project.Deliverables[0].ID, reloaded[0].ID)
}

func TestCreateProject_DuplicateName(t *testing.T) {
	svc, _ := newService(nil)
	ctx := context.Background()

	_, err := svc.CreateProject(ctx, "Twin", domain.ProjectTypeMajor, time.Time{}, 0)
	require.NoError(t, err)

	_, err = svc.CreateProject(ctx, "Twin", domain.ProjectTypeMajor, time.Time{}, 0)
	require.ErrorIs(t, err, serrors.ErrConflict)

	_, err = svc.CreateProject(ctx, "   ", domain.ProjectTypeMajor, time.Time{}, 0)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestRecordActual_RollsUpToProject(t *testing.T) {
	svc, _ := newService(nil)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, "EV Platform", domain.ProjectTypeMajor, time.Time{}, 0)
	require.NoError(t, err)

	battery, err := svc.AddModule(ctx, project.ID, "Battery")
	require.NoError(t, err)
	motor, err := svc.AddModule(ctx, project.ID, "Motor")
	require.NoError(t, err)

	// the first released module already drives the project actual
	updated, err := svc.RecordActual(ctx, project.ID, battery.ID, domain.GatewayD1,
		mustDate(t, "2026-02-01"), "ECN-1")
	require.NoError(t, err)
	require.Equal(t, mustDate(t, "2026-02-01"), updated.Gateways.Slot(domain.GatewayD1).Actual)

	// both released: the project gets the later date
	updated, err = svc.RecordActual(ctx, project.ID, motor.ID, domain.GatewayD1,
		mustDate(t, "2026-02-20"), "")
	require.NoError(t, err)
	require.Equal(t, mustDate(t, "2026-02-20"), updated.Gateways.Slot(domain.GatewayD1).Actual)

	// clearing the later module falls back to the remaining release
	updated, err = svc.RecordActual(ctx, project.ID, motor.ID, domain.GatewayD1, time.Time{}, "")
	require.NoError(t, err)
	require.Equal(t, mustDate(t, "2026-02-01"), updated.Gateways.Slot(domain.GatewayD1).Actual)

	// clearing the last release retracts the project actual
	updated, err = svc.RecordActual(ctx, project.ID, battery.ID, domain.GatewayD1, time.Time{}, "")
	require.NoError(t, err)
	require.True(t, updated.Gateways.Slot(domain.GatewayD1).Actual.IsZero())
}

func TestRecordActual_RejectsParentModules(t *testing.T) {
	svc, _ := newService(nil)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, "Braking", domain.ProjectTypeMajor, time.Time{}, 0)
	require.NoError(t, err)
	parent, err := svc.AddModule(ctx, project.ID, "ABS")
	require.NoError(t, err)
	_, err = svc.AddSubModule(ctx, project.ID, parent.ID, "Sensor")
	require.NoError(t, err)

	_, err = svc.RecordActual(ctx, project.ID, parent.ID, domain.GatewayD0,
		mustDate(t, "2026-01-01"), "")
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestRecordActual_SubModuleRollsUpTwoLevels(t *testing.T) {
	svc, _ := newService(nil)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, "Chassis", domain.ProjectTypeMajor, time.Time{}, 0)
	require.NoError(t, err)
	parent, err := svc.AddModule(ctx, project.ID, "Frame")
	require.NoError(t, err)
	subA, err := svc.AddSubModule(ctx, project.ID, parent.ID, "Front")
	require.NoError(t, err)
	subB, err := svc.AddSubModule(ctx, project.ID, parent.ID, "Rear")
	require.NoError(t, err)

	_, err = svc.RecordActual(ctx, project.ID, subA.ID, domain.GatewayD2, mustDate(t, "2026-03-01"), "")
	require.NoError(t, err)
	updated, err := svc.RecordActual(ctx, project.ID, subB.ID, domain.GatewayD2, mustDate(t, "2026-03-10"), "")
	require.NoError(t, err)

	frame := updated.ModuleByName("Frame")
	require.NotNil(t, frame)
	require.Equal(t, mustDate(t, "2026-03-10"), frame.Gateways.Slot(domain.GatewayD2).Actual)
	require.Equal(t, mustDate(t, "2026-03-10"), updated.Gateways.Slot(domain.GatewayD2).Actual)
}

func TestAddSubModule_RejectsNesting(t *testing.T) {
	svc, _ := newService(nil)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, "Infotainment", domain.ProjectTypeMajor, time.Time{}, 0)
	require.NoError(t, err)
	parent, err := svc.AddModule(ctx, project.ID, "HMI")
	require.NoError(t, err)
	sub, err := svc.AddSubModule(ctx, project.ID, parent.ID, "Display")
	require.NoError(t, err)

	_, err = svc.AddSubModule(ctx, project.ID, sub.ID, "Panel")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestSetPlanDate_ProjectLevelOnly(t *testing.T) {
	svc, _ := newService(nil)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, "Steering", domain.ProjectTypeMajor, time.Time{}, 0)
	require.NoError(t, err)

	updated, err := svc.SetPlanDate(ctx, project.ID, domain.GatewayD3, mustDate(t, "2026-09-01"))
	require.NoError(t, err)
	require.Equal(t, mustDate(t, "2026-09-01"), updated.Gateways.Slot(domain.GatewayD3).Plan)

	_, err = svc.SetPlanDate(ctx, project.ID, domain.GatewayKey("D7"), mustDate(t, "2026-09-01"))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestUpdateProject_RenameConflict(t *testing.T) {
	svc, _ := newService(nil)
	ctx := context.Background()

	first, err := svc.CreateProject(ctx, "First", domain.ProjectTypeMajor, time.Time{}, 0)
	require.NoError(t, err)
	_, err = svc.CreateProject(ctx, "Second", domain.ProjectTypeMajor, time.Time{}, 0)
	require.NoError(t, err)

	name := "Second"
	_, err = svc.UpdateProject(ctx, first.ID, storage.ProjectUpdates{Name: &name})
	require.ErrorIs(t, err, serrors.ErrConflict)

	// renaming to its own name is fine
	own := "First"
	updated, err := svc.UpdateProject(ctx, first.ID, storage.ProjectUpdates{Name: &own})
	require.NoError(t, err)
	require.Equal(t, "First", updated.Name)
}

func TestDashboardAndReadiness_EndToEnd(t *testing.T) {
	svc, _ := newService([]checklist.Item{
		{Stage: domain.GatewayD0, Name: "Concept review", Major: true},
		{Stage: domain.GatewayD1, Name: "DFMEA", Major: true},
	})
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, "Dash", domain.ProjectTypeMajor, time.Time{}, 0)
	require.NoError(t, err)
	mod, err := svc.AddModule(ctx, project.ID, "Core")
	require.NoError(t, err)

	_, err = svc.SetPlanDate(ctx, project.ID, domain.GatewayD0, mustDate(t, "2026-01-01"))
	require.NoError(t, err)
	_, err = svc.RecordActual(ctx, project.ID, mod.ID, domain.GatewayD0, mustDate(t, "2026-01-10"), "")
	require.NoError(t, err)

	dashboard, err := svc.Dashboard(ctx, "")
	require.NoError(t, err)
	require.Len(t, dashboard.Projects, 1)
	require.Equal(t, domain.GatewayD0, dashboard.Projects[0].LatestGateway)
	require.Equal(t, domain.HealthAtRisk, dashboard.Projects[0].Health)
	require.Equal(t, 9, dashboard.Projects[0].DelayDays)
	require.Equal(t, tracker.ModuleStats{AtRisk: 1}, dashboard.Projects[0].ModuleStats)

	// the type filter narrows the overview
	filtered, err := svc.Dashboard(ctx, domain.ProjectTypeMinor)
	require.NoError(t, err)
	require.Empty(t, filtered.Projects)

	_, err = svc.Dashboard(ctx, domain.ProjectType("Bogus"))
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	readiness, err := svc.Readiness(ctx, project.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.GatewayKey{domain.GatewayD0}, readiness.ActiveStages)
	require.InDelta(t, 0.0, readiness.Score, 0.01)

	status := domain.DeliverableStatusCompleted
	deliverables, err := svc.Deliverables(ctx, project.ID)
	require.NoError(t, err)
	_, err = svc.UpdateDeliverable(ctx, project.ID, deliverables[0].ID,
		storage.DeliverableUpdates{Status: &status})
	require.NoError(t, err)

	readiness, err = svc.Readiness(ctx, project.ID)
	require.NoError(t, err)
	require.InDelta(t, 100.0, readiness.Score, 0.01)
}

func TestProject_NotFound(t *testing.T) {
	svc, _ := newService(nil)
	ctx := context.Background()

	_, err := svc.Project(ctx, domain.ProjectID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)

	err = svc.DeleteProject(ctx, domain.ProjectID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
