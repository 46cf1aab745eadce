package tracker_test

import (
	"context"
	"testing"
	"time"
	"tracker/internal/checklist"
	"tracker/internal/exchange"
	"tracker/pkg/domain"

	"github.com/stretchr/testify/require"
)

func importBatch(t *testing.T) []exchange.ProjectImport {
	t.Helper()

	return []exchange.ProjectImport{{
		Name: "Gearbox NG",
		Type: domain.ProjectTypeMajor,
		Plans: map[domain.GatewayKey]time.Time{
			domain.GatewayD0: mustDate(t, "2026-01-15"),
		},
		Modules: []exchange.ModuleImport{
			{
				Name:    "Housing",
				Actuals: map[domain.GatewayKey]time.Time{domain.GatewayD0: mustDate(t, "2026-01-10")},
				ECNs:    map[domain.GatewayKey]string{domain.GatewayD0: "ECN-7"},
			},
			{
				Name:    "Shaft",
				Actuals: map[domain.GatewayKey]time.Time{domain.GatewayD0: mustDate(t, "2026-01-20")},
			},
		},
	}}
}

func TestImport_CreatesProjectsAndRollsUp(t *testing.T) {
	svc, _ := newService([]checklist.Item{
		{Stage: domain.GatewayD0, Name: "Concept review", Major: true},
	})
	ctx := context.Background()

	summary, err := svc.Import(ctx, importBatch(t))
	require.NoError(t, err)
	require.Equal(t, 1, summary.ProjectsCreated)
	require.Equal(t, 0, summary.ProjectsUpdated)
	require.Equal(t, 2, summary.ModulesCreated)

	projects, _, err := svc.Projects(ctx, "", "", 10)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	project := projects[0]
	require.Equal(t, mustDate(t, "2026-01-15"), project.Gateways.Slot(domain.GatewayD0).Plan)
	// both modules released, rollup takes the later date
	require.Equal(t, mustDate(t, "2026-01-20"), project.Gateways.Slot(domain.GatewayD0).Actual)
	// new projects from imports get the checklist too
	require.Len(t, project.Deliverables, 1)

	housing := project.ModuleByName("Housing")
	require.NotNil(t, housing)
	require.Equal(t, "ECN-7", housing.Gateways.Slot(domain.GatewayD0).ECN)
}

func TestImport_MergesIntoExistingByName(t *testing.T) {
	svc, _ := newService(nil)
	ctx := context.Background()

	existing, err := svc.CreateProject(ctx, "Gearbox NG", domain.ProjectTypeMajor, time.Time{}, 0)
	require.NoError(t, err)
	_, err = svc.AddModule(ctx, existing.ID, "Housing")
	require.NoError(t, err)

	summary, err := svc.Import(ctx, importBatch(t))
	require.NoError(t, err)
	require.Equal(t, 0, summary.ProjectsCreated)
	require.Equal(t, 1, summary.ProjectsUpdated)
	// Housing matched by name, only Shaft is new
	require.Equal(t, 1, summary.ModulesCreated)

	project, err := svc.Project(ctx, existing.ID)
	require.NoError(t, err)
	require.Len(t, project.Modules, 2)
}

func TestImport_RetypesExistingProject(t *testing.T) {
	svc, _ := newService(nil)
	ctx := context.Background()

	existing, err := svc.CreateProject(ctx, "Gearbox NG", domain.ProjectTypeMinor, time.Time{}, 0)
	require.NoError(t, err)

	// the batch names type Major
	_, err = svc.Import(ctx, importBatch(t))
	require.NoError(t, err)

	project, err := svc.Project(ctx, existing.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ProjectTypeMajor, project.Type)
}

func TestImport_BlankTypeKeepsExisting(t *testing.T) {
	svc, _ := newService(nil)
	ctx := context.Background()

	existing, err := svc.CreateProject(ctx, "Axle", domain.ProjectTypeCarryover, time.Time{}, 0)
	require.NoError(t, err)

	_, err = svc.Import(ctx, []exchange.ProjectImport{{Name: "Axle"}})
	require.NoError(t, err)

	project, err := svc.Project(ctx, existing.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ProjectTypeCarryover, project.Type)
}

func TestImport_BlankTypeCreatesNew(t *testing.T) {
	svc, _ := newService([]checklist.Item{
		{Stage: domain.GatewayD0, Name: "Concept review", Major: true, Minor: true},
	})
	ctx := context.Background()

	_, err := svc.Import(ctx, []exchange.ProjectImport{{Name: "Unnamed Program"}})
	require.NoError(t, err)

	projects, _, err := svc.Projects(ctx, "", "", 10)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, domain.ProjectTypeNew, projects[0].Type)
	// only Major and Minor projects get a checklist
	require.Empty(t, projects[0].Deliverables)
}

func TestImport_UnknownParentFallsBackToTopLevel(t *testing.T) {
	svc, _ := newService(nil)
	ctx := context.Background()

	batch := []exchange.ProjectImport{{
		Name: "Axle",
		Type: domain.ProjectTypeMinor,
		Modules: []exchange.ModuleImport{{
			Name:   "Seal",
			Parent: "No Such Module",
		}},
	}}

	summary, err := svc.Import(ctx, batch)
	require.NoError(t, err)
	require.Equal(t, 1, summary.ModulesCreated)

	projects, _, err := svc.Projects(ctx, "", "", 10)
	require.NoError(t, err)
	seal := projects[0].ModuleByName("Seal")
	require.NotNil(t, seal)
}

func TestImport_SubModulesUnderNamedParent(t *testing.T) {
	svc, _ := newService(nil)
	ctx := context.Background()

	batch := []exchange.ProjectImport{{
		Name: "Chassis",
		Modules: []exchange.ModuleImport{
			{Name: "Frame"},
			{
				Name:    "Front",
				Parent:  "Frame",
				Actuals: map[domain.GatewayKey]time.Time{domain.GatewayD1: mustDate(t, "2026-02-01")},
			},
		},
	}}

	_, err := svc.Import(ctx, batch)
	require.NoError(t, err)

	projects, _, err := svc.Projects(ctx, "", "", 10)
	require.NoError(t, err)
	frame := projects[0].ModuleByName("Frame")
	require.NotNil(t, frame)
	require.Len(t, frame.SubModules, 1)
	// the single released child drives the parent's derived actual
	require.Equal(t, mustDate(t, "2026-02-01"), frame.Gateways.Slot(domain.GatewayD1).Actual)
}
