package report_test

import (
	"testing"
	"time"
	"tracker/internal/report"
	"tracker/internal/tracker"
	"tracker/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func buildProject(t *testing.T) *domain.Project {
	t.Helper()

	p := &domain.Project{
		ID:       domain.ProjectID(uuid.New()),
		Name:     "Gearbox NG",
		Type:     domain.ProjectTypeMajor,
		Gateways: domain.NewGatewayBoard(),
	}
	p.Gateways.SetPlan(domain.GatewayD1, parseDay(t, "2026-02-01"))

	housing := domain.Module{
		ID: domain.ModuleID(uuid.New()), Name: "Housing", Gateways: domain.NewGatewayBoard(),
	}
	housing.Gateways.SetActual(domain.GatewayD1, parseDay(t, "2026-03-18")) // 45 days late
	shaft := domain.Module{
		ID: domain.ModuleID(uuid.New()), Name: "Shaft", Gateways: domain.NewGatewayBoard(),
	}
	shaft.Gateways.SetActual(domain.GatewayD1, parseDay(t, "2026-01-20")) // early
	p.Modules = []domain.Module{housing, shaft}

	return p
}

func parseDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)

	return d
}

func TestProjectDelays(t *testing.T) {
	delays := report.ProjectDelays(buildProject(t))

	require.Len(t, delays, 1)
	require.Equal(t, "Housing", delays[0].Module)
	require.Equal(t, domain.GatewayD1, delays[0].Gateway)
	require.Equal(t, 45, delays[0].Days)
}

func TestClassifyDelays(t *testing.T) {
	require.Equal(t, report.StatusOnTrack, report.ClassifyDelays(nil, 30))
	require.Equal(t, report.StatusAtRisk,
		report.ClassifyDelays([]report.Delay{{Days: 10}}, 30))
	require.Equal(t, report.StatusCriticalDelay,
		report.ClassifyDelays([]report.Delay{{Days: 10}, {Days: 31}}, 30))
}

func TestComposeProject(t *testing.T) {
	project := buildProject(t)
	readiness := &tracker.Readiness{
		ProjectID:    project.ID,
		Score:        50,
		ActiveStages: []domain.GatewayKey{domain.GatewayD0},
		Stages: map[domain.GatewayKey]tracker.StageReadiness{
			domain.GatewayD0: {Total: 4, Achieved: 2},
		},
	}

	summary := report.ComposeProject(project, readiness, 30)

	require.Contains(t, summary, "Subject: Gearbox NG status report: Critical Delay")
	require.Contains(t, summary, "1 deviation(s) against the committed gateway plan")
	require.Contains(t, summary, "Housing at D1 Proto, 45 day(s) behind plan")
	require.Contains(t, summary, "Gateway readiness stands at 50% (2/4 Items)")
	require.Contains(t, summary, "Immediate recovery actions")

	// stable output
	require.Equal(t, summary, report.ComposeProject(project, readiness, 30))
}

func TestComposeProject_NoDeviations(t *testing.T) {
	project := &domain.Project{
		ID:       domain.ProjectID(uuid.New()),
		Name:     "Clean",
		Gateways: domain.NewGatewayBoard(),
	}
	readiness := &tracker.Readiness{ProjectID: project.ID, Score: 100,
		Stages: map[domain.GatewayKey]tracker.StageReadiness{}}

	summary := report.ComposeProject(project, readiness, 30)
	require.Contains(t, summary, "Subject: Clean status report: On Track")
	require.Contains(t, summary, "no module deviations")
	require.Contains(t, summary, "progressing according to the committed plan")
}
