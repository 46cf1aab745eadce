package tracker

import (
	"testing"
	"tracker/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestBuildTimeline(t *testing.T) {
	project := domain.Project{
		ID:       domain.ProjectID(uuid.New()),
		Name:     "Gearbox NG",
		Type:     domain.ProjectTypeMajor,
		Gateways: domain.NewGatewayBoard(),
	}
	project.Gateways.SetPlan(domain.GatewayD0, day(t, "2026-01-01"))
	project.Gateways.SetPlan(domain.GatewayD2, day(t, "2026-06-01"))
	project.Gateways.SetActual(domain.GatewayD0, day(t, "2026-01-15"))

	rows := buildTimeline([]domain.Project{project}, domain.DefaultRiskWindowDays)
	require.Len(t, rows, 1)

	row := rows[0]
	require.Equal(t, "Gearbox NG", row.Name)
	require.Equal(t, day(t, "2026-01-01"), *row.PlanStart)
	require.Equal(t, day(t, "2026-06-01"), *row.PlanEnd)
	require.Equal(t, day(t, "2026-01-15"), *row.ActualStart)
	require.Equal(t, day(t, "2026-01-15"), *row.ActualEnd)

	require.Len(t, row.Milestones, len(domain.GatewayKeys()))
	d0 := row.Milestones[0]
	require.Equal(t, domain.GatewayD0, d0.Gateway)
	require.Equal(t, "Concept", d0.Label)
	require.Equal(t, domain.HealthAtRisk, d0.Health)

	d1 := row.Milestones[1]
	require.Nil(t, d1.Plan)
	require.Nil(t, d1.Actual)
	require.Equal(t, domain.HealthPending, d1.Health)
}

func TestBuildTimeline_EmptyProject(t *testing.T) {
	rows := buildTimeline([]domain.Project{{
		ID:       domain.ProjectID(uuid.New()),
		Name:     "Blank",
		Gateways: domain.NewGatewayBoard(),
	}}, domain.DefaultRiskWindowDays)

	require.Len(t, rows, 1)
	require.Nil(t, rows[0].PlanStart)
	require.Nil(t, rows[0].ActualEnd)
}
