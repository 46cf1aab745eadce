package report_test

import (
	"testing"
	"time"
	"tracker/internal/report"
	"tracker/internal/tracker"
	"tracker/pkg/domain"

	"github.com/stretchr/testify/require"
)

func dashboard() *tracker.Dashboard {
	return &tracker.Dashboard{
		Projects: []tracker.ProjectStatus{
			{
				Name: "Gearbox NG", Type: domain.ProjectTypeMajor,
				LatestGateway: domain.GatewayD2, Health: domain.HealthDelayed,
				DelayDays: 45, AdherenceRate: 40,
			},
			{
				Name: "Axle Facelift", Type: domain.ProjectTypeMinor,
				LatestGateway: domain.GatewayD1, Health: domain.HealthAtRisk,
				DelayDays: 12, AdherenceRate: 90,
			},
			{
				Name: "Carry", Type: domain.ProjectTypeCarryover,
				Health: domain.HealthOnTrack, AdherenceRate: 100,
			},
		},
		StatusCounts: map[domain.HealthStatus]int{
			domain.HealthOnTrack: 1,
			domain.HealthAtRisk:  1,
			domain.HealthDelayed: 1,
		},
		TypeCounts:  map[domain.ProjectType]int{},
		GeneratedAt: time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC),
	}
}

func TestCompose(t *testing.T) {
	summary := report.Compose(dashboard())

	require.Contains(t, summary, "Portfolio status as of 2026-08-24: 3 project(s) tracked.")
	require.Contains(t, summary, "1 on track, 1 at risk, 1 delayed.")
	require.Contains(t, summary, "Delayed: Gearbox NG (D2 Pilot, 45 day(s) behind plan).")
	require.Contains(t, summary, "At risk: Axle Facelift (D1 Proto, 12 day(s) behind plan).")
	require.Contains(t, summary, "Plan adherence below 80%: Gearbox NG (40%).")
}

func TestCompose_Deterministic(t *testing.T) {
	require.Equal(t, report.Compose(dashboard()), report.Compose(dashboard()))
}

func TestCompose_Empty(t *testing.T) {
	summary := report.Compose(&tracker.Dashboard{
		StatusCounts: map[domain.HealthStatus]int{},
		TypeCounts:   map[domain.ProjectType]int{},
		GeneratedAt:  time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC),
	})
	require.Contains(t, summary, "0 project(s) tracked")
	require.Contains(t, summary, "No projects to report.")
}
