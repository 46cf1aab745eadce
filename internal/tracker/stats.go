package tracker

import (
	"time"
	"tracker/pkg/domain"
)

// ProjectStatus is the dashboard row computed for one project.
type ProjectStatus struct {
	// ID identifies the project.
	ID domain.ProjectID `json:"id"`
	// Name is the project name.
	Name string `json:"name"`
	// Type is the project type.
	Type domain.ProjectType `json:"type"`

	// LatestGateway is the most advanced gateway with a released project
	// actual, empty when nothing has been released yet.
	LatestGateway domain.GatewayKey `json:"latestGateway,omitempty"`
	// Health is the schedule verdict of the latest released gateway. Projects
	// without a verdict (nothing released, or no plan to compare against)
	// count as on track.
	Health domain.HealthStatus `json:"health"`
	// DelayDays is the slip of the latest released gateway in days; negative
	// when released early, zero without a comparable plan.
	DelayDays int `json:"delayDays"`
	// AdherenceRate is the share of module gateway releases that landed on or
	// before the project plan, in percent.
	AdherenceRate float64 `json:"adherenceRate"`
	// ModuleStats breaks the released module gateways down by how they landed
	// against the project plan.
	ModuleStats ModuleStats `json:"moduleStats"`
}

// ModuleStats counts released top-level module gateways of one project by
// schedule verdict. Only gateways with both a project plan and a module actual
// are counted.
type ModuleStats struct {
	// OnTrack counts releases on or before the plan date.
	OnTrack int `json:"onTrack"`
	// AtRisk counts releases late within the risk window.
	AtRisk int `json:"atRisk"`
	// Delayed counts releases late beyond the risk window.
	Delayed int `json:"delayed"`
}

// Dashboard is the portfolio overview across all live projects.
type Dashboard struct {
	// Projects holds one status row per live project, newest first.
	Projects []ProjectStatus `json:"projects"`
	// StatusCounts aggregates the health verdicts across projects.
	StatusCounts map[domain.HealthStatus]int `json:"statusCounts"`
	// TypeCounts aggregates the project types.
	TypeCounts map[domain.ProjectType]int `json:"typeCounts"`
	// GeneratedAt is the time the dashboard was computed.
	GeneratedAt time.Time `json:"generatedAt"`
}

// buildDashboard computes the dashboard from fully hydrated projects.
func buildDashboard(projects []domain.Project, riskWindowDays int, now time.Time) *Dashboard {
	dashboard := &Dashboard{
		Projects:     make([]ProjectStatus, 0, len(projects)),
		StatusCounts: map[domain.HealthStatus]int{},
		TypeCounts:   map[domain.ProjectType]int{},
		GeneratedAt:  now,
	}

	for i := range projects {
		status := projectStatus(&projects[i], riskWindowDays)
		dashboard.Projects = append(dashboard.Projects, status)
		dashboard.StatusCounts[status.Health]++
		dashboard.TypeCounts[status.Type]++
	}

	return dashboard
}

// projectStatus derives the dashboard row for one project.
func projectStatus(p *domain.Project, riskWindowDays int) ProjectStatus {
	status := ProjectStatus{
		ID:            p.ID,
		Name:          p.Name,
		Type:          p.Type,
		Health:        domain.HealthOnTrack,
		AdherenceRate: adherenceRate(p),
		ModuleStats:   moduleStats(p, riskWindowDays),
	}

	latest := latestReleasedGateway(p)
	if latest == "" {
		return status
	}
	status.LatestGateway = latest

	slot := p.Gateways.Slot(latest)
	health := domain.Classify(slot.Plan, slot.Actual, riskWindowDays)
	// a released gateway without a plan has no verdict; count it as on track
	if health == domain.HealthPending {
		health = domain.HealthOnTrack
	}
	status.Health = health
	if !slot.Plan.IsZero() {
		status.DelayDays = domain.DelayDays(slot.Plan, slot.Actual)
	}

	return status
}

// latestReleasedGateway returns the most advanced gateway with a project
// actual, or an empty key.
func latestReleasedGateway(p *domain.Project) domain.GatewayKey {
	var latest domain.GatewayKey
	for _, key := range domain.GatewayKeys() {
		if !p.Gateways.Slot(key).Actual.IsZero() {
			latest = key
		}
	}

	return latest
}

// adherenceRate measures how well module releases track the project plan: the
// percentage of top-level module actuals that landed on or before the project
// plan date of the same gateway. Modules with sub-modules count through their
// derived actual. Every release enters the denominator; a release without a
// plan to compare against cannot count as on time. Projects without releases
// score 100.
func adherenceRate(p *domain.Project) float64 {
	var total, onTime int
	for _, key := range domain.GatewayKeys() {
		plan := p.Gateways.Slot(key).Plan
		for i := range p.Modules {
			actual := p.Modules[i].Gateways.Slot(key).Actual
			if actual.IsZero() {
				continue
			}

			total++
			if !plan.IsZero() && !actual.After(plan) {
				onTime++
			}
		}
	}

	if total == 0 {
		return 100
	}

	return float64(onTime) / float64(total) * 100
}

// moduleStats classifies each released top-level module gateway against the
// project plan date of the same gateway.
func moduleStats(p *domain.Project, riskWindowDays int) ModuleStats {
	var stats ModuleStats
	for _, key := range domain.GatewayKeys() {
		plan := p.Gateways.Slot(key).Plan
		if plan.IsZero() {
			continue
		}

		for i := range p.Modules {
			actual := p.Modules[i].Gateways.Slot(key).Actual
			if actual.IsZero() {
				continue
			}

			switch domain.Classify(plan, actual, riskWindowDays) {
			case domain.HealthOnTrack:
				stats.OnTrack++
			case domain.HealthAtRisk:
				stats.AtRisk++
			case domain.HealthDelayed:
				stats.Delayed++
			}
		}
	}

	return stats
}
