package tracker

import (
	"time"
	"tracker/pkg/domain"
)

// Milestone is one gateway on a project timeline. Dates are nil when not set.
type Milestone struct {
	// Gateway is the gateway key of the milestone.
	Gateway domain.GatewayKey `json:"gateway"`
	// Label is the human-readable gateway name.
	Label string `json:"label"`
	// Plan is the committed plan date.
	Plan *time.Time `json:"plan,omitempty"`
	// Actual is the released actual date.
	Actual *time.Time `json:"actual,omitempty"`
	// Health classifies the milestone schedule.
	Health domain.HealthStatus `json:"health"`
}

// ProjectTimeline is the Gantt row of one project: the overall plan range,
// the released segment and the per-gateway milestones.
type ProjectTimeline struct {
	// ID identifies the project.
	ID domain.ProjectID `json:"id"`
	// Name is the project name.
	Name string `json:"name"`
	// Type is the project type.
	Type domain.ProjectType `json:"type"`

	// PlanStart and PlanEnd span the earliest and latest plan dates.
	PlanStart *time.Time `json:"planStart,omitempty"`
	PlanEnd   *time.Time `json:"planEnd,omitempty"`
	// ActualStart and ActualEnd span the released gateway dates.
	ActualStart *time.Time `json:"actualStart,omitempty"`
	ActualEnd   *time.Time `json:"actualEnd,omitempty"`

	// Milestones holds one entry per gateway, in gateway order.
	Milestones []Milestone `json:"milestones"`
}

// buildTimeline computes the timeline rows from fully hydrated projects.
func buildTimeline(projects []domain.Project, riskWindowDays int) []ProjectTimeline {
	out := make([]ProjectTimeline, 0, len(projects))
	for i := range projects {
		out = append(out, projectTimeline(&projects[i], riskWindowDays))
	}

	return out
}

func projectTimeline(p *domain.Project, riskWindowDays int) ProjectTimeline {
	row := ProjectTimeline{
		ID:         p.ID,
		Name:       p.Name,
		Type:       p.Type,
		Milestones: make([]Milestone, 0, len(domain.GatewayKeys())),
	}

	for _, key := range domain.GatewayKeys() {
		slot := p.Gateways.Slot(key)
		milestone := Milestone{
			Gateway: key,
			Label:   key.Label(),
			Health:  domain.Classify(slot.Plan, slot.Actual, riskWindowDays),
		}

		if !slot.Plan.IsZero() {
			plan := slot.Plan
			milestone.Plan = &plan
			row.PlanStart = earliest(row.PlanStart, plan)
			row.PlanEnd = latest(row.PlanEnd, plan)
		}
		if !slot.Actual.IsZero() {
			actual := slot.Actual
			milestone.Actual = &actual
			row.ActualStart = earliest(row.ActualStart, actual)
			row.ActualEnd = latest(row.ActualEnd, actual)
		}

		row.Milestones = append(row.Milestones, milestone)
	}

	return row
}

func earliest(current *time.Time, candidate time.Time) *time.Time {
	if current == nil || candidate.Before(*current) {
		return &candidate
	}

	return current
}

func latest(current *time.Time, candidate time.Time) *time.Time {
	if current == nil || candidate.After(*current) {
		return &candidate
	}

	return current
}
