// Package report renders a deterministic executive summary of the portfolio
// dashboard. It is rule based on purpose: the summary must be reproducible
// and reviewable, not generated prose.
package report

import (
	"fmt"
	"sort"
	"strings"
	"tracker/internal/tracker"
	"tracker/pkg/domain"
)

// Compose renders the dashboard into a short plain-text executive summary.
// Output is stable for a given dashboard: projects are grouped by severity
// and sorted by delay, then name.
func Compose(d *tracker.Dashboard) string {
	var b strings.Builder

	total := len(d.Projects)
	fmt.Fprintf(&b, "Portfolio status as of %s: %d project(s) tracked.\n",
		d.GeneratedAt.Format("2006-01-02"), total)

	if total == 0 {
		b.WriteString("No projects to report.\n")

		return b.String()
	}

	fmt.Fprintf(&b, "%d on track, %d at risk, %d delayed.\n",
		d.StatusCounts[domain.HealthOnTrack],
		d.StatusCounts[domain.HealthAtRisk],
		d.StatusCounts[domain.HealthDelayed])

	writeGroup(&b, "Delayed", pick(d.Projects, domain.HealthDelayed))
	writeGroup(&b, "At risk", pick(d.Projects, domain.HealthAtRisk))

	if low := lowAdherence(d.Projects); len(low) > 0 {
		b.WriteString("Plan adherence below 80%: ")
		b.WriteString(strings.Join(low, ", "))
		b.WriteString(".\n")
	}

	return b.String()
}

// writeGroup appends one severity section, worst slip first.
func writeGroup(b *strings.Builder, label string, projects []tracker.ProjectStatus) {
	if len(projects) == 0 {
		return
	}

	sort.Slice(projects, func(i, j int) bool {
		if projects[i].DelayDays != projects[j].DelayDays {
			return projects[i].DelayDays > projects[j].DelayDays
		}

		return projects[i].Name < projects[j].Name
	})

	parts := make([]string, 0, len(projects))
	for _, p := range projects {
		parts = append(parts, fmt.Sprintf("%s (%s %s, %d day(s) behind plan)",
			p.Name, p.LatestGateway, p.LatestGateway.Label(), p.DelayDays))
	}
	fmt.Fprintf(b, "%s: %s.\n", label, strings.Join(parts, "; "))
}

func pick(projects []tracker.ProjectStatus, health domain.HealthStatus) []tracker.ProjectStatus {
	var out []tracker.ProjectStatus
	for _, p := range projects {
		if p.Health == health {
			out = append(out, p)
		}
	}

	return out
}

// lowAdherence lists projects whose module releases track the plan poorly,
// sorted by name.
func lowAdherence(projects []tracker.ProjectStatus) []string {
	var out []string
	for _, p := range projects {
		if p.AdherenceRate < 80 {
			out = append(out, fmt.Sprintf("%s (%.0f%%)", p.Name, p.AdherenceRate))
		}
	}
	sort.Strings(out)

	return out
}
