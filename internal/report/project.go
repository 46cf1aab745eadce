package report

import (
	"fmt"
	"sort"
	"strings"
	"tracker/internal/tracker"
	"tracker/pkg/domain"
)

// Classification labels for the per-project summary.
const (
	StatusOnTrack       = "On Track"
	StatusAtRisk        = "At Risk"
	StatusCriticalDelay = "Critical Delay"
)

// Delay is one late module release measured against the project plan date of
// the same gateway.
type Delay struct {
	// Module is the name of the slipping module or sub-module.
	Module string `json:"module"`
	// Gateway is the gateway the release belongs to.
	Gateway domain.GatewayKey `json:"gateway"`
	// Days is the slip in whole days, always positive.
	Days int `json:"days"`
}

// ProjectDelays lists every module release that landed after the project plan
// of its gateway, worst slip first. Releases without a comparable plan are
// skipped.
func ProjectDelays(p *domain.Project) []Delay {
	var delays []Delay
	for _, key := range domain.GatewayKeys() {
		plan := p.Gateways.Slot(key).Plan
		if plan.IsZero() {
			continue
		}

		for i := range p.Modules {
			mod := &p.Modules[i]
			if mod.HasSubModules() {
				for j := range mod.SubModules {
					delays = appendDelay(delays, &mod.SubModules[j], key, p)
				}

				continue
			}
			delays = appendDelay(delays, mod, key, p)
		}
	}

	sort.Slice(delays, func(i, j int) bool {
		if delays[i].Days != delays[j].Days {
			return delays[i].Days > delays[j].Days
		}
		if delays[i].Module != delays[j].Module {
			return delays[i].Module < delays[j].Module
		}

		return delays[i].Gateway < delays[j].Gateway
	})

	return delays
}

func appendDelay(delays []Delay, mod *domain.Module, key domain.GatewayKey, p *domain.Project) []Delay {
	actual := mod.Gateways.Slot(key).Actual
	if actual.IsZero() {
		return delays
	}
	days := domain.DelayDays(p.Gateways.Slot(key).Plan, actual)
	if days <= 0 {
		return delays
	}

	return append(delays, Delay{Module: mod.Name, Gateway: key, Days: days})
}

// ClassifyDelays maps a delay list onto the summary status: any slip past the
// risk window is a critical delay, any slip at all puts the project at risk.
func ClassifyDelays(delays []Delay, riskWindowDays int) string {
	if riskWindowDays <= 0 {
		riskWindowDays = domain.DefaultRiskWindowDays
	}

	status := StatusOnTrack
	for _, d := range delays {
		if d.Days > riskWindowDays {
			return StatusCriticalDelay
		}
		status = StatusAtRisk
	}

	return status
}

// ComposeProject renders the deterministic executive summary of one project:
// subject line with the schedule status, the deviation list with the worst
// slip named, the readiness standing and a closing line.
func ComposeProject(p *domain.Project, readiness *tracker.Readiness, riskWindowDays int) string {
	delays := ProjectDelays(p)
	status := ClassifyDelays(delays, riskWindowDays)

	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s status report: %s\n\n", p.Name, status)

	if len(delays) == 0 {
		fmt.Fprintf(&b, "%s reports no module deviations against the committed gateway plan.\n\n", p.Name)
	} else {
		top := delays[0]
		fmt.Fprintf(&b, "%s is tracking %d deviation(s) against the committed gateway plan. "+
			"The largest slip is %s at %s %s, %d day(s) behind plan.\n\n",
			p.Name, len(delays), top.Module, top.Gateway, top.Gateway.Label(), top.Days)
	}

	achieved, total := readinessCounts(readiness)
	fmt.Fprintf(&b, "Gateway readiness stands at %.0f%% (%d/%d Items).\n\n",
		readiness.Score, achieved, total)

	switch status {
	case StatusCriticalDelay:
		b.WriteString("Immediate recovery actions are required to protect the downstream gateways.\n")
	case StatusAtRisk:
		b.WriteString("Recovery actions should be agreed before the next gateway review.\n")
	default:
		b.WriteString("The project is progressing according to the committed plan.\n")
	}

	return b.String()
}

// readinessCounts sums the checklist standing over the active stages.
func readinessCounts(r *tracker.Readiness) (achieved, total int) {
	for _, key := range r.ActiveStages {
		stage := r.Stages[key]
		achieved += stage.Achieved
		total += stage.Total
	}

	return achieved, total
}
