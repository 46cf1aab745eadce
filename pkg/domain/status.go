package domain

import "time"

// HealthStatus is the schedule classification of a released gateway, derived
// from the distance between the plan and actual dates.
type HealthStatus string

const (
	// HealthOnTrack means the actual date is on or before the plan date.
	HealthOnTrack HealthStatus = "green"
	// HealthAtRisk means the actual date slipped past the plan by no more
	// than the risk window.
	HealthAtRisk HealthStatus = "yellow"
	// HealthDelayed means the slip exceeds the risk window.
	HealthDelayed HealthStatus = "red"
	// HealthPending means plan or actual is missing, so no verdict applies.
	HealthPending HealthStatus = "grey"
)

// DefaultRiskWindowDays separates an at-risk slip from a delayed one.
const DefaultRiskWindowDays = 30

// Classify returns the health of a gateway given its plan and actual dates.
// Either date missing yields HealthPending.
func Classify(plan, actual time.Time, riskWindowDays int) HealthStatus {
	if plan.IsZero() || actual.IsZero() {
		return HealthPending
	}
	if riskWindowDays <= 0 {
		riskWindowDays = DefaultRiskWindowDays
	}

	days := DelayDays(plan, actual)
	switch {
	case days <= 0:
		return HealthOnTrack
	case days <= riskWindowDays:
		return HealthAtRisk
	default:
		return HealthDelayed
	}
}

// DelayDays returns the number of whole days the actual date lies after the
// plan date. Negative values mean the actual came early.
func DelayDays(plan, actual time.Time) int {
	return int(actual.Sub(plan) / (24 * time.Hour))
}
