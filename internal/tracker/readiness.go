package tracker

import (
	"tracker/pkg/domain"
)

// StageReadiness summarizes the checklist of one gateway stage.
type StageReadiness struct {
	// Total is the number of checklist rows in the stage.
	Total int `json:"total"`
	// Achieved is the number of rows counted as done (COMPLETED or NA).
	Achieved int `json:"achieved"`
}

// Readiness is the gateway readiness view of one project: how complete the
// deliverables of its active stages are.
type Readiness struct {
	// ProjectID identifies the project.
	ProjectID domain.ProjectID `json:"projectId"`
	// Score is the readiness percentage over the active stages.
	Score float64 `json:"score"`
	// ActiveStages lists the stages currently in scope: D0 plus every stage
	// the project has released.
	ActiveStages []domain.GatewayKey `json:"activeStages"`
	// Stages breaks the checklist down per stage, active or not.
	Stages map[domain.GatewayKey]StageReadiness `json:"stages"`
}

// buildReadiness computes the readiness of a fully hydrated project.
// Carryover projects carry no checklist and always report full readiness.
func buildReadiness(p *domain.Project) *Readiness {
	readiness := &Readiness{
		ProjectID: p.ID,
		Stages:    map[domain.GatewayKey]StageReadiness{},
	}

	if p.Type == domain.ProjectTypeCarryover {
		readiness.Score = 100

		return readiness
	}

	for _, d := range p.Deliverables {
		stage := readiness.Stages[d.Stage]
		stage.Total++
		if d.Status.Achieved() {
			stage.Achieved++
		}
		readiness.Stages[d.Stage] = stage
	}

	active := map[domain.GatewayKey]bool{domain.GatewayD0: true}
	for _, key := range domain.GatewayKeys() {
		if !p.Gateways.Slot(key).Actual.IsZero() {
			active[key] = true
		}
	}
	for _, key := range domain.GatewayKeys() {
		if active[key] {
			readiness.ActiveStages = append(readiness.ActiveStages, key)
		}
	}

	var total, achieved int
	for _, key := range readiness.ActiveStages {
		stage := readiness.Stages[key]
		total += stage.Total
		achieved += stage.Achieved
	}

	if total == 0 {
		readiness.Score = 100

		return readiness
	}
	readiness.Score = float64(achieved) / float64(total) * 100

	return readiness
}
