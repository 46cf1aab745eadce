package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectID uniquely identifies a project.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ProjectID uuid.UUID

func (id ProjectID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID in its canonical UUID form.
func (id ProjectID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses the canonical UUID form.
func (id *ProjectID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// ProjectType categorizes a project and decides which checklist rows seed
// its deliverables.
type ProjectType string

const (
	// ProjectTypeMajor is a full development program with the complete
	// gateway checklist.
	ProjectTypeMajor ProjectType = "Major"
	// ProjectTypeMinor is a reduced program with the minor checklist subset.
	ProjectTypeMinor ProjectType = "Minor"
	// ProjectTypeCarryover reuses a released design; it carries no checklist
	// and always reports full readiness.
	ProjectTypeCarryover ProjectType = "Carryover"
	// ProjectTypeNew is assigned to projects created by bulk import rows that
	// name no type. It is not selectable through the API.
	ProjectTypeNew ProjectType = "New"
)

// KnownProjectType reports whether t is one of the predefined types. Bulk
// imports may introduce free-form types, which are stored as-is.
func KnownProjectType(t ProjectType) bool {
	switch t {
	case ProjectTypeMajor, ProjectTypeMinor, ProjectTypeCarryover:
		return true
	default:
		return false
	}
}

// Project is the root entity of the tracker: a development program with five
// gateways, a two-level module tree and a deliverables checklist.
type Project struct {
	// ID is the unique identifier of the project.
	ID ProjectID `json:"id"`
	// Name is unique among live (non-deleted) projects.
	Name string `json:"name"`
	// Type decides checklist seeding and readiness rules.
	Type ProjectType `json:"type"`

	// Gateways holds per-gateway plan dates (user-entered) and actual dates
	// (derived from module actuals by the rollup).
	Gateways GatewayBoard `json:"gateways"`
	// Modules are the project's top-level modules with their sub-modules.
	Modules []Module `json:"modules"`
	// Deliverables is the per-gateway checklist seeded from the master list.
	Deliverables []Deliverable `json:"deliverables"`

	// CreatedAt is the time when the project was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time of the last change to the project row itself.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the project was soft-deleted; zero means live.
	DeletedAt time.Time `json:"-"`
}

// Module returns a pointer to the module or sub-module with the given ID, or
// nil when absent.
func (p *Project) Module(id ModuleID) *Module {
	for i := range p.Modules {
		if p.Modules[i].ID == id {
			return &p.Modules[i]
		}
		for j := range p.Modules[i].SubModules {
			if p.Modules[i].SubModules[j].ID == id {
				return &p.Modules[i].SubModules[j]
			}
		}
	}

	return nil
}

// ModuleByName returns the top-level module with the given name, or nil.
func (p *Project) ModuleByName(name string) *Module {
	for i := range p.Modules {
		if p.Modules[i].Name == name {
			return &p.Modules[i]
		}
	}

	return nil
}
