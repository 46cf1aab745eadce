package domain

import (
	"time"

	"github.com/google/uuid"
)

// ModuleID uniquely identifies a module or sub-module.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ModuleID uuid.UUID

func (id ModuleID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID in its canonical UUID form.
func (id ModuleID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses the canonical UUID form.
func (id *ModuleID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Module is a component of a project. Top-level modules may own one level of
// sub-modules; when they do, their gateway actuals become derived state.
type Module struct {
	// ID is the unique identifier of the module.
	ID ModuleID `json:"id"`
	// Name is the display name; not required to be unique.
	Name string `json:"name"`

	// Gateways holds per-gateway actual dates and ECN references. When
	// SubModules is non-empty, actuals are maintained by the rollup.
	Gateways GatewayBoard `json:"gateways"`
	// SubModules are the children of a top-level module. Sub-modules never
	// have children of their own.
	SubModules []Module `json:"subModules,omitempty"`

	// CreatedAt is the time when the module was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time of the last change to the module row itself.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the module was soft-deleted; zero means live.
	DeletedAt time.Time `json:"-"`
}

// HasSubModules reports whether the module's actuals are derived from
// children.
func (m *Module) HasSubModules() bool { return len(m.SubModules) > 0 }

// SubModuleByName returns the sub-module with the given name, or nil.
func (m *Module) SubModuleByName(name string) *Module {
	for i := range m.SubModules {
		if m.SubModules[i].Name == name {
			return &m.SubModules[i]
		}
	}

	return nil
}
