package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeliverableID uniquely identifies a deliverable checklist row.
// It wraps uuid.UUID to provide type safety at the domain layer.
type DeliverableID uuid.UUID

func (id DeliverableID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID in its canonical UUID form.
func (id DeliverableID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses the canonical UUID form.
func (id *DeliverableID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// DeliverableStatus is the completion state of a checklist row.
type DeliverableStatus string

const (
	// DeliverableStatusPending indicates the item has not been started.
	DeliverableStatusPending DeliverableStatus = "PENDING"
	// DeliverableStatusWIP indicates the item is being worked on.
	DeliverableStatusWIP DeliverableStatus = "WIP"
	// DeliverableStatusCompleted indicates the item is done with evidence.
	DeliverableStatusCompleted DeliverableStatus = "COMPLETED"
	// DeliverableStatusNA indicates the item does not apply to this project.
	DeliverableStatusNA DeliverableStatus = "NA"
)

// ValidDeliverableStatus reports whether s is one of the four states.
func ValidDeliverableStatus(s DeliverableStatus) bool {
	switch s {
	case DeliverableStatusPending, DeliverableStatusWIP,
		DeliverableStatusCompleted, DeliverableStatusNA:
		return true
	default:
		return false
	}
}

// Achieved reports whether the status counts toward readiness. NA rows count
// as achieved so inapplicable items never hold a gateway back.
func (s DeliverableStatus) Achieved() bool {
	return s == DeliverableStatusCompleted || s == DeliverableStatusNA
}

// Deliverable is one row of a project's gateway checklist.
type Deliverable struct {
	// ID is the unique identifier of the deliverable.
	ID DeliverableID `json:"id"`
	// ProjectID is the owning project.
	ProjectID ProjectID `json:"projectId"`

	// Stage is the gateway this item must be closed for.
	Stage GatewayKey `json:"gatewayStage"`
	// Name is the checklist item text from the master list.
	Name string `json:"name"`
	// Status is the completion state of the item.
	Status DeliverableStatus `json:"status"`
	// EvidenceLink points at the document proving completion.
	EvidenceLink string `json:"evidenceLink"`
	// Remarks holds free-form notes.
	Remarks string `json:"remarks"`

	// CreatedAt is the time when the row was seeded.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time of the last status or note change.
	UpdatedAt time.Time `json:"updatedAt"`
}
