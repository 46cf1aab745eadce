package storage

import (
	"context"
	"tracker/pkg/domain"
)

// DeliverableUpdates describes a set of optional fields that can be applied
// to an existing deliverable during an update. Only non-nil fields will be
// updated.
type DeliverableUpdates struct {
	// Status, when provided, replaces the completion state.
	Status *domain.DeliverableStatus
	// EvidenceLink, when provided, replaces the evidence link. An empty string
	// clears it.
	EvidenceLink *string
	// Remarks, when provided, replaces the free-form notes.
	Remarks *string
}

// DeliverableStorage defines operations on project checklist rows.
type DeliverableStorage interface {
	// StoreDeliverables inserts one or more deliverables and returns the
	// stored rows as they exist in the database (including generated fields).
	StoreDeliverables(ctx context.Context, deliverables ...domain.Deliverable) ([]domain.Deliverable, error)
	// DeliverablesByProject returns all checklist rows of a project ordered by
	// gateway stage and creation time.
	DeliverablesByProject(ctx context.Context, projectID domain.ProjectID) ([]domain.Deliverable, error)
	// UpdateDeliverableByID updates a single deliverable within the project
	// and returns the updated row. Returns nil when not found.
	UpdateDeliverableByID(ctx context.Context,
		projectID domain.ProjectID,
		ID domain.DeliverableID,
		updates DeliverableUpdates) (*domain.Deliverable, error)
	// DeleteDeliverablesByProject removes every checklist row of a project.
	// Used when reseeding the checklist from the master list.
	DeleteDeliverablesByProject(ctx context.Context, projectID domain.ProjectID) error
}
