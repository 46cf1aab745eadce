package postgres

import (
	"database/sql"
	"time"
	"tracker/pkg/domain"

	"github.com/google/uuid"
)

type PgProject struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Name string `db:"name"`
	Type string `db:"type"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgProject) ToDomain() *domain.Project {
	return &domain.Project{
		ID:        domain.ProjectID(p.ID),
		Name:      p.Name,
		Type:      domain.ProjectType(p.Type),
		Gateways:  domain.NewGatewayBoard(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}
}

func (p *PgProject) FromDomain(project domain.Project) {
	*p = PgProject{
		ID:        uuid.UUID(project.ID),
		Name:      project.Name,
		Type:      string(project.Type),
		CreatedAt: project.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  project.UpdatedAt,
			Valid: !project.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  project.DeletedAt,
			Valid: !project.DeletedAt.IsZero(),
		},
	}
}

type PgModule struct {
	ID             uuid.UUID     `db:"id" goqu:"skipinsert"`
	ProjectID      uuid.UUID     `db:"project_id"`
	ParentModuleID uuid.NullUUID `db:"parent_module_id"`

	Name string `db:"name"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (m *PgModule) ToDomain() *domain.Module {
	return &domain.Module{
		ID:        domain.ModuleID(m.ID),
		Name:      m.Name,
		Gateways:  domain.NewGatewayBoard(),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt.Time,
		DeletedAt: m.DeletedAt.Time,
	}
}

type PgGateway struct {
	EntityType string    `db:"entity_type"`
	EntityID   uuid.UUID `db:"entity_id"`
	Gateway    string    `db:"gateway"`

	PlanDate   sql.NullTime `db:"plan_date"`
	ActualDate sql.NullTime `db:"actual_date"`
	ECN        string       `db:"ecn"`

	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

// ToSlot converts a gateway row into a domain slot. Gateway dates are stored
// as DATE columns and surface as UTC days.
func (g *PgGateway) ToSlot() domain.GatewaySlot {
	return domain.GatewaySlot{
		Plan:   utcDay(g.PlanDate),
		Actual: utcDay(g.ActualDate),
		ECN:    g.ECN,
	}
}

func utcDay(t sql.NullTime) time.Time {
	if !t.Valid {
		return time.Time{}
	}

	return time.Date(t.Time.Year(), t.Time.Month(), t.Time.Day(), 0, 0, 0, 0, time.UTC)
}

type PgDeliverable struct {
	ID        uuid.UUID `db:"id" goqu:"skipinsert"`
	ProjectID uuid.UUID `db:"project_id"`

	GatewayStage string `db:"gateway_stage"`
	Name         string `db:"name"`
	Status       string `db:"status"`
	EvidenceLink string `db:"evidence_link"`
	Remarks      string `db:"remarks"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (d *PgDeliverable) ToDomain() *domain.Deliverable {
	return &domain.Deliverable{
		ID:           domain.DeliverableID(d.ID),
		ProjectID:    domain.ProjectID(d.ProjectID),
		Stage:        domain.GatewayKey(d.GatewayStage),
		Name:         d.Name,
		Status:       domain.DeliverableStatus(d.Status),
		EvidenceLink: d.EvidenceLink,
		Remarks:      d.Remarks,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt.Time,
	}
}

func (d *PgDeliverable) FromDomain(deliverable domain.Deliverable) {
	*d = PgDeliverable{
		ID:           uuid.UUID(deliverable.ID),
		ProjectID:    uuid.UUID(deliverable.ProjectID),
		GatewayStage: string(deliverable.Stage),
		Name:         deliverable.Name,
		Status:       string(deliverable.Status),
		EvidenceLink: deliverable.EvidenceLink,
		Remarks:      deliverable.Remarks,
		CreatedAt:    deliverable.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  deliverable.UpdatedAt,
			Valid: !deliverable.UpdatedAt.IsZero(),
		},
	}
}

func pgDeliverablesToDomain(rows []PgDeliverable) []domain.Deliverable {
	out := make([]domain.Deliverable, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
