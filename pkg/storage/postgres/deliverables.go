package postgres

import (
	"context"
	"fmt"
	"tracker/pkg/domain"
	"tracker/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func (p *PgSQL) StoreDeliverables(ctx context.Context,
	deliverables ...domain.Deliverable) ([]domain.Deliverable, error) {
	if len(deliverables) == 0 {
		return nil, nil
	}

	rows := make([]PgDeliverable, len(deliverables))
	for i := range rows {
		rows[i].FromDomain(deliverables[i])
	}

	var result []PgDeliverable
	if err := p.Builder.Insert(deliverablesTable).
		Rows(rows).
		Returning(&PgDeliverable{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store deliverables into pg: %w", err)
	}

	return pgDeliverablesToDomain(result), nil
}

// DeliverablesByProject returns all checklist rows of a project ordered by
// gateway stage and creation time.
func (p *PgSQL) DeliverablesByProject(ctx context.Context,
	projectID domain.ProjectID) ([]domain.Deliverable, error) {
	var rows []PgDeliverable
	if err := p.Builder.From(deliverablesTable).
		Where(goqu.I("project_id").Eq(uuid.UUID(projectID))).
		Order(goqu.I("gateway_stage").Asc(), goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch deliverables from pg: %w", err)
	}

	return pgDeliverablesToDomain(rows), nil
}

// UpdateDeliverableByID updates a single checklist row. Only provided fields
// are changed and updated_at is set automatically.
func (p *PgSQL) UpdateDeliverableByID(ctx context.Context,
	projectID domain.ProjectID,
	id domain.DeliverableID,
	updates storage.DeliverableUpdates) (*domain.Deliverable, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.EvidenceLink != nil {
		rec["evidence_link"] = *updates.EvidenceLink
	}
	if updates.Remarks != nil {
		rec["remarks"] = *updates.Remarks
	}

	var row PgDeliverable
	found, err := p.Builder.Update(deliverablesTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("project_id").Eq(uuid.UUID(projectID)),
	).Returning(&PgDeliverable{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update deliverable in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteDeliverablesByProject removes every checklist row of a project. The
// rows are dropped for real so a reseed starts from a clean slate.
func (p *PgSQL) DeleteDeliverablesByProject(ctx context.Context,
	projectID domain.ProjectID) error {
	if _, err := p.Builder.Delete(deliverablesTable).
		Where(goqu.I("project_id").Eq(uuid.UUID(projectID))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete deliverables in pg: %w", err)
	}

	return nil
}
