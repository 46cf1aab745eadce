package postgres_test

import (
	"context"
	"testing"
	"tracker/pkg/domain"
	"tracker/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreDeliverables_AndFetch(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	stored, err := pg.StoreProjects(ctx, domain.Project{Name: "Steering", Type: domain.ProjectTypeMajor})
	require.NoError(t, err)
	projectID := stored[0].ID

	rows, err := pg.StoreDeliverables(ctx,
		domain.Deliverable{ProjectID: projectID, Stage: domain.GatewayD0, Name: "Concept review"},
		domain.Deliverable{ProjectID: projectID, Stage: domain.GatewayD1, Name: "DFMEA"},
	)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// default status comes from the database
	require.Equal(t, domain.DeliverableStatusPending, rows[0].Status)

	got, err := pg.DeliverablesByProject(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, domain.GatewayD0, got[0].Stage)
	require.Equal(t, domain.GatewayD1, got[1].Stage)
}

func TestPgSQL_UpdateDeliverableByID(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	stored, err := pg.StoreProjects(ctx, domain.Project{Name: "Suspension", Type: domain.ProjectTypeMajor})
	require.NoError(t, err)
	projectID := stored[0].ID

	rows, err := pg.StoreDeliverables(ctx,
		domain.Deliverable{ProjectID: projectID, Stage: domain.GatewayD2, Name: "Durability run"},
	)
	require.NoError(t, err)

	status := domain.DeliverableStatusCompleted
	link := "https://docs.example.com/durability"
	updated, err := pg.UpdateDeliverableByID(ctx, projectID, rows[0].ID, storage.DeliverableUpdates{
		Status:       &status,
		EvidenceLink: &link,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, domain.DeliverableStatusCompleted, updated.Status)
	require.Equal(t, link, updated.EvidenceLink)
	require.Equal(t, "Durability run", updated.Name)
	require.False(t, updated.UpdatedAt.IsZero())

	// wrong project scoping yields nil
	other, err := pg.UpdateDeliverableByID(ctx, domain.ProjectID(uuid.New()), rows[0].ID, storage.DeliverableUpdates{
		Status: &status,
	})
	require.NoError(t, err)
	require.Nil(t, other)
}
