package snapshot_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
	"tracker/internal/snapshot"
	"tracker/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"tracker/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)

	os.Exit(m.Run())
}

type staticSource struct {
	projects []domain.Project
}

func (s staticSource) AllProjects(_ context.Context) ([]domain.Project, error) {
	return s.projects, nil
}

func source() staticSource {
	return staticSource{projects: []domain.Project{{
		ID:       domain.ProjectID(uuid.New()),
		Name:     "Gearbox NG",
		Type:     domain.ProjectTypeMajor,
		Gateways: domain.GatewayBoard{},
	}}}
}

func TestWriter_Take(t *testing.T) {
	dir := t.TempDir()
	writer := snapshot.NewWriter(source(), snapshot.Options{Dir: dir, Keep: 30})

	path, err := writer.Take(context.Background())
	require.NoError(t, err)
	require.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var payload struct {
		TakenAt  time.Time        `json:"takenAt"`
		Projects []domain.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	require.False(t, payload.TakenAt.IsZero())
	require.Len(t, payload.Projects, 1)
	require.Equal(t, "Gearbox NG", payload.Projects[0].Name)
}

func TestWriter_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "snapshots")
	writer := snapshot.NewWriter(source(), snapshot.Options{Dir: dir, Keep: 1})

	_, err := writer.Take(context.Background())
	require.NoError(t, err)
	require.DirExists(t, dir)
}

func TestWriter_PrunesOldSnapshots(t *testing.T) {
	dir := t.TempDir()
	// pre-seed old files with timestamped names older than anything Take writes
	for _, name := range []string{
		"snapshot-20200101T000000Z.json",
		"snapshot-20200102T000000Z.json",
		"snapshot-20200103T000000Z.json",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o600))
	}
	// unrelated files survive pruning
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0o600))

	writer := snapshot.NewWriter(source(), snapshot.Options{Dir: dir, Keep: 2})
	path, err := writer.Take(context.Background())
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var kept []string
	for _, entry := range entries {
		kept = append(kept, entry.Name())
	}
	require.Len(t, kept, 3)
	require.Contains(t, kept, filepath.Base(path))
	require.Contains(t, kept, "snapshot-20200103T000000Z.json")
	require.Contains(t, kept, "notes.txt")
}

func TestWriter_KeepZeroDisablesPruning(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "snapshot-20200101T000000Z.json"), []byte("{}"), 0o600))

	writer := snapshot.NewWriter(source(), snapshot.Options{Dir: dir, Keep: 0})
	_, err := writer.Take(context.Background())
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestArgs_Kind(t *testing.T) {
	require.Equal(t, "TakeSnapshotJob", snapshot.Args{}.Kind())
}
