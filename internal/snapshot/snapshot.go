// Package snapshot periodically dumps the full project portfolio to
// timestamped JSON files and prunes old dumps beyond a retention count.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"tracker/internal/config"
	"tracker/pkg/domain"
	"tracker/pkg/logger"

	"go.uber.org/zap"
)

// filePrefix and fileExt frame every snapshot file name; Take derives the
// timestamp part from the snapshot time.
const (
	filePrefix = "snapshot-"
	fileExt    = ".json"
	// timeLayout keeps names lexically sortable by snapshot time.
	timeLayout = "20060102T150405Z"
)

// Options configure where snapshots are written and how many are retained.
type Options struct {
	// Dir is the target directory, created on first use.
	Dir string
	// Keep is the number of snapshot files retained; older ones are pruned.
	Keep int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Dir:  cfg.Snapshot.Dir,
		Keep: cfg.Snapshot.Keep,
	}
}

// ProjectSource yields the portfolio to snapshot. The storage layer satisfies
// this.
type ProjectSource interface {
	AllProjects(ctx context.Context) ([]domain.Project, error)
}

// Writer takes portfolio snapshots and enforces retention.
type Writer struct {
	options Options
	source  ProjectSource
}

// NewWriter creates a snapshot Writer reading from the given source.
func NewWriter(source ProjectSource, options Options) *Writer {
	return &Writer{
		options: options,
		source:  source,
	}
}

// payload is the snapshot file schema.
type payload struct {
	TakenAt  time.Time        `json:"takenAt"`
	Projects []domain.Project `json:"projects"`
}

// Take writes one snapshot file and prunes old ones. It returns the path of
// the written file.
func (w *Writer) Take(ctx context.Context) (string, error) {
	projects, err := w.source.AllProjects(ctx)
	if err != nil {
		return "", fmt.Errorf("could not load projects: %w", err)
	}

	if err := os.MkdirAll(w.options.Dir, 0o750); err != nil {
		return "", fmt.Errorf("could not create snapshot dir: %w", err)
	}

	now := time.Now().UTC()
	path := filepath.Join(w.options.Dir, filePrefix+now.Format(timeLayout)+fileExt)

	data, err := json.MarshalIndent(payload{TakenAt: now, Projects: projects}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("could not write snapshot: %w", err)
	}

	logger.Info(ctx, "Snapshot written",
		zap.String("path", path),
		zap.Int("projects", len(projects)))

	if err := w.prune(ctx); err != nil {
		return "", err
	}

	return path, nil
}

// prune removes the oldest snapshot files beyond the retention count. A Keep
// of zero or less disables pruning.
func (w *Writer) prune(ctx context.Context) error {
	if w.options.Keep <= 0 {
		return nil
	}

	entries, err := os.ReadDir(w.options.Dir)
	if err != nil {
		return fmt.Errorf("could not list snapshot dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.Type().IsRegular() &&
			strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, fileExt) {
			names = append(names, name)
		}
	}
	if len(names) <= w.options.Keep {
		return nil
	}

	// names embed the snapshot time, so lexical order is age order
	sort.Strings(names)
	for _, name := range names[:len(names)-w.options.Keep] {
		if err := os.Remove(filepath.Join(w.options.Dir, name)); err != nil {
			return fmt.Errorf("could not prune snapshot: %w", err)
		}
		logger.Debug(ctx, "Snapshot pruned", zap.String("name", name))
	}

	return nil
}
