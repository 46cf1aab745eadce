// Package checklist loads the master deliverables list used to seed the
// per-gateway checklist of newly created projects.
package checklist

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"
)

// Item is one row of the master checklist: a deliverable template bound to a
// gateway stage, with flags deciding which project types receive it.
type Item struct {
	// Stage is the gateway the deliverable belongs to.
	Stage domain.GatewayKey
	// Name is the deliverable text seeded into new projects.
	Name string
	// Major marks the item as applicable to Major projects.
	Major bool
	// Minor marks the item as applicable to Minor projects.
	Minor bool
}

// expected header columns of the master checklist CSV.
const (
	colGateway     = "Gateway"
	colDeliverable = "Deliverable"
	colMajor       = "Major"
	colMinor       = "Minor"
)

// Load reads the master checklist CSV from the given path. A missing file is
// not an error; it yields an empty list so projects are simply seeded without
// deliverables.
func Load(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("could not open checklist: %w", err)
	}
	defer func() { _ = f.Close() }()

	items, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse checklist %q: %w", path, err)
	}

	return items, nil
}

// Parse reads checklist rows from CSV data. The first record must be a header
// containing the Gateway, Deliverable, Major and Minor columns in any order.
// Rows with an unknown gateway or an empty deliverable are skipped.
func Parse(r io.Reader) ([]Item, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}

		return nil, fmt.Errorf("could not read header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colGateway, colDeliverable, colMajor, colMinor} {
		if _, ok := cols[required]; !ok {
			return nil, serrors.With(serrors.ErrBadRequest, "checklist is missing column %q", required)
		}
	}

	var items []Item
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read record: %w", err)
		}

		field := func(name string) string {
			idx := cols[name]
			if idx >= len(record) {
				return ""
			}

			return strings.TrimSpace(record[idx])
		}

		stage := domain.GatewayKey(strings.ToUpper(field(colGateway)))
		name := field(colDeliverable)
		if !stage.Valid() || name == "" {
			continue
		}

		items = append(items, Item{
			Stage: stage,
			Name:  name,
			Major: applies(field(colMajor)),
			Minor: applies(field(colMinor)),
		})
	}

	return items, nil
}

// applies reports whether a flag cell marks the item as applicable.
func applies(s string) bool {
	return strings.EqualFold(s, "YES")
}

// ForType filters the master list down to the items applicable to the given
// project type. Only Major and Minor projects carry a checklist; every other
// type, Carryover and imported free-form types included, gets none.
func ForType(items []Item, t domain.ProjectType) []Item {
	var out []Item
	for _, item := range items {
		switch t {
		case domain.ProjectTypeMajor:
			if item.Major {
				out = append(out, item)
			}
		case domain.ProjectTypeMinor:
			if item.Minor {
				out = append(out, item)
			}
		}
	}

	return out
}
