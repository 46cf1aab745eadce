// Package exchange converts between the tracker's project trees and the flat
// spreadsheet schema used for bulk import and export. One row describes either
// a bare project (empty module name) or one module or sub-module; project
// plan dates are repeated on every row of the project.
package exchange

import (
	"fmt"
	"strings"
	"time"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"
)

// Flat schema columns. Plan dates are project-level (P_<gateway>), actuals
// and change notices are module-level (<gateway>_Act, <gateway>_ECN).
const (
	colProjectName  = "Project Name"
	colProjectType  = "Type"
	colModuleName   = "Module Name"
	colParentModule = "Parent Module"
)

func planColumn(key domain.GatewayKey) string   { return "P_" + string(key) }
func actualColumn(key domain.GatewayKey) string { return string(key) + "_Act" }
func ecnColumn(key domain.GatewayKey) string    { return string(key) + "_ECN" }

// Header returns the flat schema header row.
func Header() []string {
	header := []string{colProjectName, colProjectType, colModuleName, colParentModule}
	for _, key := range domain.GatewayKeys() {
		header = append(header, planColumn(key))
	}
	for _, key := range domain.GatewayKeys() {
		header = append(header, actualColumn(key), ecnColumn(key))
	}

	return header
}

// ModuleImport is one module parsed from a flat row.
type ModuleImport struct {
	// Name is the module name.
	Name string
	// Parent is the name of the owning top-level module, empty for top-level
	// modules.
	Parent string
	// Actuals holds the released dates parsed from the row.
	Actuals map[domain.GatewayKey]time.Time
	// ECNs holds the change notice references parsed from the row.
	ECNs map[domain.GatewayKey]string
}

// ProjectImport is one project assembled from all of its flat rows.
type ProjectImport struct {
	// Name is the project name rows were grouped by.
	Name string
	// Type is the project type from the first row naming it, empty when no
	// row does.
	Type domain.ProjectType
	// Plans holds the project plan dates.
	Plans map[domain.GatewayKey]time.Time
	// Modules lists the modules in row order.
	Modules []ModuleImport
}

// row is the column-indexed view of one record.
type row struct {
	cols   map[string]int
	record []string
}

func (r row) field(name string) string {
	idx, ok := r.cols[name]
	if !ok || idx >= len(r.record) {
		return ""
	}

	return trim(r.record[idx])
}

func (r row) date(name string, line int) (time.Time, error) {
	value := r.field(name)
	if value == "" {
		return time.Time{}, nil
	}

	d, err := domain.ParseDate(value)
	if err != nil {
		return time.Time{}, serrors.Wrap(serrors.ErrBadRequest, err,
			"row %d: invalid date in column %q", line, name)
	}

	return d, nil
}

// assemble groups parsed rows into per-project imports, preserving first-seen
// project order.
func assemble(rows []row, startLine int) ([]ProjectImport, error) {
	var (
		order   []string
		grouped = map[string]*ProjectImport{}
	)

	for i, r := range rows {
		line := startLine + i

		name := r.field(colProjectName)
		if name == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "row %d: missing project name", line)
		}

		project, ok := grouped[name]
		if !ok {
			project = &ProjectImport{
				Name:  name,
				Type:  domain.ProjectType(r.field(colProjectType)),
				Plans: map[domain.GatewayKey]time.Time{},
			}
			grouped[name] = project
			order = append(order, name)
		}

		for _, key := range domain.GatewayKeys() {
			plan, err := r.date(planColumn(key), line)
			if err != nil {
				return nil, err
			}
			if !plan.IsZero() {
				project.Plans[key] = plan
			}
		}

		moduleName := r.field(colModuleName)
		if moduleName == "" {
			continue
		}

		module := ModuleImport{
			Name:    moduleName,
			Parent:  r.field(colParentModule),
			Actuals: map[domain.GatewayKey]time.Time{},
			ECNs:    map[domain.GatewayKey]string{},
		}
		for _, key := range domain.GatewayKeys() {
			actual, err := r.date(actualColumn(key), line)
			if err != nil {
				return nil, err
			}
			if !actual.IsZero() {
				module.Actuals[key] = actual
			}
			if ecn := r.field(ecnColumn(key)); ecn != "" {
				module.ECNs[key] = ecn
			}
		}
		project.Modules = append(project.Modules, module)
	}

	out := make([]ProjectImport, 0, len(order))
	for _, name := range order {
		out = append(out, *grouped[name])
	}

	return out, nil
}

// Flatten renders hydrated projects into flat records (without the header).
// Projects without modules produce a single plans-only row; modules with
// sub-modules produce their own row (derived actuals and their ECNs) followed
// by one row per sub-module.
func Flatten(projects []domain.Project) [][]string {
	var records [][]string
	for i := range projects {
		records = append(records, flattenProject(&projects[i])...)
	}

	return records
}

func flattenProject(p *domain.Project) [][]string {
	var records [][]string

	appendRow := func(mod *domain.Module, parent string) {
		record := []string{p.Name, string(p.Type), "", parent}
		if mod != nil {
			record[2] = mod.Name
		}
		for _, key := range domain.GatewayKeys() {
			record = append(record, domain.FormatDate(p.Gateways.Slot(key).Plan))
		}
		for _, key := range domain.GatewayKeys() {
			var actual, ecn string
			if mod != nil {
				slot := mod.Gateways.Slot(key)
				actual = domain.FormatDate(slot.Actual)
				ecn = slot.ECN
			}
			record = append(record, actual, ecn)
		}
		records = append(records, record)
	}

	if len(p.Modules) == 0 {
		appendRow(nil, "")

		return records
	}

	for i := range p.Modules {
		mod := &p.Modules[i]
		appendRow(mod, "")
		for j := range mod.SubModules {
			appendRow(&mod.SubModules[j], mod.Name)
		}
	}

	return records
}

// headerIndex validates the header and maps column names to indices.
func headerIndex(header []string) (map[string]int, error) {
	cols := map[string]int{}
	for i, name := range header {
		cols[trim(name)] = i
	}
	for _, required := range []string{colProjectName, colModuleName} {
		if _, ok := cols[required]; !ok {
			return nil, serrors.With(serrors.ErrBadRequest, "missing column %q", required)
		}
	}

	return cols, nil
}

func trim(s string) string { return strings.TrimSpace(s) }

// Summary reports what an import did.
type Summary struct {
	// ProjectsCreated counts projects that did not exist before.
	ProjectsCreated int `json:"projectsCreated"`
	// ProjectsUpdated counts projects merged into.
	ProjectsUpdated int `json:"projectsUpdated"`
	// ModulesCreated counts modules and sub-modules created.
	ModulesCreated int `json:"modulesCreated"`
}

func (s Summary) String() string {
	return fmt.Sprintf("%d projects created, %d updated, %d modules created",
		s.ProjectsCreated, s.ProjectsUpdated, s.ModulesCreated)
}
