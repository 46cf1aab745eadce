package tracker

import (
	"context"
	"fmt"
	"tracker/internal/exchange"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"
	"tracker/pkg/storage"

	"github.com/google/uuid"
)

// Import merges a parsed bulk upload into the database. Projects and modules
// are matched by name and created when missing; plan dates, actuals, ECNs and
// project types from the upload overwrite existing values; fields absent from
// the upload are left untouched. Projects created from rows that name no type
// get the New type. Each project is merged in its own transaction and the
// rollup is refreshed afterwards.
func (t tracker) Import(ctx context.Context, batch []exchange.ProjectImport) (*exchange.Summary, error) {
	summary := &exchange.Summary{}

	for i := range batch {
		if err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
			return t.importProject(ctx, tx, &batch[i], summary)
		}); err != nil {
			return nil, fmt.Errorf("could not import project %q: %w", batch[i].Name, err)
		}
	}

	return summary, nil
}

func (t tracker) importProject(ctx context.Context,
	tx storage.AllStorage,
	imp *exchange.ProjectImport,
	summary *exchange.Summary) error {
	if imp.Name == "" {
		return serrors.With(serrors.ErrBadRequest, "project name must not be empty")
	}

	project, err := tx.ProjectByName(ctx, imp.Name)
	if err != nil {
		return fmt.Errorf("could not look up project: %w", err)
	}
	if project == nil {
		projectType := imp.Type
		if projectType == "" {
			projectType = domain.ProjectTypeNew
		}

		stored, err := tx.StoreProjects(ctx, domain.Project{
			Name: imp.Name,
			Type: projectType,
		})
		if err != nil {
			return fmt.Errorf("could not store project: %w", err)
		}
		project = &stored[0]
		summary.ProjectsCreated++

		if _, err := t.seedDeliverables(ctx, tx, project.ID, projectType); err != nil {
			return err
		}
	} else {
		if imp.Type != "" && imp.Type != project.Type {
			if _, err := tx.UpdateProjectByID(ctx, project.ID,
				storage.ProjectUpdates{Type: &imp.Type}); err != nil {
				return fmt.Errorf("could not update project type: %w", err)
			}
			project.Type = imp.Type
		}
		summary.ProjectsUpdated++
	}

	for key, plan := range imp.Plans {
		plan := plan
		if err := tx.UpsertGateway(ctx,
			storage.EntityProject, uuid.UUID(project.ID), key,
			storage.GatewayUpdates{Plan: &plan}); err != nil {
			return fmt.Errorf("could not set plan date: %w", err)
		}
		project.Gateways.SetPlan(key, plan)
	}

	for i := range imp.Modules {
		if err := t.importModule(ctx, tx, project, &imp.Modules[i], summary); err != nil {
			return err
		}
	}

	return t.persistRollup(ctx, tx, project)
}

func (t tracker) importModule(ctx context.Context,
	tx storage.AllStorage,
	project *domain.Project,
	imp *exchange.ModuleImport,
	summary *exchange.Summary) error {
	var (
		module *domain.Module
		parent *domain.Module
	)

	// rows naming an unknown parent fall back to a top-level module so they
	// are not silently dropped
	if imp.Parent != "" {
		parent = project.ModuleByName(imp.Parent)
	}

	if parent != nil {
		module = parent.SubModuleByName(imp.Name)
		if module == nil {
			stored, err := tx.StoreModules(ctx, project.ID, &parent.ID, domain.Module{Name: imp.Name})
			if err != nil {
				return fmt.Errorf("could not store sub-module: %w", err)
			}
			parent.SubModules = append(parent.SubModules, stored[0])
			module = &parent.SubModules[len(parent.SubModules)-1]
			summary.ModulesCreated++
		}
	} else {
		module = project.ModuleByName(imp.Name)
		if module == nil {
			stored, err := tx.StoreModules(ctx, project.ID, nil, domain.Module{Name: imp.Name})
			if err != nil {
				return fmt.Errorf("could not store module: %w", err)
			}
			project.Modules = append(project.Modules, stored[0])
			module = &project.Modules[len(project.Modules)-1]
			summary.ModulesCreated++
		}
	}

	for key, actual := range imp.Actuals {
		actual := actual
		if err := tx.UpsertGateway(ctx,
			storage.EntityModule, uuid.UUID(module.ID), key,
			storage.GatewayUpdates{Actual: &actual}); err != nil {
			return fmt.Errorf("could not record actual: %w", err)
		}
		module.Gateways.SetActual(key, actual)
	}
	for key, ecn := range imp.ECNs {
		ecn := ecn
		if err := tx.UpsertGateway(ctx,
			storage.EntityModule, uuid.UUID(module.ID), key,
			storage.GatewayUpdates{ECN: &ecn}); err != nil {
			return fmt.Errorf("could not set ECN: %w", err)
		}
		module.Gateways.SetECN(key, ecn)
	}

	return nil
}
