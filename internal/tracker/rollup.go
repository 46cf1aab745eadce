package tracker

import (
	"time"
	"tracker/pkg/domain"
	"tracker/pkg/storage"

	"github.com/google/uuid"
)

// gatewayWrite is one derived actual that must be persisted after a rollup
// pass.
type gatewayWrite struct {
	entity   storage.EntityType
	entityID uuid.UUID
	key      domain.GatewayKey
	actual   time.Time
}

// rollupActual returns the derived actual date for a set of children: the
// latest actual among the children that have one. It stays zero until at
// least one child has released the gateway.
func rollupActual(children []domain.Module, key domain.GatewayKey) time.Time {
	var latest time.Time
	for i := range children {
		actual := children[i].Gateways.Slot(key).Actual
		if actual.IsZero() {
			continue
		}
		if actual.After(latest) {
			latest = actual
		}
	}

	return latest
}

// recomputeRollup refreshes derived gateway actuals in the project tree in
// place and returns the writes needed to persist the changed slots. Modules
// with sub-modules derive from their children; the project derives from its
// top-level modules.
func recomputeRollup(p *domain.Project) []gatewayWrite {
	var writes []gatewayWrite

	for _, key := range domain.GatewayKeys() {
		for i := range p.Modules {
			mod := &p.Modules[i]
			if !mod.HasSubModules() {
				continue
			}

			derived := rollupActual(mod.SubModules, key)
			if !derived.Equal(mod.Gateways.Slot(key).Actual) {
				mod.Gateways.SetActual(key, derived)
				writes = append(writes, gatewayWrite{
					entity:   storage.EntityModule,
					entityID: uuid.UUID(mod.ID),
					key:      key,
					actual:   derived,
				})
			}
		}

		derived := rollupActual(p.Modules, key)
		if !derived.Equal(p.Gateways.Slot(key).Actual) {
			p.Gateways.SetActual(key, derived)
			writes = append(writes, gatewayWrite{
				entity:   storage.EntityProject,
				entityID: uuid.UUID(p.ID),
				key:      key,
				actual:   derived,
			})
		}
	}

	return writes
}
