package events

import "github.com/ElectrifyPro/dnd-initiative-tracker/internal/logging"

type RegistryTracer struct{}

var Registry = RegistryTracer{}

func (RegistryTracer) Add(id, name string) {
	logging.Trace("registry.add", map[string]interface{}{"id": id, "name": name})
}

func (RegistryTracer) Remove(id, name string) {
	logging.Trace("registry.remove", map[string]interface{}{"id": id, "name": name})
}

func (RegistryTracer) Sort(count int) {
	logging.Trace("registry.sort", map[string]interface{}{"count": count})
}
