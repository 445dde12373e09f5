package ecs

import "github.com/rs/zerolog"

// systemsArray renders the registered systems as a zerolog array of
// {name, priority} dicts, in execution order.
func systemsArray(systems []System) *zerolog.Array {
	arr := zerolog.Arr()
	for _, sys := range systems {
		arr = arr.Dict(zerolog.Dict().
			Str("name", systemName(sys)).
			Int("priority", sys.Priority()))
	}
	return arr
}

// LogWorld emits a one-shot summary of the world (registered component
// types and systems) at the given level. Useful at startup.
func LogWorld(logger *zerolog.Logger, w *World, level zerolog.Level) {
	event := logger.WithLevel(level)
	types := zerolog.Arr()
	for id := 0; id < w.registry.len(); id++ {
		types = types.Dict(zerolog.Dict().
			Uint32("component_id", uint32(id)).
			Str("component_name", w.registry.typeOf(ComponentID(id)).String()))
	}
	event.Int("total_components", w.registry.len()).
		Array("components", types).
		Int("total_systems", len(w.scheduler.systems)).
		Array("systems", systemsArray(w.scheduler.systems)).
		Int("entities", w.entities.Count()).
		Send()
}
