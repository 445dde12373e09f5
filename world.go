package ecs

import (
	"iter"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// WorldOption configures a World during construction.
type WorldOption func(*World)

// WithLogger attaches a structured logger. The default discards everything.
func WithLogger(logger zerolog.Logger) WorldOption {
	return func(w *World) {
		w.logger = logger
	}
}

// NewWorld constructs an empty world: no entities, no components, no
// systems, stopped scheduler.
func NewWorld(opts ...WorldOption) *World {
	w := &World{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.entities = NewEntityManager()
	w.registry = newTypeRegistry()
	w.store = newComponentStore(w.registry)
	w.scheduler = newScheduler(w.logger)
	w.resources = newResources()
	return w
}

// World is the central facade: it composes the entity manager, component
// storage, scheduler, and resource container, and all access flows through
// it. A world assumes a single logical thread of control; none of its
// operations may be interleaved or reentered.
type World struct {
	entities  *EntityManager
	registry  *typeRegistry
	store     *componentStore
	scheduler *scheduler
	resources *Resources
	logger    zerolog.Logger
}

// CreateEntity allocates a fresh alive entity with no components. Destroyed
// IDs are reused LIFO, so a recycled handle may equal a previously destroyed
// one; it always starts empty.
func (w *World) CreateEntity() EntityID {
	return w.entities.Create()
}

// DestroyEntity releases the entity and removes every component attached to
// it in the same step; no bucket references the dead ID afterwards. Fails
// with ErrEntityNotFound when the entity is not alive and with
// ErrStorageLocked when the entity carries a component of a type some view
// is still iterating. A failed destroy leaves all state untouched.
func (w *World) DestroyEntity(entity EntityID) error {
	if !w.entities.IsAlive(entity) {
		return eris.Wrapf(ErrEntityNotFound, "destroy entity %d", entity)
	}
	if w.store.anyLockedOn(entity) {
		return eris.Wrapf(ErrStorageLocked, "destroy entity %d", entity)
	}
	w.entities.Destroy(entity)
	w.store.purgeEntity(entity)
	return nil
}

// IsAlive reports whether the entity is currently alive.
func (w *World) IsAlive(entity EntityID) bool {
	return w.entities.IsAlive(entity)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.entities.Count()
}

// AddComponent attaches the component, passed as a pointer, to the entity.
// Fails with ErrEntityNotFound when the entity is not alive, with
// ErrComponentAlreadyExists when the entity already has a component of that
// type, and with ErrStorageLocked while a view over that type is being
// iterated. A failed add leaves storage exactly as before the call.
func (w *World) AddComponent(entity EntityID, component any) error {
	if !w.entities.IsAlive(entity) {
		return eris.Wrapf(ErrEntityNotFound, "add component to entity %d", entity)
	}
	id := w.registerComponentType(componentKey(component))
	if w.store.locked(id) {
		return eris.Wrapf(ErrStorageLocked, "add %s to entity %d", w.registry.typeOf(id), entity)
	}
	return w.store.add(entity, id, component)
}

// UpsertComponent attaches the component, overwriting any existing instance
// of the same type. Fails with ErrEntityNotFound when the entity is not
// alive and with ErrStorageLocked while a view over that type is being
// iterated.
func (w *World) UpsertComponent(entity EntityID, component any) error {
	if !w.entities.IsAlive(entity) {
		return eris.Wrapf(ErrEntityNotFound, "upsert component on entity %d", entity)
	}
	id := w.registerComponentType(componentKey(component))
	if w.store.locked(id) {
		return eris.Wrapf(ErrStorageLocked, "upsert %s on entity %d", w.registry.typeOf(id), entity)
	}
	w.store.upsert(entity, id, component)
	return nil
}

// RemoveComponent detaches the component of type t from the entity. Fails
// with ErrEntityNotFound when the entity is not alive, with
// ErrComponentNotFound when no such component is attached, and with
// ErrStorageLocked while a view over that type is being iterated.
func (w *World) RemoveComponent(entity EntityID, t ComponentType) error {
	if !w.entities.IsAlive(entity) {
		return eris.Wrapf(ErrEntityNotFound, "remove component from entity %d", entity)
	}
	id, ok := w.registry.lookup(t)
	if !ok {
		return eris.Wrapf(ErrComponentNotFound, "%s on entity %d", t, entity)
	}
	if w.store.locked(id) {
		return eris.Wrapf(ErrStorageLocked, "remove %s from entity %d", t, entity)
	}
	return w.store.remove(entity, id)
}

// GetComponent returns the live component instance of type t, or false when
// the entity does not carry one. Never fails: a dead entity simply has no
// components.
func (w *World) GetComponent(entity EntityID, t ComponentType) (any, bool) {
	id, ok := w.registry.lookup(t)
	if !ok {
		return nil, false
	}
	return w.store.get(entity, id)
}

// RequireComponent is GetComponent that fails with ErrComponentNotFound
// instead of returning an absence marker.
func (w *World) RequireComponent(entity EntityID, t ComponentType) (any, error) {
	value, ok := w.GetComponent(entity, t)
	if !ok {
		return nil, eris.Wrapf(ErrComponentNotFound, "%s on entity %d", t, entity)
	}
	return value, nil
}

// HasComponent reports whether the entity carries a component of type t.
func (w *World) HasComponent(entity EntityID, t ComponentType) bool {
	id, ok := w.registry.lookup(t)
	if !ok {
		return false
	}
	return w.store.has(entity, id)
}

// AddSystem registers the system with the scheduler. When the world has
// already started, the scheduler fires the system's start hook; it is the
// sole owner of that responsibility, so the hook runs exactly once.
func (w *World) AddSystem(sys System) {
	w.scheduler.Add(w, sys)
}

// RemoveSystem unregisters the system, reporting whether it was present.
// Its stop hook is not invoked.
func (w *World) RemoveSystem(sys System) bool {
	return w.scheduler.Remove(sys)
}

// Start transitions the world to running and fires system start hooks in
// priority order. Starting a running world is a no-op.
func (w *World) Start() {
	w.scheduler.Start(w)
}

// Stop transitions the world to stopped and fires system stop hooks in
// reverse order. Stopping a stopped world is a no-op.
func (w *World) Stop() {
	w.scheduler.Stop(w)
}

// Update runs one frame: every system's update in priority order with the
// frame's delta-time. A stopped world runs nothing.
func (w *World) Update(dt float64) {
	w.scheduler.Update(w, dt)
}

// IsRunning reports whether Start has been called without a matching Stop.
func (w *World) IsRunning() bool {
	return w.scheduler.Running()
}

// Clear stops the scheduler when running and empties component storage and
// the resource container. Entity liveness is deliberately untouched:
// entities stay alive with zero components. Calling Clear again is a no-op.
// Clear must not be called while a view is being iterated.
func (w *World) Clear() {
	w.scheduler.Stop(w)
	w.store.clear()
	w.resources.Clear()
	w.logger.Debug().Int("entities", w.entities.Count()).Msg("world cleared")
}

// Resources exposes the world-owned resource container.
func (w *World) Resources() *Resources {
	return w.resources
}

// Entities iterates a snapshot of the live entity IDs.
func (w *World) Entities() iter.Seq[EntityID] {
	return w.entities.All()
}

func (w *World) registerComponentType(t ComponentType) ComponentID {
	id, fresh := w.registry.register(t)
	if fresh {
		w.logger.Debug().
			Uint32("component_id", uint32(id)).
			Str("component_name", t.String()).
			Msg("component type registered")
	}
	return id
}
