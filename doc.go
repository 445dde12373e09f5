/*
Package ecs is a minimal runtime for entity-component-system simulations:
opaque entity handles, typed components stored per type for data-oriented
iteration, conjunctive multi-type queries, and a prioritized per-frame
system scheduler. It targets single-threaded simulation loops where the
dominant workload is iterating homogeneous component sets.

Core concepts:

  - Entity: an opaque integer handle; destroyed IDs are recycled LIFO.
  - Component: a typed value attached to at most one entity per type.
  - System: behavior run once per frame, higher priority first.
  - View: lazy iteration over entities carrying every requested type.
  - Resource: a global type-keyed singleton owned by the world.

Basic usage:

	type Position struct{ X, Y float64 }
	type Velocity struct{ DX, DY float64 }

	world := ecs.NewWorld()
	e := world.CreateEntity()
	_ = ecs.Add(world, e, &Position{})
	_ = ecs.Add(world, e, &Velocity{DX: 1, DY: 0.5})

	world.AddSystem(&ecs.SystemFunc{P: 10, Fn: func(w *ecs.World, dt float64) {
		ecs.Each2(w, func(_ ecs.EntityID, pos *Position, vel *Velocity) bool {
			pos.X += vel.DX * dt
			pos.Y += vel.DY * dt
			return true
		})
	}})

	world.Start()
	world.Update(1.0 / 60)
	world.Stop()

Entity signatures are bitmasks, so a world supports at most mask.MaxBits
distinct component types (64 in the default build of the mask package; its
m256 and m512 build tags raise the cap). Registering a type past the cap
panics with a message naming the limit.

The engine assumes exactly one logical thread of control. While a View is
being iterated its component types are locked: adding, removing, or
upserting components of a locked type, or destroying an entity that
carries one, fails with ErrStorageLocked until the iteration ends. Mutating
fields through the yielded pointers is always allowed.
*/
package ecs
