package ecs

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

// View iterates entities that have every listed component type, yielding the
// instances in the order the types were requested. Instances are live
// references: mutate them in place and later reads observe the change.
//
// The sequence is lazy, finite, and single-pass. While it is being iterated
// the queried types are locked: adding or removing components of those
// types, or destroying an entity that carries one, fails with
// ErrStorageLocked until the iteration finishes. Requesting zero types
// panics.
func (w *World) View(types ...ComponentType) iter.Seq2[EntityID, []any] {
	ids, ok := w.queryIDs(types)
	return func(yield func(EntityID, []any) bool) {
		if !ok {
			return
		}
		var queryMask mask.Mask
		for _, id := range ids {
			queryMask.Mark(uint32(id))
		}
		w.store.lock(ids)
		defer w.store.unlock(ids)
		for entity := range w.anchorBucket(ids) {
			sig := w.store.signature(entity)
			if !sig.ContainsAll(queryMask) {
				continue
			}
			components := make([]any, len(ids))
			for i, id := range ids {
				components[i], _ = w.store.get(entity, id)
			}
			if !yield(entity, components) {
				return
			}
		}
	}
}

// EntitiesWith is View without the component dereference: it yields only the
// identifiers of entities carrying every listed type. Same laziness and
// locking behavior as View; zero types panics.
func (w *World) EntitiesWith(types ...ComponentType) iter.Seq[EntityID] {
	ids, ok := w.queryIDs(types)
	return func(yield func(EntityID) bool) {
		if !ok {
			return
		}
		var queryMask mask.Mask
		for _, id := range ids {
			queryMask.Mark(uint32(id))
		}
		w.store.lock(ids)
		defer w.store.unlock(ids)
		for entity := range w.anchorBucket(ids) {
			sig := w.store.signature(entity)
			if !sig.ContainsAll(queryMask) {
				continue
			}
			if !yield(entity) {
				return
			}
		}
	}
}

// queryIDs resolves the requested types to dense IDs. The boolean is false
// when any type was never registered, in which case the intersection is
// necessarily empty.
func (w *World) queryIDs(types []ComponentType) ([]ComponentID, bool) {
	if len(types) == 0 {
		panic("ecs: query requires at least one component type")
	}
	ids := make([]ComponentID, len(types))
	for i, t := range types {
		id, ok := w.registry.lookup(t)
		if !ok {
			return nil, false
		}
		ids[i] = id
	}
	return ids, true
}

// anchorBucket picks the smallest bucket among the requested types, so the
// scan is bounded by the rarest component. Ties go to the first requested
// type, keeping anchor selection deterministic.
func (w *World) anchorBucket(ids []ComponentID) map[EntityID]any {
	anchor := w.store.bucket(ids[0])
	for _, id := range ids[1:] {
		if bucket := w.store.bucket(id); len(bucket) < len(anchor) {
			anchor = bucket
		}
	}
	return anchor
}

// Each1 calls fn for every entity holding an A. Return false to stop early.
func Each1[A any](w *World, fn func(EntityID, *A) bool) {
	for entity, components := range w.View(C[A]()) {
		if !fn(entity, components[0].(*A)) {
			return
		}
	}
}

// Each2 calls fn for every entity holding both an A and a B.
func Each2[A, B any](w *World, fn func(EntityID, *A, *B) bool) {
	for entity, components := range w.View(C[A](), C[B]()) {
		if !fn(entity, components[0].(*A), components[1].(*B)) {
			return
		}
	}
}

// Each3 calls fn for every entity holding an A, a B, and a C.
func Each3[A, B, D any](w *World, fn func(EntityID, *A, *B, *D) bool) {
	for entity, components := range w.View(C[A](), C[B](), C[D]()) {
		if !fn(entity, components[0].(*A), components[1].(*B), components[2].(*D)) {
			return
		}
	}
}
