package ecs

import (
	"github.com/TheBitDrifter/mask"
	"github.com/rotisserie/eris"
)

func newComponentStore(registry *typeRegistry) *componentStore {
	return &componentStore{
		registry:   registry,
		buckets:    make(map[ComponentID]map[EntityID]any),
		signatures: make(map[EntityID]mask.Mask),
		lockCounts: make(map[ComponentID]int),
	}
}

// componentStore holds component instances grouped by type first
// (type bucket -> entity -> instance), so per-type iteration and bulk
// operations are O(1) to locate. A per-entity signature mask mirrors the
// buckets: bit i is set iff the entity has the component with ID i.
//
// The store performs no liveness checks; the World validates entity IDs
// before calling in.
type componentStore struct {
	registry   *typeRegistry
	buckets    map[ComponentID]map[EntityID]any
	signatures map[EntityID]mask.Mask

	// Iteration locks. A view holds a lock on each queried type for the
	// duration of its iteration; structural mutation of a locked bucket is
	// rejected instead of silently corrupting the iteration.
	lockCounts map[ComponentID]int
	lockedMask mask.Mask
}

// add inserts the instance, failing with ErrComponentAlreadyExists when the
// entity already has a component of that type.
func (s *componentStore) add(entity EntityID, id ComponentID, value any) error {
	bucket := s.bucketFor(id)
	if _, exists := bucket[entity]; exists {
		return eris.Wrapf(ErrComponentAlreadyExists, "%s on entity %d", s.registry.typeOf(id), entity)
	}
	bucket[entity] = value
	s.mark(entity, id)
	return nil
}

// upsert inserts or overwrites unconditionally.
func (s *componentStore) upsert(entity EntityID, id ComponentID, value any) {
	s.bucketFor(id)[entity] = value
	s.mark(entity, id)
}

// remove deletes the entry, failing with ErrComponentNotFound when absent.
func (s *componentStore) remove(entity EntityID, id ComponentID) error {
	bucket := s.buckets[id]
	if _, ok := bucket[entity]; !ok {
		return eris.Wrapf(ErrComponentNotFound, "%s on entity %d", s.registry.typeOf(id), entity)
	}
	delete(bucket, entity)
	sig := s.signatures[entity]
	sig.Unmark(uint32(id))
	s.signatures[entity] = sig
	return nil
}

func (s *componentStore) get(entity EntityID, id ComponentID) (any, bool) {
	value, ok := s.buckets[id][entity]
	return value, ok
}

func (s *componentStore) has(entity EntityID, id ComponentID) bool {
	_, ok := s.buckets[id][entity]
	return ok
}

// purgeEntity removes every component attached to the entity, leaving no
// residue in any bucket or in the signature index.
func (s *componentStore) purgeEntity(entity EntityID) {
	for _, bucket := range s.buckets {
		delete(bucket, entity)
	}
	delete(s.signatures, entity)
}

// clear empties every bucket and the signature index. Registered type IDs
// remain valid.
func (s *componentStore) clear() {
	s.buckets = make(map[ComponentID]map[EntityID]any)
	s.signatures = make(map[EntityID]mask.Mask)
}

// bucket returns the entity map for id, which may be nil when no component
// of that type was ever stored.
func (s *componentStore) bucket(id ComponentID) map[EntityID]any {
	return s.buckets[id]
}

func (s *componentStore) bucketFor(id ComponentID) map[EntityID]any {
	bucket, ok := s.buckets[id]
	if !ok {
		bucket = make(map[EntityID]any)
		s.buckets[id] = bucket
	}
	return bucket
}

func (s *componentStore) mark(entity EntityID, id ComponentID) {
	sig := s.signatures[entity]
	sig.Mark(uint32(id))
	s.signatures[entity] = sig
}

func (s *componentStore) signature(entity EntityID) mask.Mask {
	return s.signatures[entity]
}

// lock takes an iteration lock on each id. Locks nest: two views over the
// same type may run concurrently since neither mutates.
func (s *componentStore) lock(ids []ComponentID) {
	for _, id := range ids {
		s.lockCounts[id]++
		s.lockedMask.Mark(uint32(id))
	}
}

// unlock releases the locks taken by lock.
func (s *componentStore) unlock(ids []ComponentID) {
	for _, id := range ids {
		s.lockCounts[id]--
		if s.lockCounts[id] <= 0 {
			delete(s.lockCounts, id)
			s.lockedMask.Unmark(uint32(id))
		}
	}
}

// locked reports whether a view is currently iterating the bucket for id.
func (s *componentStore) locked(id ComponentID) bool {
	return s.lockCounts[id] > 0
}

// anyLockedOn reports whether the entity carries a component of any locked
// type, in which case destroying it would mutate an iterated bucket.
func (s *componentStore) anyLockedOn(entity EntityID) bool {
	if len(s.lockCounts) == 0 {
		return false
	}
	sig := s.signatures[entity]
	return sig.ContainsAny(s.lockedMask)
}
