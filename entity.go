package ecs

import "iter"

// EntityID identifies an entity. IDs are opaque handles: 0 is never issued,
// and a destroyed ID may be reissued by a later Create.
type EntityID uint64

// NewEntityManager constructs an empty manager. The first issued ID is 1.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		alive: make(map[EntityID]struct{}),
		next:  1,
	}
}

// EntityManager allocates entity identifiers and tracks their liveness.
// Destroyed IDs are recycled LIFO to keep the live ID range dense.
type EntityManager struct {
	alive map[EntityID]struct{}
	free  []EntityID
	next  EntityID
}

// Create issues an alive identifier, reusing the most recently freed one
// when available. Exhausting the ID space panics; it is not a recoverable
// condition.
func (m *EntityManager) Create() EntityID {
	var id EntityID
	if n := len(m.free); n > 0 {
		id = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		if m.next == 0 {
			panic("ecs: entity ID space exhausted")
		}
		id = m.next
		m.next++
	}
	m.alive[id] = struct{}{}
	return id
}

// Destroy releases the identifier, returning false when it is not alive.
// The freed ID becomes eligible for reuse by Create.
func (m *EntityManager) Destroy(id EntityID) bool {
	if _, ok := m.alive[id]; !ok {
		return false
	}
	delete(m.alive, id)
	m.free = append(m.free, id)
	return true
}

// IsAlive reports whether the identifier is currently allocated.
func (m *EntityManager) IsAlive(id EntityID) bool {
	_, ok := m.alive[id]
	return ok
}

// Count returns the number of live entities.
func (m *EntityManager) Count() int {
	return len(m.alive)
}

// All iterates a snapshot of the live identifiers, so the caller may
// create or destroy entities while ranging.
func (m *EntityManager) All() iter.Seq[EntityID] {
	snapshot := make([]EntityID, 0, len(m.alive))
	for id := range m.alive {
		snapshot = append(snapshot, id)
	}
	return func(yield func(EntityID) bool) {
		for _, id := range snapshot {
			if !yield(id) {
				return
			}
		}
	}
}
