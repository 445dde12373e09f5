package ecs

import "reflect"

func newResources() *Resources {
	return &Resources{values: make(map[reflect.Type]any)}
}

// Resources is a type-keyed container for global singleton values that are
// not tied to any entity (clocks, input state, asset handles). It lives and
// dies with the World that owns it: created with the world, emptied by
// Clear. At most one value per type.
type Resources struct {
	values map[reflect.Type]any
}

// Put stores the value under its type, replacing any previous value of that
// type. Values are passed as pointers; the key is the pointed-to type,
// matching the tokens produced by C.
func (r *Resources) Put(value any) {
	r.values[componentKey(value)] = value
}

// Get returns the value stored under t, or nil when absent.
func (r *Resources) Get(t reflect.Type) any {
	return r.values[t]
}

// TryGet returns the value stored under t and whether one was present.
func (r *Resources) TryGet(t reflect.Type) (any, bool) {
	value, ok := r.values[t]
	return value, ok
}

// Remove deletes the value stored under t, reporting whether one existed.
func (r *Resources) Remove(t reflect.Type) bool {
	if _, ok := r.values[t]; !ok {
		return false
	}
	delete(r.values, t)
	return true
}

// Clear removes every stored value.
func (r *Resources) Clear() {
	clear(r.values)
}

// Len returns the number of stored values.
func (r *Resources) Len() int {
	return len(r.values)
}

// PutResource stores res in the world's resource container.
func PutResource[T any](w *World, res *T) {
	w.resources.Put(res)
}

// GetResource fetches the resource of type T, if present.
func GetResource[T any](w *World) (*T, bool) {
	value, ok := w.resources.TryGet(C[T]())
	if !ok {
		return nil, false
	}
	return value.(*T), true
}
