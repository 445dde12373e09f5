package ecs

import (
	"fmt"
	"reflect"

	"github.com/TheBitDrifter/mask"
)

// ComponentType identifies a component's runtime type. Obtain one with C.
type ComponentType = reflect.Type

// C returns the component type token for T.
func C[T any]() ComponentType {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ComponentID is the dense index assigned to a component type at first use.
// Storage buckets and signature bits are keyed by it, not by reflection.
type ComponentID uint32

func newTypeRegistry() *typeRegistry {
	return &typeRegistry{ids: make(map[reflect.Type]ComponentID)}
}

// typeRegistry assigns each component type a ComponentID the first time the
// type is seen. IDs are dense and stable for the lifetime of the registry.
type typeRegistry struct {
	ids   map[reflect.Type]ComponentID
	types []reflect.Type
}

// register returns the ID for t, assigning the next dense ID on first use.
// The second result reports whether the type was newly registered. IDs
// double as signature bits, so the registry refuses to grow past the mask
// capacity rather than let a later Mark index out of range.
func (r *typeRegistry) register(t reflect.Type) (ComponentID, bool) {
	if id, ok := r.ids[t]; ok {
		return id, false
	}
	if len(r.types) >= mask.MaxBits {
		panic(fmt.Sprintf(
			"ecs: cannot register %s: component type limit of %d reached; build with the mask m256 or m512 tag to raise it",
			t, mask.MaxBits))
	}
	id := ComponentID(len(r.types))
	r.ids[t] = id
	r.types = append(r.types, t)
	return id, true
}

// lookup returns the ID for t without registering it.
func (r *typeRegistry) lookup(t reflect.Type) (ComponentID, bool) {
	id, ok := r.ids[t]
	return id, ok
}

// typeOf returns the type registered under id.
func (r *typeRegistry) typeOf(id ComponentID) reflect.Type {
	return r.types[id]
}

func (r *typeRegistry) len() int {
	return len(r.types)
}

// componentKey resolves the registry key for a component instance. Components
// are passed as pointers so callers can mutate them in place; the key is the
// pointed-to type, matching the tokens produced by C.
func componentKey(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t == nil {
		panic("ecs: nil component")
	}
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}
