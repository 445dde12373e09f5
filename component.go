package ecs

import "github.com/rotisserie/eris"

// Add attaches c to the entity, failing with ErrComponentAlreadyExists when
// the entity already has a T, or ErrEntityNotFound when it is not alive.
func Add[T any](w *World, entity EntityID, c *T) error {
	return w.AddComponent(entity, c)
}

// Upsert attaches c to the entity, overwriting any existing T.
func Upsert[T any](w *World, entity EntityID, c *T) error {
	return w.UpsertComponent(entity, c)
}

// Remove detaches the entity's T, failing with ErrComponentNotFound when it
// has none.
func Remove[T any](w *World, entity EntityID) error {
	return w.RemoveComponent(entity, C[T]())
}

// Get returns the entity's T for in-place mutation, or false when absent.
func Get[T any](w *World, entity EntityID) (*T, bool) {
	value, ok := w.GetComponent(entity, C[T]())
	if !ok {
		return nil, false
	}
	return value.(*T), true
}

// Require is Get that fails with ErrComponentNotFound instead of returning
// an absence marker.
func Require[T any](w *World, entity EntityID) (*T, error) {
	value, ok := Get[T](w, entity)
	if !ok {
		return nil, eris.Wrapf(ErrComponentNotFound, "%s on entity %d", C[T](), entity)
	}
	return value, nil
}

// Has reports whether the entity carries a T.
func Has[T any](w *World, entity EntityID) bool {
	return w.HasComponent(entity, C[T]())
}
