package ecs

import "github.com/rotisserie/eris"

var (
	// ErrEntityNotFound indicates an operation referenced an entity that is not currently alive.
	ErrEntityNotFound = eris.New("entity not found")
	// ErrComponentNotFound indicates a required component is absent on the given entity.
	ErrComponentNotFound = eris.New("component not found on entity")
	// ErrComponentAlreadyExists indicates a strict add on an entity that already has the component.
	ErrComponentAlreadyExists = eris.New("component already exists on entity")
	// ErrStorageLocked indicates a structural mutation was attempted on storage
	// that a view is still iterating.
	ErrStorageLocked = eris.New("storage is locked by an in-progress view")
)
