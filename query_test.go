package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodhype/ecs"
)

type position struct {
	X, Y float64
}

type velocity struct {
	DX, DY float64
}

// Three entities: one with position only, one with both, one with velocity
// only. The intersection is exactly the middle one.
func setupIntersection(t *testing.T) (*ecs.World, ecs.EntityID) {
	t.Helper()
	world := ecs.NewWorld()

	posOnly := world.CreateEntity()
	require.NoError(t, ecs.Add(world, posOnly, &position{X: 1}))

	both := world.CreateEntity()
	require.NoError(t, ecs.Add(world, both, &position{X: 2}))
	require.NoError(t, ecs.Add(world, both, &velocity{DX: 1}))

	velOnly := world.CreateEntity()
	require.NoError(t, ecs.Add(world, velOnly, &velocity{DX: 3}))

	return world, both
}

func TestViewIntersection(t *testing.T) {
	world, both := setupIntersection(t)

	var matches []ecs.EntityID
	for entity, components := range world.View(ecs.C[position](), ecs.C[velocity]()) {
		matches = append(matches, entity)
		require.Len(t, components, 2)
		// Components arrive in the order the types were requested.
		pos, ok := components[0].(*position)
		require.True(t, ok)
		vel, ok := components[1].(*velocity)
		require.True(t, ok)
		assert.Equal(t, 2.0, pos.X)
		assert.Equal(t, 1.0, vel.DX)
	}
	assert.Equal(t, []ecs.EntityID{both}, matches)
}

func TestEntitiesWithIntersection(t *testing.T) {
	world, both := setupIntersection(t)

	var matches []ecs.EntityID
	for entity := range world.EntitiesWith(ecs.C[position](), ecs.C[velocity]()) {
		matches = append(matches, entity)
	}
	assert.Equal(t, []ecs.EntityID{both}, matches)
}

func TestViewSingleType(t *testing.T) {
	world, _ := setupIntersection(t)

	count := 0
	for _, components := range world.View(ecs.C[position]()) {
		require.Len(t, components, 1)
		count++
	}
	assert.Equal(t, 2, count)
}

func TestViewMutationIsVisible(t *testing.T) {
	world, both := setupIntersection(t)

	for _, components := range world.View(ecs.C[position](), ecs.C[velocity]()) {
		components[0].(*position).X = 99
	}

	pos, ok := ecs.Get[position](world, both)
	require.True(t, ok)
	assert.Equal(t, 99.0, pos.X, "view hands out live references")
}

func TestViewUnregisteredTypeIsEmpty(t *testing.T) {
	world, _ := setupIntersection(t)

	type never struct{ N int }
	count := 0
	for range world.View(ecs.C[position](), ecs.C[never]()) {
		count++
	}
	assert.Equal(t, 0, count)
}

func TestViewZeroTypesPanics(t *testing.T) {
	world := ecs.NewWorld()
	assert.Panics(t, func() { world.View() })
	assert.Panics(t, func() { world.EntitiesWith() })
}

func TestViewEarlyBreak(t *testing.T) {
	world := ecs.NewWorld()
	for i := 0; i < 10; i++ {
		e := world.CreateEntity()
		require.NoError(t, ecs.Add(world, e, &position{}))
	}

	count := 0
	for range world.View(ecs.C[position]()) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestEach2(t *testing.T) {
	world, both := setupIntersection(t)

	ecs.Each2(world, func(entity ecs.EntityID, pos *position, vel *velocity) bool {
		assert.Equal(t, both, entity)
		pos.X += vel.DX
		return true
	})

	pos, _ := ecs.Get[position](world, both)
	assert.Equal(t, 3.0, pos.X)
}

func TestEach3(t *testing.T) {
	world := ecs.NewWorld()
	e := world.CreateEntity()
	require.NoError(t, ecs.Add(world, e, &position{}))
	require.NoError(t, ecs.Add(world, e, &velocity{}))
	require.NoError(t, ecs.Add(world, e, &health{HP: 1}))

	seen := 0
	ecs.Each3(world, func(_ ecs.EntityID, _ *position, _ *velocity, h *health) bool {
		seen++
		assert.Equal(t, 1, h.HP)
		return true
	})
	assert.Equal(t, 1, seen)
}

func TestViewLocksQueriedTypes(t *testing.T) {
	world, both := setupIntersection(t)

	for entity := range world.EntitiesWith(ecs.C[position](), ecs.C[velocity]()) {
		// Structural mutation of the queried types is rejected while the
		// view is live.
		assert.ErrorIs(t, ecs.Remove[velocity](world, entity), ecs.ErrStorageLocked)
		assert.ErrorIs(t, ecs.Add(world, entity, &position{}), ecs.ErrStorageLocked)
		assert.ErrorIs(t, ecs.Upsert(world, entity, &position{}), ecs.ErrStorageLocked)
		assert.ErrorIs(t, world.DestroyEntity(entity), ecs.ErrStorageLocked)

		// Types outside the query stay mutable.
		assert.NoError(t, ecs.Add(world, entity, &health{HP: 1}))
	}

	// Locks are released once the iteration finishes.
	require.NoError(t, ecs.Remove[velocity](world, both))
	require.NoError(t, world.DestroyEntity(both))
}

func TestViewUnlocksOnEarlyBreak(t *testing.T) {
	world := ecs.NewWorld()
	for i := 0; i < 5; i++ {
		e := world.CreateEntity()
		require.NoError(t, ecs.Add(world, e, &position{}))
	}

	var first ecs.EntityID
	for entity := range world.EntitiesWith(ecs.C[position]()) {
		first = entity
		break
	}
	require.NoError(t, ecs.Remove[position](world, first), "break releases the lock")
}

func TestNestedViewsOverSameType(t *testing.T) {
	world, both := setupIntersection(t)

	pairs := 0
	for range world.EntitiesWith(ecs.C[position]()) {
		for range world.EntitiesWith(ecs.C[position]()) {
			pairs++
		}
	}
	assert.Equal(t, 4, pairs, "read-only views nest freely")

	// Both locks released afterwards.
	require.NoError(t, ecs.Remove[position](world, both))
}

func TestDestroyUnlockedEntityDuringView(t *testing.T) {
	world, both := setupIntersection(t)
	bystander := world.CreateEntity()
	require.NoError(t, ecs.Add(world, bystander, &health{HP: 1}))

	for range world.EntitiesWith(ecs.C[position](), ecs.C[velocity]()) {
		// The bystander holds none of the locked types, so destroying it
		// cannot disturb the iteration.
		require.NoError(t, world.DestroyEntity(bystander))
	}
	assert.False(t, world.IsAlive(bystander))
	assert.True(t, world.IsAlive(both))
}

func TestViewAfterComponentRemoval(t *testing.T) {
	world, both := setupIntersection(t)
	require.NoError(t, ecs.Remove[velocity](world, both))

	count := 0
	for range world.View(ecs.C[position](), ecs.C[velocity]()) {
		count++
	}
	assert.Equal(t, 0, count)
}
