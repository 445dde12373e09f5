package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodhype/ecs"
)

type clock struct {
	Now float64
}

type config struct {
	Gravity float64
}

func TestResourcesPutAndGet(t *testing.T) {
	world := ecs.NewWorld()

	ecs.PutResource(world, &clock{Now: 1.5})

	got, ok := ecs.GetResource[clock](world)
	require.True(t, ok)
	assert.Equal(t, 1.5, got.Now)

	// One value per type: a second Put replaces the first.
	ecs.PutResource(world, &clock{Now: 2.5})
	got, _ = ecs.GetResource[clock](world)
	assert.Equal(t, 2.5, got.Now)
}

func TestResourcesTryGetAbsent(t *testing.T) {
	world := ecs.NewWorld()

	_, ok := ecs.GetResource[config](world)
	assert.False(t, ok)
	assert.Nil(t, world.Resources().Get(ecs.C[config]()))
}

func TestResourcesRemove(t *testing.T) {
	world := ecs.NewWorld()
	ecs.PutResource(world, &config{Gravity: 9.81})

	assert.True(t, world.Resources().Remove(ecs.C[config]()))
	assert.False(t, world.Resources().Remove(ecs.C[config]()))
	_, ok := ecs.GetResource[config](world)
	assert.False(t, ok)
}

func TestResourcesClear(t *testing.T) {
	world := ecs.NewWorld()
	ecs.PutResource(world, &clock{})
	ecs.PutResource(world, &config{})
	require.Equal(t, 2, world.Resources().Len())

	world.Resources().Clear()
	assert.Equal(t, 0, world.Resources().Len())
}

func TestResourcesMutableInPlace(t *testing.T) {
	world := ecs.NewWorld()
	ecs.PutResource(world, &clock{Now: 0})

	got, _ := ecs.GetResource[clock](world)
	got.Now = 60

	again, _ := ecs.GetResource[clock](world)
	assert.Equal(t, 60.0, again.Now)
}
