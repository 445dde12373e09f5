package game

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/prodhype/ecs"
)

// Run drives a small simulation for the given number of frames and returns
// the world for inspection.
func Run(frames int) *ecs.World {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()

	world := ecs.NewWorld(ecs.WithLogger(logger))
	world.AddSystem(Movement{})
	world.Start()

	e := world.CreateEntity()
	if err := ecs.Add(world, e, &Position{}); err != nil {
		panic(err)
	}
	if err := ecs.Add(world, e, &Velocity{DX: 1, DY: 0.5}); err != nil {
		panic(err)
	}

	ecs.LogWorld(&logger, world, zerolog.InfoLevel)

	for i := 0; i < frames; i++ {
		world.Update(1.0 / 60)
	}

	world.Stop()
	return world
}
