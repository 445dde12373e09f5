// Profiling:
// go build ./profile/view
// go tool pprof -http=":8000" -nodefraction=0.001 ./view cpu.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/prodhype/ecs"
)

type position struct {
	X, Y float64
}

type velocity struct {
	DX, DY float64
}

func main() {
	rounds := 50
	frames := 1000
	entities := 1000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, frames, entities)
	p.Stop()
}

func run(rounds, frames, numEntities int) {
	for r := 0; r < rounds; r++ {
		world := ecs.NewWorld()
		for i := 0; i < numEntities; i++ {
			e := world.CreateEntity()
			if err := ecs.Add(world, e, &position{}); err != nil {
				panic(err)
			}
			// Half the entities move, so the view exercises a real
			// intersection rather than a full scan.
			if i%2 == 0 {
				if err := ecs.Add(world, e, &velocity{DX: 1, DY: 1}); err != nil {
					panic(err)
				}
			}
		}

		dt := 1.0 / 60
		for f := 0; f < frames; f++ {
			ecs.Each2(world, func(_ ecs.EntityID, pos *position, vel *velocity) bool {
				pos.X += vel.DX * dt
				pos.Y += vel.DY * dt
				return true
			})
		}
	}
}
