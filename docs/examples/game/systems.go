package game

import (
	"github.com/prodhype/ecs"
)

// Movement integrates velocity into position for every entity carrying
// both components. It runs early (priority 10) so later systems observe
// the frame's final positions.
type Movement struct{}

func (Movement) Priority() int { return 10 }

func (Movement) Update(w *ecs.World, dt float64) {
	ecs.Each2(w, func(_ ecs.EntityID, pos *Position, vel *Velocity) bool {
		pos.X += vel.DX * dt
		pos.Y += vel.DY * dt
		return true
	})
}
