package game

// Position is the entity's location in world space.
type Position struct {
	X, Y float64
}

// Velocity is the per-second displacement applied by the movement system.
type Velocity struct {
	DX, DY float64
}
