package platformer

import "github.com/vovakirdan/canvas-arcade/internal/core"

// Body is a dynamic rectangle in playfield pixels.
// Y grows downward; positive Vel.Y means falling.
type Body struct {
	Pos     core.Vec2
	Vel     core.Vec2
	W, H    float64
	Gravity float64
}

// Integrate advances the body by dt seconds:
// gravity is applied to the vertical velocity first, then position moves.
func (b *Body) Integrate(dt float64) {
	b.Vel.Y += b.Gravity * dt
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Box returns the body's bounding box.
func (b *Body) Box() core.Box {
	return core.NewBox(b.Pos.X, b.Pos.Y, b.W, b.H)
}

// Feet returns the y-coordinate of the bottom edge.
func (b *Body) Feet() float64 {
	return b.Pos.Y + b.H
}

// resize changes the height while keeping the bottom edge in place.
func (b *Body) resize(h float64) {
	b.Pos.Y += b.H - h
	b.H = h
}
