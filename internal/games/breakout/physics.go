package breakout

import (
	"math"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Ball represents the ball in playfield pixels.
type Ball struct {
	Pos    core.Vec2 // Centre
	Vel    core.Vec2 // Pixels per second
	Radius float64
}

// Move advances the ball by dt seconds.
func (b *Ball) Move(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Launch sets the ball moving at speed, angle radians off straight up.
// Positive angles lean right.
func (b *Ball) Launch(speed, angle float64) {
	b.Vel = core.Vec2{X: speed * math.Sin(angle), Y: -speed * math.Cos(angle)}
}

// Paddle represents the player's paddle.
type Paddle struct {
	X    float64 // Centre
	Y    float64 // Top edge
	W, H float64
}

// Left returns the left edge.
func (p Paddle) Left() float64 {
	return p.X - p.W/2
}

// Right returns the right edge.
func (p Paddle) Right() float64 {
	return p.X + p.W/2
}

// Box returns the paddle's bounding box.
func (p Paddle) Box() core.Box {
	return core.NewBox(p.Left(), p.Y, p.W, p.H)
}

// CollisionSide indicates which side of an object was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionLeft
	CollisionRight
)

// BounceWalls keeps the ball inside the side and top walls of a field of
// the given width. The ball is clamped to the wall and sent back inward.
// The bottom is open.
func BounceWalls(b *Ball, width float64) CollisionSide {
	side := CollisionNone
	if b.Pos.X <= b.Radius {
		b.Pos.X = b.Radius
		b.Vel.X = math.Abs(b.Vel.X)
		side = CollisionLeft
	} else if b.Pos.X >= width-b.Radius {
		b.Pos.X = width - b.Radius
		b.Vel.X = -math.Abs(b.Vel.X)
		side = CollisionRight
	}

	if b.Pos.Y <= b.Radius {
		b.Pos.Y = b.Radius
		b.Vel.Y = math.Abs(b.Vel.Y)
		side = CollisionTop
	}
	return side
}

// BouncePaddle sends a falling ball back up when it reaches the paddle.
// The rebound angle depends on where the ball meets the paddle: the centre
// returns it straight up and the edges lean it by maxAngle/2 radians.
// The rebound speed is always speed.
func BouncePaddle(b *Ball, p Paddle, speed, maxAngle float64) bool {
	if b.Vel.Y <= 0 {
		return false
	}
	if b.Pos.Y < p.Y-b.Radius || b.Pos.Y > p.Y+p.H {
		return false
	}
	if b.Pos.X < p.Left() || b.Pos.X > p.Right() {
		return false
	}

	b.Pos.Y = p.Y - b.Radius
	hit := (b.Pos.X - p.Left()) / p.W
	b.Launch(speed, (hit-0.5)*maxAngle)
	return true
}
