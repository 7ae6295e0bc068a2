// Package breakout implements a Breakout/Arkanoid-style brick breaker game.
package breakout

import (
	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Brick represents a single brick in the wall.
type Brick struct {
	Box    core.Box
	Row    int
	Points int  // Points awarded when destroyed
	Alive  bool // Whether brick is still present
}

// Level is the brick wall of one game.
type Level struct {
	Rows, Cols int
	Bricks     []Brick // Row-major
}

// NewLevel lays out a full wall: brick (i, j) sits at
// x = padding + j*(width+padding), y = top + padding + i*(height+padding).
func NewLevel(cfg config.BreakoutBricks, points int) *Level {
	l := &Level{
		Rows:   cfg.Rows,
		Cols:   cfg.Cols,
		Bricks: make([]Brick, 0, cfg.Rows*cfg.Cols),
	}
	for i := range cfg.Rows {
		for j := range cfg.Cols {
			x := cfg.Padding + float64(j)*(cfg.Width+cfg.Padding)
			y := cfg.Top + cfg.Padding + float64(i)*(cfg.Height+cfg.Padding)
			l.Bricks = append(l.Bricks, Brick{
				Box:    core.NewBox(x, y, cfg.Width, cfg.Height),
				Row:    i,
				Points: points,
				Alive:  true,
			})
		}
	}
	return l
}

// CountAlive returns the number of remaining bricks.
func (l *Level) CountAlive() int {
	count := 0
	for _, b := range l.Bricks {
		if b.Alive {
			count++
		}
	}
	return count
}

// HitAt returns the index of the first live brick containing p.
// Brick edges count as inside.
func (l *Level) HitAt(p core.Vec2) (int, bool) {
	for i, b := range l.Bricks {
		if !b.Alive {
			continue
		}
		if p.X >= b.Box.X && p.X <= b.Box.Right() && p.Y >= b.Box.Y && p.Y <= b.Box.Bottom() {
			return i, true
		}
	}
	return -1, false
}
