package platformer

import "github.com/vovakirdan/canvas-arcade/internal/config"

// SizeMode is the player's power-up size.
type SizeMode int

const (
	Small SizeMode = iota
	Big
)

func (m SizeMode) String() string {
	if m == Big {
		return "big"
	}
	return "small"
}

// Posture is standing or ducking.
type Posture int

const (
	Standing Posture = iota
	Ducking
)

func (p Posture) String() string {
	if p == Ducking {
		return "ducking"
	}
	return "standing"
}

// Facing is the direction the player looks.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// form is one cell of the player's size state machine.
type form struct {
	size    SizeMode
	posture Posture
}

// heightTable maps every form to its collision height.
// All transitions go through it, so height is a pure function of the form
// and the feet never move on a transition.
type heightTable map[form]float64

func newHeightTable(cfg config.PlatformerPlayer) heightTable {
	return heightTable{
		{Small, Standing}: cfg.SmallHeight,
		{Small, Ducking}:  cfg.SmallHeight / 2,
		{Big, Standing}:   cfg.BigHeight,
		{Big, Ducking}:    cfg.BigHeight / 2,
	}
}

// Player is the controllable character.
type Player struct {
	Body

	form     form
	heights  heightTable
	airborne bool // Set by Jump, cleared only by landing on a surface
	grounded bool // A surface supported the player this frame
	facing   Facing
	phase    float64 // Walk animation phase in seconds

	speed       float64
	jumpImpulse float64
}

// NewPlayer creates a small, standing player with its top-left corner at (x, y).
func NewPlayer(x, y, gravity float64, cfg config.PlatformerPlayer) *Player {
	p := &Player{
		heights:     newHeightTable(cfg),
		speed:       cfg.Speed,
		jumpImpulse: cfg.JumpImpulse,
	}
	p.Body = Body{W: cfg.Width, Gravity: gravity}
	p.spawn(x, y)
	return p
}

// spawn places a small, standing, motionless player at (x, y).
func (p *Player) spawn(x, y float64) {
	p.form = form{Small, Standing}
	p.Pos.X, p.Pos.Y = x, y
	p.Vel.X, p.Vel.Y = 0, 0
	p.H = p.heights[p.form]
	p.airborne = false
	p.grounded = false
	p.facing = FacingRight
	p.phase = 0
}

// Kind implements entity.
func (p *Player) Kind() Kind { return KindPlayer }

// Size returns the current size mode.
func (p *Player) Size() SizeMode { return p.form.size }

// Posture returns the current posture.
func (p *Player) Posture() Posture { return p.form.posture }

// IsBig reports whether the player is in big mode.
func (p *Player) IsBig() bool { return p.form.size == Big }

// Airborne reports whether the player has jumped and not landed yet.
func (p *Player) Airborne() bool { return p.airborne }

// Grounded reports whether a surface supported the player this frame.
func (p *Player) Grounded() bool { return p.grounded }

// Facing returns the direction the player looks.
func (p *Player) Facing() Facing { return p.facing }

// transition moves to a new form, keeping the feet in place.
func (p *Player) transition(to form) {
	p.resize(p.heights[to])
	p.form = to
}

// Grow switches a small player to big. It reports whether anything changed.
func (p *Player) Grow() bool {
	if p.form.size == Big {
		return false
	}
	p.transition(form{Big, p.form.posture})
	return true
}

// Shrink switches a big player to small. It reports whether anything changed.
func (p *Player) Shrink() bool {
	if p.form.size == Small {
		return false
	}
	p.transition(form{Small, p.form.posture})
	return true
}

// Duck lowers the player and halves the current horizontal velocity once.
func (p *Player) Duck() {
	if p.form.posture == Ducking {
		return
	}
	p.transition(form{p.form.size, Ducking})
	p.Vel.X *= 0.5
}

// Stand raises the player and doubles the current horizontal velocity once.
func (p *Player) Stand() {
	if p.form.posture == Standing {
		return
	}
	p.transition(form{p.form.size, Standing})
	p.Vel.X *= 2
}

// Jump applies the jump impulse unless the player is already airborne.
func (p *Player) Jump() bool {
	if p.airborne {
		return false
	}
	p.Vel.Y = p.jumpImpulse
	p.airborne = true
	return true
}

// walkSpeed is the horizontal speed for the current posture.
func (p *Player) walkSpeed() float64 {
	if p.form.posture == Ducking {
		return p.speed / 2
	}
	return p.speed
}

// MoveLeft sets leftward walking velocity.
func (p *Player) MoveLeft() {
	p.Vel.X = -p.walkSpeed()
	p.facing = FacingLeft
}

// MoveRight sets rightward walking velocity.
func (p *Player) MoveRight() {
	p.Vel.X = p.walkSpeed()
	p.facing = FacingRight
}

// StopMoving zeroes horizontal velocity.
func (p *Player) StopMoving() {
	p.Vel.X = 0
}

// Update integrates the player and advances the walk animation.
func (p *Player) Update(dt float64) {
	p.Integrate(dt)
	if p.Vel.X != 0 {
		p.phase += dt
	} else {
		p.phase = 0
	}
}

// AnimFrame returns the walk animation frame (0-3), 8 frames per second.
func (p *Player) AnimFrame() int {
	return int(p.phase*8) % 4
}

func (p *Player) body() *Body { return &p.Body }

// land puts the feet on a surface at top.
func (p *Player) land(top float64) {
	p.Pos.Y = top - p.H
	p.Vel.Y = 0
	p.airborne = false
	p.grounded = true
}

func (p *Player) bumpSide() {}
