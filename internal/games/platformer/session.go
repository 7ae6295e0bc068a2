package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Session owns every entity of one play-through of a stage.
// It is not safe for concurrent use; one frame loop drives it.
type Session struct {
	cfg   config.PlatformerConfig
	stage Stage

	player    *Player
	platforms []Platform
	blocks    []*Block
	enemies   []*Enemy
	pickups   []*Pickup

	cameraX  float64
	score    int
	coins    int
	lives    int
	gameOver bool
	lock     float64 // Respawn lock seconds left
	dt       float64 // Length of the frame being resolved
	frame    uint64
	ended    bool

	events []Event
	last   Snapshot
}

// NewSession validates the stage and configuration and starts a session.
// Invalid input returns an error wrapping ErrInvalidStage.
func NewSession(stage Stage, cfg config.PlatformerConfig) (*Session, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if err := stage.Validate(cfg); err != nil {
		return nil, err
	}

	s := &Session{cfg: cfg, stage: stage}
	s.player = NewPlayer(stage.Start.X, stage.Start.Y, cfg.Physics.Gravity, cfg.Player)
	for _, p := range stage.Platforms {
		s.platforms = append(s.platforms, NewPlatform(p.X, p.Y, p.W, p.H))
	}
	s.resetStage()
	s.last = s.snapshot()
	return s, nil
}

// resetStage restores blocks, enemies, score and lives to the stage start.
func (s *Session) resetStage() {
	s.blocks = s.blocks[:0]
	for _, b := range s.stage.Blocks {
		s.blocks = append(s.blocks, NewBlock(b.X, b.Y, s.stage.BlockSize, b.Kind))
	}
	s.enemies = s.enemies[:0]
	for _, e := range s.stage.Enemies {
		s.enemies = append(s.enemies, NewEnemy(e.X, e.Y, s.cfg.Physics.Gravity, s.cfg.Enemy))
	}
	s.pickups = s.pickups[:0]
	s.score = 0
	s.coins = 0
	s.lives = s.cfg.Gameplay.Lives
	s.gameOver = false
	s.respawn()
}

// respawn puts a small, standing player at the stage start.
func (s *Session) respawn() {
	s.player.spawn(s.stage.Start.X, s.stage.Start.Y)
	s.updateCamera()
}

func (s *Session) updateCamera() {
	s.cameraX = s.player.Pos.X - s.cfg.Gameplay.ViewportW/2
}

// Advance runs one frame of dt wall-clock seconds with the given input and
// returns the resulting state. dt is used as given; any clamping belongs to
// the caller. A negative or NaN dt is a programming error and panics.
func (s *Session) Advance(dt float64, in core.InputFrame) Snapshot {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		panic(fmt.Sprintf("platformer: invalid frame time %v", dt))
	}
	if s.ended {
		return s.last
	}

	s.frame++
	s.events = s.events[:0]

	if s.lock > 0 {
		s.tickLock(dt)
		s.last = s.snapshot()
		return s.last
	}

	s.dt = dt
	s.applyInput(in)

	s.player.grounded = false
	s.player.Update(dt)
	for _, b := range s.blocks {
		b.Update(dt)
	}
	for _, p := range s.pickups {
		p.Update(dt)
	}
	for _, e := range s.enemies {
		e.Update(dt)
	}

	s.resolveCollisions()

	if s.lock == 0 && s.player.Pos.Y > s.stage.Height {
		s.loseLife()
	}
	s.dropFallen()

	if s.lock == 0 {
		s.updateCamera()
	}

	s.last = s.snapshot()
	return s.last
}

// tickLock counts the respawn lock down. When a game-over lock ends the
// whole stage starts again.
func (s *Session) tickLock(dt float64) {
	s.lock -= dt
	if s.lock > 0 {
		return
	}
	s.lock = 0
	if s.gameOver {
		s.resetStage()
		s.emit(EventStageReset)
		return
	}
	s.emit(EventRespawn)
}

// applyInput turns the frame's input into player velocity and posture.
// Movement is applied before posture so the duck/stand speed change
// agrees with the posture's walking speed.
func (s *Session) applyInput(in core.InputFrame) {
	p := s.player
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		p.MoveLeft()
	case right && !left:
		p.MoveRight()
	default:
		p.StopMoving()
	}

	if in.Has(core.ActionDown) {
		p.Duck()
	} else {
		p.Stand()
	}

	if in.Has(core.ActionJump) || in.Has(core.ActionUp) {
		if p.Jump() {
			s.emit(EventJump)
		}
	}
}

// resolveCollisions runs every pair in a fixed order:
// platforms, then blocks, then pickups, then enemies.
func (s *Session) resolveCollisions() {
	movers := s.movers()

	for _, m := range movers {
		for _, p := range s.platforms {
			s.collide(m, p)
		}
	}
	for _, m := range movers {
		for _, b := range s.blocks {
			s.collide(m, b)
		}
	}
	for _, p := range s.pickups {
		if p.Active() {
			s.collide(s.player, p)
		}
	}
	for _, e := range s.enemies {
		if s.lock > 0 {
			break
		}
		s.collide(s.player, e)
	}
}

// movers lists the player followed by every live enemy and pickup.
func (s *Session) movers() []entity {
	movers := make([]entity, 0, 1+len(s.enemies)+len(s.pickups))
	movers = append(movers, s.player)
	for _, e := range s.enemies {
		if e.Dangerous() {
			movers = append(movers, e)
		}
	}
	for _, p := range s.pickups {
		if p.Active() {
			movers = append(movers, p)
		}
	}
	return movers
}

// dropFallen deactivates enemies and pickups that left the playfield.
func (s *Session) dropFallen() {
	for _, e := range s.enemies {
		if e.active && e.Pos.Y > s.stage.Height {
			e.active = false
		}
	}
	for _, p := range s.pickups {
		if p.active && p.Pos.Y > s.stage.Height {
			p.active = false
		}
	}
}

// activateBlock applies a block's reward, if it still has one.
func (s *Session) activateBlock(p *Player, b *Block) {
	r := b.Activate(p.IsBig())
	if r == nil {
		return
	}
	s.emit(EventBlock)
	if r.Kind == ItemCoin {
		s.coins++
		s.score += s.cfg.Gameplay.CoinPoints
		s.emit(EventCoin)
		return
	}
	s.pickups = append(s.pickups, NewPickup(*r, s.cfg.Physics.Gravity, s.cfg.Pickup))
	s.emit(EventSpawn)
}

// loseLife handles an enemy hit or a fall. The last life sets game over
// for the lock duration; the stage resets when the lock ends.
func (s *Session) loseLife() {
	s.lives--
	s.lock = s.cfg.Gameplay.RespawnLock
	if s.lives <= 0 {
		s.lives = 0
		s.gameOver = true
		s.emit(EventLifeLost, EventGameOver)
	} else {
		s.emit(EventLifeLost)
	}
	s.respawn()
	if s.lock <= 0 {
		// A zero-length lock resumes immediately.
		s.lock = 0
		if s.gameOver {
			s.resetStage()
			s.emit(EventStageReset)
		}
	}
}

func (s *Session) emit(evs ...Event) {
	s.events = append(s.events, evs...)
}

// End finishes the session. Later Advance calls return the final snapshot.
func (s *Session) End() {
	if s.ended {
		return
	}
	s.ended = true
	s.last.Ended = true
}

// Ended reports whether End was called.
func (s *Session) Ended() bool { return s.ended }

// Snapshot returns the state after the most recent frame.
func (s *Session) Snapshot() Snapshot { return s.last }

// Player exposes the player for inspection.
func (s *Session) Player() *Player { return s.player }
