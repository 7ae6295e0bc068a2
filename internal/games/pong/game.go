// Package pong implements a classic Pong game.
// Player 1 controls the left paddle. The right paddle is driven by the CPU
// in "pong" and by a second player on the same keyboard in "pong_2p".
//
// The match runs in playfield pixels (800x400 by default) with elapsed
// wall-clock seconds per step and is scaled to the terminal when drawn.
package pong

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Gameplay event names reported in StepResult.Events.
const (
	EventServe     = "serve"
	EventPaddleHit = "paddle-hit"
	EventWall      = "wall"
	EventPoint     = "point"
	EventGameOver  = "game-over"
)

// Initial serve spread either side of horizontal.
const serveSpread = math.Pi / 6

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Side identifies a paddle.
type Side int

const (
	SideNone  Side = iota
	SideLeft       // Player 1
	SideRight      // CPU or player 2
)

// Mode selects who drives the right paddle.
type Mode int

const (
	ModeCPU    Mode = iota // Player vs CPU
	ModeVersus             // Two players share the keyboard
)

type ball struct {
	pos, vel core.Vec2
	radius   float64
}

// Game implements the Pong game logic.
type Game struct {
	cfg     config.PongConfig
	diff    *config.DifficultyManager
	runtime core.RuntimeConfig
	rng     *rand.Rand
	loadErr error
	mode    Mode

	left  core.Box // Player 1 paddle
	right core.Box // CPU or player 2 paddle
	ball  ball

	score1 int // Left score
	score2 int // Right score

	// Game state
	gameOver  bool
	paused    bool
	winner    Side
	serveLeft float64 // Seconds until the ball is released
	elapsed   float64 // Unpaused seconds since Reset
	events    []string
}

// New creates a Pong game against the CPU.
func New() *Game {
	return &Game{mode: ModeCPU}
}

// NewVersus creates a two-player Pong game.
// W/S move the left paddle, the arrow keys move the right one.
func NewVersus() *Game {
	return &Game{mode: ModeVersus}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeVersus {
		return "pong_2p"
	}
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeVersus {
		return "Pong (2 players)"
	}
	return "Pong"
}

// Players returns how many people share the keyboard.
func (g *Game) Players() int {
	if g.mode == ModeVersus {
		return 2
	}
	return 1
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadPong(configPath)
	g.loadErr = err
	if err != nil {
		cfg = config.DefaultPongConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPongPreset(&cfg, difficultyPreset)
	}
	g.reset(runtime, cfg)
}

// reset starts a match on an explicit configuration.
func (g *Game) reset(runtime core.RuntimeConfig, cfg config.PongConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	w, h := cfg.Field.Width, cfg.Field.Height
	pw, ph := cfg.Paddles.Width, cfg.Paddles.Height
	g.left = core.NewBox(cfg.Paddles.Offset, h/2-ph/2, pw, ph)
	g.right = core.NewBox(w-cfg.Paddles.Offset-pw, h/2-ph/2, pw, ph)

	g.score1 = 0
	g.score2 = 0
	g.gameOver = false
	g.paused = false
	g.winner = SideNone
	g.elapsed = 0
	g.events = nil

	// First serve leaves at a shallow random angle toward either side.
	angle := (g.rng.Float64()*2 - 1) * serveSpread
	dir := 1.0
	if g.rng.Float64() < 0.5 {
		dir = -1
	}
	speed := g.ballSpeed()
	g.centerBall()
	g.ball.vel = core.Vec2{X: dir * speed * math.Cos(angle), Y: speed * math.Sin(angle)}
	g.serveLeft = cfg.Gameplay.ServeDelay
}

func (g *Game) centerBall() {
	g.ball.pos = core.Vec2{X: g.cfg.Field.Width / 2, Y: g.cfg.Field.Height / 2}
	g.ball.radius = g.cfg.Ball.Radius
}

// serve re-centres the ball after a point with a random direction.
func (g *Game) serve() {
	speed := g.ballSpeed()
	dir := 1.0
	if g.rng.Float64() < 0.5 {
		dir = -1
	}
	g.centerBall()
	g.ball.vel = core.Vec2{X: dir * speed, Y: (g.rng.Float64()*2 - 1) * speed}
	g.serveLeft = g.cfg.Gameplay.ServeDelay
	g.emit(EventServe)
}

// ballSpeed is the base ball speed at the current difficulty.
func (g *Game) ballSpeed() float64 {
	return g.diff.Speed(g.cfg.Ball.Speed, 0, int(g.elapsed))
}

// cpuSkill is the CPU reaction skill (0-1) at the current difficulty.
func (g *Game) cpuSkill() float64 {
	return g.diff.Lerp(g.cfg.CPU.MinSkill, g.cfg.CPU.MaxSkill, 0, int(g.elapsed))
}

// Step advances the game by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.events = g.events[:0]

	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.reset(g.runtime, g.cfg)
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || dt <= 0 {
		return core.StepResult{State: g.State()}
	}

	g.elapsed += dt
	if g.mode == ModeVersus {
		g.left.Y = g.movePaddle(g.left.Y, in.Has(core.ActionUp), in.Has(core.ActionDown), dt)
		g.right.Y = g.movePaddle(g.right.Y, in.Has(core.ActionUp2), in.Has(core.ActionDown2), dt)
	} else {
		up := in.Has(core.ActionUp) || in.Has(core.ActionJump)
		g.left.Y = g.movePaddle(g.left.Y, up, in.Has(core.ActionDown), dt)
		g.moveCPU(dt)
	}

	// The ball waits at the centre during the serve delay; paddles still move.
	if g.serveLeft > 0 {
		g.serveLeft -= dt
	} else {
		g.updateBall(dt)
	}

	return core.StepResult{State: g.State(), Events: g.eventList()}
}

// movePaddle returns a paddle's new top edge for one player's keys.
func (g *Game) movePaddle(y float64, up, down bool, dt float64) float64 {
	step := g.cfg.Paddles.Speed * dt
	if up {
		y -= step
	}
	if down {
		y += step
	}
	return g.clampPaddle(y)
}

// moveCPU tracks the ball while it approaches, at a skill-scaled speed.
func (g *Game) moveCPU(dt float64) {
	if g.ball.vel.X > 0 {
		diff := g.ball.pos.Y - (g.right.Y + g.right.H/2)
		step := g.cfg.Paddles.Speed * g.cpuSkill() * dt
		if math.Abs(diff) > step {
			g.right.Y += math.Copysign(step, diff)
		} else {
			g.right.Y += diff
		}
	}
	g.right.Y = g.clampPaddle(g.right.Y)
}

func (g *Game) clampPaddle(y float64) float64 {
	return core.ClampF(y, 0, g.cfg.Field.Height-g.cfg.Paddles.Height)
}

// updateBall handles ball physics, paddle hits and scoring.
func (g *Game) updateBall(dt float64) {
	b := &g.ball
	b.pos = b.pos.Add(b.vel.Scale(dt))

	// Bounce off top/bottom walls
	if b.pos.Y <= b.radius && b.vel.Y < 0 {
		b.pos.Y = b.radius
		b.vel.Y = -b.vel.Y
		g.emit(EventWall)
	}
	if maxY := g.cfg.Field.Height - b.radius; b.pos.Y >= maxY && b.vel.Y > 0 {
		b.pos.Y = maxY
		b.vel.Y = -b.vel.Y
		g.emit(EventWall)
	}

	if b.vel.X < 0 && b.pos.X <= g.left.Right() && coversY(g.left, b.pos.Y) {
		g.paddleHit()
		b.vel.X = math.Abs(b.vel.X)
	}
	if b.vel.X > 0 && b.pos.X >= g.right.X && coversY(g.right, b.pos.Y) {
		g.paddleHit()
		b.vel.X = -math.Abs(b.vel.X)
	}

	// Check scoring (ball goes past paddle)
	switch {
	case b.pos.X <= 0:
		g.score2++
		g.point(SideRight, g.score2)
	case b.pos.X >= g.cfg.Field.Width:
		g.score1++
		g.point(SideLeft, g.score1)
	}
}

func coversY(p core.Box, y float64) bool {
	return y >= p.Y && y <= p.Bottom()
}

// paddleHit keeps the ball's direction but picks a new speed within the
// configured band around the current base speed.
func (g *Game) paddleHit() {
	cur := g.ball.vel.Len()
	if cur == 0 {
		return
	}
	lo, hi := g.cfg.Ball.MinSpeedScale, g.cfg.Ball.MaxSpeedScale
	speed := g.ballSpeed() * (lo + g.rng.Float64()*(hi-lo))
	g.ball.vel = g.ball.vel.Scale(speed / cur)
	g.emit(EventPaddleHit)
}

func (g *Game) point(scorer Side, score int) {
	g.emit(EventPoint)
	if score >= g.cfg.Gameplay.WinScore {
		g.gameOver = true
		g.winner = scorer
		g.emit(EventGameOver)
		return
	}
	g.serve()
}

func (g *Game) emit(ev string) {
	g.events = append(g.events, ev)
}

func (g *Game) eventList() []string {
	if len(g.events) == 0 {
		return nil
	}
	return append([]string(nil), g.events...)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	sx := float64(dst.Width()) / g.cfg.Field.Width
	sy := float64(dst.Height()-1) / g.cfg.Field.Height
	toScreen := func(b core.Box) core.Rect {
		r := b.ToRect(sx, sy)
		r.Y++ // HUD row
		return r
	}

	// Draw center line (net)
	centerX := dst.Width() / 2
	for y := 1; y < dst.Height(); y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	dst.DrawRectColored(toScreen(g.left), PaddleChar, core.ColorCyan)
	dst.DrawRectColored(toScreen(g.right), PaddleChar, core.ColorMagenta)

	// Draw ball, blinking during serve
	if g.serveLeft <= 0 || int(g.serveLeft*6)%2 == 0 {
		bx := int(g.ball.pos.X * sx)
		by := int(g.ball.pos.Y*sy) + 1
		bx = core.Clamp(bx, 0, dst.Width()-1)
		by = core.Clamp(by, 1, dst.Height()-1)
		dst.SetColored(bx, by, BallChar, core.ColorBrightWhite)
	}

	// Draw scores
	dst.DrawText(1, 0, "P1")
	dst.DrawText(dst.Width()-4, 0, g.rightLabel())
	dst.DrawText(dst.Width()/4, 0, fmt.Sprintf("%d", g.score1))
	dst.DrawText(3*dst.Width()/4, 0, fmt.Sprintf("%d", g.score2))

	if g.paused {
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}

	if g.gameOver {
		msg := g.rightLabel() + " WINS!"
		switch {
		case g.winner == SideLeft && g.mode == ModeVersus:
			msg = "P1 WINS!"
		case g.winner == SideLeft:
			msg = "YOU WIN!"
		}
		dst.DrawMessageBox(msg, fmt.Sprintf("%d - %d  |  Press R to restart", g.score1, g.score2))
	}
}

func (g *Game) rightLabel() string {
	if g.mode == ModeVersus {
		return "P2"
	}
	return "CPU"
}

// State returns the current game state. Against the CPU the score is
// player 1's; in a two-player match it is the leader's.
func (g *Game) State() core.GameState {
	score := g.score1
	if g.mode == ModeVersus {
		score = max(g.score1, g.score2)
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Winner returns the side that reached the winning score, if any.
func (g *Game) Winner() Side {
	return g.winner
}

// ConfigErr returns why the custom config was rejected, if it was.
func (g *Game) ConfigErr() error {
	return g.loadErr
}

// Register the game with the registry
func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
	registry.Register("pong_2p", func() registry.Game {
		return NewVersus()
	})
}
