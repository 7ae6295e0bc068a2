package breakout

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
	PaddleChar = '='
	BallChar   = '●'
)

// Brick glyphs and colors by row (cycling through)
var (
	BrickGlyphs = []rune{'█', '▓', '▒', '░', '#'}
	brickColors = []core.Color{core.ColorRed, core.ColorOrange, core.ColorYellow, core.ColorGreen, core.ColorCyan}
)

// GameState constants
const (
	StateServe    = "serve"    // Ball waiting to launch after a miss
	StatePlaying  = "playing"  // Ball in play
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // Every brick destroyed
)

// Gameplay event names reported in StepResult.Events.
const (
	EventLaunch    = "launch"
	EventWall      = "wall"
	EventPaddleHit = "paddle-hit"
	EventBrick     = "brick"
	EventLifeLost  = "life-lost"
	EventGameOver  = "game-over"
	EventClear     = "clear"
)

// Seconds before the ball relaunches on its own after a miss.
const serveDelay = 1.0

const (
	minScreenW = 30
	minScreenH = 15
)

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

// Game implements the Breakout game logic.
type Game struct {
	paddle Paddle
	ball   Ball
	level  *Level

	// Game state
	state     string
	paused    bool
	score     int
	lives     int
	serveLeft float64
	events    []string

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	loadErr    error
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	// Load game config
	cfg, err := config.LoadBreakout(configPath)
	g.loadErr = err
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}

	g.reset(runtime, cfg)
}

func (g *Game) reset(runtime core.RuntimeConfig, cfg config.BreakoutConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.level = NewLevel(cfg.Bricks, cfg.Gameplay.BrickPoints)
	g.paddle = Paddle{
		X: cfg.Field.Width / 2,
		Y: cfg.Paddle.Y,
		W: cfg.Paddle.Width,
		H: cfg.Paddle.Height,
	}

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.paused = false
	g.events = nil

	g.launch()
}

// launch puts the ball back above the paddle and sends it upward at a
// random angle within the configured spread.
func (g *Game) launch() {
	g.ball = Ball{
		Pos:    core.Vec2{X: g.cfg.Field.Width / 2, Y: g.cfg.Field.Height - 100},
		Radius: g.cfg.Ball.Radius,
	}
	spread := degToRad(g.cfg.Ball.LaunchAngle)
	g.ball.Launch(g.ballSpeed(), (g.rng.Float64()-0.5)*spread)
	g.state = StatePlaying
	g.serveLeft = 0
	g.emit(EventLaunch)
}

// ballSpeed is the base ball speed at the current difficulty.
func (g *Game) ballSpeed() float64 {
	return g.difficulty.Speed(g.cfg.Ball.Speed, g.score, 0)
}

// Step advances the game by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.events = g.events[:0]

	// Handle restart
	if in.Has(core.ActionRestart) && g.finished() {
		g.reset(g.runtime, g.cfg)
		return core.StepResult{State: g.State(), Events: g.eventList()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.finished() {
		g.paused = !g.paused
	}

	// Don't update if paused or game over
	if g.paused || g.finished() || dt <= 0 {
		return core.StepResult{State: g.State()}
	}

	g.updatePaddle(in, dt)

	switch g.state {
	case StateServe:
		g.serveLeft -= dt
		if g.serveLeft <= 0 || in.Has(core.ActionJump) {
			g.launch()
		}
	case StatePlaying:
		g.updateBall(dt)
	}

	return core.StepResult{State: g.State(), Events: g.eventList()}
}

func (g *Game) finished() bool {
	return g.state == StateGameOver || g.state == StateWin
}

// updatePaddle handles paddle movement.
func (g *Game) updatePaddle(in core.InputFrame, dt float64) {
	step := g.cfg.Paddle.Speed * dt

	// A/Left = move left, D/Right = move right
	if in.Has(core.ActionLeft) {
		g.paddle.X -= step
	}
	if in.Has(core.ActionRight) {
		g.paddle.X += step
	}

	// Clamp paddle position
	half := g.paddle.W / 2
	g.paddle.X = core.ClampF(g.paddle.X, half, g.cfg.Field.Width-half)
}

// updateBall moves the ball and resolves walls, paddle, bricks and the
// open bottom, in that order.
func (g *Game) updateBall(dt float64) {
	b := &g.ball
	b.Move(dt)

	if BounceWalls(b, g.cfg.Field.Width) != CollisionNone {
		g.emit(EventWall)
	}

	maxAngle := degToRad(g.cfg.Ball.MaxBounceAngle)
	if BouncePaddle(b, g.paddle, g.ballSpeed(), maxAngle) {
		g.emit(EventPaddleHit)
	} else if i, ok := g.level.HitAt(b.Pos); ok {
		g.hitBrick(i)
		if g.state == StateWin {
			return
		}
	}

	if b.Pos.Y >= g.cfg.Field.Height {
		g.handleMiss()
	}
}

// hitBrick destroys a brick and reflects the ball vertically.
func (g *Game) hitBrick(i int) {
	brick := &g.level.Bricks[i]
	brick.Alive = false
	g.ball.Vel.Y = -g.ball.Vel.Y
	g.score += brick.Points
	g.emit(EventBrick)

	// Check win condition
	if g.level.CountAlive() == 0 {
		g.state = StateWin
		g.emit(EventClear)
	}
}

// handleMiss handles the ball falling past the paddle.
func (g *Game) handleMiss() {
	g.lives--
	g.emit(EventLifeLost)

	if g.lives <= 0 {
		g.state = StateGameOver
		g.emit(EventGameOver)
		return
	}

	g.ball.Vel = core.Vec2{}
	g.state = StateServe
	g.serveLeft = serveDelay
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

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	sx := float64(dst.Width()) / g.cfg.Field.Width
	sy := float64(dst.Height()-1) / g.cfg.Field.Height
	toScreen := func(b core.Box) core.Rect {
		r := b.ToRect(sx, sy)
		r.Y++ // HUD row
		return r
	}

	g.renderHUD(dst)

	for _, brick := range g.level.Bricks {
		if !brick.Alive {
			continue
		}
		glyph := BrickGlyphs[brick.Row%len(BrickGlyphs)]
		color := brickColors[brick.Row%len(brickColors)]
		dst.DrawRectColored(toScreen(brick.Box), glyph, color)
	}

	dst.DrawRectColored(toScreen(g.paddle.Box()), PaddleChar, core.ColorBrightWhite)

	if g.state != StateServe {
		bx := core.Clamp(int(g.ball.Pos.X*sx), 0, dst.Width()-1)
		by := int(g.ball.Pos.Y*sy) + 1
		if by < dst.Height() {
			dst.SetColored(bx, by, BallChar, core.ColorBrightWhite)
		}
	}

	g.renderOverlay(dst)
}

// renderHUD draws the score and lives.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Bricks: %d", g.level.CountAlive()))
	livesText := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawText(dst.Width()-len(livesText)-1, 0, livesText)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")

	case g.state == StateServe:
		dst.DrawTextCentered(dst.Height()-1, "Get ready... SPACE to launch")

	case g.state == StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		dst.DrawMessageBox("GAME OVER", subtitle)

	case g.state == StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		dst.DrawMessageBox("YOU WIN!", subtitle)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.finished(),
		Paused:   g.paused,
	}
}

// ConfigErr returns why the custom config was rejected, if it was.
func (g *Game) ConfigErr() error {
	return g.loadErr
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
