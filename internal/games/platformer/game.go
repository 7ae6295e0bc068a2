package platformer

import (
	"fmt"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// Visual characters for rendering
const (
	GroundChar     = '█'
	BlockChar      = '?'
	UsedBlockChar  = '▪'
	EnemyChar      = 'G'
	SquishedChar   = '_'
	MushroomChar   = '♠'
	FlowerChar     = '✿'
	PlayerChar     = '▓'
	PlayerDuckChar = '▄'
)

const (
	minScreenWidth  = 40
	minScreenHeight = 12
)

// Walk animation feet, indexed by Player.AnimFrame.
var feetGlyphs = [4]rune{'╨', '╯', '╨', '╰'}

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

// Game adapts a Session to the arcade platform: it owns pause and restart,
// clamps dt when configured, and draws the pixel playfield into the
// character screen.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.PlatformerConfig
	session *Session
	snap    Snapshot
	paused  bool
	loadErr error // Custom config rejected; defaults are in use
}

// New creates a new platformer instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.loadErr = nil
	if g.session != nil {
		g.session.End()
	}

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		g.loadErr = err
		cfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}

	session, err := newSessionFromConfig(cfg)
	if err != nil {
		g.loadErr = err
		cfg = config.DefaultPlatformerConfig()
		session, _ = newSessionFromConfig(cfg)
	}

	g.cfg = cfg
	g.session = session
	g.snap = session.Snapshot()
}

func newSessionFromConfig(cfg config.PlatformerConfig) (*Session, error) {
	stage, err := StageFromLayout(cfg.Stage)
	if err != nil {
		return nil, err
	}
	return NewSession(stage, cfg)
}

// Step advances the game by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && g.snap.GameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.snap.GameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if maxDT := g.cfg.Physics.MaxDT; maxDT > 0 && dt > maxDT {
		dt = maxDT
	}
	g.snap = g.session.Advance(dt, in)

	var events []string
	for _, ev := range g.snap.Events {
		events = append(events, string(ev))
	}
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		Lives:    g.snap.Lives,
		GameOver: g.snap.GameOver,
		Paused:   g.paused,
	}
}

// Snapshot returns the state after the last frame.
func (g *Game) Snapshot() Snapshot {
	return g.snap
}

// ConfigErr returns why the configured stage was rejected, if it was.
// The game then runs on the built-in defaults.
func (g *Game) ConfigErr() error {
	return g.loadErr
}

// Close ends the session when the player leaves the game.
func (g *Game) Close() {
	if g.session != nil {
		g.session.End()
	}
}

// view maps playfield pixels to screen cells below the HUD row.
type view struct {
	camX   float64
	sx, sy float64
}

func (v view) rect(b core.Box) core.Rect {
	r := core.NewBox(b.X-v.camX, b.Y, b.W, b.H).ToRect(v.sx, v.sy)
	r.Y++ // HUD row
	return r
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenWidth || dst.Height() < minScreenHeight {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenWidth, minScreenHeight))
		return
	}

	v := view{
		camX: g.snap.CameraX,
		sx:   float64(dst.Width()) / g.cfg.Gameplay.ViewportW,
		sy:   float64(dst.Height()-1) / g.cfg.Gameplay.ViewportH,
	}

	for _, p := range g.snap.Platforms {
		dst.DrawRectColored(v.rect(p), GroundChar, core.ColorBrown)
	}
	g.renderBlocks(dst, v)
	g.renderPickups(dst, v)
	g.renderEnemies(dst, v)
	g.renderPlayer(dst, v)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderBlocks(dst *core.Screen, v view) {
	for _, b := range g.snap.Blocks {
		box := b.Box
		if b.Bump > 0 {
			box.Y -= box.H / 4
		}
		if b.Used {
			dst.DrawRectColored(v.rect(box), UsedBlockChar, core.ColorBrown)
		} else {
			dst.DrawRectColored(v.rect(box), BlockChar, core.ColorBrightYellow)
		}
	}
}

func (g *Game) renderPickups(dst *core.Screen, v view) {
	for _, p := range g.snap.Pickups {
		if !p.Active {
			continue
		}
		if p.Item == ItemFlower {
			dst.DrawRectColored(v.rect(p.Box), FlowerChar, core.ColorOrange)
		} else {
			dst.DrawRectColored(v.rect(p.Box), MushroomChar, core.ColorRed)
		}
	}
}

func (g *Game) renderEnemies(dst *core.Screen, v view) {
	for _, e := range g.snap.Enemies {
		if !e.Active {
			continue
		}
		if e.Squished {
			dst.DrawRectColored(v.rect(e.Box), SquishedChar, core.ColorBrown)
		} else {
			dst.DrawRectColored(v.rect(e.Box), EnemyChar, core.ColorYellow)
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen, v view) {
	p := g.snap.Player
	r := v.rect(p.Box)
	glyph := PlayerChar
	if p.Posture == Ducking {
		glyph = PlayerDuckChar
	}
	color := core.ColorBrightRed
	if p.Size == Big {
		color = core.ColorRed
	}
	dst.DrawRectColored(r, glyph, color)

	// Feet show the walk cycle; the eye shows facing.
	if r.H > 1 && p.Vel.X != 0 && !p.Airborne {
		dst.DrawHLine(r.X, r.Bottom()-1, r.W, feetGlyphs[p.AnimFrame])
	}
	eye := r.Right() - 1
	if p.Facing == FacingLeft {
		eye = r.X
	}
	dst.SetColored(eye, r.Y, '•', core.ColorBrightWhite)
}

// renderHUD draws score, coins and lives.
func (g *Game) renderHUD(dst *core.Screen) {
	for x := range dst.Width() {
		dst.Set(x, 0, ' ')
	}
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.snap.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Coins: %d", g.snap.Coins))
	lives := fmt.Sprintf("Lives: %d", g.snap.Lives)
	dst.DrawText(dst.Width()-len(lives)-1, 0, lives)
}

// renderOverlay draws pause, respawn and game-over messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case g.snap.GameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.snap.Score)
		dst.DrawMessageBox("GAME OVER", subtitle)
	case g.snap.Locked:
		title := fmt.Sprintf("LIVES LEFT: %d", g.snap.Lives)
		dst.DrawMessageBox(title, fmt.Sprintf("Back in %.1f", g.snap.LockLeft))
	}
}

// Register the game with the registry
func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}
