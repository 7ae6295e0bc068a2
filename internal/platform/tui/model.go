package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
	"github.com/vovakirdan/canvas-arcade/internal/storage"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Player string      // Name stored with saved scores
	Logger *log.Logger // Nil discards log output
	InMenu bool        // B (when paused or over) returns to the menu
}

// configReporter is implemented by games that fall back to defaults when a
// custom config is rejected.
type configReporter interface {
	ConfigErr() error
}

// multiplayer is implemented by games that split the keyboard between
// players.
type multiplayer interface {
	Players() int
}

// GameModel is the Bubble Tea model for running one arcade game.
// Each tick feeds the held keys plus one-shot presses and the wall-clock
// time since the previous tick into the game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       GameOptions
	logger     *log.Logger
	keyMapper  *KeyMapper
	held       *HeldKeys
	pulses     core.InputFrame // One-shot actions for the next tick
	gameState  core.GameState
	lastTick   time.Time
	played     time.Duration // Unpaused time of the current run
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keyMapper := NewKeyMapper()
	if mp, ok := game.(multiplayer); ok && mp.Players() > 1 {
		keyMapper.SetTwoPlayer(true)
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		opts:      opts,
		logger:    logger.With("game", game.ID()),
		keyMapper: keyMapper,
		held:      NewHeldKeys(),
		pulses:    core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if r, ok := m.game.(configReporter); ok && r.ConfigErr() != nil {
		m.logger.Warn("custom config rejected, using defaults", "error", r.ConfigErr())
	}
	m.logger.Info("game started", "player", m.opts.Player, "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.leave()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		if m.opts.InMenu && (m.gameState.GameOver || m.gameState.Paused) {
			m.leave()
			m.backToMenu = true
			return m, tea.Quit
		}

	case action.IsHeld():
		m.held.Press(action, time.Now())

	case action != core.ActionNone:
		m.pulses.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. Games scale their playfield
// at render time, so the running game is kept.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	now := time.Time(msg)
	dt := frameTime(m.lastTick, now)
	m.lastTick = now

	in := m.held.Frame(now).Merge(m.pulses)
	m.pulses.Clear()

	// Check for restart
	if in.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.played = 0
		return m, tickCmd(m.config.TickRate)
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(in, dt)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Debug("event", "name", ev, "score", result.State.Score)
	}

	switch {
	case m.gameState.GameOver:
		// Save score on game over (once)
		if !m.scoreSaved {
			m.saveScore()
			m.scoreSaved = true
		}
	case wasOver:
		// The game started over on its own.
		m.scoreSaved = false
		m.played = 0
	case !m.gameState.Paused:
		m.played += time.Duration(dt * float64(time.Second))
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

func (m GameModel) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	id, err := m.store.SaveScore(m.game.ID(), m.opts.Player, m.gameState.Score, m.played)
	if err != nil {
		m.logger.Warn("could not save score", "score", m.gameState.Score, "error", err)
		return
	}
	m.logger.Info("score saved", "id", id, "score", m.gameState.Score, "played", m.played.Round(time.Second))
}

// leave ends the game and forgets held keys.
func (m GameModel) leave() {
	m.held.ReleaseAll()
	if c, ok := m.game.(registry.Closer); ok {
		c.Close()
	}
	m.logger.Info("game left", "score", m.gameState.Score)
}

// saveScreenshot saves the current screen to a file.
func (m GameModel) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) error {
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
