package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
	"github.com/vovakirdan/canvas-arcade/internal/storage"
)

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestMenuSelectsGame(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	if len(m.items) == 0 {
		t.Fatal("menu should list registered games")
	}

	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	sel := m.Selected()
	if sel == nil || sel.GameID != m.items[0].GameID {
		t.Fatalf("Selected = %+v, expected the first game", sel)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := updateMenu(t, NewMenuModel(nil, core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = updateMenu(t, NewMenuModel(nil, core.DefaultConfig()), runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit the menu")
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if _, err := store.SaveScore("stub", "tester", 4321, time.Minute); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	m := NewMenuModel(store, core.DefaultConfig())
	if !strings.Contains(m.View(), "(best 4321)") {
		t.Error("menu should show the stored high score")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := updateMenu(t, NewMenuModel(nil, core.DefaultConfig()), tea.WindowSizeMsg{Width: 100, Height: 30})
	if cfg := m.Config(); cfg.ScreenW != 100 || cfg.ScreenH != 30 {
		t.Errorf("config = %dx%d, expected 100x30", cfg.ScreenW, cfg.ScreenH)
	}
}
