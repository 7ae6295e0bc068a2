package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/presence"
)

func newTestSession(t *testing.T) (SessionModel, *presence.Registry) {
	t.Helper()
	reg := presence.NewRegistry()
	reg.Join("s1", "alice", time.Unix(1000, 0))

	m := NewSessionModel(nil, core.DefaultConfig(), "alice", log.New(io.Discard))
	m.presence = reg
	m.sessionID = "s1"
	return m, reg
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m, reg := newTestSession(t)

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("selecting a game should start it")
	}
	if len(reg.Playing()) != 1 {
		t.Errorf("Playing = %v, expected the session in a game", reg.Playing())
	}

	m = updateSession(t, m, runeKey('p'))
	m = updateSession(t, m, TickMsg(time.Unix(2000, 0)))
	m = updateSession(t, m, runeKey('b'))
	if m.gameModel != nil {
		t.Fatal("B while paused should return to the menu")
	}
	if len(reg.Playing()) != 0 {
		t.Error("returning to the menu should clear the game")
	}
	if !strings.Contains(m.View(), "1 player online") {
		t.Error("menu should show who is online")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m, _ := newTestSession(t)

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.board == nil {
		t.Fatal("tab should open the scoreboard")
	}

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.board != nil {
		t.Fatal("esc should leave the scoreboard")
	}
	if m.quitting {
		t.Error("leaving the scoreboard should not end the session")
	}
}

func TestSessionQuit(t *testing.T) {
	m, _ := newTestSession(t)

	next, cmd := m.Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}
