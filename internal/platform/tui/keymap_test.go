package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey('w'), core.ActionUp, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey = (%v, %v), expected (%v, %v)", action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyTwoPlayer(t *testing.T) {
	km := NewKeyMapper()
	km.SetTwoPlayer(true)

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
	}{
		{"w", runeKey('w'), core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp2},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown2},
		{"p", runeKey('p'), core.ActionPause},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if action, _ := km.MapKey(tc.msg); action != tc.action {
				t.Errorf("MapKey = %v, expected %v", action, tc.action)
			}
		})
	}

	km.SetTwoPlayer(false)
	if action, _ := km.MapKey(tea.KeyMsg{Type: tea.KeyUp}); action != core.ActionUp {
		t.Errorf("single-player up arrow = %v, expected Up", action)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuAction
	}{
		{"k", runeKey('k'), MenuActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{"q", runeKey('q'), MenuActionQuit},
		{"unbound", runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
				t.Errorf("MapKeyToMenuAction = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestHeldKeysExpire(t *testing.T) {
	h := NewHeldKeys()
	start := time.Unix(1000, 0)
	h.Press(core.ActionRight, start)

	if !h.Frame(start.Add(KeyHold - time.Millisecond)).Has(core.ActionRight) {
		t.Error("key should still be held just before KeyHold")
	}
	if h.Frame(start.Add(KeyHold)).Has(core.ActionRight) {
		t.Error("key should expire at KeyHold")
	}
}

func TestHeldKeysRepeatExtendsHold(t *testing.T) {
	h := NewHeldKeys()
	start := time.Unix(1000, 0)
	h.Press(core.ActionLeft, start)
	h.Press(core.ActionLeft, start.Add(200*time.Millisecond))

	if !h.Frame(start.Add(400 * time.Millisecond)).Has(core.ActionLeft) {
		t.Error("auto-repeat should keep the key held")
	}
}

func TestHeldKeysLatestOpposingWins(t *testing.T) {
	h := NewHeldKeys()
	now := time.Unix(1000, 0)
	h.Press(core.ActionLeft, now)
	h.Press(core.ActionRight, now.Add(10*time.Millisecond))
	h.Press(core.ActionJump, now.Add(20*time.Millisecond))

	frame := h.Frame(now.Add(50 * time.Millisecond))
	if frame.Has(core.ActionLeft) {
		t.Error("left should yield to the later right press")
	}
	if !frame.Has(core.ActionRight) || !frame.Has(core.ActionJump) {
		t.Error("right and jump should be held together")
	}

	h.Press(core.ActionLeft, now.Add(60*time.Millisecond))
	frame = h.Frame(now.Add(70 * time.Millisecond))
	if !frame.Has(core.ActionLeft) || frame.Has(core.ActionRight) {
		t.Error("pressing left again should take over from right")
	}
}

func TestHeldKeysOpposingPerPlayer(t *testing.T) {
	h := NewHeldKeys()
	now := time.Unix(1000, 0)
	h.Press(core.ActionUp, now)
	h.Press(core.ActionUp2, now.Add(10*time.Millisecond))
	h.Press(core.ActionDown2, now.Add(20*time.Millisecond))

	frame := h.Frame(now.Add(50 * time.Millisecond))
	if !frame.Has(core.ActionUp) {
		t.Error("player 2 keys should not cancel player 1's up")
	}
	if frame.Has(core.ActionUp2) || !frame.Has(core.ActionDown2) {
		t.Error("player 2's later down should win over their up")
	}

	h.Press(core.ActionDown, now.Add(60*time.Millisecond))
	frame = h.Frame(now.Add(70 * time.Millisecond))
	if frame.Has(core.ActionUp) || !frame.Has(core.ActionDown) || !frame.Has(core.ActionDown2) {
		t.Error("player 1 should switch to down while player 2 keeps holding down")
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := NewHeldKeys()
	now := time.Unix(1000, 0)
	h.Press(core.ActionUp, now)
	h.Press(core.ActionJump, now)

	h.Release(core.ActionUp)
	frame := h.Frame(now)
	if frame.Has(core.ActionUp) || !frame.Has(core.ActionJump) {
		t.Error("Release should drop only the named key")
	}

	h.ReleaseAll()
	if h.Frame(now).Has(core.ActionJump) {
		t.Error("ReleaseAll should drop every key")
	}
}

func TestFrameTime(t *testing.T) {
	now := time.Unix(1000, 0)

	tests := []struct {
		name string
		prev time.Time
		want float64
	}{
		{"first tick", time.Time{}, 0},
		{"one frame", now.Add(-50 * time.Millisecond), 0.05},
		{"clock went backwards", now.Add(time.Second), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := frameTime(tc.prev, now); got != tc.want {
				t.Errorf("frameTime = %v, expected %v", got, tc.want)
			}
		})
	}
}
