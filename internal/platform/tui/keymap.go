package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// KeyHold is how long a movement key counts as held after its last press
// or auto-repeat. Terminals report no key releases.
const KeyHold = 250 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	twoPlayer bool
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// SetTwoPlayer splits the keyboard between two players. W/S stay with
// player 1 and the up/down arrows become player 2's Up2/Down2.
func (km *KeyMapper) SetTwoPlayer(on bool) {
	km.twoPlayer = on
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	if km.twoPlayer {
		switch key {
		case "up":
			return core.ActionUp2, false
		case "down":
			return core.ActionDown2, false
		}
	}

	// Game/menu actions
	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ": // Space for jump and launch
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// opposing pairs resolve to whichever key was pressed last.
// Each player's pair resolves on its own.
var opposing = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionUp2:   core.ActionDown2,
	core.ActionDown2: core.ActionUp2,
}

type keyPress struct {
	at  time.Time
	seq uint64
}

// HeldKeys approximates key-down state from press and repeat events.
// A key is held until KeyHold after its most recent press.
type HeldKeys struct {
	presses map[core.Action]keyPress
	seq     uint64
}

// NewHeldKeys creates an empty tracker.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{presses: make(map[core.Action]keyPress)}
}

// Press records a press or auto-repeat of a held action at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	h.seq++
	h.presses[a] = keyPress{at: now, seq: h.seq}
}

// Release forgets an action immediately.
func (h *HeldKeys) Release(a core.Action) {
	delete(h.presses, a)
}

// ReleaseAll forgets every key, e.g. when leaving a game.
func (h *HeldKeys) ReleaseAll() {
	clear(h.presses)
}

// Frame returns the actions held at now. Expired keys are dropped.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, p := range h.presses {
		if now.Sub(p.at) >= KeyHold {
			delete(h.presses, a)
		}
	}
	for a, p := range h.presses {
		if other, ok := opposing[a]; ok {
			if q, held := h.presses[other]; held && q.seq > p.seq {
				continue
			}
		}
		frame.Set(a)
	}
	return frame
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
