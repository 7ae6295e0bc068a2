package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move up (Pong paddle)
	ActionDown           // S, Down arrow - move down (Pong paddle), duck
	ActionLeft           // A, Left arrow - walk left, move paddle left
	ActionRight          // D, Right arrow - walk right, move paddle right
	ActionJump           // Space - jump, launch
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionUp2            // Up arrow in two-player games - right paddle up
	ActionDown2          // Down arrow in two-player games - right paddle down
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionUp2:
		return "Up2"
	case ActionDown2:
		return "Down2"
	default:
		return "Unknown"
	}
}

// IsHeld reports whether the action describes a key that stays down
// across frames (movement) rather than a one-shot press.
func (a Action) IsHeld() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight, ActionJump, ActionUp2, ActionDown2:
		return true
	}
	return false
}

// InputFrame is the input snapshot for one simulation tick.
// Held actions are present for every frame the key is down; one-shot
// actions (pause, restart) are present for a single frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Merge returns a new frame holding the actions of both frames.
func (f InputFrame) Merge(other InputFrame) InputFrame {
	merged := f.Clone()
	for k, v := range other.Actions {
		if v {
			merged.Actions[k] = true
		}
	}
	return merged
}
