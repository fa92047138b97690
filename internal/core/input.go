package core

import "fmt"

// Action represents a semantic game action, abstracted from physical key presses
// and pointer gestures. The platform maps raw input to actions; games never see keys.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Enter, or click on the start prompt
	ActionFlap           // Space, Up, W, mouse press - primary action
	ActionRestart        // R key - leave the game over screen
	ActionQuit           // Q, Ctrl+C - exit game/session (host only)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionFlap:
		return "Flap"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction converts a name produced by String back into an Action.
func ParseAction(s string) (Action, error) {
	for a := ActionNone; a <= ActionQuit; a++ {
		if a.String() == s {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("core: unknown action %q", s)
}

// MarshalText encodes the action by name so recorded input stays readable.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes an action name.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// InputFrame buffers the actions received between two simulation ticks.
// Order is preserved: a Start followed by a Flap is not the same as the reverse.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{}
	for _, a := range actions {
		f.Push(a)
	}
	return f
}

// Push appends an action to the frame. ActionNone is dropped.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the buffered actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of buffered actions.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets all actions for the next frame, keeping the backing storage.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{}
	if len(f.actions) > 0 {
		clone.actions = append([]Action(nil), f.actions...)
	}
	return clone
}
