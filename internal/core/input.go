package core

// Action represents a semantic game action, abstracted from physical key presses.
// The run loop works with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionSwapLeft          // A, Left arrow - shift one lane left
	ActionSwapRight         // D, Right arrow - shift one lane right
	ActionSlowMotion        // S - spend a slow-motion use
	ActionDash              // Space - trigger phase dash when energy is full
	ActionRestore           // R on the downed screen - spend shards to revive
	ActionConfirm           // Enter - confirm selection
	ActionBack              // B, Escape - go back
	ActionQuit              // Q, Ctrl+C - exit session
	ActionPause             // P, Escape - pause/unpause run
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSwapLeft:
		return "SwapLeft"
	case ActionSwapRight:
		return "SwapRight"
	case ActionSlowMotion:
		return "SlowMotion"
	case ActionDash:
		return "Dash"
	case ActionRestore:
		return "Restore"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
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
