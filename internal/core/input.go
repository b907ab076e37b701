package core

// Action is a semantic input intent, decoupled from the physical key that produced it.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow
	ActionDown              // S, Down arrow
	ActionLeft              // A, Left arrow
	ActionRight             // D, Right arrow
	ActionPause             // Space - pause/resume, also starts a fresh game
	ActionConfirm           // Enter - start, or play again after game over
	ActionRestart           // R - play again after game over
	ActionQuit              // Q, Ctrl+C
	ActionScreenshot        // Ctrl+S
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
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// IsMove reports whether a is one of the four directional actions.
func (a Action) IsMove() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}
