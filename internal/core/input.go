package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - nudge racket left
	ActionRight          // D, Right arrow - nudge racket right
	ActionLaunch         // Space - launch the ball
	ActionUp             // W, Up arrow - menu navigation
	ActionDown           // S, Down arrow - menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionLaunch:
		return "Launch"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
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
	default:
		return "Unknown"
	}
}

// InputFrame represents the discrete actions triggered during one simulation tick.
// Continuous input (motion and touch samples) travels separately as Samples.
type InputFrame struct {
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
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Sample is one immutable reading from a continuous input source.
// Implementations are GyroSample and TouchEvent.
type Sample interface {
	sample()
}

// GyroSample is a gyroscope reading. Axis values are rotation rates used
// directly as horizontal racket deltas.
type GyroSample struct {
	X, Y, Z     float64
	TimestampMs int64
}

func (GyroSample) sample() {}

// TouchType distinguishes drag movement from taps.
type TouchType int

const (
	TouchMove TouchType = iota
	TouchTap
)

// String returns the wire name of the touch type.
func (t TouchType) String() string {
	if t == TouchTap {
		return "tap"
	}
	return "move"
}

// TouchEvent is a discrete gesture. DeltaX is meaningful for moves,
// LocationX/LocationY (world coordinates) for taps.
type TouchEvent struct {
	Type      TouchType
	DeltaX    float64
	LocationX float64
	LocationY float64
}

func (TouchEvent) sample() {}
