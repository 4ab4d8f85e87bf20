package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
// The same key may resolve to different actions depending on the screen.
type Action int

const (
	ActionNone         Action = iota
	ActionLeft                // Left arrow - move paddle left
	ActionRight               // Right arrow - move paddle right
	ActionSupermodeOn         // Space - enable supermode
	ActionSupermodeOff        // Esc while playing - cancel supermode
	ActionQuit                // Q - exit
	ActionLevelSelect         // S - open level selection
	ActionConfirm             // Enter - confirm selection / dismiss dialog
	ActionDismiss             // Esc on a dialog
	ActionHelp                // H - open help
	ActionNewGame             // N - restart current level after game over
	ActionLevel1              // 1..5 - level choice
	ActionLevel2
	ActionLevel3
	ActionLevel4
	ActionLevel5
	ActionClose // Ctrl+C - the terminal's window close
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
	case ActionSupermodeOn:
		return "SupermodeOn"
	case ActionSupermodeOff:
		return "SupermodeOff"
	case ActionQuit:
		return "Quit"
	case ActionLevelSelect:
		return "LevelSelect"
	case ActionConfirm:
		return "Confirm"
	case ActionDismiss:
		return "Dismiss"
	case ActionHelp:
		return "Help"
	case ActionNewGame:
		return "NewGame"
	case ActionLevel1, ActionLevel2, ActionLevel3, ActionLevel4, ActionLevel5:
		return "Level" + string(rune('1'+int(a-ActionLevel1)))
	case ActionClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// LevelNumber returns the 1-based level number for ActionLevel1..ActionLevel5,
// or 0 for any other action.
func (a Action) LevelNumber() int {
	if a >= ActionLevel1 && a <= ActionLevel5 {
		return int(a-ActionLevel1) + 1
	}
	return 0
}

// InputFrame represents the input state for a single simulation tick.
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
