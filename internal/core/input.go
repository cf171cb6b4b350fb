package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games react to intents; the platform owns the key bindings.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - slide tiles up
	ActionDown             // S, Down arrow - slide tiles down
	ActionLeft             // A, Left arrow - slide tiles left
	ActionRight            // D, Right arrow - slide tiles right
	ActionConfirm          // Enter - confirm selection, keep playing after a win
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R - start a new game
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
	ActionUndo             // U, Z - revert the last move
	ActionTranspose        // T
	ActionRotateCW         // ]
	ActionRotateCCW        // [
	ActionMirrorV          // V - swap rows top to bottom
	ActionMirrorH          // H - swap columns left to right
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
	ActionUndo:      "Undo",
	ActionTranspose: "Transpose",
	ActionRotateCW:  "RotateCW",
	ActionRotateCCW: "RotateCCW",
	ActionMirrorV:   "MirrorV",
	ActionMirrorH:   "MirrorH",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame holds the actions triggered during one simulation tick.
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

// First returns the first of candidates present in the frame, in the given
// order, or ActionNone.
func (f InputFrame) First(candidates ...Action) Action {
	for _, a := range candidates {
		if f.Actions[a] {
			return a
		}
	}
	return ActionNone
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
