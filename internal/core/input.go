package core

import "math/bits"

// Action is a player intent, independent of the key or button behind it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionJump           // flap; also starts a run
	ActionConfirm        // start a run from the title screen
	ActionBack           // leave the game for the menu
	ActionRestart        // new run after game over
	ActionQuit           // leave the program
	ActionPause          // toggle pause

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionJump:    "Jump",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered during one tick.
// The zero value is an empty frame and frames are copied by value.
type InputFrame struct {
	set uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.set |= 1 << a
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.set&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.set == 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.set = 0
}

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	out := make([]Action, 0, bits.OnesCount32(f.set))
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
