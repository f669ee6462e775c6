package core

import (
	"slices"
	"testing"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionPause)
	f.Set(ActionJump)
	f.Set(ActionJump)
	f.Set(ActionNone)
	f.Set(Action(99))

	if !f.Has(ActionJump) || !f.Has(ActionPause) {
		t.Error("frame should report set actions")
	}
	if f.Has(ActionNone) || f.Has(Action(99)) {
		t.Error("none and unknown actions should never be reported")
	}
	if got := f.Actions(); !slices.Equal(got, []Action{ActionJump, ActionPause}) {
		t.Errorf("Actions() = %v", got)
	}

	copied := f
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove all actions")
	}
	if !copied.Has(ActionJump) {
		t.Error("copies should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionJump:    "Jump",
		ActionRestart: "Restart",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
