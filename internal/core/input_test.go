package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := Frame(ActionLeft, ActionRotate)

	if !f.Has(ActionLeft) || !f.Has(ActionRotate) {
		t.Errorf("Frame() missing actions: %v", f.Actions)
	}
	if f.Has(ActionHardDrop) {
		t.Error("Has(HardDrop) = true, expected false")
	}

	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Has(Left) after Clear = true, expected false")
	}

	var zero InputFrame
	if zero.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set() on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionHardDrop, "HardDrop"},
		{ActionAutopilot, "Autopilot"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
