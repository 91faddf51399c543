package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionLaunch) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionLaunch)
	f.Set(ActionLeft)
	if !f.Has(ActionLaunch) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action reported as set")
	}

	f.Clear()
	if f.Has(ActionLaunch) || f.Has(ActionLeft) {
		t.Error("Clear should drop every action")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionLaunch, "Launch"},
		{ActionRestart, "Restart"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestTouchTypeString(t *testing.T) {
	if TouchMove.String() != "move" || TouchTap.String() != "tap" {
		t.Errorf("unexpected touch names %q %q", TouchMove, TouchTap)
	}
}
