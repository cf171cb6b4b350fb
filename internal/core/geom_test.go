package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestCenteredRect(t *testing.T) {
	outer := NewRect(0, 0, 40, 20)
	inner := outer.CenteredRect(10, 4)

	if inner != NewRect(15, 8, 10, 4) {
		t.Errorf("CenteredRect = %+v", inner)
	}
}

func TestMax(t *testing.T) {
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max failed")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionUndo)

	if !f.Has(ActionLeft) || !f.Has(ActionUndo) {
		t.Error("Has should report set actions")
	}
	if f.Has(ActionRight) {
		t.Error("Has(ActionRight) should be false")
	}
	if got := f.First(ActionUp, ActionDown, ActionLeft, ActionRight); got != ActionLeft {
		t.Errorf("First() = %v, expected Left", got)
	}
	if got := f.First(ActionPause); got != ActionNone {
		t.Errorf("First() = %v, expected None", got)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}

	var zero InputFrame
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionRotateCCW.String() != "RotateCCW" {
		t.Errorf("String() = %q", ActionRotateCCW.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
