package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionPress) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionPress)
	if !f.Has(ActionPress) {
		t.Error("Set(ActionPress) not reflected by Has")
	}
	if f.Has(ActionRelease) {
		t.Error("unrelated action reported as set")
	}
}

func TestInputFrameTaps(t *testing.T) {
	f := NewInputFrame()
	f.AddTap(TapCellIndex(3))
	f.AddTap(TapAt(10, 20))

	if !f.Has(ActionTap) {
		t.Error("AddTap should mark ActionTap")
	}
	if len(f.Taps) != 2 || f.Taps[0].Cell != 3 || f.Taps[1].At.X != 10 {
		t.Errorf("taps not kept in order: %+v", f.Taps)
	}

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if len(clone.Taps) != 2 || !clone.Has(ActionTap) {
		t.Error("Clone should not share state with the original")
	}
}

func TestInputFrameMerge(t *testing.T) {
	a := NewInputFrame()
	a.Set(ActionPress)
	a.AddTap(TapObjectID(1))

	b := NewInputFrame()
	b.Set(ActionRelease)
	b.AddTap(TapObjectID(2))

	a.Merge(b)

	if !a.Has(ActionPress) || !a.Has(ActionRelease) {
		t.Error("Merge should union actions")
	}
	if len(a.Taps) != 2 || a.Taps[1].Object != 2 {
		t.Errorf("Merge should append taps in order: %+v", a.Taps)
	}
}

func TestActionString(t *testing.T) {
	if ActionExit.String() != "Exit" {
		t.Errorf("ActionExit.String() = %q", ActionExit.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
