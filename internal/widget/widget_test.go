package widget

import (
	"testing"

	"github.com/neuroedu/tui-statlab/internal/core"
)

func TestSliderClamped(t *testing.T) {
	s := NewSlider("n", 50, 0, 100, 1)

	s.SetValue(-10)
	if s.Value != 0 {
		t.Errorf("SetValue below min: got %v, expected 0", s.Value)
	}
	s.SetValue(500)
	if s.Value != 100 {
		t.Errorf("SetValue above max: got %v, expected 100", s.Value)
	}

	s.SetValue(100)
	s.Nudge(1)
	if s.Value != 100 {
		t.Errorf("Nudge past max: got %v", s.Value)
	}
	s.SetValue(0)
	s.Nudge(-1)
	if s.Value != 0 {
		t.Errorf("Nudge past min: got %v", s.Value)
	}
}

func TestSliderPointerEdges(t *testing.T) {
	s := NewSlider("n", 50, 10, 90, 1)
	s.Track = core.NewRect(20, 5, 30, 1)

	// Left of the track yields exactly min, right of it exactly max.
	s.SetFromPointer(0)
	if s.Value != 10 {
		t.Errorf("pointer left of track: got %v, expected exactly 10", s.Value)
	}
	s.SetFromPointer(100)
	if s.Value != 90 {
		t.Errorf("pointer right of track: got %v, expected exactly 90", s.Value)
	}

	// Track endpoints map to the range endpoints.
	s.SetFromPointer(20)
	if s.Value != 10 {
		t.Errorf("pointer at track start: got %v", s.Value)
	}
	s.SetFromPointer(49)
	if s.Value != 90 {
		t.Errorf("pointer at track end: got %v", s.Value)
	}

	// Midpoint lands mid-range.
	s.SetFromPointer(20 + 29/2)
	if s.Value < 45 || s.Value > 55 {
		t.Errorf("pointer at midpoint: got %v", s.Value)
	}
}

func TestSliderHitSlop(t *testing.T) {
	s := NewSlider("n", 0, 0, 10, 1)
	s.Track = core.NewRect(10, 5, 20, 1)

	if !s.HitTest(10, 5) {
		t.Error("hit on track should grab")
	}
	if !s.HitTest(9, 4) || !s.HitTest(30, 6) {
		t.Error("one cell of slop should grab")
	}
	if s.HitTest(10, 8) || s.HitTest(40, 5) {
		t.Error("far positions should not grab")
	}
}

func TestSliderHandlePosition(t *testing.T) {
	s := NewSlider("n", 0, 0, 100, 1)
	s.Track = core.NewRect(0, 0, 11, 1)

	if got := s.HandleX(); got != 0 {
		t.Errorf("handle at min: %d", got)
	}
	s.SetValue(100)
	if got := s.HandleX(); got != 10 {
		t.Errorf("handle at max: %d", got)
	}
	s.SetValue(50)
	if got := s.HandleX(); got != 5 {
		t.Errorf("handle at midpoint: %d", got)
	}
}

func TestCellDigitAppend(t *testing.T) {
	c := NewCell(0)

	c.AppendDigit(5)
	c.AppendDigit(3)
	if c.Value != 53 {
		t.Errorf("append 5 then 3: got %d, expected 53", c.Value)
	}

	c.AppendDigit(7)
	if c.Value != 537 {
		t.Errorf("third digit: got %d", c.Value)
	}

	// Fourth digit would exceed 999 and is ignored.
	c.AppendDigit(1)
	if c.Value != 537 {
		t.Errorf("fourth digit should be ignored: got %d", c.Value)
	}
}

func TestCellBackspace(t *testing.T) {
	c := NewCell(537)

	c.Backspace()
	if c.Value != 53 {
		t.Errorf("backspace: got %d, expected 53", c.Value)
	}
	c.Backspace()
	c.Backspace()
	if c.Value != 0 {
		t.Errorf("exhausted backspace: got %d, expected 0", c.Value)
	}
	c.Backspace()
	if c.Value != 0 {
		t.Errorf("backspace on 0: got %d", c.Value)
	}
}

func TestControlsSingleActiveCell(t *testing.T) {
	a := NewCell(1)
	a.Rect = core.NewRect(0, 0, 6, 3)
	b := NewCell(2)
	b.Rect = core.NewRect(10, 0, 6, 3)
	ctrls := &Controls{Cells: []*Cell{a, b}}

	ctrls.HandlePointer(core.PointerEvent{Kind: core.PointerPress, X: 2, Y: 1})
	if !a.Active || b.Active {
		t.Error("first cell should be the only active cell")
	}

	ctrls.HandlePointer(core.PointerEvent{Kind: core.PointerPress, X: 12, Y: 1})
	if a.Active || !b.Active {
		t.Error("activation should move to the second cell")
	}

	// Clicking empty space deactivates.
	ctrls.HandlePointer(core.PointerEvent{Kind: core.PointerPress, X: 30, Y: 10})
	if a.Active || b.Active {
		t.Error("clicking outside should deactivate all cells")
	}
}

func TestControlsDragLifecycle(t *testing.T) {
	s := NewSlider("n", 50, 0, 100, 1)
	s.Track = core.NewRect(10, 5, 21, 1)
	ctrls := &Controls{Sliders: []*Slider{s}}

	res := ctrls.HandlePointer(core.PointerEvent{Kind: core.PointerPress, X: 10, Y: 5})
	if !res.Changed || !s.Dragging {
		t.Fatal("press on track should start a drag")
	}
	if s.Value != 0 {
		t.Errorf("press at track start: value %v", s.Value)
	}

	ctrls.HandlePointer(core.PointerEvent{Kind: core.PointerMove, X: 30, Y: 5})
	if s.Value != 100 {
		t.Errorf("drag to track end: value %v", s.Value)
	}

	res = ctrls.HandlePointer(core.PointerEvent{Kind: core.PointerRelease, X: 30, Y: 5})
	if !res.Committed || s.Dragging {
		t.Error("release should end the drag and commit")
	}
}

func TestControlsClearDragOnResize(t *testing.T) {
	s := NewSlider("n", 50, 0, 100, 1)
	s.Track = core.NewRect(10, 5, 21, 1)
	ctrls := &Controls{Sliders: []*Slider{s}}

	ctrls.HandlePointer(core.PointerEvent{Kind: core.PointerPress, X: 15, Y: 5})
	if !s.Dragging {
		t.Fatal("expected drag in progress")
	}

	ctrls.ClearDrag()
	if s.Dragging {
		t.Error("resize must forcibly clear the drag flag")
	}
}

func TestControlsFocusAndNudge(t *testing.T) {
	a := NewSlider("a", 5, 0, 10, 1)
	b := NewSlider("b", 5, 0, 10, 1)
	ctrls := &Controls{Sliders: []*Slider{a, b}}

	if ctrls.FocusedSlider() != a {
		t.Fatal("initial focus should be the first slider")
	}

	ctrls.HandleAction(core.ActionFocusNext)
	if ctrls.FocusedSlider() != b {
		t.Error("focus should advance")
	}
	ctrls.HandleAction(core.ActionFocusNext)
	if ctrls.FocusedSlider() != a {
		t.Error("focus should wrap")
	}

	res := ctrls.HandleAction(core.ActionIncrease)
	if !res.Changed || !res.Committed {
		t.Error("nudge should report a committed change")
	}
	if a.Value != 6 {
		t.Errorf("nudge result: %v", a.Value)
	}
}

func TestControlsButtonsWinOverSliders(t *testing.T) {
	btn := NewButton("calc", "Calculate")
	btn.Rect = core.NewRect(10, 5, 10, 1)
	s := NewSlider("n", 5, 0, 10, 1)
	s.Track = core.NewRect(10, 5, 10, 1) // same spot on purpose
	ctrls := &Controls{Sliders: []*Slider{s}, Buttons: []*Button{btn}}

	res := ctrls.HandlePointer(core.PointerEvent{Kind: core.PointerPress, X: 12, Y: 5})
	if res.Clicked != btn {
		t.Error("button should take the press")
	}
	if s.Dragging {
		t.Error("slider should not start dragging under a button")
	}
}

func TestControlsHandleDigit(t *testing.T) {
	c := NewCell(0)
	c.Rect = core.NewRect(0, 0, 6, 3)
	c.Active = true
	ctrls := &Controls{Cells: []*Cell{c}}

	if !ctrls.HandleDigit('4') || c.Value != 4 {
		t.Errorf("digit: value %d", c.Value)
	}
	ctrls.HandleDigit('2')
	if c.Value != 42 {
		t.Errorf("second digit: value %d", c.Value)
	}
	ctrls.HandleDigit('\b')
	if c.Value != 4 {
		t.Errorf("backspace: value %d", c.Value)
	}

	c.Active = false
	if ctrls.HandleDigit('9') {
		t.Error("digits without an active cell should be ignored")
	}
}
