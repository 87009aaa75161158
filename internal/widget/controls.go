package widget

import "github.com/neuroedu/tui-statlab/internal/core"

// PointerResult describes what a pointer event did to a control set.
type PointerResult struct {
	Clicked   *Button // non-nil if a button was pressed
	Changed   bool    // a slider value or cell focus changed
	Committed bool    // a slider drag ended (value committed)
}

// ActionResult describes what a semantic action did to a control set.
type ActionResult struct {
	Changed   bool // a slider value changed
	Committed bool // the change is final (keyboard nudges commit instantly)
}

// Controls routes pointer and focus events to a screen's widgets.
// It owns the shared invariants: slider values stay clamped, at most one
// cell is active, and drag state is cleared on resize.
type Controls struct {
	Sliders []*Slider
	Cells   []*Cell
	Buttons []*Button

	focus int // index into Sliders
}

// HandlePointer dispatches a pointer event. Buttons win over sliders,
// sliders over cells; all hit-testing uses the rectangles assigned by the
// last layout pass.
func (c *Controls) HandlePointer(ev core.PointerEvent) PointerResult {
	switch ev.Kind {
	case core.PointerPress:
		return c.press(ev.X, ev.Y)
	case core.PointerMove:
		return c.drag(ev.X)
	case core.PointerRelease:
		return c.release()
	}
	return PointerResult{}
}

func (c *Controls) press(x, y int) PointerResult {
	for _, b := range c.Buttons {
		if b.HitTest(x, y) {
			return PointerResult{Clicked: b}
		}
	}

	for i, s := range c.Sliders {
		if s.HitTest(x, y) {
			s.Dragging = true
			s.SetFromPointer(x)
			c.focus = i
			return PointerResult{Changed: true}
		}
	}

	// Clicking anywhere re-resolves the active cell.
	var hit *Cell
	for _, cell := range c.Cells {
		if cell.HitTest(x, y) {
			hit = cell
			break
		}
	}
	changed := false
	for _, cell := range c.Cells {
		if cell.Active != (cell == hit) {
			changed = true
		}
		cell.Active = cell == hit
	}
	return PointerResult{Changed: changed}
}

func (c *Controls) drag(x int) PointerResult {
	for _, s := range c.Sliders {
		if s.Dragging {
			s.SetFromPointer(x)
			return PointerResult{Changed: true}
		}
	}
	return PointerResult{}
}

func (c *Controls) release() PointerResult {
	for _, s := range c.Sliders {
		if s.Dragging {
			s.Dragging = false
			return PointerResult{Committed: true}
		}
	}
	return PointerResult{}
}

// HandleAction dispatches focus and nudge actions.
func (c *Controls) HandleAction(a core.Action) ActionResult {
	switch a {
	case core.ActionFocusNext:
		if len(c.Sliders) > 0 {
			c.focus = (c.focus + 1) % len(c.Sliders)
		}
	case core.ActionFocusPrev:
		if len(c.Sliders) > 0 {
			c.focus = (c.focus - 1 + len(c.Sliders)) % len(c.Sliders)
		}
	case core.ActionIncrease:
		if s := c.FocusedSlider(); s != nil {
			s.Nudge(1)
			return ActionResult{Changed: true, Committed: true}
		}
	case core.ActionDecrease:
		if s := c.FocusedSlider(); s != nil {
			s.Nudge(-1)
			return ActionResult{Changed: true, Committed: true}
		}
	}
	return ActionResult{}
}

// HandleDigit routes a digit or backspace to the active cell.
// Returns true if a cell value changed.
func (c *Controls) HandleDigit(r rune) bool {
	cell := c.ActiveCell()
	if cell == nil {
		return false
	}
	switch {
	case r >= '0' && r <= '9':
		before := cell.Value
		cell.AppendDigit(int(r - '0'))
		return cell.Value != before
	case r == '\b':
		cell.Backspace()
		return true
	}
	return false
}

// FocusedSlider returns the slider with keyboard focus, nil if none.
func (c *Controls) FocusedSlider() *Slider {
	if len(c.Sliders) == 0 {
		return nil
	}
	if c.focus < 0 || c.focus >= len(c.Sliders) {
		return nil
	}
	return c.Sliders[c.focus]
}

// ActiveCell returns the active editable cell, nil if none.
func (c *Controls) ActiveCell() *Cell {
	for _, cell := range c.Cells {
		if cell.Active {
			return cell
		}
	}
	return nil
}

// ClearDrag forcibly ends any in-progress drag. Called on window resize so
// a handle is never dragged against a stale track position.
func (c *Controls) ClearDrag() {
	for _, s := range c.Sliders {
		s.Dragging = false
	}
}
