package widget

import "github.com/neuroedu/tui-statlab/internal/core"

// MaxCellValue caps editable cells at three digits.
const MaxCellValue = 999

// Cell is an editable non-negative integer cell in a contingency table.
// At most one cell per screen is active at a time; the Controls dispatcher
// enforces this on pointer press.
type Cell struct {
	Value  int
	Active bool
	Rect   core.Rect // assigned by the screen's layout pass
}

// NewCell creates a cell with the given initial value.
func NewCell(value int) *Cell {
	c := &Cell{}
	c.SetValue(value)
	return c
}

// SetValue sets the value, clamped to [0, MaxCellValue].
func (c *Cell) SetValue(v int) {
	c.Value = core.Clamp(v, 0, MaxCellValue)
}

// AppendDigit appends a decimal digit: typing "5" then "3" on a cell
// showing 0 yields 53. Digits that would exceed three digits are ignored.
func (c *Cell) AppendDigit(d int) {
	if d < 0 || d > 9 {
		return
	}
	next := c.Value*10 + d
	if next > MaxCellValue {
		return
	}
	c.Value = next
}

// Backspace removes the last digit, clearing to 0 when exhausted.
func (c *Cell) Backspace() {
	c.Value /= 10
}

// HitTest reports whether the pointer position is inside the cell.
func (c *Cell) HitTest(x, y int) bool {
	return c.Rect.Contains(x, y)
}
