package widget

import "github.com/neuroedu/tui-statlab/internal/core"

// Button is a clickable labeled region.
type Button struct {
	ID    string
	Label string
	Rect  core.Rect // assigned by the screen's layout pass
}

// NewButton creates a button with the given id and label.
func NewButton(id, label string) *Button {
	return &Button{ID: id, Label: label}
}

// HitTest reports whether the pointer position is inside the button.
func (b *Button) HitTest(x, y int) bool {
	return b.Rect.Contains(x, y)
}
