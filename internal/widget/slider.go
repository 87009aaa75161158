// Package widget provides the shared interactive controls used by every
// test screen: sliders, editable table cells, buttons, and a Controls
// dispatcher that routes pointer and focus events to them. Screens declare
// their controls once; layout assigns the rectangles; the dispatcher keeps
// hit-testing consistent with what was last laid out.
package widget

import (
	"fmt"

	"github.com/neuroedu/tui-statlab/internal/core"
)

// Slider is a horizontal value control.
// Invariant: Min <= Value <= Max after every mutation.
type Slider struct {
	Label  string
	Value  float64
	Min    float64
	Max    float64
	Step   float64 // keyboard nudge amount
	Format string  // value readout format, e.g. "%.0f"
	Suffix string  // e.g. "%"

	Dragging bool
	Track    core.Rect // assigned by the screen's layout pass
}

// NewSlider creates a slider with the given range and initial value.
func NewSlider(label string, value, lo, hi, step float64) *Slider {
	s := &Slider{
		Label:  label,
		Min:    lo,
		Max:    hi,
		Step:   step,
		Format: "%.0f",
	}
	s.SetValue(value)
	return s
}

// SetValue sets the value, clamped to [Min, Max].
func (s *Slider) SetValue(v float64) {
	s.Value = core.ClampF(v, s.Min, s.Max)
}

// Nudge moves the value by n steps, clamped.
func (s *Slider) Nudge(n int) {
	s.SetValue(s.Value + float64(n)*s.Step)
}

// HitTest reports whether the pointer position grabs this slider.
// The track is expanded by one cell of slop on every side.
func (s *Slider) HitTest(x, y int) bool {
	return s.Track.Expand(1).Contains(x, y)
}

// SetFromPointer sets the value proportionally to the pointer's horizontal
// position on the track. Positions left of the track yield exactly Min,
// right of the track exactly Max.
func (s *Slider) SetFromPointer(x int) {
	if s.Track.W <= 1 {
		s.SetValue(s.Min)
		return
	}
	frac := float64(x-s.Track.X) / float64(s.Track.W-1)
	s.SetValue(s.Min + frac*(s.Max-s.Min))
}

// HandleX returns the handle's column on the track for the current value.
func (s *Slider) HandleX() int {
	if s.Max <= s.Min || s.Track.W <= 1 {
		return s.Track.X
	}
	frac := (s.Value - s.Min) / (s.Max - s.Min)
	return s.Track.X + int(frac*float64(s.Track.W-1)+0.5)
}

// ValueText returns the formatted value readout.
func (s *Slider) ValueText() string {
	return fmt.Sprintf(s.Format, s.Value) + s.Suffix
}
