package widget

import "github.com/neuroedu/tui-statlab/internal/core"

// Drawing for the shared widgets. Every screen renders its controls through
// these helpers so the visuals stay consistent across the five tests.

// DrawSlider renders a slider row: label, track with handle, value readout.
// The focused slider gets a highlighted track.
func DrawSlider(dst *core.Screen, s *Slider, focused bool) {
	labelX := s.Track.X - len(s.Label) - 1
	dst.DrawText(labelX, s.Track.Y, s.Label)

	trackColor := core.ColorGray
	if focused || s.Dragging {
		trackColor = core.ColorBlue
	}
	dst.DrawHLine(s.Track.X, s.Track.Y, s.Track.W, '─', trackColor)

	handleColor := core.ColorBlue
	if s.Dragging {
		handleColor = core.ColorBrightBlue
	}
	dst.SetCell(s.HandleX(), s.Track.Y, '●', handleColor)

	dst.DrawTextColored(s.Track.Right()+2, s.Track.Y, s.ValueText(), core.ColorWhite)
}

// DrawCell renders an editable table cell with its value right-aligned.
func DrawCell(dst *core.Screen, c *Cell) {
	border := core.ColorGray
	if c.Active {
		border = core.ColorBrightCyan
	}
	dst.DrawBox(c.Rect, border)

	text := itoa(c.Value)
	inner := c.Rect.Inset(1)
	dst.DrawTextColored(inner.Right()-len(text), inner.Y, text, core.ColorWhite)
}

// DrawButton renders a bracketed button label centered in its rect.
func DrawButton(dst *core.Screen, b *Button) {
	_, cy := b.Rect.Center()
	dst.DrawTextCentered(b.Rect.X, cy, b.Rect.W, "[ "+b.Label+" ]", core.ColorBrightGreen)
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	var buf [4]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
