// Package chart draws the small data graphics shared by the test screens:
// grouped bar charts, diverging difference bars, dot plots, and histograms.
// Everything renders into a core.Screen within a caller-supplied rectangle.
package chart

import (
	"fmt"

	"github.com/neuroedu/tui-statlab/internal/core"
)

// GroupedBars draws one vertical bar per (category, series) pair. Bars are
// scaled to the tallest value. The bottom row of the area holds the
// category labels; the row above the bars holds the value captions.
func GroupedBars(dst *core.Screen, area core.Rect, labels []string, series [][]float64, colors []core.Color) {
	n := len(labels)
	if n == 0 || len(series) == 0 || area.H < 4 {
		return
	}

	maxVal := 0.0
	for _, s := range series {
		for _, v := range s {
			if v > maxVal {
				maxVal = v
			}
		}
	}

	groupW := area.W / n
	barW := (groupW - 1) / len(series)
	if barW < 1 {
		barW = 1
	}

	barTop := area.Y + 1 // caption row above
	barBottom := area.Bottom() - 2
	maxH := barBottom - barTop + 1

	for i := 0; i < n; i++ {
		gx := area.X + i*groupW
		for j, s := range series {
			if i >= len(s) {
				continue
			}
			v := s[i]
			h := 0
			if maxVal > 0 {
				h = int(v/maxVal*float64(maxH) + 0.5)
			}
			if v > 0 && h == 0 {
				h = 1
			}
			bx := gx + j*barW
			c := colors[j%len(colors)]
			for y := barBottom; y > barBottom-h; y-- {
				dst.DrawHLine(bx, y, barW, '█', c)
			}
			caption := fmt.Sprintf("%.0f", v)
			if h > 0 && barBottom-h >= barTop-1 {
				dst.DrawTextColored(bx, barBottom-h, caption, c)
			}
		}
		dst.DrawTextCentered(gx, area.Bottom()-1, groupW-1, labels[i], core.ColorWhite)
	}
}

// Legend draws colored series names right-aligned on the given row.
func Legend(dst *core.Screen, area core.Rect, names []string, colors []core.Color) {
	x := area.Right()
	for i := len(names) - 1; i >= 0; i-- {
		entry := "█ " + names[i]
		x -= len(entry) + 2
		dst.DrawTextColored(x, area.Y, entry, colors[i%len(colors)])
	}
}

// DivergingHBars draws one horizontal bar per value around a central zero
// axis: positive values extend right, negative left. Labels go on the left
// edge, the value caption at the bar's tip. Rows beyond the area height
// are clipped.
func DivergingHBars(dst *core.Screen, area core.Rect, labels []string, values []float64, labelW int) {
	if len(values) == 0 || area.W <= labelW+4 {
		return
	}

	maxAbs := 0.0
	for _, v := range values {
		a := v
		if a < 0 {
			a = -a
		}
		if a > maxAbs {
			maxAbs = a
		}
	}

	axisX := labelW + area.X + (area.W-labelW)/2
	halfW := (area.W - labelW) / 2
	if halfW < 1 {
		halfW = 1
	}

	for i, v := range values {
		y := area.Y + i
		if y >= area.Bottom() {
			break
		}
		if i < len(labels) {
			dst.DrawText(area.X, y, labels[i])
		}
		dst.SetCell(axisX, y, '│', core.ColorGray)

		w := 0
		if maxAbs > 0 {
			a := v
			if a < 0 {
				a = -a
			}
			// Leave room for the value caption past the bar tip.
			w = int(a / maxAbs * float64(halfW-7))
			if w < 0 {
				w = 0
			}
		}
		caption := fmt.Sprintf("%.1f", v)
		if v >= 0 {
			dst.DrawHLine(axisX+1, y, w, '█', core.ColorGreen)
			dst.DrawTextColored(axisX+2+w, y, caption, core.ColorGreen)
		} else {
			dst.DrawHLine(axisX-w, y, w, '█', core.ColorRed)
			dst.DrawTextColored(axisX-w-1-len(caption), y, caption, core.ColorRed)
		}
	}
}

// DotPlot stacks one dot per value along a horizontal axis spanning
// [lo, hi]. Dots at the same column pile upward from the axis row at the
// bottom of the area.
func DotPlot(dst *core.Screen, area core.Rect, values []float64, lo, hi float64, c core.Color) {
	if area.H < 2 || hi <= lo {
		return
	}
	axisY := area.Bottom() - 1
	dst.DrawHLine(area.X, axisY, area.W, '─', core.ColorGray)

	heights := make(map[int]int)
	for _, v := range values {
		x := ValueToX(area, v, lo, hi)
		heights[x]++
		y := axisY - heights[x]
		if y < area.Y {
			y = area.Y
		}
		dst.SetCell(x, y, '●', c)
	}
}

// Histogram bins the values into one bin per column over [lo, hi] and
// draws the counts as vertical bars filling the area above the bottom row.
func Histogram(dst *core.Screen, area core.Rect, values []float64, lo, hi float64, fill rune, c core.Color) {
	if area.W < 2 || area.H < 2 || hi <= lo {
		return
	}
	counts := make([]int, area.W)
	maxCount := 0
	for _, v := range values {
		x := ValueToX(area, v, lo, hi) - area.X
		if x < 0 || x >= area.W {
			continue
		}
		counts[x]++
		if counts[x] > maxCount {
			maxCount = counts[x]
		}
	}
	if maxCount == 0 {
		return
	}

	bottom := area.Bottom() - 1
	maxH := area.H - 1
	for i, cnt := range counts {
		h := int(float64(cnt)/float64(maxCount)*float64(maxH) + 0.5)
		if cnt > 0 && h == 0 {
			h = 1
		}
		for y := bottom; y > bottom-h; y-- {
			dst.SetCell(area.X+i, y, fill, c)
		}
	}
}

// MarkerLine draws a labeled vertical line at the axis position of value.
func MarkerLine(dst *core.Screen, area core.Rect, value, lo, hi float64, label string, c core.Color) {
	if hi <= lo {
		return
	}
	x := ValueToX(area, value, lo, hi)
	for y := area.Y + 1; y < area.Bottom()-1; y++ {
		dst.SetCell(x, y, '┊', c)
	}
	dst.DrawTextColored(x+1, area.Y, label, c)
}

// ValueToX maps a value in [lo, hi] to a column within the area, clamped
// to the area's horizontal bounds.
func ValueToX(area core.Rect, v, lo, hi float64) int {
	frac := (v - lo) / (hi - lo)
	x := area.X + int(frac*float64(area.W-1)+0.5)
	return core.Clamp(x, area.X, area.Right()-1)
}

// FormatP renders a p-value the way the screens display it: very small
// values show as a bound instead of a misleading zero.
func FormatP(p float64) string {
	if p < 0.0001 {
		return "< 0.0001"
	}
	return fmt.Sprintf("= %.4f", p)
}
