// Package paired implements the paired t-test visualizer: before/after
// biomarker measurements per subject, editable by dragging a value cell
// vertically, with a diverging bar chart of the per-subject differences.
package paired

import (
	"fmt"

	"github.com/neuroedu/tui-statlab/internal/config"
	"github.com/neuroedu/tui-statlab/internal/core"
	"github.com/neuroedu/tui-statlab/internal/layout"
	"github.com/neuroedu/tui-statlab/internal/registry"
	"github.com/neuroedu/tui-statlab/internal/stattest"
	"github.com/neuroedu/tui-statlab/internal/visual/chart"
	"github.com/neuroedu/tui-statlab/internal/widget"
)

const testID = "paired"

// dragStep is the value change per cell of vertical pointer movement,
// and the keyboard nudge amount.
const dragStep = 0.5

const valueW = 7

var configPath string

// SetConfigPath overrides the dataset config file for this screen.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register(testID, func() registry.Visualizer {
		return New(loadConfig())
	})
}

func loadConfig() config.PairedConfig {
	cfg, err := config.LoadPaired(configPath)
	if err != nil {
		return config.DefaultPairedConfig()
	}
	return cfg
}

// Screen is the paired t-test screen.
type Screen struct {
	cfg config.PairedConfig

	before []float64
	after  []float64

	// Selection: selCol is 0 for before, 1 for after.
	selRow, selCol int
	selected       bool
	dragging       bool
	lastY          int

	// Value cell rectangles, assigned by the layout pass.
	beforeRects []core.Rect
	afterRects  []core.Rect

	calc  *widget.Button
	clear *widget.Button

	tree layout.Tree

	result    stattest.PairedResult
	hasResult bool
	pending   bool
}

// New creates the screen with the given dataset configuration.
func New(cfg config.PairedConfig) *Screen {
	n := len(cfg.Before)
	if n == 0 || len(cfg.After) != n || len(cfg.Subjects) != n {
		cfg = config.DefaultPairedConfig()
	}
	s := &Screen{
		cfg:   cfg,
		calc:  widget.NewButton("calc", "Calculate"),
		clear: widget.NewButton("reset", "Reset"),
	}
	s.resetValues()
	return s
}

func (s *Screen) resetValues() {
	s.before = append([]float64(nil), s.cfg.Before...)
	s.after = append([]float64(nil), s.cfg.After...)
	s.selected = false
	s.dragging = false
}

// ID returns the registry identifier.
func (s *Screen) ID() string { return testID }

// Title returns the display name.
func (s *Screen) Title() string { return "Paired T-Test" }

// Reset restores the configured dataset and computes the initial result.
func (s *Screen) Reset(cfg core.RuntimeConfig) {
	s.resetValues()
	s.Resize(cfg.ScreenW, cfg.ScreenH)
	s.compute()
	s.pending = false
}

// Resize recomputes the layout tree and all cell rectangles.
func (s *Screen) Resize(width, height int) {
	s.dragging = false

	bodyMin := len(s.before) + 1 // header row plus one row per subject
	s.tree = layout.Compute(width, height, []layout.Region{
		{Name: "title", Min: 1},
		{Name: "body", Min: bodyMin, Max: bodyMin, Flex: 1},
		{Name: "buttons", Min: 1},
		{Name: "results", Min: 6, Max: 9, Flex: 1},
		{Name: "footer", Min: 1},
	})
	s.place()
}

func (s *Screen) place() {
	body := s.tree.Rect("body")
	cols := layout.Columns(body, 2, 4)
	table := cols[0]

	labelW := s.subjectWidth()
	s.beforeRects = s.beforeRects[:0]
	s.afterRects = s.afterRects[:0]
	for i := range s.before {
		y := table.Y + 1 + i
		s.beforeRects = append(s.beforeRects, core.NewRect(table.X+labelW+2, y, valueW, 1))
		s.afterRects = append(s.afterRects, core.NewRect(table.X+labelW+2+valueW+2, y, valueW, 1))
	}

	btnRow := s.tree.Rect("buttons")
	bcols := layout.Columns(btnRow, 2, 2)
	s.calc.Rect = layout.CenterIn(bcols[0], 15, 1)
	s.clear.Rect = layout.CenterIn(bcols[1], 11, 1)
}

func (s *Screen) subjectWidth() int {
	w := 0
	for _, name := range s.cfg.Subjects {
		if len(name) > w {
			w = len(name)
		}
	}
	return w
}

func (s *Screen) compute() {
	s.result = stattest.Paired(s.before, s.after)
	s.hasResult = true
}

func (s *Screen) selectedValue() *float64 {
	if !s.selected {
		return nil
	}
	if s.selCol == 0 {
		return &s.before[s.selRow]
	}
	return &s.after[s.selRow]
}

func (s *Screen) adjustSelected(steps int) {
	v := s.selectedValue()
	if v == nil {
		return
	}
	next := *v + float64(steps)*dragStep
	if next < 0 {
		next = 0
	}
	*v = next
	s.compute()
}

// HandleAction applies a semantic action. Tab cycles through the value
// cells row by row; arrows adjust the selected value.
func (s *Screen) HandleAction(a core.Action) {
	n := len(s.before)
	switch a {
	case core.ActionCalculate:
		s.compute()
		s.pending = true
	case core.ActionReset:
		s.resetValues()
		s.compute()
	case core.ActionFocusNext:
		if !s.selected {
			s.selected = true
			s.selRow, s.selCol = 0, 0
			return
		}
		idx := (s.selRow*2 + s.selCol + 1) % (2 * n)
		s.selRow, s.selCol = idx/2, idx%2
	case core.ActionFocusPrev:
		if !s.selected {
			s.selected = true
			s.selRow, s.selCol = n-1, 1
			return
		}
		idx := (s.selRow*2 + s.selCol - 1 + 2*n) % (2 * n)
		s.selRow, s.selCol = idx/2, idx%2
	case core.ActionIncrease:
		s.adjustSelected(1)
	case core.ActionDecrease:
		s.adjustSelected(-1)
	}
}

// HandleDigit is a no-op: values are adjusted by dragging, not typing.
func (s *Screen) HandleDigit(r rune) {}

// HandlePointer applies a pointer event. Pressing a value cell selects it
// and starts a vertical drag; moving up increases the value, down
// decreases it, floored at zero.
func (s *Screen) HandlePointer(ev core.PointerEvent) {
	switch ev.Kind {
	case core.PointerPress:
		if s.calc.HitTest(ev.X, ev.Y) {
			s.compute()
			s.pending = true
			return
		}
		if s.clear.HitTest(ev.X, ev.Y) {
			s.resetValues()
			s.compute()
			return
		}
		for i := range s.before {
			if s.beforeRects[i].Contains(ev.X, ev.Y) {
				s.selected, s.selRow, s.selCol = true, i, 0
				s.dragging = true
				s.lastY = ev.Y
				return
			}
			if s.afterRects[i].Contains(ev.X, ev.Y) {
				s.selected, s.selRow, s.selCol = true, i, 1
				s.dragging = true
				s.lastY = ev.Y
				return
			}
		}
		s.selected = false
	case core.PointerMove:
		if !s.dragging {
			return
		}
		delta := s.lastY - ev.Y // up increases
		s.lastY = ev.Y
		s.adjustSelected(delta)
	case core.PointerRelease:
		s.dragging = false
	}
}

// Render draws the screen.
func (s *Screen) Render(dst *core.Screen) {
	title := s.tree.Rect("title")
	dst.DrawTextCentered(title.X, title.Y, title.W, s.Title(), core.ColorBrightWhite)

	s.renderTable(dst)
	s.renderChart(dst)
	widget.DrawButton(dst, s.calc)
	widget.DrawButton(dst, s.clear)
	s.renderResults(dst)

	footer := s.tree.Rect("footer")
	dst.DrawTextColored(footer.X, footer.Y,
		"click+drag a value · tab select · ←/→ adjust · enter calculate · r reset · esc menu",
		core.ColorGray)
}

func (s *Screen) renderTable(dst *core.Screen) {
	body := s.tree.Rect("body")
	cols := layout.Columns(body, 2, 4)
	table := cols[0]
	labelW := s.subjectWidth()

	dst.DrawTextColored(table.X+labelW+2, table.Y, "Before", core.ColorBlue)
	dst.DrawTextColored(table.X+labelW+2+valueW+2, table.Y, "After", core.ColorRed)
	dst.DrawTextColored(table.X+labelW+2+2*(valueW+2), table.Y, "Diff", core.ColorWhite)

	for i, name := range s.cfg.Subjects {
		y := table.Y + 1 + i
		dst.DrawText(table.X, y, name)

		s.renderValue(dst, s.beforeRects[i], s.before[i], i, 0)
		s.renderValue(dst, s.afterRects[i], s.after[i], i, 1)

		diff := s.before[i] - s.after[i]
		c := core.ColorGreen
		if diff < 0 {
			c = core.ColorRed
		}
		dst.DrawTextColored(table.X+labelW+2+2*(valueW+2), y, fmt.Sprintf("%+.1f", diff), c)
	}
}

func (s *Screen) renderValue(dst *core.Screen, r core.Rect, v float64, row, col int) {
	c := core.ColorWhite
	if s.selected && s.selRow == row && s.selCol == col {
		c = core.ColorBrightCyan
	}
	dst.DrawTextColored(r.X, r.Y, fmt.Sprintf("%6.1f", v), c)
}

func (s *Screen) renderChart(dst *core.Screen) {
	body := s.tree.Rect("body")
	cols := layout.Columns(body, 2, 4)
	area := cols[1]

	dst.DrawTextColored(area.X, area.Y, "Difference (before − after)", core.ColorWhite)
	bars := core.NewRect(area.X, area.Y+1, area.W, area.H-1)
	diffs := make([]float64, len(s.before))
	for i := range s.before {
		diffs[i] = s.before[i] - s.after[i]
	}
	chart.DivergingHBars(dst, bars, s.cfg.Subjects, diffs, s.subjectWidth()+1)
}

func (s *Screen) renderResults(dst *core.Screen) {
	area := s.tree.Rect("results")
	if !s.hasResult {
		return
	}

	r := s.result
	dst.DrawText(area.X, area.Y,
		fmt.Sprintf("mean before = %.2f    mean after = %.2f    mean diff = %.2f",
			r.MeanBefore, r.MeanAfter, r.MeanDiff))
	dst.DrawText(area.X, area.Y+1,
		fmt.Sprintf("sd of diffs = %.2f    se = %.2f", r.StdDiff, r.StdErr))
	dst.DrawTextColored(area.X, area.Y+2,
		fmt.Sprintf("t = %.4f    p %s    df = %d", r.Stat, chart.FormatP(r.PValue), r.DF),
		core.ColorBrightWhite)

	if r.Status == stattest.StatusDegenerate {
		dst.DrawTextColored(area.X, area.Y+3, "Cannot compute: "+r.Reason, core.ColorYellow)
		return
	}

	dst.DrawText(area.X, area.Y+3,
		fmt.Sprintf("95%% CI of the mean difference: [%.2f, %.2f]", r.CILower, r.CIUpper))

	if r.PValue < 0.05 {
		dst.DrawTextColored(area.X, area.Y+5,
			"p < 0.05 — the treatment changed the biomarker level", core.ColorBrightGreen)
	} else {
		dst.DrawTextColored(area.X, area.Y+5,
			"p ≥ 0.05 — no evidence of a before/after change", core.ColorGray)
	}
}

// TakeSnapshot reports the latest explicit calculation exactly once.
func (s *Screen) TakeSnapshot() (core.ResultSnapshot, bool) {
	if !s.pending || !s.hasResult {
		return core.ResultSnapshot{}, false
	}
	s.pending = false
	return core.ResultSnapshot{
		TestID:    testID,
		Statistic: s.result.Stat,
		PValue:    s.result.PValue,
		DF:        s.result.DF,
	}, true
}
