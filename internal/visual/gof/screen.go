// Package gof implements the chi-square goodness-of-fit visualizer:
// observed genotype counts against expected percentages, both adjustable
// with sliders, with a grouped observed-vs-expected bar chart.
package gof

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

const testID = "gof"

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

func loadConfig() config.GofConfig {
	cfg, err := config.LoadGof(configPath)
	if err != nil {
		return config.DefaultGofConfig()
	}
	return cfg
}

// Screen is the goodness-of-fit test screen.
type Screen struct {
	cfg config.GofConfig

	observed []*widget.Slider
	expected []*widget.Slider
	calc     *widget.Button
	clear    *widget.Button
	controls widget.Controls

	tree layout.Tree

	result    stattest.ChiSquareResult
	hasResult bool
	pending   bool
}

// New creates the screen with the given dataset configuration.
func New(cfg config.GofConfig) *Screen {
	s := &Screen{cfg: cfg}
	s.buildControls()
	return s
}

func (s *Screen) buildControls() {
	n := len(s.cfg.Categories)
	if n == 0 || len(s.cfg.Observed) != n || len(s.cfg.ExpectedPct) != n {
		s.cfg = config.DefaultGofConfig()
	}

	obsMax := float64(s.cfg.ObservedMax)
	if obsMax <= 0 {
		obsMax = 150
	}

	s.observed = s.observed[:0]
	s.expected = s.expected[:0]
	for i, cat := range s.cfg.Categories {
		obs := widget.NewSlider(cat, float64(s.cfg.Observed[i]), 0, obsMax, 1)
		s.observed = append(s.observed, obs)

		exp := widget.NewSlider(cat, s.cfg.ExpectedPct[i], 0, 100, 1)
		exp.Format = "%.1f"
		exp.Suffix = "%"
		s.expected = append(s.expected, exp)
	}

	s.calc = widget.NewButton("calc", "Calculate")
	s.clear = widget.NewButton("reset", "Reset")

	s.controls = widget.Controls{
		Sliders: append(append([]*widget.Slider{}, s.observed...), s.expected...),
		Buttons: []*widget.Button{s.calc, s.clear},
	}
}

// ID returns the registry identifier.
func (s *Screen) ID() string { return testID }

// Title returns the display name.
func (s *Screen) Title() string { return "Chi-Square Goodness of Fit" }

// Reset restores the configured dataset and computes the initial result,
// so the screen shows a worked example on entry.
func (s *Screen) Reset(cfg core.RuntimeConfig) {
	s.buildControls()
	s.Resize(cfg.ScreenW, cfg.ScreenH)
	s.compute()
	s.pending = false
}

// Resize recomputes the layout tree and all control rectangles.
func (s *Screen) Resize(width, height int) {
	s.controls.ClearDrag()
	s.tree = layout.Compute(width, height, []layout.Region{
		{Name: "title", Min: 1},
		{Name: "chart", Min: 6, Max: 16, Flex: 2},
		{Name: "controls", Min: 8, Max: 10, Flex: 1},
		{Name: "results", Min: 4, Max: 7, Flex: 1},
		{Name: "footer", Min: 1},
	})
	s.place()
}

func (s *Screen) place() {
	ctl := s.tree.Rect("controls")
	cols := layout.Columns(ctl, 2, 4)

	labelW := 0
	for _, cat := range s.cfg.Categories {
		if len(cat) > labelW {
			labelW = len(cat)
		}
	}

	for i, sl := range s.observed {
		row := core.NewRect(cols[0].X+labelW+1, cols[0].Y+1+i*2, cols[0].W-labelW-1, 1)
		sl.Track = layout.SliderTrack(row, 0, 5, 8)
	}
	for i, sl := range s.expected {
		row := core.NewRect(cols[1].X+labelW+1, cols[1].Y+1+i*2, cols[1].W-labelW-1, 1)
		sl.Track = layout.SliderTrack(row, 0, 7, 8)
	}

	btnRow := core.NewRect(ctl.X, ctl.Bottom()-1, ctl.W, 1)
	bcols := layout.Columns(btnRow, 2, 2)
	s.calc.Rect = layout.CenterIn(bcols[0], 15, 1)
	s.clear.Rect = layout.CenterIn(bcols[1], 11, 1)
}

func (s *Screen) observedCounts() []float64 {
	out := make([]float64, len(s.observed))
	for i, sl := range s.observed {
		out[i] = sl.Value
	}
	return out
}

func (s *Screen) proportions() []float64 {
	out := make([]float64, len(s.expected))
	for i, sl := range s.expected {
		out[i] = sl.Value
	}
	return out
}

func (s *Screen) compute() {
	s.result = stattest.GoodnessOfFit(s.observedCounts(), s.proportions())
	s.hasResult = true
}

func (s *Screen) resetValues() {
	for i, sl := range s.observed {
		sl.SetValue(float64(s.cfg.Observed[i]))
	}
	for i, sl := range s.expected {
		sl.SetValue(s.cfg.ExpectedPct[i])
	}
}

// HandleAction applies a semantic action.
func (s *Screen) HandleAction(a core.Action) {
	switch a {
	case core.ActionCalculate:
		s.compute()
		s.pending = true
	case core.ActionReset:
		s.resetValues()
		s.compute()
	default:
		// A moved slider makes the shown result stale.
		if s.controls.HandleAction(a).Changed {
			s.hasResult = false
		}
	}
}

// HandleDigit is a no-op: this screen has no editable cells.
func (s *Screen) HandleDigit(r rune) {}

// HandlePointer applies a pointer event.
func (s *Screen) HandlePointer(ev core.PointerEvent) {
	res := s.controls.HandlePointer(ev)
	if res.Changed {
		s.hasResult = false
	}
	if res.Clicked == nil {
		return
	}
	switch res.Clicked.ID {
	case "calc":
		s.compute()
		s.pending = true
	case "reset":
		s.resetValues()
		s.compute()
	}
}

// Render draws the screen.
func (s *Screen) Render(dst *core.Screen) {
	title := s.tree.Rect("title")
	dst.DrawTextCentered(title.X, title.Y, title.W, s.Title(), core.ColorBrightWhite)

	s.renderChart(dst)
	s.renderControls(dst)
	s.renderResults(dst)

	footer := s.tree.Rect("footer")
	dst.DrawTextColored(footer.X, footer.Y,
		"tab focus · ←/→ adjust · enter calculate · r reset · esc menu", core.ColorGray)
}

func (s *Screen) renderChart(dst *core.Screen) {
	area := s.tree.Rect("chart")
	obs := s.observedCounts()
	total := 0.0
	for _, v := range obs {
		total += v
	}
	exp := stattest.ExpectedCounts(total, s.proportions())

	colors := []core.Color{core.ColorBlue, core.ColorOrange}
	chart.Legend(dst, core.NewRect(area.X, area.Y, area.W, 1),
		[]string{"Observed", "Expected"}, colors)
	bars := core.NewRect(area.X, area.Y+1, area.W, area.H-1)
	chart.GroupedBars(dst, bars, s.cfg.Categories, [][]float64{obs, exp}, colors)
}

func (s *Screen) renderControls(dst *core.Screen) {
	ctl := s.tree.Rect("controls")
	cols := layout.Columns(ctl, 2, 4)
	dst.DrawTextColored(cols[0].X, cols[0].Y, "Observed counts", core.ColorWhite)
	dst.DrawTextColored(cols[1].X, cols[1].Y, "Expected %", core.ColorWhite)

	focused := s.controls.FocusedSlider()
	for _, sl := range s.controls.Sliders {
		widget.DrawSlider(dst, sl, sl == focused)
	}
	widget.DrawButton(dst, s.calc)
	widget.DrawButton(dst, s.clear)
}

func (s *Screen) renderResults(dst *core.Screen) {
	area := s.tree.Rect("results")
	if !s.hasResult {
		return
	}

	r := s.result
	dst.DrawTextColored(area.X, area.Y,
		fmt.Sprintf("χ² = %.2f    p %s    df = %d", r.Stat, chart.FormatP(r.PValue), r.DF),
		core.ColorBrightWhite)

	if r.Status == stattest.StatusDegenerate {
		dst.DrawTextColored(area.X, area.Y+1, "Cannot compute: "+r.Reason, core.ColorYellow)
		return
	}

	line := "Expected counts:"
	for _, e := range r.Expected {
		line += fmt.Sprintf("  %.1f", e)
	}
	dst.DrawText(area.X, area.Y+1, line)

	if r.PValue < 0.05 {
		dst.DrawTextColored(area.X, area.Y+3,
			"p < 0.05 — observed frequencies differ from the expected distribution",
			core.ColorBrightGreen)
	} else {
		dst.DrawTextColored(area.X, area.Y+3,
			"p ≥ 0.05 — no evidence of departure from the expected distribution",
			core.ColorGray)
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
