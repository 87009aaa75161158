// Package onesample implements the one-sample t-test visualizer: a fixed
// cognitive-score sample compared against an adjustable hypothesized mean,
// shown as a dot plot with marker lines for μ and the sample mean.
package onesample

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

const testID = "onesample"

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

func loadConfig() config.OneSampleConfig {
	cfg, err := config.LoadOneSample(configPath)
	if err != nil {
		return config.DefaultOneSampleConfig()
	}
	return cfg
}

// Screen is the one-sample t-test screen.
type Screen struct {
	cfg config.OneSampleConfig

	mu       *widget.Slider
	calc     *widget.Button
	clear    *widget.Button
	controls widget.Controls

	tree layout.Tree

	result    stattest.OneSampleResult
	hasResult bool
	pending   bool
}

// New creates the screen with the given dataset configuration.
func New(cfg config.OneSampleConfig) *Screen {
	if len(cfg.Data) == 0 || cfg.MeanMax <= cfg.MeanMin {
		cfg = config.DefaultOneSampleConfig()
	}
	s := &Screen{cfg: cfg}
	s.buildControls()
	return s
}

func (s *Screen) buildControls() {
	s.mu = widget.NewSlider("Test value (μ)", s.cfg.HypothesizedMean, s.cfg.MeanMin, s.cfg.MeanMax, 1)
	s.mu.Format = "%.1f"

	s.calc = widget.NewButton("calc", "Calculate")
	s.clear = widget.NewButton("reset", "Reset")

	s.controls = widget.Controls{
		Sliders: []*widget.Slider{s.mu},
		Buttons: []*widget.Button{s.calc, s.clear},
	}
}

// ID returns the registry identifier.
func (s *Screen) ID() string { return testID }

// Title returns the display name.
func (s *Screen) Title() string { return "One-Sample T-Test" }

// Reset restores the configured dataset and computes the initial result.
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
		{Name: "chart", Min: 7, Max: 14, Flex: 2},
		{Name: "controls", Min: 3, Max: 3},
		{Name: "results", Min: 6, Max: 9, Flex: 1},
		{Name: "footer", Min: 1},
	})
	s.place()
}

func (s *Screen) place() {
	ctl := s.tree.Rect("controls")

	labelW := len(s.mu.Label)
	row := core.NewRect(ctl.X, ctl.Y, ctl.W, 1)
	s.mu.Track = layout.SliderTrack(row, labelW, 6, 10)

	btnRow := core.NewRect(ctl.X, ctl.Bottom()-1, ctl.W, 1)
	bcols := layout.Columns(btnRow, 2, 2)
	s.calc.Rect = layout.CenterIn(bcols[0], 15, 1)
	s.clear.Rect = layout.CenterIn(bcols[1], 11, 1)
}

func (s *Screen) compute() {
	s.result = stattest.OneSample(s.cfg.Data, s.mu.Value)
	s.hasResult = true
}

// HandleAction applies a semantic action. Slider changes recompute
// immediately: the statistic tracks the μ handle live.
func (s *Screen) HandleAction(a core.Action) {
	switch a {
	case core.ActionCalculate:
		s.compute()
		s.pending = true
	case core.ActionReset:
		s.mu.SetValue(s.cfg.HypothesizedMean)
		s.compute()
	default:
		if res := s.controls.HandleAction(a); res.Changed {
			s.compute()
		}
	}
}

// HandleDigit is a no-op: this screen has no editable cells.
func (s *Screen) HandleDigit(r rune) {}

// HandlePointer applies a pointer event.
func (s *Screen) HandlePointer(ev core.PointerEvent) {
	res := s.controls.HandlePointer(ev)
	if res.Changed || res.Committed {
		s.compute()
	}
	if res.Clicked == nil {
		return
	}
	switch res.Clicked.ID {
	case "calc":
		s.compute()
		s.pending = true
	case "reset":
		s.mu.SetValue(s.cfg.HypothesizedMean)
		s.compute()
	}
}

// Render draws the screen.
func (s *Screen) Render(dst *core.Screen) {
	title := s.tree.Rect("title")
	dst.DrawTextCentered(title.X, title.Y, title.W, s.Title(), core.ColorBrightWhite)

	s.renderChart(dst)

	focused := s.controls.FocusedSlider()
	widget.DrawSlider(dst, s.mu, s.mu == focused)
	widget.DrawButton(dst, s.calc)
	widget.DrawButton(dst, s.clear)

	s.renderResults(dst)

	footer := s.tree.Rect("footer")
	dst.DrawTextColored(footer.X, footer.Y,
		"←/→ move μ · enter calculate · r reset · esc menu", core.ColorGray)
}

func (s *Screen) renderChart(dst *core.Screen) {
	area := s.tree.Rect("chart")
	lo, hi := s.cfg.MeanMin, s.cfg.MeanMax

	chart.DotPlot(dst, area, s.cfg.Data, lo, hi, core.ColorCyan)
	chart.MarkerLine(dst, area, s.mu.Value, lo, hi,
		fmt.Sprintf("μ=%.1f", s.mu.Value), core.ColorRed)
	if s.hasResult {
		chart.MarkerLine(dst, area, s.result.Mean, lo, hi,
			fmt.Sprintf("x̄=%.1f", s.result.Mean), core.ColorGreen)
	}
}

func (s *Screen) renderResults(dst *core.Screen) {
	area := s.tree.Rect("results")
	if !s.hasResult {
		return
	}

	r := s.result
	dst.DrawText(area.X, area.Y,
		fmt.Sprintf("n = %d    mean = %.2f    sd = %.2f    se = %.2f",
			len(s.cfg.Data), r.Mean, r.StdDev, r.StdErr))
	dst.DrawTextColored(area.X, area.Y+1,
		fmt.Sprintf("t = %.4f    p %s    df = %d", r.Stat, chart.FormatP(r.PValue), r.DF),
		core.ColorBrightWhite)

	if r.Status == stattest.StatusDegenerate {
		dst.DrawTextColored(area.X, area.Y+2, "Cannot compute: "+r.Reason, core.ColorYellow)
		return
	}

	dst.DrawText(area.X, area.Y+2,
		fmt.Sprintf("one-sided: P(mean > μ) %s    P(mean < μ) %s",
			chart.FormatP(r.PGreater), chart.FormatP(r.PLess)))
	dst.DrawText(area.X, area.Y+3,
		fmt.Sprintf("95%% CI of the mean: [%.2f, %.2f]", r.CILower, r.CIUpper))

	if r.PValue < 0.05 {
		dst.DrawTextColored(area.X, area.Y+5,
			"p < 0.05 — the sample mean differs from μ", core.ColorBrightGreen)
	} else {
		dst.DrawTextColored(area.X, area.Y+5,
			"p ≥ 0.05 — no evidence the sample mean differs from μ", core.ColorGray)
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
