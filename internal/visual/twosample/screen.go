// Package twosample implements the independent two-sample t-test
// visualizer: control and experiment groups are simulated from Normal
// distributions whose parameters the user sets with sliders, and redrawn
// on every slider commit.
package twosample

import (
	"fmt"
	"math"

	"github.com/neuroedu/tui-statlab/internal/config"
	"github.com/neuroedu/tui-statlab/internal/core"
	"github.com/neuroedu/tui-statlab/internal/layout"
	"github.com/neuroedu/tui-statlab/internal/registry"
	"github.com/neuroedu/tui-statlab/internal/stattest"
	"github.com/neuroedu/tui-statlab/internal/visual/chart"
	"github.com/neuroedu/tui-statlab/internal/widget"
)

const testID = "twosample"

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

func loadConfig() config.TwoSampleConfig {
	cfg, err := config.LoadTwoSample(configPath)
	if err != nil {
		return config.DefaultTwoSampleConfig()
	}
	return cfg
}

// Screen is the two-sample t-test screen.
type Screen struct {
	cfg config.TwoSampleConfig

	mean1, std1 *widget.Slider
	mean2, std2 *widget.Slider
	size        *widget.Slider
	calc        *widget.Button
	clear       *widget.Button
	controls    widget.Controls

	sampler *stattest.Sampler
	sample1 []float64
	sample2 []float64

	tree layout.Tree

	result    stattest.TwoSampleResult
	hasResult bool
	pending   bool
}

// New creates the screen with the given dataset configuration.
func New(cfg config.TwoSampleConfig) *Screen {
	if cfg.SampleSize <= 0 || cfg.MeanMax <= cfg.MeanMin || cfg.StdMax <= cfg.StdMin {
		cfg = config.DefaultTwoSampleConfig()
	}
	s := &Screen{cfg: cfg}
	s.buildControls()
	return s
}

func (s *Screen) buildControls() {
	c := s.cfg
	s.mean1 = widget.NewSlider("Mean", c.Mean1, c.MeanMin, c.MeanMax, 1)
	s.std1 = widget.NewSlider("Std", c.Std1, c.StdMin, c.StdMax, 1)
	s.mean2 = widget.NewSlider("Mean", c.Mean2, c.MeanMin, c.MeanMax, 1)
	s.std2 = widget.NewSlider("Std", c.Std2, c.StdMin, c.StdMax, 1)
	s.size = widget.NewSlider("Sample size", float64(c.SampleSize),
		float64(c.SampleMin), float64(c.SampleMax), 1)

	s.calc = widget.NewButton("calc", "Calculate")
	s.clear = widget.NewButton("reset", "Reset")

	s.controls = widget.Controls{
		Sliders: []*widget.Slider{s.mean1, s.std1, s.mean2, s.std2, s.size},
		Buttons: []*widget.Button{s.calc, s.clear},
	}
}

// ID returns the registry identifier.
func (s *Screen) ID() string { return testID }

// Title returns the display name.
func (s *Screen) Title() string { return "Two-Sample T-Test" }

// Reset restores the configured parameters, seeds the sampler, and draws
// the initial samples. Seed 0 means time-based: only the very first draw
// of a fixed-seed session is reproducible.
func (s *Screen) Reset(cfg core.RuntimeConfig) {
	s.buildControls()
	s.sampler = stattest.NewSampler(cfg.Seed)
	s.Resize(cfg.ScreenW, cfg.ScreenH)
	s.regenerate()
	s.pending = false
}

// Resize recomputes the layout tree and all control rectangles.
func (s *Screen) Resize(width, height int) {
	s.controls.ClearDrag()
	s.tree = layout.Compute(width, height, []layout.Region{
		{Name: "title", Min: 1},
		{Name: "chart", Min: 7, Max: 14, Flex: 2},
		{Name: "controls", Min: 7, Max: 8},
		{Name: "results", Min: 4, Max: 8, Flex: 1},
		{Name: "footer", Min: 1},
	})
	s.place()
}

func (s *Screen) place() {
	ctl := s.tree.Rect("controls")
	cols := layout.Columns(core.NewRect(ctl.X, ctl.Y, ctl.W, 4), 2, 4)

	place := func(col core.Rect, row int, sl *widget.Slider) {
		r := core.NewRect(col.X+5, col.Y+1+row*2, col.W-5, 1)
		sl.Track = layout.SliderTrack(r, 0, 4, 8)
	}
	place(cols[0], 0, s.mean1)
	place(cols[0], 1, s.std1)
	place(cols[1], 0, s.mean2)
	place(cols[1], 1, s.std2)

	sizeRow := core.NewRect(ctl.X+12, ctl.Y+5, ctl.W-12, 1)
	s.size.Track = layout.SliderTrack(sizeRow, 0, 6, 10)

	btnRow := core.NewRect(ctl.X, ctl.Bottom()-1, ctl.W, 1)
	bcols := layout.Columns(btnRow, 2, 2)
	s.calc.Rect = layout.CenterIn(bcols[0], 15, 1)
	s.clear.Rect = layout.CenterIn(bcols[1], 11, 1)
}

// regenerate draws fresh samples from the current slider parameters and
// recomputes the statistic.
func (s *Screen) regenerate() {
	if s.sampler == nil {
		s.sampler = stattest.NewSampler(0)
	}
	n := int(s.size.Value + 0.5)
	s.sample1 = s.sampler.Normal(n, s.mean1.Value, s.std1.Value)
	s.sample2 = s.sampler.Normal(n, s.mean2.Value, s.std2.Value)
	s.compute()
}

func (s *Screen) compute() {
	s.result = stattest.TwoSample(s.sample1, s.sample2)
	s.hasResult = true
}

// HandleAction applies a semantic action. Keyboard nudges commit
// immediately, so they redraw the samples right away.
func (s *Screen) HandleAction(a core.Action) {
	switch a {
	case core.ActionCalculate:
		s.compute()
		s.pending = true
	case core.ActionReset:
		s.buildControls()
		s.place()
		s.regenerate()
	default:
		if res := s.controls.HandleAction(a); res.Committed {
			s.regenerate()
		}
	}
}

// HandleDigit is a no-op: this screen has no editable cells.
func (s *Screen) HandleDigit(r rune) {}

// HandlePointer applies a pointer event. Samples are redrawn only when a
// drag commits (release), not on every motion tick.
func (s *Screen) HandlePointer(ev core.PointerEvent) {
	res := s.controls.HandlePointer(ev)
	if res.Changed {
		// Parameters moved but samples are not redrawn until release,
		// so the shown result no longer matches the sliders.
		s.hasResult = false
	}
	if res.Committed {
		s.regenerate()
	}
	if res.Clicked == nil {
		return
	}
	switch res.Clicked.ID {
	case "calc":
		s.compute()
		s.pending = true
	case "reset":
		s.buildControls()
		s.place()
		s.regenerate()
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
		"tab focus · ←/→ adjust (redraws samples) · enter calculate · r reset · esc menu",
		core.ColorGray)
}

func (s *Screen) renderChart(dst *core.Screen) {
	area := s.tree.Rect("chart")

	lo, hi := s.sampleBounds()
	colors := []core.Color{core.ColorBlue, core.ColorOrange}
	chart.Legend(dst, core.NewRect(area.X, area.Y, area.W, 1),
		[]string{"Control", "Experiment"}, colors)

	hist := core.NewRect(area.X, area.Y+1, area.W, area.H-1)
	chart.Histogram(dst, hist, s.sample1, lo, hi, '█', colors[0])
	chart.Histogram(dst, hist, s.sample2, lo, hi, '▒', colors[1])
}

// sampleBounds picks a common axis range covering both configured
// parameter ranges with a three-sigma margin.
func (s *Screen) sampleBounds() (float64, float64) {
	lo := s.cfg.MeanMin - 3*s.cfg.StdMax
	hi := s.cfg.MeanMax + 3*s.cfg.StdMax
	for _, v := range s.sample1 {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	for _, v := range s.sample2 {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func (s *Screen) renderControls(dst *core.Screen) {
	ctl := s.tree.Rect("controls")
	cols := layout.Columns(core.NewRect(ctl.X, ctl.Y, ctl.W, 4), 2, 4)
	dst.DrawTextColored(cols[0].X, cols[0].Y, "Control group", core.ColorBlue)
	dst.DrawTextColored(cols[1].X, cols[1].Y, "Experiment group", core.ColorOrange)

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
	dst.DrawText(area.X, area.Y,
		fmt.Sprintf("control: mean = %.2f sd = %.2f    experiment: mean = %.2f sd = %.2f",
			r.Mean1, r.Std1, r.Mean2, r.Std2))
	dst.DrawTextColored(area.X, area.Y+1,
		fmt.Sprintf("|t| = %.4f    p %s    df = %d", r.Stat, chart.FormatP(r.PValue), r.DF),
		core.ColorBrightWhite)

	if r.Status == stattest.StatusDegenerate {
		dst.DrawTextColored(area.X, area.Y+2, "Cannot compute: "+r.Reason, core.ColorYellow)
		return
	}

	if r.PValue < 0.05 {
		dst.DrawTextColored(area.X, area.Y+3,
			"p < 0.05 — the group means differ", core.ColorBrightGreen)
	} else {
		dst.DrawTextColored(area.X, area.Y+3,
			"p ≥ 0.05 — no evidence the group means differ", core.ColorGray)
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
