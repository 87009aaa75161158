// Package independence implements the chi-square test of independence:
// an editable contingency table of treatment responses by genotype group.
package independence

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

const testID = "independence"

// Cell box dimensions in screen cells.
const (
	cellW   = 9
	cellH   = 3
	cellGap = 2
)

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

func loadConfig() config.IndependenceConfig {
	cfg, err := config.LoadIndependence(configPath)
	if err != nil {
		return config.DefaultIndependenceConfig()
	}
	return cfg
}

// Screen is the independence test screen.
type Screen struct {
	cfg config.IndependenceConfig

	cells    [][]*widget.Cell // [row][col]
	calc     *widget.Button
	clear    *widget.Button
	controls widget.Controls

	tree layout.Tree

	result    stattest.ChiSquareResult
	hasResult bool
	pending   bool
}

// New creates the screen with the given dataset configuration.
func New(cfg config.IndependenceConfig) *Screen {
	s := &Screen{cfg: cfg}
	s.buildControls()
	return s
}

func (s *Screen) buildControls() {
	if !validTable(s.cfg) {
		s.cfg = config.DefaultIndependenceConfig()
	}

	s.cells = nil
	flat := []*widget.Cell{}
	for _, row := range s.cfg.Table {
		cellRow := make([]*widget.Cell, len(row))
		for j, v := range row {
			cellRow[j] = widget.NewCell(v)
			flat = append(flat, cellRow[j])
		}
		s.cells = append(s.cells, cellRow)
	}

	s.calc = widget.NewButton("calc", "Calculate")
	s.clear = widget.NewButton("reset", "Reset")

	s.controls = widget.Controls{
		Cells:   flat,
		Buttons: []*widget.Button{s.calc, s.clear},
	}
}

func validTable(cfg config.IndependenceConfig) bool {
	r := len(cfg.Table)
	if r == 0 || len(cfg.RowNames) != r {
		return false
	}
	c := len(cfg.Table[0])
	if c == 0 || len(cfg.ColNames) != c {
		return false
	}
	for _, row := range cfg.Table {
		if len(row) != c {
			return false
		}
	}
	return true
}

// ID returns the registry identifier.
func (s *Screen) ID() string { return testID }

// Title returns the display name.
func (s *Screen) Title() string { return "Chi-Square Test of Independence" }

// Reset restores the configured table and computes the initial result.
func (s *Screen) Reset(cfg core.RuntimeConfig) {
	s.buildControls()
	s.Resize(cfg.ScreenW, cfg.ScreenH)
	s.compute()
	s.pending = false
}

// Resize recomputes the layout tree and all control rectangles.
func (s *Screen) Resize(width, height int) {
	rows := len(s.cells)
	tableMin := 2 + rows*cellH + 2 // header row, cells, button row

	s.tree = layout.Compute(width, height, []layout.Region{
		{Name: "title", Min: 1},
		{Name: "table", Min: tableMin, Max: tableMin + 2, Flex: 1},
		{Name: "results", Min: 7, Max: 10, Flex: 1},
		{Name: "footer", Min: 1},
	})
	s.place()
}

func (s *Screen) place() {
	table := s.tree.Rect("table")

	gridX := table.X + s.rowHeaderWidth() + 2
	gridY := table.Y + 1 // column header row above
	for i, row := range s.cells {
		for j, cell := range row {
			cell.Rect = core.NewRect(gridX+j*(cellW+cellGap), gridY+i*cellH, cellW, cellH)
		}
	}

	btnRow := core.NewRect(table.X, table.Bottom()-1, table.W, 1)
	bcols := layout.Columns(btnRow, 2, 2)
	s.calc.Rect = layout.CenterIn(bcols[0], 15, 1)
	s.clear.Rect = layout.CenterIn(bcols[1], 11, 1)
}

func (s *Screen) rowHeaderWidth() int {
	w := 0
	for _, name := range s.cfg.RowNames {
		if len(name) > w {
			w = len(name)
		}
	}
	return w
}

func (s *Screen) table() [][]int {
	out := make([][]int, len(s.cells))
	for i, row := range s.cells {
		out[i] = make([]int, len(row))
		for j, cell := range row {
			out[i][j] = cell.Value
		}
	}
	return out
}

func (s *Screen) compute() {
	s.result = stattest.Independence(s.table())
	s.hasResult = true
}

func (s *Screen) resetValues() {
	for i, row := range s.cells {
		for j, cell := range row {
			cell.SetValue(s.cfg.Table[i][j])
			cell.Active = false
		}
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
		if s.controls.HandleAction(a).Changed {
			s.hasResult = false
		}
	}
}

// HandleDigit routes digits and backspace into the active table cell.
// An edited cell makes the shown result stale.
func (s *Screen) HandleDigit(r rune) {
	if s.controls.HandleDigit(r) {
		s.hasResult = false
	}
}

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

	s.renderTable(dst)
	s.renderResults(dst)

	footer := s.tree.Rect("footer")
	dst.DrawTextColored(footer.X, footer.Y,
		"click a cell · type digits · backspace delete · enter calculate · r reset · esc menu",
		core.ColorGray)
}

func (s *Screen) renderTable(dst *core.Screen) {
	table := s.tree.Rect("table")
	gridX := table.X + s.rowHeaderWidth() + 2

	for j, name := range s.cfg.ColNames {
		x := gridX + j*(cellW+cellGap)
		dst.DrawTextCentered(x, table.Y, cellW, name, core.ColorWhite)
	}

	for i, name := range s.cfg.RowNames {
		y := table.Y + 1 + i*cellH + cellH/2
		dst.DrawTextColored(table.X, y, name, core.ColorWhite)
	}

	for _, row := range s.cells {
		for _, cell := range row {
			widget.DrawCell(dst, cell)
		}
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

	// Expected counts in the same row-major order as the table.
	cols := len(s.cfg.ColNames)
	for i := range s.cells {
		line := "Expected " + s.cfg.RowNames[i] + ":"
		for j := 0; j < cols; j++ {
			line += fmt.Sprintf("  %.1f", r.Expected[i*cols+j])
		}
		dst.DrawText(area.X, area.Y+1+i, line)
	}

	verdictY := area.Y + 2 + len(s.cells)
	if r.PValue < 0.05 {
		dst.DrawTextColored(area.X, verdictY,
			"p < 0.05 — the two variables are associated", core.ColorBrightGreen)
	} else {
		dst.DrawTextColored(area.X, verdictY,
			"p ≥ 0.05 — no evidence of association", core.ColorGray)
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
