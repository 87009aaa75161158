package gof

import (
	"strings"
	"testing"

	"github.com/neuroedu/tui-statlab/internal/config"
	"github.com/neuroedu/tui-statlab/internal/core"
	"github.com/neuroedu/tui-statlab/internal/stattest"
)

func newTestScreen() *Screen {
	s := New(config.DefaultGofConfig())
	s.Reset(core.DefaultConfig())
	return s
}

func TestInitialResultComputedOnEntry(t *testing.T) {
	s := newTestScreen()

	if !s.hasResult {
		t.Fatal("Expected a result to be computed on entry")
	}
	if s.result.DF != 2 {
		t.Errorf("Expected df 2, got %d", s.result.DF)
	}
	if s.result.Stat < 59 || s.result.Stat > 60 {
		t.Errorf("Expected statistic near 59.5 for the default dataset, got %v", s.result.Stat)
	}

	// The entry computation is not an explicit calculation, so nothing
	// should be recorded to history.
	if _, ok := s.TakeSnapshot(); ok {
		t.Error("Expected no snapshot before an explicit calculate")
	}
}

func TestCalculateProducesOneSnapshot(t *testing.T) {
	s := newTestScreen()

	s.HandleAction(core.ActionCalculate)

	snap, ok := s.TakeSnapshot()
	if !ok {
		t.Fatal("Expected a snapshot after calculate")
	}
	if snap.TestID != "gof" || snap.DF != 2 {
		t.Errorf("Unexpected snapshot: %+v", snap)
	}

	if _, ok := s.TakeSnapshot(); ok {
		t.Error("Expected the snapshot to be consumed by the first call")
	}
}

func TestSliderDragClampsToRange(t *testing.T) {
	s := newTestScreen()

	track := s.observed[0].Track
	// Press far left of the track: value must be exactly the minimum.
	s.HandlePointer(core.PointerEvent{Kind: core.PointerPress, X: track.X, Y: track.Y})
	s.HandlePointer(core.PointerEvent{Kind: core.PointerMove, X: 0, Y: track.Y})
	if s.observed[0].Value != 0 {
		t.Errorf("Expected value 0 left of the track, got %v", s.observed[0].Value)
	}

	// Drag far right: exactly the maximum.
	s.HandlePointer(core.PointerEvent{Kind: core.PointerMove, X: track.Right() + 50, Y: track.Y})
	if s.observed[0].Value != 150 {
		t.Errorf("Expected value 150 right of the track, got %v", s.observed[0].Value)
	}
	s.HandlePointer(core.PointerEvent{Kind: core.PointerRelease})
}

func TestResetRestoresDefaults(t *testing.T) {
	s := newTestScreen()

	s.observed[0].SetValue(10)
	s.expected[1].SetValue(99)

	s.HandleAction(core.ActionReset)

	if s.observed[0].Value != 74 {
		t.Errorf("Expected observed[0] back to 74, got %v", s.observed[0].Value)
	}
	if s.expected[1].Value != 42.7 {
		t.Errorf("Expected expected[1] back to 42.7, got %v", s.expected[1].Value)
	}
}

func TestResizeClearsDragAndKeepsTracksDisjoint(t *testing.T) {
	s := newTestScreen()

	track := s.observed[0].Track
	s.HandlePointer(core.PointerEvent{Kind: core.PointerPress, X: track.X + 2, Y: track.Y})
	if !s.observed[0].Dragging {
		t.Fatal("Expected drag to start on press")
	}

	s.Resize(100, 40)
	if s.observed[0].Dragging {
		t.Error("Expected resize to clear the drag")
	}

	tracks := []core.Rect{}
	for _, sl := range s.controls.Sliders {
		tracks = append(tracks, sl.Track)
	}
	for i := range tracks {
		for j := i + 1; j < len(tracks); j++ {
			if tracks[i].Intersects(tracks[j]) {
				t.Errorf("Tracks %d and %d overlap: %+v vs %+v", i, j, tracks[i], tracks[j])
			}
		}
	}
}

func TestSliderChangeInvalidatesResult(t *testing.T) {
	s := newTestScreen()

	// A keyboard nudge moves the focused observed-count slider, so the
	// entry result no longer matches the inputs and must disappear.
	s.HandleAction(core.ActionIncrease)
	if s.hasResult {
		t.Fatal("Expected the result to be invalidated after a slider change")
	}

	// Calculate recomputes from the current slider values.
	s.HandleAction(core.ActionCalculate)
	if !s.hasResult {
		t.Fatal("Expected calculate to restore a result")
	}
	fresh := stattest.GoodnessOfFit(s.observedCounts(), s.proportions())
	if s.result.Stat != fresh.Stat {
		t.Errorf("Expected the shown statistic %v to match a fresh computation %v",
			s.result.Stat, fresh.Stat)
	}
}

func TestSliderDragInvalidatesResult(t *testing.T) {
	s := newTestScreen()

	track := s.observed[0].Track
	s.HandlePointer(core.PointerEvent{Kind: core.PointerPress, X: track.X + 2, Y: track.Y})
	if s.hasResult {
		t.Error("Expected the result to be invalidated when a drag grabs a slider")
	}
	s.HandlePointer(core.PointerEvent{Kind: core.PointerRelease})
}

func TestRenderShowsTitleAndVerdict(t *testing.T) {
	s := newTestScreen()

	scr := core.NewScreen(80, 24)
	s.Render(scr)

	out := scr.String()
	if !strings.Contains(out, "Goodness of Fit") {
		t.Error("Expected the title in the rendered output")
	}
	if !strings.Contains(out, "df = 2") {
		t.Error("Expected the degrees of freedom in the rendered output")
	}
}
