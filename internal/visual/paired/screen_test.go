package paired

import (
	"math"
	"testing"

	"github.com/neuroedu/tui-statlab/internal/config"
	"github.com/neuroedu/tui-statlab/internal/core"
	"github.com/neuroedu/tui-statlab/internal/stattest"
)

func newTestScreen() *Screen {
	s := New(config.DefaultPairedConfig())
	s.Reset(core.DefaultConfig())
	return s
}

func TestInitialResultMatchesDefaultDataset(t *testing.T) {
	s := newTestScreen()

	if !s.hasResult {
		t.Fatal("Expected a result to be computed on entry")
	}
	if s.result.DF != 9 {
		t.Errorf("Expected df 9, got %d", s.result.DF)
	}
	// Every biomarker level dropped after treatment.
	if s.result.Stat <= 0 {
		t.Errorf("Expected a positive statistic, got %v", s.result.Stat)
	}
	if s.result.PValue >= 0.001 {
		t.Errorf("Expected a strongly significant p, got %v", s.result.PValue)
	}
}

func TestDifferencesFollowTableEdits(t *testing.T) {
	s := newTestScreen()

	diff := s.result.Differences[0]
	want := s.before[0] - s.after[0]
	if math.Abs(diff-want) > 1e-12 {
		t.Fatalf("Expected difference %v, got %v", want, diff)
	}
}

func TestDragAdjustsSelectedValue(t *testing.T) {
	s := newTestScreen()

	r := s.beforeRects[2]
	orig := s.before[2]

	s.HandlePointer(core.PointerEvent{Kind: core.PointerPress, X: r.X + 1, Y: r.Y})
	if !s.selected || s.selRow != 2 || s.selCol != 0 {
		t.Fatalf("Expected before[2] selected, got selected=%v row=%d col=%d",
			s.selected, s.selRow, s.selCol)
	}

	// Moving the pointer up two rows increases the value by two steps.
	s.HandlePointer(core.PointerEvent{Kind: core.PointerMove, X: r.X + 1, Y: r.Y - 2})
	if math.Abs(s.before[2]-(orig+2*dragStep)) > 1e-12 {
		t.Errorf("Expected value %v after upward drag, got %v", orig+2*dragStep, s.before[2])
	}

	// Moving down decreases it again.
	s.HandlePointer(core.PointerEvent{Kind: core.PointerMove, X: r.X + 1, Y: r.Y})
	if math.Abs(s.before[2]-orig) > 1e-12 {
		t.Errorf("Expected value back to %v, got %v", orig, s.before[2])
	}
	s.HandlePointer(core.PointerEvent{Kind: core.PointerRelease})

	if s.dragging {
		t.Error("Expected drag to end on release")
	}
}

func TestValuesFloorAtZero(t *testing.T) {
	s := newTestScreen()

	s.HandleAction(core.ActionFocusNext) // selects before[0]
	for i := 0; i < 200; i++ {
		s.HandleAction(core.ActionDecrease)
	}
	if s.before[0] != 0 {
		t.Errorf("Expected value floored at 0, got %v", s.before[0])
	}
}

func TestConstantShiftDegenerates(t *testing.T) {
	s := newTestScreen()

	// Force every difference to the same constant.
	for i := range s.before {
		s.before[i] = s.after[i] + 1
	}
	s.HandleAction(core.ActionCalculate)

	if s.result.Status != stattest.StatusDegenerate {
		t.Fatalf("Expected degenerate result for zero diff variance, got %v", s.result.Status)
	}
	if s.result.PValue != 1.0 {
		t.Errorf("Expected neutral p 1.0, got %v", s.result.PValue)
	}
	if math.Abs(s.result.MeanDiff-1.0) > 1e-12 {
		t.Errorf("Expected mean difference 1.0 still reported, got %v", s.result.MeanDiff)
	}
}

func TestResetRestoresOriginalData(t *testing.T) {
	s := newTestScreen()

	s.before[0] = 999
	s.after[5] = 0
	s.HandleAction(core.ActionReset)

	if s.before[0] != 42.5 {
		t.Errorf("Expected before[0] back to 42.5, got %v", s.before[0])
	}
	if s.after[5] != 49.5 {
		t.Errorf("Expected after[5] back to 49.5, got %v", s.after[5])
	}
}

func TestResizeEndsDrag(t *testing.T) {
	s := newTestScreen()

	r := s.afterRects[0]
	s.HandlePointer(core.PointerEvent{Kind: core.PointerPress, X: r.X, Y: r.Y})
	if !s.dragging {
		t.Fatal("Expected drag to start")
	}

	s.Resize(100, 40)
	if s.dragging {
		t.Error("Expected resize to end the drag")
	}
}
