package onesample

import (
	"math"
	"testing"

	"github.com/neuroedu/tui-statlab/internal/config"
	"github.com/neuroedu/tui-statlab/internal/core"
)

func newTestScreen() *Screen {
	s := New(config.DefaultOneSampleConfig())
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
	if math.Abs(s.result.Mean-55.1) > 1e-9 {
		t.Errorf("Expected sample mean 55.1, got %v", s.result.Mean)
	}
	if math.Abs(s.result.PValue-0.180) > 0.01 {
		t.Errorf("Expected p near 0.180, got %v", s.result.PValue)
	}
}

func TestStatisticTracksSliderLive(t *testing.T) {
	s := newTestScreen()

	before := s.result.Stat

	// Drag μ to the sample mean: t collapses toward zero.
	track := s.mu.Track
	s.HandlePointer(core.PointerEvent{Kind: core.PointerPress, X: track.X + track.W/2, Y: track.Y})
	s.HandlePointer(core.PointerEvent{Kind: core.PointerMove, X: track.X + track.W/2, Y: track.Y})
	s.HandlePointer(core.PointerEvent{Kind: core.PointerRelease})

	if s.result.Stat == before {
		t.Error("Expected the statistic to recompute while dragging")
	}
}

func TestKeyboardNudgeRecomputes(t *testing.T) {
	s := newTestScreen()

	mu := s.mu.Value
	p := s.result.PValue

	s.HandleAction(core.ActionIncrease)
	if s.mu.Value != mu+1 {
		t.Errorf("Expected μ to move from %v to %v, got %v", mu, mu+1, s.mu.Value)
	}
	if s.result.PValue == p {
		t.Error("Expected the p-value to change with μ")
	}
}

func TestSliderStaysInRange(t *testing.T) {
	s := newTestScreen()

	for i := 0; i < 200; i++ {
		s.HandleAction(core.ActionIncrease)
	}
	if s.mu.Value != 100 {
		t.Errorf("Expected μ clamped to 100, got %v", s.mu.Value)
	}

	for i := 0; i < 400; i++ {
		s.HandleAction(core.ActionDecrease)
	}
	if s.mu.Value != 0 {
		t.Errorf("Expected μ clamped to 0, got %v", s.mu.Value)
	}
}

func TestResetRestoresHypothesizedMean(t *testing.T) {
	s := newTestScreen()

	s.mu.SetValue(90)
	s.HandleAction(core.ActionReset)

	if s.mu.Value != 43.4 {
		t.Errorf("Expected μ back to 43.4, got %v", s.mu.Value)
	}
}

func TestSnapshotOnlyOnExplicitCalculate(t *testing.T) {
	s := newTestScreen()

	// Live recomputes from nudges are not recorded.
	s.HandleAction(core.ActionIncrease)
	if _, ok := s.TakeSnapshot(); ok {
		t.Error("Expected no snapshot from a slider nudge")
	}

	s.HandleAction(core.ActionCalculate)
	snap, ok := s.TakeSnapshot()
	if !ok {
		t.Fatal("Expected a snapshot after calculate")
	}
	if snap.TestID != "onesample" || snap.DF != 9 {
		t.Errorf("Unexpected snapshot: %+v", snap)
	}
}
