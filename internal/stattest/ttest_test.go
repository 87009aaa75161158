package stattest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cognitive-score example dataset used by the one-sample screen.
var oneSampleData = []float64{86, 73, 50, 73, 24, 65, 84, 54, 16, 26}

func TestOneSampleReferenceScenario(t *testing.T) {
	res := OneSample(oneSampleData, 43.4)
	require.Equal(t, StatusOK, res.Status)

	assert.Equal(t, 9, res.DF)
	assert.InDelta(t, 55.1, res.Mean, 1e-9)
	assert.InDelta(t, 25.468, res.StdDev, 0.001)
	assert.InDelta(t, 1.4528, res.Stat, 0.001)
	assert.InDelta(t, 0.180, res.PValue, 0.01)

	// One-sided p-values split the two-sided p by the sign of t.
	assert.InDelta(t, res.PValue/2, res.PGreater, 1e-12)
	assert.InDelta(t, 1-res.PValue/2, res.PLess, 1e-12)
}

func TestOneSampleCIBracketsMean(t *testing.T) {
	res := OneSample(oneSampleData, 43.4)
	require.Equal(t, StatusOK, res.Status)

	assert.Less(t, res.CILower, res.Mean)
	assert.Greater(t, res.CIUpper, res.Mean)
}

func TestOneSampleCIWidensWithStdDev(t *testing.T) {
	// Same mean and sample size, increasing spread: the 95% CI must widen
	// monotonically.
	narrow := []float64{48, 49, 50, 51, 52}
	medium := []float64{46, 48, 50, 52, 54}
	wide := []float64{40, 45, 50, 55, 60}

	wNarrow := width(OneSample(narrow, 50))
	wMedium := width(OneSample(medium, 50))
	wWide := width(OneSample(wide, 50))

	assert.Less(t, wNarrow, wMedium)
	assert.Less(t, wMedium, wWide)
}

func width(r OneSampleResult) float64 {
	return r.CIUpper - r.CILower
}

func TestOneSampleNegativeT(t *testing.T) {
	res := OneSample([]float64{1, 2, 3}, 10)
	require.Equal(t, StatusOK, res.Status)

	assert.Negative(t, res.Stat)
	assert.InDelta(t, 1-res.PValue/2, res.PGreater, 1e-12)
	assert.InDelta(t, res.PValue/2, res.PLess, 1e-12)
}

func TestOneSampleDegenerate(t *testing.T) {
	res := OneSample([]float64{5}, 3)
	assert.Equal(t, StatusDegenerate, res.Status)
	assert.Equal(t, 1.0, res.PValue)

	res = OneSample([]float64{4, 4, 4, 4}, 3)
	assert.Equal(t, StatusDegenerate, res.Status)
	assert.Equal(t, 1.0, res.PValue)
	assert.Equal(t, 3, res.DF)
}

// Amyloid-beta biomarker example used by the paired screen.
var (
	pairedBefore = []float64{42.5, 38.7, 51.2, 45.8, 49.3, 55.1, 41.2, 47.6, 52.3, 44.9}
	pairedAfter  = []float64{35.2, 32.1, 45.7, 42.3, 41.8, 49.5, 38.6, 40.2, 48.1, 40.5}
)

func TestPairedDifferences(t *testing.T) {
	res := Paired(pairedBefore, pairedAfter)
	require.Equal(t, StatusOK, res.Status)

	require.Len(t, res.Differences, len(pairedBefore))
	for i := range pairedBefore {
		assert.InDelta(t, pairedBefore[i]-pairedAfter[i], res.Differences[i], 1e-12)
	}

	// Mean of differences equals difference of means.
	assert.InDelta(t, res.MeanBefore-res.MeanAfter, res.MeanDiff, 1e-9)
}

func TestPairedReferenceScenario(t *testing.T) {
	res := Paired(pairedBefore, pairedAfter)
	require.Equal(t, StatusOK, res.Status)

	assert.Equal(t, 9, res.DF)
	// All biomarker levels dropped, so the effect is strongly positive.
	assert.Positive(t, res.Stat)
	assert.Less(t, res.PValue, 0.001)
	assert.Less(t, res.CILower, res.MeanDiff)
	assert.Greater(t, res.CIUpper, res.MeanDiff)
	assert.Positive(t, res.CILower)
}

func TestPairedDegenerate(t *testing.T) {
	res := Paired([]float64{1, 2}, []float64{1})
	assert.Equal(t, StatusDegenerate, res.Status)
	assert.Equal(t, 1.0, res.PValue)

	// Constant shift has zero variance in differences.
	res = Paired([]float64{5, 6, 7}, []float64{4, 5, 6})
	assert.Equal(t, StatusDegenerate, res.Status)
	assert.InDelta(t, 1.0, res.MeanDiff, 1e-12)
}

func TestTwoSampleKnownValue(t *testing.T) {
	// Hand-checked pooled t-test: both groups have variance 2.5, the
	// pooled SE is exactly 1, and the statistic is |(-1)/1| = 1 on 8 df.
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 3, 4, 5, 6}

	res := TwoSample(a, b)
	require.Equal(t, StatusOK, res.Status)

	assert.Equal(t, 8, res.DF)
	assert.InDelta(t, 1.0, res.Stat, 1e-9)
	assert.InDelta(t, 0.3466, res.PValue, 0.001)
}

func TestTwoSampleStatIsAbsolute(t *testing.T) {
	a := []float64{10, 12, 14, 16}
	b := []float64{20, 22, 24, 26}

	res := TwoSample(a, b)
	require.Equal(t, StatusOK, res.Status)
	assert.Positive(t, res.Stat)

	flipped := TwoSample(b, a)
	assert.InDelta(t, res.Stat, flipped.Stat, 1e-12)
	assert.InDelta(t, res.PValue, flipped.PValue, 1e-12)
}

func TestTwoSampleDegenerate(t *testing.T) {
	// Zero pooled variance would be NaN; it must come back as the
	// neutral display result instead.
	res := TwoSample([]float64{3, 3, 3}, []float64{3, 3, 3})
	assert.Equal(t, StatusDegenerate, res.Status)
	assert.Equal(t, 0.0, res.Stat)
	assert.Equal(t, 1.0, res.PValue)
	assert.False(t, math.IsNaN(res.PValue))

	res = TwoSample([]float64{1}, []float64{2, 3})
	assert.Equal(t, StatusDegenerate, res.Status)
}

func TestSamplerStdFloor(t *testing.T) {
	s := NewSampler(42)
	sample := s.Normal(200, 100, 0) // requested std of zero

	res := OneSample(sample, 100)
	// The floor keeps the sample from being degenerate.
	assert.Equal(t, StatusOK, res.Status)
	assert.Greater(t, res.StdDev, 0.0)
	assert.Less(t, res.StdDev, 1.0)
}

func TestSamplerDeterministicFirstDraw(t *testing.T) {
	a := NewSampler(42).Normal(10, 50, 5)
	b := NewSampler(42).Normal(10, 50, 5)
	assert.Equal(t, a, b)

	// Subsequent draws from the same stream differ.
	s := NewSampler(42)
	first := s.Normal(10, 50, 5)
	second := s.Normal(10, 50, 5)
	assert.NotEqual(t, first, second)
}
