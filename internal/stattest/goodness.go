package stattest

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// GoodnessOfFit runs a chi-square goodness-of-fit test of the observed
// counts against expected counts derived from the hypothesized proportions.
//
// Proportions are renormalized to sum to 1, so callers may pass raw
// percentage slider values. Degrees of freedom are always k-1.
// Degenerate inputs (no categories, zero total observed, proportions
// summing to zero) yield a StatusDegenerate result with p exactly 1.0;
// no division by zero ever occurs.
func GoodnessOfFit(observed []float64, proportions []float64) ChiSquareResult {
	k := len(observed)
	df := k - 1
	if k == 0 || len(proportions) != k {
		return degenerateChi(max(df, 0), "observed and proportion lengths differ")
	}

	total := 0.0
	for _, o := range observed {
		total += o
	}
	if total <= 0 {
		return degenerateChi(df, "total observed count is zero")
	}

	sumProps := 0.0
	for _, p := range proportions {
		sumProps += p
	}
	if sumProps <= 0 {
		return degenerateChi(df, "expected proportions sum to zero")
	}

	expected := make([]float64, k)
	for i, p := range proportions {
		expected[i] = p / sumProps * total
	}

	stat := 0.0
	for i, o := range observed {
		e := expected[i]
		if e == 0 {
			if o == 0 {
				continue
			}
			return degenerateChi(df, "zero expected count with nonzero observed count")
		}
		d := o - e
		stat += d * d / e
	}

	dist := distuv.ChiSquared{K: float64(df)}
	return ChiSquareResult{
		Stat:     stat,
		PValue:   dist.Survival(stat),
		DF:       df,
		Expected: expected,
		Status:   StatusOK,
	}
}

// ExpectedCounts returns the expected counts for the given observed total
// and proportions, falling back to a uniform distribution when all
// proportions are zero. Used by the chart, which always needs bars to draw
// even when the test itself is degenerate.
func ExpectedCounts(total float64, proportions []float64) []float64 {
	k := len(proportions)
	if k == 0 {
		return nil
	}
	sum := 0.0
	for _, p := range proportions {
		sum += p
	}
	expected := make([]float64, k)
	if sum <= 0 {
		for i := range expected {
			expected[i] = total / float64(k)
		}
		return expected
	}
	for i, p := range proportions {
		expected[i] = p / sum * total
	}
	return expected
}
