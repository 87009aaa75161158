package stattest

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// PairedResult is the outcome of a paired (related-samples) t-test:
// the per-subject differences, their summary statistics, and the 95%
// confidence interval of the mean difference.
type PairedResult struct {
	TTestResult

	Differences []float64 // elementwise before - after

	MeanBefore float64
	MeanAfter  float64
	MeanDiff   float64
	StdDiff    float64 // sample standard deviation of the differences
	StdErr     float64

	CILower float64
	CIUpper float64
}

// Paired tests whether the mean difference between paired before/after
// measurements differs from zero. It is a one-sample t-test on the
// elementwise differences with n-1 degrees of freedom.
func Paired(before, after []float64) PairedResult {
	n := len(before)
	if n == 0 || len(after) != n {
		return PairedResult{TTestResult: degenerateT(0, "paired samples must have equal nonzero length")}
	}
	df := n - 1

	diffs := make([]float64, n)
	for i := range before {
		diffs[i] = before[i] - after[i]
	}

	meanBefore, _ := stats.Mean(before)
	meanAfter, _ := stats.Mean(after)

	res := PairedResult{
		Differences: diffs,
		MeanBefore:  meanBefore,
		MeanAfter:   meanAfter,
	}
	if n < 2 {
		res.TTestResult = degenerateT(df, "need at least two pairs")
		return res
	}

	meanDiff, _ := stats.Mean(diffs)
	sdDiff, _ := stats.StandardDeviationSample(diffs)
	se := sdDiff / math.Sqrt(float64(n))

	res.MeanDiff = meanDiff
	res.StdDiff = sdDiff
	res.StdErr = se

	if sdDiff == 0 {
		res.TTestResult = degenerateT(df, "zero variance in differences")
		res.CILower, res.CIUpper = meanDiff, meanDiff
		return res
	}

	t := meanDiff / se
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	pTwo := 2 * dist.CDF(-math.Abs(t))

	res.TTestResult = TTestResult{Stat: t, PValue: pTwo, DF: df, Status: StatusOK}

	q := dist.Quantile(0.975)
	res.CILower = meanDiff - q*se
	res.CIUpper = meanDiff + q*se
	return res
}
