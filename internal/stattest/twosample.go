package stattest

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// TwoSampleResult is the outcome of an independent two-sample t-test.
// Stat is reported as the absolute value of the t statistic.
type TwoSampleResult struct {
	TTestResult

	Mean1, Mean2 float64
	Std1, Std2   float64
}

// TwoSample tests whether the means of two independent samples differ,
// assuming equal variances (pooled estimator). Degenerate input that would
// produce NaN (too few observations, zero pooled variance) yields a
// StatusDegenerate result displayed as stat 0, p 1.0.
func TwoSample(sample1, sample2 []float64) TwoSampleResult {
	n1, n2 := len(sample1), len(sample2)
	df := n1 + n2 - 2
	if n1 < 2 || n2 < 2 {
		return TwoSampleResult{TTestResult: degenerateT(max(df, 0), "need at least two observations per group")}
	}

	mean1, _ := stats.Mean(sample1)
	mean2, _ := stats.Mean(sample2)
	sd1, _ := stats.StandardDeviationSample(sample1)
	sd2, _ := stats.StandardDeviationSample(sample2)

	res := TwoSampleResult{
		Mean1: mean1, Mean2: mean2,
		Std1: sd1, Std2: sd2,
	}

	pooled := (float64(n1-1)*sd1*sd1 + float64(n2-1)*sd2*sd2) / float64(df)
	se := math.Sqrt(pooled * (1/float64(n1) + 1/float64(n2)))

	t := (mean1 - mean2) / se
	if math.IsNaN(t) || math.IsInf(t, 0) {
		res.TTestResult = degenerateT(df, "zero pooled variance")
		return res
	}

	abs := math.Abs(t)
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	p := 2 * dist.Survival(abs)
	if math.IsNaN(p) {
		res.TTestResult = degenerateT(df, "p-value is not a number")
		return res
	}

	res.TTestResult = TTestResult{Stat: abs, PValue: p, DF: df, Status: StatusOK}
	return res
}
