package stattest

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// OneSampleResult is the outcome of a one-sample t-test, including the
// one-sided p-values and the 95% confidence interval of the sample mean.
type OneSampleResult struct {
	TTestResult

	Mean   float64
	StdDev float64 // sample standard deviation (n-1)
	StdErr float64

	PGreater float64 // H1: mean > mu
	PLess    float64 // H1: mean < mu

	CILower float64
	CIUpper float64
}

// OneSample tests whether the sample mean differs from the hypothesized
// mean mu. The one-sided p-values split the two-sided p by the sign of the
// t statistic; the confidence interval uses the t quantile on n-1 degrees
// of freedom.
func OneSample(data []float64, mu float64) OneSampleResult {
	n := len(data)
	df := n - 1
	if n < 2 {
		return OneSampleResult{TTestResult: degenerateT(max(df, 0), "need at least two observations")}
	}

	mean, _ := stats.Mean(data)
	sd, _ := stats.StandardDeviationSample(data)
	se := sd / math.Sqrt(float64(n))

	res := OneSampleResult{
		Mean:   mean,
		StdDev: sd,
		StdErr: se,
	}
	if sd == 0 {
		res.TTestResult = degenerateT(df, "zero sample variance")
		res.CILower, res.CIUpper = mean, mean
		return res
	}

	t := (mean - mu) / se
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	pTwo := 2 * dist.CDF(-math.Abs(t))

	res.TTestResult = TTestResult{Stat: t, PValue: pTwo, DF: df, Status: StatusOK}
	if t > 0 {
		res.PGreater = pTwo / 2
		res.PLess = 1 - pTwo/2
	} else {
		res.PGreater = 1 - pTwo/2
		res.PLess = pTwo / 2
	}

	q := dist.Quantile(0.975)
	res.CILower = mean - q*se
	res.CIUpper = mean + q*se
	return res
}
