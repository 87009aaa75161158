// Package stattest is the statistic engine: one pure function per
// hypothesis test. Functions never mutate interaction state and never
// panic on degenerate input; instead they return a typed result whose
// Status distinguishes a real computation from a degenerate fallback,
// letting the caller decide what to display.
//
// Distribution math is delegated to gonum (stat/distuv); summary
// statistics to github.com/montanaflynn/stats.
package stattest

// Status reports whether a result was actually computed or substituted
// because the input was degenerate (empty, zero-sum, zero-variance).
type Status int

const (
	StatusOK Status = iota
	StatusDegenerate
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDegenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

// ChiSquareResult is the outcome of a chi-square test.
// Degenerate results carry the neutral display values (stat 0, p 1.0,
// df from the input shape) plus the reason the test was not run.
type ChiSquareResult struct {
	Stat   float64
	PValue float64
	DF     int

	// Expected holds the expected counts the statistic was computed
	// against; empty for degenerate results.
	Expected []float64

	Status Status
	Reason string
}

// TTestResult is the common core of every t-test outcome.
type TTestResult struct {
	Stat   float64
	PValue float64
	DF     int

	Status Status
	Reason string
}

func degenerateChi(df int, reason string) ChiSquareResult {
	return ChiSquareResult{PValue: 1.0, DF: df, Status: StatusDegenerate, Reason: reason}
}

func degenerateT(df int, reason string) TTestResult {
	return TTestResult{PValue: 1.0, DF: df, Status: StatusDegenerate, Reason: reason}
}
