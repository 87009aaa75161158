package stattest

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// Independence runs a chi-square test of independence on an r×c
// contingency table of non-negative counts.
//
// If any row or column sum is zero the expected-count computation would
// divide by zero, so the test short-circuits to a StatusDegenerate result
// (stat 0, p 1.0) with df still computed from the table shape. No
// continuity correction is applied.
func Independence(table [][]int) ChiSquareResult {
	r := len(table)
	if r == 0 || len(table[0]) == 0 {
		return degenerateChi(0, "empty contingency table")
	}
	c := len(table[0])
	df := (r - 1) * (c - 1)

	for _, row := range table {
		if len(row) != c {
			return degenerateChi(df, "ragged contingency table")
		}
	}

	rowSums := make([]float64, r)
	colSums := make([]float64, c)
	total := 0.0
	for i, row := range table {
		for j, v := range row {
			f := float64(v)
			rowSums[i] += f
			colSums[j] += f
			total += f
		}
	}

	for _, s := range rowSums {
		if s == 0 {
			return degenerateChi(df, "a row sums to zero")
		}
	}
	for _, s := range colSums {
		if s == 0 {
			return degenerateChi(df, "a column sums to zero")
		}
	}

	stat := 0.0
	expected := make([]float64, 0, r*c)
	for i := range table {
		for j := range table[i] {
			e := rowSums[i] * colSums[j] / total
			expected = append(expected, e)
			d := float64(table[i][j]) - e
			stat += d * d / e
		}
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
