package stattest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndependenceReferenceScenario(t *testing.T) {
	// Treatment response by APOE variant example. Row sums are 60/60 and
	// column sums 40/40/40, so every expected count is 20 and the
	// statistic works out to exactly 5.0.
	table := [][]int{
		{15, 20, 25},
		{25, 20, 15},
	}

	res := Independence(table)
	require.Equal(t, StatusOK, res.Status)

	assert.Equal(t, 2, res.DF)
	assert.InDelta(t, 5.0, res.Stat, 1e-9)
	assert.Greater(t, res.PValue, 0.0)
	assert.Less(t, res.PValue, 1.0)
	assert.InDelta(t, 0.0821, res.PValue, 0.001)
}

func TestIndependenceZeroRowSum(t *testing.T) {
	table := [][]int{
		{0, 0, 0},
		{25, 20, 15},
	}

	res := Independence(table)
	assert.Equal(t, StatusDegenerate, res.Status)
	assert.Equal(t, 0.0, res.Stat)
	assert.Equal(t, 1.0, res.PValue)
	assert.Equal(t, 2, res.DF) // (2-1)*(3-1) from the shape alone
}

func TestIndependenceZeroColumnSum(t *testing.T) {
	table := [][]int{
		{15, 0, 25},
		{25, 0, 15},
	}

	res := Independence(table)
	assert.Equal(t, StatusDegenerate, res.Status)
	assert.Equal(t, 0.0, res.Stat)
	assert.Equal(t, 1.0, res.PValue)
	assert.Equal(t, 2, res.DF)
}

func TestIndependenceNoAssociation(t *testing.T) {
	// Proportional rows: no association, statistic ~0, p ~1.
	table := [][]int{
		{10, 20, 30},
		{20, 40, 60},
	}

	res := Independence(table)
	require.Equal(t, StatusOK, res.Status)
	assert.InDelta(t, 0.0, res.Stat, 1e-9)
	assert.InDelta(t, 1.0, res.PValue, 1e-9)
}

func TestIndependenceEmptyAndRagged(t *testing.T) {
	res := Independence(nil)
	assert.Equal(t, StatusDegenerate, res.Status)

	res = Independence([][]int{{1, 2}, {3}})
	assert.Equal(t, StatusDegenerate, res.Status)
	assert.Equal(t, 1.0, res.PValue)
}
