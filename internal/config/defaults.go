package config

import (
	_ "embed"
)

//go:embed defaults/gof.yaml
var defaultGofYAML []byte

//go:embed defaults/independence.yaml
var defaultIndependenceYAML []byte

//go:embed defaults/onesample.yaml
var defaultOneSampleYAML []byte

//go:embed defaults/paired.yaml
var defaultPairedYAML []byte

//go:embed defaults/twosample.yaml
var defaultTwoSampleYAML []byte

// DefaultGofConfig returns the default goodness-of-fit dataset:
// genotype frequencies (AA/Aa/aa) in a patient cohort.
func DefaultGofConfig() GofConfig {
	return GofConfig{
		Categories:  []string{"AA", "Aa", "aa"},
		Observed:    []int{74, 50, 20},
		ExpectedPct: []float64{25.0, 42.7, 33.5},
		ObservedMax: 150,
	}
}

// DefaultIndependenceConfig returns the default contingency table:
// treatment response by APOE e4 carrier status.
func DefaultIndependenceConfig() IndependenceConfig {
	return IndependenceConfig{
		RowNames: []string{"APOE e4+", "APOE e4-"},
		ColNames: []string{"Improved", "No Change", "Declined"},
		Table: [][]int{
			{15, 20, 25},
			{25, 20, 15},
		},
	}
}

// DefaultOneSampleConfig returns the default cognitive-score sample
// and hypothesized population mean.
func DefaultOneSampleConfig() OneSampleConfig {
	return OneSampleConfig{
		Data:             []float64{86, 73, 50, 73, 24, 65, 84, 54, 16, 26},
		HypothesizedMean: 43.4,
		MeanMin:          0,
		MeanMax:          100,
	}
}

// DefaultPairedConfig returns the default before/after biomarker
// measurements (amyloid-beta levels for ten subjects).
func DefaultPairedConfig() PairedConfig {
	return PairedConfig{
		Subjects: []string{"S1", "S2", "S3", "S4", "S5", "S6", "S7", "S8", "S9", "S10"},
		Before:   []float64{42.5, 38.7, 51.2, 45.8, 49.3, 55.1, 41.2, 47.6, 52.3, 44.9},
		After:    []float64{35.2, 32.1, 45.7, 42.3, 41.8, 49.5, 38.6, 40.2, 48.1, 40.5},
	}
}

// DefaultTwoSampleConfig returns the default control/experiment group
// parameters for the simulated two-sample comparison.
func DefaultTwoSampleConfig() TwoSampleConfig {
	return TwoSampleConfig{
		SampleSize: 20,
		Mean1:      100,
		Std1:       15,
		Mean2:      115,
		Std2:       15,

		MeanMin:   70,
		MeanMax:   130,
		StdMin:    5,
		StdMax:    25,
		SampleMin: 5,
		SampleMax: 20000,
	}
}

// GetDefaultYAML returns the embedded default YAML for a test screen.
func GetDefaultYAML(testID string) []byte {
	switch testID {
	case "gof":
		return defaultGofYAML
	case "independence":
		return defaultIndependenceYAML
	case "onesample":
		return defaultOneSampleYAML
	case "paired":
		return defaultPairedYAML
	case "twosample":
		return defaultTwoSampleYAML
	default:
		return nil
	}
}
