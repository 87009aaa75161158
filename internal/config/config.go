// Package config provides YAML-based dataset configuration for the test
// screens. Each screen's default data (example datasets, slider ranges)
// can be overridden by a user config file; embedded defaults ship the
// Alzheimer's-research teaching examples.
package config

// GofConfig configures the chi-square goodness-of-fit screen.
type GofConfig struct {
	Categories  []string  `yaml:"categories"`
	Observed    []int     `yaml:"observed"`
	ExpectedPct []float64 `yaml:"expected_pct"`
	ObservedMax int       `yaml:"observed_max"`
}

// IndependenceConfig configures the chi-square independence screen.
type IndependenceConfig struct {
	RowNames []string `yaml:"row_names"`
	ColNames []string `yaml:"col_names"`
	Table    [][]int  `yaml:"table"`
}

// OneSampleConfig configures the one-sample t-test screen.
type OneSampleConfig struct {
	Data             []float64 `yaml:"data"`
	HypothesizedMean float64   `yaml:"hypothesized_mean"`
	MeanMin          float64   `yaml:"mean_min"`
	MeanMax          float64   `yaml:"mean_max"`
}

// PairedConfig configures the paired t-test screen.
type PairedConfig struct {
	Subjects []string  `yaml:"subjects"`
	Before   []float64 `yaml:"before"`
	After    []float64 `yaml:"after"`
}

// TwoSampleConfig configures the two-sample t-test screen.
type TwoSampleConfig struct {
	SampleSize int     `yaml:"sample_size"`
	Mean1      float64 `yaml:"mean1"`
	Std1       float64 `yaml:"std1"`
	Mean2      float64 `yaml:"mean2"`
	Std2       float64 `yaml:"std2"`

	MeanMin   float64 `yaml:"mean_min"`
	MeanMax   float64 `yaml:"mean_max"`
	StdMin    float64 `yaml:"std_min"`
	StdMax    float64 `yaml:"std_max"`
	SampleMin int     `yaml:"sample_min"`
	SampleMax int     `yaml:"sample_max"`
}
