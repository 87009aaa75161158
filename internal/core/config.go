package core

// RuntimeConfig contains configuration passed to visualizers at
// initialization. Visualizers use it to adapt to screen size and to seed
// the random sample generator.
type RuntimeConfig struct {
	ScreenW int   // Screen width in cells
	ScreenH int   // Screen height in cells
	Seed    int64 // RNG seed for the sample generator; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
	}
}

// ResultSnapshot is the platform-facing summary of a computed test result,
// recorded to the history store after each explicit calculation.
type ResultSnapshot struct {
	TestID    string
	Statistic float64
	PValue    float64
	DF        int
}
