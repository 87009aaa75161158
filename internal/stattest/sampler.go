package stattest

import (
	"math/rand"
	"time"
)

// MinStdDev is the floor applied to requested standard deviations so the
// generator never produces a degenerate zero-variance sample.
const MinStdDev = 0.1

// Sampler draws random Normal samples for the two-sample screen.
// It is seeded once at construction; subsequent draws continue the same
// stream and intentionally vary.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler. Seed 0 means seed from the current time.
func NewSampler(seed int64) *Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Normal draws n values from Normal(mean, max(std, MinStdDev)).
func (s *Sampler) Normal(n int, mean, std float64) []float64 {
	if std < MinStdDev {
		std = MinStdDev
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = s.rng.NormFloat64()*std + mean
	}
	return out
}
