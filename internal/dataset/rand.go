// Package dataset generates the synthetic demo artifacts from closed-form
// statistical models.
//
// Every generator takes an explicit *rand.Rand and an explicit anchor date,
// so two invocations with the same seed and anchor produce identical output.
// Callers seed each generator with the base seed plus a per-dataset offset;
// no generator touches the global random state or the wall clock.
package dataset

import (
	"math"
	"math/rand"
)

// Per-dataset seed offsets. Each generator gets its own source so the
// artifacts are independently reproducible.
const (
	SeedOffsetDaily   = 1
	SeedOffsetAgents  = 2
	SeedOffsetNetwork = 3
	SeedOffsetTopics  = 4
	SeedOffsetTrends  = 5
)

// NewSource returns a deterministic random source for a dataset offset.
func NewSource(seed int64, offset int64) *rand.Rand {
	return rand.New(rand.NewSource(seed + offset))
}

// uniform draws a float in [low, high).
func uniform(rng *rand.Rand, low, high float64) float64 {
	return low + rng.Float64()*(high-low)
}

// triangular draws from a triangular distribution on [low, high] peaking
// at mode, via the inverse-CDF transform.
func triangular(rng *rand.Rand, low, high, mode float64) float64 {
	u := rng.Float64()
	c := (mode - low) / (high - low)
	if u > c {
		u = 1 - u
		c = 1 - c
		low, high = high, low
	}
	return low + (high-low)*math.Sqrt(u*c)
}

// floor clamps v to at least min.
func floor(v, min int) int {
	if v < min {
		return min
	}
	return v
}
