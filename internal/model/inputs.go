package model

import "math/rand"

// Inputs is everything one estimator run consumes: the parameters plus the
// seed of the random stream.
type Inputs struct {
	Params SimulationParams
	Seed   int64
}

// NormalSource produces standard normal draws. Int63 is used to derive
// independent child streams (see strategy.ParallelStrategy).
// *rand.Rand satisfies it.
type NormalSource interface {
	NormFloat64() float64
	Int63() int64
}

// NewSource returns a deterministic generator for seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
