// Package mincut - deterministic RNG derivation for contraction trials.
//
// Every trial owns a private *rand.Rand derived from the base seed and
// the trial index, so results depend only on the seed, never on how
// trials are scheduled across workers.

package mincut

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// baseSeed normalizes the user seed under the seed==0 policy.
func baseSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed with a SplitMix64-style finalizer, so consecutive stream
// ids yield decorrelated substreams.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// trialRNG returns the independent deterministic RNG for one trial.
func trialRNG(seed int64, trial int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(baseSeed(seed), uint64(trial))))
}
