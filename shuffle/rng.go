// SPDX-License-Identifier: MIT
// Package: popmock/shuffle
//
// rng.go — deterministic random sources shared by the search loops.
//
// Goals:
//   - Determinism: same seed ⇒ identical tables on every platform.
//   - No hidden time-based sources; seed==0 maps to a fixed default.
//   - Independent streams for parallel mockups via DeriveRand.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe. One stream per worker.

package shuffle

import "math/rand"

// DefaultSeed is used when callers pass seed==0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// seed==0 ⇒ DefaultSeed; any other seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream id into a new seed using the
// SplitMix64 finalizer, so consecutive stream ids give unrelated seeds.
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand creates an independent stream from base and a stream id.
// base==nil uses DefaultSeed as the parent; otherwise base.Int63() is
// consumed once, so deriving twice with the same id still gives two streams.
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}
