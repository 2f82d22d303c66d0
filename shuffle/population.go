// SPDX-License-Identifier: MIT
// Package: popmock/shuffle
//
// population.go — one pass of the population move.
//
// Pass semantics (order matters for determinism):
//   for i = 0..N-1:
//     r ~ U[0,1); skip unless r < ½
//     c ~ U{0..N-1}              (c may equal i)
//     chunk = floor(Population[c] · chunkSize)
//     if chunk > 0: Population[i] += chunk; Population[c] -= chunk
//
// Transfers apply immediately, so a tile may act as a source and later as a
// destination within the same pass. With chunkSize ≤ 1 a source never goes
// below zero because chunk ≤ Population[c] at the moment it is drawn.
//
// Complexity: O(N) time, O(N) space for the copy.

package shuffle

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/popmock/tile"
)

const (
	methodPopulation = "Population"

	// populationMoveProb is the per-tile chance of taking part in a pass.
	populationMoveProb = 0.5
)

// Population returns a copy of t after one population pass.
// The Responder column is copied unchanged.
func Population(t tile.Table, chunkSize float64, rng *rand.Rand) (tile.Table, error) {
	if err := checkChunk(methodPopulation, chunkSize); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodPopulation, ErrNeedRandSource)
	}

	out := t.Clone()
	n := len(out)

	var c, chunk int
	for i := 0; i < n; i++ {
		if rng.Float64() >= populationMoveProb {
			continue
		}
		c = rng.Intn(n)
		chunk = int(float64(out[c].Population) * chunkSize)
		if chunk > 0 {
			out[i].Population += chunk
			out[c].Population -= chunk
		}
	}

	return out, nil
}

// checkChunk enforces 0 ≤ chunk ≤ 1.
func checkChunk(method string, chunk float64) error {
	if math.IsNaN(chunk) || chunk < 0 || chunk > 1 {
		return fmt.Errorf("%s: chunk=%g not in [0,1]: %w", method, chunk, ErrInvalidChunk)
	}

	return nil
}
