// SPDX-License-Identifier: MIT
// Package: popmock/shuffle
//
// responders.go — one pass of the responder move.
//
// Pass semantics:
//   for i = 0..N-1:
//     r ~ U[0,1); skip unless r < 1 − i/(N−1)
//     c ~ U{0..N-1}
//     chunk = floor(Responder[c] · chunkSize)
//     if Responder[i] + chunk > Population[i]: skip tile i
//     if chunk > 0: Responder[i] += chunk; Responder[c] -= chunk
//
// The capacity check is the only thing keeping Responder ≤ Population; a
// rejected move is silent. The last tile never receives (probability 0).

package shuffle

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/popmock/tile"
)

const (
	methodResponders = "Responders"

	// DefaultResponderChunk is the fraction of the source tile's responders
	// moved by one transfer.
	DefaultResponderChunk = 0.1

	minResponderTiles = 2
)

// Responders returns a copy of t after one responder pass.
// The Population column is copied unchanged.
func Responders(t tile.Table, chunkSize float64, rng *rand.Rand) (tile.Table, error) {
	n := len(t)
	if n < minResponderTiles {
		return nil, fmt.Errorf("%s: tiles=%d < min=%d: %w", methodResponders, n, minResponderTiles, ErrTooFewTiles)
	}
	if err := checkChunk(methodResponders, chunkSize); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodResponders, ErrNeedRandSource)
	}

	out := t.Clone()
	last := float64(n - 1)

	var c, chunk int
	for i := 0; i < n; i++ {
		if rng.Float64() >= 1-float64(i)/last {
			continue
		}
		c = rng.Intn(n)
		chunk = int(float64(out[c].Responder) * chunkSize)
		if out[i].Responder+chunk > out[i].Population {
			continue
		}
		if chunk > 0 {
			out[i].Responder += chunk
			out[c].Responder -= chunk
		}
	}

	return out, nil
}
