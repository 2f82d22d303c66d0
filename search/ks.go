// SPDX-License-Identifier: MIT
// Package: popmock/search
//
// ks.go — KS search: responder moves with a fixed chunk.

package search

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/popmock/metric"
	"github.com/katalvlaran/popmock/shuffle"
	"github.com/katalvlaran/popmock/tile"
)

const methodKS = "search.KS"

// KS applies shuffle.Responders until metric.KS(table) reaches target.
// Only the Responder column changes; Responder ≤ Population holds for every
// intermediate table.
func KS(ctx context.Context, t tile.Table, target float64, rng *rand.Rand, opts Options) (Result, error) {
	if err := validateOptions(methodKS, opts); err != nil {
		return Result{}, err
	}
	if err := validateTarget(methodKS, target); err != nil {
		return Result{}, err
	}
	if rng == nil {
		return Result{}, fmt.Errorf("%s: %w", methodKS, shuffle.ErrNeedRandSource)
	}

	move := func(cur tile.Table, _ int) (tile.Table, error) {
		return shuffle.Responders(cur, opts.ResponderChunk, rng)
	}

	return iterate(ctx, methodKS, t, target, opts, metric.KS, move)
}
