// SPDX-License-Identifier: MIT
// Package: popmock/search
//
// psi.go — PSI search: population moves with a growing chunk.

package search

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/popmock/metric"
	"github.com/katalvlaran/popmock/shuffle"
	"github.com/katalvlaran/popmock/tile"
)

const methodPSI = "search.PSI"

// ChunkAt returns the population chunk used at iteration iter:
// min(ChunkStart + iter·ChunkStep, ChunkCeiling).
func (o Options) ChunkAt(iter int) float64 {
	return math.Min(o.ChunkStart+float64(iter)*o.ChunkStep, o.ChunkCeiling)
}

// PSI applies shuffle.Population until metric.PSI(table, opts.Baseline)
// reaches target. Only the Population column changes.
//
// Errors:
//   - ErrInvalidOptions / ErrInvalidTarget — before any move.
//   - shuffle.ErrNeedRandSource            — rng == nil.
//   - ErrNonConvergence                    — budget exhausted (Result still set).
//   - metric.ErrDomain                     — a tile emptied (chunk ceiling 1).
//   - ctx.Err()                            — cancellation.
func PSI(ctx context.Context, t tile.Table, target float64, rng *rand.Rand, opts Options) (Result, error) {
	if err := validateOptions(methodPSI, opts); err != nil {
		return Result{}, err
	}
	if err := validateTarget(methodPSI, target); err != nil {
		return Result{}, err
	}
	if rng == nil {
		return Result{}, fmt.Errorf("%s: %w", methodPSI, shuffle.ErrNeedRandSource)
	}

	measure := func(cur tile.Table) (float64, error) {
		return metric.PSI(cur, opts.Baseline)
	}
	move := func(cur tile.Table, iter int) (tile.Table, error) {
		return shuffle.Population(cur, opts.ChunkAt(iter), rng)
	}

	return iterate(ctx, methodPSI, t, target, opts, measure, move)
}
