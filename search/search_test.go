// Package search_test exercises both loops: convergence, bounded
// non-convergence, cancellation and option validation.
package search_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/popmock/metric"
	"github.com/katalvlaran/popmock/search"
	"github.com/katalvlaran/popmock/shuffle"
	"github.com/katalvlaran/popmock/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedDet = int64(2024)

// flat returns the 10000/1000 decile table.
func flat(t *testing.T) tile.Table {
	t.Helper()
	tb, err := tile.NewPopulation(10000, 10, tile.RemainderSpread)
	require.NoError(t, err)
	tb, err = tb.WithResponders(1000, tile.RemainderSpread)
	require.NoError(t, err)

	return tb
}

// TestPSI_Converges reaches PSI ≥ 0.1 and keeps both totals.
func TestPSI_Converges(t *testing.T) {
	start := flat(t)
	res, err := search.PSI(context.Background(), start, 0.1, shuffle.NewRand(seedDet), search.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, res.Converged())
	assert.Equal(t, search.ReasonTarget, res.Reason)
	assert.GreaterOrEqual(t, res.Value, 0.1)
	assert.Positive(t, res.Iterations)
	assert.Equal(t, 10000, res.Table.TotalPopulation())
	assert.Equal(t, start.Responders(), res.Table.Responders())

	psi, err := metric.PSI(res.Table, nil)
	require.NoError(t, err)
	assert.Equal(t, res.Value, psi, "reported value matches the table")
	assert.True(t, start.Equal(flat(t)), "input untouched")
}

// TestPSI_AlreadyMet returns the input without moving when the target is 0.
func TestPSI_AlreadyMet(t *testing.T) {
	start := flat(t)
	res, err := search.PSI(context.Background(), start, 0, shuffle.NewRand(seedDet), search.DefaultOptions())
	require.NoError(t, err)
	assert.Zero(t, res.Iterations)
	assert.True(t, res.Table.Equal(start))
}

// TestPSI_UnreachableTarget must stop at the iteration cap.
func TestPSI_UnreachableTarget(t *testing.T) {
	opts := search.DefaultOptions()
	opts.MaxIterations = 3000

	res, err := search.PSI(context.Background(), flat(t), 999, shuffle.NewRand(seedDet), opts)
	require.ErrorIs(t, err, search.ErrNonConvergence)
	assert.False(t, res.Converged())
	assert.Equal(t, search.NonConverged, res.Status)
	assert.Equal(t, search.ReasonIterations, res.Reason)
	assert.Equal(t, 3000, res.Iterations)
	assert.Equal(t, 10000, res.Table.TotalPopulation(), "last table keeps the total")
	assert.Less(t, res.Value, 999.0)
}

// TestPSI_TimeLimit stops on the wall-clock budget.
func TestPSI_TimeLimit(t *testing.T) {
	opts := search.DefaultOptions()
	opts.TimeLimit = time.Millisecond

	res, err := search.PSI(context.Background(), flat(t), 999, shuffle.NewRand(seedDet), opts)
	require.ErrorIs(t, err, search.ErrNonConvergence)
	assert.Equal(t, search.ReasonTimeLimit, res.Reason)
	assert.GreaterOrEqual(t, res.Elapsed, time.Millisecond)
}

// TestPSI_Canceled honors an already-canceled context.
func TestPSI_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := search.PSI(ctx, flat(t), 999, shuffle.NewRand(seedDet), search.DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, search.ReasonCanceled, res.Reason)
	assert.Zero(t, res.Iterations)
}

// TestPSI_DomainError: an empty tile fails at the first measurement.
func TestPSI_DomainError(t *testing.T) {
	start := tile.Table{{Population: 10}, {Population: 0}, {Population: 10}}
	res, err := search.PSI(context.Background(), start, 0.5, shuffle.NewRand(seedDet), search.DefaultOptions())
	require.ErrorIs(t, err, metric.ErrDomain)
	assert.Equal(t, search.ReasonError, res.Reason)
}

// TestKS_Converges reaches KS ≥ 0.25 and keeps the invariants.
func TestKS_Converges(t *testing.T) {
	start := flat(t)
	res, err := search.KS(context.Background(), start, 0.25, shuffle.NewRand(seedDet), search.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, res.Converged())
	assert.GreaterOrEqual(t, res.Value, 0.25)
	assert.Equal(t, 1000, res.Table.TotalResponder())
	assert.Equal(t, start.Populations(), res.Table.Populations())
	assert.NoError(t, res.Table.Validate())
}

// TestKS_UnreachableTarget: KS never exceeds 1.
func TestKS_UnreachableTarget(t *testing.T) {
	opts := search.DefaultOptions()
	opts.MaxIterations = 500

	res, err := search.KS(context.Background(), flat(t), 1.5, shuffle.NewRand(seedDet), opts)
	require.ErrorIs(t, err, search.ErrNonConvergence)
	assert.Equal(t, 500, res.Iterations)
	assert.NoError(t, res.Table.Validate())
}

// TestOnIteration sees every measurement, in order.
func TestOnIteration(t *testing.T) {
	opts := search.DefaultOptions()
	opts.MaxIterations = 10
	var seen []int
	opts.OnIteration = func(iter int, value float64) {
		seen = append(seen, iter)
		assert.False(t, math.IsNaN(value))
	}

	_, err := search.KS(context.Background(), flat(t), 1.5, shuffle.NewRand(seedDet), opts)
	require.ErrorIs(t, err, search.ErrNonConvergence)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, seen)
}

// TestDeterminism: the same seed walks the same path.
func TestDeterminism(t *testing.T) {
	a, err := search.PSI(context.Background(), flat(t), 0.1, shuffle.NewRand(7), search.DefaultOptions())
	require.NoError(t, err)
	b, err := search.PSI(context.Background(), flat(t), 0.1, shuffle.NewRand(7), search.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, a.Iterations, b.Iterations)
	assert.True(t, a.Table.Equal(b.Table))
}

// TestChunkAt follows the growing schedule and its ceiling.
func TestChunkAt(t *testing.T) {
	opts := search.DefaultOptions()
	assert.InDelta(t, 0.01, opts.ChunkAt(0), 1e-15)
	assert.InDelta(t, 0.02, opts.ChunkAt(100), 1e-15)
	assert.Equal(t, 0.5, opts.ChunkAt(1_000_000))
}

// TestValidation covers option, target and rng checks.
func TestValidation(t *testing.T) {
	ctx := context.Background()
	rng := shuffle.NewRand(1)
	mutate := func(f func(*search.Options)) search.Options {
		o := search.DefaultOptions()
		f(&o)
		return o
	}

	cases := []struct {
		name string
		opts search.Options
	}{
		{"zero iterations", mutate(func(o *search.Options) { o.MaxIterations = 0 })},
		{"negative time", mutate(func(o *search.Options) { o.TimeLimit = -time.Second })},
		{"ceiling above one", mutate(func(o *search.Options) { o.ChunkCeiling = 1.5 })},
		{"ceiling below start", mutate(func(o *search.Options) { o.ChunkCeiling = 0.001 })},
		{"negative step", mutate(func(o *search.Options) { o.ChunkStep = -1 })},
		{"responder chunk", mutate(func(o *search.Options) { o.ResponderChunk = 2 })},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := search.PSI(ctx, flat(t), 0.1, rng, tc.opts)
			assert.ErrorIs(t, err, search.ErrInvalidOptions)
			_, err = search.KS(ctx, flat(t), 0.1, rng, tc.opts)
			assert.ErrorIs(t, err, search.ErrInvalidOptions)
		})
	}

	_, err := search.PSI(ctx, flat(t), math.NaN(), rng, search.DefaultOptions())
	assert.ErrorIs(t, err, search.ErrInvalidTarget)
	_, err = search.KS(ctx, flat(t), math.Inf(1), rng, search.DefaultOptions())
	assert.ErrorIs(t, err, search.ErrInvalidTarget)
	_, err = search.PSI(ctx, flat(t), 0.1, nil, search.DefaultOptions())
	assert.ErrorIs(t, err, shuffle.ErrNeedRandSource)
	_, err = search.KS(ctx, flat(t), 0.1, nil, search.DefaultOptions())
	assert.ErrorIs(t, err, shuffle.ErrNeedRandSource)
}
