// Package shuffle_test checks conservation, invariant preservation and
// determinism of both moves.
package shuffle_test

import (
	"testing"

	"github.com/katalvlaran/popmock/shuffle"
	"github.com/katalvlaran/popmock/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	passes = 2000
	seeds  = 8
)

// deciles returns the flat 10000/1000 decile table used across tests.
func deciles(t *testing.T) tile.Table {
	t.Helper()
	tb, err := tile.NewPopulation(10000, 10, tile.RemainderSpread)
	require.NoError(t, err)
	tb, err = tb.WithResponders(1000, tile.RemainderSpread)
	require.NoError(t, err)

	return tb
}

// TestPopulation_ConservesTotal runs many passes with a growing chunk and
// checks ΣPopulation after each one.
func TestPopulation_ConservesTotal(t *testing.T) {
	for s := int64(1); s <= seeds; s++ {
		rng := shuffle.NewRand(s)
		cur := deciles(t)
		want := cur.TotalPopulation()
		for p := 0; p < passes; p++ {
			chunk := 0.01 + float64(p)*0.0001
			next, err := shuffle.Population(cur, chunk, rng)
			require.NoError(t, err)
			require.Equal(t, want, next.TotalPopulation(), "seed %d pass %d", s, p)
			require.Equal(t, cur.Responders(), next.Responders(), "responders untouched")
			cur = next
		}
		for i, x := range cur {
			assert.Positive(t, x.Population, "seed %d tile %d", s, i)
		}
	}
}

// TestPopulation_DoesNotMutateInput keeps the caller's table intact.
func TestPopulation_DoesNotMutateInput(t *testing.T) {
	in := deciles(t)
	snapshot := in.Clone()
	rng := shuffle.NewRand(7)
	for p := 0; p < 50; p++ {
		_, err := shuffle.Population(in, 0.2, rng)
		require.NoError(t, err)
	}
	assert.True(t, in.Equal(snapshot))
}

// TestPopulation_ZeroChunkIsIdentity: nothing moves with chunk 0.
func TestPopulation_ZeroChunkIsIdentity(t *testing.T) {
	in := deciles(t)
	out, err := shuffle.Population(in, 0, shuffle.NewRand(3))
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
}

// TestResponders_ConservesAndRespectsCapacity checks ΣResponder and
// 0 ≤ Responder ≤ Population after every pass.
func TestResponders_ConservesAndRespectsCapacity(t *testing.T) {
	for s := int64(1); s <= seeds; s++ {
		rng := shuffle.NewRand(s)
		cur := deciles(t)
		want := cur.TotalResponder()
		for p := 0; p < passes; p++ {
			next, err := shuffle.Responders(cur, shuffle.DefaultResponderChunk, rng)
			require.NoError(t, err)
			require.Equal(t, want, next.TotalResponder(), "seed %d pass %d", s, p)
			require.NoError(t, next.Validate(), "seed %d pass %d", s, p)
			require.Equal(t, cur.Populations(), next.Populations(), "populations untouched")
			cur = next
		}
	}
}

// TestResponders_TightCapacity uses tiles that are nearly full, so most
// moves hit the capacity check.
func TestResponders_TightCapacity(t *testing.T) {
	cur := tile.Table{
		{Population: 12, Responder: 10},
		{Population: 100, Responder: 90},
		{Population: 30, Responder: 30},
		{Population: 40, Responder: 5},
	}
	rng := shuffle.NewRand(11)
	for p := 0; p < passes; p++ {
		next, err := shuffle.Responders(cur, shuffle.DefaultResponderChunk, rng)
		require.NoError(t, err)
		require.NoError(t, next.Validate())
		require.Equal(t, 135, next.TotalResponder())
		cur = next
	}
}

// TestResponders_LastTileNeverReceives: the acceptance probability of the
// last tile is zero, so its responder count can only go down in a pass.
func TestResponders_LastTileNeverReceives(t *testing.T) {
	rng := shuffle.NewRand(5)
	cur := deciles(t)
	for p := 0; p < 500; p++ {
		next, err := shuffle.Responders(cur, shuffle.DefaultResponderChunk, rng)
		require.NoError(t, err)
		require.LessOrEqual(t, next[9].Responder, cur[9].Responder)
		cur = next
	}
}

// TestDeterminism: equal seeds give equal tables, different seeds diverge.
func TestDeterminism(t *testing.T) {
	run := func(seed int64) tile.Table {
		rng := shuffle.NewRand(seed)
		cur := deciles(t)
		var err error
		for p := 0; p < 200; p++ {
			cur, err = shuffle.Population(cur, 0.05, rng)
			require.NoError(t, err)
			cur, err = shuffle.Responders(cur, shuffle.DefaultResponderChunk, rng)
			require.NoError(t, err)
		}

		return cur
	}
	a, b := run(42), run(42)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(run(43)))

	assert.True(t, run(0).Equal(run(shuffle.DefaultSeed)), "seed 0 maps to DefaultSeed")
}

// TestErrors covers every sentinel.
func TestErrors(t *testing.T) {
	tb := deciles(t)
	rng := shuffle.NewRand(1)

	_, err := shuffle.Population(tb, 0.1, nil)
	assert.ErrorIs(t, err, shuffle.ErrNeedRandSource)
	_, err = shuffle.Population(tb, 1.5, rng)
	assert.ErrorIs(t, err, shuffle.ErrInvalidChunk)
	_, err = shuffle.Population(tb, -0.1, rng)
	assert.ErrorIs(t, err, shuffle.ErrInvalidChunk)

	_, err = shuffle.Responders(tb, 0.1, nil)
	assert.ErrorIs(t, err, shuffle.ErrNeedRandSource)
	_, err = shuffle.Responders(tile.Table{{Population: 5, Responder: 1}}, 0.1, rng)
	assert.ErrorIs(t, err, shuffle.ErrTooFewTiles)
	_, err = shuffle.Responders(tb, 2, rng)
	assert.ErrorIs(t, err, shuffle.ErrInvalidChunk)
}

// TestDeriveRand: derived streams are reproducible and distinct.
func TestDeriveRand(t *testing.T) {
	a := shuffle.DeriveRand(shuffle.NewRand(9), 3).Int63()
	b := shuffle.DeriveRand(shuffle.NewRand(9), 3).Int63()
	c := shuffle.DeriveRand(shuffle.NewRand(9), 4).Int63()
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	assert.NotEqual(t, shuffle.DeriveSeed(1, 0), shuffle.DeriveSeed(1, 1))
	assert.Equal(t, shuffle.DeriveSeed(5, 2), shuffle.DeriveSeed(5, 2))

	base := shuffle.NewRand(9)
	first := shuffle.DeriveRand(base, 3).Int63()
	second := shuffle.DeriveRand(base, 3).Int63()
	assert.NotEqual(t, first, second, "base advances between derivations")

	assert.NotPanics(t, func() { shuffle.DeriveRand(nil, 0).Int63() })
}
