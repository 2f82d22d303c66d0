// Package metric_test checks PSI and KS against hand-computed values and
// their domain guards.
package metric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/popmock/metric"
	"github.com/katalvlaran/popmock/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPSI_UniformIsZero: 1000 entities over 10 tiles against 0.1 each.
func TestPSI_UniformIsZero(t *testing.T) {
	tb, err := tile.NewPopulation(1000, 10, tile.RemainderSpread)
	require.NoError(t, err)

	psi, err := metric.PSI(tb, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, psi)

	explicit := make([]float64, 10)
	for i := range explicit {
		explicit[i] = 0.1
	}
	psi, err = metric.PSI(tb, explicit)
	require.NoError(t, err)
	assert.Equal(t, 0.0, psi)
}

// TestPSI_DroppedRemainder: shares come from the table's own total, so a
// flat table built with RemainderDrop is still perfectly stable.
func TestPSI_DroppedRemainder(t *testing.T) {
	tb, err := tile.NewPopulation(10003, 10, tile.RemainderDrop)
	require.NoError(t, err)
	require.Equal(t, 10000, tb.TotalPopulation())

	psi, err := metric.PSI(tb, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, psi)

	parts, err := metric.PSIContributions(tb, nil)
	require.NoError(t, err)
	for i, p := range parts {
		assert.Zero(t, p, "tile %d", i)
	}
}

// TestPSI_TwoTiles compares with the closed form for shares 0.2/0.8.
func TestPSI_TwoTiles(t *testing.T) {
	tb := tile.Table{{Population: 200}, {Population: 800}}
	want := (0.2-0.5)*math.Log(0.2/0.5) + (0.8-0.5)*math.Log(0.8/0.5)

	psi, err := metric.PSI(tb, nil)
	require.NoError(t, err)
	assert.InDelta(t, want, psi, 1e-12)

	parts, err := metric.PSIContributions(tb, nil)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.InDelta(t, want, parts[0]+parts[1], 1e-12)
	assert.Greater(t, parts[0], 0.0, "every contribution is non-negative")
	assert.Greater(t, parts[1], 0.0, "every contribution is non-negative")
}

// TestPSI_DomainErrors covers empty tiles, bad baselines and empty tables.
func TestPSI_DomainErrors(t *testing.T) {
	cases := []struct {
		name     string
		table    tile.Table
		baseline []float64
		want     error
	}{
		{"zero tile", tile.Table{{Population: 10}, {Population: 0}}, nil, metric.ErrDomain},
		{"negative tile", tile.Table{{Population: 10}, {Population: -2}}, nil, metric.ErrDomain},
		{"zero baseline", tile.Table{{Population: 1}, {Population: 1}}, []float64{1, 0}, metric.ErrDomain},
		{"nan baseline", tile.Table{{Population: 1}, {Population: 1}}, []float64{math.NaN(), 0.5}, metric.ErrDomain},
		{"short baseline", tile.Table{{Population: 1}, {Population: 1}}, []float64{1}, metric.ErrBaselineMismatch},
		{"empty", tile.Table{}, nil, metric.ErrEmptyTable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			psi, err := metric.PSI(tc.table, tc.baseline)
			assert.ErrorIs(t, err, tc.want)
			assert.Zero(t, psi)
		})
	}
}

// TestKS_PerfectSeparation: every responder in the first tile.
func TestKS_PerfectSeparation(t *testing.T) {
	tb := tile.Table{{Population: 500, Responder: 500}, {Population: 500, Responder: 0}}

	ks, err := metric.KS(tb)
	require.NoError(t, err)
	assert.Equal(t, 1.0, ks)
}

// TestKS_NoSeparation: identical responder rates give KS ≈ 0.
func TestKS_NoSeparation(t *testing.T) {
	tb := tile.Table{
		{Population: 100, Responder: 10},
		{Population: 100, Responder: 10},
		{Population: 100, Responder: 10},
	}
	ks, err := metric.KS(tb)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, ks, 1e-12)
}

// TestKSCurve_Columns checks the cumulative columns and the arg-max.
func TestKSCurve_Columns(t *testing.T) {
	tb := tile.Table{
		{Population: 100, Responder: 50},
		{Population: 100, Responder: 30},
		{Population: 100, Responder: 20},
	}
	c, err := metric.KSCurve(tb)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0.5, 0.8, 1.0}, c.CumResponder, 1e-12)
	assert.InDeltaSlice(t, []float64{0.25, 0.6, 1.0}, c.CumNonResponder, 1e-12)
	assert.InDeltaSlice(t, []float64{0.25, 0.2, 0.0}, c.KS, 1e-12)

	ks, at := c.Max()
	assert.InDelta(t, 0.25, ks, 1e-12)
	assert.Equal(t, 0, at)

	empty, at := metric.Curve{}.Max()
	assert.Zero(t, empty)
	assert.Equal(t, -1, at)
}

// TestKS_DomainErrors covers zero column totals and broken invariants.
func TestKS_DomainErrors(t *testing.T) {
	_, err := metric.KS(tile.Table{{Population: 10}, {Population: 10}})
	assert.ErrorIs(t, err, metric.ErrDomain, "no responders")

	_, err = metric.KS(tile.Table{{Population: 10, Responder: 10}, {Population: 5, Responder: 5}})
	assert.ErrorIs(t, err, metric.ErrDomain, "no non-responders")

	_, err = metric.KS(tile.Table{{Population: 1, Responder: 2}, {Population: 5}})
	assert.ErrorIs(t, err, tile.ErrResponderExceedsPopulation)

	_, err = metric.KS(nil)
	assert.ErrorIs(t, err, metric.ErrEmptyTable)
}

// TestUniformBaseline sums to one.
func TestUniformBaseline(t *testing.T) {
	b := metric.UniformBaseline(4)
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, b)
	assert.Nil(t, metric.UniformBaseline(0))
}
