// SPDX-License-Identifier: MIT
// Package: popmock/metric
//
// psi.go — Population Stability Index against a per-tile baseline.
//
// Contract:
//   • baseline == nil means the uniform baseline 1/N for every tile.
//   • Every Population[i] must be > 0 and every baseline share > 0.
//   • Shares are taken against the table's own total.
//
// Complexity: O(N) time, O(N) space for the contribution column.

package metric

import (
	"fmt"
	"math"

	"github.com/katalvlaran/popmock/tile"
)

const (
	methodPSI              = "PSI"
	methodPSIContributions = "PSIContributions"
)

// UniformBaseline returns n copies of 1/n.
func UniformBaseline(n int) []float64 {
	if n <= 0 {
		return nil
	}
	b := make([]float64, n)
	share := 1.0 / float64(n)
	for i := range b {
		b[i] = share
	}

	return b
}

// PSIContributions returns psi_i for every tile; their sum is the PSI.
func PSIContributions(t tile.Table, baseline []float64) ([]float64, error) {
	n := t.Len()
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", methodPSIContributions, ErrEmptyTable)
	}
	if baseline == nil {
		baseline = UniformBaseline(n)
	}
	if len(baseline) != n {
		return nil, fmt.Errorf("%s: len(baseline)=%d, tiles=%d: %w",
			methodPSIContributions, len(baseline), n, ErrBaselineMismatch)
	}

	for i, x := range t {
		if x.Population <= 0 {
			return nil, fmt.Errorf("%s: tile %d population=%d: %w",
				methodPSIContributions, i, x.Population, ErrDomain)
		}
		if !(baseline[i] > 0) || math.IsInf(baseline[i], 0) {
			return nil, fmt.Errorf("%s: tile %d baseline=%g: %w",
				methodPSIContributions, i, baseline[i], ErrDomain)
		}
	}

	total := float64(t.TotalPopulation())
	out := make([]float64, n)
	var share float64
	for i, x := range t {
		share = float64(x.Population) / total
		out[i] = (share - baseline[i]) * math.Log(share/baseline[i])
	}

	return out, nil
}

// PSI returns Σ psi_i over the tiles of t.
//
// Example:
//
//	psi, err := metric.PSI(t, nil) // uniform baseline
//	if errors.Is(err, metric.ErrDomain) { /* some tile is empty */ }
func PSI(t tile.Table, baseline []float64) (float64, error) {
	parts, err := PSIContributions(t, baseline)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodPSI, err)
	}

	var sum float64
	for _, p := range parts {
		sum += p
	}

	return sum, nil
}
