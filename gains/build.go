// SPDX-License-Identifier: MIT
// Package: popmock/gains
//
// build.go — derive the chart columns from a tile table.
//
// Build is a read-only transform: it never mutates the table and never
// feeds anything back into the search.
//
// Complexity: O(N·|metrics|).

package gains

import (
	"fmt"

	"github.com/katalvlaran/popmock/metric"
	"github.com/katalvlaran/popmock/tile"
)

const methodBuild = "Build"

// Build computes the requested metric groups for t. baseline is passed to
// the PSI group (nil ⇒ uniform). No metrics ⇒ all groups.
func Build(t tile.Table, baseline []float64, metrics ...Metric) (Chart, error) {
	if t.Len() == 0 {
		return Chart{}, fmt.Errorf("%s: %w", methodBuild, metric.ErrEmptyTable)
	}
	selected, err := normalize(metrics)
	if err != nil {
		return Chart{}, err
	}

	c := Chart{Metrics: selected, Rows: make([]Row, t.Len())}
	for i, x := range t {
		c.Rows[i] = Row{
			Tile:         i,
			Population:   x.Population,
			Responder:    x.Responder,
			NonResponder: x.NonResponder(),
		}
	}

	var badRates bool
	for _, m := range selected {
		switch m {
		case MetricKS:
			err = fillKS(c.Rows, t)
		case MetricPSI:
			err = fillPSI(c.Rows, t, baseline)
		case MetricCumSum:
			fillCumSum(c.Rows)
		case MetricOdds:
			fillOdds(c.Rows)
		case MetricLift, MetricSeparation:
			if !badRates {
				fillBadRate(c.Rows, c.Has(MetricLift), c.Has(MetricSeparation))
				badRates = true
			}
		}
		if err != nil {
			return Chart{}, fmt.Errorf("%s: %s: %w", methodBuild, m, err)
		}
	}

	return c, nil
}

// normalize validates metrics and returns them deduplicated in AllMetrics order.
func normalize(metrics []Metric) ([]Metric, error) {
	if len(metrics) == 0 {
		return AllMetrics(), nil
	}
	want := make(map[Metric]struct{}, len(metrics))
	for _, m := range metrics {
		if !m.valid() {
			return nil, fmt.Errorf("%s: %q: %w", methodBuild, m, ErrUnknownMetric)
		}
		want[m] = struct{}{}
	}
	out := make([]Metric, 0, len(want))
	for _, m := range AllMetrics() {
		if _, ok := want[m]; ok {
			out = append(out, m)
		}
	}

	return out, nil
}

func fillKS(rows []Row, t tile.Table) error {
	curve, err := metric.KSCurve(t)
	if err != nil {
		return err
	}
	for i := range rows {
		rows[i].ResponderPct = curve.ResponderShare[i]
		rows[i].NonResponderPct = curve.NonResponderShare[i]
		rows[i].CumResponderPct = curve.CumResponder[i]
		rows[i].CumNonResponderPct = curve.CumNonResponder[i]
		rows[i].KS = curve.KS[i]
	}

	return nil
}

func fillPSI(rows []Row, t tile.Table, baseline []float64) error {
	if baseline == nil {
		baseline = metric.UniformBaseline(t.Len())
	}
	parts, err := metric.PSIContributions(t, baseline)
	if err != nil {
		return err
	}
	total := float64(t.TotalPopulation())
	for i := range rows {
		rows[i].PopulationPct = float64(rows[i].Population) / total
		rows[i].Baseline = baseline[i]
		rows[i].PSI = parts[i]
	}

	return nil
}

func fillCumSum(rows []Row) {
	var p, r, n int
	for i := range rows {
		p += rows[i].Population
		r += rows[i].Responder
		n += rows[i].NonResponder
		rows[i].CumPopulation = p
		rows[i].CumResponder = r
		rows[i].CumNonResponder = n
	}
}

func fillOdds(rows []Row) {
	for i := range rows {
		rows[i].Odds = float64(rows[i].Responder) / float64(rows[i].NonResponder)
	}
}

// fillBadRate computes bad rates once and derives lift and/or separation.
func fillBadRate(rows []Row, lift, separation bool) {
	var sum float64
	for i := range rows {
		rows[i].BadRate = float64(rows[i].Responder) / float64(rows[i].Population)
		sum += rows[i].BadRate
	}
	mean := sum / float64(len(rows))
	low := rows[0].BadRate
	for i := 1; i < len(rows); i++ {
		if rows[i].BadRate < low {
			low = rows[i].BadRate
		}
	}
	for i := range rows {
		if lift {
			rows[i].Lift = rows[i].BadRate / mean
		}
		if separation {
			rows[i].Separation = rows[i].BadRate / low
		}
	}
}
