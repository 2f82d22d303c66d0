// SPDX-License-Identifier: MIT
// Package: popmock/gains
//
// types.go — Metric groups, Row and Chart.

package gains

import (
	"fmt"
	"strings"
)

// Metric names a group of derived columns.
type Metric string

const (
	MetricKS         Metric = "ks"
	MetricPSI        Metric = "psi"
	MetricCumSum     Metric = "cumsum"
	MetricOdds       Metric = "odds"
	MetricLift       Metric = "lift"
	MetricSeparation Metric = "separation"
)

// AllMetrics lists every group in rendering order.
func AllMetrics() []Metric {
	return []Metric{MetricKS, MetricPSI, MetricCumSum, MetricOdds, MetricLift, MetricSeparation}
}

// ParseMetrics parses a comma-separated list such as "ks,psi,odds".
// An empty string selects every group.
func ParseMetrics(s string) ([]Metric, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AllMetrics(), nil
	}
	var out []Metric
	for _, part := range strings.Split(s, ",") {
		m := Metric(strings.ToLower(strings.TrimSpace(part)))
		if !m.valid() {
			return nil, fmt.Errorf("ParseMetrics(%q): %q: %w", s, part, ErrUnknownMetric)
		}
		out = append(out, m)
	}

	return out, nil
}

func (m Metric) valid() bool {
	for _, k := range AllMetrics() {
		if m == k {
			return true
		}
	}

	return false
}

// Row holds every derived value of one tile. Fields of groups that were
// not requested stay zero.
type Row struct {
	Tile         int
	Population   int
	Responder    int
	NonResponder int

	// ks
	ResponderPct       float64
	NonResponderPct    float64
	CumResponderPct    float64
	CumNonResponderPct float64
	KS                 float64

	// psi
	PopulationPct float64
	Baseline      float64
	PSI           float64

	// cumsum
	CumPopulation   int
	CumResponder    int
	CumNonResponder int

	// odds
	Odds float64

	// lift, separation
	BadRate    float64
	Lift       float64
	Separation float64
}

// Chart is a built gains chart.
type Chart struct {
	Metrics []Metric
	Rows    []Row
}

// Has reports whether group m was built.
func (c Chart) Has(m Metric) bool {
	for _, x := range c.Metrics {
		if x == m {
			return true
		}
	}

	return false
}
