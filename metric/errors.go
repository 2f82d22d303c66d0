// SPDX-License-Identifier: MIT
// Package: popmock/metric
//
// errors.go — sentinel errors for the metric package.

package metric

import "errors"

var (
	// ErrDomain indicates that a statistic is undefined for the input:
	// log/division of a zero or negative quantity.
	ErrDomain = errors.New("metric: domain error")

	// ErrEmptyTable indicates a table with no tiles.
	ErrEmptyTable = errors.New("metric: empty table")

	// ErrBaselineMismatch indicates len(baseline) != number of tiles.
	ErrBaselineMismatch = errors.New("metric: baseline length mismatch")
)
