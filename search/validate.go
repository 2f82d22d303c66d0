// SPDX-License-Identifier: MIT
// Package: popmock/search
//
// validate.go — option and target checks run before any move.

package search

import (
	"fmt"
	"math"
)

// Validate reports whether o can drive a search. PSI and KS run the same
// check before their first move.
func (o Options) Validate() error {
	return validateOptions("Options.Validate", o)
}

// validateOptions checks Options in isolation.
func validateOptions(method string, opts Options) error {
	if opts.MaxIterations < 1 {
		return fmt.Errorf("%s: MaxIterations=%d < 1: %w", method, opts.MaxIterations, ErrInvalidOptions)
	}
	if opts.TimeLimit < 0 {
		return fmt.Errorf("%s: TimeLimit=%v < 0: %w", method, opts.TimeLimit, ErrInvalidOptions)
	}
	if !inUnit(opts.ChunkStart) || !inUnit(opts.ChunkCeiling) || opts.ChunkCeiling < opts.ChunkStart {
		return fmt.Errorf("%s: chunk schedule start=%g ceiling=%g: %w",
			method, opts.ChunkStart, opts.ChunkCeiling, ErrInvalidOptions)
	}
	if math.IsNaN(opts.ChunkStep) || opts.ChunkStep < 0 {
		return fmt.Errorf("%s: ChunkStep=%g < 0: %w", method, opts.ChunkStep, ErrInvalidOptions)
	}
	if !inUnit(opts.ResponderChunk) {
		return fmt.Errorf("%s: ResponderChunk=%g: %w", method, opts.ResponderChunk, ErrInvalidOptions)
	}

	return nil
}

// validateTarget rejects NaN and ±Inf.
func validateTarget(method string, target float64) error {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return fmt.Errorf("%s: target=%g: %w", method, target, ErrInvalidTarget)
	}

	return nil
}

// inUnit reports 0 ≤ x ≤ 1 (false for NaN).
func inUnit(x float64) bool {
	return x >= 0 && x <= 1
}
