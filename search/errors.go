// SPDX-License-Identifier: MIT
// Package: popmock/search
//
// errors.go — sentinel errors for the search package.

package search

import "errors"

var (
	// ErrNonConvergence indicates the iteration or time budget ran out
	// before the metric reached its target. The accompanying Result holds
	// the last table.
	ErrNonConvergence = errors.New("search: target not reached within budget")

	// ErrInvalidOptions indicates inconsistent Options (non-positive
	// iteration cap, negative time limit, chunk schedule outside [0,1]).
	ErrInvalidOptions = errors.New("search: invalid options")

	// ErrInvalidTarget indicates a NaN or infinite target.
	ErrInvalidTarget = errors.New("search: invalid target")
)
