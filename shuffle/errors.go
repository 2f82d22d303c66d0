// SPDX-License-Identifier: MIT
// Package: popmock/shuffle
//
// errors.go — sentinel errors for the shuffle package.

package shuffle

import "errors"

var (
	// ErrNeedRandSource indicates a nil *rand.Rand.
	ErrNeedRandSource = errors.New("shuffle: rng is required")

	// ErrInvalidChunk indicates a chunk fraction outside [0,1] or NaN.
	ErrInvalidChunk = errors.New("shuffle: chunk fraction out of range")

	// ErrTooFewTiles indicates a table too small for the move; the
	// responder move needs N ≥ 2 for its 1 − i/(N−1) acceptance curve.
	ErrTooFewTiles = errors.New("shuffle: too few tiles")
)
