// SPDX-License-Identifier: MIT
// Package: popmock/tile
//
// errors.go — sentinel errors for the tile package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Call sites attach context with %w (method, tile index, counts).

package tile

import "errors"

// ErrBadSize indicates a non-positive total or tile count, or a tile count
// larger than the total being split.
var ErrBadSize = errors.New("tile: invalid size")

// ErrNegativeCount indicates a tile holding a negative Population or Responder.
var ErrNegativeCount = errors.New("tile: negative count")

// ErrResponderExceedsPopulation indicates Responder[i] > Population[i].
var ErrResponderExceedsPopulation = errors.New("tile: responder exceeds population")

// ErrUnknownRemainder indicates an unsupported RemainderPolicy value.
var ErrUnknownRemainder = errors.New("tile: unknown remainder policy")
