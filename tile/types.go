// SPDX-License-Identifier: MIT
// Package: popmock/tile
//
// types.go — Tile, Table and RemainderPolicy.

package tile

import "fmt"

// Tile is one score band.
type Tile struct {
	Population int `json:"population" yaml:"population"`
	Responder  int `json:"responder" yaml:"responder"`
}

// NonResponder returns Population - Responder.
func (t Tile) NonResponder() int {
	return t.Population - t.Responder
}

// Table is an ordered sequence of tiles, index 0 first.
// Tile order is significant: cumulative metrics walk it from 0 to N-1.
type Table []Tile

// RemainderPolicy decides what happens to total mod n when a total is split
// uniformly across n tiles.
type RemainderPolicy int

const (
	// RemainderSpread hands the leftover out one unit per tile, starting at
	// tile 0, so the split sums to the requested total exactly.
	RemainderSpread RemainderPolicy = iota

	// RemainderDrop truncates every share and discards the leftover.
	// The table total is then total - total mod n, and PSI shares are taken
	// against that total rather than the requested size.
	RemainderDrop
)

// String returns the policy name used by configuration files and flags.
func (p RemainderPolicy) String() string {
	switch p {
	case RemainderSpread:
		return "spread"
	case RemainderDrop:
		return "drop"
	default:
		return fmt.Sprintf("RemainderPolicy(%d)", int(p))
	}
}

// ParseRemainderPolicy maps "spread"/"drop" to a RemainderPolicy.
func ParseRemainderPolicy(s string) (RemainderPolicy, error) {
	switch s {
	case "spread", "":
		return RemainderSpread, nil
	case "drop":
		return RemainderDrop, nil
	default:
		return 0, fmt.Errorf("ParseRemainderPolicy(%q): %w", s, ErrUnknownRemainder)
	}
}
