// SPDX-License-Identifier: MIT
// Package: popmock/tile
//
// table.go — read-only helpers over Table.
//
// Contract:
//   • No method mutates the receiver.
//   • Clone is the only way popmock derives a new table from an old one.
//
// Complexity: every helper is O(N) in the number of tiles.

package tile

import "fmt"

const methodValidate = "Validate"

// Len returns the number of tiles.
func (t Table) Len() int {
	return len(t)
}

// Clone returns an independent copy of t. A nil table clones to nil.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	copy(out, t)

	return out
}

// Equal reports whether t and other hold the same counts in the same order.
func (t Table) Equal(other Table) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}

	return true
}

// TotalPopulation sums the Population column.
func (t Table) TotalPopulation() int {
	var sum int
	for _, x := range t {
		sum += x.Population
	}

	return sum
}

// TotalResponder sums the Responder column.
func (t Table) TotalResponder() int {
	var sum int
	for _, x := range t {
		sum += x.Responder
	}

	return sum
}

// TotalNonResponder sums Population - Responder over all tiles.
func (t Table) TotalNonResponder() int {
	return t.TotalPopulation() - t.TotalResponder()
}

// NonResponder returns Population - Responder for tile i.
// It panics on an out-of-range index, like any slice access.
func (t Table) NonResponder(i int) int {
	return t[i].NonResponder()
}

// Populations returns a copy of the Population column.
func (t Table) Populations() []int {
	out := make([]int, len(t))
	for i, x := range t {
		out[i] = x.Population
	}

	return out
}

// Responders returns a copy of the Responder column.
func (t Table) Responders() []int {
	out := make([]int, len(t))
	for i, x := range t {
		out[i] = x.Responder
	}

	return out
}

// Validate checks 0 ≤ Responder[i] ≤ Population[i] for every tile and
// reports the first offending tile.
func (t Table) Validate() error {
	for i, x := range t {
		if x.Population < 0 || x.Responder < 0 {
			return fmt.Errorf("%s: tile %d population=%d responder=%d: %w",
				methodValidate, i, x.Population, x.Responder, ErrNegativeCount)
		}
		if x.Responder > x.Population {
			return fmt.Errorf("%s: tile %d responder=%d > population=%d: %w",
				methodValidate, i, x.Responder, x.Population, ErrResponderExceedsPopulation)
		}
	}

	return nil
}
