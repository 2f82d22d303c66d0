// SPDX-License-Identifier: MIT
// Package: popmock/tile
//
// uniform.go — uniform initial splits for both columns.
//
// The search starts from a flat table: every tile gets total/n, and the
// RemainderPolicy decides what to do with total mod n.

package tile

import "fmt"

const (
	methodUniform        = "Uniform"
	methodNewPopulation  = "NewPopulation"
	methodWithResponders = "WithResponders"
	minTiles             = 1
)

// Uniform splits total into n shares.
//
// Contract:
//   - total ≥ 0 and n ≥ 1 (else ErrBadSize).
//   - RemainderSpread: shares differ by at most one, larger shares first,
//     and sum to total.
//   - RemainderDrop: every share is total/n (integer division).
//
// Complexity: O(n).
func Uniform(total, n int, policy RemainderPolicy) ([]int, error) {
	if n < minTiles {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodUniform, n, minTiles, ErrBadSize)
	}
	if total < 0 {
		return nil, fmt.Errorf("%s: total=%d < 0: %w", methodUniform, total, ErrBadSize)
	}

	base := total / n
	rem := total % n
	switch policy {
	case RemainderSpread:
	case RemainderDrop:
		rem = 0
	default:
		return nil, fmt.Errorf("%s: %v: %w", methodUniform, policy, ErrUnknownRemainder)
	}

	out := make([]int, n)
	for i := range out {
		out[i] = base
		if i < rem {
			out[i]++
		}
	}

	return out, nil
}

// NewPopulation builds the initial table: Population split uniformly over
// ntiles, Responder zero everywhere.
//
// ntiles must not exceed size, otherwise some tile would start empty and
// the PSI of the table would be undefined.
func NewPopulation(size, ntiles int, policy RemainderPolicy) (Table, error) {
	if size < 1 {
		return nil, fmt.Errorf("%s: size=%d < 1: %w", methodNewPopulation, size, ErrBadSize)
	}
	if ntiles > size {
		return nil, fmt.Errorf("%s: ntiles=%d > size=%d: %w", methodNewPopulation, ntiles, size, ErrBadSize)
	}
	shares, err := Uniform(size, ntiles, policy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewPopulation, err)
	}

	t := make(Table, ntiles)
	for i, p := range shares {
		t[i].Population = p
	}

	return t, nil
}

// WithResponders returns a copy of t whose Responder column is size split
// uniformly over the tiles. The Population column is untouched.
//
// Tiles are capacity-bound: a tile whose population is below its uniform
// share is filled to its population, and the overflow is spread evenly over
// the tiles that still have room (see fillCapped). The column therefore
// always sums to the split total, and size > TotalPopulation is the only
// way to get ErrResponderExceedsPopulation.
func (t Table) WithResponders(size int, policy RemainderPolicy) (Table, error) {
	if size < 0 {
		return nil, fmt.Errorf("%s: size=%d < 0: %w", methodWithResponders, size, ErrBadSize)
	}
	if total := t.TotalPopulation(); size > total {
		return nil, fmt.Errorf("%s: size=%d > population=%d: %w",
			methodWithResponders, size, total, ErrResponderExceedsPopulation)
	}
	shares, err := Uniform(size, len(t), policy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodWithResponders, err)
	}
	out := t.Clone()
	fillCapped(out, shares)
	if err = out.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodWithResponders, err)
	}

	return out, nil
}

// fillCapped sets Responder[i] = min(shares[i], Population[i]) and hands
// the clipped overflow to tiles with room, evenly and lowest index first
// for the leftover units. The caller guarantees Σshares ≤ ΣPopulation.
//
// Complexity: O(N²) worst case; every round either fills a tile or
// exhausts the overflow.
func fillCapped(t Table, shares []int) {
	var overflow int
	for i, r := range shares {
		if room := t[i].Population; r > room {
			overflow += r - room
			r = room
		}
		t[i].Responder = r
	}

	open := make([]int, 0, len(t))
	for overflow > 0 {
		open = open[:0]
		for i := range t {
			if t[i].Responder < t[i].Population {
				open = append(open, i)
			}
		}
		if len(open) == 0 {
			return
		}
		per, rem := overflow/len(open), overflow%len(open)
		for k, i := range open {
			give := per
			if k < rem {
				give++
			}
			if room := t[i].NonResponder(); give > room {
				give = room
			}
			t[i].Responder += give
			overflow -= give
		}
	}
}
