// SPDX-License-Identifier: MIT
// Package: popmock/metric
//
// ks.go — Kolmogorov–Smirnov separation over ordered tiles.
//
// Tiles are walked in index order; the caller is responsible for the order
// meaning "riskiest first". Reordering a table changes its KS.

package metric

import (
	"fmt"

	"github.com/katalvlaran/popmock/tile"
)

const (
	methodKS      = "KS"
	methodKSCurve = "KSCurve"
)

// Curve holds the per-tile columns behind a KS value.
type Curve struct {
	ResponderShare    []float64 // Responder[i] / ΣResponder
	NonResponderShare []float64 // NonResponder[i] / ΣNonResponder
	CumResponder      []float64 // running sum of ResponderShare
	CumNonResponder   []float64 // running sum of NonResponderShare
	KS                []float64 // CumResponder[i] − CumNonResponder[i]
}

// Max returns the largest per-tile KS and its tile index.
// An empty curve returns (0, -1).
func (c Curve) Max() (float64, int) {
	if len(c.KS) == 0 {
		return 0, -1
	}
	best, at := c.KS[0], 0
	for i := 1; i < len(c.KS); i++ {
		if c.KS[i] > best {
			best, at = c.KS[i], i
		}
	}

	return best, at
}

// KSCurve computes the cumulative responder/non-responder columns of t.
//
// Contract:
//   - t is non-empty (else ErrEmptyTable) and passes tile.Table.Validate.
//   - ΣResponder > 0 and ΣNonResponder > 0 (else ErrDomain).
//
// Complexity: O(N).
func KSCurve(t tile.Table) (Curve, error) {
	n := t.Len()
	if n == 0 {
		return Curve{}, fmt.Errorf("%s: %w", methodKSCurve, ErrEmptyTable)
	}
	if err := t.Validate(); err != nil {
		return Curve{}, fmt.Errorf("%s: %w", methodKSCurve, err)
	}

	resp := t.TotalResponder()
	nonResp := t.TotalNonResponder()
	if resp <= 0 {
		return Curve{}, fmt.Errorf("%s: responder total=%d: %w", methodKSCurve, resp, ErrDomain)
	}
	if nonResp <= 0 {
		return Curve{}, fmt.Errorf("%s: non-responder total=%d: %w", methodKSCurve, nonResp, ErrDomain)
	}

	c := Curve{
		ResponderShare:    make([]float64, n),
		NonResponderShare: make([]float64, n),
		CumResponder:      make([]float64, n),
		CumNonResponder:   make([]float64, n),
		KS:                make([]float64, n),
	}
	var cr, cn float64
	for i, x := range t {
		c.ResponderShare[i] = float64(x.Responder) / float64(resp)
		c.NonResponderShare[i] = float64(x.NonResponder()) / float64(nonResp)
		cr += c.ResponderShare[i]
		cn += c.NonResponderShare[i]
		c.CumResponder[i] = cr
		c.CumNonResponder[i] = cn
		c.KS[i] = cr - cn
	}

	return c, nil
}

// KS returns max_i KS[i] for t.
func KS(t tile.Table) (float64, error) {
	c, err := KSCurve(t)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodKS, err)
	}
	ks, _ := c.Max()

	return ks, nil
}
