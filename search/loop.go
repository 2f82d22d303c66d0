// SPDX-License-Identifier: MIT
// Package: popmock/search
//
// loop.go — the bounded iterate-until-target engine shared by PSI and KS.
//
// Per iteration:
//   1. measure the current table; a measurement error stops the loop.
//   2. call OnIteration, then stop with Converged if value ≥ target.
//   3. stop with ErrNonConvergence once MaxIterations moves were applied.
//   4. every checkEvery iterations: honor ctx and the TimeLimit deadline.
//   5. apply one move to get the next table.

package search

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/popmock/tile"
)

// checkMask throttles ctx/deadline checks to once per 1024 iterations.
const checkMask = 1024 - 1

type (
	measureFunc func(tile.Table) (float64, error)
	moveFunc    func(t tile.Table, iter int) (tile.Table, error)
)

// iterate runs the loop. It never mutates start.
func iterate(
	ctx context.Context,
	method string,
	start tile.Table,
	target float64,
	opts Options,
	measure measureFunc,
	move moveFunc,
) (Result, error) {
	began := time.Now()
	var (
		useDeadline bool
		deadline    time.Time
	)
	if opts.TimeLimit > 0 {
		useDeadline = true
		deadline = began.Add(opts.TimeLimit)
	}

	cur := start.Clone()
	res := Result{Status: NonConverged, Target: target}
	finish := func(reason StopReason, iter int, value float64) Result {
		res.Reason = reason
		res.Table = cur
		res.Value = value
		res.Iterations = iter
		res.Elapsed = time.Since(began)
		if reason == ReasonTarget {
			res.Status = Converged
		}

		return res
	}

	var (
		value float64
		next  tile.Table
		err   error
	)
	for iter := 0; ; iter++ {
		value, err = measure(cur)
		if err != nil {
			return finish(ReasonError, iter, 0), fmt.Errorf("%s: iteration %d: %w", method, iter, err)
		}
		if opts.OnIteration != nil {
			opts.OnIteration(iter, value)
		}
		if value >= target {
			return finish(ReasonTarget, iter, value), nil
		}
		if iter >= opts.MaxIterations {
			return finish(ReasonIterations, iter, value), fmt.Errorf("%s: %d iterations, value=%.6f < target=%.6f: %w",
				method, iter, value, target, ErrNonConvergence)
		}
		if iter&checkMask == 0 {
			if err = ctx.Err(); err != nil {
				return finish(ReasonCanceled, iter, value), fmt.Errorf("%s: iteration %d: %w", method, iter, err)
			}
			if useDeadline && time.Now().After(deadline) {
				return finish(ReasonTimeLimit, iter, value), fmt.Errorf("%s: time limit %v after %d iterations, value=%.6f < target=%.6f: %w",
					method, opts.TimeLimit, iter, value, target, ErrNonConvergence)
			}
		}

		next, err = move(cur, iter)
		if err != nil {
			return finish(ReasonError, iter, value), fmt.Errorf("%s: move %d: %w", method, iter, err)
		}
		cur = next
	}
}
