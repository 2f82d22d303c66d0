// SPDX-License-Identifier: MIT
// Package: popmock/mockup
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless input (nil rng,
//     nil logger, non-positive budgets). Run itself never panics.
//   • Options apply in order; later options override earlier ones.

package mockup

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/popmock/search"
	"github.com/katalvlaran/popmock/shuffle"
	"github.com/katalvlaran/popmock/tile"
)

// Option customizes a Mockup before it runs.
type Option func(*config)

// WithSeed seeds the mockup's random stream (0 ⇒ shuffle.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = shuffle.NewRand(seed)
	}
}

// WithRand hands the mockup an existing stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mockup: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("mockup: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithMaxIterations caps each search phase. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("mockup: WithMaxIterations(n<1)")
	}
	return func(c *config) {
		c.search.MaxIterations = n
	}
}

// WithTimeLimit sets a wall-clock budget per search phase; 0 disables it.
// Panics if d < 0.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("mockup: WithTimeLimit(d<0)")
	}
	return func(c *config) {
		c.search.TimeLimit = d
	}
}

// WithRemainder selects how uneven uniform splits are handled.
func WithRemainder(p tile.RemainderPolicy) Option {
	return func(c *config) {
		c.remainder = p
	}
}

// WithSearchOptions replaces the search options wholesale. A hook in
// opts.OnIteration still runs, after the mockup's own progress logging.
// Panics if opts fails search.Options.Validate.
func WithSearchOptions(opts search.Options) Option {
	if err := opts.Validate(); err != nil {
		panic("mockup: WithSearchOptions: " + err.Error())
	}
	return func(c *config) {
		c.search = opts
	}
}

// WithProgressEvery logs search progress at Debug every n iterations.
// Panics if n < 1.
func WithProgressEvery(n int) Option {
	if n < 1 {
		panic("mockup: WithProgressEvery(n<1)")
	}
	return func(c *config) {
		c.progressEvery = n
	}
}
