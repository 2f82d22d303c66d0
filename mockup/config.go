// SPDX-License-Identifier: MIT
// Package: popmock/mockup
//
// config.go — resolved configuration with deterministic defaults.
//
// Defaults:
//   • rng           = shuffle.NewRand(0)   (fixed DefaultSeed)
//   • logger        = discards everything
//   • search        = search.DefaultOptions()
//   • remainder     = tile.RemainderSpread
//   • progressEvery = 10000

package mockup

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/popmock/search"
	"github.com/katalvlaran/popmock/shuffle"
	"github.com/katalvlaran/popmock/tile"
)

const defaultProgressEvery = 10000

type config struct {
	rng           *rand.Rand
	logger        *slog.Logger
	search        search.Options
	remainder     tile.RemainderPolicy
	progressEvery int
}

// newConfig applies opts over the defaults, in order.
func newConfig(opts ...Option) config {
	cfg := config{
		rng:           nil,
		logger:        nil,
		search:        search.DefaultOptions(),
		remainder:     tile.RemainderSpread,
		progressEvery: defaultProgressEvery,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Defaults resolve after opts.
	if cfg.rng == nil {
		cfg.rng = shuffle.NewRand(0)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return cfg
}
