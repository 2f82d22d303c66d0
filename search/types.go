// SPDX-License-Identifier: MIT
// Package: popmock/search
//
// types.go — Options, Status and Result.

package search

import (
	"time"

	"github.com/katalvlaran/popmock/tile"
)

// Defaults for DefaultOptions.
const (
	DefaultMaxIterations  = 5_000_000
	DefaultChunkStart     = 0.01
	DefaultChunkStep      = 0.0001
	DefaultChunkCeiling   = 0.5
	DefaultResponderChunk = 0.1
)

// Options configures both search loops.
//
// Fields:
//   - MaxIterations  — hard cap on applied moves (≥ 1).
//   - TimeLimit      — wall-clock budget; 0 means no time limit.
//   - ChunkStart     — population chunk at iteration 0.
//   - ChunkStep      — population chunk growth per iteration.
//   - ChunkCeiling   — largest population chunk ever used (≤ 1).
//   - ResponderChunk — fixed responder chunk for the KS loop.
//   - Baseline       — PSI baseline shares; nil means uniform 1/N.
//   - OnIteration    — optional hook called with (iteration, metric) before
//     every target check. It must not retain or mutate anything.
type Options struct {
	MaxIterations  int
	TimeLimit      time.Duration
	ChunkStart     float64
	ChunkStep      float64
	ChunkCeiling   float64
	ResponderChunk float64
	Baseline       []float64
	OnIteration    func(iter int, value float64)
}

// DefaultOptions returns the schedule 0.01 + i·0.0001 capped at 0.5, a
// responder chunk of 0.1 and five million iterations.
func DefaultOptions() Options {
	return Options{
		MaxIterations:  DefaultMaxIterations,
		ChunkStart:     DefaultChunkStart,
		ChunkStep:      DefaultChunkStep,
		ChunkCeiling:   DefaultChunkCeiling,
		ResponderChunk: DefaultResponderChunk,
	}
}

// Status tags a Result.
type Status int

const (
	// Converged means the metric reached the target.
	Converged Status = iota
	// NonConverged means the loop stopped before reaching the target.
	NonConverged
)

// String implements fmt.Stringer.
func (s Status) String() string {
	if s == Converged {
		return "converged"
	}

	return "non-converged"
}

// StopReason records why a loop returned.
type StopReason string

const (
	ReasonTarget     StopReason = "target"     // metric ≥ target
	ReasonIterations StopReason = "iterations" // MaxIterations exhausted
	ReasonTimeLimit  StopReason = "time-limit" // TimeLimit exhausted
	ReasonCanceled   StopReason = "canceled"   // context done
	ReasonError      StopReason = "error"      // metric or move failed
)

// Result is the outcome of a search loop.
// On NonConverged, Table is the last state reached, not the input.
type Result struct {
	Status     Status
	Reason     StopReason
	Table      tile.Table
	Value      float64 // metric of Table; 0 when Reason == ReasonError
	Target     float64
	Iterations int // moves applied
	Elapsed    time.Duration
}

// Converged reports Status == Converged.
func (r Result) Converged() bool {
	return r.Status == Converged
}
