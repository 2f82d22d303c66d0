// SPDX-License-Identifier: MIT
// Package: popmock/batch
//
// errors.go — sentinel errors for the batch package.

package batch

import "errors"

var (
	// ErrNoJobs indicates an empty batch.
	ErrNoJobs = errors.New("batch: no jobs")

	// ErrJobsFailed indicates that at least one job did not produce a table.
	ErrJobsFailed = errors.New("batch: jobs failed")
)
