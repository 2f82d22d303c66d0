// SPDX-License-Identifier: MIT
// Package: popmock/mockup
//
// errors.go — sentinel errors for the mockup package.

package mockup

import "errors"

var (
	// ErrInvalidParams indicates construction parameters rejected before
	// any search starts (sizes, tile count, targets).
	ErrInvalidParams = errors.New("mockup: invalid parameters")

	// ErrNotRun indicates a result was requested before a successful Run.
	ErrNotRun = errors.New("mockup: not run")
)
