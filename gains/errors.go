// SPDX-License-Identifier: MIT
// Package: popmock/gains
//
// errors.go — sentinel errors for the gains package.

package gains

import "errors"

var (
	// ErrUnknownMetric indicates a metric group name gains does not know.
	ErrUnknownMetric = errors.New("gains: unknown metric")

	// ErrUnknownFormat indicates an unsupported output format.
	ErrUnknownFormat = errors.New("gains: unknown format")
)
