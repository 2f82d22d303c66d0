// SPDX-License-Identifier: MIT
// Package: popmock/config
//
// errors.go — sentinel errors for the config package.

package config

import "errors"

// ErrInvalidConfig indicates a setting outside its domain.
var ErrInvalidConfig = errors.New("config: invalid setting")
