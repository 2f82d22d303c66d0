// SPDX-License-Identifier: MIT
// Package: popmock/mockup
//
// params.go — construction parameters and their validation.
//
// Validation order (first failure wins):
//   • PopulationSize ≥ 1
//   • 1 ≤ ResponderSize < PopulationSize (KS needs both classes)
//   • 2 ≤ NTiles ≤ PopulationSize (responder move divides by N−1; no empty tile)
//   • 0 < KSTarget ≤ 1
//   • PSITarget > 0 and finite

package mockup

import (
	"fmt"
	"math"
)

const (
	methodValidate = "Params.Validate"
	minTiles       = 2
)

// Params are the five construction parameters of a mockup.
type Params struct {
	PopulationSize int     `json:"population_size" yaml:"population_size" mapstructure:"population_size"`
	ResponderSize  int     `json:"responder_size" yaml:"responder_size" mapstructure:"responder_size"`
	NTiles         int     `json:"ntiles" yaml:"ntiles" mapstructure:"ntiles"`
	KSTarget       float64 `json:"ks_target" yaml:"ks_target" mapstructure:"ks_target"`
	PSITarget      float64 `json:"psi_target" yaml:"psi_target" mapstructure:"psi_target"`
}

// Validate checks p; every failure wraps ErrInvalidParams.
func (p Params) Validate() error {
	if p.PopulationSize < 1 {
		return fmt.Errorf("%s: population_size=%d < 1: %w", methodValidate, p.PopulationSize, ErrInvalidParams)
	}
	if p.ResponderSize < 1 || p.ResponderSize >= p.PopulationSize {
		return fmt.Errorf("%s: responder_size=%d not in [1,%d): %w",
			methodValidate, p.ResponderSize, p.PopulationSize, ErrInvalidParams)
	}
	if p.NTiles < minTiles || p.NTiles > p.PopulationSize {
		return fmt.Errorf("%s: ntiles=%d not in [%d,%d]: %w",
			methodValidate, p.NTiles, minTiles, p.PopulationSize, ErrInvalidParams)
	}
	if !(p.KSTarget > 0 && p.KSTarget <= 1) {
		return fmt.Errorf("%s: ks_target=%g not in (0,1]: %w", methodValidate, p.KSTarget, ErrInvalidParams)
	}
	if !(p.PSITarget > 0) || math.IsInf(p.PSITarget, 0) {
		return fmt.Errorf("%s: psi_target=%g must be positive and finite: %w", methodValidate, p.PSITarget, ErrInvalidParams)
	}

	return nil
}
