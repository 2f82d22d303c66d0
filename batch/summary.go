// SPDX-License-Identifier: MIT
// Package: popmock/batch
//
// summary.go — a YAML-friendly view of outcomes.

package batch

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/popmock/tile"
)

// Summary is the serialized form of an Outcome.
type Summary struct {
	Name          string     `yaml:"name"`
	RunID         string     `yaml:"run_id,omitempty"`
	Seed          int64      `yaml:"seed"`
	PSI           float64    `yaml:"psi,omitempty"`
	KS            float64    `yaml:"ks,omitempty"`
	PSIIterations int        `yaml:"psi_iterations,omitempty"`
	KSIterations  int        `yaml:"ks_iterations,omitempty"`
	Error         string     `yaml:"error,omitempty"`
	Table         tile.Table `yaml:"table,omitempty"`
}

// Summarize converts outcomes in order. withTables controls whether the
// final tables are included.
func Summarize(outs []Outcome, withTables bool) []Summary {
	res := make([]Summary, len(outs))
	for i, o := range outs {
		s := Summary{
			Name:          o.Name,
			RunID:         o.RunID,
			Seed:          o.Seed,
			PSI:           o.Report.PSI,
			KS:            o.Report.KS,
			PSIIterations: o.Report.PSIIterations,
			KSIterations:  o.Report.KSIterations,
		}
		if o.Err != nil {
			s.Error = o.Err.Error()
		}
		if withTables {
			s.Table = o.Table
		}
		res[i] = s
	}

	return res
}

// WriteYAML writes summaries as a YAML sequence.
func WriteYAML(w io.Writer, s []Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}

	return enc.Close()
}
