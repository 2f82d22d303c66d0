// SPDX-License-Identifier: MIT
// Package: popmock/cmd/popmock
//
// run.go — build one mockup and print its gains chart.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/popmock/gains"
	"github.com/katalvlaran/popmock/mockup"
)

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build one tile table and print its gains chart",
		Args:  cobra.NoArgs,
		RunE:  a.run,
	}

	f := cmd.Flags()
	f.Int("population", 10000, "total population")
	f.Int("responders", 1000, "total responders")
	f.Int("tiles", 10, "number of tiles")
	f.Float64("ks", 0.4, "KS target in (0,1]")
	f.Float64("psi", 0.1, "PSI target (> 0)")
	f.String("format", "text", "output format: text, csv, yaml")
	f.String("metrics", "", "comma-separated metric groups (empty = all)")
	a.bind(f, map[string]string{
		"params.population_size": "population",
		"params.responder_size":  "responders",
		"params.ntiles":          "tiles",
		"params.ks_target":       "ks",
		"params.psi_target":      "psi",
		"output.format":          "format",
		"output.metrics":         "metrics",
	})

	return cmd
}

func (a *app) run(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	m, err := mockup.New(a.cfg.Params, a.cfg.MockupOptions(a.log)...)
	if err != nil {
		return err
	}
	if err = m.Run(ctx); err != nil {
		return err
	}
	report, err := m.Report()
	if err != nil {
		return err
	}
	a.log.Info("mockup finished",
		"run_id", report.RunID,
		"psi", report.PSI,
		"ks", report.KS,
		"iterations", report.PSIIterations+report.KSIterations,
	)

	// validated by config.Load
	metrics, _ := gains.ParseMetrics(a.cfg.Output.Metrics)
	format, _ := gains.ParseFormat(a.cfg.Output.Format)

	chart, err := gains.Build(m.Table(), nil, metrics...)
	if err != nil {
		return fmt.Errorf("gains chart: %w", err)
	}

	return chart.Write(cmd.OutOrStdout(), format)
}
