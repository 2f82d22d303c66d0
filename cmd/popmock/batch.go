// SPDX-License-Identifier: MIT
// Package: popmock/cmd/popmock
//
// batch.go — run a YAML job list concurrently.

package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/popmock/batch"
)

func (a *app) batchCmd() *cobra.Command {
	var tables bool
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Build every job in a YAML file and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.batch(cmd, args[0], tables)
		},
	}

	f := cmd.Flags()
	f.Int("workers", 0, "concurrent jobs (0 = GOMAXPROCS)")
	f.Bool("fail-fast", false, "cancel remaining jobs on the first failure")
	f.BoolVar(&tables, "tables", false, "include final tables in the summary")
	a.bind(f, map[string]string{
		"batch.workers":   "workers",
		"batch.fail_fast": "fail-fast",
	})

	return cmd
}

func (a *app) batch(cmd *cobra.Command, path string, tables bool) error {
	file, err := batch.Load(path)
	if err != nil {
		return err
	}
	seed := file.Seed
	if seed == 0 {
		seed = a.cfg.Search.Seed
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out, runErr := batch.Run(ctx, file.Jobs, batch.Options{
		Workers:  a.cfg.Batch.Workers,
		FailFast: a.cfg.Batch.FailFast,
		Seed:     seed,
		Logger:   a.log,
		Mockup:   a.cfg.MockupOptions(nil),
	})
	if out != nil {
		if err = batch.WriteYAML(cmd.OutOrStdout(), batch.Summarize(out, tables)); err != nil {
			return err
		}
	}

	return runErr
}
