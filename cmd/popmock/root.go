// SPDX-License-Identifier: MIT
// Package: popmock/cmd/popmock
//
// root.go — root command, global flags, config loading and logging.

package main

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/popmock/config"
	"github.com/katalvlaran/popmock/search"
)

// app is the state shared by every subcommand.
type app struct {
	v       *viper.Viper
	cfgPath string
	verbose bool

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "popmock",
		Short: "Synthetic PSI/KS tile table generator",
		Long: `popmock builds tile tables (deciles, vigintiles, ...) whose Population
Stability Index and Kolmogorov–Smirnov statistic reach requested targets,
for mocking up scorecard validation reports.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "shorthand for --log-level debug")
	pf.Int64("seed", 0, "random seed (0 = fixed default)")
	pf.Int("max-iterations", search.DefaultMaxIterations, "iteration cap per search phase")
	pf.Duration("time-limit", 0, "wall-clock budget per search phase (0 = none)")
	pf.String("remainder", "spread", "uneven split policy: spread or drop")
	a.bind(pf, map[string]string{
		"log.level":             "log-level",
		"search.seed":           "seed",
		"search.max_iterations": "max-iterations",
		"search.time_limit":     "time-limit",
		"search.remainder":      "remainder",
	})

	root.AddCommand(a.runCmd(), a.batchCmd(), a.configCmd())

	return root
}

// bind maps viper keys to flags. A missing flag is a programming error.
func (a *app) bind(fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := a.v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic("popmock: bind " + key + ": " + err.Error())
		}
	}
}

// load resolves the configuration and installs the logger.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgPath)
	if err != nil {
		return err
	}
	level, _ := config.ParseLevel(cfg.Log.Level)
	if a.verbose {
		level = slog.LevelDebug
	}

	a.cfg = cfg
	a.log = newLogger(cmd.ErrOrStderr(), level)
	slog.SetDefault(a.log)

	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}
