// SPDX-License-Identifier: MIT
// Package: popmock/config
//
// config.go — Config, defaults, loading and validation.

package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/popmock/gains"
	"github.com/katalvlaran/popmock/mockup"
	"github.com/katalvlaran/popmock/search"
	"github.com/katalvlaran/popmock/tile"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "POPMOCK"

// Config is the full effective configuration.
type Config struct {
	Params mockup.Params `mapstructure:"params" yaml:"params"`
	Search Search        `mapstructure:"search" yaml:"search"`
	Output Output        `mapstructure:"output" yaml:"output"`
	Log    Log           `mapstructure:"log" yaml:"log"`
	Batch  Batch         `mapstructure:"batch" yaml:"batch"`
}

// Search holds the search budget and randomness.
type Search struct {
	Seed          int64         `mapstructure:"seed" yaml:"seed"`
	MaxIterations int           `mapstructure:"max_iterations" yaml:"max_iterations"`
	TimeLimit     time.Duration `mapstructure:"time_limit" yaml:"time_limit"`
	Remainder     string        `mapstructure:"remainder" yaml:"remainder"`
	ProgressEvery int           `mapstructure:"progress_every" yaml:"progress_every"`
}

// Output selects the gains chart rendering.
type Output struct {
	Format  string `mapstructure:"format" yaml:"format"`
	Metrics string `mapstructure:"metrics" yaml:"metrics"`
}

// Log selects the log level: debug, info, warn or error.
type Log struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Batch configures the batch command.
type Batch struct {
	Workers  int  `mapstructure:"workers" yaml:"workers"`
	FailFast bool `mapstructure:"fail_fast" yaml:"fail_fast"`
}

// SetDefaults registers every key on v. AutomaticEnv only resolves keys
// viper already knows, so this must run before Load.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("params.population_size", 10000)
	v.SetDefault("params.responder_size", 1000)
	v.SetDefault("params.ntiles", 10)
	v.SetDefault("params.ks_target", 0.4)
	v.SetDefault("params.psi_target", 0.1)

	v.SetDefault("search.seed", 0)
	v.SetDefault("search.max_iterations", search.DefaultMaxIterations)
	v.SetDefault("search.time_limit", "0s")
	v.SetDefault("search.remainder", tile.RemainderSpread.String())
	v.SetDefault("search.progress_every", 10000)

	v.SetDefault("output.format", string(gains.FormatText))
	v.SetDefault("output.metrics", "")

	v.SetDefault("log.level", "info")

	v.SetDefault("batch.workers", 0) // 0 = GOMAXPROCS
	v.SetDefault("batch.fail_fast", false)
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (if non-empty) into v, unmarshals and validates.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config.Load: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	return cfg, nil
}

// Validate checks every enumerated or bounded setting. Params are checked
// separately by the run command, since batch jobs carry their own.
func (c Config) Validate() error {
	if c.Search.MaxIterations < 1 {
		return fmt.Errorf("search.max_iterations=%d < 1: %w", c.Search.MaxIterations, ErrInvalidConfig)
	}
	if c.Search.TimeLimit < 0 {
		return fmt.Errorf("search.time_limit=%v < 0: %w", c.Search.TimeLimit, ErrInvalidConfig)
	}
	if c.Search.ProgressEvery < 1 {
		return fmt.Errorf("search.progress_every=%d < 1: %w", c.Search.ProgressEvery, ErrInvalidConfig)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers=%d < 0: %w", c.Batch.Workers, ErrInvalidConfig)
	}
	if _, err := tile.ParseRemainderPolicy(c.Search.Remainder); err != nil {
		return fmt.Errorf("search.remainder: %w: %w", ErrInvalidConfig, err)
	}
	if _, err := gains.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w: %w", ErrInvalidConfig, err)
	}
	if _, err := gains.ParseMetrics(c.Output.Metrics); err != nil {
		return fmt.Errorf("output.metrics: %w: %w", ErrInvalidConfig, err)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// MockupOptions converts the search section. logger may be nil.
// Call on a validated Config.
func (c Config) MockupOptions(logger *slog.Logger) []mockup.Option {
	policy, _ := tile.ParseRemainderPolicy(c.Search.Remainder)
	opts := []mockup.Option{
		mockup.WithSeed(c.Search.Seed),
		mockup.WithMaxIterations(c.Search.MaxIterations),
		mockup.WithTimeLimit(c.Search.TimeLimit),
		mockup.WithRemainder(policy),
		mockup.WithProgressEvery(c.Search.ProgressEvery),
	}
	if logger != nil {
		opts = append(opts, mockup.WithLogger(logger))
	}

	return opts
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level=%q: %w", s, ErrInvalidConfig)
	}

	return l, nil
}

// Write renders c as YAML.
func (c Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}

	return enc.Close()
}
