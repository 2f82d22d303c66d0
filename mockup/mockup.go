// SPDX-License-Identifier: MIT
// Package: popmock/mockup
//
// mockup.go — Mockup, its Run sequence and read-only accessors.

package mockup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/popmock/search"
	"github.com/katalvlaran/popmock/tile"
)

const methodRun = "Mockup.Run"

// Mockup generates one synthetic tile table.
type Mockup struct {
	params Params
	cfg    config
	id     uuid.UUID

	table tile.Table
	psi   search.Result
	ks    search.Result
}

// Report summarizes the last Run.
type Report struct {
	RunID         string        `json:"run_id" yaml:"run_id"`
	PSI           float64       `json:"psi" yaml:"psi"`
	KS            float64       `json:"ks" yaml:"ks"`
	PSIIterations int           `json:"psi_iterations" yaml:"psi_iterations"`
	KSIterations  int           `json:"ks_iterations" yaml:"ks_iterations"`
	PSIElapsed    time.Duration `json:"psi_elapsed" yaml:"psi_elapsed"`
	KSElapsed     time.Duration `json:"ks_elapsed" yaml:"ks_elapsed"`
}

// New validates p and resolves opts. No search runs here.
func New(p Params, opts ...Option) (*Mockup, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Mockup{
		params: p,
		cfg:    newConfig(opts...),
		id:     uuid.New(),
	}, nil
}

// Run builds the table from scratch: uniform population, PSI search,
// capacity-bound uniform responders, KS search. On failure the previous
// table (if any) is kept and the error says which phase failed.
func (m *Mockup) Run(ctx context.Context) error {
	log := m.cfg.logger.With("run_id", m.id.String())
	log.Info("mockup started",
		"population", m.params.PopulationSize,
		"responders", m.params.ResponderSize,
		"tiles", m.params.NTiles,
		"psi_target", m.params.PSITarget,
		"ks_target", m.params.KSTarget,
	)

	t, err := tile.NewPopulation(m.params.PopulationSize, m.params.NTiles, m.cfg.remainder)
	if err != nil {
		return fmt.Errorf("%s: initial population: %w", methodRun, err)
	}

	psiRes, err := search.PSI(ctx, t, m.params.PSITarget, m.cfg.rng, m.searchOptions(log, "psi"))
	if err != nil {
		log.Warn("psi search stopped", "reason", psiRes.Reason, "iterations", psiRes.Iterations, "psi", psiRes.Value)
		return fmt.Errorf("%s: psi phase: %w", methodRun, err)
	}
	log.Info("psi target reached", "psi", psiRes.Value, "iterations", psiRes.Iterations, "elapsed", psiRes.Elapsed)

	t, err = psiRes.Table.WithResponders(m.params.ResponderSize, m.cfg.remainder)
	if err != nil {
		return fmt.Errorf("%s: responder population: %w", methodRun, err)
	}

	ksRes, err := search.KS(ctx, t, m.params.KSTarget, m.cfg.rng, m.searchOptions(log, "ks"))
	if err != nil {
		log.Warn("ks search stopped", "reason", ksRes.Reason, "iterations", ksRes.Iterations, "ks", ksRes.Value)
		return fmt.Errorf("%s: ks phase: %w", methodRun, err)
	}
	log.Info("ks target reached", "ks", ksRes.Value, "iterations", ksRes.Iterations, "elapsed", ksRes.Elapsed)

	m.psi, m.ks = psiRes, ksRes
	m.table = ksRes.Table

	return nil
}

// searchOptions chains Debug progress logging in front of any user hook.
func (m *Mockup) searchOptions(log *slog.Logger, phase string) search.Options {
	opts := m.cfg.search
	user := opts.OnIteration
	every := m.cfg.progressEvery
	opts.OnIteration = func(iter int, value float64) {
		if iter > 0 && iter%every == 0 {
			log.Debug("search progress", "phase", phase, "iteration", iter, "value", value)
		}
		if user != nil {
			user(iter, value)
		}
	}

	return opts
}

// Table returns a copy of the final table, or nil before a successful Run.
func (m *Mockup) Table() tile.Table {
	return m.table.Clone()
}

// Report summarizes the last successful Run.
func (m *Mockup) Report() (Report, error) {
	if m.table == nil {
		return Report{}, ErrNotRun
	}

	return Report{
		RunID:         m.id.String(),
		PSI:           m.psi.Value,
		KS:            m.ks.Value,
		PSIIterations: m.psi.Iterations,
		KSIterations:  m.ks.Iterations,
		PSIElapsed:    m.psi.Elapsed,
		KSElapsed:     m.ks.Elapsed,
	}, nil
}

// Params returns the construction parameters.
func (m *Mockup) Params() Params { return m.params }

// RunID identifies this mockup in logs and reports.
func (m *Mockup) RunID() uuid.UUID { return m.id }

// PopulationSize returns Params.PopulationSize.
func (m *Mockup) PopulationSize() int { return m.params.PopulationSize }

// ResponderSize returns Params.ResponderSize.
func (m *Mockup) ResponderSize() int { return m.params.ResponderSize }

// NTiles returns Params.NTiles.
func (m *Mockup) NTiles() int { return m.params.NTiles }

// KSTarget returns Params.KSTarget.
func (m *Mockup) KSTarget() float64 { return m.params.KSTarget }

// PSITarget returns Params.PSITarget.
func (m *Mockup) PSITarget() float64 { return m.params.PSITarget }

// Remainder returns the split policy in effect.
func (m *Mockup) Remainder() tile.RemainderPolicy { return m.cfg.remainder }
