// SPDX-License-Identifier: MIT
// Package: popmock/batch
//
// run.go — bounded concurrent execution of jobs.
//
// Contract:
//   • Outcomes are returned in job order, one per job, even on failure.
//   • Seeds are fixed before any worker starts (see seedFor).
//   • Each job gets a child logger tagged with its name.

package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/popmock/mockup"
	"github.com/katalvlaran/popmock/shuffle"
	"github.com/katalvlaran/popmock/tile"
)

const methodRun = "batch.Run"

// Options configure Run.
type Options struct {
	// Workers bounds concurrency; 0 ⇒ GOMAXPROCS.
	Workers int
	// FailFast cancels the remaining jobs on the first failure.
	FailFast bool
	// Seed is the parent of every derived job seed (0 ⇒ shuffle.DefaultSeed).
	Seed int64
	// Logger receives batch and per-job records; nil discards.
	Logger *slog.Logger
	// Mockup options applied to every job. The job's seed, logger and
	// non-zero knobs are applied after them and win.
	Mockup []mockup.Option
}

// Outcome is the result of one job.
type Outcome struct {
	Name   string
	Seed   int64
	RunID  string
	Table  tile.Table
	Report mockup.Report
	Err    error
}

// Run executes jobs with at most opts.Workers in flight.
// The returned error wraps ErrJobsFailed (joined with each job error) unless
// FailFast is set, in which case it is the first failure.
func Run(ctx context.Context, jobs []Job, opts Options) ([]Outcome, error) {
	if len(jobs) == 0 {
		return nil, fmt.Errorf("%s: %w", methodRun, ErrNoJobs)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	parent := opts.Seed
	if parent == 0 {
		parent = shuffle.DefaultSeed
	}

	jobs = append([]Job(nil), jobs...)
	out := make([]Outcome, len(jobs))
	for i := range jobs {
		if err := jobs[i].validate(i); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRun, err)
		}
		out[i] = Outcome{Name: jobs[i].Name, Seed: seedFor(jobs[i], parent, i)}
	}

	var (
		g    *errgroup.Group
		gctx = ctx
	)
	if opts.FailFast {
		g, gctx = errgroup.WithContext(ctx)
	} else {
		g = new(errgroup.Group)
	}
	g.SetLimit(workers)

	began := time.Now()
	log.Info("batch started", "jobs", len(jobs), "workers", workers, "fail_fast", opts.FailFast)
	for i := range jobs {
		g.Go(func() error {
			runJob(gctx, jobs[i], &out[i], opts.Mockup, log)
			if opts.FailFast {
				return out[i].Err
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("batch aborted", "err", err, "elapsed", time.Since(began))
		return out, fmt.Errorf("%s: %w", methodRun, err)
	}

	var errs []error
	for _, o := range out {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	log.Info("batch finished", "jobs", len(jobs), "failed", len(errs), "elapsed", time.Since(began))
	if len(errs) > 0 {
		return out, fmt.Errorf("%s: %d of %d: %w: %w", methodRun, len(errs), len(jobs), ErrJobsFailed, errors.Join(errs...))
	}

	return out, nil
}

// seedFor returns the job's own seed, or one derived from parent and the
// job's index.
func seedFor(j Job, parent int64, i int) int64 {
	if j.Seed != 0 {
		return j.Seed
	}

	return shuffle.DeriveSeed(parent, uint64(i))
}

// runJob builds one mockup and records the result in o.
func runJob(ctx context.Context, j Job, o *Outcome, base []mockup.Option, log *slog.Logger) {
	jlog := log.With("job", j.Name)

	opts := append([]mockup.Option(nil), base...)
	opts = append(opts, mockup.WithSeed(o.Seed), mockup.WithLogger(jlog))
	if j.MaxIterations > 0 {
		opts = append(opts, mockup.WithMaxIterations(j.MaxIterations))
	}
	if j.TimeLimit > 0 {
		opts = append(opts, mockup.WithTimeLimit(j.TimeLimit))
	}
	if j.Remainder != "" {
		// validated in Run
		p, _ := tile.ParseRemainderPolicy(j.Remainder)
		opts = append(opts, mockup.WithRemainder(p))
	}

	m, err := mockup.New(j.Params, opts...)
	if err != nil {
		o.Err = fmt.Errorf("job %q: %w", j.Name, err)
		return
	}
	o.RunID = m.RunID().String()

	if err = m.Run(ctx); err != nil {
		jlog.Warn("job failed", "err", err)
		o.Err = fmt.Errorf("job %q: %w", j.Name, err)
		return
	}
	o.Table = m.Table()
	o.Report, _ = m.Report()
}
