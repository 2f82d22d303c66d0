// SPDX-License-Identifier: MIT
// Package: popmock/batch
//
// job.go — Job, File and YAML decoding.

package batch

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/popmock/mockup"
	"github.com/katalvlaran/popmock/tile"
)

// Job is one mockup to build. Zero-valued knobs fall back to the batch
// Options (and from there to mockup defaults).
type Job struct {
	Name          string        `yaml:"name"`
	Params        mockup.Params `yaml:"params"`
	Seed          int64         `yaml:"seed,omitempty"`
	MaxIterations int           `yaml:"max_iterations,omitempty"`
	TimeLimit     time.Duration `yaml:"time_limit,omitempty"`
	Remainder     string        `yaml:"remainder,omitempty"`
}

// File is the on-disk batch layout.
type File struct {
	Seed int64 `yaml:"seed"`
	Jobs []Job `yaml:"jobs"`
}

// Decode reads a batch from YAML. Unknown keys are rejected so that typos
// in parameter names do not silently fall back to zero.
func Decode(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("batch.Decode: %w", err)
	}
	if len(f.Jobs) == 0 {
		return File{}, fmt.Errorf("batch.Decode: %w", ErrNoJobs)
	}
	for i := range f.Jobs {
		if err := f.Jobs[i].validate(i); err != nil {
			return File{}, fmt.Errorf("batch.Decode: %w", err)
		}
	}

	return f, nil
}

// Load decodes the batch file at path.
func Load(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("batch.Load: %w", err)
	}
	defer fh.Close()

	return Decode(fh)
}

// validate fills the default name and checks everything New would check,
// so a bad job is reported before any worker starts.
func (j *Job) validate(i int) error {
	if j.Name == "" {
		j.Name = fmt.Sprintf("job-%d", i)
	}
	if err := j.Params.Validate(); err != nil {
		return fmt.Errorf("job %q: %w", j.Name, err)
	}
	if j.MaxIterations < 0 {
		return fmt.Errorf("job %q: max_iterations=%d < 0: %w", j.Name, j.MaxIterations, mockup.ErrInvalidParams)
	}
	if j.TimeLimit < 0 {
		return fmt.Errorf("job %q: time_limit=%v < 0: %w", j.Name, j.TimeLimit, mockup.ErrInvalidParams)
	}
	if _, err := tile.ParseRemainderPolicy(j.Remainder); err != nil {
		return fmt.Errorf("job %q: %w", j.Name, err)
	}

	return nil
}
