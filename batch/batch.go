// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch generates many schemes concurrently from a TOML
// manifest and writes each of them with an [output.Writer].
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
	"heavylift.dev/hlcolor/base/iox/tomlx"
	"heavylift.dev/hlcolor/colors"
	"heavylift.dev/hlcolor/matcolor"
	"heavylift.dev/hlcolor/output"
	"heavylift.dev/hlcolor/scheme"
)

// Job is one scheme of a manifest.
type Job struct {

	// Name identifies the job in logs and errors.
	Name string `toml:"name"`

	// Colors are the 1 to 4 seed colors, in the order
	// primary, secondary, tertiary, error, as #RRGGBB
	// hex strings or CSS color names.
	Colors []string `toml:"colors"`

	// Variant is the palette style; the default is vibrant.
	Variant matcolor.Variant `toml:"variant"`

	// Strategy is the hue strategy; the default is complementary.
	Strategy matcolor.Strategy `toml:"strategy"`
}

// Manifest is a list of jobs with shared settings.
type Manifest struct {

	// Out is the output directory. The default is [output.DefaultDir].
	Out string `toml:"out"`

	// Formats are the export formats, by file extension.
	// The default is json and css.
	Formats []string `toml:"formats"`

	// Config is a file with a [matcolor.Config] for all jobs.
	Config string `toml:"config"`

	// Jobs are the schemes to generate.
	Jobs []Job `toml:"scheme"`
}

// Open reads the manifest from the given TOML file in the given
// filesystem and validates it.
func Open(fsys afero.Fs, filename string) (*Manifest, error) {
	m := &Manifest{}
	if err := tomlx.OpenFS(m, fsys, filename); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return m, nil
}

// Validate returns an error if any job has no name or
// the same name as another job.
func (m *Manifest) Validate() error {
	if len(m.Jobs) == 0 {
		return errors.New("manifest has no [[scheme]] entries")
	}
	var errs []error
	seen := map[string]bool{}
	for i, j := range m.Jobs {
		switch {
		case j.Name == "":
			errs = append(errs, fmt.Errorf("scheme %d has no name", i+1))
		case seen[j.Name]:
			errs = append(errs, fmt.Errorf("scheme name %q is used more than once", j.Name))
		}
		seen[j.Name] = true
	}
	return errors.Join(errs...)
}

// ParseFormats returns the formats of the given file extensions,
// or json and css if there are none.
func ParseFormats(exts []string) ([]scheme.Format, error) {
	if len(exts) == 0 {
		return []scheme.Format{scheme.FormatJSON, scheme.FormatCSS}, nil
	}
	fs := make([]scheme.Format, len(exts))
	for i, e := range exts {
		f, err := scheme.FormatFromExt(e)
		if err != nil {
			return nil, err
		}
		fs[i] = f
	}
	return fs, nil
}

// Result is the result of one job.
type Result struct {
	Job     *Job
	Scheme  *scheme.Scheme
	Written *output.Written
}

// Runner runs the jobs of a manifest.
type Runner struct {

	// Writer writes the schemes.
	Writer *output.Writer

	// Config is the config of all jobs; nil is the default config.
	Config *matcolor.Config

	// Formats are the export formats of all jobs.
	Formats []scheme.Format

	// Limit is the largest number of jobs run at once.
	// If it is 0, GOMAXPROCS is used.
	Limit int

	// Now returns the time of the runs; [time.Now] if nil.
	Now func() time.Time
}

// Run runs the given jobs concurrently, and returns their results in job
// order. If any job fails, the remaining jobs are canceled, the files of
// all completed jobs are removed, and the errors of the failed jobs
// are returned.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	now := r.Now
	if now == nil {
		now = time.Now
	}
	limit := r.Limit
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(jobs))
	errs := make([]error, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			job := &jobs[i]
			res, err := r.runJob(job, now())
			if err != nil {
				errs[i] = fmt.Errorf("job %q: %w", job.Name, err)
				return errs[i]
			}
			results[i] = *res
			slog.Info("generated scheme", "job", job.Name, "files", len(res.Written.Files))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.cleanup(results)
		if jerr := errors.Join(errs...); jerr != nil {
			return nil, jerr
		}
		return nil, err
	}
	return results, nil
}

func (r *Runner) runJob(job *Job, t time.Time) (*Result, error) {
	seeds, err := colors.ToHexStrings(job.Colors)
	if err != nil {
		return nil, err
	}
	opts := scheme.Options{Variant: job.Variant, Strategy: job.Strategy, Config: r.Config}
	res, err := scheme.GenerateFromColors(seeds, opts)
	if err != nil {
		return nil, err
	}
	wr, err := r.Writer.Write(&output.Run{
		Name:    job.Name,
		Colors:  seeds,
		Options: opts,
		Scheme:  res.Scheme,
		Formats: r.Formats,
		Time:    t,
	})
	if err != nil {
		return nil, err
	}
	return &Result{Job: job, Scheme: res.Scheme, Written: wr}, nil
}

func (r *Runner) cleanup(results []Result) {
	for _, res := range results {
		if res.Written == nil {
			continue
		}
		for _, p := range res.Written.Paths() {
			if err := r.Writer.Fs.Remove(p); err != nil {
				slog.Warn("removing batch output", "path", p, "err", err)
			}
		}
	}
}
