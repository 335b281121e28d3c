// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"heavylift.dev/hlcolor/colors"
	"heavylift.dev/hlcolor/logx"
	"heavylift.dev/hlcolor/matcolor"
	"heavylift.dev/hlcolor/output"
	"heavylift.dev/hlcolor/preview"
	"heavylift.dev/hlcolor/scheme"
)

// GenerateCmd generates a scheme and writes it to files.
type GenerateCmd struct {
	Colors    []string `arg:"" help:"1-4 colors (#RRGGBB or CSS color names). Order: primary, secondary, tertiary, error."`
	Variant   string   `help:"Palette style (${enum})" enum:"${variants}" default:"vibrant"`
	Strategy  string   `help:"Hue strategy (${enum})" enum:"${strategies}" default:"complementary"`
	Out       string   `short:"o" help:"Output directory" default:"generated-colors"`
	Config    string   `short:"c" help:"TOML config file with tones, seeds and surfaces"`
	YAML      bool     `name:"yaml" help:"Also write a YAML file"`
	NoPreview bool     `help:"Do not print the swatch preview"`
	DryRun    bool     `help:"Generate and preview, but do not write any files"`
	Watch     bool     `help:"Regenerate whenever the config file changes (requires --config)"`

	now func() time.Time `kong:"-"`
}

// options returns the scheme options of the flags with the given config.
func (g *GenerateCmd) options(cfg *matcolor.Config) (scheme.Options, error) {
	opts := scheme.Options{Config: cfg}
	if err := opts.Variant.SetString(g.Variant); err != nil {
		return opts, err
	}
	if err := opts.Strategy.SetString(g.Strategy); err != nil {
		return opts, err
	}
	return opts, nil
}

// Run generates the scheme once, and then again on every change
// of the config file if watching.
func (g *GenerateCmd) Run(e *env) error {
	if g.Watch && g.Config == "" {
		return errors.New("--watch requires --config")
	}
	seeds, err := g.hexColors()
	if err != nil {
		return err
	}
	if err := g.generate(e, seeds); err != nil {
		return err
	}
	if !g.Watch {
		return nil
	}
	path, err := output.ExpandPath(g.Config)
	if err != nil {
		return err
	}
	logx.PrintfWarn(e.stdout, "Watching %s for changes (Ctrl+C to stop)\n", path)
	return watchFile(e.ctx, path, func() error {
		return g.generate(e, seeds)
	})
}

// hexColors returns the colors as #rrggbb, converting color names.
// The count is validated before any conversion.
func (g *GenerateCmd) hexColors() ([]string, error) {
	if _, err := scheme.SeedsFromColors(g.Colors); err != nil {
		return nil, err
	}
	hexes, err := colors.ToHexStrings(g.Colors)
	if err != nil {
		return nil, fmt.Errorf("%w (use the #RRGGBB format)", err)
	}
	return hexes, nil
}

func (g *GenerateCmd) generate(e *env, seeds []string) error {
	cfg, err := loadConfig(e.fs, g.Config)
	if err != nil {
		return err
	}
	opts, err := g.options(cfg)
	if err != nil {
		return err
	}
	logx.PrintfWarn(e.stdout, "Generating '%s' scheme using '%s' strategy from %d color(s)\n", opts.Variant, opts.Strategy, len(seeds))
	res, err := scheme.GenerateFromColors(seeds, opts)
	if err != nil {
		return err
	}
	slog.Info("generated scheme", "keys", res.Scheme.Len(), "fingerprint", scheme.Fingerprint(res.Scheme))
	if !g.NoPreview && logx.Enabled(slog.LevelWarn) {
		fmt.Fprintln(e.stdout)
		if err := preview.New(e.stdout, cfg).Render(e.stdout, res.Scheme); err != nil {
			return err
		}
	}

	formats := []scheme.Format{scheme.FormatJSON, scheme.FormatCSS}
	if g.YAML {
		formats = append(formats, scheme.FormatYAML)
	}
	now := g.now
	if now == nil {
		now = time.Now
	}
	run := &output.Run{Colors: seeds, Options: opts, Scheme: res.Scheme, Formats: formats, Time: now()}
	w, err := output.NewWriter(e.fs, g.Out)
	if err != nil {
		return err
	}
	if g.DryRun {
		base := output.BaseName(seeds, opts.Variant, run.Time)
		for _, f := range formats {
			logx.PrintfWarn(e.stdout, "Dry run: would save %s\n", filepath.Join(w.Dir, base+"."+f.Ext()))
		}
		return nil
	}
	wr, err := w.Write(run)
	if err != nil {
		return err
	}
	for _, p := range wr.Files {
		logx.PrintfWarn(e.stdout, "Saved %s\n", p)
	}
	logx.PrintfWarn(e.stdout, "Summary saved to %s\n", wr.Summary)
	return nil
}
