// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"heavylift.dev/hlcolor/batch"
	"heavylift.dev/hlcolor/logx"
	"heavylift.dev/hlcolor/output"
)

// BatchCmd generates every scheme of a manifest.
type BatchCmd struct {
	Manifest string `arg:"" help:"TOML manifest with [[scheme]] entries"`
	Jobs     int    `short:"j" help:"Number of schemes generated at once (0 = GOMAXPROCS)" default:"0"`
}

func (b *BatchCmd) Run(e *env) error {
	path, err := output.ExpandPath(b.Manifest)
	if err != nil {
		return err
	}
	m, err := batch.Open(e.fs, path)
	if err != nil {
		return err
	}
	formats, err := batch.ParseFormats(m.Formats)
	if err != nil {
		return err
	}
	cfgFile := m.Config
	if cfgFile != "" && !filepath.IsAbs(cfgFile) {
		cfgFile = filepath.Join(filepath.Dir(path), cfgFile)
	}
	cfg, err := loadConfig(e.fs, cfgFile)
	if err != nil {
		return err
	}
	w, err := output.NewWriter(e.fs, m.Out)
	if err != nil {
		return err
	}
	r := &batch.Runner{Writer: w, Config: cfg, Formats: formats, Limit: b.Jobs}
	results, err := r.Run(e.ctx, m.Jobs)
	if err != nil {
		return err
	}
	for _, res := range results {
		logx.PrintfInfo(e.stdout, "%s: saved %d files as %s\n", res.Job.Name, len(res.Written.Paths()), filepath.Join(w.Dir, res.Written.Base))
	}
	logx.PrintfWarn(e.stdout, "Generated %d schemes in %s\n", len(results), w.Dir)
	return nil
}
