// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"heavylift.dev/hlcolor/logx"
	"heavylift.dev/hlcolor/output"
	"heavylift.dev/hlcolor/preview"
	"heavylift.dev/hlcolor/scheme"
)

// PreviewCmd previews a scheme file written by generate.
type PreviewCmd struct {
	File string `arg:"" help:"Scheme file (.json, .css, .yaml or .yml)"`
}

func (p *PreviewCmd) Run(e *env) error {
	path, err := output.ExpandPath(p.File)
	if err != nil {
		return err
	}
	f, err := scheme.FormatFromExt(filepath.Ext(path))
	if err != nil {
		return err
	}
	b, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return err
	}
	s, err := scheme.Parse(string(b), f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logx.PrintfWarn(e.stdout, "%s: %d colors, fingerprint %s\n\n", path, s.Len(), scheme.Fingerprint(s))
	return preview.Render(e.stdout, s)
}
