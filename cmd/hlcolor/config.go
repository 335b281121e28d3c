// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/afero"
	"heavylift.dev/hlcolor/base/iox/tomlx"
	"heavylift.dev/hlcolor/logx"
	"heavylift.dev/hlcolor/matcolor"
	"heavylift.dev/hlcolor/output"
)

// ConfigCmd prints or writes the default config, as a starting
// point for a --config file.
type ConfigCmd struct {
	Out string `short:"o" help:"Write to this file instead of printing"`
}

func (c *ConfigCmd) Run(e *env) error {
	b, err := tomlx.WriteBytes(matcolor.DefaultConfig())
	if err != nil {
		return err
	}
	if c.Out == "" {
		_, err = e.stdout.Write(b)
		return err
	}
	path, err := output.ExpandPath(c.Out)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(e.fs, path, b, 0o644); err != nil {
		return err
	}
	logx.PrintfWarn(e.stdout, "Saved default config to %s\n", path)
	return nil
}
