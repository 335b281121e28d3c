// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"
	"heavylift.dev/hlcolor/base/iox/tomlx"
	"heavylift.dev/hlcolor/logx"
	"heavylift.dev/hlcolor/matcolor"
	"heavylift.dev/hlcolor/output"
)

// CLI is the command line interface of hlcolor.
type CLI struct {
	Version kong.VersionFlag `help:"Show version information"`
	V       bool             `short:"v" help:"Show info messages"`
	VV      bool             `name:"vv" help:"Show debug messages"`
	Q       bool             `short:"q" help:"Only show errors"`

	Generate GenerateCmd `cmd:"" help:"Generate a color scheme from 1-4 seed colors"`
	Preview  PreviewCmd  `cmd:"" help:"Preview a generated .json, .css or .yaml scheme file"`
	Batch    BatchCmd    `cmd:"" help:"Generate many schemes from a TOML manifest"`
	Config   ConfigCmd   `cmd:"" help:"Print or write the default configuration as TOML"`
}

// vars are the kong variables of the CLI: the version and
// the choices of the enum flags.
func vars() kong.Vars {
	return kong.Vars{
		"version":    "hlcolor " + Version,
		"variants":   joinValues(matcolor.VariantValues()),
		"strategies": joinValues(matcolor.StrategyValues()),
	}
}

func joinValues[T fmt.Stringer](vs []T) string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.String()
	}
	return strings.Join(names, ",")
}

// AfterApply sets up logging from the verbosity flags.
func (c *CLI) AfterApply() error {
	logx.UserLevel.Set(logx.LevelFromFlags(c.VV, c.V, c.Q))
	logx.SetDefaultLogger()
	return nil
}

// loadConfig returns the config in the given TOML file, or the default
// config if the file is empty. Values missing from the file keep their
// default. The config is validated.
func loadConfig(fsys afero.Fs, file string) (*matcolor.Config, error) {
	cfg := matcolor.DefaultConfig()
	if file == "" {
		return cfg, nil
	}
	path, err := output.ExpandPath(file)
	if err != nil {
		return nil, err
	}
	if err := tomlx.OpenFS(cfg, fsys, path); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
