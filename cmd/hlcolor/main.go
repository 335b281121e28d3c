// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hlcolor generates Material Design 3 style color schemes
// from 1 to 4 seed colors, and writes them as JSON, CSS custom
// properties and YAML design tokens.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"
)

// Version is set at build time with -ldflags="-X main.Version=v1.0.0".
var Version = "dev"

// Tagline is used in the help text.
const Tagline = "Generate HeavyLift color schemes with color theory distributions"

// env is the environment of the commands, bound by kong.
type env struct {
	ctx    context.Context
	fs     afero.Fs
	stdout io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("hlcolor"),
		kong.Description(Tagline),
		vars(),
		kong.UsageOnError(),
		kong.Bind(&env{ctx: ctx, fs: afero.NewOsFs(), stdout: os.Stdout}),
	)
	if err := kctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
