// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package output writes generated schemes to files: one file per
// export format and a plain text summary, all sharing one base name.
package output

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"heavylift.dev/hlcolor/matcolor"
	"heavylift.dev/hlcolor/scheme"
)

// DefaultDir is the default output directory, relative
// to the current directory.
const DefaultDir = "generated-colors"

// TimestampLayout is the layout of the timestamp in file names.
const TimestampLayout = "2006-01-02T15-04-05"

// Run contains everything about one generation that is written.
type Run struct {

	// Name, if set, prefixes the base name of the files.
	Name string

	// Colors are the seed colors as given, in role order.
	Colors []string

	// Options are the generation options.
	Options scheme.Options

	// Scheme is the generated scheme.
	Scheme *scheme.Scheme

	// Formats are the export formats to write.
	Formats []scheme.Format

	// Time is the time of the generation, used in the base name
	// and the summary.
	Time time.Time
}

// Written is the result of [Writer.Write].
type Written struct {

	// Base is the base name shared by all of the files.
	Base string

	// Files are the paths of the scheme files, in the order of [Run.Formats].
	Files []string

	// Summary is the path of the summary file.
	Summary string
}

// Paths returns all of the written paths, summary last.
func (w *Written) Paths() []string {
	return append(append([]string{}, w.Files...), w.Summary)
}

// Writer writes runs to a directory of a filesystem.
type Writer struct {

	// Fs is the filesystem written to.
	Fs afero.Fs

	// Dir is the output directory, created if needed.
	Dir string
}

// NewWriter returns a new [Writer] for the given filesystem and directory.
// A leading ~ in the directory is expanded to the home directory.
func NewWriter(fsys afero.Fs, dir string) (*Writer, error) {
	d, err := ExpandPath(dir)
	if err != nil {
		return nil, err
	}
	return &Writer{Fs: fsys, Dir: d}, nil
}

// ExpandPath expands a leading ~ in the given path to the home directory
// of the user. An empty path is [DefaultDir].
func ExpandPath(path string) (string, error) {
	if path == "" {
		return DefaultDir, nil
	}
	p, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expanding %q: %w", path, err)
	}
	return p, nil
}

// BaseName returns the base name of the files of a run:
// color-scheme-{colors}-{variant}-{timestamp}, where colors are the
// lowercased seed hex digits joined by dashes.
func BaseName(colors []string, variant matcolor.Variant, t time.Time) string {
	digits := make([]string, len(colors))
	for i, c := range colors {
		digits[i] = strings.ToLower(strings.TrimPrefix(c, "#"))
	}
	return fmt.Sprintf("color-scheme-%s-%s-%s", strings.Join(digits, "-"), variant, t.UTC().Format(TimestampLayout))
}

// Write writes the scheme of the run in every format of the run, and the
// summary. Either all of the files are written, or, if any write fails,
// the files already written are removed and the error is returned.
func (w *Writer) Write(r *Run) (*Written, error) {
	if err := w.Fs.MkdirAll(w.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	base := BaseName(r.Colors, r.Options.Variant, r.Time)
	if r.Name != "" {
		base = r.Name + "-" + base
	}
	wr := &Written{Base: base}
	var done []string
	fail := func(err error) (*Written, error) {
		return nil, errors.Join(err, w.remove(done))
	}
	for _, f := range r.Formats {
		text, err := scheme.Export(r.Scheme, f)
		if err != nil {
			return fail(err)
		}
		path := filepath.Join(w.Dir, base+"."+f.Ext())
		if err := w.writeFile(path, text); err != nil {
			return fail(err)
		}
		done = append(done, path)
		wr.Files = append(wr.Files, path)
	}
	wr.Summary = filepath.Join(w.Dir, base+"-summary.txt")
	if err := w.writeFile(wr.Summary, Summary(r, base)); err != nil {
		return fail(err)
	}
	return wr, nil
}

// writeFile writes the file under a temporary name and renames it,
// so that no partially written file has the final name.
func (w *Writer) writeFile(path, text string) error {
	tmp := path + ".tmp"
	if err := afero.WriteFile(w.Fs, tmp, []byte(text), 0o644); err != nil {
		w.Fs.Remove(tmp)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := w.Fs.Rename(tmp, path); err != nil {
		w.Fs.Remove(tmp)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	slog.Debug("wrote file", "path", path, "bytes", len(text))
	return nil
}

func (w *Writer) remove(paths []string) error {
	var errs []error
	for _, p := range paths {
		if err := w.Fs.Remove(p); err != nil {
			errs = append(errs, err)
		} else {
			slog.Info("removed partial output", "path", p)
		}
	}
	return errors.Join(errs...)
}
