// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"heavylift.dev/hlcolor/matcolor"
	"heavylift.dev/hlcolor/scheme"
)

var testTime = time.Date(2025, 3, 14, 15, 9, 26, 500, time.UTC)

func testRun(t *testing.T, colors ...string) *Run {
	t.Helper()
	opts := scheme.Options{Variant: matcolor.TonalSpot}
	res, err := scheme.GenerateFromColors(colors, opts)
	require.NoError(t, err)
	return &Run{
		Colors:  colors,
		Options: opts,
		Scheme:  res.Scheme,
		Formats: []scheme.Format{scheme.FormatJSON, scheme.FormatCSS, scheme.FormatYAML},
		Time:    testTime,
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "color-scheme-0051e0-vibrant-2025-03-14T15-09-26",
		BaseName([]string{"#0051E0"}, matcolor.Vibrant, testTime))
	assert.Equal(t, "color-scheme-0051e0-40617f-fruit-salad-2025-03-14T15-09-26",
		BaseName([]string{"#0051e0", "#40617f"}, matcolor.FruitSalad, testTime.In(time.FixedZone("x", 3600))))
}

func TestWrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	w, err := NewWriter(fs, "out")
	require.NoError(t, err)
	r := testRun(t, "#0051e0", "#40617f")
	wr, err := w.Write(r)
	require.NoError(t, err)

	base := "color-scheme-0051e0-40617f-tonalspot-2025-03-14T15-09-26"
	assert.Equal(t, base, wr.Base)
	assert.Equal(t, []string{
		filepath.Join("out", base+".json"),
		filepath.Join("out", base+".css"),
		filepath.Join("out", base+".yaml"),
	}, wr.Files)
	assert.Equal(t, filepath.Join("out", base+"-summary.txt"), wr.Summary)
	assert.Len(t, wr.Paths(), 4)

	css, err := afero.ReadFile(fs, wr.Files[1])
	require.NoError(t, err)
	assert.Equal(t, scheme.CSS(r.Scheme), string(css))

	js, err := afero.ReadFile(fs, wr.Files[0])
	require.NoError(t, err)
	ps, err := scheme.ParseJSON(string(js))
	require.NoError(t, err)
	assert.True(t, r.Scheme.Equal(ps))

	entries, err := afero.ReadDir(fs, "out")
	require.NoError(t, err)
	assert.Len(t, entries, 4)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), e.Name())
	}
}

// failFs fails to open any file whose name contains fail.
type failFs struct {
	afero.Fs
	fail string
}

func (f *failFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if strings.Contains(name, f.fail) {
		return nil, errors.New("disk full")
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func TestWriteCleanup(t *testing.T) {
	for _, fail := range []string{".yaml", "-summary"} {
		mem := afero.NewMemMapFs()
		w, err := NewWriter(&failFs{Fs: mem, fail: fail}, "out")
		require.NoError(t, err)
		_, err = w.Write(testRun(t, "#0051e0"))
		assert.ErrorContains(t, err, "disk full", fail)

		entries, err := afero.ReadDir(mem, "out")
		require.NoError(t, err)
		assert.Empty(t, entries, fail)
	}
}

func TestSummary(t *testing.T) {
	r := testRun(t, "#0051e0", "#40617f")
	s := Summary(r, "base")
	assert.Contains(t, s, "Input colors: #0051e0, #40617f\n")
	assert.Contains(t, s, "Generated at: 2025-03-14T15:09:26Z\n")
	assert.Contains(t, s, "- Primary: #0051e0\n")
	assert.Contains(t, s, "- Secondary: #40617f\n")
	assert.Contains(t, s, "- Tertiary: Generated automatically\n")
	assert.Contains(t, s, "- Light theme colors (60 properties)\n")
	assert.Contains(t, s, "- Dark theme colors (60 properties)\n")
	assert.Contains(t, s, "- base.css (CSS custom properties)\n")
	assert.Contains(t, s, "Variant: tonalspot\n")
	assert.Contains(t, s, "Fingerprint: "+scheme.Fingerprint(r.Scheme))
}

func TestExpandPath(t *testing.T) {
	p, err := ExpandPath("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDir, p)

	p, err = ExpandPath("some/dir")
	require.NoError(t, err)
	assert.Equal(t, "some/dir", p)

	home, err := homedir.Dir()
	if err != nil {
		t.Skip("no home directory")
	}
	p, err = ExpandPath("~/colors")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "colors"), p)
}
