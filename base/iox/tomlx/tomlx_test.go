// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string            `toml:"name"`
	Tones []int             `toml:"tones,omitempty"`
	Sub   map[string]string `toml:"sub,omitempty"`
}

func TestWriteOpen(t *testing.T) {
	in := &testStruct{Name: "vibrant", Tones: []int{40, 100, 90, 10}, Sub: map[string]string{"a": "#ffffff"}}
	b, err := WriteBytes(in)
	require.NoError(t, err)

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "test.toml", b, 0o644))
	out := &testStruct{}
	require.NoError(t, OpenFS(out, fsys, "test.toml"))
	assert.Equal(t, in, out)

	assert.Error(t, OpenFS(out, fsys, "missing.toml"))

	require.NoError(t, afero.WriteFile(fsys, "bad.toml", []byte("name = \n"), 0o644))
	err = OpenFS(out, fsys, "bad.toml")
	assert.ErrorContains(t, err, "bad.toml: line 1")
}

func TestReadBytes(t *testing.T) {
	out := &testStruct{}
	require.NoError(t, ReadBytes(out, []byte("name = \"x\"\n")))
	assert.Equal(t, "x", out.Name)

	err := ReadBytes(out, []byte("nmae = \"x\"\n"))
	assert.Error(t, err)

	err = ReadBytes(out, []byte("name = \n"))
	assert.ErrorContains(t, err, "line 1")

	b, err := WriteBytes(&testStruct{Name: "y"})
	require.NoError(t, err)
	assert.Contains(t, string(b), "name = 'y'")
}
