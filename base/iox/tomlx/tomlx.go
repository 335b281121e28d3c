// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides functions for reading and writing
// values as TOML files and byte slices.
package tomlx

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// OpenFS reads the given object from the given filename in the given
// filesystem using TOML encoding. Keys that do not correspond to a field
// of the object are an error.
func OpenFS(v any, fsys afero.Fs, filename string) error {
	b, err := afero.ReadFile(fsys, filename)
	if err != nil {
		return err
	}
	if err := ReadBytes(v, b); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

// Read reads the given object from the given reader using TOML encoding.
func Read(v any, reader io.Reader) error {
	dec := toml.NewDecoder(reader)
	dec.DisallowUnknownFields()
	err := dec.Decode(v)
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		row, col := derr.Position()
		return fmt.Errorf("line %d, column %d: %w", row, col, err)
	}
	return err
}

// ReadBytes reads the given object from the given bytes using TOML encoding.
func ReadBytes(v any, data []byte) error {
	return Read(v, bytes.NewReader(data))
}

// Write writes the given object to the given writer using TOML encoding.
func Write(v any, writer io.Writer) error {
	enc := toml.NewEncoder(writer)
	enc.SetIndentTables(true)
	return enc.Encode(v)
}

// WriteBytes writes the given object, returning bytes of the encoding,
// using TOML encoding.
func WriteBytes(v any) ([]byte, error) {
	var b bytes.Buffer
	if err := Write(v, &b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
