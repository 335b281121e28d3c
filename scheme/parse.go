// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"gopkg.in/yaml.v3"
	"heavylift.dev/hlcolor/colors"
)

// ErrEmpty is returned when parsing text that contains no colors.
var ErrEmpty = errors.New("scheme has no colors")

// ParseCSS reads a scheme from the custom properties of the given CSS,
// as written by [CSS]. Custom properties in any rule are read in order.
// Other declarations are ignored. Every value must be a #RRGGBB color.
func ParseCSS(text string) (*Scheme, error) {
	s := newScheme()
	p := css.NewParser(parse.NewInput(strings.NewReader(text)), false)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != io.EOF {
				return nil, fmt.Errorf("parsing css: %w", err)
			}
			if s.Len() == 0 {
				return nil, ErrEmpty
			}
			return s, nil
		case css.CustomPropertyGrammar:
			var val strings.Builder
			for _, tok := range p.Values() {
				val.Write(tok.Data)
			}
			name := strings.TrimPrefix(string(data), "--")
			hex, err := colors.NormalizeHex(strings.TrimSpace(val.String()))
			if err != nil {
				return nil, fmt.Errorf("css property %s: %w", name, err)
			}
			s.add(name, hex)
		}
	}
}

// ParseJSON reads a scheme from a JSON object of colors, as written
// by [JSON], keeping the order of the keys. Every value must be a
// #RRGGBB color.
func ParseJSON(text string) (*Scheme, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing json: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("parsing json: expected an object, got %v", tok)
	}
	s := newScheme()
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing json: %w", err)
		}
		key := kt.(string) // object keys are always strings
		var val string
		if err := dec.Decode(&val); err != nil {
			return nil, fmt.Errorf("parsing json key %s: %w", key, err)
		}
		hex, err := colors.NormalizeHex(val)
		if err != nil {
			return nil, fmt.Errorf("json key %s: %w", key, err)
		}
		s.add(key, hex)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parsing json: %w", err)
	}
	if s.Len() == 0 {
		return nil, ErrEmpty
	}
	return s, nil
}

// ParseYAML reads a scheme from a YAML mapping of colors, as written
// by [YAML], keeping the order of the keys.
func ParseYAML(text string) (*Scheme, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmpty
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing yaml: line %d: expected a mapping", m.Line)
	}
	s := newScheme()
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		hex, err := colors.NormalizeHex(v.Value)
		if err != nil {
			return nil, fmt.Errorf("yaml key %s: line %d: %w", k.Value, v.Line, err)
		}
		s.add(k.Value, hex)
	}
	if s.Len() == 0 {
		return nil, ErrEmpty
	}
	return s, nil
}

// Parse reads a scheme in the given format.
func Parse(text string, f Format) (*Scheme, error) {
	switch f {
	case FormatJSON:
		return ParseJSON(text)
	case FormatCSS:
		return ParseCSS(text)
	case FormatYAML:
		return ParseYAML(text)
	}
	return nil, fmt.Errorf("scheme.Parse: unknown format %d", f)
}

// FormatFromExt returns the format of the given file extension,
// with or without the leading dot. ".yml" is [FormatYAML].
func FormatFromExt(ext string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		return FormatJSON, nil
	case "css":
		return FormatCSS, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("unknown scheme file extension %q", ext)
}
