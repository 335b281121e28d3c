// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// Format is an export format of a scheme.
type Format int32

const (
	// FormatJSON is a JSON object with 2-space indentation.
	FormatJSON Format = iota

	// FormatCSS is a :root block of CSS custom properties.
	FormatCSS

	// FormatYAML is a YAML mapping.
	FormatYAML
)

var formatExts = []string{"json", "css", "yaml"}

// Ext returns the file extension of the format, without the dot.
func (f Format) Ext() string {
	if f < 0 || int(f) >= len(formatExts) {
		return ""
	}
	return formatExts[f]
}

// String returns the name of the format.
func (f Format) String() string {
	return f.Ext()
}

// Export returns the scheme in the given format.
func Export(s *Scheme, f Format) (string, error) {
	switch f {
	case FormatJSON:
		return JSON(s)
	case FormatCSS:
		return CSS(s), nil
	case FormatYAML:
		return YAML(s)
	}
	return "", fmt.Errorf("scheme.Export: unknown format %d", f)
}

// MarshalJSON implements [json.Marshaler], writing the
// keys of the scheme in order.
func (s *Scheme) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	i := 0
	for k, v := range s.All() {
		if i > 0 {
			b.WriteByte(',')
		}
		i++
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		b.Write(kb)
		b.WriteByte(':')
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON implements [json.Unmarshaler]; see [ParseJSON].
func (s *Scheme) UnmarshalJSON(data []byte) error {
	ps, err := ParseJSON(string(data))
	if err != nil {
		return err
	}
	*s = *ps
	return nil
}

// JSON returns the scheme as a JSON object with 2-space indentation,
// with the keys in scheme order.
func JSON(s *Scheme) (string, error) {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CSS returns the scheme as CSS custom properties in a :root block,
// with one "--key: value;" line per key in scheme order.
func CSS(s *Scheme) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for k, v := range s.All() {
		fmt.Fprintf(&b, "  --%s: %s;\n", k, v)
	}
	b.WriteString("}\n")
	return b.String()
}

// YAML returns the scheme as a YAML mapping, with the keys in scheme order.
func YAML(s *Scheme) (string, error) {
	b, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MarshalYAML implements [yaml.Marshaler], returning
// a mapping node with the keys of the scheme in order.
func (s *Scheme) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range s.All() {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v, Style: yaml.DoubleQuotedStyle},
		)
	}
	return n, nil
}

// Fingerprint returns a 16 hex digit hash of the keys and colors of
// the scheme in order. Equal schemes have equal fingerprints.
func Fingerprint(s *Scheme) string {
	h := xxhash.New()
	for k, v := range s.All() {
		h.WriteString(k)
		h.WriteString("=")
		h.WriteString(v)
		h.WriteString("\n")
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
