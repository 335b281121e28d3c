// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides parsing and formatting of the
// hex and named colors accepted as scheme seeds.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrMalformedHex is returned when a color string is not of
// the form #RRGGBB with six hexadecimal digits.
var ErrMalformedHex = errors.New("malformed hex color")

// FromHex parses a color of the form #RRGGBB (case-insensitive).
// Shorthand (#RGB) and alpha (#RRGGBBAA) forms are rejected
// with an error wrapping [ErrMalformedHex].
func FromHex(hex string) (color.RGBA, error) {
	if !IsHex(hex) {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrMalformedHex, hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %w", ErrMalformedHex, hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

// IsHex returns whether the given string is of the form #RRGGBB.
func IsHex(hex string) bool {
	if len(hex) != 7 || hex[0] != '#' {
		return false
	}
	for i := 1; i < len(hex); i++ {
		switch c := hex[i]; {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// AsHex returns the given color as a lowercase #rrggbb string.
// Alpha is ignored; the color components are taken as they are
// premultiplied, which is exact for opaque colors.
func AsHex(c color.Color) string {
	r := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B)
}

// NormalizeHex validates the given #RRGGBB string and returns
// it in lowercase.
func NormalizeHex(hex string) (string, error) {
	if !IsHex(hex) {
		return "", fmt.Errorf("%w: %q", ErrMalformedHex, hex)
	}
	return strings.ToLower(hex), nil
}

// FromName returns the CSS color with the given name
// (case-insensitive), and whether it exists.
func FromName(name string) (color.RGBA, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	return c, ok
}

// FromString returns the color for the given #RRGGBB hex string
// or CSS color name. It is meant for user input; all other
// parts of the module take hex strings only.
func FromString(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return FromHex(s)
	}
	if c, ok := FromName(s); ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q is neither a hex color nor a known color name", ErrMalformedHex, s)
}

// ToHexString converts the given #RRGGBB hex string or CSS color name
// to a lowercase #rrggbb string.
func ToHexString(s string) (string, error) {
	c, err := FromString(s)
	if err != nil {
		return "", err
	}
	return AsHex(c), nil
}

// ToHexStrings converts each of the given #RRGGBB hex strings or
// CSS color names to a lowercase #rrggbb string. Errors name the
// 1-based position of the color.
func ToHexStrings(cs []string) ([]string, error) {
	hexes := make([]string, len(cs))
	for i, c := range cs {
		h, err := ToHexString(c)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i+1, err)
		}
		hexes[i] = h
	}
	return hexes, nil
}
