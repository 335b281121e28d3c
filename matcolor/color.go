// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"fmt"
	"image/color"

	"heavylift.dev/hlcolor/cam/hct"
	"heavylift.dev/hlcolor/colors"
	"heavylift.dev/hlcolor/math32"
)

// MaxChroma is the upper bound of [Color.Chroma]. It is above the
// chroma of any sRGB color, so that palettes asking for "as colorful
// as possible" (like the vibrant primary) can request it directly.
const MaxChroma = 200

// Color is a single color in the HCT (hue, chroma, tone) space.
// It is always normalized: the hue is wrapped into [0, 360), and the
// chroma and tone are clamped to [0, MaxChroma] and [0, 100].
// Color is a value type: every transform returns a new Color.
type Color struct {

	// Hue is the spectral identity of the color in degrees, in [0, 360).
	Hue float32

	// Chroma is the colorfulness of the color, in [0, MaxChroma].
	// The chroma that can actually be displayed depends on the hue and tone.
	Chroma float32

	// Tone is the perceptual lightness of the color, in [0, 100].
	Tone float32
}

// NewColor returns a new normalized [Color] for the given
// hue, chroma and tone.
func NewColor(hue, chroma, tone float32) Color {
	return Color{
		Hue:    math32.WrapDegrees(hue),
		Chroma: math32.Clamp(chroma, 0, MaxChroma),
		Tone:   math32.Clamp(tone, 0, 100),
	}
}

// ColorFromRGBA returns the [Color] of the given standard color.
func ColorFromRGBA(c color.Color) Color {
	h := hct.FromColor(c)
	return NewColor(h.Hue, h.Chroma, h.Tone)
}

// ColorFromHex returns the [Color] for the given #RRGGBB hex string
// (case-insensitive). Any other form returns an error wrapping
// [colors.ErrMalformedHex].
func ColorFromHex(hex string) (Color, error) {
	c, err := colors.FromHex(hex)
	if err != nil {
		return Color{}, err
	}
	return ColorFromRGBA(c), nil
}

// HCT returns the in-gamut [hct.HCT] closest to this color.
func (c Color) HCT() hct.HCT {
	return hct.New(c.Hue, c.Chroma, c.Tone)
}

// AsRGBA returns this color as a [color.RGBA], reducing the chroma
// as needed to keep it inside the sRGB gamut.
func (c Color) AsRGBA() color.RGBA {
	return c.HCT().AsRGBA()
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.AsRGBA().RGBA()
}

// Hex returns this color as a lowercase #rrggbb string.
func (c Color) Hex() string {
	return colors.AsHex(c.AsRGBA())
}

// AdjustTone returns a new color with the tone changed by the given
// delta. The tone saturates at 0 and 100; it never wraps.
func (c Color) AdjustTone(delta float32) Color {
	return NewColor(c.Hue, c.Chroma, c.Tone+delta)
}

// AdjustHue returns a new color with the hue rotated by the given
// offset in degrees. The hue always wraps; it never clamps.
func (c Color) AdjustHue(offset float32) Color {
	return NewColor(c.Hue+offset, c.Chroma, c.Tone)
}

// WithChroma returns a new color with the given chroma.
func (c Color) WithChroma(chroma float32) Color {
	return NewColor(c.Hue, chroma, c.Tone)
}

// IsLight returns whether the color has a tone above 50.
func (c Color) IsLight() bool {
	return c.Tone > 50
}

// ContrastColor returns the hex color to use for content drawn on top
// of this color: the configured near-black for light colors (tone above 50),
// and the configured near-white otherwise. This is a fixed threshold on
// tone, not a measured contrast ratio, so it does not guarantee any
// WCAG contrast minimum.
func (c Color) ContrastColor(cfg *Config) string {
	if c.IsLight() {
		return cfg.ContrastDark
	}
	return cfg.ContrastLight
}

func (c Color) String() string {
	return fmt.Sprintf("hct(%g, %g, %g)", c.Hue, c.Chroma, c.Tone)
}
